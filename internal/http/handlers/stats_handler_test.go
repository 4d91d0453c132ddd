package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
	"github.com/jokedev/go-jokes-backend/internal/services"
)

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ss := stubStatsSvc{stats: func(ctx context.Context) (*services.CatalogStats, error) {
		return &services.CatalogStats{
			TotalJokes:      20,
			TotalCategories: 5,
			TopRated:        []domain.Joke{{ID: 1, Rating: 5}},
			MostVoted:       []domain.Joke{{ID: 2, Votes: 9}},
			CategoryDistribution: []repo.CategoryCount{
				{Category: "programming", Count: 11},
			},
		}, nil
	}}
	h := newTestHandlers(nil, nil, nil, ss)

	r := gin.New()
	r.GET("/stats", h.GetStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got services.CatalogStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got.TotalJokes != 20 || got.TotalCategories != 5 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.TopRated) != 1 || len(got.MostVoted) != 1 || len(got.CategoryDistribution) != 1 {
		t.Fatalf("collections not round-tripped: %+v", got)
	}
}

func TestGetStats_StoreFailure500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ss := stubStatsSvc{stats: func(ctx context.Context) (*services.CatalogStats, error) {
		return nil, context.DeadlineExceeded
	}}
	h := newTestHandlers(nil, nil, nil, ss)

	r := gin.New()
	r.GET("/stats", h.GetStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	// Internal detail must not leak.
	if er.Message != "internal server error" {
		t.Fatalf("leaked internal error: %q", er.Message)
	}
}

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ss := stubStatsSvc{categories: func(ctx context.Context) ([]repo.CategoryWithCount, error) {
		return []repo.CategoryWithCount{
			{ID: 1, Name: "programming", JokeCount: 3},
			{ID: 2, Name: "empty", JokeCount: 0},
		}, nil
	}}
	h := newTestHandlers(nil, nil, nil, ss)

	r := gin.New()
	r.GET("/categories", h.GetCategories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []repo.CategoryWithCount
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(got) != 2 || got[0].Name != "programming" || got[1].JokeCount != 0 {
		t.Fatalf("unexpected categories: %+v", got)
	}
}
