package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jokedev/go-jokes-backend/internal/services"
)

func TestFail_WritesEnvelopeWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-123")
		Fail(c, http.StatusBadRequest, ErrCodeBadRequest, "nope")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.RequestID != "rid-123" || er.Code != ErrCodeBadRequest || er.Message != "nope" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}

func TestFailErr_Taxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		want     int
		wantCode string
	}{
		{"missing fields", services.ErrMissingFields, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown category", services.ErrUnknownCategory, http.StatusBadRequest, ErrCodeBadRequest},
		{"invalid rating", services.ErrInvalidRating, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty query", services.ErrEmptyQuery, http.StatusBadRequest, ErrCodeBadRequest},
		{"nothing to update", services.ErrNothingToUpdate, http.StatusBadRequest, ErrCodeBadRequest},
		{"joke not found", services.ErrJokeNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"no jokes", services.ErrNoJokes, http.StatusNotFound, ErrCodeNotFound},
		{"contention", services.ErrRatingContention, http.StatusInternalServerError, ErrCodeInternal},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternal},
		{"context", context.Canceled, http.StatusInternalServerError, ErrCodeInternal},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { failErr(c, tc.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
			var er ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("json: %v", err)
			}
			if er.Code != tc.wantCode {
				t.Fatalf("code=%q, want %q", er.Code, tc.wantCode)
			}
			// 5xx must not echo the raw error.
			if tc.want == http.StatusInternalServerError && er.Message != "internal server error" {
				t.Fatalf("internal detail leaked: %q", er.Message)
			}
			// 4xx carries the sentinel's message verbatim.
			if tc.want != http.StatusInternalServerError && er.Message != tc.err.Error() {
				t.Fatalf("message=%q, want %q", er.Message, tc.err.Error())
			}
		})
	}
}
