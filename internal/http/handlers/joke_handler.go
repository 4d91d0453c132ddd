// Joke HTTP handlers.
//
// This file exposes REST endpoints for joke resources:
//   - GET    /jokes                     (list, paginated/filtered/sorted)
//   - GET    /jokes/random              (random pick, optional category)
//   - GET    /jokes/:id                 (fetch by id)
//   - GET    /jokes/category/:category  (all jokes in a category)
//   - POST   /jokes                     (create)
//   - PUT    /jokes/:id                 (partial update)
//   - DELETE /jokes/:id                 (delete)
//   - POST   /jokes/:id/rate            (rate 1-5)
//   - GET    /search                    (substring search)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
	"github.com/jokedev/go-jokes-backend/internal/services"
	"github.com/jokedev/go-jokes-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// JokeService defines catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type JokeService interface {
	// Create validates and inserts a new joke.
	Create(ctx context.Context, setup, punchline, category string) (*domain.Joke, error)
	// Get fetches a joke by ID.
	Get(ctx context.Context, id int64) (*domain.Joke, error)
	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id int64, upd services.JokeUpdate) (*domain.Joke, error)
	// Delete removes a joke.
	Delete(ctx context.Context, id int64) error
	// Random picks one joke, optionally restricted to a category.
	Random(ctx context.Context, category string) (*domain.Joke, error)
	// ListPage returns a page of jokes, the filtered total, and the
	// normalized spec actually used.
	ListPage(ctx context.Context, req services.ListRequest) ([]domain.Joke, int64, repo.ListSpec, error)
	// ByCategory returns all jokes in a category.
	ByCategory(ctx context.Context, category string) ([]domain.Joke, error)
	// Search performs a substring match over setup and punchline.
	Search(ctx context.Context, query string) ([]domain.Joke, error)
}

// RatingService defines the rating aggregation operation.
type RatingService interface {
	// Rate folds one rating into the joke's running mean.
	Rate(ctx context.Context, id int64, rating float64) (*domain.Joke, error)
}

// FavoriteService defines per-client favorite tracking operations.
type FavoriteService interface {
	// Favorite marks a joke as a favorite of the client; created reports
	// whether a new row was inserted.
	Favorite(ctx context.Context, jokeID int64, clientID string) (created bool, err error)
	// List returns the client's favorites, most recent first.
	List(ctx context.Context, clientID string) ([]domain.Joke, error)
}

// StatsService defines the read-only aggregation views.
type StatsService interface {
	// Stats assembles the catalog summary.
	Stats(ctx context.Context) (*services.CatalogStats, error)
	// Categories lists categories with live joke counts.
	Categories(ctx context.Context) ([]repo.CategoryWithCount, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for jokes, ratings, favorites, and stats.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	jokes     JokeService
	ratings   RatingService
	favorites FavoriteService
	stats     StatsService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(jokes JokeService, ratings RatingService, favorites FavoriteService, stats StatsService) *Handlers {
	return &Handlers{jokes: jokes, ratings: ratings, favorites: favorites, stats: stats}
}

//
// DTOs
//

// CreateJokeRequest is the JSON payload for creating a joke.
type CreateJokeRequest struct {
	Setup     string `json:"setup" example:"Why do programmers prefer dark mode?"`
	Punchline string `json:"punchline" example:"Because light attracts bugs!"`
	// Category defaults to "general" when omitted.
	Category string `json:"category" example:"programming"`
}

// UpdateJokeRequest is the JSON payload for a partial joke update.
// Omitted fields are left untouched.
type UpdateJokeRequest struct {
	Setup     *string `json:"setup"`
	Punchline *string `json:"punchline"`
	Category  *string `json:"category"`
}

// RateJokeRequest is the JSON payload for rating a joke.
type RateJokeRequest struct {
	// Rating must be between 1 and 5 (fractional values allowed).
	Rating *float64 `json:"rating" binding:"required" example:"4.5"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// ListJokesResponse wraps a page of jokes and pagination information.
type ListJokesResponse struct {
	Jokes      []domain.Joke `json:"jokes"`
	Pagination Pagination    `json:"pagination"`
}

// CategoryJokesResponse wraps all jokes of one category.
type CategoryJokesResponse struct {
	Category string        `json:"category"`
	Count    int           `json:"count"`
	Jokes    []domain.Joke `json:"jokes"`
}

// SearchJokesResponse wraps substring search results.
type SearchJokesResponse struct {
	Query   string        `json:"query"`
	Count   int           `json:"count"`
	Results []domain.Joke `json:"results"`
}

//
// Helpers
//

// jokeID parses the :id path parameter. A non-integer id yields (0, false)
// and the caller is responsible for the 400 response.
func jokeID(c *gin.Context) (int64, bool) {
	return utils.ParseID(c.Param("id"))
}

//
// Handlers
//

// ListJokes godoc
// @ID          listJokes
// @Summary     List jokes (paginated)
// @Description Returns a page of jokes with optional category filter and sorting.
// @Tags        Jokes
// @Produce     json
//
// @Param       page      query  int     false "Page number"        minimum(1) default(1)
// @Param       per_page  query  int     false "Items per page"     minimum(1) maximum(100) default(10)
// @Param       category  query  string  false "Filter by category" example(programming)
// @Param       sort      query  string  false "Sort field: rating, votes, created_at, id" default(created_at)
// @Param       order     query  string  false "Order: asc or desc" default(desc)
//
// @Success     200  {object} handlers.ListJokesResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /jokes [get]
func (h *Handlers) ListJokes(c *gin.Context) {
	req := services.ListRequest{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Page:     utils.AtoiDefault(c.Query("page"), 1),
		PerPage:  utils.AtoiDefault(c.Query("per_page"), repo.DefaultPerPage),
	}

	items, total, spec, err := h.jokes.ListPage(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}

	pages := int((total + int64(spec.PerPage) - 1) / int64(spec.PerPage))
	ok(c, http.StatusOK, ListJokesResponse{
		Jokes: items,
		Pagination: Pagination{
			Page:    spec.Page,
			PerPage: spec.PerPage,
			Total:   total,
			Pages:   pages,
		},
	})
}

// RandomJoke godoc
// @ID          randomJoke
// @Summary     Get a random joke
// @Tags        Jokes
// @Produce     json
//
// @Param       category  query  string  false "Restrict to category" example(dad)
//
// @Success     200  {object} domain.Joke
// @Failure     404  {object} handlers.ErrorResponse "No jokes found"
// @Router      /jokes/random [get]
func (h *Handlers) RandomJoke(c *gin.Context) {
	j, err := h.jokes.Random(c.Request.Context(), c.Query("category"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// GetJoke godoc
// @ID          getJoke
// @Summary     Get a joke by ID
// @Tags        Jokes
// @Produce     json
//
// @Param       id  path  int  true "Joke ID"
//
// @Success     200  {object} domain.Joke
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Joke not found"
// @Router      /jokes/{id} [get]
func (h *Handlers) GetJoke(c *gin.Context) {
	id, valid := jokeID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "joke id must be a positive integer")
		return
	}
	j, err := h.jokes.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// JokesByCategory godoc
// @ID          jokesByCategory
// @Summary     List all jokes in a category
// @Tags        Jokes
// @Produce     json
//
// @Param       category  path  string  true "Category name"
//
// @Success     200  {object} handlers.CategoryJokesResponse
// @Router      /jokes/category/{category} [get]
func (h *Handlers) JokesByCategory(c *gin.Context) {
	category := c.Param("category")
	items, err := h.jokes.ByCategory(c.Request.Context(), category)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CategoryJokesResponse{
		Category: category,
		Count:    len(items),
		Jokes:    items,
	})
}

// CreateJoke godoc
// @ID          createJoke
// @Summary     Create a new joke
// @Description Creates a joke in an existing category and returns the stored record.
// @Tags        Jokes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateJokeRequest  true "Create joke payload"
//
// @Success     201  {object} domain.Joke
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /jokes [post]
func (h *Handlers) CreateJoke(c *gin.Context) {
	var req CreateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	j, err := h.jokes.Create(c.Request.Context(), req.Setup, req.Punchline, req.Category)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, j)
}

// UpdateJoke godoc
// @ID          updateJoke
// @Summary     Update a joke
// @Description Applies a partial update; omitted fields are unchanged.
// @Tags        Jokes
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                         true "Joke ID"
// @Param       body  body  handlers.UpdateJokeRequest  true "Fields to update"
//
// @Success     200  {object} domain.Joke
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Joke not found"
// @Router      /jokes/{id} [put]
func (h *Handlers) UpdateJoke(c *gin.Context) {
	id, valid := jokeID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "joke id must be a positive integer")
		return
	}
	var req UpdateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	j, err := h.jokes.Update(c.Request.Context(), id, services.JokeUpdate{
		Setup:     req.Setup,
		Punchline: req.Punchline,
		Category:  req.Category,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// DeleteJoke godoc
// @ID          deleteJoke
// @Summary     Delete a joke
// @Tags        Jokes
// @Produce     json
//
// @Param       id  path  int  true "Joke ID"
//
// @Success     200  {object} map[string]string
// @Failure     404  {object} handlers.ErrorResponse "Joke not found"
// @Router      /jokes/{id} [delete]
func (h *Handlers) DeleteJoke(c *gin.Context) {
	id, valid := jokeID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "joke id must be a positive integer")
		return
	}
	if err := h.jokes.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "joke deleted"})
}

// RateJoke godoc
// @ID          rateJoke
// @Summary     Rate a joke (1-5)
// @Description Folds one rating into the joke's running mean and returns the updated record.
// @Tags        Jokes
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                       true "Joke ID"
// @Param       body  body  handlers.RateJokeRequest  true "Rating payload"
//
// @Success     200  {object} domain.Joke
// @Failure     400  {object} handlers.ErrorResponse "Rating out of range"
// @Failure     404  {object} handlers.ErrorResponse "Joke not found"
// @Router      /jokes/{id}/rate [post]
func (h *Handlers) RateJoke(c *gin.Context) {
	id, valid := jokeID(c)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "joke id must be a positive integer")
		return
	}
	var req RateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rating is required")
		return
	}
	j, err := h.ratings.Rate(c.Request.Context(), id, *req.Rating)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, j)
}

// SearchJokes godoc
// @ID          searchJokes
// @Summary     Search jokes
// @Description Case-insensitive substring match over setup and punchline.
// @Tags        Jokes
// @Produce     json
//
// @Param       q  query  string  true "Search query"
//
// @Success     200  {object} handlers.SearchJokesResponse
// @Failure     400  {object} handlers.ErrorResponse "Empty query"
// @Router      /search [get]
func (h *Handlers) SearchJokes(c *gin.Context) {
	query := c.Query("q")
	items, err := h.jokes.Search(c.Request.Context(), query)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, SearchJokesResponse{
		Query:   query,
		Count:   len(items),
		Results: items,
	})
}
