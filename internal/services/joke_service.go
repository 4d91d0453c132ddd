// Package services – JokeService
//
// This file implements the JokeService, which manages the joke catalog
// lifecycle: create, partial update, delete, fetch, random pick, filtered
// and paginated listing, and free-text search. It enforces the category
// guard (every written joke must reference an existing category) and the
// permissive listing semantics (unrecognized sort input falls back to
// defaults, oversized page sizes are clamped).
//
// Service-level errors (e.g. ErrMissingFields, ErrUnknownCategory,
// ErrJokeNotFound, ErrEmptyQuery) are returned for predictable cases so
// handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
)

// DefaultCategory is assigned when a create request names no category.
const DefaultCategory = "general"

// ListRequest carries raw, caller-supplied listing parameters. Values are
// normalized (sort fallback, page clamping) before reaching the store, so a
// malformed but harmless request still succeeds.
type ListRequest struct {
	Category string
	Sort     string
	Order    string
	Page     int
	PerPage  int
}

// JokeUpdate describes a partial update. Nil fields are left untouched.
type JokeUpdate struct {
	Setup     *string
	Punchline *string
	Category  *string
}

// JokeService provides catalog-level operations over jokes. It is safe for
// concurrent use; each call maps to at most one transaction.
type JokeService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewJokeService constructs a JokeService bound to db.
func NewJokeService(db *gorm.DB) *JokeService {
	return &JokeService{DB: db}
}

// queryFolder case-folds search input so the documented case-insensitive
// match rule holds regardless of the store's collation.
var queryFolder = cases.Fold()

// Create validates and inserts a new joke.
//
// Rules:
//   - setup and punchline must be non-empty after trimming; otherwise
//     ErrMissingFields.
//   - an empty category defaults to DefaultCategory.
//   - the category must exist; otherwise ErrUnknownCategory and no row is
//     inserted. The existence check and insert run in one transaction so a
//     failed write leaves no partial state.
func (s *JokeService) Create(ctx context.Context, setup, punchline, category string) (*domain.Joke, error) {
	setup = strings.TrimSpace(setup)
	punchline = strings.TrimSpace(punchline)
	if setup == "" || punchline == "" {
		return nil, ErrMissingFields
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	var created *domain.Joke
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := repo.CategoryExists(ctx, tx, category)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownCategory
		}
		created, err = repo.CreateJoke(ctx, tx, setup, punchline, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get fetches a joke by ID, or ErrJokeNotFound.
func (s *JokeService) Get(ctx context.Context, id int64) (*domain.Joke, error) {
	j, err := repo.GetJoke(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}
	return j, nil
}

// Update applies a partial update to a joke and returns the updated record.
//
// Rules:
//   - the joke must exist; otherwise ErrJokeNotFound.
//   - a nil field is left untouched; an update with no recognized fields
//     yields ErrNothingToUpdate.
//   - when the category changes, the new name must exist; otherwise
//     ErrUnknownCategory and nothing is written.
//   - UpdatedAt advances as part of the content edit.
func (s *JokeService) Update(ctx context.Context, id int64, upd JokeUpdate) (*domain.Joke, error) {
	fields := map[string]any{}
	if upd.Setup != nil {
		fields["setup"] = strings.TrimSpace(*upd.Setup)
	}
	if upd.Punchline != nil {
		fields["punchline"] = strings.TrimSpace(*upd.Punchline)
	}
	if upd.Category != nil {
		fields["category"] = strings.TrimSpace(*upd.Category)
	}
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	var updated *domain.Joke
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetJoke(ctx, tx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrJokeNotFound
			}
			return err
		}
		if cat, ok := fields["category"]; ok {
			exists, err := repo.CategoryExists(ctx, tx, cat.(string))
			if err != nil {
				return err
			}
			if !exists {
				return ErrUnknownCategory
			}
		}
		if err := repo.UpdateJokeFields(ctx, tx, id, fields); err != nil {
			return err
		}
		var err error
		updated, err = repo.GetJoke(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a joke by ID, or ErrJokeNotFound.
func (s *JokeService) Delete(ctx context.Context, id int64) error {
	if err := repo.DeleteJoke(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrJokeNotFound
		}
		return err
	}
	return nil
}

// Random returns one random joke, optionally restricted to a category.
// Returns ErrNoJokes when nothing matches.
func (s *JokeService) Random(ctx context.Context, category string) (*domain.Joke, error) {
	j, err := repo.RandomJoke(ctx, s.DB, strings.TrimSpace(category))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoJokes
		}
		return nil, err
	}
	return j, nil
}

// ListPage returns one page of jokes plus the total count of the filtered
// set. Unrecognized sort/order values silently fall back to created_at/desc
// and the page size is clamped; a page beyond the data yields an empty slice
// with the correct total, not an error.
func (s *JokeService) ListPage(ctx context.Context, req ListRequest) ([]domain.Joke, int64, repo.ListSpec, error) {
	spec := repo.ListSpec{
		Category:  strings.TrimSpace(req.Category),
		Sort:      repo.SortField(req.Sort),
		Direction: repo.SortDirection(strings.ToLower(req.Order)),
		Page:      req.Page,
		PerPage:   req.PerPage,
	}.Normalize()

	items, total, err := repo.ListJokesPage(ctx, s.DB, spec)
	if err != nil {
		return nil, 0, spec, err
	}
	if items == nil {
		items = []domain.Joke{}
	}
	return items, total, spec, nil
}

// ByCategory returns every joke in the named category, unpaginated.
// An unknown or empty category yields an empty slice.
func (s *JokeService) ByCategory(ctx context.Context, category string) ([]domain.Joke, error) {
	items, err := repo.ListJokesByCategory(ctx, s.DB, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Joke{}
	}
	return items, nil
}

// Search performs a case-insensitive substring match over setup and
// punchline, unfiltered by category and unpaginated. An empty query is a
// caller error (ErrEmptyQuery), not an empty-result search.
func (s *JokeService) Search(ctx context.Context, query string) ([]domain.Joke, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	pattern := "%" + escapeLike(queryFolder.String(query)) + "%"
	items, err := repo.SearchJokes(ctx, s.DB, pattern)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Joke{}
	}
	return items, nil
}

// escapeLike neutralizes LIKE wildcards in user input so "100%" matches the
// literal text instead of everything.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
