// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Joke model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a joke is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// updatableJokeColumns is the allow-list of columns a partial update may
// touch. UpdateJokeFields drops anything outside it, so dynamic SET clauses
// are only ever built from these names.
var updatableJokeColumns = map[string]struct{}{
	"setup":     {},
	"punchline": {},
	"category":  {},
}

// CreateJoke inserts a new joke row and returns it with the store-assigned ID
// and timestamps populated.
func CreateJoke(ctx context.Context, db *gorm.DB, setup, punchline, category string) (*domain.Joke, error) {
	j := &domain.Joke{
		Setup:     setup,
		Punchline: punchline,
		Category:  category,
	}
	if err := db.WithContext(ctx).Create(j).Error; err != nil {
		return nil, err
	}
	return j, nil
}

// GetJoke fetches a single joke by ID, or ErrNotFound if missing.
func GetJoke(ctx context.Context, db *gorm.DB, id int64) (*domain.Joke, error) {
	var j domain.Joke
	if err := db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// ListJokesPage returns one page of jokes matching the spec together with
// the total count of the filtered set (pre-pagination), so callers can
// compute page arithmetic. The spec must already be normalized.
func ListJokesPage(ctx context.Context, db *gorm.DB, spec ListSpec) ([]domain.Joke, int64, error) {
	q := db.WithContext(ctx).Model(&domain.Joke{})
	if spec.Category != "" {
		q = q.Where("category = ?", spec.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Joke
	err := q.
		Order(spec.OrderClause()).
		Offset(spec.Offset()).
		Limit(spec.PerPage).
		Find(&out).Error
	return out, total, err
}

// ListJokesByCategory returns every joke in a category, unpaginated,
// in natural retrieval order.
func ListJokesByCategory(ctx context.Context, db *gorm.DB, category string) ([]domain.Joke, error) {
	var out []domain.Joke
	err := db.WithContext(ctx).
		Where("category = ?", category).
		Find(&out).Error
	return out, err
}

// RandomJoke picks one joke uniformly at random, optionally restricted to a
// category. Returns ErrNotFound when the (filtered) catalog is empty.
func RandomJoke(ctx context.Context, db *gorm.DB, category string) (*domain.Joke, error) {
	q := db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var j domain.Joke
	if err := q.Order("RANDOM()").First(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// SearchJokes returns every joke whose setup or punchline contains the
// pattern (a LIKE pattern; backslash is the escape character). Matching is
// case-insensitive under SQLite's default LIKE collation.
func SearchJokes(ctx context.Context, db *gorm.DB, pattern string) ([]domain.Joke, error) {
	var out []domain.Joke
	err := db.WithContext(ctx).
		Where(`setup LIKE ? ESCAPE '\' OR punchline LIKE ? ESCAPE '\'`, pattern, pattern).
		Find(&out).Error
	return out, err
}

// UpdateJokeFields applies a partial update to a joke. Only allow-listed
// columns are written; anything else in fields is ignored. UpdatedAt is
// advanced by GORM as part of the update. Returns ErrNotFound when no row
// was touched.
func UpdateJokeFields(ctx context.Context, db *gorm.DB, id int64, fields map[string]any) error {
	filtered := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := updatableJokeColumns[k]; ok {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Joke{}).
		Where("id = ?", id).
		Updates(filtered)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteJoke removes a joke by ID. Returns ErrNotFound when the joke does
// not exist. Favorites referencing the joke are cascade-deleted by the
// foreign key constraint.
func DeleteJoke(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(&domain.Joke{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CompareAndSwapRating writes new rating state for a joke only when its vote
// count still equals oldVotes. The vote count acts as a version column, so
// two raters that read the same state cannot both win; the loser observes
// swapped == false and retries with fresh values.
//
// The write goes through UpdateColumns so UpdatedAt is left untouched:
// rating events are not content edits.
func CompareAndSwapRating(ctx context.Context, db *gorm.DB, id, oldVotes int64, newRating float64, newVotes int64) (bool, error) {
	res := db.WithContext(ctx).
		Model(&domain.Joke{}).
		Where("id = ? AND votes = ?", id, oldVotes).
		UpdateColumns(map[string]any{
			"rating": newRating,
			"votes":  newVotes,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
