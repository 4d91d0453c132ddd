// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving idempotency rules to the services
// package.
//
// Error semantics:
//   - A duplicate favorite (same joke_id, client_id) relies on the database
//     unique constraint and is returned as a raw DB error. The service layer
//     translates that into "already favorited" rather than a failure.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// CreateFavorite inserts a favorite row for the given joke and client.
// The (joke_id, client_id) pair must be unique, enforced by the schema.
func CreateFavorite(ctx context.Context, db *gorm.DB, jokeID int64, clientID string) error {
	f := &domain.Favorite{
		JokeID:    jokeID,
		ClientID:  clientID,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(f).Error
}

// FavoriteExists reports whether the client has already favorited the joke.
func FavoriteExists(ctx context.Context, db *gorm.DB, jokeID int64, clientID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("joke_id = ? AND client_id = ?", jokeID, clientID).
		Count(&n).Error
	return n > 0, err
}

// ListFavoriteJokes returns the client's favorited jokes joined against
// current joke state, most recently favorited first. Edits to a joke after
// favoriting are therefore reflected in the listing.
func ListFavoriteJokes(ctx context.Context, db *gorm.DB, clientID string) ([]domain.Joke, error) {
	var out []domain.Joke
	err := db.WithContext(ctx).
		Model(&domain.Joke{}).
		Joins("INNER JOIN favorites ON favorites.joke_id = jokes.id").
		Where("favorites.client_id = ?", clientID).
		Order("favorites.created_at DESC, favorites.id DESC").
		Find(&out).Error
	return out, err
}
