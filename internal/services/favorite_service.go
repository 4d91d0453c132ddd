// Package services – FavoriteService
//
// This file implements the FavoriteService, which tracks which jokes a
// client has favorited. Favoriting has set semantics: the first request for
// a (joke, client) pair inserts a row, every later one is a no-op reported
// as created=false, never an error. The check-then-insert runs inside a
// transaction and the schema's composite unique key backstops races, so a
// duplicate can never materialize.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
)

// FavoriteService implements per-client favorite tracking. The client
// identity is an opaque string supplied by the transport layer; the service
// applies no validation beyond using it as a key.
type FavoriteService struct {
	// DB is the database handle used for all favorite operations.
	DB *gorm.DB
}

// NewFavoriteService constructs a FavoriteService bound to db.
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// Favorite marks jokeID as a favorite of clientID.
//
// Semantics:
//   - jokeID must exist; otherwise ErrJokeNotFound.
//   - returns created=true when a new row was inserted, created=false when
//     the pair already existed (idempotent replay, not an error).
//
// Concurrency & atomicity:
//   - The existence check and insert run in one transaction. If two
//     concurrent calls slip past the check, the unique (joke_id, client_id)
//     index rejects the second insert and it is reported as created=false.
func (s *FavoriteService) Favorite(ctx context.Context, jokeID int64, clientID string) (created bool, err error) {
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetJoke(ctx, tx, jokeID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrJokeNotFound
			}
			return err
		}

		exists, err := repo.FavoriteExists(ctx, tx, jokeID, clientID)
		if err != nil {
			return err
		}
		if exists {
			created = false
			return nil
		}

		if err := repo.CreateFavorite(ctx, tx, jokeID, clientID); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				created = false
				return nil
			}
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// List returns the client's favorited jokes, most recently favorited first,
// joined against current joke state.
func (s *FavoriteService) List(ctx context.Context, clientID string) ([]domain.Joke, error) {
	items, err := repo.ListFavoriteJokes(ctx, s.DB, clientID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Joke{}
	}
	return items, nil
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
