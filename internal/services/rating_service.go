// Package services – RatingService
//
// This file implements the RatingService, which folds user ratings into a
// per-joke running mean without retaining individual rating events. The
// update must be atomic per joke: two concurrent raters must not both read
// the same pre-update state or votes are lost and the mean drifts. The
// original service left this unspecified; here the write is a
// compare-and-swap keyed on the vote count, which acts as a natural version
// column, with bounded retries on contention.
package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
)

// defaultRateRetries bounds the CAS loop. Contention on a single joke is
// short-lived; if the swap still loses after this many rounds something is
// wrong with the store and the caller gets ErrRatingContention.
const defaultRateRetries = 5

// RatingService applies ratings to jokes. Safe for concurrent use.
type RatingService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// MaxRetries overrides the CAS retry bound when > 0.
	MaxRetries int
}

// NewRatingService constructs a RatingService bound to db.
func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// Rate records one rating for the joke and returns the updated record.
//
// Rules:
//   - rating must satisfy 1 <= rating <= 5 (NaN rejected); otherwise
//     ErrInvalidRating and the joke is left untouched.
//   - the joke must exist; otherwise ErrJokeNotFound.
//   - newVotes = votes+1; newRating = (rating*votes + r) / newVotes.
//   - UpdatedAt does not advance: a rating is not a content edit.
//
// Concurrency: the read-compute-write cycle retries until the conditional
// write lands against the state it was computed from, so concurrent ratings
// on the same joke serialize and the mean stays exact.
func (s *RatingService) Rate(ctx context.Context, id int64, rating float64) (*domain.Joke, error) {
	if math.IsNaN(rating) || rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	retries := s.MaxRetries
	if retries <= 0 {
		retries = defaultRateRetries
	}

	for attempt := 0; attempt < retries; attempt++ {
		j, err := repo.GetJoke(ctx, s.DB, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrJokeNotFound
			}
			return nil, err
		}

		newVotes := j.Votes + 1
		newRating := (j.Rating*float64(j.Votes) + rating) / float64(newVotes)

		swapped, err := repo.CompareAndSwapRating(ctx, s.DB, id, j.Votes, newRating, newVotes)
		if err != nil {
			return nil, err
		}
		if swapped {
			j.Rating = newRating
			j.Votes = newVotes
			return j, nil
		}
		// Lost the race; reload and recompute.
	}
	return nil, ErrRatingContention
}
