// Package services defines the business logic for the joke catalog:
// listing, search, rating aggregation, favorites, and statistics.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// The taxonomy maps onto three caller-facing classes: invalid input
// (ErrMissingFields, ErrUnknownCategory, ErrInvalidRating, ErrEmptyQuery,
// ErrNothingToUpdate), not found (ErrJokeNotFound, ErrNoJokes), and store
// failure (anything else, propagated raw). Translation into HTTP status
// codes is performed at the handler layer.
package services

import "errors"

var (
	// ErrJokeNotFound indicates that the referenced joke does not exist.
	ErrJokeNotFound = errors.New("joke not found")

	// ErrNoJokes is returned by the random pick when the (possibly
	// category-filtered) catalog holds no jokes at all.
	ErrNoJokes = errors.New("no jokes found")

	// ErrMissingFields is returned when a create request lacks a setup or a
	// punchline.
	ErrMissingFields = errors.New("setup and punchline are required")

	// ErrUnknownCategory is returned when a write references a category name
	// that does not exist. This is a caller error, not a store failure.
	ErrUnknownCategory = errors.New("category does not exist")

	// ErrInvalidRating is returned when a rating value is outside [1, 5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyQuery is returned when a search is attempted with an empty
	// query string.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrNothingToUpdate is returned when an update request carries no
	// recognized fields.
	ErrNothingToUpdate = errors.New("no valid fields to update")

	// ErrRatingContention is returned when a rating could not be applied
	// after repeated compare-and-swap attempts. Callers should treat it as
	// a transient store failure.
	ErrRatingContention = errors.New("rating update contention")
)
