// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the read-only aggregate queries behind
// the catalog statistics view. Each function is context-aware and safe to
// call from services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// CategoryCount is one row of the category distribution: a category name and
// how many jokes it currently holds.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CatalogTotals returns the total number of jokes and categories.
func CatalogTotals(ctx context.Context, db *gorm.DB) (jokes, categories int64, err error) {
	if err = db.WithContext(ctx).Model(&domain.Joke{}).Count(&jokes).Error; err != nil {
		return 0, 0, err
	}
	if err = db.WithContext(ctx).Model(&domain.Category{}).Count(&categories).Error; err != nil {
		return 0, 0, err
	}
	return jokes, categories, nil
}

// TopRatedJokes returns up to n jokes ordered by rating descending.
// Ties fall back to the store's natural retrieval order.
func TopRatedJokes(ctx context.Context, db *gorm.DB, n int) ([]domain.Joke, error) {
	var out []domain.Joke
	err := db.WithContext(ctx).
		Order("rating DESC").
		Limit(n).
		Find(&out).Error
	return out, err
}

// MostVotedJokes returns up to n jokes ordered by vote count descending.
func MostVotedJokes(ctx context.Context, db *gorm.DB, n int) ([]domain.Joke, error) {
	var out []domain.Joke
	err := db.WithContext(ctx).
		Order("votes DESC").
		Limit(n).
		Find(&out).Error
	return out, err
}

// CategoryDistribution returns per-category joke counts, largest first.
// Only categories that actually hold jokes appear.
func CategoryDistribution(ctx context.Context, db *gorm.DB) ([]CategoryCount, error) {
	var out []CategoryCount
	err := db.WithContext(ctx).
		Model(&domain.Joke{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}
