// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Category
// model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// CategoryWithCount is a Category annotated with the number of jokes
// currently assigned to it. The count is computed per request, never cached.
type CategoryWithCount struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	JokeCount   int64  `json:"joke_count"`
}

// CreateCategory inserts a new category row. Name uniqueness is enforced by
// the schema; a duplicate surfaces as the raw constraint error.
func CreateCategory(ctx context.Context, db *gorm.DB, name, description string) (*domain.Category, error) {
	c := &domain.Category{Name: name, Description: description}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CategoryExists reports whether a category with the given name exists.
func CategoryExists(ctx context.Context, db *gorm.DB, name string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("name = ?", name).
		Count(&n).Error
	return n > 0, err
}

// ListCategoriesWithCounts returns all categories with their live joke
// counts, via a single LEFT JOIN aggregate so empty categories report zero.
func ListCategoriesWithCounts(ctx context.Context, db *gorm.DB) ([]CategoryWithCount, error) {
	var out []CategoryWithCount
	err := db.WithContext(ctx).
		Model(&domain.Category{}).
		Select("categories.id, categories.name, categories.description, COUNT(jokes.id) AS joke_count").
		Joins("LEFT JOIN jokes ON jokes.category = categories.name").
		Group("categories.id").
		Order("categories.id").
		Scan(&out).Error
	return out, err
}
