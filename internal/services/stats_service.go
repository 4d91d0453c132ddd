// Package services – StatsService
//
// Read-only aggregation over the catalog: summary statistics and category
// listings with live joke counts. Nothing here is cached; every call
// reflects current store state.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/jokedev/go-jokes-backend/internal/domain"
	"github.com/jokedev/go-jokes-backend/internal/repo"
)

// statsTopN is how many jokes the top-rated and most-voted rankings carry.
const statsTopN = 5

// CatalogStats is the summary view returned by Stats.
type CatalogStats struct {
	TotalJokes           int64                `json:"total_jokes"`
	TotalCategories      int64                `json:"total_categories"`
	TopRated             []domain.Joke        `json:"top_rated_jokes"`
	MostVoted            []domain.Joke        `json:"most_voted_jokes"`
	CategoryDistribution []repo.CategoryCount `json:"category_distribution"`
}

// StatsService derives summary views over the catalog. Safe for concurrent
// use; all methods are pure reads.
type StatsService struct {
	// DB is the GORM handle used for reads.
	DB *gorm.DB
}

// NewStatsService constructs a StatsService bound to db.
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Stats assembles the catalog summary: totals, top five jokes by rating,
// top five by votes, and the per-category distribution ordered by count
// descending. Rank ties break by the store's natural retrieval order.
func (s *StatsService) Stats(ctx context.Context) (*CatalogStats, error) {
	jokes, categories, err := repo.CatalogTotals(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	topRated, err := repo.TopRatedJokes(ctx, s.DB, statsTopN)
	if err != nil {
		return nil, err
	}
	mostVoted, err := repo.MostVotedJokes(ctx, s.DB, statsTopN)
	if err != nil {
		return nil, err
	}
	dist, err := repo.CategoryDistribution(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	if topRated == nil {
		topRated = []domain.Joke{}
	}
	if mostVoted == nil {
		mostVoted = []domain.Joke{}
	}
	if dist == nil {
		dist = []repo.CategoryCount{}
	}

	return &CatalogStats{
		TotalJokes:           jokes,
		TotalCategories:      categories,
		TopRated:             topRated,
		MostVoted:            mostVoted,
		CategoryDistribution: dist,
	}, nil
}

// Categories lists every category annotated with its live joke count,
// computed per request.
func (s *StatsService) Categories(ctx context.Context) ([]repo.CategoryWithCount, error) {
	out, err := repo.ListCategoriesWithCounts(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []repo.CategoryWithCount{}
	}
	return out, nil
}
