// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file defines the typed listing spec used to build
// filtered, sorted, paginated joke queries.
//
// Sort fields and directions come from closed enums validated against an
// allow-list, so only vetted identifiers ever reach the ORDER BY clause.
// Caller-supplied filter values (the category name) are always passed as
// bound parameters, never interpolated into query text.
package repo

// SortField names a joke column that listings may be ordered by.
type SortField string

// Allowed sort fields. Anything else falls back to SortCreatedAt.
const (
	SortCreatedAt SortField = "created_at"
	SortRating    SortField = "rating"
	SortVotes     SortField = "votes"
	SortID        SortField = "id"
)

// SortDirection is the ordering direction for a listing.
type SortDirection string

// Allowed directions. Anything else falls back to SortDesc.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Pagination bounds. PerPage is clamped into [1, MaxPerPage]; values above
// the cap are silently reduced rather than rejected.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListSpec describes one joke listing: an optional category filter, a sort
// order, and a page slice. Zero values are usable; Normalize fills in the
// documented defaults.
type ListSpec struct {
	// Category filters the listing when non-empty. Bound, never interpolated.
	Category string
	// Sort and Direction control ordering; unrecognized values are replaced
	// with created_at / desc rather than treated as errors, so the read path
	// always succeeds for harmless malformed input.
	Sort      SortField
	Direction SortDirection
	// Page is 1-based. PerPage is the page size before clamping.
	Page    int
	PerPage int
}

// Normalize returns a copy of the spec with sort, direction, page, and page
// size coerced into their valid ranges.
func (s ListSpec) Normalize() ListSpec {
	switch s.Sort {
	case SortCreatedAt, SortRating, SortVotes, SortID:
	default:
		s.Sort = SortCreatedAt
	}
	switch s.Direction {
	case SortAsc, SortDesc:
	default:
		s.Direction = SortDesc
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PerPage < 1 {
		s.PerPage = DefaultPerPage
	}
	if s.PerPage > MaxPerPage {
		s.PerPage = MaxPerPage
	}
	return s
}

// Offset returns the row offset of the page described by the (normalized) spec.
func (s ListSpec) Offset() int {
	return (s.Page - 1) * s.PerPage
}

// OrderClause renders the ORDER BY fragment. Safe to interpolate because
// both parts are enum values that survived Normalize's allow-list.
func (s ListSpec) OrderClause() string {
	return string(s.Sort) + " " + string(s.Direction)
}
