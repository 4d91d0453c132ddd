// Package domain defines the persistence models for jokes, categories, and
// favorites. These types are mapped with GORM and form the core data layer
// of the joke catalog.
package domain

import "time"

// Joke is a single catalog entry: a setup/punchline pair assigned to a
// category, carrying its aggregated rating state.
//
// Fields:
//   - ID: auto-incremented integer primary key, assigned by the store.
//   - Setup / Punchline: the joke text; both are required.
//   - Category: name of an existing Category (checked at write time).
//   - Rating: running mean of submitted ratings in [0,5]; 0 until first vote.
//   - Votes: number of ratings folded into Rating.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM. UpdatedAt advances
//     on content edits only; rating events write their columns directly and
//     leave it untouched.
type Joke struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Setup     string    `json:"setup"      gorm:"type:text;not null"`
	Punchline string    `json:"punchline"  gorm:"type:text;not null"`
	Category  string    `json:"category"   gorm:"type:varchar(64);not null;default:'general';index:idx_joke_category"`
	Rating    float64   `json:"rating"     gorm:"not null;default:0"`
	Votes     int64     `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Joke.
func (Joke) TableName() string { return "jokes" }

// Category groups jokes under a unique name. Jokes reference categories by
// name rather than by foreign key, mirroring the public API where clients
// filter by the name string.
type Category struct {
	ID          int64  `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"        gorm:"type:varchar(64);uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// Favorite records that a client marked a joke as a favorite. The
// (joke_id, client_id) pair is unique; re-favoriting is a no-op at the
// service layer. Favorites are never updated, only created, so the model
// carries no UpdatedAt column.
//
// ClientID is an opaque identity token supplied by the transport layer
// (typically derived from the client network address).
type Favorite struct {
	ID        int64     `json:"id"        gorm:"primaryKey;autoIncrement"`
	JokeID    int64     `json:"joke_id"   gorm:"not null;index;uniqueIndex:ux_fav_joke_client"`
	ClientID  string    `json:"client_id" gorm:"type:varchar(128);not null;index;uniqueIndex:ux_fav_joke_client"`
	CreatedAt time.Time `json:"created_at"`

	// Joke is the favorited row. Favorites are cascade-deleted when the
	// underlying joke is removed.
	Joke Joke `json:"-" gorm:"foreignKey:JokeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }
