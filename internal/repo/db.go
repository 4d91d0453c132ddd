// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and catalog seeding.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// EnableTracing installs the GORM OpenTelemetry plugin so that store
// operations appear as spans under the enclosing HTTP request trace.
func EnableTracing(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

// AutoMigrate creates or updates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Joke{},
		&domain.Favorite{},
	)
}

// Seed populates an empty catalog with the stock categories and jokes.
// It is a no-op when the jokes table already has rows, so it is safe to
// call on every startup.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&domain.Joke{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	cats := []domain.Category{
		{Name: "programming", Description: "Programming and coding jokes"},
		{Name: "python", Description: "Python-specific jokes"},
		{Name: "general", Description: "General tech jokes"},
		{Name: "dad", Description: "Dad jokes for programmers"},
		{Name: "dark", Description: "Dark humor for devs"},
	}

	jokes := []domain.Joke{
		{Setup: "Why do programmers prefer dark mode?", Punchline: "Because light attracts bugs!", Category: "programming"},
		{Setup: "Why do Python programmers prefer snakes?", Punchline: "Because they don't have to deal with Java!", Category: "python"},
		{Setup: "How many programmers does it take to change a light bulb?", Punchline: "None, that's a hardware problem!", Category: "general"},
		{Setup: "Why did the programmer quit his job?", Punchline: "Because he didn't get arrays!", Category: "dad"},
		{Setup: "What's a programmer's favorite hangout place?", Punchline: "Foo Bar!", Category: "programming"},
		{Setup: "Why do programmers always mix up Halloween and Christmas?", Punchline: "Because Oct 31 equals Dec 25!", Category: "programming"},
		{Setup: "What do you call a programmer from Finland?", Punchline: "Nerdic!", Category: "general"},
		{Setup: "Why did the Python data scientist get arrested?", Punchline: "She was caught trying to import pandas into the country!", Category: "python"},
		{Setup: "What's the object-oriented way to become wealthy?", Punchline: "Inheritance!", Category: "programming"},
		{Setup: "Why did the developer go broke?", Punchline: "Because he used up all his cache!", Category: "dad"},
		{Setup: "How do you comfort a JavaScript bug?", Punchline: "You console it!", Category: "programming"},
		{Setup: "Why do Java developers wear glasses?", Punchline: "Because they don't C#!", Category: "programming"},
		{Setup: "What's a programmer's favorite snack?", Punchline: "Microchips!", Category: "dad"},
		{Setup: "Why was the JavaScript developer sad?", Punchline: "Because he didn't Node how to Express himself!", Category: "programming"},
		{Setup: "What do you call 8 hobbits?", Punchline: "A hobbyte!", Category: "dad"},
		{Setup: "Why do programmers hate nature?", Punchline: "It has too many bugs!", Category: "programming"},
		{Setup: "How do you tell HTML from HTML5?", Punchline: "Try it out in Internet Explorer. Did it work? No? It's HTML5!", Category: "programming"},
		{Setup: "What's the best thing about a Boolean?", Punchline: "Even if you're wrong, you're only off by a bit!", Category: "programming"},
		{Setup: "Why did the function quit its job?", Punchline: "It didn't get a callback!", Category: "programming"},
		{Setup: "What's a pirate's favorite programming language?", Punchline: "You'd think it's R, but it's actually the C!", Category: "dad"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cats).Error; err != nil {
			return err
		}
		return tx.Create(&jokes).Error
	})
}
