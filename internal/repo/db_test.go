package repo

import (
	"path/filepath"
	"testing"

	"github.com/jokedev/go-jokes-backend/internal/domain"
)

func TestOpenSQLite_CreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var mode string
	if err := db.Raw("PRAGMA journal_mode;").Scan(&mode).Error; err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("expected WAL journal mode, got %q", mode)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist", "catalog.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := newJokeRepoDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	for _, table := range []string{"jokes", "categories", "favorites"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %q after migration", table)
		}
	}
}

func TestSeed_PopulatesOnceOnly(t *testing.T) {
	db := newJokeRepoDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var jokes, cats int64
	if err := db.Model(&domain.Joke{}).Count(&jokes).Error; err != nil {
		t.Fatalf("count jokes: %v", err)
	}
	if err := db.Model(&domain.Category{}).Count(&cats).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if jokes != 20 {
		t.Fatalf("expected 20 stock jokes, got %d", jokes)
	}
	if cats != 5 {
		t.Fatalf("expected 5 stock categories, got %d", cats)
	}

	// Idempotent: a second run must not duplicate the catalog.
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if err := db.Model(&domain.Joke{}).Count(&jokes).Error; err != nil {
		t.Fatalf("recount jokes: %v", err)
	}
	if jokes != 20 {
		t.Fatalf("Seed is not idempotent: %d jokes after second run", jokes)
	}

	// Every seeded joke references a seeded category.
	var orphans int64
	err := db.Model(&domain.Joke{}).
		Where("category NOT IN (?)", db.Model(&domain.Category{}).Select("name")).
		Count(&orphans).Error
	if err != nil {
		t.Fatalf("orphan check: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("%d seeded jokes reference unknown categories", orphans)
	}
}
