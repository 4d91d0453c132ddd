package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFavoriteService_Favorite_NotFound(t *testing.T) {
	db := newServiceDB(t, "general")
	svc := NewFavoriteService(db)

	if _, err := svc.Favorite(context.Background(), 404, "c1"); !errors.Is(err, ErrJokeNotFound) {
		t.Fatalf("expected ErrJokeNotFound, got %v", err)
	}
}

func TestFavoriteService_Favorite_Idempotent(t *testing.T) {
	db := newServiceDB(t, "general")
	svc := NewFavoriteService(db)
	jokes := NewJokeService(db)

	j, err := jokes.Create(context.Background(), "s", "p", "general")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created, err := svc.Favorite(context.Background(), j.ID, "c1")
	if err != nil {
		t.Fatalf("first Favorite: %v", err)
	}
	if !created {
		t.Fatalf("first favorite must report created=true")
	}

	// Replays are no-ops, never errors, regardless of how often.
	for i := 0; i < 3; i++ {
		created, err := svc.Favorite(context.Background(), j.ID, "c1")
		if err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
		if created {
			t.Fatalf("replay %d must report created=false", i)
		}
	}

	list, err := svc.List(context.Background(), "c1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("replays must not duplicate rows: got %d", len(list))
	}
}

func TestFavoriteService_Favorite_PerClient(t *testing.T) {
	db := newServiceDB(t, "general")
	svc := NewFavoriteService(db)
	jokes := NewJokeService(db)

	j, err := jokes.Create(context.Background(), "s", "p", "general")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, client := range []string{"c1", "c2", "c3"} {
		created, err := svc.Favorite(context.Background(), j.ID, client)
		if err != nil {
			t.Fatalf("Favorite %s: %v", client, err)
		}
		if !created {
			t.Fatalf("distinct client %s must create a new row", client)
		}
	}
}

func TestFavoriteService_List(t *testing.T) {
	db := newServiceDB(t, "general")
	svc := NewFavoriteService(db)
	jokes := NewJokeService(db)

	// Empty favorites: success, empty non-nil slice.
	list, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", list)
	}

	var ids []int64
	for i := 0; i < 3; i++ {
		j, err := jokes.Create(context.Background(), fmt.Sprintf("s%d", i), "p", "general")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, j.ID)
		if _, err := svc.Favorite(context.Background(), j.ID, "c1"); err != nil {
			t.Fatalf("Favorite: %v", err)
		}
	}

	list, err = svc.List(context.Background(), "c1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 favorites, got %d", len(list))
	}
	// Most recently favorited first.
	if list[0].ID != ids[2] || list[2].ID != ids[0] {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("UNIQUE constraint failed: favorites.joke_id, favorites.client_id"), true},
		{errors.New("duplicate key value violates unique constraint \"ux_fav_joke_client\""), true},
		{errors.New("connection refused"), false},
	}
	for _, tc := range tests {
		if got := isDuplicate(tc.err); got != tc.want {
			t.Fatalf("isDuplicate(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
