package domain

import "testing"

func TestTableNames(t *testing.T) {
	if got := (Joke{}).TableName(); got != "jokes" {
		t.Fatalf("Joke table = %q, want jokes", got)
	}
	if got := (Category{}).TableName(); got != "categories" {
		t.Fatalf("Category table = %q, want categories", got)
	}
	if got := (Favorite{}).TableName(); got != "favorites" {
		t.Fatalf("Favorite table = %q, want favorites", got)
	}
}

func TestJoke_ZeroValueIsUnrated(t *testing.T) {
	var j Joke
	if j.Rating != 0 || j.Votes != 0 {
		t.Fatalf("zero Joke must be unrated: %+v", j)
	}
}
