package search_test

import (
	"testing"

	"github.com/mkbrn/rewind/internal/model"
	"github.com/mkbrn/rewind/internal/search"
)

func TestFuzzySearch(t *testing.T) {
	list := []model.Bookmark{
		{ID: "1", Title: "Go Blog", CleanURL: "https://go.dev/blog"},
		{ID: "2", Title: "Rust Book", CleanURL: "https://doc.rust-lang.org"},
		{ID: "3", Title: "Golang Weekly", CleanURL: "https://golangweekly.com"},
	}

	results := search.FuzzySearch(list, "gol")
	if len(results) == 0 {
		t.Fatal("expected matches for 'gol'")
	}
	for _, r := range results {
		if r.Bookmark.ID == "2" {
			t.Error("'Rust Book' should not match 'gol'")
		}
	}
}

func TestFuzzySearch_EmptyQuery(t *testing.T) {
	list := []model.Bookmark{
		{ID: "1", Title: "Go Blog"},
	}

	if results := search.FuzzySearch(list, ""); results != nil {
		t.Errorf("expected nil for empty query, got %d results", len(results))
	}
}

func TestFuzzySearch_FallsBackToURLTitle(t *testing.T) {
	list := []model.Bookmark{
		{ID: "1", Title: "", CleanURL: "https://untitled.example.com"},
	}

	results := search.FuzzySearch(list, "untitled")
	if len(results) != 1 {
		t.Fatalf("expected the untitled bookmark to match by URL, got %d", len(results))
	}
}
