package source_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkbrn/rewind/internal/source"
)

// writePlaces creates a minimal places.sqlite with the tables Load reads.
func writePlaces(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	schema := `
		CREATE TABLE moz_places (
			id INTEGER PRIMARY KEY,
			url TEXT
		);
		CREATE TABLE moz_bookmarks (
			id INTEGER PRIMARY KEY,
			type INTEGER NOT NULL,
			fk INTEGER,
			title TEXT,
			dateAdded INTEGER NOT NULL DEFAULT 0
		);

		INSERT INTO moz_places (id, url) VALUES
			(1, 'https://go.dev'),
			(2, 'https://news.example.com/article');

		INSERT INTO moz_bookmarks (id, type, fk, title, dateAdded) VALUES
			(1, 2, NULL, 'A Folder', 1578000000000000),
			(2, 1, 1, 'Go', 1578000000000000),
			(3, 1, 2, NULL, 1578086400000000),
			(4, 1, 1, 'Never Dated', 0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
}

func TestFirefoxSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.sqlite")
	writePlaces(t, path)

	list, err := source.FirefoxSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Folder row (type 2) and zero-dateAdded row are excluded.
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}

	first := list[0]
	if first.Title != "Go" {
		t.Errorf("Title = %q", first.Title)
	}
	want := time.UnixMicro(1578000000000000)
	if !first.SavedAt.Equal(want) {
		t.Errorf("SavedAt = %v, want %v", first.SavedAt, want)
	}

	// NULL title comes back as empty string, not an error.
	second := list[1]
	if second.Title != "" {
		t.Errorf("expected empty title, got %q", second.Title)
	}
	if second.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", second.Domain)
	}
}

func TestFirefoxSource_LoadMissingFile(t *testing.T) {
	s := source.FirefoxSource{Path: filepath.Join(t.TempDir(), "places.sqlite")}
	if _, err := s.Load(context.Background()); err == nil {
		t.Error("expected error for missing database")
	}
}
