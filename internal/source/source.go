// Package source reads bookmark stores of the installed browsers and
// flattens their folder trees into dated records.
package source

import (
	"context"
	"time"

	"github.com/mkbrn/rewind/internal/model"
	"github.com/mkbrn/rewind/internal/urlnorm"
)

// Node is one entry in a browser's bookmark forest. Leaf bookmarks carry a
// URL and a creation time; folders carry children. A node may carry neither,
// in which case it contributes nothing.
type Node struct {
	Title    string
	URL      string
	Added    time.Time
	Children []Node
}

// Source reads one browser's bookmark store.
type Source interface {
	// Name identifies the source for logs and the sources listing.
	Name() string
	// Load reads the entire store and returns flattened records.
	Load(ctx context.Context) ([]model.Bookmark, error)
}

// Flatten walks a bookmark forest depth-first and emits leaf bookmarks in
// insertion order. A node is a leaf iff it has both a URL and a creation
// timestamp. No sorting happens here; grouping owns ordering.
func Flatten(roots []Node) []model.Bookmark {
	var out []model.Bookmark
	for _, n := range roots {
		flattenInto(&out, n)
	}
	return out
}

func flattenInto(out *[]model.Bookmark, n Node) {
	if n.URL != "" && !n.Added.IsZero() {
		clean := urlnorm.Normalize(n.URL)
		*out = append(*out, model.Bookmark{
			ID:       model.GenerateID(),
			Title:    n.Title,
			URL:      n.URL,
			CleanURL: clean,
			Domain:   urlnorm.Domain(n.URL),
			SavedAt:  n.Added,
		})
		return
	}
	for _, c := range n.Children {
		flattenInto(out, c)
	}
}

// Multi concatenates several sources into one.
type Multi []Source

// Name implements Source.
func (m Multi) Name() string { return "all sources" }

// Load implements Source. Loads each source in order; the first error wins.
func (m Multi) Load(ctx context.Context) ([]model.Bookmark, error) {
	var out []model.Bookmark
	for _, s := range m {
		list, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	return out, nil
}
