// Package search provides fuzzy matching for the quick-search command.
package search

import (
	"github.com/mkbrn/rewind/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkTitles implements fuzzy.Source over a bookmark slice.
type bookmarkTitles []model.Bookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].DisplayTitle()
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// FuzzySearch matches bookmarks by display title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearch(list []model.Bookmark, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, bookmarkTitles(list))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       list[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
