package timeline

import (
	"strings"

	"github.com/mkbrn/rewind/internal/model"
)

// SearchFilter returns the bookmarks matching every whitespace-separated
// term of query, case-insensitively, in either the title or the cleaned URL.
// An empty query returns the input unchanged.
func SearchFilter(list []model.Bookmark, query string) []model.Bookmark {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return list
	}

	var out []model.Bookmark
	for _, b := range list {
		title := strings.ToLower(b.Title)
		url := strings.ToLower(b.CleanURL)

		ok := true
		for _, term := range terms {
			if !strings.Contains(title, term) && !strings.Contains(url, term) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, b)
		}
	}
	return out
}
