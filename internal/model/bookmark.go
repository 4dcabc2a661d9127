package model

import "time"

// Bookmark is a flat record produced by walking a browser's bookmark tree.
type Bookmark struct {
	ID       string    // generated at load time, stable for one load
	Title    string    // display string, may be empty
	URL      string    // original string as stored by the browser
	CleanURL string    // URL with suspender wrappers stripped, scheme ensured
	Domain   string    // display domain derived from CleanURL, "" if unparsable
	SavedAt  time.Time // creation timestamp assigned by the browser, never recomputed
}

// Year returns the calendar year the bookmark was saved in.
func (b Bookmark) Year() int {
	return b.SavedAt.Year()
}

// DisplayTitle returns the title, falling back to the cleaned URL for
// bookmarks saved without one.
func (b Bookmark) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.CleanURL
}
