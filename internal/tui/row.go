package tui

import "github.com/mkbrn/rewind/internal/model"

// RowKind discriminates what a list row represents.
type RowKind int

const (
	// RowYear is a collapsible year header.
	RowYear RowKind = iota
	// RowBookmark is a single bookmark under an expanded year.
	RowBookmark
	// RowMore marks entries hidden by the per-year display cap.
	RowMore
)

// Row is one line of the flattened timeline list.
type Row struct {
	Kind     RowKind
	Year     int
	Count    int             // group size for RowYear, hidden count for RowMore
	Bookmark *model.Bookmark // set for RowBookmark
}

// IsYear returns true if this row is a year header.
func (r Row) IsYear() bool {
	return r.Kind == RowYear
}

// IsBookmark returns true if this row is a bookmark.
func (r Row) IsBookmark() bool {
	return r.Kind == RowBookmark
}
