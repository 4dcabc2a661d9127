package timeline

import (
	"time"

	"github.com/mkbrn/rewind/internal/model"
)

// Day range and entries-per-year bounds, matching the view's sliders.
const (
	MinDayRange = 1
	MaxDayRange = 12

	MinEntriesPerYear = 1
	MaxEntriesPerYear = 10
)

// ViewState holds every user-adjustable parameter of the timeline view.
// It is plain data; the TUI owns the single live instance and derived
// groups are recomputed from it wholesale, never mutated in place.
type ViewState struct {
	SelectedDate   time.Time
	DayRange       int
	EntriesPerYear int
	Chronological  bool // ascending year order when set
	SearchTerm     string
	SearchAll      bool // search the full bookmark set, not just the window
	ExpandedYears  map[int]bool
}

// NewViewState returns a ViewState centered on the given date with defaults.
func NewViewState(date time.Time) ViewState {
	return ViewState{
		SelectedDate:   date,
		DayRange:       3,
		EntriesPerYear: 5,
		ExpandedYears:  make(map[int]bool),
	}
}

// ClampDayRange bounds v to the slider range.
func ClampDayRange(v int) int {
	if v < MinDayRange {
		return MinDayRange
	}
	if v > MaxDayRange {
		return MaxDayRange
	}
	return v
}

// ClampEntriesPerYear bounds v to the slider range.
func ClampEntriesPerYear(v int) int {
	if v < MinEntriesPerYear {
		return MinEntriesPerYear
	}
	if v > MaxEntriesPerYear {
		return MaxEntriesPerYear
	}
	return v
}

// ToggleYear flips a year's membership in the expanded set.
func (v *ViewState) ToggleYear(year int) {
	if v.ExpandedYears == nil {
		v.ExpandedYears = make(map[int]bool)
	}
	if v.ExpandedYears[year] {
		delete(v.ExpandedYears, year)
	} else {
		v.ExpandedYears[year] = true
	}
}

// Expanded reports whether a year is expanded.
func (v ViewState) Expanded(year int) bool {
	return v.ExpandedYears[year]
}

// Window filters all down to the date-matched subset for the state's
// selected date and day range.
func Window(all []model.Bookmark, vs ViewState, now time.Time) []model.Bookmark {
	var out []model.Bookmark
	for _, b := range all {
		if Matches(b.SavedAt, vs.SelectedDate, vs.DayRange, now) {
			out = append(out, b)
		}
	}
	return out
}

// Recompute derives the displayed year groups from the two retained lists
// and the view state. In search-all mode with a non-empty term the search
// runs over the full set; otherwise it narrows the date window. An empty
// term is always identity, so toggling search-all without a term reproduces
// the windowed view exactly.
func Recompute(all, windowed []model.Bookmark, vs ViewState) []YearGroup {
	source := windowed
	if vs.SearchAll && vs.SearchTerm != "" {
		source = all
	}

	groups := GroupByYear(SearchFilter(source, vs.SearchTerm))
	SortGroups(groups, vs.Chronological)
	return groups
}
