package timeline

import (
	"sort"

	"github.com/mkbrn/rewind/internal/model"
)

// minGroupSize is the smallest year partition worth showing. A single lonely
// hit makes for a dull anniversary.
const minGroupSize = 2

// YearGroup holds one year's matching bookmarks, newest first.
type YearGroup struct {
	Year    int
	Entries []model.Bookmark
}

// GroupByYear partitions bookmarks by the calendar year they were saved in,
// drops partitions with fewer than two entries, and sorts each group's
// entries descending by SavedAt. Group order is left to SortGroups.
func GroupByYear(list []model.Bookmark) []YearGroup {
	byYear := make(map[int][]model.Bookmark)
	for _, b := range list {
		year := b.Year()
		byYear[year] = append(byYear[year], b)
	}

	groups := make([]YearGroup, 0, len(byYear))
	for year, entries := range byYear {
		if len(entries) < minGroupSize {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].SavedAt.After(entries[j].SavedAt)
		})
		groups = append(groups, YearGroup{Year: year, Entries: entries})
	}
	return groups
}

// SortGroups orders groups by year, ascending when chronological is set,
// otherwise newest year first. Years are unique keys so the order is total.
func SortGroups(groups []YearGroup, chronological bool) {
	sort.Slice(groups, func(i, j int) bool {
		if chronological {
			return groups[i].Year < groups[j].Year
		}
		return groups[i].Year > groups[j].Year
	})
}
