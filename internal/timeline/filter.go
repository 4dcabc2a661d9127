// Package timeline turns a flat bookmark list into the "on this day" view:
// date-window filtering, year grouping, and search.
package timeline

import "time"

// Matches reports whether a bookmark saved at saved belongs in the window
// around base: a prior-year bookmark from the same calendar month whose
// day-of-month is within rangeDays of base's. now supplies the current
// real-world year; anything from that year or later never matches.
//
// Day deltas are only ever compared within the same month, so a window near
// a month edge does not reach into the neighboring month. That is the
// long-standing behavior of this feature, kept on purpose.
func Matches(saved, base time.Time, rangeDays int, now time.Time) bool {
	if saved.Year() >= now.Year() {
		return false
	}
	if saved.Month() != base.Month() {
		return false
	}

	delta := saved.Day() - base.Day()
	if delta < 0 {
		delta = -delta
	}
	return delta <= rangeDays
}
