package tui_test

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkbrn/rewind/internal/model"
	"github.com/mkbrn/rewind/internal/tui"
)

// staticSource serves a fixed bookmark list.
type staticSource struct {
	bookmarks []model.Bookmark
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(_ context.Context) ([]model.Bookmark, error) {
	return s.bookmarks, nil
}

// sequenceSource serves a different batch on each Load call.
type sequenceSource struct {
	batches [][]model.Bookmark
	calls   int
}

func (s *sequenceSource) Name() string { return "sequence" }

func (s *sequenceSource) Load(_ context.Context) ([]model.Bookmark, error) {
	batch := s.batches[s.calls]
	s.calls++
	return batch, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func bm(id, title string, savedAt time.Time) model.Bookmark {
	return model.Bookmark{
		ID:       id,
		Title:    title,
		URL:      "https://example.com/" + id,
		CleanURL: "https://example.com/" + id,
		Domain:   "example.com",
		SavedAt:  savedAt,
	}
}

// testBookmarks returns two groups: 2019 with three entries and 2018 with two,
// all within three days of Aug 30.
func testBookmarks() []model.Bookmark {
	return []model.Bookmark{
		bm("a", "Go proverbs", time.Date(2019, time.August, 29, 10, 0, 0, 0, time.UTC)),
		bm("b", "SQLite internals", time.Date(2019, time.August, 30, 11, 0, 0, 0, time.UTC)),
		bm("c", "Terminal rendering", time.Date(2019, time.August, 31, 9, 0, 0, 0, time.UTC)),
		bm("d", "Raft paper", time.Date(2018, time.August, 28, 8, 0, 0, 0, time.UTC)),
		bm("e", "Profiling guide", time.Date(2018, time.August, 31, 8, 0, 0, 0, time.UTC)),
	}
}

// newLoadedApp builds an app over the given bookmarks and runs the initial
// load synchronously.
func newLoadedApp(t *testing.T, bookmarks []model.Bookmark) tui.App {
	t.Helper()

	app := tui.NewApp(tui.AppParams{
		Loader: staticSource{bookmarks: bookmarks},
		Now:    fixedNow,
		Opener: func(string) error { return nil },
	})

	cmd := app.Init()
	if cmd == nil {
		t.Fatal("Init should return a load command")
	}
	updated, _ := app.Update(cmd())
	return updated.(tui.App)
}

// press sends a key and, if the update produced a command, runs it and feeds
// the resulting message back in. Date and range keys issue load commands, so
// settling them keeps the tests synchronous.
func press(t *testing.T, app tui.App, r rune) tui.App {
	t.Helper()
	updated, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	app = updated.(tui.App)
	if cmd != nil {
		updated, _ = app.Update(cmd())
		app = updated.(tui.App)
	}
	return app
}

func pressKey(t *testing.T, app tui.App, keyType tea.KeyType) tui.App {
	t.Helper()
	updated, cmd := app.Update(tea.KeyMsg{Type: keyType})
	app = updated.(tui.App)
	if cmd != nil {
		updated, _ = app.Update(cmd())
		app = updated.(tui.App)
	}
	return app
}

func TestApp_InitialLoad(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	if app.Loading() {
		t.Error("load should have completed")
	}
	if app.Err() != nil {
		t.Errorf("unexpected load error: %v", app.Err())
	}

	groups := app.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 year groups, got %d", len(groups))
	}
	// Default order is newest year first
	if groups[0].Year != 2019 || groups[1].Year != 2018 {
		t.Errorf("expected years [2019 2018], got [%d %d]", groups[0].Year, groups[1].Year)
	}

	// Collapsed by default: one row per year
	if len(app.Rows()) != 2 {
		t.Errorf("expected 2 collapsed rows, got %d", len(app.Rows()))
	}
}

func TestApp_Navigation_JK(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	if app.Cursor() != 0 {
		t.Errorf("expected initial cursor 0, got %d", app.Cursor())
	}

	app = press(t, app, 'j')
	if app.Cursor() != 1 {
		t.Errorf("after j, expected cursor 1, got %d", app.Cursor())
	}

	// j at bottom should stay
	app = press(t, app, 'j')
	if app.Cursor() != 1 {
		t.Errorf("j at bottom should stay at 1, got %d", app.Cursor())
	}

	app = press(t, app, 'k')
	if app.Cursor() != 0 {
		t.Errorf("after k, expected cursor 0, got %d", app.Cursor())
	}

	// k at top should stay
	app = press(t, app, 'k')
	if app.Cursor() != 0 {
		t.Errorf("k at top should stay at 0, got %d", app.Cursor())
	}
}

func TestApp_ToggleYear(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	// Enter on the 2019 header expands it
	app = pressKey(t, app, tea.KeyEnter)

	rows := app.Rows()
	// 2019 header + 3 bookmarks + 2018 header
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows after expand, got %d", len(rows))
	}
	if !rows[0].IsYear() || rows[0].Year != 2019 {
		t.Error("first row should be the 2019 header")
	}
	if !rows[1].IsBookmark() {
		t.Error("second row should be a bookmark")
	}
	// Entries sorted newest first within the year
	if rows[1].Bookmark.ID != "c" || rows[2].Bookmark.ID != "b" || rows[3].Bookmark.ID != "a" {
		t.Errorf("entries out of order: %s %s %s",
			rows[1].Bookmark.ID, rows[2].Bookmark.ID, rows[3].Bookmark.ID)
	}

	// Enter again collapses
	app = pressKey(t, app, tea.KeyEnter)
	if len(app.Rows()) != 2 {
		t.Errorf("expected 2 rows after collapse, got %d", len(app.Rows()))
	}
}

func TestApp_EntriesPerYearCap(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	// Shrink the cap to 1 and expand 2019
	for i := 0; i < 10; i++ {
		app = press(t, app, '<')
	}
	if app.ViewState().EntriesPerYear != 1 {
		t.Fatalf("expected cap clamped to 1, got %d", app.ViewState().EntriesPerYear)
	}

	app = pressKey(t, app, tea.KeyEnter)
	rows := app.Rows()
	// 2019 header + 1 bookmark + "+2 more" + 2018 header
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[2].Kind != tui.RowMore || rows[2].Count != 2 {
		t.Errorf("expected +2 more row, got kind=%d count=%d", rows[2].Kind, rows[2].Count)
	}
}

func TestApp_DayRangeClamps(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	for i := 0; i < 20; i++ {
		app = press(t, app, '+')
	}
	if app.ViewState().DayRange != 12 {
		t.Errorf("day range should clamp at 12, got %d", app.ViewState().DayRange)
	}

	for i := 0; i < 20; i++ {
		app = press(t, app, '-')
	}
	if app.ViewState().DayRange != 1 {
		t.Errorf("day range should clamp at 1, got %d", app.ViewState().DayRange)
	}
}

func TestApp_NarrowRangeDropsSpillover(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	// At range 1 the 2018 group keeps only its Aug 31 entry and falls below
	// the two-entry minimum, so the whole group disappears.
	app = press(t, app, '-')
	app = press(t, app, '-')

	groups := app.Groups()
	if len(groups) != 1 || groups[0].Year != 2019 {
		t.Fatalf("expected only 2019 at range 1, got %d groups", len(groups))
	}
}

func TestApp_DateNavigation(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	app = press(t, app, 'l')
	if got := app.ViewState().SelectedDate; got.Day() != 31 {
		t.Errorf("l should step to Aug 31, got %v", got)
	}

	app = press(t, app, 'h')
	app = press(t, app, 'h')
	if got := app.ViewState().SelectedDate; got.Day() != 29 {
		t.Errorf("h h should step back to Aug 29, got %v", got)
	}

	app = press(t, app, 'H')
	if got := app.ViewState().SelectedDate; got.Month() != time.July {
		t.Errorf("H should step back a month, got %v", got)
	}
	// July window matches nothing in the fixture
	if len(app.Groups()) != 0 {
		t.Errorf("expected no groups for July, got %d", len(app.Groups()))
	}

	app = press(t, app, 't')
	if got := app.ViewState().SelectedDate; !got.Equal(fixedNow()) {
		t.Errorf("t should jump to the injected today, got %v", got)
	}
	if len(app.Groups()) != 2 {
		t.Errorf("expected both groups back at today, got %d", len(app.Groups()))
	}
}

func TestApp_ChronologicalToggle(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	app = press(t, app, 'O')
	groups := app.Groups()
	if groups[0].Year != 2018 || groups[1].Year != 2019 {
		t.Errorf("expected oldest first after toggle, got [%d %d]", groups[0].Year, groups[1].Year)
	}

	app = press(t, app, 'O')
	groups = app.Groups()
	if groups[0].Year != 2019 {
		t.Errorf("expected newest first after second toggle, got %d", groups[0].Year)
	}
}

func TestApp_SearchFiltersLive(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	app = press(t, app, '/')
	for _, r := range "raft" {
		app = press(t, app, r)
	}

	if app.ViewState().SearchTerm != "raft" {
		t.Fatalf("expected search term %q, got %q", "raft", app.ViewState().SearchTerm)
	}

	// "Raft paper" is the only match, so 2018 drops below the two-entry
	// minimum and no groups remain.
	if len(app.Groups()) != 0 {
		t.Errorf("expected no groups for single match, got %d", len(app.Groups()))
	}

	// Esc clears the search and restores the full view
	app = pressKey(t, app, tea.KeyEsc)
	if app.ViewState().SearchTerm != "" {
		t.Errorf("esc should clear the search term, got %q", app.ViewState().SearchTerm)
	}
	if len(app.Groups()) != 2 {
		t.Errorf("expected 2 groups after clearing search, got %d", len(app.Groups()))
	}
}

func TestApp_SearchAllWidensScope(t *testing.T) {
	bookmarks := append(testBookmarks(),
		bm("x", "Winter reading", time.Date(2017, time.January, 15, 8, 0, 0, 0, time.UTC)),
		bm("y", "Winter recipes", time.Date(2017, time.January, 16, 8, 0, 0, 0, time.UTC)),
	)
	app := newLoadedApp(t, bookmarks)

	// The January 2017 entries are outside the window
	if len(app.Groups()) != 2 {
		t.Fatalf("expected 2 windowed groups, got %d", len(app.Groups()))
	}

	app = press(t, app, 'a')
	app = press(t, app, '/')
	for _, r := range "winter" {
		app = press(t, app, r)
	}

	groups := app.Groups()
	if len(groups) != 1 || groups[0].Year != 2017 {
		t.Fatalf("search-all should surface the 2017 group, got %d groups", len(groups))
	}
}

func TestApp_StaleLoadDiscarded(t *testing.T) {
	first := testBookmarks()
	second := []model.Bookmark{
		bm("p", "Fresh one", time.Date(2020, time.August, 30, 8, 0, 0, 0, time.UTC)),
		bm("q", "Fresh two", time.Date(2020, time.August, 31, 8, 0, 0, 0, time.UTC)),
	}
	loader := &sequenceSource{batches: [][]model.Bookmark{first, second}}

	app := tui.NewApp(tui.AppParams{
		Loader: loader,
		Now:    fixedNow,
		Opener: func(string) error { return nil },
	})

	staleCmd := app.Init()

	// Reload before the first load lands
	updated, freshCmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	app = updated.(tui.App)

	// The superseded result must not populate the view
	staleMsg := staleCmd()
	updated, _ = app.Update(staleMsg)
	app = updated.(tui.App)

	if !app.Loading() {
		t.Fatal("stale result should not complete the pending load")
	}
	if len(app.Groups()) != 0 {
		t.Fatalf("stale result should be discarded, got %d groups", len(app.Groups()))
	}

	// The current load lands normally
	updated, _ = app.Update(freshCmd())
	app = updated.(tui.App)

	if app.Loading() {
		t.Fatal("fresh result should complete the load")
	}
	groups := app.Groups()
	if len(groups) != 1 || groups[0].Year != 2020 {
		t.Fatalf("expected the fresh 2020 group, got %d groups", len(groups))
	}
}

func TestApp_ExpandedYearsPersistAcrossRecompute(t *testing.T) {
	app := newLoadedApp(t, testBookmarks())

	// Expand 2019, then change a view parameter that forces a recompute
	app = pressKey(t, app, tea.KeyEnter)
	app = press(t, app, '+')

	if !app.ViewState().Expanded(2019) {
		t.Error("2019 should stay expanded across recompute")
	}
	rows := app.Rows()
	if len(rows) < 3 || !rows[1].IsBookmark() {
		t.Error("2019 entries should still be visible after recompute")
	}
}
