package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mkbrn/rewind/internal/model"
	"github.com/mkbrn/rewind/internal/source"
	"github.com/mkbrn/rewind/internal/timeline"
	"github.com/mkbrn/rewind/internal/tui/layout"
)

// Mode represents the current input mode of the TUI.
type Mode int

const (
	// ModeNormal is the main timeline browse mode.
	ModeNormal Mode = iota
	// ModeSearch is active while the search input has focus.
	ModeSearch
)

// loadResultMsg carries the outcome of an asynchronous source load. The seq
// field is the request id handed out when the load started; results from a
// superseded load are discarded instead of overwriting newer state.
type loadResultMsg struct {
	seq       int
	bookmarks []model.Bookmark
	err       error
}

// App is the main bubbletea model for the timeline browser.
type App struct {
	loader source.Source
	log    zerolog.Logger
	keys   KeyMap
	styles Styles

	layoutConfig layout.Config

	now    func() time.Time     // injectable clock
	opener func(string) error   // opens a URL in the browser

	// Timeline state
	vs       timeline.ViewState
	all      []model.Bookmark
	windowed []model.Bookmark
	groups   []timeline.YearGroup

	// Flattened list
	rows   []Row
	cursor int

	// Input state
	mode        Mode
	searchInput textinput.Model

	showSettings bool

	// Load state
	loading bool
	loadSeq int // monotonic request id for load commands
	loadErr error

	status string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Loader         source.Source
	Date           time.Time // zero value means today
	DayRange       int       // 0 means default
	EntriesPerYear int       // 0 means default
	Log            zerolog.Logger
	Keys           *KeyMap             // optional, uses default if nil
	Styles         *Styles             // optional, uses default if nil
	Now            func() time.Time    // optional, uses time.Now if nil
	Opener         func(string) error  // optional, uses OpenURL if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	now := time.Now
	if params.Now != nil {
		now = params.Now
	}

	opener := OpenURL
	if params.Opener != nil {
		opener = params.Opener
	}

	date := params.Date
	if date.IsZero() {
		date = now()
	}

	vs := timeline.NewViewState(date)
	if params.DayRange != 0 {
		vs.DayRange = timeline.ClampDayRange(params.DayRange)
	}
	if params.EntriesPerYear != 0 {
		vs.EntriesPerYear = timeline.ClampEntriesPerYear(params.EntriesPerYear)
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search title or URL..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return App{
		loader:       params.Loader,
		log:          params.Log,
		keys:         keys,
		styles:       styles,
		layoutConfig: layout.DefaultConfig(),
		now:          now,
		opener:       opener,
		vs:           vs,
		searchInput:  searchInput,
		loading:      true,
		loadSeq:      1,
		width:        80,
		height:       24,
	}
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the flattened row list currently displayed.
func (a App) Rows() []Row {
	return a.rows
}

// Groups returns the year groups currently displayed.
func (a App) Groups() []timeline.YearGroup {
	return a.groups
}

// ViewState returns the current view state.
func (a App) ViewState() timeline.ViewState {
	return a.vs
}

// Loading reports whether a source load is in flight.
func (a App) Loading() bool {
	return a.loading
}

// Err returns the error of the last completed load, if any.
func (a App) Err() error {
	return a.loadErr
}

// loadCmd returns a command that loads all bookmarks from the configured
// sources, stamped with the given request id.
func loadCmd(loader source.Source, seq int) tea.Cmd {
	return func() tea.Msg {
		list, err := loader.Load(context.Background())
		return loadResultMsg{seq: seq, bookmarks: list, err: err}
	}
}

// reload starts a fresh load, invalidating any load still in flight.
func (a *App) reload() tea.Cmd {
	a.loadSeq++
	a.loading = true
	a.log.Debug().Int("seq", a.loadSeq).Msg("reloading sources")
	return loadCmd(a.loader, a.loadSeq)
}

// refresh rebuilds the date window and everything derived from it. Called
// after the selected date or day range changes and after a load completes.
func (a *App) refresh() {
	a.windowed = timeline.Window(a.all, a.vs, a.now())
	a.recompute()
}

// recompute rebuilds the year groups and rows from the retained lists.
// Called after search, ordering, or expansion changes; the window stands.
func (a *App) recompute() {
	a.groups = timeline.Recompute(a.all, a.windowed, a.vs)
	a.rebuildRows()
}

// rebuildRows flattens the year groups into display rows, honoring the
// expanded set and the per-year entry cap.
func (a *App) rebuildRows() {
	a.rows = nil
	for gi := range a.groups {
		g := &a.groups[gi]
		a.rows = append(a.rows, Row{Kind: RowYear, Year: g.Year, Count: len(g.Entries)})
		if !a.vs.Expanded(g.Year) {
			continue
		}
		limit := a.vs.EntriesPerYear
		for i := range g.Entries {
			if i >= limit {
				break
			}
			a.rows = append(a.rows, Row{Kind: RowBookmark, Year: g.Year, Bookmark: &g.Entries[i]})
		}
		if hidden := len(g.Entries) - limit; hidden > 0 {
			a.rows = append(a.rows, Row{Kind: RowMore, Year: g.Year, Count: hidden})
		}
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// currentRow returns the row under the cursor, or nil if the list is empty.
func (a *App) currentRow() *Row {
	if len(a.rows) == 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return &a.rows[a.cursor]
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadCmd(a.loader, a.loadSeq)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case loadResultMsg:
		if msg.seq != a.loadSeq {
			// A newer load superseded this one
			a.log.Debug().Int("seq", msg.seq).Int("current", a.loadSeq).Msg("discarding stale load result")
			return a, nil
		}
		a.loading = false
		a.loadErr = msg.err
		if msg.err != nil {
			a.log.Error().Err(msg.err).Msg("source load failed")
			return a, nil
		}
		a.all = msg.bookmarks
		a.log.Debug().Int("count", len(a.all)).Msg("sources loaded")
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeSearch {
			return a.updateSearch(msg)
		}
		return a.updateNormal(msg)
	}

	// Non-key messages (cursor blink etc.) belong to the focused input
	if a.mode == ModeSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateSearch handles key input while the search field has focus.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.searchInput.Blur()
		a.searchInput.Reset()
		a.vs.SearchTerm = ""
		a.recompute()
		return a, nil

	case tea.KeyEnter:
		a.mode = ModeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)

	// Live filtering as the user types
	if term := a.searchInput.Value(); term != a.vs.SearchTerm {
		a.vs.SearchTerm = term
		a.recompute()
	}
	return a, cmd
}

// updateNormal handles key input in the main browse mode.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	// Date and window changes re-read the sources; everything below them in
	// the pipeline is rebuilt when the load lands.
	case key.Matches(msg, a.keys.PrevDay):
		a.vs.SelectedDate = a.vs.SelectedDate.AddDate(0, 0, -1)
		return a, a.reload()

	case key.Matches(msg, a.keys.NextDay):
		a.vs.SelectedDate = a.vs.SelectedDate.AddDate(0, 0, 1)
		return a, a.reload()

	case key.Matches(msg, a.keys.PrevMonth):
		a.vs.SelectedDate = a.vs.SelectedDate.AddDate(0, -1, 0)
		return a, a.reload()

	case key.Matches(msg, a.keys.NextMonth):
		a.vs.SelectedDate = a.vs.SelectedDate.AddDate(0, 1, 0)
		return a, a.reload()

	case key.Matches(msg, a.keys.Today):
		a.vs.SelectedDate = a.now()
		return a, a.reload()

	case key.Matches(msg, a.keys.WidenRange):
		a.vs.DayRange = timeline.ClampDayRange(a.vs.DayRange + 1)
		return a, a.reload()

	case key.Matches(msg, a.keys.NarrowRange):
		a.vs.DayRange = timeline.ClampDayRange(a.vs.DayRange - 1)
		return a, a.reload()

	case key.Matches(msg, a.keys.MoreEntries):
		a.vs.EntriesPerYear = timeline.ClampEntriesPerYear(a.vs.EntriesPerYear + 1)
		a.rebuildRows()

	case key.Matches(msg, a.keys.FewerEntries):
		a.vs.EntriesPerYear = timeline.ClampEntriesPerYear(a.vs.EntriesPerYear - 1)
		a.rebuildRows()

	case key.Matches(msg, a.keys.ToggleOrder):
		a.vs.Chronological = !a.vs.Chronological
		a.recompute()

	case key.Matches(msg, a.keys.ToggleAll):
		a.vs.SearchAll = !a.vs.SearchAll
		a.recompute()

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Settings):
		a.showSettings = !a.showSettings

	case key.Matches(msg, a.keys.ExpandAll):
		for _, g := range a.groups {
			if !a.vs.Expanded(g.Year) {
				a.vs.ToggleYear(g.Year)
			}
		}
		a.rebuildRows()

	case key.Matches(msg, a.keys.CollapseAll):
		a.vs.ExpandedYears = make(map[int]bool)
		a.rebuildRows()

	case key.Matches(msg, a.keys.Select):
		row := a.currentRow()
		if row == nil {
			break
		}
		switch row.Kind {
		case RowYear:
			a.vs.ToggleYear(row.Year)
			a.rebuildRows()
		case RowBookmark:
			if err := a.opener(row.Bookmark.CleanURL); err != nil {
				a.status = "open failed: " + err.Error()
			} else {
				a.status = "opened " + row.Bookmark.CleanURL
			}
		case RowMore:
			a.vs.EntriesPerYear = timeline.ClampEntriesPerYear(a.vs.EntriesPerYear + 1)
			a.rebuildRows()
		}

	case key.Matches(msg, a.keys.Open):
		row := a.currentRow()
		if row == nil || row.Kind != RowBookmark {
			break
		}
		if err := a.opener(row.Bookmark.CleanURL); err != nil {
			a.status = "open failed: " + err.Error()
		} else {
			a.status = "opened " + row.Bookmark.CleanURL
		}

	case key.Matches(msg, a.keys.YankURL):
		row := a.currentRow()
		if row == nil || row.Kind != RowBookmark {
			break
		}
		if err := clipboard.WriteAll(row.Bookmark.CleanURL); err != nil {
			a.status = "yank failed: " + err.Error()
		} else {
			a.status = "yanked " + row.Bookmark.CleanURL
		}

	case key.Matches(msg, a.keys.Reload):
		return a, a.reload()
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
