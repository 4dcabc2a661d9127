package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkbrn/rewind/internal/tui/layout"
)

// renderView creates the complete timeline view.
func (a App) renderView() string {
	header := a.renderHeader()
	statusLine := a.renderStatusLine()

	sections := []string{header, statusLine}

	if a.mode == ModeSearch || a.vs.SearchTerm != "" {
		sections = append(sections, a.renderSearchLine())
	}

	if a.showSettings {
		sections = append(sections, a.renderSettingsPanel())
	}

	sections = append(sections, a.renderList())
	sections = append(sections, a.renderHelpBar())

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the title line with the selected date and window.
func (a App) renderHeader() string {
	date := a.vs.SelectedDate.Format("Jan 2")
	window := fmt.Sprintf("±%dd", a.vs.DayRange)

	order := "newest first"
	if a.vs.Chronological {
		order = "oldest first"
	}

	line := a.styles.Title.Render("rewind") + "  " +
		a.styles.Date.Render(date+" "+window+" · "+order)

	if a.vs.SearchAll {
		line += "  " + a.styles.Date.Render("[search all]")
	}
	return line
}

// renderStatusLine renders counts, load progress, or the last action result.
func (a App) renderStatusLine() string {
	if a.loading {
		return a.styles.Status.Render("loading bookmarks...")
	}
	if a.loadErr != nil {
		return a.styles.Error.Render("load failed: "+a.loadErr.Error()) +
			a.styles.Status.Render("  r to retry")
	}
	if a.status != "" {
		return a.styles.Status.Render(a.status)
	}

	total := 0
	for _, g := range a.groups {
		total += len(g.Entries)
	}
	return a.styles.Status.Render(
		fmt.Sprintf("%d years · %d bookmarks", len(a.groups), total))
}

// renderSearchLine renders the search input or the applied search term.
func (a App) renderSearchLine() string {
	if a.mode == ModeSearch {
		return "/" + a.searchInput.View()
	}
	return a.styles.Status.Render("/" + a.vs.SearchTerm)
}

// renderSettingsPanel renders the inline settings panel.
func (a App) renderSettingsPanel() string {
	order := "newest first"
	if a.vs.Chronological {
		order = "oldest first"
	}
	searchAll := "off"
	if a.vs.SearchAll {
		searchAll = "on"
	}

	row := func(label, value string) string {
		return a.styles.PanelLabel.Render(fmt.Sprintf("  %-12s", label)) +
			a.styles.PanelValue.Render(value)
	}

	lines := []string{
		a.styles.PanelLabel.Render("── Settings ──"),
		row("date", a.vs.SelectedDate.Format("Jan 2, 2006")+"  (h/l t H/L)"),
		row("day range", fmt.Sprintf("±%d days  (+/-)", a.vs.DayRange)),
		row("per year", fmt.Sprintf("%d entries  (</>)", a.vs.EntriesPerYear)),
		row("year order", order+"  (O)"),
		row("search all", searchAll+"  (a)"),
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderList renders the flattened timeline rows within the viewport.
func (a App) renderList() string {
	// Keep the previous rows on screen while a reload is in flight so rapid
	// date stepping does not flicker
	if len(a.rows) == 0 {
		switch {
		case a.loading:
			return a.styles.Empty.Render("  ...")
		case a.loadErr != nil:
			return a.styles.Empty.Render("  nothing to show")
		case a.vs.SearchTerm != "":
			return a.styles.Empty.Render("  no bookmarks match the search")
		default:
			return a.styles.Empty.Render("  nothing saved around this date in earlier years")
		}
	}

	visibleHeight := layout.CalculateListHeight(a.height, a.showSettings, a.layoutConfig.List)
	rowWidth := layout.CalculateRowWidth(a.width, a.layoutConfig.List)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.rows), visibleHeight)

	var b strings.Builder
	for i := offset; i < len(a.rows) && i < offset+visibleHeight; i++ {
		b.WriteString(a.renderRow(a.rows[i], i == a.cursor, rowWidth))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders a single timeline row.
func (a App) renderRow(row Row, selected bool, maxWidth int) string {
	switch row.Kind {
	case RowYear:
		marker := "▸ "
		if a.vs.Expanded(row.Year) {
			marker = "▾ "
		}
		suffix := fmt.Sprintf(" (%d)", row.Count)
		line, _ := layout.TruncateWithPrefixSuffix(
			strconv.Itoa(row.Year), maxWidth, marker, suffix, a.layoutConfig.Text)
		if selected {
			return a.styles.YearSelected.Render(padToWidth(line, maxWidth))
		}
		return a.styles.Year.Render(line)

	case RowBookmark:
		b := row.Bookmark
		prefix := "  " + b.SavedAt.Format("Jan 02") + "  "
		suffix := ""
		if b.Domain != "" {
			suffix = "  " + b.Domain
		}
		line, _ := layout.TruncateWithPrefixSuffix(
			b.DisplayTitle(), maxWidth, prefix, suffix, a.layoutConfig.Text)
		if selected {
			return a.styles.ItemSelected.Render(padToWidth(line, maxWidth))
		}
		return a.styles.Item.Render(line)

	default: // RowMore
		line := fmt.Sprintf("  +%d more  (> to show)", row.Count)
		if selected {
			return a.styles.ItemSelected.Render(padToWidth(line, maxWidth))
		}
		return a.styles.More.Render(line)
	}
}

// padToWidth pads a line with spaces so selection highlights fill the row.
func padToWidth(line string, width int) string {
	if pad := width - layout.VisibleLength(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}

// renderHelpBar renders the contextual keybind hints at the bottom.
func (a App) renderHelpBar() string {
	return a.styles.Help.Render(a.renderHints(a.getContextualHints()))
}
