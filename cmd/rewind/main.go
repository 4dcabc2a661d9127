package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkbrn/rewind/internal/logging"
	"github.com/mkbrn/rewind/internal/picker"
	"github.com/mkbrn/rewind/internal/search"
	"github.com/mkbrn/rewind/internal/source"
	"github.com/mkbrn/rewind/internal/storage"
	"github.com/mkbrn/rewind/internal/tui"
	"github.com/mkbrn/rewind/internal/version"
)

func main() {
	if err := setupCommands().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupCommands() *cobra.Command {
	var (
		dateFlag    string
		rangeFlag   int
		sourceFlags []string
		debugFlag   bool
	)

	rootCmd := &cobra.Command{
		Use:   "rewind",
		Short: "Browse what you bookmarked on this day in earlier years",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(dateFlag, rangeFlag, sourceFlags, debugFlag)
		},
	}
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "anchor date (YYYY-MM-DD or MM-DD, default today)")
	rootCmd.Flags().IntVar(&rangeFlag, "range", 0, "day window around the anchor date (1-12)")
	rootCmd.Flags().StringArrayVar(&sourceFlags, "source", nil, "bookmark file to read (repeatable, overrides config)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write a debug log to the user cache dir")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search all bookmarks and open the selection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuickSearch(strings.Join(args, " "), sourceFlags)
		},
	}
	searchCmd.Flags().StringArrayVar(&sourceFlags, "source", nil, "bookmark file to read (repeatable, overrides config)")

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "List the bookmark stores rewind would read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListSources(sourceFlags)
		},
	}
	sourcesCmd.Flags().StringArrayVar(&sourceFlags, "source", nil, "bookmark file to read (repeatable, overrides config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// buildLoader resolves the bookmark sources to read. Explicit --source flags
// win over configured paths, which win over browser profile auto-detection.
func buildLoader(cfg *storage.Config, flagPaths []string) (source.Source, error) {
	paths := flagPaths
	if len(paths) == 0 {
		paths = cfg.SourcePaths
	}

	if len(paths) > 0 {
		var sources source.Multi
		for _, p := range paths {
			sources = append(sources, source.ForPath(p))
		}
		return sources, nil
	}

	detected := source.Detect()
	if len(detected) == 0 {
		return nil, fmt.Errorf("no bookmark sources found; pass --source or set sourcePaths in the config")
	}
	return source.Multi(detected), nil
}

// parseDate accepts YYYY-MM-DD or MM-DD (current year).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("01-02", s); err == nil {
		now := time.Now()
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or MM-DD", s)
}

func loadConfig() (*storage.Config, error) {
	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := storage.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// runTUI runs the full interactive timeline.
func runTUI(dateFlag string, rangeFlag int, sourceFlags []string, debugFlag bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader, err := buildLoader(cfg, sourceFlags)
	if err != nil {
		return err
	}

	var date time.Time
	if dateFlag != "" {
		date, err = parseDate(dateFlag)
		if err != nil {
			return err
		}
	}

	dayRange := cfg.DefaultDayRange
	if rangeFlag != 0 {
		dayRange = rangeFlag
	}

	log := logging.New(debugFlag)
	log.Info().Str("version", version.Version).Msg("starting")

	app := tui.NewApp(tui.AppParams{
		Loader:         loader,
		Date:           date,
		DayRange:       dayRange,
		EntriesPerYear: cfg.DefaultEntriesPerYear,
		Log:            log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string, sourceFlags []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader, err := buildLoader(cfg, sourceFlags)
	if err != nil {
		return err
	}

	bookmarks, err := loader.Load(context.Background())
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	results := search.FuzzySearch(bookmarks, query)
	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		return nil
	}

	selected := results[0].Bookmark
	if len(results) > 1 {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			return fmt.Errorf("running picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		choice := finalPicker.Selected()
		if choice == nil {
			return nil
		}
		selected = *choice
	}

	fmt.Printf("Opening: %s\n", selected.DisplayTitle())
	return tui.OpenURL(selected.CleanURL)
}

// runListSources prints the bookmark stores that would be read.
func runListSources(sourceFlags []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader, err := buildLoader(cfg, sourceFlags)
	if err != nil {
		return err
	}

	sources, ok := loader.(source.Multi)
	if !ok {
		sources = source.Multi{loader}
	}

	for _, s := range sources {
		count := "unreadable"
		if list, err := s.Load(context.Background()); err == nil {
			count = fmt.Sprintf("%d bookmarks", len(list))
		}
		fmt.Printf("%s  (%s)\n", s.Name(), count)
	}
	return nil
}
