package source

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Detect scans the well-known profile locations of the current OS and
// returns a source for every bookmark store it finds.
func Detect() []Source {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var sources []Source
	for _, path := range chromeCandidates(home) {
		if fileExists(path) {
			sources = append(sources, ChromeSource{Path: path})
		}
	}
	for _, path := range firefoxCandidates(home) {
		if fileExists(path) {
			sources = append(sources, FirefoxSource{Path: path})
		}
	}
	return sources
}

// ForPath returns the source matching an explicitly given bookmarks file,
// picked by its shape: sqlite databases are Firefox, HTML files are exports,
// anything else is treated as a Chrome JSON tree.
func ForPath(path string) Source {
	switch {
	case strings.HasSuffix(path, ".sqlite"):
		return FirefoxSource{Path: path}
	case strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm"):
		return NetscapeSource{Path: path}
	default:
		return ChromeSource{Path: path}
	}
}

func chromeCandidates(home string) []string {
	var bases []string
	switch runtime.GOOS {
	case "darwin":
		bases = []string{
			filepath.Join(home, "Library", "Application Support", "Google", "Chrome"),
			filepath.Join(home, "Library", "Application Support", "Chromium"),
		}
	default:
		bases = []string{
			filepath.Join(home, ".config", "google-chrome"),
			filepath.Join(home, ".config", "chromium"),
		}
	}

	var out []string
	for _, base := range bases {
		out = append(out, filepath.Join(base, "Default", "Bookmarks"))
	}
	return out
}

func firefoxCandidates(home string) []string {
	var base string
	switch runtime.GOOS {
	case "darwin":
		base = filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")
	default:
		base = filepath.Join(home, ".mozilla", "firefox")
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(base, e.Name(), "places.sqlite"))
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
