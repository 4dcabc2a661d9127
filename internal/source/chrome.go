package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mkbrn/rewind/internal/model"
)

// Chrome's bookmark timestamps count microseconds since 1601-01-01 (the
// Windows FILETIME epoch), which sits this many seconds before Unix time.
const windowsEpochOffsetSeconds = 11644473600

// ChromeSource reads the Bookmarks JSON file of a Chrome/Chromium profile.
type ChromeSource struct {
	Path string
}

// chromeNode mirrors the on-disk node shape. Folders carry children, url
// nodes carry url + date_added.
type chromeNode struct {
	Type      string       `json:"type"`
	Name      string       `json:"name"`
	URL       string       `json:"url"`
	DateAdded string       `json:"date_added"`
	Children  []chromeNode `json:"children"`
}

type chromeFile struct {
	Roots map[string]chromeNode `json:"roots"`
}

// Name implements Source.
func (s ChromeSource) Name() string {
	return "chrome (" + s.Path + ")"
}

// Load implements Source.
func (s ChromeSource) Load(ctx context.Context) ([]model.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading chrome bookmarks: %w", err)
	}

	var file chromeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing chrome bookmarks: %w", err)
	}

	// Fixed root order keeps traversal deterministic across loads.
	var roots []Node
	for _, key := range []string{"bookmark_bar", "other", "synced"} {
		if n, ok := file.Roots[key]; ok {
			roots = append(roots, n.toNode())
		}
	}

	return Flatten(roots), nil
}

func (n chromeNode) toNode() Node {
	out := Node{
		Title: n.Name,
		URL:   n.URL,
		Added: chromeTime(n.DateAdded),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.toNode())
	}
	return out
}

// chromeTime converts a date_added string to a time. Zero on anything
// unparsable or unset; such nodes are treated as non-leaves.
func chromeTime(raw string) time.Time {
	if raw == "" || raw == "0" {
		return time.Time{}
	}
	micros, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || micros == 0 {
		return time.Time{}
	}
	secs := micros/1e6 - windowsEpochOffsetSeconds
	nanos := (micros % 1e6) * 1000
	return time.Unix(secs, nanos)
}
