package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkbrn/rewind/internal/model"
	"github.com/mkbrn/rewind/internal/urlnorm"
)

// mozBookmarkType is the moz_bookmarks.type value for leaf bookmarks
// (2 is a folder, 3 a separator).
const mozBookmarkType = 1

// FirefoxSource reads bookmarks straight out of a profile's places.sqlite.
// The database is opened read-only and immutable so a running Firefox
// holding the write lock does not block us.
type FirefoxSource struct {
	Path string
}

// Name implements Source.
func (s FirefoxSource) Name() string {
	return "firefox (" + s.Path + ")"
}

// Load implements Source.
func (s FirefoxSource) Load(ctx context.Context) ([]model.Bookmark, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&immutable=1", url.PathEscape(s.Path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening places.sqlite: %w", err)
	}
	defer db.Close()

	// dateAdded is microseconds since the Unix epoch. Traversal order is
	// insertion order (rowid).
	rows, err := db.QueryContext(ctx, `
		SELECT IFNULL(b.title, ''), p.url, b.dateAdded
		FROM moz_bookmarks b
		JOIN moz_places p ON p.id = b.fk
		WHERE b.type = ? AND p.url IS NOT NULL AND b.dateAdded > 0
		ORDER BY b.id
	`, mozBookmarkType)
	if err != nil {
		return nil, fmt.Errorf("querying places.sqlite: %w", err)
	}
	defer rows.Close()

	var out []model.Bookmark
	for rows.Next() {
		var title, rawURL string
		var addedMicros int64
		if err := rows.Scan(&title, &rawURL, &addedMicros); err != nil {
			return nil, fmt.Errorf("scanning bookmark row: %w", err)
		}

		out = append(out, model.Bookmark{
			ID:       model.GenerateID(),
			Title:    title,
			URL:      rawURL,
			CleanURL: urlnorm.Normalize(rawURL),
			Domain:   urlnorm.Domain(rawURL),
			SavedAt:  time.UnixMicro(addedMicros),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bookmark rows: %w", err)
	}

	return out, nil
}
