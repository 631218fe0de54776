// Package storage persists fetched thumbnail bytes so repeated searches
// and refreshes do not re-download the same images.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ThumbCache is a sqlite-backed byte cache keyed by URL. Every method is
// best-effort from the caller's point of view: a failing cache is treated
// as a miss, never as a failed thumbnail.
type ThumbCache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*ThumbCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &ThumbCache{db: db}, nil
}

// Close releases the database handle.
func (c *ThumbCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Init creates the schema.
func (c *ThumbCache) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS thumbnails (
  url TEXT PRIMARY KEY,
  data BLOB NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Get returns the cached bytes for url, with ok=false on a miss.
func (c *ThumbCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var data []byte
	err := c.db.QueryRowContext(ctx, `SELECT data FROM thumbnails WHERE url = ?`, url).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query thumbnail: %w", err)
	}
	return data, true, nil
}

// Put stores (or replaces) the bytes for url.
func (c *ThumbCache) Put(ctx context.Context, url string, data []byte) error {
	_, err := c.db.ExecContext(ctx, `
INSERT INTO thumbnails (url, data, fetched_at)
VALUES (?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
  data=excluded.data,
  fetched_at=excluded.fetched_at
`, url, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save thumbnail %s: %w", url, err)
	}
	return nil
}
