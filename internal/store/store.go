// Package store keeps a local index of fetched transcripts so the list
// command can report what has been downloaded without rescanning files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	video_id   TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	language   TEXT NOT NULL DEFAULT '',
	path       TEXT NOT NULL,
	entries    INTEGER NOT NULL,
	lines      INTEGER NOT NULL,
	interval   INTEGER NOT NULL,
	fetched_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transcripts_fetched_at ON transcripts(fetched_at);
`

// Record is one indexed transcript download.
type Record struct {
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Path      string    `json:"path"`
	Entries   int       `json:"entries"`
	Lines     int       `json:"lines"`
	Interval  int       `json:"interval"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store is a sqlite-backed transcript index.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the index database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing index schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a transcript download, replacing any previous record for
// the same video.
func (s *Store) Save(rec Record) error {
	const query = `
	INSERT INTO transcripts (video_id, title, language, path, entries, lines, interval, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(video_id) DO UPDATE SET
		title      = excluded.title,
		language   = excluded.language,
		path       = excluded.path,
		entries    = excluded.entries,
		lines      = excluded.lines,
		interval   = excluded.interval,
		fetched_at = excluded.fetched_at
	`

	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = time.Now()
	}

	_, err := s.db.Exec(query,
		rec.VideoID, rec.Title, rec.Language, rec.Path,
		rec.Entries, rec.Lines, rec.Interval, rec.FetchedAt)
	if err != nil {
		return fmt.Errorf("saving transcript record: %w", err)
	}
	return nil
}

// Get returns the record for a video id, or sql.ErrNoRows wrapped if none.
func (s *Store) Get(videoID string) (Record, error) {
	const query = `
	SELECT video_id, title, language, path, entries, lines, interval, fetched_at
	FROM transcripts WHERE video_id = ?
	`

	var rec Record
	err := s.db.QueryRow(query, videoID).Scan(
		&rec.VideoID, &rec.Title, &rec.Language, &rec.Path,
		&rec.Entries, &rec.Lines, &rec.Interval, &rec.FetchedAt)
	if err != nil {
		return Record{}, fmt.Errorf("loading transcript record: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, most recently fetched first. A limit
// of zero or less means no limit.
func (s *Store) List(limit int) ([]Record, error) {
	const query = `
	SELECT video_id, title, language, path, entries, lines, interval, fetched_at
	FROM transcripts ORDER BY fetched_at DESC LIMIT ?
	`
	if limit <= 0 {
		limit = -1 // sqlite: negative limit means unlimited
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transcript records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.VideoID, &rec.Title, &rec.Language, &rec.Path,
			&rec.Entries, &rec.Lines, &rec.Interval, &rec.FetchedAt); err != nil {
			return nil, fmt.Errorf("scanning transcript record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
