// Package store persists editor conveniences in SQLite: which files were
// opened recently and where the cursor was in each. Losing this database
// costs nothing but the recent-files list, so every failure path degrades
// to a working editor.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_files (
	path    TEXT PRIMARY KEY,
	cursor  INTEGER NOT NULL DEFAULT 0,
	opened  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recent_opened ON recent_files(opened);
`

// maxRecent bounds the recent_files table; older rows are pruned on open.
const maxRecent = 200

// Store is the SQLite-backed recent-files store. All methods are safe on
// a nil receiver so the editor keeps working when the database could not
// be opened.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates or opens the store database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db}
	s.prune()
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Touch records that path is open with the cursor at offset, moving it to
// the top of the recent list. No-op on nil receiver.
func (s *Store) Touch(path string, cursor int) {
	if s == nil || path == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO recent_files (path, cursor, opened) VALUES (?, ?, ?)",
		path, cursor, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to record recent file")
	}
}

// Recent returns up to limit paths, most recently opened first. Safe to
// call on a nil receiver (returns nothing).
func (s *Store) Recent(limit int) []string {
	if s == nil || limit <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT path FROM recent_files ORDER BY opened DESC LIMIT ?", limit,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list recent files")
		return nil
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// Cursor returns the remembered cursor offset for path. Safe to call on a
// nil receiver (returns a miss).
func (s *Store) Cursor(path string) (int, bool) {
	if s == nil || path == "" {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var cursor int
	err := s.db.QueryRow(
		"SELECT cursor FROM recent_files WHERE path = ?", path,
	).Scan(&cursor)
	if err != nil {
		return 0, false
	}
	return cursor, true
}

// Forget drops path from the recent list, for files that no longer exist.
// No-op on nil receiver.
func (s *Store) Forget(path string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM recent_files WHERE path = ?", path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to forget recent file")
	}
}

// prune keeps only the maxRecent most recently opened rows.
func (s *Store) prune() {
	res, err := s.db.Exec(
		`DELETE FROM recent_files WHERE path NOT IN
		 (SELECT path FROM recent_files ORDER BY opened DESC LIMIT ?)`,
		maxRecent,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune recent files")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned old recent-file entries")
	}
}
