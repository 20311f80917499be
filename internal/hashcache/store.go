// Package hashcache persists content digests keyed by path, size, and
// modification time so repeated duplicate scans skip unchanged files.
package hashcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// Store is a sqlite-backed digest cache. A nil *Store is valid and behaves
// as an always-miss cache, so callers need no special-casing when caching
// is disabled.
type Store struct {
	db *sql.DB
}

// Open creates or opens the digest cache database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	dbPath := filepath.Join(dir, "digests.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open digest cache: %w", err)
	}
	// Serialize access through one connection; the sqlite driver is not safe
	// for concurrent writes on separate connections to the same file.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure digest cache: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize digest cache schema: %w", err)
	}
	if err := ensureVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func ensureVersion(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		if err != nil {
			return fmt.Errorf("record digest cache schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read digest cache schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("digest cache schema version %d unsupported (want %d)", version, schemaVersion)
	}
	return nil
}

// Lookup returns the cached digest for a file if its recorded size and
// modification time still match.
func (s *Store) Lookup(ctx context.Context, path string, size int64, mtime time.Time) (string, bool) {
	if s == nil {
		return "", false
	}
	var digest string
	err := s.db.QueryRowContext(ctx,
		"SELECT digest FROM file_digests WHERE path = ? AND size = ? AND mtime_unix_ns = ?",
		path, size, mtime.UnixNano()).Scan(&digest)
	if err != nil {
		return "", false
	}
	return digest, true
}

// Save records a freshly computed digest, replacing any stale entry for the
// same path.
func (s *Store) Save(ctx context.Context, path string, size int64, mtime time.Time, digest string) error {
	if s == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO file_digests (path, size, mtime_unix_ns, digest, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   size = excluded.size,
		   mtime_unix_ns = excluded.mtime_unix_ns,
		   digest = excluded.digest,
		   updated_at = excluded.updated_at`,
		path, size, mtime.UnixNano(), digest, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save digest: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
