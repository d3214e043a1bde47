package artifacts

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clickaround/sadam-tools/internal/paths"

	_ "modernc.org/sqlite"
)

// tsLayout sorts lexically in the same order as time, unlike RFC3339Nano.
const tsLayout = "2006-01-02T15:04:05.000000Z"

// Store is a SQLite-backed record of written artifacts.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath is the history database location inside paths.DataDir().
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.HistoryDBName)
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS artifacts (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    kind      TEXT    NOT NULL,
    path      TEXT    NOT NULL,
    width     INTEGER NOT NULL,
    height    INTEGER NOT NULL,
    bytes     INTEGER NOT NULL,
    sha256    TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_artifacts_timestamp ON artifacts(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one artifact.
func (s *Store) Record(a Artifact) error {
	ts := a.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO artifacts (timestamp, kind, path, width, height, bytes, sha256)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(tsLayout), string(a.Kind), a.Path, a.Width, a.Height, a.Bytes, a.SHA256,
	)
	return err
}

// Entries returns artifacts from the last days days, newest first.
// days <= 0 returns everything.
func (s *Store) Entries(days int) ([]Artifact, error) {
	query := `SELECT timestamp, kind, path, width, height, bytes, sha256 FROM artifacts`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, DayCutoff(days).UTC().Format(tsLayout))
	}
	query += ` ORDER BY timestamp DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Artifact
	for rows.Next() {
		var a Artifact
		var ts, kind string
		if err := rows.Scan(&ts, &kind, &a.Path, &a.Width, &a.Height, &a.Bytes, &a.SHA256); err != nil {
			return nil, err
		}
		t, err := time.Parse(tsLayout, ts)
		if err != nil {
			continue
		}
		a.Time = t
		a.Kind = Kind(kind)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Clean removes artifacts older than the last days days and returns how many
// rows were deleted. The image files themselves are left alone.
func (s *Store) Clean(days int) (int, error) {
	if days < 1 {
		return 0, fmt.Errorf("clean: days must be >= 1, got %d", days)
	}
	cutoff := DayCutoff(days).UTC().Format(tsLayout)
	res, err := s.db.Exec(`DELETE FROM artifacts WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
