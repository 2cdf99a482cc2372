// Package store persists flattened record streams and load history in a
// PostgreSQL or SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrUnsupportedDSN is returned for a database URL with an unknown scheme.
var ErrUnsupportedDSN = errors.New("unsupported database url")

// Dialect is the SQL flavour behind a DB.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// timeLayout stores timestamps as fixed-width UTC text, so they sort
// lexically in both dialects.
const timeLayout = "2006-01-02 15:04:05.000000"

// FormatTime renders t the way the store keeps timestamps.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}

// DB is a database handle that knows its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// NewDB opens and pings the database named by dsn. postgres:// and
// postgresql:// URLs use lib/pq; sqlite:// URLs, file: URLs and ":memory:"
// use SQLite.
func NewDB(dsn string) (*DB, error) {
	driver, source, dialect, err := resolveDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == SQLite {
		// A single connection keeps ":memory:" databases alive and serialises
		// writers.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

func resolveDSN(dsn string) (driver, source string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", dsn, Postgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://"), SQLite, nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return "sqlite", dsn, SQLite, nil
	default:
		return "", "", 0, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Placeholder returns the bind parameter for the n-th (1-based) argument.
func (d *DB) Placeholder(n int) string {
	if d.Dialect == SQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}

// placeholders returns count comma-separated bind parameters starting at from.
func (d *DB) placeholders(from, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = d.Placeholder(from + i)
	}
	return strings.Join(parts, ", ")
}

// quoteIdent quotes a table or column name. Both dialects accept double
// quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS load_runs (
		id TEXT PRIMARY KEY,
		family TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		total_sources INTEGER NOT NULL DEFAULT 0,
		processed INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		total_rows INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS metrics (
		metric_name TEXT NOT NULL,
		metric_value TEXT NOT NULL,
		calculated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS metrics_name_idx ON metrics (metric_name, calculated_at)`,
}

// Migrate creates the bookkeeping tables. Stream tables are created on demand
// by TableStore.EnsureTable.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}
