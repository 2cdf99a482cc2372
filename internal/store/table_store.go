package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/records"
)

// TableRows is one stream's output for a document. Keys names every key the
// document owns, so rows stored under a key are removed even when the
// document no longer has any rows for this table.
type TableRows struct {
	Table  string
	Header []string
	Keys   []string
	Rows   []records.Row
}

// TableStore handles database operations for stream tables. Every column is
// TEXT and the first column is the owning document's key.
type TableStore struct {
	db *DB
}

// NewTableStore creates a new TableStore
func NewTableStore(db *DB) *TableStore {
	return &TableStore{db: db}
}

// EnsureTable creates the table for a stream if it does not exist yet.
func (s *TableStore) EnsureTable(ctx context.Context, table string, header []string) error {
	columns := lo.Map(header, func(c string, _ int) string {
		return quoteIdent(c) + " TEXT"
	})
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s)`, quoteIdent(table), strings.Join(columns, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	index := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (%s)`,
		quoteIdent(table+"_key_idx"), quoteIdent(table), quoteIdent(header[0]))
	if _, err := s.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("failed to index table %s: %w", table, err)
	}
	return nil
}

// ReplaceRows writes a document's rows for several tables in one
// transaction. Rows already stored under the same keys are removed first, so
// loading a document twice leaves one copy.
func (s *TableStore) ReplaceRows(ctx context.Context, batch []TableRows) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range batch {
		if err := s.deleteKeys(ctx, tx, t); err != nil {
			return err
		}
		if err := s.insertRows(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rows: %w", err)
	}
	return nil
}

// deleteChunk bounds the bind parameters of one DELETE.
const deleteChunk = 500

func (s *TableStore) deleteKeys(ctx context.Context, tx *sql.Tx, t TableRows) error {
	rowKeys := lo.FilterMap(t.Rows, func(r records.Row, _ int) (string, bool) {
		if len(r) == 0 || !r[0].Valid {
			return "", false
		}
		return r[0].String, true
	})
	keys := lo.Uniq(append(append([]string{}, t.Keys...), rowKeys...))

	for _, chunk := range lo.Chunk(keys, deleteChunk) {
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`,
			quoteIdent(t.Table), quoteIdent(t.Header[0]), s.db.placeholders(1, len(chunk)))
		args := lo.Map(chunk, func(k string, _ int) any { return k })
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear %s: %w", t.Table, err)
		}
	}
	return nil
}

func (s *TableStore) insertRows(ctx context.Context, tx *sql.Tx, t TableRows) error {
	if len(t.Rows) == 0 {
		return nil
	}

	columns := lo.Map(t.Header, func(c string, _ int) string { return quoteIdent(c) })
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quoteIdent(t.Table), strings.Join(columns, ", "), s.db.placeholders(1, len(t.Header)))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", t.Table, err)
	}
	defer stmt.Close()

	for _, r := range t.Rows {
		if len(r) != len(t.Header) {
			return fmt.Errorf("row for %s has %d values, want %d", t.Table, len(r), len(t.Header))
		}
		if _, err := stmt.ExecContext(ctx, r.Args()...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", t.Table, err)
		}
	}
	return nil
}

// CountRows returns the number of rows in a table, or zero if the table has
// not been created.
func (s *TableStore) CountRows(ctx context.Context, table string) (int, error) {
	exists, err := s.tableExists(ctx, table)
	if err != nil || !exists {
		return 0, err
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, quoteIdent(table))
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// Rows returns every row stored under key.
func (s *TableStore) Rows(ctx context.Context, table string, header []string, key string) ([]records.Row, error) {
	columns := lo.Map(header, func(c string, _ int) string { return quoteIdent(c) })
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = %s`,
		strings.Join(columns, ", "), quoteIdent(table), quoteIdent(header[0]), s.db.Placeholder(1))

	rows, err := s.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var out []records.Row
	for rows.Next() {
		r := make(records.Row, len(header))
		dest := make([]any, len(header))
		for i := range r {
			dest[i] = &r[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *TableStore) tableExists(ctx context.Context, table string) (bool, error) {
	query := `SELECT COUNT(*) FROM information_schema.tables WHERE table_name = $1`
	if s.db.Dialect == SQLite {
		query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, table).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return n > 0, nil
}
