package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/records"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func row(values ...string) records.Row {
	r := make(records.Row, len(values))
	for i, v := range values {
		if v != "<null>" {
			r[i] = sql.NullString{String: v, Valid: true}
		}
	}
	return r
}

func TestResolveDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		driver  string
		source  string
		dialect Dialect
	}{
		{"postgres://u@localhost/lobbying", "postgres", "postgres://u@localhost/lobbying", Postgres},
		{"postgresql://u@localhost/lobbying", "postgres", "postgresql://u@localhost/lobbying", Postgres},
		{"sqlite:///tmp/l.db", "sqlite", "/tmp/l.db", SQLite},
		{"file:l.db?cache=shared", "sqlite", "file:l.db?cache=shared", SQLite},
		{":memory:", "sqlite", ":memory:", SQLite},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			driver, source, dialect, err := resolveDSN(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.source, source)
			assert.Equal(t, tt.dialect, dialect)
		})
	}

	_, _, _, err := resolveDSN("mysql://localhost")
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestPlaceholder(t *testing.T) {
	pg := &DB{Dialect: Postgres}
	lite := &DB{Dialect: SQLite}
	assert.Equal(t, "$1, $2, $3", pg.placeholders(1, 3))
	assert.Equal(t, "?, ?", lite.placeholders(4, 2))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}

func TestReplaceRowsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	tables := NewTableStore(newTestDB(t))
	header := []string{"id", "name", "code"}
	require.NoError(t, tables.EnsureTable(ctx, "house_issues", header))

	batch := []TableRows{{
		Table:  "house_issues",
		Header: header,
		Rows:   []records.Row{row("doc1", "TRD", "<null>"), row("doc1", "MAN", "")},
	}}
	require.NoError(t, tables.ReplaceRows(ctx, batch))
	require.NoError(t, tables.ReplaceRows(ctx, batch))

	n, err := tables.CountRows(ctx, "house_issues")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := tables.Rows(ctx, "house_issues", header, "doc1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []records.Row{row("doc1", "TRD", "<null>"), row("doc1", "MAN", "")}, got)
}

func TestReplaceRowsKeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	tables := NewTableStore(newTestDB(t))
	header := []string{"id", "name"}
	require.NoError(t, tables.EnsureTable(ctx, "house_reports", header))

	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{Table: "house_reports", Header: header, Rows: []records.Row{row("a", "first")}}}))
	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{Table: "house_reports", Header: header, Rows: []records.Row{row("b", "second")}}}))
	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{Table: "house_reports", Header: header, Rows: []records.Row{row("a", "revised")}}}))

	n, err := tables.CountRows(ctx, "house_reports")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := tables.Rows(ctx, "house_reports", header, "a")
	require.NoError(t, err)
	assert.Equal(t, []records.Row{row("a", "revised")}, got)
}

func TestReplaceRowsClearsKeysWithoutRows(t *testing.T) {
	ctx := context.Background()
	tables := NewTableStore(newTestDB(t))
	header := []string{"registration_id", "first_name"}
	require.NoError(t, tables.EnsureTable(ctx, "house_lobbyists", header))

	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{
		Table: "house_lobbyists", Header: header, Keys: []string{"doc1"},
		Rows: []records.Row{row("doc1", "Jane")},
	}}))
	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{
		Table: "house_lobbyists", Header: header, Keys: []string{"doc2"},
		Rows: []records.Row{row("doc2", "John")},
	}}))

	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{
		Table: "house_lobbyists", Header: header, Keys: []string{"doc1"},
	}}))

	got, err := tables.Rows(ctx, "house_lobbyists", header, "doc1")
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := tables.CountRows(ctx, "house_lobbyists")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReplaceRowsRollsBack(t *testing.T) {
	ctx := context.Background()
	tables := NewTableStore(newTestDB(t))
	header := []string{"id", "name"}
	require.NoError(t, tables.EnsureTable(ctx, "house_reports", header))
	require.NoError(t, tables.ReplaceRows(ctx, []TableRows{{Table: "house_reports", Header: header, Rows: []records.Row{row("a", "kept")}}}))

	err := tables.ReplaceRows(ctx, []TableRows{
		{Table: "house_reports", Header: header, Rows: []records.Row{row("a", "lost")}},
		{Table: "house_reports", Header: header, Rows: []records.Row{row("a")}},
	})
	require.Error(t, err)

	got, err := tables.Rows(ctx, "house_reports", header, "a")
	require.NoError(t, err)
	assert.Equal(t, []records.Row{row("a", "kept")}, got)
}

func TestCountRowsMissingTable(t *testing.T) {
	n, err := NewTableStore(newTestDB(t)).CountRows(context.Background(), "senate_filings")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	runs := NewRunStore(newTestDB(t))

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	run := &model.LoadRun{Family: "house-report", StartedAt: started, Total: 4}
	require.NoError(t, runs.StartRun(ctx, run))
	assert.Equal(t, model.RunRunning, run.Status)

	got, err := runs.GetByID(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.RunRunning, got.Status)
	assert.False(t, got.FinishedAt.Valid)
	assert.True(t, started.Equal(got.StartedAt))

	run.FinishedAt = sql.NullTime{Time: started.Add(90 * time.Second), Valid: true}
	run.Processed, run.Failed, run.Rows = 3, 1, 42
	run.Status = model.RunCompleted
	require.NoError(t, runs.FinishRun(ctx, run))

	got, err = runs.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunCompleted, got.Status)
	assert.Equal(t, 3, got.Processed)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, 42, got.Rows)
	assert.Equal(t, 90*time.Second, got.Duration())
}

func TestRecentRuns(t *testing.T) {
	ctx := context.Background()
	runs := NewRunStore(newTestDB(t))

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, family := range []string{"house-registration", "house-report", "senate"} {
		require.NoError(t, runs.StartRun(ctx, &model.LoadRun{Family: family, StartedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	recent, err := runs.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "senate", recent[0].Family)
	assert.Equal(t, "house-report", recent[1].Family)
}

func TestRunNotFound(t *testing.T) {
	ctx := context.Background()
	runs := NewRunStore(newTestDB(t))

	got, err := runs.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	err = runs.FinishRun(ctx, &model.LoadRun{FinishedAt: sql.NullTime{Time: time.Now(), Valid: true}})
	assert.ErrorContains(t, err, "not found")
}
