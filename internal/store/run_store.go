package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jjenkins/lobbying/internal/model"
)

// RunStore handles database operations for load runs
type RunStore struct {
	db *DB
}

// NewRunStore creates a new RunStore
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// StartRun inserts a running load run, assigning it a new id
func (s *RunStore) StartRun(ctx context.Context, run *model.LoadRun) error {
	run.ID = uuid.New()
	run.Status = model.RunRunning

	query := fmt.Sprintf(`
		INSERT INTO load_runs (id, family, started_at, total_sources, status)
		VALUES (%s)
	`, s.db.placeholders(1, 5))

	_, err := s.db.ExecContext(ctx, query,
		run.ID.String(),
		run.Family,
		FormatTime(run.StartedAt),
		run.Total,
		run.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to start run %s: %w", run.ID, err)
	}
	return nil
}

// FinishRun stores the final counts and status of a run
func (s *RunStore) FinishRun(ctx context.Context, run *model.LoadRun) error {
	p := s.db.Placeholder
	query := fmt.Sprintf(`
		UPDATE load_runs
		SET finished_at = %s, processed = %s, failed = %s, total_rows = %s, status = %s
		WHERE id = %s
	`, p(1), p(2), p(3), p(4), p(5), p(6))

	res, err := s.db.ExecContext(ctx, query,
		FormatTime(run.FinishedAt.Time),
		run.Processed,
		run.Failed,
		run.Rows,
		run.Status,
		run.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s not found", run.ID)
	}
	return nil
}

// GetRecent retrieves the most recent runs, newest first
func (s *RunStore) GetRecent(ctx context.Context, limit int) ([]model.LoadRun, error) {
	query := fmt.Sprintf(`
		SELECT id, family, started_at, finished_at, total_sources, processed,
		       failed, total_rows, status
		FROM load_runs
		ORDER BY started_at DESC
		LIMIT %s
	`, s.db.Placeholder(1))

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs: %w", err)
	}
	defer rows.Close()

	var runs []model.LoadRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetByID retrieves a run by its id
func (s *RunStore) GetByID(ctx context.Context, id uuid.UUID) (*model.LoadRun, error) {
	query := fmt.Sprintf(`
		SELECT id, family, started_at, finished_at, total_sources, processed,
		       failed, total_rows, status
		FROM load_runs
		WHERE id = %s
	`, s.db.Placeholder(1))

	run, err := scanRun(s.db.QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (model.LoadRun, error) {
	var (
		run      model.LoadRun
		id       string
		started  string
		finished sql.NullString
	)
	err := row.Scan(
		&id,
		&run.Family,
		&started,
		&finished,
		&run.Total,
		&run.Processed,
		&run.Failed,
		&run.Rows,
		&run.Status,
	)
	if err == sql.ErrNoRows {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("failed to scan run: %w", err)
	}

	if run.ID, err = uuid.Parse(id); err != nil {
		return run, fmt.Errorf("invalid run id %q: %w", id, err)
	}
	if run.StartedAt, err = parseTime(started); err != nil {
		return run, fmt.Errorf("invalid start time %q: %w", started, err)
	}
	if finished.Valid {
		t, err := parseTime(finished.String)
		if err != nil {
			return run, fmt.Errorf("invalid finish time %q: %w", finished.String, err)
		}
		run.FinishedAt = sql.NullTime{Time: t, Valid: true}
	}
	return run, nil
}
