package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/store"
)

// Importer loads every stream of a document family into the database and
// records the load as a run
type Importer struct {
	runner *Runner
	tables *store.TableStore
	runs   *store.RunStore
	logger *slog.Logger
}

// NewImporter creates a new Importer
func NewImporter(runner *Runner, tables *store.TableStore, runs *store.RunStore, logger *slog.Logger) *Importer {
	return &Importer{
		runner: runner,
		tables: tables,
		runs:   runs,
		logger: logger,
	}
}

// Import flattens sources as kind and replaces their rows in the stream
// tables, one transaction per source. Sources that fail to load are skipped
// and counted in the returned stats.
func (i *Importer) Import(ctx context.Context, kind disclosure.Kind, sources []disclosure.Source) (*model.LoadRun, *RunStats, error) {
	streams := records.ForKind(kind)
	for _, s := range streams {
		if err := i.tables.EnsureTable(ctx, s.Table(), s.Header); err != nil {
			return nil, nil, err
		}
	}

	run := &model.LoadRun{
		Family:    kind.String(),
		StartedAt: time.Now(),
		Total:     len(sources),
	}
	if err := i.runs.StartRun(ctx, run); err != nil {
		return nil, nil, err
	}
	i.logger.Info("starting load", "run", run.ID, "family", run.Family, "sources", run.Total)

	sink := func(b Batch) error {
		batch := make([]store.TableRows, len(streams))
		for idx, s := range streams {
			batch[idx] = store.TableRows{Table: s.Table(), Header: s.Header, Keys: b.Keys, Rows: b.Rows[idx]}
		}
		return i.tables.ReplaceRows(ctx, batch)
	}

	stats, runErr := i.runner.Run(ctx, kind, sources, streams, sink)

	run.FinishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	run.Status = model.RunCompleted
	if runErr != nil {
		run.Status = model.RunFailed
	}
	if stats != nil {
		run.Processed = stats.Processed
		run.Failed = stats.Failed
		for _, n := range stats.Rows {
			run.Rows += n
		}
	}

	// The run row is closed even when ctx was cancelled.
	if err := i.runs.FinishRun(context.WithoutCancel(ctx), run); err != nil {
		i.logger.Error("failed to record run", "run", run.ID, "error", err)
	}

	if runErr != nil {
		return run, stats, fmt.Errorf("load %s failed: %w", run.ID, runErr)
	}
	return run, stats, nil
}
