package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/records"
)

// RunStats tracks batch statistics
type RunStats struct {
	Total     int
	Processed int
	Failed    int
	Rows      map[string]int
}

func newRunStats(total int) *RunStats {
	return &RunStats{Total: total, Rows: make(map[string]int)}
}

// Batch is the output of one source: the keys its rows are stored under and
// rows per requested stream, in the order the streams were requested.
type Batch struct {
	ID   string
	Keys []string
	Rows [][]records.Row
}

// Sink consumes batches. It is called from a single goroutine, in source
// order.
type Sink func(b Batch) error

// Runner flattens sources with a bounded pool of workers. Output order does
// not depend on the number of workers.
type Runner struct {
	workers int
	logger  *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, logger: logger}
}

type job struct {
	index int
	src   disclosure.Source
}

type outcome struct {
	index int
	batch Batch
	err   error
}

// Run loads every source as kind, emits the requested streams and hands each
// successful batch to sink. A source that fails to load is logged and
// counted, and the run continues. Run stops early only when ctx is done or
// sink fails.
func (r *Runner) Run(ctx context.Context, kind disclosure.Kind, sources []disclosure.Source, streams []records.Stream, sink Sink) (*RunStats, error) {
	stats := newRunStats(len(sources))
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for range r.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				b, err := flatten(kind, j.src, streams)
				select {
				case outcomes <- outcome{index: j.index, batch: b, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer func() {
			close(jobs)
			wg.Wait()
			close(outcomes)
		}()
		for i, src := range sources {
			select {
			case jobs <- job{index: i, src: src}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Outcomes arrive in completion order; hold them until every earlier
	// source has been handed on.
	pending := make(map[int]outcome)
	next := 0
	var sinkErr error
	for o := range outcomes {
		if sinkErr != nil {
			continue
		}
		pending[o.index] = o
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := r.deliver(ready, stats, streams, sink); err != nil {
				sinkErr = err
				cancel()
				break
			}
		}
	}

	if sinkErr != nil {
		return stats, sinkErr
	}
	if err := ctx.Err(); err != nil && next < len(sources) {
		return stats, err
	}
	return stats, nil
}

func (r *Runner) deliver(o outcome, stats *RunStats, streams []records.Stream, sink Sink) error {
	if o.err != nil {
		stats.Failed++
		r.logger.Warn("skipping source", "id", o.batch.ID, "reason", reason(o.err), "error", o.err)
		return nil
	}

	if err := sink(o.batch); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.batch.ID, err)
	}
	stats.Processed++
	for i, s := range streams {
		stats.Rows[s.Name] += len(o.batch.Rows[i])
	}
	r.logger.Debug("flattened source", "id", o.batch.ID)
	return nil
}

func flatten(kind disclosure.Kind, src disclosure.Source, streams []records.Stream) (Batch, error) {
	b := Batch{ID: src.ID}
	doc, err := records.Open(kind, src)
	if err != nil {
		return b, err
	}
	b.Keys = doc.Keys()
	b.Rows = make([][]records.Row, len(streams))
	for i, s := range streams {
		b.Rows[i] = s.Rows(doc)
	}
	return b, nil
}

// reason classifies a per-source failure for logs.
func reason(err error) string {
	var pe *disclosure.ParseError
	var ce *disclosure.ClassificationError
	switch {
	case errors.As(err, &ce):
		return "classification"
	case errors.As(err, &pe):
		return "parse"
	default:
		return "other"
	}
}

// PrintSummary logs the run statistics
func (r *Runner) PrintSummary(stats *RunStats, streams []records.Stream) {
	r.logger.Info("")
	r.logger.Info("=== Flatten Summary ===")
	r.logger.Info(fmt.Sprintf("Total sources:   %d", stats.Total))
	r.logger.Info(fmt.Sprintf("Processed:       %d", stats.Processed))
	r.logger.Info(fmt.Sprintf("Failed:          %d", stats.Failed))
	for _, s := range streams {
		r.logger.Info(fmt.Sprintf("%-16s %d rows", s.Name+":", stats.Rows[s.Name]))
	}

	if stats.Total > 0 {
		successRate := float64(stats.Processed) / float64(stats.Total) * 100
		r.logger.Info(fmt.Sprintf("Success rate:    %.1f%%", successRate))
	}
}
