package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/store"
)

// MetricsService calculates and stores row-count metrics
type MetricsService struct {
	db     *store.DB
	tables *store.TableStore
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(db *store.DB) *MetricsService {
	return &MetricsService{db: db, tables: store.NewTableStore(db)}
}

// TableCount is the row count of one stream table
type TableCount struct {
	Table string
	Rows  int
}

// SystemMetrics represents calculated system-wide metrics
type SystemMetrics struct {
	Tables    []TableCount
	TotalRows int
	Runs      int
}

// Calculate counts the rows of every stream table and the recorded loads
func (m *MetricsService) Calculate(ctx context.Context, streams []records.Stream) (*SystemMetrics, error) {
	metrics := &SystemMetrics{}

	for _, s := range streams {
		n, err := m.tables.CountRows(ctx, s.Table())
		if err != nil {
			return nil, fmt.Errorf("failed to calculate table metrics: %w", err)
		}
		metrics.Tables = append(metrics.Tables, TableCount{Table: s.Table(), Rows: n})
		metrics.TotalRows += n
	}

	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM load_runs`).Scan(&metrics.Runs)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	return metrics, nil
}

// CalculateAndStore calculates the metrics and stores the counts as metrics
// named rows:<table>, plus total_rows and load_runs.
func (m *MetricsService) CalculateAndStore(ctx context.Context, streams []records.Stream) (*SystemMetrics, error) {
	metrics, err := m.Calculate(ctx, streams)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, t := range metrics.Tables {
		if err := m.storeMetric(ctx, "rows:"+t.Table, strconv.Itoa(t.Rows), now); err != nil {
			return nil, err
		}
	}
	if err := m.storeMetric(ctx, "total_rows", strconv.Itoa(metrics.TotalRows), now); err != nil {
		return nil, err
	}
	if err := m.storeMetric(ctx, "load_runs", strconv.Itoa(metrics.Runs), now); err != nil {
		return nil, err
	}

	return metrics, nil
}

// storeMetric stores a single metric value
func (m *MetricsService) storeMetric(ctx context.Context, name, value string, at time.Time) error {
	query := fmt.Sprintf(`
		INSERT INTO metrics (metric_name, metric_value, calculated_at)
		VALUES (%s, %s, %s)
	`, m.db.Placeholder(1), m.db.Placeholder(2), m.db.Placeholder(3))

	_, err := m.db.ExecContext(ctx, query, name, value, store.FormatTime(at))
	if err != nil {
		return fmt.Errorf("failed to store metric %s: %w", name, err)
	}

	return nil
}

// GetLatestMetrics retrieves the most recent value of every metric
func (m *MetricsService) GetLatestMetrics(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT m.metric_name, m.metric_value
		FROM metrics m
		WHERE m.calculated_at = (
			SELECT MAX(calculated_at) FROM metrics latest
			WHERE latest.metric_name = m.metric_name
		)
	`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics: %w", err)
	}
	defer rows.Close()

	metrics := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		metrics[name] = value
	}

	return metrics, rows.Err()
}
