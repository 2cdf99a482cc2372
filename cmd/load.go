package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/batch"
	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/service"
	"github.com/jjenkins/lobbying/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load <family> <file|dir|zip>...",
	Short: "Load every stream of a document family into the database",
	Long: `Load flattens every stream of a document family and stores the rows in
one table per stream (house_* or senate_*). Reloading a document replaces its
rows. Each load is recorded in load_runs and row-count metrics are
recalculated afterwards.

Families: house-registration, house-report, senate

The database comes from DATABASE_URL or database.url in the config file:
postgres:// URLs use PostgreSQL, sqlite:// and file: URLs use SQLite.

Examples:
  # Load a quarter of House reports into SQLite
  DATABASE_URL=sqlite://lobbying.db lobbying load house-report 2019_1stQuarter_XML.zip

  # Load Senate filings into PostgreSQL
  lobbying load senate ./senate/2020_Q1 --config lobbying.yaml`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	kind, err := disclosure.ParseKind(args[0])
	if err != nil {
		return err
	}

	in, err := batch.Expand(args[1:])
	if err != nil {
		return err
	}
	defer in.Close()
	sources := in.Sources

	ctx, cancel := signalContext()
	defer cancel()

	// Connect to database
	logger.Info("connecting to database")
	db, err := store.NewDB(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	runner := service.NewRunner(cfg.Runner.Workers, logger)
	importer := service.NewImporter(runner, store.NewTableStore(db), store.NewRunStore(db), logger)

	run, stats, err := importer.Import(ctx, kind, sources)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("load cancelled")
		}
		return err
	}
	streams := records.ForKind(kind)
	runner.PrintSummary(stats, streams)
	logger.Info(fmt.Sprintf("Run:             %s (%s)", run.ID, run.Duration()))

	// Calculate and store system metrics
	logger.Info("calculating system metrics")
	metricsService := service.NewMetricsService(db)
	systemMetrics, err := metricsService.CalculateAndStore(ctx, records.All())
	if err != nil {
		logger.Warn("failed to calculate metrics", "error", err)
	} else {
		logger.Info("")
		logger.Info("=== System Metrics ===")
		logger.Info(fmt.Sprintf("Total rows:      %d", systemMetrics.TotalRows))
		logger.Info(fmt.Sprintf("Loads recorded:  %d", systemMetrics.Runs))
	}

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d sources failed", stats.Failed, stats.Total)
	}
	return nil
}
