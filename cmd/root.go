// Package cmd implements the lobbying command line.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/config"
	"github.com/jjenkins/lobbying/internal/logging"
)

var (
	configPath string
	logLevel   string
	logJSON    bool
	workers    int

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lobbying",
	Short: "Flatten House and Senate lobbying disclosure XML",
	Long: `lobbying turns House LD-1/LD-2 disclosure XML and Senate PublicFilings XML
into flat record streams, written as CSV or loaded into a SQL database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-json") {
			cfg.Log.JSON = logJSON
		}
		if workers > 0 {
			cfg.Runner.Workers = workers
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger = logging.New(cmd.ErrOrStderr(), level, cfg.Log.JSON)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the command named on the command line
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Number of documents flattened in parallel (default from config)")
}
