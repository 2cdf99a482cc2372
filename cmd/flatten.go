package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/batch"
	"github.com/jjenkins/lobbying/internal/records"
	"github.com/jjenkins/lobbying/internal/service"
	"github.com/jjenkins/lobbying/internal/tabular"
)

var houseCmd = &cobra.Command{
	Use:   "house <stream> <file|dir|zip>...",
	Short: "Flatten House LD-1/LD-2 XML into one record stream as CSV",
	Long: `Flatten House registrations (LD-1) or quarterly reports (LD-2) into one
record stream, written as CSV to stdout. Each input is an XML file, a
directory of XML files or a zip archive of them.

Yes/no fields, such as the new column of the lobbyists streams, are written
as lower-case true or false. An absent or unrecognised value is false.

Streams:
  ` + strings.Join(records.Names("house"), "\n  ") + `

Examples:
  # Lobbyists from a directory of registrations
  lobbying house lobbyists ./2019_Registrations > 2019_Registrations_lobbyists.csv

  # Report issues straight from a portal download
  lobbying house report_issues 2019_1stQuarter_XML.zip`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlatten(cmd, "house", args[0], args[1:])
	},
}

var senateCmd = &cobra.Command{
	Use:   "senate <stream> <file|dir|zip>...",
	Short: "Flatten Senate PublicFilings XML into one record stream as CSV",
	Long: `Flatten Senate PublicFilings documents into one record stream, written as
CSV to stdout. Every row carries the id of the filing it came from.

Streams:
  ` + strings.Join(records.Names("senate"), "\n  "),
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlatten(cmd, "senate", args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(houseCmd)
	rootCmd.AddCommand(senateCmd)
}

func runFlatten(cmd *cobra.Command, chamber, name string, inputs []string) error {
	stream, err := records.LookupChamber(chamber, name)
	if err != nil {
		return err
	}

	in, err := batch.Expand(inputs)
	if err != nil {
		return err
	}
	defer in.Close()
	sources := in.Sources

	ctx, cancel := signalContext()
	defer cancel()

	w := tabular.NewWriter(cmd.OutOrStdout())
	if err := w.WriteHeader(stream.Header); err != nil {
		return err
	}

	streams := []records.Stream{stream}
	runner := service.NewRunner(cfg.Runner.Workers, logger)
	stats, err := runner.Run(ctx, stream.Kind, sources, streams, func(b service.Batch) error {
		return w.WriteRows(b.Rows[0])
	})
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("flatten cancelled")
		}
		return err
	}
	runner.PrintSummary(stats, streams)

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d sources failed", stats.Failed, stats.Total)
	}
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			logger.Info("received interrupt signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
