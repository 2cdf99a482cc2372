package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/tabular"
)

var stackCmd = &cobra.Command{
	Use:   "stack <house|senate> <csv>...",
	Short: "Concatenate flattened CSV files from several download periods",
	Long: `Stack concatenates flattened CSV files named <year>_<window>_<contents>.csv
into one CSV on stdout. Each row gains the year and window from its file
name. Headers are merged and missing cells are left empty.

Examples:
  lobbying stack house 2019_1stQuarter_reports.csv 2019_2ndQuarter_reports.csv
  lobbying stack senate 2020_Q1_filings.csv 2020_Q2_filings.csv`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{string(tabular.House), string(tabular.Senate)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tabular.Stack(tabular.Chamber(args[0]), args[1:], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(stackCmd)
}
