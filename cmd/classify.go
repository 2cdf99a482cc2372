package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/batch"
	"github.com/jjenkins/lobbying/internal/disclosure"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file|dir|zip>...",
	Short: "Print the document family of each input",
	Long: `Classify prints "<id>\t<family>" for every recognised document. Documents
that are not disclosures, or not XML at all, are logged and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := batch.Expand(args)
		if err != nil {
			return err
		}
		defer in.Close()
		sources := in.Sources

		skipped := 0
		out := cmd.OutOrStdout()
		for _, src := range sources {
			kind, err := disclosure.Classify(src)
			if err != nil {
				skipped++
				logger.Warn("skipping source", "id", src.ID, "error", err)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", src.ID, kind)
		}

		if skipped > 0 {
			return fmt.Errorf("%d of %d sources not recognised", skipped, len(sources))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
