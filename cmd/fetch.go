package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/service"
)

var (
	fetchYear     int
	fetchDocument string
	fetchFile     string
	fetchOutput   string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "List or download bulk XML files from the House disclosure portal",
}

var fetchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the downloads the House portal offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		files, err := newHouseClient().List(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintf(out, "%s\t%s\n", f.Year, f.Document)
		}
		return nil
	},
}

var fetchDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download one zip of XML files from the House portal",
	Long: `Download one zip of XML files from the House portal, chosen either by
--year and --document or by --file.

Examples:
  lobbying fetch download --year 2019 --document 1stQuarter -o 2019_1stQuarter_XML.zip
  lobbying fetch download --file 2019_Registrations > 2019_Registrations_XML.zip`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := downloadName()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		var out io.Writer = cmd.OutOrStdout()
		if fetchOutput != "" {
			f, err := os.Create(fetchOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", fetchOutput, err)
			}
			defer f.Close()
			out = f
		}

		logger.Info("downloading", "file", name)
		n, err := newHouseClient().Download(ctx, name, out)
		if err != nil {
			return err
		}
		logger.Info("download complete", "file", name, "bytes", n)
		return nil
	},
}

// downloadName is the portal name the download flags select. --file takes
// the flattened-file spelling with underscores.
func downloadName() (string, error) {
	if fetchFile != "" {
		return strings.ReplaceAll(fetchFile, "_", " "), nil
	}
	if fetchYear == 0 || fetchDocument == "" {
		return "", errors.New("either --file or both --year and --document are required")
	}
	if !slices.Contains(model.HouseDocuments, fetchDocument) {
		return "", fmt.Errorf("unknown document %q, want one of %s", fetchDocument, strings.Join(model.HouseDocuments, ", "))
	}
	return service.FileName(fetchYear, fetchDocument), nil
}

func newHouseClient() *service.HouseClient {
	return service.NewHouseClient(cfg.Fetch.URL, cfg.Fetch.Timeout, cfg.Fetch.Retries)
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.AddCommand(fetchListCmd)
	fetchCmd.AddCommand(fetchDownloadCmd)

	fetchDownloadCmd.Flags().IntVarP(&fetchYear, "year", "y", 0, "Filing year, e.g. 2019")
	fetchDownloadCmd.Flags().StringVarP(&fetchDocument, "document", "d", "", "Document window: "+strings.Join(model.HouseDocuments, ", "))
	fetchDownloadCmd.Flags().StringVarP(&fetchFile, "file", "f", "", "File name such as 2019_1stQuarter")
	fetchDownloadCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Write to this file instead of stdout")
	fetchDownloadCmd.MarkFlagsMutuallyExclusive("file", "year")
	fetchDownloadCmd.MarkFlagsMutuallyExclusive("file", "document")
}
