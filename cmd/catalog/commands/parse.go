package commands

import (
	"github.com/brequin/catalog/courses"
	"github.com/brequin/catalog/scrape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseOutput string

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Catalog file to write (default from config).")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <pages.json>",
	Short: "Parses page fragments saved by 'scrape --pages' into a catalog file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if parseOutput != "" {
			cfg.Output = parseOutput
		}

		pages, err := scrape.ReadPages(args[0])
		if err != nil {
			return err
		}

		records, stats := scrape.ParsePages(logger, pages)
		if err := courses.WriteFile(cfg.Output, records); err != nil {
			return err
		}

		logger.Info(
			"parsed catalog",
			zap.String("output", cfg.Output),
			zap.Int("parsed", stats.Parsed),
			zap.Int("rejected", stats.Rejected),
		)
		return nil
	},
}
