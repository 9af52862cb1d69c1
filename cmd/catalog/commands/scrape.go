package commands

import (
	"fmt"
	"time"

	"github.com/brequin/catalog/courses"
	"github.com/brequin/catalog/db"
	"github.com/brequin/catalog/scrape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scrapeOutput   string
	scrapePages    string
	scrapeDatabase string
	scrapeWorkers  int
	scrapeMaxPages int
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "output", "o", "", "Catalog file to write (default from config).")
	scrapeCmd.Flags().StringVar(&scrapePages, "pages", "", "Also write the extracted page fragments here, for 'parse'.")
	scrapeCmd.Flags().StringVar(&scrapeDatabase, "database", "", "Postgres connection string to store the courses in.")
	scrapeCmd.Flags().IntVarP(&scrapeWorkers, "concurrency", "j", 0, "Pages fetched at once (default from config).")
	scrapeCmd.Flags().IntVar(&scrapeMaxPages, "max-pages", 0, "Stop after this many index pages.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [course ids...]",
	Short: "Scrapes every course in the catalog, or only the given course ids.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if scrapeWorkers > 0 {
			cfg.Concurrency = scrapeWorkers
		}
		if scrapeMaxPages > 0 {
			cfg.MaxPages = scrapeMaxPages
		}
		if scrapeOutput != "" {
			cfg.Output = scrapeOutput
		}
		if scrapeDatabase != "" {
			cfg.Database = scrapeDatabase
		}

		client, err := scrape.NewClient(cfg, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		t1 := time.Now()

		courseIds := args
		if len(courseIds) == 0 {
			courseIds, err = client.CourseIds(ctx)
			if err != nil {
				return fmt.Errorf("discover courses: %w", err)
			}
		}
		logger.Info("scraping courses", zap.Int("courses", len(courseIds)), zap.Int("concurrency", cfg.Concurrency))

		scraper := scrape.Scraper{Client: client, Logger: logger, Concurrency: cfg.Concurrency}
		result, err := scraper.Run(ctx, courseIds)
		if err != nil {
			return err
		}

		if scrapePages != "" {
			if err := scrape.WritePages(scrapePages, result.Pages); err != nil {
				return err
			}
		}
		if err := courses.WriteFile(cfg.Output, result.Records); err != nil {
			return err
		}

		if cfg.Database != "" {
			if err := store(cmd, result.Records); err != nil {
				return err
			}
		}

		logger.Info(
			"scraped catalog",
			zap.String("output", cfg.Output),
			zap.Int("parsed", result.Stats.Parsed),
			zap.Int("rejected", result.Stats.Rejected),
			zap.Int("failed", result.Stats.Failed),
			zap.Duration("time", time.Since(t1)),
		)
		return nil
	},
}

func store(cmd *cobra.Command, records []courses.Record) error {
	ctx := cmd.Context()

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.InsertCourses(ctx, records); err != nil {
		return fmt.Errorf("insert courses: %w", err)
	}

	logger.Info("stored courses", zap.Int("courses", len(records)))
	return nil
}
