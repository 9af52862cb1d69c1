package scrape

import (
	"context"
	"slices"
	"sync"

	"github.com/brequin/catalog/courses"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	Courses  int
	Parsed   int
	Rejected int
	Failed   int
}

type Result struct {
	Records []courses.Record
	// Every fetched page, including the rejected ones
	Pages []Page
	Stats Stats
}

type Scraper struct {
	Client      *Client
	Logger      *zap.Logger
	Concurrency int
}

func (s Scraper) limit() int {
	if s.Concurrency < 1 {
		return 1
	}
	return s.Concurrency
}

func sortRecords(records []courses.Record) {
	slices.SortFunc(records, func(a, b courses.Record) int {
		return courses.CompareReferences(a.Reference, b.Reference)
	})
}

// ParsePages turns pages into records, logging and skipping the pages that cannot
// be parsed. Records come back ordered by reference.
func ParsePages(logger *zap.Logger, pages []Page) ([]courses.Record, Stats) {
	stats := Stats{Courses: len(pages)}

	records := make([]courses.Record, 0, len(pages))
	for _, page := range pages {
		record, err := courses.Parse(page.Fragments)
		if err != nil {
			logger.Warn("unable to parse course", zap.String("id", page.Id), zap.Error(err))
			stats.Rejected++
			continue
		}
		records = append(records, record)
		stats.Parsed++
	}
	sortRecords(records)

	return records, stats
}

// Run fetches and parses every course. A course that cannot be fetched or
// parsed is logged and left out; only cancellation of ctx stops the run.
func (s Scraper) Run(ctx context.Context, courseIds []string) (Result, error) {
	fetched := make([]*Page, len(courseIds))
	var records []courses.Record
	stats := Stats{Courses: len(courseIds)}
	var mutex sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.limit())

	for i, courseId := range courseIds {
		i, courseId := i, courseId
		group.Go(func() error {
			page, err := s.Client.CoursePage(ctx, courseId)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.Logger.Warn("unable to scrape course", zap.String("id", courseId), zap.Error(err))
				mutex.Lock()
				stats.Failed++
				mutex.Unlock()
				return nil
			}

			record, err := courses.Parse(page.Fragments)

			mutex.Lock()
			defer mutex.Unlock()
			fetched[i] = &page
			if err != nil {
				s.Logger.Warn("unable to parse course", zap.String("id", courseId), zap.Error(err))
				stats.Rejected++
				return nil
			}
			records = append(records, record)
			stats.Parsed++
			s.Logger.Debug("parsed course", zap.String("id", courseId), zap.Stringer("course", record.Reference))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	if records == nil {
		records = []courses.Record{}
	}
	sortRecords(records)

	var pages []Page
	for _, page := range fetched {
		if page != nil {
			pages = append(pages, *page)
		}
	}

	return Result{Records: records, Pages: pages, Stats: stats}, nil
}
