package cli

import (
	"context"
	"sync"
	"time"

	"github.com/tkohara/gomi-navi/internal/cache"
	"github.com/tkohara/gomi-navi/internal/calendar"
	"github.com/tkohara/gomi-navi/internal/fetch"
	"github.com/tkohara/gomi-navi/internal/gomi"
	"github.com/tkohara/gomi-navi/internal/guide"
	"github.com/tkohara/gomi-navi/internal/logger"
)

const (
	calendarCacheKey = "calendar"
	guideCacheKey    = "guide"

	// The calendar changes monthly but pickup corrections can land any
	// time; the guide pages change rarely.
	calendarTTL = time.Hour
	guideTTL    = 24 * time.Hour
)

// app holds the wired-up pipeline shared by all subcommands.
type app struct {
	cache      *cache.Cache
	aggregator *calendar.Aggregator
	crawler    *guide.Crawler
	indexURL   string
	now        func() time.Time
}

// newApp builds the pipeline from the flags: guide crawl content from
// --config when given, defaults otherwise.
func newApp() (*app, error) {
	cfg := guide.DefaultConfig()
	if flagConfig != "" {
		loaded, err := guide.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	client := fetch.New()
	return &app{
		cache:      cache.New(),
		aggregator: calendar.NewAggregator(calendar.NewFetcher(client)),
		crawler:    guide.NewCrawler(client, cfg),
		indexURL:   cfg.IndexURL,
		now:        time.Now,
	}, nil
}

// upcoming returns the date-sorted upcoming pickup schedule, cached for an
// hour within the session.
func (a *app) upcoming(ctx context.Context) []gomi.Entry {
	entries, err := cache.Fetch(a.cache, calendarCacheKey, calendarTTL, func() ([]gomi.Entry, error) {
		return a.aggregator.BuildSchedule(ctx, a.now()), nil
	})
	if err != nil {
		logger.Error("calendar refresh failed", nil, err)
		return nil
	}
	return entries
}

// guides returns the crawled sorting-guide records, cached for a day within
// the session.
func (a *app) guides(ctx context.Context) []gomi.GuideRecord {
	records, err := cache.Fetch(a.cache, guideCacheKey, guideTTL, func() ([]gomi.GuideRecord, error) {
		return a.crawler.Crawl(ctx, a.indexURL), nil
	})
	if err != nil {
		logger.Error("guide refresh failed", nil, err)
		return nil
	}
	return records
}

// refresh runs the calendar and guide refreshes in parallel. The two touch
// disjoint state, so no ordering between them is needed.
func (a *app) refresh(ctx context.Context) ([]gomi.Entry, []gomi.GuideRecord) {
	var (
		entries []gomi.Entry
		records []gomi.GuideRecord
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		entries = a.upcoming(ctx)
	}()
	go func() {
		defer wg.Done()
		records = a.guides(ctx)
	}()
	wg.Wait()
	return entries, records
}
