package calendar

import (
	"context"
	"sort"
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
)

// MonthFetcher retrieves the pickup entries for one calendar month.
type MonthFetcher interface {
	FetchMonth(ctx context.Context, year, month int) []gomi.Entry
}

// Aggregator builds the upcoming-pickup schedule from the reference month
// and the month after it.
type Aggregator struct {
	fetcher MonthFetcher
}

// NewAggregator creates an Aggregator over the given fetcher.
func NewAggregator(fetcher MonthFetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// BuildSchedule fetches the calendar for today's month and the following
// month, drops entries before today, and returns the rest sorted by date
// ascending. Same-date entries keep their scrape order. An empty result
// means no data could be fetched or no pickups remain; callers that need
// to tell those apart must check the fetches separately.
func (a *Aggregator) BuildSchedule(ctx context.Context, today time.Time) []gomi.Entry {
	year, month := today.Year(), int(today.Month())
	nextYear, nextMonth := NextMonth(year, month)

	entries := a.fetcher.FetchMonth(ctx, year, month)
	entries = append(entries, a.fetcher.FetchMonth(ctx, nextYear, nextMonth)...)

	day := gomi.DateOf(today)
	upcoming := make([]gomi.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.Before(day) {
			continue
		}
		upcoming = append(upcoming, e)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return upcoming
}

// NextMonth returns the month immediately after (year, month), rolling the
// year over at December.
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}
