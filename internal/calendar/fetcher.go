package calendar

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tkohara/gomi-navi/internal/fetch"
	"github.com/tkohara/gomi-navi/internal/gomi"
	"github.com/tkohara/gomi-navi/internal/gomi/dateutil"
	"github.com/tkohara/gomi-navi/internal/logger"
)

// FetchTimeout bounds a single calendar page request.
const FetchTimeout = 10 * time.Second

// cellPattern matches calendar cells that carry a pickup: leading digits are
// the day of month, the remainder is the raw item label.
var cellPattern = regexp.MustCompile(`^(\d+)(.*)$`)

// Fetcher retrieves and parses a single month of the garbage calendar.
type Fetcher struct {
	client *fetch.Client
}

// NewFetcher creates a Fetcher using the given HTTP client.
func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchMonth fetches the calendar page for (year, month) and returns its
// pickup entries. Transport failures, non-2xx statuses and missing tables
// all yield an empty slice; only individual malformed cells are skipped
// within an otherwise good page.
func (f *Fetcher) FetchMonth(ctx context.Context, year, month int) []gomi.Entry {
	return f.fetchURL(ctx, dateutil.URLForMonth(year, month), year, month)
}

func (f *Fetcher) fetchURL(ctx context.Context, url string, year, month int) []gomi.Entry {
	res := f.client.Get(ctx, url, FetchTimeout)
	if !res.OK() {
		logger.Warn("calendar fetch failed", logger.Fields{
			"url":    url,
			"reason": res.Reason(),
		})
		return nil
	}

	entries := parseMonth(strings.NewReader(res.Body), year, month)
	logger.Debug("calendar month parsed", logger.Fields{
		"url":     url,
		"entries": len(entries),
	})
	return entries
}

// parseMonth extracts pickup entries from a calendar page. The page layout
// is not contractual: only the first table is inspected, and cells that do
// not look like "<day><label>" are ignored.
func parseMonth(r io.Reader, year, month int) []gomi.Entry {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		logger.Warn("calendar parse failed", logger.Fields{"error": err.Error()})
		return nil
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		logger.Debug("calendar table missing", logger.Fields{
			"year":  year,
			"month": month,
		})
		return nil
	}

	var entries []gomi.Entry
	table.Find("td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		if text == "" {
			return
		}

		matches := cellPattern.FindStringSubmatch(text)
		if matches == nil {
			return
		}

		day, err := strconv.Atoi(matches[1])
		if err != nil {
			return
		}

		// Layout artifacts can place day numbers that don't exist in
		// this month (31 in a 30-day month). Reject the cell alone.
		date, ok := dateutil.ValidDate(year, month, day)
		if !ok {
			logger.Debug("calendar cell skipped", logger.Fields{
				"year":  year,
				"month": month,
				"cell":  text,
			})
			return
		}

		entries = append(entries, gomi.Entry{
			Date:         date,
			WeekdayLabel: dateutil.WeekdayLabel(year, month, day),
			ItemLabel:    strings.TrimSpace(matches[2]),
		})
	})

	return entries
}
