// Package search matches household-item keywords against the crawled
// sorting guide and joins each hit to its next pickup date.
//
// The join between guide records and calendar entries is a soft one: the
// record's calendar name is matched as a substring of entry item labels,
// because the two vocabularies are scraped from independent pages and are
// not guaranteed consistent. First match wins; when several labels contain
// the same substring the earliest dated entry is reported.
package search

import (
	"strings"
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
)

// Match is one guide record that matched the query, with the next upcoming
// pickup for its category when the calendar has one.
type Match struct {
	Guide      gomi.GuideRecord `json:"guide"`
	NextPickup *gomi.Entry      `json:"next_pickup,omitempty"`
}

// Search returns the guide records whose details or category name contain
// query. entries must be the date-sorted upcoming schedule; it supplies the
// NextPickup for each match. An empty guide list means every query yields
// no matches.
func Search(query string, guides []gomi.GuideRecord, entries []gomi.Entry, today time.Time) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var matches []Match
	for _, g := range guides {
		if !strings.Contains(g.Details, query) && !strings.Contains(g.CategoryName, query) {
			continue
		}
		matches = append(matches, Match{
			Guide:      g,
			NextPickup: nextPickup(entries, g.CalendarName, today),
		})
	}
	return matches
}

// nextPickup finds the earliest entry on or after today whose item label
// contains calendarName. Relies on entries being sorted by date ascending.
func nextPickup(entries []gomi.Entry, calendarName string, today time.Time) *gomi.Entry {
	if calendarName == "" {
		return nil
	}
	day := gomi.DateOf(today)
	for _, e := range entries {
		if e.Date.Before(day) {
			continue
		}
		if strings.Contains(e.ItemLabel, calendarName) {
			match := e
			return &match
		}
	}
	return nil
}
