// Package schedule derives the "what to take out" views from the aggregated
// pickup schedule: today's pickups, the coming week, and categories whose
// next pickup falls beyond the week.
package schedule

import (
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
)

// weekSize is how many upcoming entries count as "this week".
const weekSize = 7

// WeekView is the presentation-ready split of the upcoming schedule.
type WeekView struct {
	// Today holds the pickups dated exactly today.
	Today []gomi.Entry `json:"today"`
	// Next is the earliest upcoming pickup when Today is empty.
	Next *gomi.Entry `json:"next,omitempty"`
	// Week holds the first seven upcoming entries.
	Week []gomi.Entry `json:"week"`
	// Irregular holds, for each item label that appears after the week
	// but not within it, that label's earliest later entry.
	Irregular []gomi.Entry `json:"irregular"`
}

// BuildWeekView splits entries into the week view. entries must already be
// filtered to dates on or after today and sorted ascending, as produced by
// the calendar aggregator.
func BuildWeekView(entries []gomi.Entry, today time.Time) WeekView {
	var view WeekView

	day := gomi.DateOf(today)
	for _, e := range entries {
		if e.Date.Equal(day) {
			view.Today = append(view.Today, e)
		}
	}
	if len(view.Today) == 0 && len(entries) > 0 {
		next := entries[0]
		view.Next = &next
	}

	n := weekSize
	if n > len(entries) {
		n = len(entries)
	}
	view.Week = append(view.Week, entries[:n]...)
	rest := entries[n:]

	inWeek := make(map[string]bool, len(view.Week))
	for _, e := range view.Week {
		inWeek[e.ItemLabel] = true
	}

	seen := make(map[string]bool)
	for _, e := range rest {
		if inWeek[e.ItemLabel] || seen[e.ItemLabel] {
			continue
		}
		seen[e.ItemLabel] = true
		view.Irregular = append(view.Irregular, e)
	}

	return view
}
