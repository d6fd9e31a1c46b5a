package gomi

import (
	"fmt"
	"time"
)

// Entry represents one scheduled garbage pickup on the city calendar.
type Entry struct {
	Date         time.Time `json:"date"`
	WeekdayLabel string    `json:"weekday_label"`
	ItemLabel    string    `json:"item_label"`
}

// DateLabel returns the short M/D display form of the entry date.
func (e Entry) DateLabel() string {
	return fmt.Sprintf("%d/%d", int(e.Date.Month()), e.Date.Day())
}

// On reports whether the entry falls on the given calendar day,
// ignoring the time-of-day and location of day.
func (e Entry) On(day time.Time) bool {
	return e.Date.Equal(DateOf(day))
}

// DateOf truncates t to its calendar date at UTC midnight. All entry
// dates are stored this way so date comparisons are exact.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
