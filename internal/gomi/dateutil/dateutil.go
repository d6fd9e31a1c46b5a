// Package dateutil provides date helpers for the Nishinomiya garbage calendar:
// weekday display labels and the official per-month calendar page URL.
package dateutil

import (
	"fmt"
	"time"
)

// calendarID identifies the Nishinomiya garbage calendar on the city site.
const calendarID = 466

const calendarURLFormat = "https://www.nishi.or.jp/homepage/gomicalendar/calendar_b.html?date=%04d-%02d&id=%d#garbage-calendar"

// weekdayLabels holds the single-character Japanese weekday labels,
// Monday first.
var weekdayLabels = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// URLForMonth builds the official calendar page URL for the given month.
// The month is always embedded zero-padded as YYYY-MM.
func URLForMonth(year, month int) string {
	return fmt.Sprintf(calendarURLFormat, year, month, calendarID)
}

// ValidDate reports whether (year, month, day) names a real calendar date,
// and returns it at UTC midnight if so. time.Date normalizes out-of-range
// values (April 31 becomes May 1), so a round-trip mismatch means the
// triple was invalid.
func ValidDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// WeekdayLabel returns the Japanese weekday label for the given date, or an
// empty string if the date is not valid. Invalid dates are treated as an
// unknown weekday, never an error.
func WeekdayLabel(year, month, day int) string {
	t, ok := ValidDate(year, month, day)
	if !ok {
		return ""
	}
	// time.Weekday counts from Sunday; labels count from Monday.
	return weekdayLabels[(int(t.Weekday())+6)%7]
}
