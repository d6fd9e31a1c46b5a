// Package ics renders the pickup schedule as an iCalendar file so pickups
// can be imported into a personal calendar with one all-day event each.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
)

const prodID = "-//gomi-navi//gomi-navi//JA"

// Generate writes entries as an iCalendar document. Each entry becomes an
// all-day VEVENT whose UID combines the date and item label, so regenerated
// calendars update in place instead of duplicating events.
func Generate(w io.Writer, entries []gomi.Entry) error {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString(fmt.Sprintf("PRODID:%s\r\n", prodID))
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(time.Now().UTC())
	for _, e := range entries {
		if e.ItemLabel == "" {
			continue
		}

		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(fmt.Sprintf("UID:%s-%s@gomi-navi\r\n", e.Date.Format("20060102"), escapeICS(e.ItemLabel)))
		b.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		b.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", e.Date.Format("20060102")))
		b.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", e.Date.AddDate(0, 0, 1).Format("20060102")))
		b.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(e.ItemLabel)))
		b.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf("%s (%s) %s", e.DateLabel(), e.WeekdayLabel, e.ItemLabel))))
		b.WriteString("TRANSP:TRANSPARENT\r\n")
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
