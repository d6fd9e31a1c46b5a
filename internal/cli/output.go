package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
	"github.com/tkohara/gomi-navi/internal/schedule"
	"github.com/tkohara/gomi-navi/internal/search"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// detailsPreviewLimit caps how much guidance text a search hit prints.
const detailsPreviewLimit = 300

// ScheduleResult is the schedule command's output.
type ScheduleResult struct {
	CheckedAt   time.Time         `json:"checked_at"`
	OfficialURL string            `json:"official_url"`
	Available   bool              `json:"available"`
	View        schedule.WeekView `json:"view"`
}

// GuideResult is the guide command's output.
type GuideResult struct {
	Records []gomi.GuideRecord `json:"records"`
}

// SearchResult is the search command's output.
type SearchResult struct {
	Query   string         `json:"query"`
	Matches []search.Match `json:"matches"`
}

// writeJSON outputs a result as indented JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// WriteSchedule writes the schedule result in the specified format
func WriteSchedule(w io.Writer, result *ScheduleResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if !result.Available {
		fmt.Fprintln(w, "No calendar data available.")
		fmt.Fprintf(w, "Check the official site: %s\n", result.OfficialURL)
		return nil
	}

	view := result.View
	if len(view.Today) > 0 {
		for _, e := range view.Today {
			fmt.Fprintf(w, "TODAY %s (%s): %s\n", e.DateLabel(), e.WeekdayLabel, displayLabel(e))
		}
	} else if view.Next != nil {
		e := view.Next
		fmt.Fprintf(w, "No pickup today. Next: %s (%s) %s\n", e.DateLabel(), e.WeekdayLabel, displayLabel(*e))
	}

	fmt.Fprintln(w, "\nThis week:")
	for _, e := range view.Week {
		fmt.Fprintf(w, "  %s (%s)  %s\n", e.DateLabel(), e.WeekdayLabel, displayLabel(e))
	}

	if len(view.Irregular) > 0 {
		fmt.Fprintln(w, "\nNot within a week:")
		for _, e := range view.Irregular {
			fmt.Fprintf(w, "  %s is next on %s (%s)\n", e.ItemLabel, e.DateLabel(), e.WeekdayLabel)
		}
	}

	fmt.Fprintf(w, "\nOfficial site: %s\n", result.OfficialURL)
	return nil
}

// WriteGuide writes the guide result in the specified format
func WriteGuide(w io.Writer, result *GuideResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(w, "No guide data available.")
		return nil
	}

	for _, r := range result.Records {
		fmt.Fprintf(w, "%s", r.CategoryName)
		if r.CalendarName != r.CategoryName {
			fmt.Fprintf(w, " (calendar: %s)", r.CalendarName)
		}
		fmt.Fprintf(w, "\n  %s\n", r.URL)
	}
	fmt.Fprintf(w, "\nTotal: %d categories\n", len(result.Records))
	return nil
}

// WriteSearch writes the search result in the specified format
func WriteSearch(w io.Writer, result *SearchResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if len(result.Matches) == 0 {
		fmt.Fprintf(w, "No match for %q.\n", result.Query)
		return nil
	}

	for _, m := range result.Matches {
		fmt.Fprintf(w, "Likely category: %s\n", m.Guide.CategoryName)
		if m.NextPickup != nil {
			fmt.Fprintf(w, "  Next pickup: %s (%s)\n", m.NextPickup.DateLabel(), m.NextPickup.WeekdayLabel)
		}
		fmt.Fprintf(w, "  Official page: %s\n", m.Guide.URL)
		if preview := previewText(m.Guide.Details); preview != "" {
			fmt.Fprintf(w, "  %s\n", preview)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %d matches\n", len(result.Matches))
	return nil
}

// displayLabel renders an entry's label, marking label-less day cells.
func displayLabel(e gomi.Entry) string {
	if e.ItemLabel == "" {
		return "(no pickup)"
	}
	return e.ItemLabel
}

// previewText truncates details for the text output, by rune so multibyte
// labels aren't split.
func previewText(details string) string {
	runes := []rune(details)
	if len(runes) <= detailsPreviewLimit {
		return details
	}
	return string(runes[:detailsPreviewLimit]) + "..."
}
