package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tkohara/gomi-navi/internal/gomi"
	"github.com/tkohara/gomi-navi/internal/schedule"
	"github.com/tkohara/gomi-navi/internal/search"
)

func sampleEntry(day int, label string) gomi.Entry {
	return gomi.Entry{
		Date:         time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC),
		WeekdayLabel: "金",
		ItemLabel:    label,
	}
}

func TestWriteScheduleTextUnavailable(t *testing.T) {
	result := &ScheduleResult{
		OfficialURL: "https://example.org/calendar?date=2024-04",
		Available:   false,
	}

	var buf strings.Builder
	if err := WriteSchedule(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteSchedule failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No calendar data available") {
		t.Errorf("output missing unavailable notice: %q", out)
	}
	// The official-site fallback link must always be offered.
	if !strings.Contains(out, result.OfficialURL) {
		t.Errorf("output missing official URL: %q", out)
	}
}

func TestWriteScheduleTextWithPickups(t *testing.T) {
	e := sampleEntry(5, "燃やすごみ")
	result := &ScheduleResult{
		OfficialURL: "https://example.org/calendar?date=2024-04",
		Available:   true,
		View: schedule.WeekView{
			Today: []gomi.Entry{e},
			Week:  []gomi.Entry{e, sampleEntry(12, "資源A")},
			Irregular: []gomi.Entry{
				sampleEntry(26, "危険ごみ"),
			},
		},
	}

	var buf strings.Builder
	if err := WriteSchedule(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteSchedule failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"TODAY 4/5 (金): 燃やすごみ", "資源A", "危険ごみ is next on 4/26"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteScheduleJSON(t *testing.T) {
	result := &ScheduleResult{
		CheckedAt:   time.Date(2024, 4, 5, 9, 0, 0, 0, time.UTC),
		OfficialURL: "https://example.org/calendar",
		Available:   true,
		View: schedule.WeekView{
			Week: []gomi.Entry{sampleEntry(5, "燃やすごみ")},
		},
	}

	var buf strings.Builder
	if err := WriteSchedule(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteSchedule failed: %v", err)
	}

	var decoded ScheduleResult
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.Available || len(decoded.View.Week) != 1 {
		t.Errorf("decoded = %+v, want the original result", decoded)
	}
}

func TestWriteSearchTextNotFound(t *testing.T) {
	result := &SearchResult{Query: "ピアノ"}

	var buf strings.Builder
	if err := WriteSearch(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteSearch failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No match") {
		t.Errorf("output should say nothing matched: %q", buf.String())
	}
}

func TestWriteSearchText(t *testing.T) {
	next := sampleEntry(18, "燃やすごみ")
	result := &SearchResult{
		Query: "フライパン",
		Matches: []search.Match{
			{
				Guide: gomi.GuideRecord{
					CategoryName: "もやすごみの出し方",
					CalendarName: "燃やすごみ",
					Details:      "生ごみ、紙くずなど。",
					URL:          "https://example.org/moyasu",
				},
				NextPickup: &next,
			},
		},
	}

	var buf strings.Builder
	if err := WriteSearch(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteSearch failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"もやすごみの出し方", "Next pickup: 4/18 (金)", "https://example.org/moyasu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGuideText(t *testing.T) {
	result := &GuideResult{
		Records: []gomi.GuideRecord{
			{CategoryName: "もやすごみの出し方", CalendarName: "燃やすごみ", URL: "https://example.org/moyasu"},
			{CategoryName: "粗大ごみ", CalendarName: "粗大ごみ", URL: "https://example.org/sodai"},
		},
	}

	var buf strings.Builder
	if err := WriteGuide(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteGuide failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "calendar: 燃やすごみ") {
		t.Errorf("mapped name should be shown when it differs from the title:\n%s", out)
	}
	if strings.Contains(out, "calendar: 粗大ごみ") {
		t.Errorf("identical mapped name should not be repeated:\n%s", out)
	}
	if !strings.Contains(out, "Total: 2 categories") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestPreviewText(t *testing.T) {
	long := strings.Repeat("あ", detailsPreviewLimit+10)
	got := previewText(long)
	if !strings.HasSuffix(got, "...") {
		t.Error("long details should be truncated with an ellipsis")
	}
	if len([]rune(got)) != detailsPreviewLimit+3 {
		t.Errorf("preview length = %d runes, want %d", len([]rune(got)), detailsPreviewLimit+3)
	}

	short := "短いテキスト"
	if previewText(short) != short {
		t.Error("short details should pass through unchanged")
	}
}
