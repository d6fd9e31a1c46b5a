package gomi

import (
	"testing"
	"time"
)

func TestEntryDateLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"single digits unpadded", time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), "4/5"},
		{"double digits", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "12/31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Date: tt.date}
			if got := e.DateLabel(); got != tt.want {
				t.Errorf("DateLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	stamp := time.Date(2024, 4, 5, 23, 45, 12, 0, jst)

	got := DateOf(stamp)
	want := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", stamp, got, want)
	}
}

func TestEntryOn(t *testing.T) {
	e := Entry{Date: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)}

	if !e.On(time.Date(2024, 4, 5, 18, 30, 0, 0, time.UTC)) {
		t.Error("entry should match the same calendar day regardless of time")
	}
	if e.On(time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)) {
		t.Error("entry should not match a different day")
	}
}
