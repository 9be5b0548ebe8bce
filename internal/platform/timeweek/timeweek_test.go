package timeweek_test

import (
	"testing"
	"time"

	"toobuff/internal/platform/timeweek"
)

func TestID(t *testing.T) {
	t.Parallel()
	cases := []struct {
		date string
		want string
	}{
		{"2026-01-01", "2026-W01"}, // Thursday, first week
		{"2025-12-29", "2026-W01"}, // Monday belonging to the next ISO year
		{"2021-01-01", "2020-W53"}, // Friday still in the old ISO year
		{"2026-02-02", "2026-W06"},
	}
	for _, tc := range cases {
		day, err := time.ParseInLocation("2006-01-02", tc.date, time.Local)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := timeweek.ID(day); got != tc.want {
			t.Fatalf("ID(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestStartAndEnd(t *testing.T) {
	t.Parallel()
	wednesday := time.Date(2026, time.January, 7, 15, 30, 0, 0, time.Local)

	start := timeweek.Start(wednesday)
	if start.Weekday() != time.Monday {
		t.Fatalf("start should be a Monday, got %s", start.Weekday())
	}
	wantStart := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Fatalf("Start = %v, want %v", start, wantStart)
	}

	end := timeweek.End(wednesday)
	if end.Weekday() != time.Sunday {
		t.Fatalf("end should be a Sunday, got %s", end.Weekday())
	}
	wantEnd := time.Date(2026, time.January, 11, 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
	if !end.Equal(wantEnd) {
		t.Fatalf("End = %v, want %v", end, wantEnd)
	}

	// A Monday is its own week start.
	monday := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local)
	if got := timeweek.Start(monday); !got.Equal(wantStart) {
		t.Fatalf("Start of a Monday = %v, want %v", got, wantStart)
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()
	monday, err := timeweek.ParseID("2026-W01")
	if err != nil {
		t.Fatalf("parse week id: %v", err)
	}
	want := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.Local)
	if !monday.Equal(want) {
		t.Fatalf("ParseID(2026-W01) = %v, want %v", monday, want)
	}
}

func TestParseIDRoundTrip(t *testing.T) {
	t.Parallel()
	for _, id := range []string{"2025-W01", "2025-W52", "2026-W06", "2020-W53"} {
		monday, err := timeweek.ParseID(id)
		if err != nil {
			t.Fatalf("parse %s: %v", id, err)
		}
		if got := timeweek.ID(monday); got != id {
			t.Fatalf("round trip %s -> %v -> %s", id, monday, got)
		}
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, id := range []string{"", "garbage", "2026-W00", "2026-W60", "W05-2026"} {
		if _, err := timeweek.ParseID(id); err == nil {
			t.Fatalf("ParseID(%q) should fail", id)
		}
	}
}

func TestSpanMatchesStartEnd(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, time.March, 12, 8, 0, 0, 0, time.Local)
	span := timeweek.Span(day)
	if span.Year != 2026 || span.Week != 11 {
		t.Fatalf("span coordinates = %d-W%02d, want 2026-W11", span.Year, span.Week)
	}
	if !span.Start.Equal(timeweek.Start(day)) || !span.End.Equal(timeweek.End(day)) {
		t.Fatalf("span boundaries disagree with Start/End")
	}
}
