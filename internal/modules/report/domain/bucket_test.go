package domain_test

import (
	"testing"
	"time"

	"toobuff/internal/modules/report/domain"
)

func at(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 7, 30, 0, 0, time.Local)
}

func TestAggregateBucketsByISOWeek(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: at(time.January, 5), SleepHours: 7, Protein: 150, WorkedOut: true},
		{Timestamp: at(time.January, 7), SleepHours: 8, Protein: 160, CooledDown: true},
		{Timestamp: at(time.January, 11), Protein: 140}, // Sunday, same week
		{Timestamp: at(time.January, 12), Protein: 170}, // Monday, next week
	}

	weeks := domain.Aggregate(records)
	if len(weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weeks))
	}

	first, ok := weeks["2026-W02"]
	if !ok {
		t.Fatalf("missing bucket 2026-W02: %v", weeks)
	}
	if first.SessionCount != 3 {
		t.Fatalf("session count = %d, want 3", first.SessionCount)
	}
	if len(first.Protein) != 3 || len(first.Sleep) != 2 {
		t.Fatalf("value slices mismatch: protein %d, sleep %d", len(first.Protein), len(first.Sleep))
	}
	if first.WorkoutDays != 1 || first.CooldownDays != 1 {
		t.Fatalf("day counters mismatch: %+v", first)
	}
	if first.Start.Weekday() != time.Monday || first.End.Weekday() != time.Sunday {
		t.Fatalf("bucket boundaries should span Monday to Sunday")
	}

	second := weeks["2026-W03"]
	if second.SessionCount != 1 || len(second.Protein) != 1 {
		t.Fatalf("second week mismatch: %+v", second)
	}
}

func TestAggregateSkipsUnrecordedValues(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: at(time.January, 5)}, // nothing recorded beyond the check-in itself
		{Timestamp: at(time.January, 6), Steps: 9000},
	}
	bucket := domain.Aggregate(records)["2026-W02"]
	if bucket.SessionCount != 2 {
		t.Fatalf("every check-in counts as a session, got %d", bucket.SessionCount)
	}
	if len(bucket.Steps) != 1 || len(bucket.Sleep) != 0 || len(bucket.Protein) != 0 {
		t.Fatalf("zero values should stay out of the slices: %+v", bucket)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	t.Parallel()
	forward := []domain.DayRecord{
		{Timestamp: at(time.January, 5), Protein: 150},
		{Timestamp: at(time.January, 6), Protein: 160, WorkedOut: true},
		{Timestamp: at(time.January, 7), SleepHours: 7},
	}
	reversed := []domain.DayRecord{forward[2], forward[1], forward[0]}

	a := domain.Aggregate(forward)["2026-W02"]
	b := domain.Aggregate(reversed)["2026-W02"]

	if a.SessionCount != b.SessionCount || a.WorkoutDays != b.WorkoutDays {
		t.Fatalf("counters differ: %+v vs %+v", a, b)
	}
	if len(a.Protein) != len(b.Protein) || len(a.Sleep) != len(b.Sleep) {
		t.Fatalf("slice lengths differ: %+v vs %+v", a, b)
	}
	sum := func(values []float64) float64 {
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total
	}
	if sum(a.Protein) != sum(b.Protein) {
		t.Fatalf("protein totals differ: %v vs %v", sum(a.Protein), sum(b.Protein))
	}
}
