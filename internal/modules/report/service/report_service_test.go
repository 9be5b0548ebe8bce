package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"toobuff/internal/modules/report/domain"
	"toobuff/internal/modules/report/service"
	apperrors "toobuff/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

type fakeCheckinSource struct {
	records []domain.DayRecord
}

func (s fakeCheckinSource) ListAll(_ context.Context) ([]domain.DayRecord, error) {
	return s.records, nil
}

func (s fakeCheckinSource) ListRange(_ context.Context, from, to time.Time) ([]domain.DayRecord, error) {
	var out []domain.DayRecord
	for _, record := range s.records {
		if !record.Timestamp.Before(from) && !record.Timestamp.After(to) {
			out = append(out, record)
		}
	}
	return out, nil
}

// fakeGoalSource resolves from versions kept in ascending EffectiveFrom
// order, the same contract the goals module honors.
type fakeGoalSource struct {
	versions []domain.GoalVersion
}

func (s fakeGoalSource) At(_ context.Context, at time.Time) (domain.GoalVersion, error) {
	if len(s.versions) == 0 {
		return domain.GoalVersion{}, apperrors.ErrNoGoalConfig
	}
	resolved := s.versions[0]
	for _, version := range s.versions {
		if version.EffectiveFrom.After(at) {
			break
		}
		resolved = version
	}
	return resolved, nil
}

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 7, 0, 0, 0, time.Local)
}

func workoutWeek(start time.Time, workouts int) []domain.DayRecord {
	records := make([]domain.DayRecord, 0, workouts)
	for i := 0; i < workouts; i++ {
		records = append(records, domain.DayRecord{
			Timestamp: start.AddDate(0, 0, i),
			WorkedOut: true,
		})
	}
	return records
}

func TestWeeklyResolvesGoalsHistorically(t *testing.T) {
	t.Parallel()

	// Goals changed between the two recorded weeks: 4 workouts/week from
	// January 1st, 5 from January 20th.
	goals := fakeGoalSource{versions: []domain.GoalVersion{
		{EffectiveFrom: day(time.January, 1), WorkoutsPerWeek: 4},
		{EffectiveFrom: day(time.January, 20), WorkoutsPerWeek: 5},
	}}

	var records []domain.DayRecord
	records = append(records, workoutWeek(day(time.January, 5), 4)...)  // 2026-W02
	records = append(records, workoutWeek(day(time.January, 26), 4)...) // 2026-W05

	svc := service.NewReportService(
		fakeClock{now: day(time.February, 20)},
		fakeCheckinSource{records: records},
		goals,
	)

	results, err := svc.Weekly(context.Background())
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d weeks, want 2", len(results))
	}
	if results[0].WeekID != "2026-W02" || results[1].WeekID != "2026-W05" {
		t.Fatalf("weeks out of order: %s, %s", results[0].WeekID, results[1].WeekID)
	}

	// Same performance, different verdicts: the old week is graded against
	// the goal that was effective back then.
	early := results[0].Evaluations[domain.MetricWorkouts]
	if early.Met == nil || !*early.Met {
		t.Fatalf("4 workouts should satisfy the 4/week goal of its time")
	}
	late := results[1].Evaluations[domain.MetricWorkouts]
	if late.Met == nil || *late.Met {
		t.Fatalf("4 workouts should fail the 5/week goal effective by then")
	}

	if !results[0].Scored || results[0].Grade == "" {
		t.Fatalf("scored week should carry a grade: %+v", results[0])
	}
	if results[0].InProgress || results[1].InProgress {
		t.Fatalf("past weeks should not be marked in progress")
	}
}

func TestWeeklyMarksCurrentWeekInProgress(t *testing.T) {
	t.Parallel()
	now := day(time.February, 18) // Wednesday of 2026-W08
	svc := service.NewReportService(
		fakeClock{now: now},
		fakeCheckinSource{records: []domain.DayRecord{{Timestamp: day(time.February, 16), WorkedOut: true}}},
		fakeGoalSource{versions: []domain.GoalVersion{{EffectiveFrom: day(time.January, 1), WorkoutsPerWeek: 4}}},
	)

	results, err := svc.Weekly(context.Background())
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(results) != 1 || !results[0].InProgress {
		t.Fatalf("the week containing today should be in progress: %+v", results)
	}
}

func TestWeeklyWithoutCheckins(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(fakeClock{now: day(time.February, 20)}, fakeCheckinSource{}, fakeGoalSource{})
	if _, err := svc.Weekly(context.Background()); !errors.Is(err, apperrors.ErrNoCheckins) {
		t.Fatalf("want ErrNoCheckins, got %v", err)
	}
}

func TestWeekLookup(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(
		fakeClock{now: day(time.February, 20)},
		fakeCheckinSource{records: workoutWeek(day(time.January, 5), 3)},
		fakeGoalSource{versions: []domain.GoalVersion{{EffectiveFrom: day(time.January, 1), WorkoutsPerWeek: 4}}},
	)
	ctx := context.Background()

	result, err := svc.Week(ctx, "2026-W02")
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if result.Bucket.WorkoutDays != 3 {
		t.Fatalf("workout days = %d, want 3", result.Bucket.WorkoutDays)
	}

	if _, err := svc.Week(ctx, "2026-W40"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown week should be not found, got %v", err)
	}
}

func TestRowsReturnsWeekWindow(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: day(time.January, 4), Protein: 100},  // Sunday of W01
		{Timestamp: day(time.January, 5), Protein: 150},  // Monday of W02
		{Timestamp: day(time.January, 11), Protein: 160}, // Sunday of W02
		{Timestamp: day(time.January, 12), Protein: 170}, // Monday of W03
	}
	svc := service.NewReportService(fakeClock{now: day(time.February, 20)}, fakeCheckinSource{records: records}, fakeGoalSource{})

	rows, err := svc.Rows(context.Background(), "2026-W02")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Protein != 150 || rows[1].Protein != 160 {
		t.Fatalf("row window wrong: %+v", rows)
	}

	if _, err := svc.Rows(context.Background(), "bogus"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("malformed week id should be invalid input, got %v", err)
	}
}

func TestOverview(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: day(time.January, 5), SleepHours: 7, WakeUpTime: "06:30", WorkedOut: true},
		{Timestamp: day(time.January, 6), SleepHours: 8, WakeUpTime: "08:00"},
		{Timestamp: day(time.January, 7), WorkedOut: true},
	}
	svc := service.NewReportService(
		fakeClock{now: day(time.February, 20)},
		fakeCheckinSource{records: records},
		fakeGoalSource{versions: []domain.GoalVersion{{EffectiveFrom: day(time.January, 1), WakeUpTime: "06:30"}}},
	)

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.DaysRecorded != 3 {
		t.Fatalf("days recorded = %d, want 3", overview.DaysRecorded)
	}
	if overview.AvgSleep == nil || *overview.AvgSleep != 7.5 {
		t.Fatalf("avg sleep = %v, want 7.5", overview.AvgSleep)
	}
	if overview.AvgWorkoutsWeek == nil || *overview.AvgWorkoutsWeek != 2 {
		t.Fatalf("avg workouts/week = %v, want 2", overview.AvgWorkoutsWeek)
	}
	if overview.WakeTotal != 2 || overview.WakeAdherent != 1 {
		t.Fatalf("wake adherence = %d/%d, want 1/2", overview.WakeAdherent, overview.WakeTotal)
	}
}
