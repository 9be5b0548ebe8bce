package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"toobuff/internal/modules/report/domain"
	"toobuff/internal/modules/report/service"
	"toobuff/internal/modules/report/usecase"
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

type staticGoalSource struct {
	version domain.GoalVersion
}

func (s staticGoalSource) At(_ context.Context, _ time.Time) (domain.GoalVersion, error) {
	return s.version, nil
}

type fakeClipboard struct {
	copied string
	calls  int
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = text
	c.calls++
	return nil
}

func TestExportRendersTabSeparatedRows(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: time.Date(2026, time.January, 5, 7, 0, 0, 0, time.Local), Protein: 150, Calories: 2450, Weight: 181.4},
		{Timestamp: time.Date(2026, time.January, 6, 7, 0, 0, 0, time.Local), Protein: 162.5},
	}
	clipboard := &fakeClipboard{}
	uc := usecase.NewInteractor(
		service.NewReportService(
			fakeClock{now: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.Local)},
			fakeCheckinSource{records: records},
			staticGoalSource{},
		),
		clipboard,
	)

	out, err := uc.Export(context.Background(), "2026-W02", false)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Copied {
		t.Fatalf("export without --copy should not touch the clipboard")
	}
	if clipboard.calls != 0 {
		t.Fatalf("clipboard called %d times, want 0", clipboard.calls)
	}

	lines := strings.Split(strings.TrimRight(out.Text, "\n"), "\n")
	byLabel := map[string]string{}
	for _, line := range lines {
		label, rest, _ := strings.Cut(line, "\t")
		byLabel[label] = rest
	}
	if byLabel["date"] != "2026-01-05\t2026-01-06" {
		t.Fatalf("date row = %q", byLabel["date"])
	}
	if byLabel["protein"] != "150\t162.5" {
		t.Fatalf("protein row = %q", byLabel["protein"])
	}
	// Unrecorded values export as empty cells, not zeros.
	if byLabel["calories"] != "2450\t" {
		t.Fatalf("calories row = %q", byLabel["calories"])
	}
	if byLabel["weight"] != "181.4\t" {
		t.Fatalf("weight row = %q", byLabel["weight"])
	}
}

func TestExportCopiesToClipboard(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: time.Date(2026, time.January, 5, 7, 0, 0, 0, time.Local), Protein: 150},
	}
	clipboard := &fakeClipboard{}
	uc := usecase.NewInteractor(
		service.NewReportService(
			fakeClock{now: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.Local)},
			fakeCheckinSource{records: records},
			staticGoalSource{},
		),
		clipboard,
	)

	out, err := uc.Export(context.Background(), "2026-W02", true)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !out.Copied {
		t.Fatalf("export with copy should report Copied")
	}
	if clipboard.copied != out.Text {
		t.Fatalf("clipboard content should match the rendered text")
	}
}

func TestWeeklyReportSummaries(t *testing.T) {
	t.Parallel()
	records := []domain.DayRecord{
		{Timestamp: time.Date(2026, time.January, 5, 7, 0, 0, 0, time.Local), SleepHours: 7, Protein: 150, CardioMinutes: 30, WorkedOut: true},
		{Timestamp: time.Date(2026, time.January, 6, 7, 0, 0, 0, time.Local), SleepHours: 8, Protein: 160, CardioMinutes: 25},
	}
	uc := usecase.NewInteractor(
		service.NewReportService(
			fakeClock{now: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.Local)},
			fakeCheckinSource{records: records},
			staticGoalSource{version: domain.GoalVersion{WeeklyProtein: 150}},
		),
		&fakeClipboard{},
	)

	reports, err := uc.Weekly(context.Background())
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	report := reports[0]
	if report.Summary.DaysLogged != 2 || report.Summary.WorkoutDays != 1 {
		t.Fatalf("summary counters mismatch: %+v", report.Summary)
	}
	if report.Summary.AvgProtein == nil || *report.Summary.AvgProtein != 155 {
		t.Fatalf("avg protein = %v, want 155", report.Summary.AvgProtein)
	}
	if report.Summary.CardioTotalMinutes != 55 {
		t.Fatalf("cardio total = %d, want 55", report.Summary.CardioTotalMinutes)
	}
	if report.Score == nil || *report.Score != 100 {
		t.Fatalf("score = %v, want 100", report.Score)
	}
	if report.Grade != "A+" {
		t.Fatalf("grade = %s, want A+", report.Grade)
	}
	if len(report.Evaluations) != len(domain.Metrics) {
		t.Fatalf("every metric should appear in the report, got %d", len(report.Evaluations))
	}
}
