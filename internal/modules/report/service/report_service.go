package service

import (
	"context"
	"fmt"
	"sort"

	"toobuff/internal/modules/report/domain"
	reportout "toobuff/internal/modules/report/port/out"
	"toobuff/internal/platform/clock"
	apperrors "toobuff/internal/platform/errors"
	"toobuff/internal/platform/timeparse"
	"toobuff/internal/platform/timeweek"
)

// WeekResult pairs one aggregated week with its evaluation against the goal
// version that was effective on the week's last day.
type WeekResult struct {
	WeekID      string
	Bucket      domain.Bucket
	Goals       domain.GoalVersion
	Evaluations map[domain.Metric]domain.Evaluation
	Score       float64
	Scored      bool
	Grade       string
	InProgress  bool
}

// OverviewResult carries whole-history stats for the data summary.
type OverviewResult struct {
	DaysRecorded    int
	AvgSleep        *float64
	AvgWorkoutsWeek *float64
	AvgWakeMinutes  *int
	WakeAdherent    int
	WakeTotal       int
}

type ReportService struct {
	clock    clock.Clock
	checkins reportout.CheckinSource
	goals    reportout.GoalSource
}

func NewReportService(clock clock.Clock, checkins reportout.CheckinSource, goals reportout.GoalSource) *ReportService {
	return &ReportService{clock: clock, checkins: checkins, goals: goals}
}

// Weekly runs the full pipeline: bucket every check-in by ISO week, resolve
// the goal version as of each week's end, evaluate and grade. Results come
// back sorted by week id.
func (s *ReportService) Weekly(ctx context.Context) ([]WeekResult, error) {
	records, err := s.checkins.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNoCheckins
	}

	buckets := domain.Aggregate(records)
	currentWeek := timeweek.ID(s.clock.Now())

	results := make([]WeekResult, 0, len(buckets))
	for weekID, bucket := range buckets {
		// Resolution keys on the week-end timestamp: a mid-week goal
		// change still governs the week it landed in, because it is the
		// latest version preceding that week's last day.
		goals, err := s.goals.At(ctx, bucket.End)
		if err != nil {
			return nil, err
		}
		evals := domain.Evaluate(bucket, goals)
		score, scored := domain.Score(evals)

		result := WeekResult{
			WeekID:      weekID,
			Bucket:      bucket,
			Goals:       goals,
			Evaluations: evals,
			Score:       score,
			Scored:      scored,
			InProgress:  weekID == currentWeek,
		}
		if scored {
			result.Grade = domain.Grade(score)
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].WeekID < results[j].WeekID
	})
	return results, nil
}

// Week evaluates one week identified by "YYYY-Www".
func (s *ReportService) Week(ctx context.Context, weekID string) (WeekResult, error) {
	results, err := s.Weekly(ctx)
	if err != nil {
		return WeekResult{}, err
	}
	for _, result := range results {
		if result.WeekID == weekID {
			return result, nil
		}
	}
	return WeekResult{}, fmt.Errorf("week %s: %w", weekID, apperrors.ErrNotFound)
}

// Rows returns one week's records in chronological order for export.
func (s *ReportService) Rows(ctx context.Context, weekID string) ([]domain.DayRecord, error) {
	monday, err := timeweek.ParseID(weekID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	records, err := s.checkins.ListRange(ctx, monday, timeweek.End(monday))
	if err != nil {
		return nil, fmt.Errorf("list week records: %w", err)
	}
	return records, nil
}

// Overview computes the whole-history summary header.
func (s *ReportService) Overview(ctx context.Context) (OverviewResult, error) {
	records, err := s.checkins.ListAll(ctx)
	if err != nil {
		return OverviewResult{}, fmt.Errorf("list check-ins: %w", err)
	}
	if len(records) == 0 {
		return OverviewResult{}, apperrors.ErrNoCheckins
	}

	out := OverviewResult{DaysRecorded: len(records)}

	sleepTotal, sleepDays := 0.0, 0
	workouts := 0
	wakeMinutesTotal, wakeCount := 0, 0
	for _, record := range records {
		if record.SleepHours != 0 {
			sleepTotal += record.SleepHours
			sleepDays++
		}
		if record.WorkedOut {
			workouts++
		}
		if record.WakeUpTime != "" {
			if minutes, parseErr := timeparse.TimeOfDay(record.WakeUpTime); parseErr == nil {
				wakeMinutesTotal += minutes
				wakeCount++
			}
		}
	}
	if sleepDays > 0 {
		avg := sleepTotal / float64(sleepDays)
		out.AvgSleep = &avg
	}
	if weeks := len(domain.Aggregate(records)); weeks > 0 {
		avg := float64(workouts) / float64(weeks)
		out.AvgWorkoutsWeek = &avg
	}
	if wakeCount > 0 {
		avg := wakeMinutesTotal / wakeCount
		out.AvgWakeMinutes = &avg
	}

	// Overall wake adherence graded against the historically effective
	// goal of each week, not the current one.
	results, err := s.Weekly(ctx)
	if err != nil {
		return OverviewResult{}, err
	}
	for _, result := range results {
		if result.Goals.WakeUpTime == "" {
			continue
		}
		goalMinutes, parseErr := timeparse.TimeOfDay(result.Goals.WakeUpTime)
		if parseErr != nil {
			continue
		}
		adherent, total := domain.WakeAdherence(result.Bucket.WakeUpTimes, goalMinutes)
		out.WakeAdherent += adherent
		out.WakeTotal += total
	}
	return out, nil
}
