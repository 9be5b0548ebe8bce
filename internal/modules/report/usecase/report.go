package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"toobuff/internal/modules/report/domain"
	"toobuff/internal/modules/report/dto"
	reportin "toobuff/internal/modules/report/port/in"
	reportout "toobuff/internal/modules/report/port/out"
	"toobuff/internal/modules/report/service"
)

type Interactor struct {
	svc       *service.ReportService
	clipboard reportout.Clipboard
}

func NewInteractor(svc *service.ReportService, clipboard reportout.Clipboard) reportin.Usecase {
	return &Interactor{svc: svc, clipboard: clipboard}
}

func (i *Interactor) Weekly(ctx context.Context) ([]dto.WeekReport, error) {
	results, err := i.svc.Weekly(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WeekReport, 0, len(results))
	for _, result := range results {
		out = append(out, toReport(result))
	}
	return out, nil
}

func (i *Interactor) Week(ctx context.Context, weekID string) (dto.WeekReport, error) {
	result, err := i.svc.Week(ctx, weekID)
	if err != nil {
		return dto.WeekReport{}, err
	}
	return toReport(result), nil
}

func (i *Interactor) Overview(ctx context.Context) (dto.Overview, error) {
	result, err := i.svc.Overview(ctx)
	if err != nil {
		return dto.Overview{}, err
	}
	out := dto.Overview{
		DaysRecorded:       result.DaysRecorded,
		AvgSleep:           result.AvgSleep,
		AvgWorkoutsPerWeek: result.AvgWorkoutsWeek,
		WakeAdherent:       result.WakeAdherent,
		WakeTotal:          result.WakeTotal,
	}
	if result.AvgWakeMinutes != nil {
		out.AvgWakeTime = fmt.Sprintf("%02d:%02d", *result.AvgWakeMinutes/60, *result.AvgWakeMinutes%60)
	}
	return out, nil
}

func (i *Interactor) Rows(ctx context.Context, weekID string) (dto.Rows, error) {
	records, err := i.svc.Rows(ctx, weekID)
	if err != nil {
		return dto.Rows{}, err
	}
	rows := dto.Rows{WeekID: weekID}
	for _, record := range records {
		rows.Dates = append(rows.Dates, record.Timestamp.Format("2006-01-02"))
		rows.Protein = append(rows.Protein, record.Protein)
		rows.Carbs = append(rows.Carbs, record.Carbs)
		rows.Fiber = append(rows.Fiber, record.Fiber)
		rows.Fats = append(rows.Fats, record.Fats)
		rows.Calories = append(rows.Calories, record.Calories)
		rows.CardioMinutes = append(rows.CardioMinutes, float64(record.CardioMinutes))
		rows.Steps = append(rows.Steps, record.Steps)
		rows.Weight = append(rows.Weight, record.Weight)
	}
	return rows, nil
}

// Export renders the week's raw daily values as tab-separated rows, one
// metric per line, ready to paste into a spreadsheet.
func (i *Interactor) Export(ctx context.Context, weekID string, toClipboard bool) (dto.ExportOutput, error) {
	rows, err := i.Rows(ctx, weekID)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	text := renderRows(rows)
	out := dto.ExportOutput{Text: text}
	if toClipboard {
		if err := i.clipboard.Copy(text); err != nil {
			return dto.ExportOutput{}, fmt.Errorf("copy to clipboard: %w", err)
		}
		out.Copied = true
	}
	return out, nil
}

func renderRows(rows dto.Rows) string {
	var b strings.Builder
	writeLine := func(label string, values []float64) {
		b.WriteString(label)
		for _, v := range values {
			b.WriteString("\t")
			b.WriteString(formatValue(v))
		}
		b.WriteString("\n")
	}
	b.WriteString("date")
	for _, d := range rows.Dates {
		b.WriteString("\t")
		b.WriteString(d)
	}
	b.WriteString("\n")
	writeLine("protein", rows.Protein)
	writeLine("carbs", rows.Carbs)
	writeLine("fiber", rows.Fiber)
	writeLine("fats", rows.Fats)
	writeLine("calories", rows.Calories)
	writeLine("cardio_minutes", rows.CardioMinutes)
	writeLine("steps", rows.Steps)
	writeLine("weight", rows.Weight)
	return b.String()
}

// formatValue leaves unrecorded (zero) cells empty in the export.
func formatValue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toReport(result service.WeekResult) dto.WeekReport {
	bucket := result.Bucket
	report := dto.WeekReport{
		WeekID:     result.WeekID,
		Year:       bucket.Year,
		Week:       bucket.Week,
		Start:      bucket.Start,
		End:        bucket.End,
		Grade:      result.Grade,
		InProgress: result.InProgress,
		Summary: dto.WeekSummary{
			DaysLogged:   bucket.SessionCount,
			AvgSleep:     average(bucket.Sleep),
			AvgProtein:   average(bucket.Protein),
			AvgCalories:  average(bucket.Calories),
			AvgCarbs:     average(bucket.Carbs),
			AvgFats:      average(bucket.Fats),
			AvgFiber:     average(bucket.Fiber),
			AvgSteps:     average(bucket.Steps),
			AvgWeight:    average(bucket.Weight),
			WorkoutDays:  bucket.WorkoutDays,
			CooldownDays: bucket.CooldownDays,
		},
	}
	for _, minutes := range bucket.CardioMinutes {
		report.Summary.CardioTotalMinutes += minutes
	}
	if eval, ok := result.Evaluations[domain.MetricWakeUp]; ok && eval.Goal != 0 {
		adherent, total := domain.WakeAdherence(bucket.WakeUpTimes, int(eval.Goal))
		report.Summary.WakeAdherent = adherent
		report.Summary.WakeTotal = total
	}
	if result.Scored {
		score := result.Score
		report.Score = &score
	}
	for _, metric := range domain.Metrics {
		eval := result.Evaluations[metric]
		report.Evaluations = append(report.Evaluations, dto.EvaluationOutput{
			Metric: string(metric),
			Met:    eval.Met,
			Goal:   eval.Goal,
			Actual: eval.Actual,
		})
	}
	return report
}

func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	avg := total / float64(len(values))
	return &avg
}
