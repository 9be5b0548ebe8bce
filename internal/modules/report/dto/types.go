package dto

import "time"

// WeekSummary carries the aggregated figures for one week, averaged or
// summed the way the data command presents them. Nil averages mean no
// values were recorded.
type WeekSummary struct {
	DaysLogged         int
	AvgSleep           *float64
	AvgProtein         *float64
	AvgCalories        *float64
	AvgCarbs           *float64
	AvgFats            *float64
	AvgFiber           *float64
	AvgSteps           *float64
	AvgWeight          *float64
	CardioTotalMinutes int
	WorkoutDays        int
	CooldownDays       int
	WakeAdherent       int
	WakeTotal          int
}

type EvaluationOutput struct {
	Metric string
	Met    *bool
	Goal   float64
	Actual *float64
}

// WeekReport is one week's scorecard. Score is nil when no goal applied
// ("no data"); InProgress marks the week containing today.
type WeekReport struct {
	WeekID      string
	Year        int
	Week        int
	Start       time.Time
	End         time.Time
	Summary     WeekSummary
	Evaluations []EvaluationOutput
	Score       *float64
	Grade       string
	InProgress  bool
}

// Overview mirrors the original data-summary header: whole-history stats.
type Overview struct {
	DaysRecorded       int
	AvgSleep           *float64
	AvgWorkoutsPerWeek *float64
	AvgWakeTime        string
	WakeAdherent       int
	WakeTotal          int
}

// Rows is the flattened spreadsheet projection for one week: raw per-day
// values in chronological order, not the averaged evaluation figures.
type Rows struct {
	WeekID        string
	Dates         []string
	Protein       []float64
	Carbs         []float64
	Fiber         []float64
	Fats          []float64
	Calories      []float64
	CardioMinutes []float64
	Steps         []float64
	Weight        []float64
}

type ExportOutput struct {
	Text   string
	Copied bool
}
