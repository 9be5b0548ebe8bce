package domain

import (
	"time"

	"toobuff/internal/platform/timeweek"
)

// DayRecord is the report module's view of one check-in: raw per-day values
// with the journal's convention that zero means "not recorded".
type DayRecord struct {
	Timestamp     time.Time
	WakeUpTime    string
	SleepHours    float64
	Protein       float64
	Calories      float64
	Carbs         float64
	Fats          float64
	Fiber         float64
	Steps         float64
	Weight        float64
	CardioMinutes int
	WorkedOut     bool
	CooledDown    bool
}

// Bucket aggregates every check-in of one ISO week. It is derived state,
// rebuilt from the raw records on every run and never persisted.
type Bucket struct {
	Year  int
	Week  int
	Start time.Time
	End   time.Time

	Sleep         []float64
	Protein       []float64
	Calories      []float64
	Carbs         []float64
	Fats          []float64
	Fiber         []float64
	Steps         []float64
	Weight        []float64
	CardioMinutes []int
	WakeUpTimes   []string

	WorkoutDays  int
	CooldownDays int
	SessionCount int
}

// Aggregate folds check-ins into per-week buckets keyed by ISO week id.
// The fold is commutative, so the result does not depend on input order.
func Aggregate(records []DayRecord) map[string]Bucket {
	weeks := map[string]Bucket{}
	for _, record := range records {
		weekID := timeweek.ID(record.Timestamp)
		bucket, ok := weeks[weekID]
		if !ok {
			span := timeweek.Span(record.Timestamp)
			bucket = Bucket{Year: span.Year, Week: span.Week, Start: span.Start, End: span.End}
		}

		if record.SleepHours != 0 {
			bucket.Sleep = append(bucket.Sleep, record.SleepHours)
		}
		if record.Protein != 0 {
			bucket.Protein = append(bucket.Protein, record.Protein)
		}
		if record.Calories != 0 {
			bucket.Calories = append(bucket.Calories, record.Calories)
		}
		if record.Carbs != 0 {
			bucket.Carbs = append(bucket.Carbs, record.Carbs)
		}
		if record.Fats != 0 {
			bucket.Fats = append(bucket.Fats, record.Fats)
		}
		if record.Fiber != 0 {
			bucket.Fiber = append(bucket.Fiber, record.Fiber)
		}
		if record.Steps != 0 {
			bucket.Steps = append(bucket.Steps, record.Steps)
		}
		if record.Weight != 0 {
			bucket.Weight = append(bucket.Weight, record.Weight)
		}
		if record.CardioMinutes != 0 {
			bucket.CardioMinutes = append(bucket.CardioMinutes, record.CardioMinutes)
		}
		if record.WakeUpTime != "" {
			bucket.WakeUpTimes = append(bucket.WakeUpTimes, record.WakeUpTime)
		}
		if record.WorkedOut {
			bucket.WorkoutDays++
		}
		if record.CooledDown {
			bucket.CooldownDays++
		}
		bucket.SessionCount++

		weeks[weekID] = bucket
	}
	return weeks
}
