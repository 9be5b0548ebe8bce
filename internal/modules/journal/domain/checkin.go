package domain

import (
	"fmt"
	"time"

	"toobuff/internal/platform/timeparse"
)

// Set is one recorded lift set, weight normalized to pounds at the input
// boundary regardless of the unit the user typed.
type Set struct {
	WeightLbs float64
	Reps      int
}

type Workout struct {
	Week         int
	Day          int
	PrimaryLifts map[string][]Set
}

type Cardio struct {
	Medium          string
	DurationMinutes int
	Zone            int
}

// Checkin is one immutable daily journal entry. Numeric fields use the
// source log's convention: zero means not recorded. WakeUpTime is the raw
// "HH:MM" string; it is parsed only at evaluation time so an unparseable
// legacy value degrades to "absent" rather than poisoning the record.
type Checkin struct {
	ID         string
	Timestamp  time.Time
	WakeUpTime string
	SleepHours float64
	Workout    *Workout
	Cardio     *Cardio
	Protein    float64
	Calories   float64
	Carbs      float64
	Fats       float64
	Fiber      float64
	Steps      float64
	Weight     float64
	CoolDown   bool
}

func (c Checkin) Validate() error {
	if c.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	if c.SleepHours < 0 {
		return fmt.Errorf("sleep hours cannot be negative")
	}
	if c.WakeUpTime != "" {
		if _, err := timeparse.TimeOfDay(c.WakeUpTime); err != nil {
			return fmt.Errorf("wake up time: %w", err)
		}
	}
	if c.Cardio != nil && c.Cardio.DurationMinutes < 0 {
		return fmt.Errorf("cardio duration cannot be negative")
	}
	return nil
}
