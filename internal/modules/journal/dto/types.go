package dto

import "time"

type WorkoutInput struct {
	Week  int
	Day   int
	Lifts map[string]string // lift name -> weight shorthand, parsed at the boundary
}

type CardioInput struct {
	Medium          string
	DurationMinutes int
	Zone            int
}

// RecordInput carries one day's values. Zero-valued numerics mean "not
// recorded". Date is optional; zero means "now".
type RecordInput struct {
	Date       time.Time
	WakeUpTime string
	SleepHours float64
	Workout    *WorkoutInput
	Cardio     *CardioInput
	Protein    float64
	Calories   float64
	Carbs      float64
	Fats       float64
	Fiber      float64
	Steps      float64
	Weight     float64
	CoolDown   bool
}

type SetOutput struct {
	WeightLbs float64
	Reps      int
}

type WorkoutOutput struct {
	Week         int
	Day          int
	PrimaryLifts map[string][]SetOutput
}

type CardioOutput struct {
	Medium          string
	DurationMinutes int
	Zone            int
}

type CheckinOutput struct {
	ID         string
	Timestamp  time.Time
	WakeUpTime string
	SleepHours float64
	Workout    *WorkoutOutput
	Cardio     *CardioOutput
	Protein    float64
	Calories   float64
	Carbs      float64
	Fats       float64
	Fiber      float64
	Steps      float64
	Weight     float64
	CoolDown   bool
}

type PathsOutput struct {
	DataFile string
	DataDir  string
}
