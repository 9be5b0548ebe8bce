package dto

import "time"

// SnapshotInput carries goal values for setup or update. Nil fields mean
// "leave unchanged" on update and "unset" on setup.
type SnapshotInput struct {
	WorkoutsPerWeek     *int
	WakeUpTime          *string
	DailySleepHours     *float64
	WeeklyCardioMinutes *int
	WeeklyProtein       *float64
	WeeklyCalories      *int
	WeeklySteps         *int
	WeeklyCarbs         *float64
	WeeklyFats          *float64
	WeeklyFiber         *float64
	WeeklyCooldowns     *int
}

type SnapshotOutput struct {
	EffectiveFrom       time.Time
	WorkoutsPerWeek     int
	WakeUpTime          string
	DailySleepHours     float64
	WeeklyCardioMinutes int
	WeeklyProtein       float64
	WeeklyCalories      int
	WeeklySteps         int
	WeeklyCarbs         float64
	WeeklyFats          float64
	WeeklyFiber         float64
	WeeklyCooldowns     int
}
