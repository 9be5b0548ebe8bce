package domain

import (
	"fmt"
	"sort"
	"time"

	"toobuff/internal/platform/timeparse"
)

// Snapshot is one immutable version of the weekly goal configuration.
// Updating goals always appends a new snapshot; past weeks are graded
// against the snapshot that was effective at the time.
type Snapshot struct {
	EffectiveFrom time.Time

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

func (s Snapshot) Validate() error {
	if s.EffectiveFrom.IsZero() {
		return fmt.Errorf("effective_from is required")
	}
	if s.WakeUpTime != "" {
		if _, err := timeparse.TimeOfDay(s.WakeUpTime); err != nil {
			return fmt.Errorf("wake up time goal: %w", err)
		}
	}
	return nil
}

// Resolve returns the snapshot effective at the target time: the latest
// snapshot whose EffectiveFrom does not exceed at. When the target predates
// every snapshot the earliest one is returned, so old weeks are still graded
// against a best-effort baseline. ok is false only for an empty history.
func Resolve(snapshots []Snapshot, at time.Time) (Snapshot, bool) {
	if len(snapshots) == 0 {
		return Snapshot{}, false
	}
	ordered := make([]Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].EffectiveFrom.Before(ordered[j].EffectiveFrom)
	})
	resolved := ordered[0]
	for _, snapshot := range ordered {
		if snapshot.EffectiveFrom.After(at) {
			break
		}
		resolved = snapshot
	}
	return resolved, true
}
