package out

import (
	"context"
	"time"

	goalsin "toobuff/internal/modules/goals/port/in"
	"toobuff/internal/modules/report/domain"
	reportout "toobuff/internal/modules/report/port/out"
)

// GoalSourceAdapter narrows the goals usecase to the report module's
// GoalSource port.
type GoalSourceAdapter struct {
	goals goalsin.Usecase
}

func NewGoalSourceAdapter(goals goalsin.Usecase) reportout.GoalSource {
	return &GoalSourceAdapter{goals: goals}
}

func (a *GoalSourceAdapter) At(ctx context.Context, at time.Time) (domain.GoalVersion, error) {
	snapshot, err := a.goals.At(ctx, at)
	if err != nil {
		return domain.GoalVersion{}, err
	}
	return domain.GoalVersion{
		EffectiveFrom:       snapshot.EffectiveFrom,
		WorkoutsPerWeek:     snapshot.WorkoutsPerWeek,
		WakeUpTime:          snapshot.WakeUpTime,
		DailySleepHours:     snapshot.DailySleepHours,
		WeeklyCardioMinutes: snapshot.WeeklyCardioMinutes,
		WeeklyProtein:       snapshot.WeeklyProtein,
		WeeklyCalories:      snapshot.WeeklyCalories,
		WeeklySteps:         snapshot.WeeklySteps,
		WeeklyCarbs:         snapshot.WeeklyCarbs,
		WeeklyFats:          snapshot.WeeklyFats,
		WeeklyFiber:         snapshot.WeeklyFiber,
		WeeklyCooldowns:     snapshot.WeeklyCooldowns,
	}, nil
}
