package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toobuff/internal/modules/goals/domain"
	"toobuff/internal/modules/goals/dto"
	goalsin "toobuff/internal/modules/goals/port/in"
	"toobuff/internal/modules/goals/service"
	apperrors "toobuff/internal/platform/errors"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalsin.Usecase {
	return &Interactor{svc: svc}
}

// Setup creates the first snapshot. It refuses when a history already exists;
// callers that want to change goals afterwards use Update instead.
func (i *Interactor) Setup(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	history, err := i.svc.History(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	if len(history) > 0 {
		return dto.SnapshotOutput{}, fmt.Errorf("%w: goals already configured, use update", apperrors.ErrInvalidInput)
	}
	snapshot, err := i.svc.Append(ctx, apply(domain.Snapshot{}, input))
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toOutput(snapshot), nil
}

// Update appends a new snapshot carrying forward every field the input
// leaves nil, so a partial update still produces a complete version.
func (i *Interactor) Update(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	current, err := i.svc.Current(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoGoalConfig) {
			return dto.SnapshotOutput{}, err
		}
		current = domain.Snapshot{}
	}
	snapshot, err := i.svc.Append(ctx, apply(current, input))
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toOutput(snapshot), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.SnapshotOutput, error) {
	snapshot, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toOutput(snapshot), nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.SnapshotOutput, error) {
	snapshots, err := i.svc.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SnapshotOutput, 0, len(snapshots))
	for _, snapshot := range snapshots {
		out = append(out, toOutput(snapshot))
	}
	return out, nil
}

func (i *Interactor) At(ctx context.Context, at time.Time) (dto.SnapshotOutput, error) {
	snapshot, err := i.svc.Resolve(ctx, at)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return toOutput(snapshot), nil
}

func apply(base domain.Snapshot, input dto.SnapshotInput) domain.Snapshot {
	if input.WorkoutsPerWeek != nil {
		base.WorkoutsPerWeek = *input.WorkoutsPerWeek
	}
	if input.WakeUpTime != nil {
		base.WakeUpTime = *input.WakeUpTime
	}
	if input.DailySleepHours != nil {
		base.DailySleepHours = *input.DailySleepHours
	}
	if input.WeeklyCardioMinutes != nil {
		base.WeeklyCardioMinutes = *input.WeeklyCardioMinutes
	}
	if input.WeeklyProtein != nil {
		base.WeeklyProtein = *input.WeeklyProtein
	}
	if input.WeeklyCalories != nil {
		base.WeeklyCalories = *input.WeeklyCalories
	}
	if input.WeeklySteps != nil {
		base.WeeklySteps = *input.WeeklySteps
	}
	if input.WeeklyCarbs != nil {
		base.WeeklyCarbs = *input.WeeklyCarbs
	}
	if input.WeeklyFats != nil {
		base.WeeklyFats = *input.WeeklyFats
	}
	if input.WeeklyFiber != nil {
		base.WeeklyFiber = *input.WeeklyFiber
	}
	if input.WeeklyCooldowns != nil {
		base.WeeklyCooldowns = *input.WeeklyCooldowns
	}
	return base
}

func toOutput(snapshot domain.Snapshot) dto.SnapshotOutput {
	return dto.SnapshotOutput{
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
	}
}
