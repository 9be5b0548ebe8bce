package service

import (
	"context"
	"fmt"
	"time"

	"toobuff/internal/modules/goals/domain"
	goalsout "toobuff/internal/modules/goals/port/out"
	"toobuff/internal/platform/clock"
	apperrors "toobuff/internal/platform/errors"
)

type GoalService struct {
	clock clock.Clock
	store goalsout.SnapshotStore
}

func NewGoalService(clock clock.Clock, store goalsout.SnapshotStore) *GoalService {
	return &GoalService{clock: clock, store: store}
}

// Append stamps the snapshot with the current time and persists it as a new
// version. Existing snapshots are never touched.
func (s *GoalService) Append(ctx context.Context, snapshot domain.Snapshot) (domain.Snapshot, error) {
	snapshot.EffectiveFrom = s.clock.Now()
	if err := snapshot.Validate(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	if _, err := s.store.Save(ctx, snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("save goal snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *GoalService) History(ctx context.Context) ([]domain.Snapshot, error) {
	snapshots, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goal snapshots: %w", err)
	}
	return snapshots, nil
}

// Resolve picks the snapshot effective at the given time.
func (s *GoalService) Resolve(ctx context.Context, at time.Time) (domain.Snapshot, error) {
	snapshots, err := s.History(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snapshot, ok := domain.Resolve(snapshots, at)
	if !ok {
		return domain.Snapshot{}, apperrors.ErrNoGoalConfig
	}
	return snapshot, nil
}

// Current returns the snapshot effective right now.
func (s *GoalService) Current(ctx context.Context) (domain.Snapshot, error) {
	return s.Resolve(ctx, s.clock.Now())
}
