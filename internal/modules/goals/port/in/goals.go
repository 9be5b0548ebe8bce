package in

import (
	"context"
	"time"

	"toobuff/internal/modules/goals/dto"
)

type Usecase interface {
	Setup(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error)
	Update(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error)
	Current(ctx context.Context) (dto.SnapshotOutput, error)
	History(ctx context.Context) ([]dto.SnapshotOutput, error)
	At(ctx context.Context, at time.Time) (dto.SnapshotOutput, error)
}
