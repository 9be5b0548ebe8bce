package in

import (
	"context"
	"time"

	"toobuff/internal/modules/goals/dto"
	goalsin "toobuff/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Setup(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	return h.usecase.Setup(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Current(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.SnapshotOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) At(ctx context.Context, at time.Time) (dto.SnapshotOutput, error) {
	return h.usecase.At(ctx, at)
}
