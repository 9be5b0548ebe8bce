package in

import (
	"context"
	"time"

	"toobuff/internal/modules/journal/dto"
	journalin "toobuff/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, input dto.RecordInput) (dto.CheckinOutput, error) {
	return h.usecase.Record(ctx, input)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.CheckinOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) ListRange(ctx context.Context, from, to time.Time) ([]dto.CheckinOutput, error) {
	return h.usecase.ListRange(ctx, from, to)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) Paths(ctx context.Context) (dto.PathsOutput, error) {
	return h.usecase.Paths(ctx)
}

func (h CLIHandler) OpenDataDir(ctx context.Context) error {
	return h.usecase.OpenDataDir(ctx)
}
