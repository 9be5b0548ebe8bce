package in

import (
	"context"

	"toobuff/internal/modules/report/dto"
	reportin "toobuff/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Weekly(ctx context.Context) ([]dto.WeekReport, error) {
	return h.usecase.Weekly(ctx)
}

func (h CLIHandler) Week(ctx context.Context, weekID string) (dto.WeekReport, error) {
	return h.usecase.Week(ctx, weekID)
}

func (h CLIHandler) Overview(ctx context.Context) (dto.Overview, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Rows(ctx context.Context, weekID string) (dto.Rows, error) {
	return h.usecase.Rows(ctx, weekID)
}

func (h CLIHandler) Export(ctx context.Context, weekID string, toClipboard bool) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, weekID, toClipboard)
}
