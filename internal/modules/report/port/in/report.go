package in

import (
	"context"

	"toobuff/internal/modules/report/dto"
)

type Usecase interface {
	Weekly(ctx context.Context) ([]dto.WeekReport, error)
	Week(ctx context.Context, weekID string) (dto.WeekReport, error)
	Overview(ctx context.Context) (dto.Overview, error)
	Rows(ctx context.Context, weekID string) (dto.Rows, error)
	Export(ctx context.Context, weekID string, toClipboard bool) (dto.ExportOutput, error)
}
