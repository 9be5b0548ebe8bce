package in

import (
	"context"
	"time"

	"toobuff/internal/modules/journal/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.CheckinOutput, error)
	List(ctx context.Context) ([]dto.CheckinOutput, error)
	ListRange(ctx context.Context, from, to time.Time) ([]dto.CheckinOutput, error)
	Reindex(ctx context.Context) error
	Paths(ctx context.Context) (dto.PathsOutput, error)
	OpenDataDir(ctx context.Context) error
}
