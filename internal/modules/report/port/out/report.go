package out

import (
	"context"
	"time"

	"toobuff/internal/modules/report/domain"
)

// CheckinSource feeds the aggregation engine. ListAll returns every record
// in any order; ListRange returns records in chronological order for the
// spreadsheet projection.
type CheckinSource interface {
	ListAll(ctx context.Context) ([]domain.DayRecord, error)
	ListRange(ctx context.Context, from, to time.Time) ([]domain.DayRecord, error)
}

// GoalSource resolves the goal version effective at a point in time.
type GoalSource interface {
	At(ctx context.Context, at time.Time) (domain.GoalVersion, error)
}

// Clipboard copies rendered export text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}
