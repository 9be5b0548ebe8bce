package out

import (
	"context"
	"time"

	"toobuff/internal/modules/journal/domain"
)

// JournalStore is the append-only check-in log. Append never mutates or
// removes earlier entries; List tolerates sparse legacy records.
type JournalStore interface {
	Append(ctx context.Context, checkin domain.Checkin) error
	List(ctx context.Context) ([]domain.Checkin, error)
}

// MetricsProjector maintains the rebuildable daily-metrics read model used
// for chronological range queries (the spreadsheet export).
type MetricsProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, checkin domain.Checkin) error
	ListRange(ctx context.Context, from, to time.Time) ([]domain.Checkin, error)
}

// DirLauncher opens a directory in the OS file manager.
type DirLauncher interface {
	Open(ctx context.Context, path string) error
}
