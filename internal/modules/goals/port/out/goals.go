package out

import (
	"context"

	"toobuff/internal/modules/goals/domain"
)

// SnapshotStore persists the append-only goal history. Save must never
// rewrite an existing snapshot; List returns snapshots in ascending
// EffectiveFrom order.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) (string, error)
	List(ctx context.Context) ([]domain.Snapshot, error)
}
