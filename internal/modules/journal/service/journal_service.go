package service

import (
	"context"
	"fmt"
	"time"

	"toobuff/internal/modules/journal/domain"
	journalout "toobuff/internal/modules/journal/port/out"
	"toobuff/internal/platform/clock"
	apperrors "toobuff/internal/platform/errors"
	"toobuff/internal/platform/id"
)

type JournalService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     journalout.JournalStore
	projector journalout.MetricsProjector
}

func NewJournalService(clock clock.Clock, idGen id.Generator, store journalout.JournalStore, projector journalout.MetricsProjector) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, store: store, projector: projector}
}

// Record appends a fully formed check-in to the log and projects it into the
// read model. A zero date records "now"; a past date backfills.
func (s *JournalService) Record(ctx context.Context, checkin domain.Checkin) (domain.Checkin, error) {
	checkin.ID = s.idGen.New()
	if checkin.Timestamp.IsZero() {
		checkin.Timestamp = s.clock.Now()
	}
	if err := checkin.Validate(); err != nil {
		return domain.Checkin{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Append(ctx, checkin); err != nil {
		return domain.Checkin{}, fmt.Errorf("append check-in: %w", err)
	}
	if err := s.projector.Upsert(ctx, checkin); err != nil {
		return domain.Checkin{}, fmt.Errorf("project check-in: %w", err)
	}
	return checkin, nil
}

func (s *JournalService) List(ctx context.Context) ([]domain.Checkin, error) {
	checkins, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	return checkins, nil
}

func (s *JournalService) ListRange(ctx context.Context, from, to time.Time) ([]domain.Checkin, error) {
	checkins, err := s.projector.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list check-in range: %w", err)
	}
	return checkins, nil
}

// Reindex rebuilds the projection from the journal log, the source of truth.
func (s *JournalService) Reindex(ctx context.Context) error {
	checkins, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list check-ins: %w", err)
	}
	if err := s.projector.Reset(ctx); err != nil {
		return fmt.Errorf("reset projection: %w", err)
	}
	for _, checkin := range checkins {
		if err := s.projector.Upsert(ctx, checkin); err != nil {
			return fmt.Errorf("project check-in %s: %w", checkin.ID, err)
		}
	}
	return nil
}
