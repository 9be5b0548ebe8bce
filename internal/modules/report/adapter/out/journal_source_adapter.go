package out

import (
	"context"
	"time"

	journaldto "toobuff/internal/modules/journal/dto"
	journalin "toobuff/internal/modules/journal/port/in"
	"toobuff/internal/modules/report/domain"
	reportout "toobuff/internal/modules/report/port/out"
)

// JournalSourceAdapter narrows the journal usecase to the report module's
// CheckinSource port.
type JournalSourceAdapter struct {
	journal journalin.Usecase
}

func NewJournalSourceAdapter(journal journalin.Usecase) reportout.CheckinSource {
	return &JournalSourceAdapter{journal: journal}
}

func (a *JournalSourceAdapter) ListAll(ctx context.Context) ([]domain.DayRecord, error) {
	checkins, err := a.journal.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDayRecords(checkins), nil
}

func (a *JournalSourceAdapter) ListRange(ctx context.Context, from, to time.Time) ([]domain.DayRecord, error) {
	checkins, err := a.journal.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toDayRecords(checkins), nil
}

func toDayRecords(checkins []journaldto.CheckinOutput) []domain.DayRecord {
	out := make([]domain.DayRecord, 0, len(checkins))
	for _, checkin := range checkins {
		record := domain.DayRecord{
			Timestamp:  checkin.Timestamp,
			WakeUpTime: checkin.WakeUpTime,
			SleepHours: checkin.SleepHours,
			Protein:    checkin.Protein,
			Calories:   checkin.Calories,
			Carbs:      checkin.Carbs,
			Fats:       checkin.Fats,
			Fiber:      checkin.Fiber,
			Steps:      checkin.Steps,
			Weight:     checkin.Weight,
			WorkedOut:  checkin.Workout != nil,
			CooledDown: checkin.CoolDown,
		}
		if checkin.Cardio != nil {
			record.CardioMinutes = checkin.Cardio.DurationMinutes
		}
		out = append(out, record)
	}
	return out
}
