package usecase

import (
	"context"
	"fmt"
	"time"

	"toobuff/internal/modules/journal/domain"
	"toobuff/internal/modules/journal/dto"
	journalin "toobuff/internal/modules/journal/port/in"
	journalout "toobuff/internal/modules/journal/port/out"
	"toobuff/internal/modules/journal/service"
	apperrors "toobuff/internal/platform/errors"
	"toobuff/internal/platform/timeparse"
)

type Interactor struct {
	svc      *service.JournalService
	dataFile string
	dataDir  string
	launcher journalout.DirLauncher
}

func NewInteractor(svc *service.JournalService, dataFile, dataDir string, launcher journalout.DirLauncher) journalin.Usecase {
	return &Interactor{svc: svc, dataFile: dataFile, dataDir: dataDir, launcher: launcher}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.CheckinOutput, error) {
	checkin, err := fromInput(input)
	if err != nil {
		return dto.CheckinOutput{}, err
	}
	recorded, err := i.svc.Record(ctx, checkin)
	if err != nil {
		return dto.CheckinOutput{}, err
	}
	return toOutput(recorded), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.CheckinOutput, error) {
	checkins, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(checkins), nil
}

func (i *Interactor) ListRange(ctx context.Context, from, to time.Time) ([]dto.CheckinOutput, error) {
	checkins, err := i.svc.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toOutputs(checkins), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) Paths(_ context.Context) (dto.PathsOutput, error) {
	return dto.PathsOutput{DataFile: i.dataFile, DataDir: i.dataDir}, nil
}

func (i *Interactor) OpenDataDir(ctx context.Context) error {
	return i.launcher.Open(ctx, i.dataDir)
}

// fromInput parses the shorthand fields; malformed values are rejected here
// so the domain only ever sees validated data.
func fromInput(input dto.RecordInput) (domain.Checkin, error) {
	checkin := domain.Checkin{
		Timestamp:  input.Date,
		WakeUpTime: input.WakeUpTime,
		SleepHours: input.SleepHours,
		Protein:    input.Protein,
		Calories:   input.Calories,
		Carbs:      input.Carbs,
		Fats:       input.Fats,
		Fiber:      input.Fiber,
		Steps:      input.Steps,
		Weight:     input.Weight,
		CoolDown:   input.CoolDown,
	}
	if input.WakeUpTime != "" {
		if _, err := timeparse.TimeOfDay(input.WakeUpTime); err != nil {
			return domain.Checkin{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
		}
	}
	if input.Workout != nil {
		workout := &domain.Workout{
			Week:         input.Workout.Week,
			Day:          input.Workout.Day,
			PrimaryLifts: map[string][]domain.Set{},
		}
		for lift, shorthand := range input.Workout.Lifts {
			sets, err := timeparse.Sets(shorthand)
			if err != nil {
				return domain.Checkin{}, fmt.Errorf("%w: lift %s: %s", apperrors.ErrInvalidInput, lift, err)
			}
			parsed := make([]domain.Set, 0, len(sets))
			for _, set := range sets {
				parsed = append(parsed, domain.Set{WeightLbs: set.WeightLbs, Reps: set.Reps})
			}
			workout.PrimaryLifts[lift] = parsed
		}
		checkin.Workout = workout
	}
	if input.Cardio != nil {
		checkin.Cardio = &domain.Cardio{
			Medium:          input.Cardio.Medium,
			DurationMinutes: input.Cardio.DurationMinutes,
			Zone:            input.Cardio.Zone,
		}
	}
	return checkin, nil
}

func toOutputs(checkins []domain.Checkin) []dto.CheckinOutput {
	out := make([]dto.CheckinOutput, 0, len(checkins))
	for _, checkin := range checkins {
		out = append(out, toOutput(checkin))
	}
	return out
}

func toOutput(checkin domain.Checkin) dto.CheckinOutput {
	output := dto.CheckinOutput{
		ID:         checkin.ID,
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
		CoolDown:   checkin.CoolDown,
	}
	if checkin.Workout != nil {
		workout := &dto.WorkoutOutput{
			Week:         checkin.Workout.Week,
			Day:          checkin.Workout.Day,
			PrimaryLifts: map[string][]dto.SetOutput{},
		}
		for lift, sets := range checkin.Workout.PrimaryLifts {
			outSets := make([]dto.SetOutput, 0, len(sets))
			for _, set := range sets {
				outSets = append(outSets, dto.SetOutput{WeightLbs: set.WeightLbs, Reps: set.Reps})
			}
			workout.PrimaryLifts[lift] = outSets
		}
		output.Workout = workout
	}
	if checkin.Cardio != nil {
		output.Cardio = &dto.CardioOutput{
			Medium:          checkin.Cardio.Medium,
			DurationMinutes: checkin.Cardio.DurationMinutes,
			Zone:            checkin.Cardio.Zone,
		}
	}
	return output
}
