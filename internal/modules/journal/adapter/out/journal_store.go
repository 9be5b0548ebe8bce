package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toobuff/internal/modules/journal/domain"
	journalout "toobuff/internal/modules/journal/port/out"
)

// FileJournalStore keeps the check-in log as a single JSON document with an
// append-only "checkins" array. Records written by older versions load with
// their missing fields zeroed; unknown fields are ignored.
type FileJournalStore struct {
	path string
}

func NewFileJournalStore(path string) journalout.JournalStore {
	return &FileJournalStore{path: path}
}

type journalFile struct {
	Checkins []checkinRecord `json:"checkins"`
}

type checkinRecord struct {
	ID         string         `json:"id,omitempty"`
	Timestamp  string         `json:"timestamp"`
	WakeUpTime string         `json:"wake_up_time,omitempty"`
	SleepHours float64        `json:"sleep_hours,omitempty"`
	Workout    *workoutRecord `json:"workout,omitempty"`
	Cardio     *cardioRecord  `json:"cardio,omitempty"`
	Protein    float64        `json:"protein,omitempty"`
	Calories   float64        `json:"calories,omitempty"`
	Carbs      float64        `json:"carbs,omitempty"`
	Fats       float64        `json:"fats,omitempty"`
	Fiber      float64        `json:"fiber,omitempty"`
	Steps      float64        `json:"steps,omitempty"`
	Weight     float64        `json:"weight,omitempty"`
	CoolDown   bool           `json:"cool_down,omitempty"`
}

type workoutRecord struct {
	Week         int                    `json:"week"`
	Day          int                    `json:"day"`
	PrimaryLifts map[string][]setRecord `json:"primary_lifts"`
}

type setRecord struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type cardioRecord struct {
	Medium          string `json:"medium"`
	DurationMinutes int    `json:"duration_minutes"`
	Zone            int    `json:"zone"`
}

func (s *FileJournalStore) Append(ctx context.Context, checkin domain.Checkin) error {
	file, err := s.load()
	if err != nil {
		return err
	}
	file.Checkins = append(file.Checkins, toRecord(checkin))
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

func (s *FileJournalStore) List(_ context.Context) ([]domain.Checkin, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Checkin, 0, len(file.Checkins))
	for _, record := range file.Checkins {
		checkin, convErr := fromRecord(record)
		if convErr != nil {
			return nil, fmt.Errorf("decode check-in: %w", convErr)
		}
		out = append(out, checkin)
	}
	return out, nil
}

func (s *FileJournalStore) load() (journalFile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return journalFile{}, nil
		}
		return journalFile{}, fmt.Errorf("read journal: %w", err)
	}
	var file journalFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return journalFile{}, fmt.Errorf("decode journal: %w", err)
	}
	return file, nil
}

func toRecord(checkin domain.Checkin) checkinRecord {
	record := checkinRecord{
		ID:         checkin.ID,
		Timestamp:  checkin.Timestamp.Format(time.RFC3339Nano),
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
		workout := &workoutRecord{
			Week:         checkin.Workout.Week,
			Day:          checkin.Workout.Day,
			PrimaryLifts: map[string][]setRecord{},
		}
		for lift, sets := range checkin.Workout.PrimaryLifts {
			records := make([]setRecord, 0, len(sets))
			for _, set := range sets {
				records = append(records, setRecord{Weight: set.WeightLbs, Reps: set.Reps})
			}
			workout.PrimaryLifts[lift] = records
		}
		record.Workout = workout
	}
	if checkin.Cardio != nil {
		record.Cardio = &cardioRecord{
			Medium:          checkin.Cardio.Medium,
			DurationMinutes: checkin.Cardio.DurationMinutes,
			Zone:            checkin.Cardio.Zone,
		}
	}
	return record
}

func fromRecord(record checkinRecord) (domain.Checkin, error) {
	timestamp, err := time.Parse(time.RFC3339Nano, record.Timestamp)
	if err != nil {
		// Early logs wrote bare ISO timestamps without a zone.
		timestamp, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", record.Timestamp, time.Local)
		if err != nil {
			return domain.Checkin{}, fmt.Errorf("parse timestamp %q: %w", record.Timestamp, err)
		}
	}
	checkin := domain.Checkin{
		ID:         record.ID,
		Timestamp:  timestamp,
		WakeUpTime: record.WakeUpTime,
		SleepHours: record.SleepHours,
		Protein:    record.Protein,
		Calories:   record.Calories,
		Carbs:      record.Carbs,
		Fats:       record.Fats,
		Fiber:      record.Fiber,
		Steps:      record.Steps,
		Weight:     record.Weight,
		CoolDown:   record.CoolDown,
	}
	if record.Workout != nil {
		workout := &domain.Workout{
			Week:         record.Workout.Week,
			Day:          record.Workout.Day,
			PrimaryLifts: map[string][]domain.Set{},
		}
		for lift, sets := range record.Workout.PrimaryLifts {
			parsed := make([]domain.Set, 0, len(sets))
			for _, set := range sets {
				parsed = append(parsed, domain.Set{WeightLbs: set.Weight, Reps: set.Reps})
			}
			workout.PrimaryLifts[lift] = parsed
		}
		checkin.Workout = workout
	}
	if record.Cardio != nil {
		checkin.Cardio = &domain.Cardio{
			Medium:          record.Cardio.Medium,
			DurationMinutes: record.Cardio.DurationMinutes,
			Zone:            record.Cardio.Zone,
		}
	}
	return checkin, nil
}
