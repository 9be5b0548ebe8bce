package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"toobuff/internal/modules/goals/domain"
	goalsout "toobuff/internal/modules/goals/port/out"
)

// FileSnapshotStore keeps the goal history as one YAML file per snapshot in
// the goals directory. Files are only ever created, never rewritten, which is
// what makes historical grading trustworthy.
type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) goalsout.SnapshotStore {
	return &FileSnapshotStore{dir: dir}
}

type snapshotFile struct {
	EffectiveFrom      string  `yaml:"effective_from"`
	WorkoutsPerWeek    int     `yaml:"workouts_per_week"`
	WakeUpTimeGoal     string  `yaml:"wake_up_time_goal"`
	DailySleepGoal     float64 `yaml:"daily_sleep_goal"`
	WeeklyCardioGoal   int     `yaml:"weekly_cardio_time_goal"`
	WeeklyProteinGoal  float64 `yaml:"weekly_protein_goal"`
	WeeklyCalorieGoal  int     `yaml:"weekly_calorie_goal"`
	WeeklyStepsGoal    int     `yaml:"weekly_steps_goal"`
	WeeklyCarbsGoal    float64 `yaml:"weekly_carbs_goal"`
	WeeklyFatsGoal     float64 `yaml:"weekly_fats_goal"`
	WeeklyFiberGoal    float64 `yaml:"weekly_fiber_goal"`
	WeeklyCooldownGoal int     `yaml:"weekly_cooldown_goal"`
}

func (s *FileSnapshotStore) Save(_ context.Context, snapshot domain.Snapshot) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create goals directory: %w", err)
	}
	name := fmt.Sprintf("goals-%s.yaml", snapshot.EffectiveFrom.UTC().Format("20060102T150405.000000000Z"))
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("goal snapshot %s already exists", name)
	}
	raw, err := yaml.Marshal(toFile(snapshot))
	if err != nil {
		return "", fmt.Errorf("marshal goal snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write goal snapshot: %w", err)
	}
	return path, nil
}

func (s *FileSnapshotStore) List(_ context.Context) ([]domain.Snapshot, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "goals-*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob goal snapshots: %w", err)
	}
	out := make([]domain.Snapshot, 0, len(matches))
	for _, path := range matches {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		var file snapshotFile
		// Unknown and legacy keys are ignored so old snapshot files keep
		// loading after the schema grows.
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("decode goal snapshot %s: %w", path, err)
		}
		snapshot, convErr := fromFile(file)
		if convErr != nil {
			return nil, fmt.Errorf("decode goal snapshot %s: %w", path, convErr)
		}
		out = append(out, snapshot)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EffectiveFrom.Before(out[j].EffectiveFrom)
	})
	return out, nil
}

func toFile(snapshot domain.Snapshot) snapshotFile {
	return snapshotFile{
		EffectiveFrom:      snapshot.EffectiveFrom.Format(time.RFC3339Nano),
		WorkoutsPerWeek:    snapshot.WorkoutsPerWeek,
		WakeUpTimeGoal:     snapshot.WakeUpTime,
		DailySleepGoal:     snapshot.DailySleepHours,
		WeeklyCardioGoal:   snapshot.WeeklyCardioMinutes,
		WeeklyProteinGoal:  snapshot.WeeklyProtein,
		WeeklyCalorieGoal:  snapshot.WeeklyCalories,
		WeeklyStepsGoal:    snapshot.WeeklySteps,
		WeeklyCarbsGoal:    snapshot.WeeklyCarbs,
		WeeklyFatsGoal:     snapshot.WeeklyFats,
		WeeklyFiberGoal:    snapshot.WeeklyFiber,
		WeeklyCooldownGoal: snapshot.WeeklyCooldowns,
	}
}

func fromFile(file snapshotFile) (domain.Snapshot, error) {
	effectiveFrom, err := time.Parse(time.RFC3339Nano, file.EffectiveFrom)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("parse effective_from: %w", err)
	}
	return domain.Snapshot{
		EffectiveFrom:       effectiveFrom,
		WorkoutsPerWeek:     file.WorkoutsPerWeek,
		WakeUpTime:          file.WakeUpTimeGoal,
		DailySleepHours:     file.DailySleepGoal,
		WeeklyCardioMinutes: file.WeeklyCardioGoal,
		WeeklyProtein:       file.WeeklyProteinGoal,
		WeeklyCalories:      file.WeeklyCalorieGoal,
		WeeklySteps:         file.WeeklyStepsGoal,
		WeeklyCarbs:         file.WeeklyCarbsGoal,
		WeeklyFats:          file.WeeklyFatsGoal,
		WeeklyFiber:         file.WeeklyFiberGoal,
		WeeklyCooldowns:     file.WeeklyCooldownGoal,
	}, nil
}
