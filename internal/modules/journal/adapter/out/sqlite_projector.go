package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toobuff/internal/modules/journal/domain"
	journalout "toobuff/internal/modules/journal/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteMetricsProjector is the disposable read model over the journal log.
// It holds one row of raw daily values per check-in, ordered by timestamp,
// and is rebuilt wholesale by reindex.
type SQLiteMetricsProjector struct {
	db *sql.DB
}

func NewSQLiteMetricsProjector(dbPath string) (journalout.MetricsProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteMetricsProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteMetricsProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS daily_metrics (
  id TEXT PRIMARY KEY,
  recorded_at TEXT NOT NULL,
  wake_up_time TEXT,
  sleep_hours REAL NOT NULL,
  protein REAL NOT NULL,
  calories REAL NOT NULL,
  carbs REAL NOT NULL,
  fats REAL NOT NULL,
  fiber REAL NOT NULL,
  steps REAL NOT NULL,
  weight REAL NOT NULL,
  cardio_minutes INTEGER NOT NULL,
  cardio_medium TEXT,
  cardio_zone INTEGER NOT NULL,
  worked_out INTEGER NOT NULL,
  cooled_down INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_daily_metrics_recorded_at ON daily_metrics (recorded_at);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create daily_metrics table: %w", err)
	}
	return nil
}

func (p *SQLiteMetricsProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM daily_metrics`); err != nil {
		return fmt.Errorf("reset daily_metrics: %w", err)
	}
	return nil
}

func (p *SQLiteMetricsProjector) Upsert(ctx context.Context, checkin domain.Checkin) error {
	const stmt = `
INSERT INTO daily_metrics (id, recorded_at, wake_up_time, sleep_hours, protein, calories, carbs, fats, fiber, steps, weight, cardio_minutes, cardio_medium, cardio_zone, worked_out, cooled_down)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  recorded_at=excluded.recorded_at,
  wake_up_time=excluded.wake_up_time,
  sleep_hours=excluded.sleep_hours,
  protein=excluded.protein,
  calories=excluded.calories,
  carbs=excluded.carbs,
  fats=excluded.fats,
  fiber=excluded.fiber,
  steps=excluded.steps,
  weight=excluded.weight,
  cardio_minutes=excluded.cardio_minutes,
  cardio_medium=excluded.cardio_medium,
  cardio_zone=excluded.cardio_zone,
  worked_out=excluded.worked_out,
  cooled_down=excluded.cooled_down;
`
	cardioMinutes, cardioMedium, cardioZone := 0, "", 0
	if checkin.Cardio != nil {
		cardioMinutes = checkin.Cardio.DurationMinutes
		cardioMedium = checkin.Cardio.Medium
		cardioZone = checkin.Cardio.Zone
	}
	_, err := p.db.ExecContext(ctx, stmt,
		checkin.ID,
		checkin.Timestamp.Format(time.RFC3339Nano),
		checkin.WakeUpTime,
		checkin.SleepHours,
		checkin.Protein,
		checkin.Calories,
		checkin.Carbs,
		checkin.Fats,
		checkin.Fiber,
		checkin.Steps,
		checkin.Weight,
		cardioMinutes,
		cardioMedium,
		cardioZone,
		boolInt(checkin.Workout != nil),
		boolInt(checkin.CoolDown),
	)
	if err != nil {
		return fmt.Errorf("upsert daily metrics: %w", err)
	}
	return nil
}

func (p *SQLiteMetricsProjector) ListRange(ctx context.Context, from, to time.Time) ([]domain.Checkin, error) {
	const query = `
SELECT id, recorded_at, wake_up_time, sleep_hours, protein, calories, carbs, fats, fiber, steps, weight, cardio_minutes, cardio_medium, cardio_zone, worked_out, cooled_down
FROM daily_metrics
WHERE recorded_at >= ? AND recorded_at <= ?
ORDER BY recorded_at;
`
	rows, err := p.db.QueryContext(ctx, query, from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("query daily metrics: %w", err)
	}
	defer rows.Close()

	var out []domain.Checkin
	for rows.Next() {
		var (
			checkin       domain.Checkin
			recordedAt    string
			cardioMinutes int
			cardioMedium  string
			cardioZone    int
			workedOut     int
			cooledDown    int
		)
		if err := rows.Scan(
			&checkin.ID,
			&recordedAt,
			&checkin.WakeUpTime,
			&checkin.SleepHours,
			&checkin.Protein,
			&checkin.Calories,
			&checkin.Carbs,
			&checkin.Fats,
			&checkin.Fiber,
			&checkin.Steps,
			&checkin.Weight,
			&cardioMinutes,
			&cardioMedium,
			&cardioZone,
			&workedOut,
			&cooledDown,
		); err != nil {
			return nil, fmt.Errorf("scan daily metrics: %w", err)
		}
		timestamp, parseErr := time.Parse(time.RFC3339Nano, recordedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parse recorded_at %q: %w", recordedAt, parseErr)
		}
		checkin.Timestamp = timestamp
		if cardioMinutes > 0 || cardioMedium != "" {
			checkin.Cardio = &domain.Cardio{Medium: cardioMedium, DurationMinutes: cardioMinutes, Zone: cardioZone}
		}
		if workedOut != 0 {
			checkin.Workout = &domain.Workout{}
		}
		checkin.CoolDown = cooledDown != 0
		out = append(out, checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily metrics: %w", err)
	}
	return out, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
