package domain

import (
	"time"

	"toobuff/internal/platform/timeparse"
)

// GoalVersion is the report module's view of one goal snapshot. Zero-valued
// fields mean the goal is unset.
type GoalVersion struct {
	EffectiveFrom       time.Time
	WorkoutsPerWeek     int
	WakeUpTime          string
	DailySleepHours     float64
	WeeklyCardioMinutes int
	WeeklyProtein       float64
	WeeklyCalories      int
	WeeklySteps         int
	WeeklyCarbs         float64
	WeeklyFats          float64
	WeeklyFiber         float64
	WeeklyCooldowns     int
}

type Metric string

const (
	MetricWorkouts Metric = "workouts"
	MetricCardio   Metric = "cardio"
	MetricProtein  Metric = "protein"
	MetricCalories Metric = "calories"
	MetricSteps    Metric = "steps"
	MetricCarbs    Metric = "carbs"
	MetricFats     Metric = "fats"
	MetricFiber    Metric = "fiber"
	MetricCooldown Metric = "cooldown"
	MetricSleep    Metric = "sleep"
	MetricWakeUp   Metric = "wake_up"
)

// Metrics lists every tracked metric in presentation order.
var Metrics = []Metric{
	MetricWorkouts, MetricCardio, MetricProtein, MetricCalories, MetricSteps,
	MetricCarbs, MetricFats, MetricFiber, MetricCooldown, MetricSleep, MetricWakeUp,
}

// Evaluation is one metric's verdict for one week. A nil Met means the goal
// was unset or the week has no data for the metric; such entries stay out of
// the score denominator. For wake_up, Goal is the target in minutes past
// midnight and Actual is the adherent fraction of recorded days.
type Evaluation struct {
	Met    *bool
	Goal   float64
	Actual *float64
}

const (
	wakeWindowMinutes  = 30
	wakeAdherenceFloor = 0.80
)

// band is a tolerance window around a goal. Multipliers of zero mean the
// bound is open on that side.
type band struct {
	lowMult  float64
	highMult float64
}

var averageBands = map[Metric]band{
	MetricProtein:  {lowMult: 0.99, highMult: 1.10},
	MetricCalories: {lowMult: 0.95, highMult: 1.02},
	MetricSteps:    {lowMult: 1.00, highMult: 1.50},
	MetricCarbs:    {lowMult: 0.95, highMult: 1.10},
	MetricFats:     {lowMult: 0.90, highMult: 1.05},
	MetricFiber:    {lowMult: 1.00, highMult: 3.00},
	MetricSleep:    {lowMult: 1.00},
}

// Evaluate scores one aggregated week against the goal snapshot that was
// effective for it.
func Evaluate(bucket Bucket, goals GoalVersion) map[Metric]Evaluation {
	evals := map[Metric]Evaluation{
		MetricWorkouts: evalCount(bucket.WorkoutDays, goals.WorkoutsPerWeek),
		MetricCardio:   evalSum(bucket.CardioMinutes, goals.WeeklyCardioMinutes),
		MetricProtein:  evalAverage(MetricProtein, bucket.Protein, goals.WeeklyProtein),
		MetricCalories: evalAverage(MetricCalories, bucket.Calories, float64(goals.WeeklyCalories)),
		MetricSteps:    evalAverage(MetricSteps, bucket.Steps, float64(goals.WeeklySteps)),
		MetricCarbs:    evalAverage(MetricCarbs, bucket.Carbs, goals.WeeklyCarbs),
		MetricFats:     evalAverage(MetricFats, bucket.Fats, goals.WeeklyFats),
		MetricFiber:    evalAverage(MetricFiber, bucket.Fiber, goals.WeeklyFiber),
		MetricCooldown: evalCount(bucket.CooldownDays, goals.WeeklyCooldowns),
		MetricSleep:    evalAverage(MetricSleep, bucket.Sleep, goals.DailySleepHours),
		MetricWakeUp:   evalWakeUp(bucket.WakeUpTimes, goals.WakeUpTime),
	}
	return evals
}

// evalCount covers counter metrics. The counter is always a real observation
// for a week that has check-ins, so a zero count fails a set goal rather
// than reading as "no data".
func evalCount(actual, goal int) Evaluation {
	if goal == 0 {
		return Evaluation{Goal: float64(goal)}
	}
	met := actual >= goal
	value := float64(actual)
	return Evaluation{Met: &met, Goal: float64(goal), Actual: &value}
}

func evalSum(values []int, goal int) Evaluation {
	if goal == 0 {
		return Evaluation{Goal: float64(goal)}
	}
	if len(values) == 0 {
		return Evaluation{Goal: float64(goal)}
	}
	total := 0
	for _, v := range values {
		total += v
	}
	met := total >= goal
	value := float64(total)
	return Evaluation{Met: &met, Goal: float64(goal), Actual: &value}
}

func evalAverage(metric Metric, values []float64, goal float64) Evaluation {
	if goal == 0 {
		return Evaluation{Goal: goal}
	}
	if len(values) == 0 {
		return Evaluation{Goal: goal}
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	average := total / float64(len(values))

	tolerance := averageBands[metric]
	met := average >= goal*tolerance.lowMult
	if tolerance.highMult != 0 {
		met = met && average <= goal*tolerance.highMult
	}
	return Evaluation{Met: &met, Goal: goal, Actual: &average}
}

// evalWakeUp grades per-day adherence, not an average: a recorded wake time
// adheres when it falls within 30 minutes of the goal, and the week is met
// when at least 80% of recorded days adhere. Unparseable times are treated
// as absent, a defined behavior for legacy records.
func evalWakeUp(times []string, goal string) Evaluation {
	if goal == "" {
		return Evaluation{}
	}
	goalMinutes, err := timeparse.TimeOfDay(goal)
	if err != nil {
		return Evaluation{}
	}
	adherent, total := WakeAdherence(times, goalMinutes)
	if total == 0 {
		return Evaluation{Goal: float64(goalMinutes)}
	}
	fraction := float64(adherent) / float64(total)
	met := fraction >= wakeAdherenceFloor
	return Evaluation{Met: &met, Goal: float64(goalMinutes), Actual: &fraction}
}

// WakeAdherence counts days within the 30-minute window of the goal.
// Times that fail to parse are skipped entirely.
func WakeAdherence(times []string, goalMinutes int) (adherent, total int) {
	for _, raw := range times {
		minutes, err := timeparse.TimeOfDay(raw)
		if err != nil {
			continue
		}
		total++
		diff := minutes - goalMinutes
		if diff < 0 {
			diff = -diff
		}
		if diff <= wakeWindowMinutes {
			adherent++
		}
	}
	return adherent, total
}

// Score is goals met over applicable goals, as a percentage. ok is false
// when no goal was applicable, which the caller presents as "no data".
func Score(evals map[Metric]Evaluation) (float64, bool) {
	met, applicable := 0, 0
	for _, eval := range evals {
		if eval.Met == nil {
			continue
		}
		applicable++
		if *eval.Met {
			met++
		}
	}
	if applicable == 0 {
		return 0, false
	}
	return float64(met) / float64(applicable) * 100, true
}
