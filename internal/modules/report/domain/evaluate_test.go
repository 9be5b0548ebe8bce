package domain_test

import (
	"testing"

	"toobuff/internal/modules/report/domain"
)

func mustEval(t *testing.T, evals map[domain.Metric]domain.Evaluation, metric domain.Metric) domain.Evaluation {
	t.Helper()
	eval, ok := evals[metric]
	if !ok {
		t.Fatalf("no evaluation for %s", metric)
	}
	return eval
}

func assertMet(t *testing.T, eval domain.Evaluation, want bool) {
	t.Helper()
	if eval.Met == nil {
		t.Fatalf("metric should be applicable, got nil verdict")
	}
	if *eval.Met != want {
		t.Fatalf("met = %v, want %v (goal %v, actual %v)", *eval.Met, want, eval.Goal, eval.Actual)
	}
}

func TestEvaluateCounters(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{WorkoutsPerWeek: 4, WeeklyCooldowns: 2}

	evals := domain.Evaluate(domain.Bucket{WorkoutDays: 4, CooldownDays: 1, SessionCount: 7}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricWorkouts), true)
	assertMet(t, mustEval(t, evals, domain.MetricCooldown), false)

	// A logged week with zero workouts fails the goal; it does not read as
	// missing data the way an empty average does.
	evals = domain.Evaluate(domain.Bucket{SessionCount: 3}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricWorkouts), false)
}

func TestEvaluateUnsetGoalsAreNotApplicable(t *testing.T) {
	t.Parallel()
	bucket := domain.Bucket{WorkoutDays: 5, Protein: []float64{150}, SessionCount: 5}
	evals := domain.Evaluate(bucket, domain.GoalVersion{})
	for metric, eval := range evals {
		if eval.Met != nil {
			t.Fatalf("metric %s should be inapplicable without a goal", metric)
		}
	}
}

func TestEvaluateCardioSum(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{WeeklyCardioMinutes: 150}

	evals := domain.Evaluate(domain.Bucket{CardioMinutes: []int{60, 50, 45}}, goals)
	eval := mustEval(t, evals, domain.MetricCardio)
	assertMet(t, eval, true)
	if *eval.Actual != 155 {
		t.Fatalf("cardio total = %v, want 155", *eval.Actual)
	}

	evals = domain.Evaluate(domain.Bucket{CardioMinutes: []int{60, 50}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricCardio), false)

	// No cardio logged at all: inapplicable, not failed.
	evals = domain.Evaluate(domain.Bucket{}, goals)
	if mustEval(t, evals, domain.MetricCardio).Met != nil {
		t.Fatalf("cardio without data should be inapplicable")
	}
}

func TestEvaluateProteinBand(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{WeeklyProtein: 150}

	cases := []struct {
		avg  float64
		want bool
	}{
		{150, true},
		{148.5, true},  // exactly 99% of goal
		{148.0, false}, // just under the band
		{165, true},    // exactly 110% of goal
		{166, false},   // over the band
	}
	for _, tc := range cases {
		evals := domain.Evaluate(domain.Bucket{Protein: []float64{tc.avg}}, goals)
		assertMet(t, mustEval(t, evals, domain.MetricProtein), tc.want)
	}
}

func TestEvaluateCaloriesBand(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{WeeklyCalories: 2500}

	evals := domain.Evaluate(domain.Bucket{Calories: []float64{2400}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricCalories), true)

	evals = domain.Evaluate(domain.Bucket{Calories: []float64{2300}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricCalories), false)

	evals = domain.Evaluate(domain.Bucket{Calories: []float64{2600}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricCalories), false)
}

func TestEvaluateSleepHasNoUpperBound(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{DailySleepHours: 8}

	evals := domain.Evaluate(domain.Bucket{Sleep: []float64{12}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricSleep), true)

	evals = domain.Evaluate(domain.Bucket{Sleep: []float64{7.5}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricSleep), false)
}

func TestEvaluateWakeUpAdherence(t *testing.T) {
	t.Parallel()
	goals := domain.GoalVersion{WakeUpTime: "05:30"}

	// Two of three days inside the 30-minute window: 66% < 80% floor.
	evals := domain.Evaluate(domain.Bucket{WakeUpTimes: []string{"05:30", "05:45", "07:00"}}, goals)
	eval := mustEval(t, evals, domain.MetricWakeUp)
	assertMet(t, eval, false)
	if *eval.Actual < 0.66 || *eval.Actual > 0.67 {
		t.Fatalf("adherent fraction = %v, want 2/3", *eval.Actual)
	}

	// Every day inside the window.
	evals = domain.Evaluate(domain.Bucket{WakeUpTimes: []string{"05:10", "06:00", "05:35"}}, goals)
	assertMet(t, mustEval(t, evals, domain.MetricWakeUp), true)

	// No recorded wake times: inapplicable.
	evals = domain.Evaluate(domain.Bucket{}, goals)
	if mustEval(t, evals, domain.MetricWakeUp).Met != nil {
		t.Fatalf("wake goal without data should be inapplicable")
	}
}

func TestWakeAdherenceSkipsUnparseable(t *testing.T) {
	t.Parallel()
	adherent, total := domain.WakeAdherence([]string{"05:30", "bogus", "06:15"}, 330)
	if total != 2 {
		t.Fatalf("unparseable time should not count, total = %d", total)
	}
	if adherent != 1 {
		t.Fatalf("adherent = %d, want 1", adherent)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()
	met := true
	missed := false
	evals := map[domain.Metric]domain.Evaluation{
		domain.MetricWorkouts: {Met: &met},
		domain.MetricProtein:  {Met: &met},
		domain.MetricSleep:    {Met: &missed},
		domain.MetricCardio:   {}, // inapplicable, excluded from the denominator
	}
	score, ok := domain.Score(evals)
	if !ok {
		t.Fatalf("score should be applicable")
	}
	want := 2.0 / 3.0 * 100
	if score < want-0.001 || score > want+0.001 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestScoreWithNoApplicableGoals(t *testing.T) {
	t.Parallel()
	evals := map[domain.Metric]domain.Evaluation{
		domain.MetricWorkouts: {},
		domain.MetricProtein:  {},
	}
	if _, ok := domain.Score(evals); ok {
		t.Fatalf("score should be inapplicable when nothing was graded")
	}
}
