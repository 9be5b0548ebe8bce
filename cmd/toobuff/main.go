package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toobuff/internal/bootstrap"
	goalsdto "toobuff/internal/modules/goals/dto"
	journaldto "toobuff/internal/modules/journal/dto"
	reportdto "toobuff/internal/modules/report/dto"
	"toobuff/internal/platform/config"
	"toobuff/internal/platform/timeparse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var home string

	root := &cobra.Command{
		Use:           "toobuff",
		Short:         "Personal fitness journal with weekly goal grading",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&home, "home", "", "journal home directory (default ~/.toobuff)")

	root.AddCommand(newInitCmd(&home))
	root.AddCommand(newCheckinCmd(&home))
	root.AddCommand(newGoalsCmd(&home))
	root.AddCommand(newDataCmd(&home))
	root.AddCommand(newReportCmd(&home))
	root.AddCommand(newExportCmd(&home))
	root.AddCommand(newReindexCmd(&home))
	root.AddCommand(newDatafileCmd(&home))
	root.AddCommand(newTUICmd(&home))
	return root
}

func loadApp(home string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.New(home)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	return app, cfg, err
}

func newInitCmd(home *string) *cobra.Command {
	var (
		workouts  int
		wake      string
		sleep     float64
		cardio    int
		protein   float64
		calories  int
		steps     int
		carbs     float64
		fats      float64
		fiber     float64
		cooldowns int
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up weekly goals and record the first goal snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := timeparse.TimeOfDay(wake); err != nil {
				return err
			}
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Setup(context.Background(), goalsdto.SnapshotInput{
				WorkoutsPerWeek:     &workouts,
				WakeUpTime:          &wake,
				DailySleepHours:     &sleep,
				WeeklyCardioMinutes: &cardio,
				WeeklyProtein:       &protein,
				WeeklyCalories:      &calories,
				WeeklySteps:         &steps,
				WeeklyCarbs:         &carbs,
				WeeklyFats:          &fats,
				WeeklyFiber:         &fiber,
				WeeklyCooldowns:     &cooldowns,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goals configured, effective from %s\n", out.EffectiveFrom.Format("2006-01-02 15:04"))
			return nil
		},
	}
	cmd.Flags().IntVar(&workouts, "workouts", 4, "workouts per week")
	cmd.Flags().StringVar(&wake, "wake", "06:30", "wake up time goal (HH:MM)")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "daily sleep goal in hours")
	cmd.Flags().IntVar(&cardio, "cardio", 150, "weekly cardio minutes goal")
	cmd.Flags().Float64Var(&protein, "protein", 150, "weekly average protein goal (g)")
	cmd.Flags().IntVar(&calories, "calories", 2500, "weekly average calorie goal")
	cmd.Flags().IntVar(&steps, "steps", 10000, "weekly average steps goal")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "weekly average carbs goal (g)")
	cmd.Flags().Float64Var(&fats, "fats", 0, "weekly average fats goal (g)")
	cmd.Flags().Float64Var(&fiber, "fiber", 0, "weekly average fiber goal (g)")
	cmd.Flags().IntVar(&cooldowns, "cooldowns", 0, "weekly cooldown sessions goal")
	return cmd
}

func newCheckinCmd(home *string) *cobra.Command {
	var (
		date        string
		wake        string
		sleep       float64
		protein     float64
		calories    float64
		carbs       float64
		fats        float64
		fiber       float64
		steps       float64
		weight      float64
		cooldown    bool
		workoutWeek int
		workoutDay  int
		lifts       []string
		cardioSpec  string
	)
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record a daily check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := journaldto.RecordInput{
				WakeUpTime: wake,
				SleepHours: sleep,
				Protein:    protein,
				Calories:   calories,
				Carbs:      carbs,
				Fats:       fats,
				Fiber:      fiber,
				Steps:      steps,
				Weight:     weight,
				CoolDown:   cooldown,
			}
			if date != "" {
				day, err := timeparse.Day(date)
				if err != nil {
					return err
				}
				input.Date = day
			}
			if len(lifts) > 0 || cmd.Flags().Changed("workout-week") || cmd.Flags().Changed("workout-day") {
				workout := &journaldto.WorkoutInput{Week: workoutWeek, Day: workoutDay, Lifts: map[string]string{}}
				for _, entry := range lifts {
					name, shorthand, ok := strings.Cut(entry, "=")
					if !ok {
						return fmt.Errorf("--lift must look like squat=135x5,185x5, got %q", entry)
					}
					workout.Lifts[name] = shorthand
				}
				input.Workout = workout
			}
			if cardioSpec != "" {
				cardio, err := parseCardio(cardioSpec)
				if err != nil {
					return err
				}
				input.Cardio = cardio
			}
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Record(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "check-in recorded for %s\n", out.Timestamp.Format("2006-01-02"))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "backfill date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&wake, "wake", "", "wake up time (HH:MM)")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "hours of sleep")
	cmd.Flags().Float64Var(&protein, "protein", 0, "protein (g)")
	cmd.Flags().Float64Var(&calories, "calories", 0, "calories")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "carbs (g)")
	cmd.Flags().Float64Var(&fats, "fats", 0, "fats (g)")
	cmd.Flags().Float64Var(&fiber, "fiber", 0, "fiber (g)")
	cmd.Flags().Float64Var(&steps, "steps", 0, "steps")
	cmd.Flags().Float64Var(&weight, "weight", 0, "bodyweight")
	cmd.Flags().BoolVar(&cooldown, "cooldown", false, "did a cooldown")
	cmd.Flags().IntVar(&workoutWeek, "workout-week", 0, "powerlifting block week")
	cmd.Flags().IntVar(&workoutDay, "workout-day", 0, "powerlifting block day (1-7)")
	cmd.Flags().StringArrayVar(&lifts, "lift", nil, "lift sets, e.g. squat=135x5,185x5 or bench=90kgx5")
	cmd.Flags().StringVar(&cardioSpec, "cardio", "", "cardio as medium:minutes:zone, e.g. rowing:30:3")
	return cmd
}

func parseCardio(spec string) (*journaldto.CardioInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("--cardio must look like rowing:30:3, got %q", spec)
	}
	var minutes, zone int
	if _, err := fmt.Sscanf(parts[1], "%d", &minutes); err != nil {
		return nil, fmt.Errorf("cardio minutes must be a number, got %q", parts[1])
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &zone); err != nil {
		return nil, fmt.Errorf("cardio zone must be a number, got %q", parts[2])
	}
	return &journaldto.CardioInput{Medium: parts[0], DurationMinutes: minutes, Zone: zone}, nil
}

func newGoalsCmd(home *string) *cobra.Command {
	goals := &cobra.Command{
		Use:   "goals",
		Short: "Show current weekly goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Current(context.Background())
			if err != nil {
				return err
			}
			printSnapshot(cmd, out)
			return nil
		},
	}

	goals.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List every goal snapshot in effective order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			history, err := app.GoalsCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals configured, run 'toobuff init' first")
				return nil
			}
			for _, snapshot := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tworkouts=%d wake=%s cardio=%dmin protein=%.0fg calories=%d steps=%d\n",
					snapshot.EffectiveFrom.Format("2006-01-02 15:04"),
					snapshot.WorkoutsPerWeek, snapshot.WakeUpTime, snapshot.WeeklyCardioMinutes,
					snapshot.WeeklyProtein, snapshot.WeeklyCalories, snapshot.WeeklySteps)
			}
			return nil
		},
	})

	update := &cobra.Command{
		Use:   "update",
		Short: "Append a new goal snapshot; unchanged fields carry forward",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := goalsdto.SnapshotInput{}
			flagInt := func(name string, target **int) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetInt(name)
					*target = &v
				}
			}
			flagFloat := func(name string, target **float64) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetFloat64(name)
					*target = &v
				}
			}
			flagInt("workouts", &input.WorkoutsPerWeek)
			flagInt("cardio", &input.WeeklyCardioMinutes)
			flagInt("calories", &input.WeeklyCalories)
			flagInt("steps", &input.WeeklySteps)
			flagInt("cooldowns", &input.WeeklyCooldowns)
			flagFloat("sleep", &input.DailySleepHours)
			flagFloat("protein", &input.WeeklyProtein)
			flagFloat("carbs", &input.WeeklyCarbs)
			flagFloat("fats", &input.WeeklyFats)
			flagFloat("fiber", &input.WeeklyFiber)
			if cmd.Flags().Changed("wake") {
				v, _ := cmd.Flags().GetString("wake")
				if _, err := timeparse.TimeOfDay(v); err != nil {
					return err
				}
				input.WakeUpTime = &v
			}
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Update(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goals updated, effective from %s\n", out.EffectiveFrom.Format("2006-01-02 15:04"))
			return nil
		},
	}
	update.Flags().Int("workouts", 0, "workouts per week")
	update.Flags().String("wake", "", "wake up time goal (HH:MM)")
	update.Flags().Float64("sleep", 0, "daily sleep goal in hours")
	update.Flags().Int("cardio", 0, "weekly cardio minutes goal")
	update.Flags().Float64("protein", 0, "weekly average protein goal (g)")
	update.Flags().Int("calories", 0, "weekly average calorie goal")
	update.Flags().Int("steps", 0, "weekly average steps goal")
	update.Flags().Float64("carbs", 0, "weekly average carbs goal (g)")
	update.Flags().Float64("fats", 0, "weekly average fats goal (g)")
	update.Flags().Float64("fiber", 0, "weekly average fiber goal (g)")
	update.Flags().Int("cooldowns", 0, "weekly cooldown sessions goal")
	goals.AddCommand(update)

	return goals
}

func printSnapshot(cmd *cobra.Command, snapshot goalsdto.SnapshotOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "effective from: %s\n", snapshot.EffectiveFrom.Format("2006-01-02 15:04"))
	_, _ = fmt.Fprintf(w, "workouts per week: %d\n", snapshot.WorkoutsPerWeek)
	_, _ = fmt.Fprintf(w, "wake up time: %s\n", snapshot.WakeUpTime)
	if snapshot.DailySleepHours > 0 {
		_, _ = fmt.Fprintf(w, "daily sleep: %.1f h\n", snapshot.DailySleepHours)
	}
	_, _ = fmt.Fprintf(w, "weekly cardio: %d min\n", snapshot.WeeklyCardioMinutes)
	_, _ = fmt.Fprintf(w, "weekly avg protein: %.0f g\n", snapshot.WeeklyProtein)
	_, _ = fmt.Fprintf(w, "weekly avg calories: %d\n", snapshot.WeeklyCalories)
	_, _ = fmt.Fprintf(w, "weekly avg steps: %d\n", snapshot.WeeklySteps)
	if snapshot.WeeklyCarbs > 0 {
		_, _ = fmt.Fprintf(w, "weekly avg carbs: %.0f g\n", snapshot.WeeklyCarbs)
	}
	if snapshot.WeeklyFats > 0 {
		_, _ = fmt.Fprintf(w, "weekly avg fats: %.0f g\n", snapshot.WeeklyFats)
	}
	if snapshot.WeeklyFiber > 0 {
		_, _ = fmt.Fprintf(w, "weekly avg fiber: %.0f g\n", snapshot.WeeklyFiber)
	}
	if snapshot.WeeklyCooldowns > 0 {
		_, _ = fmt.Fprintf(w, "weekly cooldowns: %d\n", snapshot.WeeklyCooldowns)
	}
}

func newDataCmd(home *string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Summarize everything recorded so far",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*home)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			overview, err := app.ReportCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "days recorded: %d\n", overview.DaysRecorded)
			if overview.AvgSleep != nil {
				_, _ = fmt.Fprintf(w, "average sleep: %.2f hours\n", *overview.AvgSleep)
			}
			if overview.AvgWorkoutsPerWeek != nil {
				_, _ = fmt.Fprintf(w, "average workouts per week: %.2f\n", *overview.AvgWorkoutsPerWeek)
			}
			if overview.AvgWakeTime != "" {
				_, _ = fmt.Fprintf(w, "average wake time: %s\n", overview.AvgWakeTime)
			}
			if overview.WakeTotal > 0 {
				rate := float64(overview.WakeAdherent) / float64(overview.WakeTotal) * 100
				_, _ = fmt.Fprintf(w, "wake up adherence: %d/%d days (%.1f%%)\n", overview.WakeAdherent, overview.WakeTotal, rate)
			}

			weeks, err := app.ReportCLI.Weekly(context.Background())
			if err != nil {
				return err
			}
			for _, week := range weeks {
				_, _ = fmt.Fprintf(w, "\n%d week %d: %s -> %s\n", week.Year, week.Week,
					week.Start.Format("Jan 2"), week.End.Format("Jan 2"))
				s := week.Summary
				if s.AvgSleep != nil {
					_, _ = fmt.Fprintf(w, "  average sleep: %.2f hours\n", *s.AvgSleep)
				}
				if s.AvgProtein != nil {
					_, _ = fmt.Fprintf(w, "  average protein: %.1f g\n", *s.AvgProtein)
				}
				if s.AvgCalories != nil {
					_, _ = fmt.Fprintf(w, "  average calories: %.0f\n", *s.AvgCalories)
				}
				_, _ = fmt.Fprintf(w, "  total cardio: %d minutes\n", s.CardioTotalMinutes)
				if s.AvgSteps != nil {
					_, _ = fmt.Fprintf(w, "  average steps: %.0f\n", *s.AvgSteps)
				}
				if s.WakeTotal > 0 {
					rate := float64(s.WakeAdherent) / float64(s.WakeTotal) * 100
					_, _ = fmt.Fprintf(w, "  wake up adherence: %d/%d (%.1f%%)\n", s.WakeAdherent, s.WakeTotal, rate)
				}
			}
			if verbose {
				_, _ = fmt.Fprintf(w, "\ndata file: %s\ndata directory: %s\n", cfg.DataPath, cfg.Home)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show data file locations")
	return cmd
}

func newReportCmd(home *string) *cobra.Command {
	var weekID string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Weekly scorecards graded against the goals effective at the time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			var weeks []reportdto.WeekReport
			if weekID != "" {
				week, err := app.ReportCLI.Week(context.Background(), weekID)
				if err != nil {
					return err
				}
				weeks = []reportdto.WeekReport{week}
			} else {
				weeks, err = app.ReportCLI.Weekly(context.Background())
				if err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for _, week := range weeks {
				printWeekReport(w, week)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&weekID, "week", "", "single week to report, e.g. 2026-W03")
	return cmd
}

func printWeekReport(w io.Writer, week reportdto.WeekReport) {
	label := week.Grade
	switch {
	case week.InProgress:
		label = "in progress"
	case week.Score == nil:
		label = "no data"
	}
	_, _ = fmt.Fprintf(w, "\n%s (%s -> %s)", week.WeekID, week.Start.Format("Jan 2"), week.End.Format("Jan 2"))
	if week.Score != nil && !week.InProgress {
		_, _ = fmt.Fprintf(w, "  %.1f%%  %s\n", *week.Score, label)
	} else {
		_, _ = fmt.Fprintf(w, "  %s\n", label)
	}
	for _, eval := range week.Evaluations {
		if eval.Met == nil {
			continue
		}
		mark := "miss"
		if *eval.Met {
			mark = "met"
		}
		if eval.Actual != nil {
			_, _ = fmt.Fprintf(w, "  %-10s %-4s goal=%.6g actual=%.6g\n", eval.Metric, mark, eval.Goal, *eval.Actual)
		} else {
			_, _ = fmt.Fprintf(w, "  %-10s %-4s goal=%.6g\n", eval.Metric, mark, eval.Goal)
		}
	}
}

func newExportCmd(home *string) *cobra.Command {
	var weekID string
	var toClipboard bool
	cmd := &cobra.Command{
		Use:   "export --week <id>",
		Short: "Spreadsheet rows of raw daily values for one week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(weekID) == "" {
				return fmt.Errorf("--week is required")
			}
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Export(context.Background(), weekID, toClipboard)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Text)
			if out.Copied {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&weekID, "week", "", "week id, e.g. 2026-W03")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy rows to the clipboard")
	return cmd
}

func newReindexCmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite read model from the journal log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newDatafileCmd(home *string) *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "datafile",
		Short: "Print data file locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*home)
			if err != nil {
				return err
			}
			paths, err := app.JournalCLI.Paths(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "data file: %s\ndata directory: %s\n", paths.DataFile, paths.DataDir)
			if open {
				return app.JournalCLI.OpenDataDir(context.Background())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "open the data directory in the file manager")
	return cmd
}

func newTUICmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the toobuff terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*home)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg.Home, app)
		},
	}
}

