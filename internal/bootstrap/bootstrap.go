package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	goalsinadapter "toobuff/internal/modules/goals/adapter/in"
	goalsoutadapter "toobuff/internal/modules/goals/adapter/out"
	goalsservice "toobuff/internal/modules/goals/service"
	goalsusecase "toobuff/internal/modules/goals/usecase"
	journalinadapter "toobuff/internal/modules/journal/adapter/in"
	journaloutadapter "toobuff/internal/modules/journal/adapter/out"
	journalservice "toobuff/internal/modules/journal/service"
	journalusecase "toobuff/internal/modules/journal/usecase"
	reportinadapter "toobuff/internal/modules/report/adapter/in"
	reportoutadapter "toobuff/internal/modules/report/adapter/out"
	reportservice "toobuff/internal/modules/report/service"
	reportusecase "toobuff/internal/modules/report/usecase"
	"toobuff/internal/platform/clock"
	"toobuff/internal/platform/config"
	"toobuff/internal/platform/id"
	uiapp "toobuff/internal/ui/app"
)

type App struct {
	JournalCLI journalinadapter.CLIHandler
	GoalsCLI   goalsinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	goalStore := goalsoutadapter.NewFileSnapshotStore(cfg.GoalsDir)
	goalsUC := goalsusecase.NewInteractor(goalsservice.NewGoalService(clk, goalStore))

	journalStore := journaloutadapter.NewFileJournalStore(cfg.DataPath)
	projector, err := journaloutadapter.NewSQLiteMetricsProjector(cfg.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("new metrics projector: %w", err)
	}
	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, ids, journalStore, projector),
		cfg.DataPath,
		cfg.Home,
		journaloutadapter.NewOSDirLauncher(),
	)

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(
			clk,
			reportoutadapter.NewJournalSourceAdapter(journalUC),
			reportoutadapter.NewGoalSourceAdapter(goalsUC),
		),
		reportoutadapter.NewSystemClipboard(),
	)

	return &App{
		JournalCLI: journalinadapter.NewCLIHandler(journalUC),
		GoalsCLI:   goalsinadapter.NewCLIHandler(goalsUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

func RunTUI(home string, app *App) error {
	model := uiapp.NewModel(home, app.ReportCLI, app.JournalCLI, app.GoalsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
