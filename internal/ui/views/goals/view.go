package goals

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	goalsdto "toobuff/internal/modules/goals/dto"
	"toobuff/internal/ui/theme"
)

type GoalsPort interface {
	Current(ctx context.Context) (goalsdto.SnapshotOutput, error)
	History(ctx context.Context) ([]goalsdto.SnapshotOutput, error)
}

type LoadedMsg struct {
	Current goalsdto.SnapshotOutput
	History []goalsdto.SnapshotOutput
	Err     error
}

// Model is a read-only pane showing the active goal set and every prior
// version. Edits go through the CLI; the pane refreshes on r.
type Model struct {
	port    GoalsPort
	current goalsdto.SnapshotOutput
	history []goalsdto.SnapshotOutput
	err     error
	loaded  bool
	width   int
	height  int
}

func New(port GoalsPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return LoadedMsg{}
		}
		current, err := port.Current(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		history, err := port.History(context.Background())
		return LoadedMsg{Current: current, History: history, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.current = msg.Current
		m.history = msg.History
		m.err = msg.Err
		m.loaded = true
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Goals"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(theme.Muted.Render("loading..."))
	case m.err != nil:
		b.WriteString(theme.Bad.Render(m.err.Error()))
	default:
		b.WriteString(renderSnapshot(m.current))
		if len(m.history) > 1 {
			b.WriteString("\n")
			b.WriteString(theme.Title.Render("History"))
			b.WriteString("\n")
			for i := len(m.history) - 1; i >= 0; i-- {
				b.WriteString(theme.Muted.Render("  since " + m.history[i].EffectiveFrom.Format("2006-01-02")))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("r refresh · goals update via CLI"))
	}
	return b.String()
}

func renderSnapshot(s goalsdto.SnapshotOutput) string {
	var b strings.Builder
	line := func(label string, value string, set bool) {
		if !set {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("  %-18s %s\n", theme.Muted.Render(label), value))
	}
	line("workouts/week", fmt.Sprintf("%d", s.WorkoutsPerWeek), s.WorkoutsPerWeek != 0)
	line("wake up", s.WakeUpTime, s.WakeUpTime != "")
	line("sleep hours", fmt.Sprintf("%.1f", s.DailySleepHours), s.DailySleepHours != 0)
	line("cardio min/week", fmt.Sprintf("%d", s.WeeklyCardioMinutes), s.WeeklyCardioMinutes != 0)
	line("protein avg", fmt.Sprintf("%.0f", s.WeeklyProtein), s.WeeklyProtein != 0)
	line("calories avg", fmt.Sprintf("%d", s.WeeklyCalories), s.WeeklyCalories != 0)
	line("steps avg", fmt.Sprintf("%d", s.WeeklySteps), s.WeeklySteps != 0)
	line("carbs avg", fmt.Sprintf("%.0f", s.WeeklyCarbs), s.WeeklyCarbs != 0)
	line("fats avg", fmt.Sprintf("%.0f", s.WeeklyFats), s.WeeklyFats != 0)
	line("fiber avg", fmt.Sprintf("%.0f", s.WeeklyFiber), s.WeeklyFiber != 0)
	line("cooldowns/week", fmt.Sprintf("%d", s.WeeklyCooldowns), s.WeeklyCooldowns != 0)
	return b.String()
}
