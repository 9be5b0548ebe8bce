package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportdto "toobuff/internal/modules/report/dto"
	"toobuff/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ReportPort interface {
	Weekly(ctx context.Context) ([]reportdto.WeekReport, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type WeeksLoadedMsg struct {
	Weeks []reportdto.WeekReport
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type weekItem struct {
	week reportdto.WeekReport
}

func (i weekItem) Title() string { return i.week.WeekID }

func (i weekItem) Description() string {
	switch {
	case i.week.InProgress:
		return "in progress"
	case i.week.Score == nil:
		return "no data"
	default:
		return fmt.Sprintf("%.1f%%  %s", *i.week.Score, i.week.Grade)
	}
}

func (i weekItem) FilterValue() string { return i.week.WeekID }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   ReportPort
	list   list.Model
	detail viewport.Model
	weeks  []reportdto.WeekReport
	err    error
	width  int
	height int
}

func New(port ReportPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Weeks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, list: l, detail: vp}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return WeeksLoadedMsg{}
		}
		weeks, err := m.port.Weekly(context.Background())
		return WeeksLoadedMsg{Weeks: weeks, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WeeksLoadedMsg:
		m.err = msg.Err
		m.weeks = msg.Weeks
		items := make([]list.Item, 0, len(msg.Weeks))
		// Newest week first.
		for idx := len(msg.Weeks) - 1; idx >= 0; idx-- {
			items = append(items, weekItem{week: msg.Weeks[idx]})
		}
		m.list.SetItems(items)
		m.refreshDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail()
	return m, cmd
}

func (m *Model) refreshDetail() {
	item, ok := m.list.SelectedItem().(weekItem)
	if !ok {
		m.detail.SetContent(theme.Muted.Render("no weeks recorded yet"))
		return
	}
	m.detail.SetContent(renderWeek(item.week))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	listWidth := width / 3
	m.list.SetSize(listWidth, height)
	m.detail.Width = width - listWidth - 2
	m.detail.Height = height
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Pane.Render(theme.Bad.Render(m.err.Error()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), " ", m.detail.View())
}

func renderWeek(week reportdto.WeekReport) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s: %s -> %s", week.WeekID,
		week.Start.Format("Mon Jan 2"), week.End.Format("Mon Jan 2"))))
	b.WriteString("\n\n")

	switch {
	case week.InProgress:
		b.WriteString(theme.Warn.Render("week in progress"))
	case week.Score == nil:
		b.WriteString(theme.Muted.Render("no applicable goals"))
	default:
		grade := theme.GradeStyle(week.Grade).Render(week.Grade)
		b.WriteString(fmt.Sprintf("score %.1f%%  grade %s", *week.Score, grade))
	}
	b.WriteString("\n\n")

	for _, eval := range week.Evaluations {
		if eval.Met == nil {
			continue
		}
		mark := theme.Bad.Render("✗")
		if *eval.Met {
			mark = theme.Good.Render("✓")
		}
		if eval.Actual != nil {
			b.WriteString(fmt.Sprintf("%s %-10s goal %.6g, actual %.6g\n", mark, eval.Metric, eval.Goal, *eval.Actual))
		} else {
			b.WriteString(fmt.Sprintf("%s %-10s goal %.6g\n", mark, eval.Metric, eval.Goal))
		}
	}

	s := week.Summary
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("days logged %d, workouts %d, cooldowns %d, cardio %d min",
		s.DaysLogged, s.WorkoutDays, s.CooldownDays, s.CardioTotalMinutes)))
	return b.String()
}
