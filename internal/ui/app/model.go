package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "toobuff/internal/modules/goals/dto"
	journaldto "toobuff/internal/modules/journal/dto"
	reportdto "toobuff/internal/modules/report/dto"
	"toobuff/internal/ui/components"
	"toobuff/internal/ui/theme"
	checkinview "toobuff/internal/ui/views/checkin"
	goalsview "toobuff/internal/ui/views/goals"
	reportview "toobuff/internal/ui/views/report"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type reportPort interface {
	Weekly(ctx context.Context) ([]reportdto.WeekReport, error)
	Export(ctx context.Context, weekID string, toClipboard bool) (reportdto.ExportOutput, error)
}

type journalPort interface {
	Record(ctx context.Context, input journaldto.RecordInput) (journaldto.CheckinOutput, error)
	Reindex(ctx context.Context) error
	OpenDataDir(ctx context.Context) error
}

type goalsPort interface {
	Current(ctx context.Context) (goalsdto.SnapshotOutput, error)
	History(ctx context.Context) ([]goalsdto.SnapshotOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabReport tabID = iota
	tabCheckin
	tabGoals
	tabCount
)

var tabLabels = [tabCount]string{"Report", "Check-in", "Goals"}

// ─── async messages ───────────────────────────────────────────────────────────

type reindexDoneMsg struct{ err error }

type exportDoneMsg struct {
	out reportdto.ExportOutput
	err error
}

type dirOpenedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	home string

	report  reportPort
	journal journalPort

	reportView  reportview.Model
	checkinView checkinview.Model
	goalsView   goalsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(home string, report reportPort, journal journalPort, goals goalsPort) Model {
	return Model{
		home:        home,
		report:      report,
		journal:     journal,
		reportView:  reportview.New(report),
		checkinView: checkinview.New(journal),
		goalsView:   goalsview.New(goals),
		activeTab:   tabReport,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.reportView.Init(),
		m.checkinView.Init(),
		m.goalsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = "index rebuilt"
			cmds = append(cmds, m.reportView.Init())
		}

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			m.status = "export failed: " + msg.err.Error()
		case msg.out.Copied:
			m.status = "week copied to clipboard"
		default:
			m.status = "export ready (clipboard unavailable)"
		}

	case dirOpenedMsg:
		if msg.err != nil {
			m.status = "open data dir: " + msg.err.Error()
		} else {
			m.status = "opened " + m.home
		}

	case checkinview.RecordedMsg:
		// Bubbles up so the report tab can pick up the new day.
		if msg.Err == nil {
			cmds = append(cmds, m.reportView.Init())
		}
		var cmd tea.Cmd
		m.checkinView, cmd = m.checkinView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// The check-in form owns free typing; only a few globals apply there.
		if m.activeTab == tabCheckin {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			}
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "r":
			if m.activeTab == tabReport {
				cmds = append(cmds, m.reportView.Init())
				m.status = "refreshing weeks"
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabReport:
		m.reportView, tabCmd = m.reportView.Update(msg)
	case tabCheckin:
		m.checkinView, tabCmd = m.checkinView.Update(msg)
	case tabGoals:
		m.goalsView, tabCmd = m.goalsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabReport:
		return m.reportView.View()
	case tabCheckin:
		return m.checkinView.View()
	case tabGoals:
		return m.goalsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "toobuff  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "report:refresh":
		m.activeTab = tabReport
		m.status = "refreshing weeks"
		return m, m.reportView.Init()

	case "export:week":
		if len(parts) < 2 {
			m.status = "usage: export:week <YYYY-Www>"
			return m, nil
		}
		return m, m.exportCmd(parts[1])

	case "reindex":
		m.status = "rebuilding index"
		return m, m.reindexCmd()

	case "data:open":
		return m, m.openDataDirCmd()

	case "goals:refresh":
		m.activeTab = tabGoals
		return m, m.goalsView.Init()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	w := m.width
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	m.reportView.SetSize(w, h)
	m.checkinView.SetSize(w, h)
	m.goalsView.SetSize(w, h)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		return reindexDoneMsg{err: m.journal.Reindex(context.Background())}
	}
}

func (m Model) exportCmd(weekID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Export(context.Background(), weekID, true)
		return exportDoneMsg{out: out, err: err}
	}
}

func (m Model) openDataDirCmd() tea.Cmd {
	return func() tea.Msg {
		return dirOpenedMsg{err: m.journal.OpenDataDir(context.Background())}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
