package checkin

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	journaldto "toobuff/internal/modules/journal/dto"
	"toobuff/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type JournalPort interface {
	Record(ctx context.Context, input journaldto.RecordInput) (journaldto.CheckinOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordedMsg struct {
	Out journaldto.CheckinOutput
	Err error
}

// ─── form fields ─────────────────────────────────────────────────────────────

type fieldID int

const (
	fieldWake fieldID = iota
	fieldSleep
	fieldProtein
	fieldCalories
	fieldCarbs
	fieldFats
	fieldFiber
	fieldSteps
	fieldWeight
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"wake up time (HH:MM)", "sleep hours", "protein (g)", "calories",
	"carbs (g)", "fats (g)", "fiber (g)", "steps", "bodyweight",
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is a plain vertical form: one text input per metric, enter on the
// last field submits. Empty fields record nothing.
type Model struct {
	port    JournalPort
	inputs  [fieldCount]textinput.Model
	focused fieldID
	status  string
	width   int
	height  int
}

func New(port JournalPort) Model {
	m := Model{port: port}
	for i := range m.inputs {
		input := textinput.New()
		input.Prompt = "> "
		input.CharLimit = 16
		input.Width = 20
		m.inputs[i] = input
	}
	m.inputs[fieldWake].Placeholder = "06:30"
	m.inputs[fieldWake].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RecordedMsg:
		if msg.Err != nil {
			m.status = "check-in failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = "check-in recorded for " + msg.Out.Timestamp.Format("2006-01-02")
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.focused == fieldCount-1 {
				return m, m.submitCmd()
			}
			m.focusNext()
			return m, nil
		case "down":
			m.focusNext()
			return m, nil
		case "up":
			m.focusPrev()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) focusNext() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + 1) % fieldCount
	m.inputs[m.focused].Focus()
}

func (m *Model) focusPrev() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused - 1 + fieldCount) % fieldCount
	m.inputs[m.focused].Focus()
}

func (m Model) submitCmd() tea.Cmd {
	input := journaldto.RecordInput{
		WakeUpTime: strings.TrimSpace(m.inputs[fieldWake].Value()),
		SleepHours: floatValue(m.inputs[fieldSleep].Value()),
		Protein:    floatValue(m.inputs[fieldProtein].Value()),
		Calories:   floatValue(m.inputs[fieldCalories].Value()),
		Carbs:      floatValue(m.inputs[fieldCarbs].Value()),
		Fats:       floatValue(m.inputs[fieldFats].Value()),
		Fiber:      floatValue(m.inputs[fieldFiber].Value()),
		Steps:      floatValue(m.inputs[fieldSteps].Value()),
		Weight:     floatValue(m.inputs[fieldWeight].Value()),
	}
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return RecordedMsg{}
		}
		out, err := port.Record(context.Background(), input)
		return RecordedMsg{Out: out, Err: err}
	}
}

func floatValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Daily check-in"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		label := fieldLabels[i]
		if fieldID(i) == m.focused {
			b.WriteString(theme.Hot.Render(label))
		} else {
			b.WriteString(theme.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("enter on the last field submits; empty fields are skipped"))
	if m.status != "" {
		b.WriteString("\n" + theme.Title.Render(m.status))
	}
	return b.String()
}
