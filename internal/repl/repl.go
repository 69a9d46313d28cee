// Package repl implements the interactive session: a Bubble Tea program
// with a scrollback viewport and a single input line that accepts the
// textual command language.
package repl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avolkov/primdb/internal/command"
	"github.com/avolkov/primdb/internal/engine"
	"github.com/avolkov/primdb/internal/parser"
)

var (
	echoStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	elapsedStyle = lipgloss.NewStyle().Faint(true)
)

// elapsedThreshold is the execution time above which the REPL reports how
// long a command took.
const elapsedThreshold = 10 * time.Millisecond

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	db    *engine.Database
	input textinput.Model
	vp    viewport.Model

	lines []string

	// pending holds a destructive command awaiting y/n
	pending command.Command

	// input history for up/down navigation
	history []string
	histIdx int

	width  int
	height int
	ready  bool
}

// New constructs the REPL model over db.
func New(db *engine.Database) *Model {
	ti := textinput.New()
	ti.Prompt = "primdb> "
	ti.Focus()

	m := &Model{
		db:      db,
		input:   ti,
		vp:      viewport.New(80, 20),
		histIdx: -1,
	}
	m.appendLine("primdb interactive session")
	m.appendLine("type 'help' for the command reference, 'exit' to leave")
	return m
}

// Run starts the interactive session and blocks until it ends.
func Run(db *engine.Database) error {
	_, err := tea.NewProgram(New(db)).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		if h := msg.Height - 2; h > 0 {
			m.vp.Height = h
		}
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit(strings.TrimSpace(m.input.Value()))
		case tea.KeyUp:
			m.historyPrev()
			return m, nil
		case tea.KeyDown:
			m.historyNext()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}
	return m.vp.View() + "\n" + m.input.View()
}

// submit handles one entered line: a pending y/n answer or a new command.
func (m *Model) submit(line string) tea.Cmd {
	m.input.SetValue("")
	m.appendLine(echoStyle.Render("primdb> " + line))

	if m.pending != nil {
		pending := m.pending
		m.pending = nil
		switch strings.ToLower(line) {
		case "y", "yes":
			return m.apply(pending)
		default:
			m.appendLine("aborted")
			return nil
		}
	}

	if line == "" {
		return nil
	}
	m.pushHistory(line)

	cmd, err := parser.Parse(line)
	if err != nil {
		m.appendLine(errorStyle.Render(err.Error()))
		return nil
	}
	if cmd == nil {
		return nil
	}
	if cf, ok := cmd.(command.Confirmable); ok {
		if prompt := cf.ConfirmPrompt(); prompt != "" {
			m.pending = cmd
			m.appendLine(confirmStyle.Render(prompt + " [y/N]"))
			return nil
		}
	}
	return m.apply(cmd)
}

func (m *Model) apply(cmd command.Command) tea.Cmd {
	res, err := command.Apply(m.db, cmd)
	if err != nil {
		if errors.Is(err, command.ErrExit) {
			m.appendLine("bye")
			return tea.Quit
		}
		m.appendLine(errorStyle.Render("error: " + err.Error()))
		return nil
	}
	msg := res.Message
	if res.Elapsed > elapsedThreshold {
		msg += elapsedStyle.Render(fmt.Sprintf(" (%.3fs)", res.Elapsed.Seconds()))
	}
	m.appendLine(msg)
	return nil
}

func (m *Model) appendLine(s string) {
	m.lines = append(m.lines, s)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m *Model) pushHistory(line string) {
	m.history = append(m.history, line)
	m.histIdx = len(m.history)
}

func (m *Model) historyPrev() {
	if len(m.history) == 0 || m.histIdx <= 0 {
		if len(m.history) > 0 && m.histIdx == 0 {
			m.input.SetValue(m.history[0])
			m.input.CursorEnd()
		}
		return
	}
	m.histIdx--
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

func (m *Model) historyNext() {
	if m.histIdx >= len(m.history)-1 {
		m.histIdx = len(m.history)
		m.input.SetValue("")
		return
	}
	m.histIdx++
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}
