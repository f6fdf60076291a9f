// Package ui implements the interactive calculator as a Bubble Tea
// program: a prompt with input history on top of a scrollback of
// evaluated commands and stack snapshots.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rpncalc/internal/config"
	"rpncalc/internal/driver"
	"rpncalc/internal/eval"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// scrollbackLimit caps the remembered output lines.
const scrollbackLimit = 500

// Model is the REPL state. Create it with New and hand it to
// tea.NewProgram; after Run the session and history carry the final
// state for persistence.
type Model struct {
	session *driver.Session
	input   textinput.Model
	cfg     config.Config

	// История ввода: history[len-1] — последняя команда.
	history []string
	histPos int    // указатель при листании, len(history) == "не листаем"
	draft   string // незаконченный ввод, отложенный на время листания

	scrollback []string
	width      int
	done       bool
}

// New builds the REPL model around an existing session. history seeds
// the input history (e.g. from a persisted session).
func New(sess *driver.Session, cfg config.Config, history []string) *Model {
	in := textinput.New()
	in.Prompt = promptStyle.Render(cfg.REPL.Prompt)
	in.Placeholder = "postfix expression, or: pop clear quit"
	in.ShowSuggestions = true
	in.SetSuggestions(append(eval.Names(),
		driver.CmdPop, driver.CmdClear, driver.CmdQuit, driver.CmdExit))
	in.Focus()

	return &Model{
		session: sess,
		input:   in,
		cfg:     cfg,
		history: history,
		histPos: len(history),
		width:   80,
	}
}

// Session returns the underlying session (for persistence after Run).
func (m *Model) Session() *driver.Session { return m.session }

// History returns the accumulated input history.
func (m *Model) History() []string { return m.history }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.historyBack()
			return m, nil
		case tea.KeyDown:
			m.historyForward()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.histPos = len(m.history)
	m.draft = ""
	if line == "" {
		return m, nil
	}
	m.remember(line)

	m.echo(echoStyle, m.cfg.REPL.Prompt+line)
	done, err := m.session.Exec(line)
	if done {
		m.done = true
		return m, tea.Quit
	}
	if err != nil {
		// Жёсткие условия печатаем и продолжаем; стек сессия не тронула.
		m.echo(errStyle, "Error: "+err.Error())
	}
	for _, l := range m.session.Lines(m.cfg.Display.Precision) {
		m.echo(stackStyle, l)
	}
	m.histPos = len(m.history)
	return m, nil
}

func (m *Model) remember(line string) {
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		return
	}
	m.history = append(m.history, line)
	if limit := m.cfg.REPL.HistoryLimit; limit > 0 && len(m.history) > limit {
		m.history = m.history[len(m.history)-limit:]
	}
}

func (m *Model) historyBack() {
	if len(m.history) == 0 || m.histPos == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos--
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *Model) historyForward() {
	if m.histPos >= len(m.history) {
		return
	}
	m.histPos++
	if m.histPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
}

// echo appends one rendered line to the scrollback. Truncation happens
// on the raw text, before styling, so ANSI escapes stay intact.
func (m *Model) echo(style lipgloss.Style, line string) {
	line = runewidth.Truncate(line, max(m.width-1, 20), "…")
	m.scrollback = append(m.scrollback, style.Render(line))
	if len(m.scrollback) > scrollbackLimit {
		m.scrollback = m.scrollback[len(m.scrollback)-scrollbackLimit:]
	}
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	for _, line := range m.scrollback {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: evaluate · up/down: history · ctrl+d: quit"))
	b.WriteString("\n")
	return b.String()
}
