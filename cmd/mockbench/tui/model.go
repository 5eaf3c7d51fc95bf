package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

var (
	cmdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66ff"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	logStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// maxHistory bounds the scrollback.
const maxHistory = 2000

type logMsg string

type entryMsg types.JournalEntry

type Model struct {
	backend   Backend
	session   Session
	logs      <-chan string
	entries   <-chan types.JournalEntry
	journal   []types.JournalEntry
	viewport  viewport.Model
	textInput textinput.Model
	history   []string
	pending   int
	ready     bool
}

// NewModel builds the console. logs and entries may be nil; when set they
// feed the scrollback and the /perf summary.
func NewModel(b Backend, s Session, logs <-chan string, entries <-chan types.JournalEntry) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command... (/help)"
	ti.Focus()
	ti.Width = 80

	return Model{
		backend:   b,
		session:   s,
		logs:      logs,
		entries:   entries,
		textInput: ti,
		history:   []string{},
	}
}

func waitForLog(ch <-chan string) bubbletea.Cmd {
	if ch == nil {
		return nil
	}
	return func() bubbletea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(s)
	}
}

func waitForEntry(ch <-chan types.JournalEntry) bubbletea.Cmd {
	if ch == nil {
		return nil
	}
	return func() bubbletea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return entryMsg(e)
	}
}

func (m Model) Init() bubbletea.Cmd {
	return bubbletea.Batch(textinput.Blink, waitForLog(m.logs), waitForEntry(m.entries))
}

func (m *Model) appendHistory(lines ...string) {
	m.history = append(m.history, lines...)
	if over := len(m.history) - maxHistory; over > 0 {
		m.history = m.history[over:]
	}
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var (
		cmd  bubbletea.Cmd
		cmds []bubbletea.Cmd
	)

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		switch msg.Type {
		case bubbletea.KeyEnter:
			input := m.textInput.Value()
			m.textInput.Reset()

			parts := strings.Fields(input)
			if len(parts) == 0 {
				return m, nil
			}
			command, args := parts[0], parts[1:]
			m.appendHistory(cmdStyle.Render(input))

			switch command {
			case "/help":
				m.appendHistory(helpText)
			case "/perf":
				m.appendHistory(renderPerf(m.journal)...)
			default:
				run, ok := dispatch(m.backend, m.session, command, args)
				if !ok {
					m.appendHistory(errStyle.Render("unknown command or missing argument, try /help"))
					break
				}
				m.pending++
				cmds = append(cmds, run)
			}
		case bubbletea.KeyCtrlC, bubbletea.KeyEsc:
			return m, bubbletea.Quit
		}
	case resultMsg:
		m.pending--
		if msg.err != nil {
			m.appendHistory(errStyle.Render(fmt.Sprintf("%s failed: %v", msg.command, msg.err)))
		} else {
			m.appendHistory(msg.lines...)
		}
	case logMsg:
		m.appendHistory(logStyle.Render(strings.TrimRight(string(msg), "\n")))
		cmds = append(cmds, waitForLog(m.logs))
	case entryMsg:
		m.journal = append(m.journal, types.JournalEntry(msg))
		cmds = append(cmds, waitForEntry(m.entries))
	case bubbletea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		viewportHeight := max(msg.Height-headerHeight-footerHeight-1, 5)

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(strings.Join(m.history, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.textInput.Width = msg.Width - 4
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, bubbletea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	title := fmt.Sprintf("Table Bench Mock  seed=%d size=%d cols=%d mode=%s  calls=%d",
		m.session.Seed, m.session.Size, m.session.ColumnSize, m.session.Mode, len(m.journal))
	if m.pending > 0 {
		title += fmt.Sprintf("  (%d in flight)", m.pending)
	}
	return style.Render(title)
}

func (m Model) footerView() string {
	return m.textInput.View()
}
