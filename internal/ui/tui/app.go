package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/usecase/command"
)

type tuteeItem struct {
	pos   int
	tutee domain.Tutee
}

func (t tuteeItem) Title() string       { return fmt.Sprintf("%d. %s", t.pos, t.tutee.Name()) }
func (t tuteeItem) Description() string { return renderTuteeSummary(t.tutee) }
func (t tuteeItem) FilterValue() string { return t.tutee.Name().String() }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	tutees list.Model
	input  textinput.Model

	feedback    string
	feedbackErr bool
	showHelp    bool
	running     bool

	width  int
	height int
}

// Run starts the full-screen TUI and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Tutees"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "Enter command here..."
	in.Prompt = "> "
	in.CharLimit = 512
	in.Focus()

	m := model{
		theme:  DefaultTheme(),
		deps:   deps,
		log:    log,
		tutees: l,
		input:  in,
	}
	m.refreshTutees()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m *model) setFeedback(msg string, isErr bool) {
	m.feedback = msg
	m.feedbackErr = isErr
}

func (m *model) refreshTutees() {
	if m.deps.Logic == nil {
		return
	}
	ts := m.deps.Logic.FilteredTutees()
	items := make([]list.Item, 0, len(ts))
	for i, t := range ts {
		items = append(items, tuteeItem{pos: i + 1, tutee: t})
	}
	m.tutees.SetItems(items)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tutees.SetSize(msg.Width/2, msg.Height-10)
		m.input.Width = msg.Width - 8
		return m, nil

	case commandDoneMsg:
		m.running = false
		if msg.err != nil {
			m.setFeedback(userMessage(msg.err), true)
			return m, nil
		}
		m.input.Reset()
		m.setFeedback(msg.res.Feedback, false)
		m.refreshTutees()
		if msg.res.ShowHelp {
			m.showHelp = true
		}
		if msg.res.Exit {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}

		case "enter":
			if m.running || m.deps.Logic == nil {
				return m, nil
			}
			text := m.input.Value()
			m.running = true
			return m, cmdExecute(m.deps.Logic, text, m.log)

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.tutees, cmd = m.tutees.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) selected() (domain.Tutee, bool) {
	it, ok := m.tutees.SelectedItem().(tuteeItem)
	if !ok {
		return domain.Tutee{}, false
	}
	return it.tutee, true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Track-O") + "\n" +
		m.theme.Subtitle.Render("Tuition manager for private tutors") + "\n"

	if m.deps.WorkspaceRoot != "" {
		header += m.theme.Help.Render("Workspace: "+m.deps.WorkspaceRoot) + "\n"
	}

	if m.showHelp {
		card := m.theme.Card.Render(
			m.theme.Title.Render("Help") + "\n\n" + command.HelpText() + "\n\n" +
				m.theme.Help.Render("esc close"),
		)
		return wrap.Render(header + "\n" + card)
	}

	left := m.theme.Card.Render(m.tutees.View())

	right := "No tutee selected."
	if t, ok := m.selected(); ok {
		right = m.theme.Title.Render(t.Name().String()) + "\n\n" + renderTuteeDetails(t)
	}
	right = m.theme.Card.Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	fb := m.feedback
	if m.width > 0 {
		fb = clampString(fb, m.width-4)
	}
	if m.feedbackErr {
		fb = m.theme.Error.Render(fb)
	} else {
		fb = m.theme.Success.Render(fb)
	}

	var status string
	if m.deps.Logic != nil {
		status = m.theme.Help.Render("Data: " + m.deps.Logic.StorePath())
	}
	help := m.theme.Help.Render("enter run • ↑/↓ browse • help for commands • ctrl+c quit")

	return wrap.Render(strings.Join([]string{
		header, body, m.input.View(), fb, status, help,
	}, "\n"))
}
