// Package tui is the full-screen terminal rendition of the mood widget.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/notify"
	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/session"
	"tableflip.dev/moods/pkg/view"
)

const (
	promptText = "Would you like a daily reminder to log your mood?"
	helpMoods  = "←/→ move • enter pick • 1-6 pick • tab note • ctrl+s save • pgup/pgdn history • q quit"
	helpNote   = "type a note • tab/esc moods • ctrl+s save • ctrl+c quit"
	helpPrompt = "r remind me daily • x not now"
)

type focus int

const (
	focusMoods focus = iota
	focusNote
)

type notificationMsg notify.Notification

// Model is the widget page.
type Model struct {
	ctx      context.Context
	session  *session.Session
	notifier *Notifier
	surface  *printers.TerminalSurface
	styles   styles

	moods  []mood.Mood
	cursor int
	focus  focus

	note    textarea.Model
	history viewport.Model

	page   view.Page
	banner *notify.Notification
	err    error

	width  int
	height int
}

// New builds the page for an open session. notifier may be nil when
// reminders are not delivered to the program.
func New(ctx context.Context, s *session.Session, notifier *Notifier) *Model {
	ta := textarea.New()
	ta.Placeholder = "Add a note about your day (optional)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(60)
	ta.SetHeight(3)

	m := &Model{
		ctx:      ctx,
		session:  s,
		notifier: notifier,
		surface:  printers.NewTerminalSurface(),
		styles:   defaultStyles(),
		moods:    mood.All(),
		note:     ta,
		history:  viewport.New(60, 8),
	}
	if today, ok := s.Today(); ok {
		m.cursor = max(0, today.Mood.Ordinal())
		m.note.SetValue(today.Note)
	} else if last, ok := s.LastMood(); ok {
		m.cursor = max(0, last.Ordinal())
	}
	s.ShowChart(m.surface)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForNotification())
}

func (m *Model) waitForNotification() tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	ch := m.notifier.Notifications()
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(n)
	}
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case notificationMsg:
		n := notify.Notification(msg)
		m.banner = &n
		return m, m.waitForNotification()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.focus == focusNote {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.banner = nil
	switch key := msg.String(); key {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+s":
		m.save()
		return nil
	case "tab", "shift+tab":
		return m.toggleFocus()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		m.session.Scroll(m.history.YOffset)
		return cmd
	}

	if m.focus == focusNote {
		if msg.String() == "esc" {
			return m.toggleFocus()
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return cmd
	}

	switch key := msg.String(); key {
	case "q", "esc":
		return tea.Quit
	case "left", "h":
		m.cursor = (m.cursor + len(m.moods) - 1) % len(m.moods)
	case "right", "l":
		m.cursor = (m.cursor + 1) % len(m.moods)
	case "enter", " ":
		m.pick(m.moods[m.cursor])
	case "1", "2", "3", "4", "5", "6":
		if v, err := mood.Parse(key); err == nil {
			m.cursor = v.Ordinal()
			m.pick(v)
		}
	case "r":
		if m.page.ShowPrompt {
			m.err = m.session.EnableNotifications(m.ctx)
			m.refresh()
		}
	case "x":
		if m.page.ShowPrompt {
			m.session.DismissPrompt()
			m.refresh()
		}
	}
	return nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusMoods {
		m.focus = focusNote
		return m.note.Focus()
	}
	m.focus = focusMoods
	m.note.Blur()
	return nil
}

func (m *Model) pick(v mood.Mood) {
	m.err = m.session.Select(v)
	m.refresh()
}

func (m *Model) save() {
	_, err := m.session.Save(m.note.Value())
	if err == nil {
		m.note.Reset()
		m.err = nil
	}
	m.refresh()
}

// refresh re-reads the page. Alerts are delivered once, so the last one is
// kept until the next action.
func (m *Model) refresh() {
	m.page = m.session.View()

	var buf bytes.Buffer
	pp := printers.PrettyPrint{Out: &buf}
	pp.History(m.page.History)
	m.history.SetContent(strings.TrimRight(buf.String(), "\n"))
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	inner := max(20, width-4)
	m.note.SetWidth(inner)
	m.history.Width = inner
	// title, date, alert, moods, note box, chart and help take the rest
	m.history.Height = max(3, height-26)
}

// View renders the page.
func (m *Model) View() string {
	s := m.styles
	var sections []string

	sections = append(sections,
		s.Title.Render("Nature's Mood Diary"),
		s.Date.Render(m.page.DateHeader),
	)
	if m.banner != nil {
		sections = append(sections, s.Banner.Render(fmt.Sprintf("🌿 %s\n%s", m.banner.Title, m.banner.Body)))
	}
	if line := m.alertLine(); line != "" {
		sections = append(sections, line)
	}
	if m.page.ShowPrompt {
		sections = append(sections, s.Prompt.Render(promptText)+"  "+s.Help.Render(helpPrompt))
	}

	sections = append(sections, "", s.Header.Render("How is your weather today?"), m.moodRow())

	box := s.Blurred
	if m.focus == focusNote {
		box = s.Focused
	}
	sections = append(sections, box.Render(m.note.View()))

	sections = append(sections, "", s.Header.Render(view.TrendTitle))
	if m.surface.Drawn() == 0 {
		sections = append(sections, s.Help.Render("Log a mood to start the trend."))
	} else {
		sections = append(sections, m.surface.Render())
	}

	sections = append(sections, "", m.history.View())

	help := helpMoods
	if m.focus == focusNote {
		help = helpNote
	}
	sections = append(sections, "", s.Help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) alertLine() string {
	if m.err != nil {
		return m.styles.Warning.Render(m.err.Error())
	}
	a := m.page.Alert
	if a == nil {
		return ""
	}
	switch a.Kind {
	case view.AlertSuccess:
		return m.styles.Success.Render(a.Message)
	case view.AlertWarning:
		return m.styles.Warning.Render(a.Message)
	default:
		return m.styles.Info.Render(a.Message)
	}
}

func (m *Model) moodRow() string {
	cells := make([]string, 0, len(m.page.Options))
	for i, o := range m.page.Options {
		label := o.Emoji + " " + o.Title
		switch {
		case o.Active:
			cells = append(cells, m.styles.Active.Render(label))
		case i == m.cursor && m.focus == focusMoods:
			cells = append(cells, m.styles.Cursor.Render(label))
		default:
			cells = append(cells, m.styles.Mood.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
