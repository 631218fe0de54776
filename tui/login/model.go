// Package login renders the instance/username/password form and drives the
// session controller. Credentials may come pre-filled from the environment
// but are never submitted automatically.
package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lemterm/lemterm/tui/common"
	"github.com/lemterm/lemterm/tui/focus"
	"github.com/lemterm/lemterm/tui/session"
)

const (
	fieldInstance = iota
	fieldUsername
	fieldPassword
	fieldCount
)

// Prefill carries the environment-provided initial field values.
type Prefill struct {
	Instance string
	Username string
	Password string
}

// ResultMsg is emitted when a login attempt finishes.
type ResultMsg struct {
	Session session.Session
	Err     error
}

// Model is the login form.
type Model struct {
	ctrl   *session.Controller
	inputs []textinput.Model
	ring   *focus.Tree
	fields *focus.Node
	status string
	failed bool
	busy   bool
	theme  common.Theme
}

// New creates the form with pre-filled (never auto-submitted) values.
func New(ctrl *session.Controller, theme common.Theme, pre Prefill) Model {
	mk := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = 256
		in.Width = 40
		return in
	}
	inputs := []textinput.Model{
		mk("Instance URL", pre.Instance),
		mk("Username", pre.Username),
		mk("Password", pre.Password),
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword

	fields := focus.NewNode("login",
		focus.NewNode("instance"),
		focus.NewNode("username"),
		focus.NewNode("password"),
	)

	// The ring's selection drives which input accepts keystrokes. The
	// inputs slice is shared across model copies, so the observer's
	// mutations are visible to every copy.
	fields.OnSelectionChange(func(old, new int) {
		inputs[old].Blur()
		inputs[new].Focus()
	})
	inputs[fieldInstance].Focus()

	return Model{
		ctrl:   ctrl,
		inputs: inputs,
		ring:   focus.NewTree(fields),
		fields: fields,
		theme:  theme,
	}
}

// Init is a no-op; the form waits for input.
func (m Model) Init() tea.Cmd { return nil }

// SetTheme swaps the palette.
func (m Model) SetTheme(theme common.Theme) Model {
	m.theme = theme
	return m
}

// Update handles messages for the login form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.failed = true
			m.status = msg.Err.Error()
			return m, nil
		}
		m.failed = false
		m.status = "Connected to " + msg.Session.Endpoint
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		// j/k stay typable here; only dedicated keys move between fields.
		switch msg.String() {
		case "enter":
			// Submitting a field moves to the next one; submitting the
			// last field attempts the login.
			if m.fields.Selection() < fieldCount-1 {
				m.ring.Move(focus.Next)
				return m, nil
			}
			return m.submit()

		case "tab", "down":
			m.ring.Move(focus.Next)
			return m, nil

		case "shift+tab", "up":
			m.ring.Move(focus.Previous)
			return m, nil
		}
	}

	var cmd tea.Cmd
	active := m.fields.Selection()
	m.inputs[active], cmd = m.inputs[active].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	endpoint := strings.TrimSpace(m.inputs[fieldInstance].Value())
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	m.busy = true
	m.failed = false
	m.status = "Connecting..."

	ctrl := m.ctrl
	return m, func() tea.Msg {
		sess, err := ctrl.Login(context.Background(), endpoint, username, password)
		return ResultMsg{Session: sess, Err: err}
	}
}

// Busy reports whether a login attempt is in flight.
func (m Model) Busy() bool { return m.busy }

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("lemterm"))
	b.WriteString(m.theme.Tagline.Render("browse the fediverse without leaving the terminal"))
	b.WriteString("\n\n")

	labels := []string{"Instance", "Username", "Password"}
	for i, in := range m.inputs {
		b.WriteString("  " + m.theme.Label.Render(labels[i]) + "\n")
		b.WriteString("  " + in.View() + "\n\n")
	}

	if m.status != "" {
		style := m.theme.Success
		if m.failed {
			style = m.theme.Error
		}
		b.WriteString("  " + style.Render(m.status) + "\n")
	}

	b.WriteString(m.theme.StatusBar.Render("  enter: next/submit • tab: move • empty credentials browse anonymously"))
	return b.String()
}
