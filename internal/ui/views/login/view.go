package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "skillbridge/internal/modules/auth/dto"
	"skillbridge/internal/platform/api"
	apperrors "skillbridge/internal/platform/errors"
	"skillbridge/internal/ui/async"
	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.LoginOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type resultMsg struct {
	seq uint64
	out authdto.LoginOutput
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

type Model struct {
	port AuthPort

	inputs  [fieldCount]textinput.Model
	focus   int
	state   async.State[authdto.LoginOutput]
	notice  string
	width   int
	height  int
}

func New(port AuthPort) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	m := Model{port: port}
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	return m
}

// SetNotice shows a one-shot line under the form, e.g. the signup
// confirmation bubbled down from the shell.
func (m *Model) SetNotice(notice string) {
	m.notice = notice
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		if msg.err != nil {
			if !m.state.Fail(msg.seq, failureMessage(msg.err)) {
				return m, nil
			}
			return m, nil
		}
		if !m.state.Resolve(msg.seq, msg.out, msg.out.Message) {
			return m, nil
		}
		// Credential input state is cleared on success.
		m.inputs[fieldEmail].SetValue("")
		m.inputs[fieldPassword].SetValue("")
		email := msg.out.Email
		return m, func() tea.Msg { return nav.LoggedInMsg{Email: email} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus(msg.String() == "shift+tab" || msg.String() == "up")
			return m, nil
		case "enter":
			return m.submit()
		case "ctrl+s":
			return m, nav.Go(nav.Signup)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) cycleFocus(backward bool) {
	m.inputs[m.focus].Blur()
	if backward {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	} else {
		m.focus = (m.focus + 1) % fieldCount
	}
	m.inputs[m.focus].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.state.Pending() {
		return m, nil
	}
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()
	if email == "" || password == "" {
		// Local guard: no network call, no state transition.
		m.notice = "Please enter email and password."
		return m, nil
	}

	m.notice = ""
	seq := m.state.Begin()
	input := authdto.LoginInput{Email: email, Password: password}
	return m, func() tea.Msg {
		out, err := m.port.Login(context.Background(), input)
		return resultMsg{seq: seq, out: out, err: err}
	}
}

func failureMessage(err error) string {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return strings.TrimPrefix(err.Error(), apperrors.ErrInvalidInput.Error()+": ")
	}
	return "Login failed: " + api.Humanize(err)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("SKILLBRIDGE") + "\n")
	sb.WriteString(theme.Muted.Render("Personalized Learning Navigator") + "\n\n")
	sb.WriteString(theme.Muted.Render("email:    ") + m.inputs[fieldEmail].View() + "\n")
	sb.WriteString(theme.Muted.Render("password: ") + m.inputs[fieldPassword].View() + "\n\n")

	switch {
	case m.state.Pending():
		sb.WriteString(theme.Muted.Render("Logging in…") + "\n")
	case m.state.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.state.ErrMessage()) + "\n")
	case m.notice != "":
		sb.WriteString(theme.Hot.Render(m.notice) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("enter: login  tab: next field  ctrl+s: sign up"))

	form := theme.Pane.Render(sb.String())
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
