package signup

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
	Signup(ctx context.Context, input authdto.SignupInput) (authdto.SignupOutput, error)
	RequestOTP(ctx context.Context, email string) (authdto.MessageOutput, error)
	VerifyOTP(ctx context.Context, email, code string) (authdto.MessageOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// DoneMsg bubbles to the shell after a successful registration so it can
// route back to the login view with a confirmation.
type DoneMsg struct {
	Message string
}

type signupResultMsg struct {
	seq uint64
	out authdto.SignupOutput
	err error
}

type otpResultMsg struct {
	seq uint64
	out authdto.MessageOutput
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldFirst = iota
	fieldLast
	fieldEmail
	fieldOTP
	fieldPassword
	fieldConfirm
	fieldCount
)

type Model struct {
	port AuthPort

	inputs [fieldCount]textinput.Model
	focus  int
	signup async.State[authdto.SignupOutput]
	otp    async.State[authdto.MessageOutput]
	notice string
	width  int
	height int
}

func New(port AuthPort) Model {
	m := Model{port: port}
	for i, placeholder := range [fieldCount]string{
		"first name", "last name", "email", "verification code", "password", "confirm password",
	} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldConfirm].EchoMode = textinput.EchoPassword
	m.inputs[fieldFirst].Focus()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case otpResultMsg:
		if msg.err != nil {
			m.otp.Fail(msg.seq, failureMessage(msg.err))
			return m, nil
		}
		m.otp.Resolve(msg.seq, msg.out, msg.out.Message)
		return m, nil

	case signupResultMsg:
		if msg.err != nil {
			m.signup.Fail(msg.seq, failureMessage(msg.err))
			return m, nil
		}
		if !m.signup.Resolve(msg.seq, msg.out, msg.out.Message) {
			return m, nil
		}
		message := msg.out.Message
		return m, func() tea.Msg { return DoneMsg{Message: message} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(false)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(true)
			return m, nil
		case "ctrl+o":
			return m.requestOTP()
		case "ctrl+v":
			return m.verifyOTP()
		case "enter":
			return m.submit()
		case "esc":
			return m, nav.Go(nav.Login)
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

func (m Model) requestOTP() (Model, tea.Cmd) {
	if m.otp.Pending() {
		return m, nil
	}
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	if email == "" {
		m.notice = "Enter your email first, then request a code."
		return m, nil
	}
	m.notice = ""
	seq := m.otp.Begin()
	return m, func() tea.Msg {
		out, err := m.port.RequestOTP(context.Background(), email)
		return otpResultMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) verifyOTP() (Model, tea.Cmd) {
	if m.otp.Pending() {
		return m, nil
	}
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	code := strings.TrimSpace(m.inputs[fieldOTP].Value())
	if email == "" || code == "" {
		m.notice = "Email and verification code are required."
		return m, nil
	}
	m.notice = ""
	seq := m.otp.Begin()
	return m, func() tea.Msg {
		out, err := m.port.VerifyOTP(context.Background(), email, code)
		return otpResultMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.signup.Pending() {
		return m, nil
	}
	input := authdto.SignupInput{
		FirstName:       strings.TrimSpace(m.inputs[fieldFirst].Value()),
		LastName:        strings.TrimSpace(m.inputs[fieldLast].Value()),
		Email:           strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password:        m.inputs[fieldPassword].Value(),
		ConfirmPassword: m.inputs[fieldConfirm].Value(),
	}
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		m.notice = "All fields are required."
		return m, nil
	}
	if input.Password != input.ConfirmPassword {
		m.notice = "Passwords do not match."
		return m, nil
	}
	m.notice = ""
	seq := m.signup.Begin()
	return m, func() tea.Msg {
		out, err := m.port.Signup(context.Background(), input)
		return signupResultMsg{seq: seq, out: out, err: err}
	}
}

func failureMessage(err error) string {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return strings.TrimPrefix(err.Error(), apperrors.ErrInvalidInput.Error()+": ")
	}
	return api.Humanize(err)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("CREATE ACCOUNT") + "\n\n")
	labels := [fieldCount]string{"first name: ", "last name:  ", "email:      ", "code:       ", "password:   ", "confirm:    "}
	for i := range m.inputs {
		sb.WriteString(theme.Muted.Render(labels[i]) + m.inputs[i].View() + "\n")
		if i == fieldOTP {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	switch {
	case m.signup.Pending():
		sb.WriteString(theme.Muted.Render("Creating account…") + "\n")
	case m.otp.Pending():
		sb.WriteString(theme.Muted.Render("Contacting verification service…") + "\n")
	case m.signup.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.signup.ErrMessage()) + "\n")
	case m.otp.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.otp.ErrMessage()) + "\n")
	case m.otp.Message() != "":
		sb.WriteString(theme.Good.Render(m.otp.Message()) + "\n")
	case m.notice != "":
		sb.WriteString(theme.Hot.Render(m.notice) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("enter: sign up  ctrl+o: email code  ctrl+v: verify code  esc: back"))

	form := theme.Pane.Render(sb.String())
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
