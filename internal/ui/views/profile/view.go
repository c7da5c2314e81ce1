package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "skillbridge/internal/modules/profile/dto"
	"skillbridge/internal/platform/api"
	apperrors "skillbridge/internal/platform/errors"
	"skillbridge/internal/ui/async"
	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProfilePort interface {
	Fetch(ctx context.Context) (profiledto.ProfileOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.UpdateOutput, error)
	ChangePassword(ctx context.Context, input profiledto.ChangePasswordInput) (profiledto.ChangePasswordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type fetchedMsg struct {
	seq uint64
	out profiledto.ProfileOutput
	err error
}

type updatedMsg struct {
	seq uint64
	out profiledto.UpdateOutput
	err error
}

type passwordMsg struct {
	seq uint64
	out profiledto.ChangePasswordOutput
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldFirst = iota
	fieldLast
	fieldTime
	fieldDifficulty
	fieldOldPassword
	fieldNewPassword
	fieldCount
)

type Model struct {
	port ProfilePort

	inputs [fieldCount]textinput.Model
	focus  int

	fetch    async.State[profiledto.ProfileOutput]
	update   async.State[profiledto.UpdateOutput]
	password async.State[profiledto.ChangePasswordOutput]

	notice string
	width  int
	height int
}

func New(port ProfilePort) Model {
	m := Model{port: port}
	for i, placeholder := range [fieldCount]string{
		"first name", "last name",
		"time availability, e.g. 5 hours/week", "difficulty preference, e.g. beginner",
		"current password", "new password",
	} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		m.inputs[i] = in
	}
	m.inputs[fieldOldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldNewPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldFirst].Focus()
	return m
}

// Refresh reloads the profile from the backend. Fired by the shell on
// every entry into this view.
func (m *Model) Refresh() tea.Cmd {
	seq := m.fetch.Begin()
	return func() tea.Msg {
		out, err := m.port.Fetch(context.Background())
		return fetchedMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fetchedMsg:
		if msg.err != nil {
			if m.fetch.Fail(msg.seq, "Could not load profile: "+api.Humanize(msg.err)) && expired(msg.err) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		if m.fetch.Resolve(msg.seq, msg.out, "") {
			m.inputs[fieldFirst].SetValue(msg.out.FirstName)
			m.inputs[fieldLast].SetValue(msg.out.LastName)
			m.inputs[fieldTime].SetValue(msg.out.TimeAvailability)
			m.inputs[fieldDifficulty].SetValue(msg.out.DifficultyPreference)
		}
		return m, nil

	case updatedMsg:
		if msg.err != nil {
			if m.update.Fail(msg.seq, "Update failed: "+api.Humanize(msg.err)) && expired(msg.err) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		m.update.Resolve(msg.seq, msg.out, msg.out.Message)
		return m, nil

	case passwordMsg:
		if msg.err != nil {
			if m.password.Fail(msg.seq, "Password change failed: "+api.Humanize(msg.err)) && expired(msg.err) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		if m.password.Resolve(msg.seq, msg.out, msg.out.Message) {
			m.inputs[fieldOldPassword].SetValue("")
			m.inputs[fieldNewPassword].SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(false)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(true)
			return m, nil
		case "ctrl+s":
			return m.save()
		case "enter":
			if m.focus == fieldOldPassword || m.focus == fieldNewPassword {
				return m.changePassword()
			}
			return m.save()
		case "ctrl+r":
			cmd := m.Refresh()
			return m, cmd
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

func (m Model) save() (Model, tea.Cmd) {
	if m.update.Pending() {
		return m, nil
	}
	input := profiledto.UpdateInput{
		FirstName:            strings.TrimSpace(m.inputs[fieldFirst].Value()),
		LastName:             strings.TrimSpace(m.inputs[fieldLast].Value()),
		TimeAvailability:     strings.TrimSpace(m.inputs[fieldTime].Value()),
		DifficultyPreference: strings.TrimSpace(m.inputs[fieldDifficulty].Value()),
	}
	if input.FirstName == "" && input.LastName == "" && input.TimeAvailability == "" && input.DifficultyPreference == "" {
		m.notice = "Nothing to save."
		return m, nil
	}
	m.notice = ""
	seq := m.update.BeginRetain()
	return m, func() tea.Msg {
		out, err := m.port.Update(context.Background(), input)
		return updatedMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) changePassword() (Model, tea.Cmd) {
	if m.password.Pending() {
		return m, nil
	}
	input := profiledto.ChangePasswordInput{
		OldPassword: m.inputs[fieldOldPassword].Value(),
		NewPassword: m.inputs[fieldNewPassword].Value(),
	}
	if input.OldPassword == "" || input.NewPassword == "" {
		m.notice = "Both the current and the new password are required."
		return m, nil
	}
	m.notice = ""
	seq := m.password.BeginRetain()
	return m, func() tea.Msg {
		out, err := m.port.ChangePassword(context.Background(), input)
		return passwordMsg{seq: seq, out: out, err: err}
	}
}

func expired(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNoSession)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("PROFILE SETTINGS") + "\n\n")

	if m.fetch.Pending() {
		sb.WriteString(theme.Muted.Render("Loading profile…") + "\n")
		return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
	}
	if m.fetch.ErrMessage() != "" {
		sb.WriteString(theme.Bad.Render(m.fetch.ErrMessage()) + "\n\n")
		sb.WriteString(theme.Muted.Render("ctrl+r: retry"))
		return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
	}

	if p, ok := m.fetch.Data(); ok {
		sb.WriteString(theme.Muted.Render("account: ") + p.Email + "\n\n")
	}

	labels := [fieldCount]string{
		"first name:  ", "last name:   ", "time budget: ", "difficulty:  ",
		"current pw:  ", "new pw:      ",
	}
	for i := range m.inputs {
		if i == fieldOldPassword {
			sb.WriteString("\n" + theme.Accent.Render("Change password") + "\n")
		}
		sb.WriteString(theme.Muted.Render(labels[i]) + m.inputs[i].View() + "\n")
	}
	sb.WriteString("\n")

	switch {
	case m.update.Pending():
		sb.WriteString(theme.Muted.Render("Saving profile…") + "\n")
	case m.password.Pending():
		sb.WriteString(theme.Muted.Render("Changing password…") + "\n")
	case m.update.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.update.ErrMessage()) + "\n")
	case m.password.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.password.ErrMessage()) + "\n")
	case m.password.Message() != "":
		sb.WriteString(theme.Good.Render(m.password.Message()) + "\n")
	case m.update.Message() != "":
		sb.WriteString(theme.Good.Render(m.update.Message()) + "\n")
	case m.notice != "":
		sb.WriteString(theme.Hot.Render(m.notice) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("ctrl+s: save profile  enter (in pw fields): change password  ctrl+r: reload"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
