package contribute

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	librarydto "skillbridge/internal/modules/library/dto"
	"skillbridge/internal/platform/api"
	apperrors "skillbridge/internal/platform/errors"
	"skillbridge/internal/ui/async"
	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
)

type LibraryPort interface {
	Contribute(ctx context.Context, input librarydto.ContributeInput) (librarydto.ContributeOutput, error)
}

type resultMsg struct {
	seq uint64
	out librarydto.ContributeOutput
	err error
}

type Model struct {
	port LibraryPort

	url    textinput.Model
	state  async.State[librarydto.ContributeOutput]
	width  int
	height int
}

func New(port LibraryPort) Model {
	url := textinput.New()
	url.Placeholder = "https://example.com/article"
	url.CharLimit = 500
	url.Focus()
	return Model{port: port, url: url}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultMsg:
		if msg.err != nil {
			failed := m.state.Fail(msg.seq, "Submission failed: "+api.Humanize(msg.err))
			if failed && (errors.Is(msg.err, apperrors.ErrUnauthorized) || errors.Is(msg.err, apperrors.ErrNoSession)) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		if m.state.Resolve(msg.seq, msg.out, msg.out.Message) {
			m.url.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.url, cmd = m.url.Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.state.Pending() {
		return m, nil
	}
	input := librarydto.ContributeInput{URL: strings.TrimSpace(m.url.Value())}
	if input.URL == "" {
		return m, nil
	}
	// Keep the last confirmation visible while the next submission runs.
	seq := m.state.BeginRetain()
	return m, func() tea.Msg {
		out, err := m.port.Contribute(context.Background(), input)
		return resultMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("CONTRIBUTE A RESOURCE") + "\n\n")
	sb.WriteString(theme.Muted.Render("Paste a link; the backend fetches and catalogs it.") + "\n\n")
	sb.WriteString(theme.Muted.Render("url: ") + m.url.View() + "\n\n")

	switch {
	case m.state.Pending():
		// The last confirmation stays on screen while the next
		// submission runs.
		line := theme.Muted.Render("Submitting…")
		if m.state.Message() != "" {
			line = theme.Good.Render(m.state.Message()) + "  " + line
		}
		sb.WriteString(line + "\n")
	case m.state.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.state.ErrMessage()) + "\n")
	case m.state.Message() != "":
		sb.WriteString(theme.Good.Render(m.state.Message()) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("enter: submit"))

	form := theme.Pane.Render(sb.String())
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
