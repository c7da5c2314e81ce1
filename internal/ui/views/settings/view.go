package settings

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skillbridge/internal/ui/theme"
)

type PrefsPort interface {
	DarkMode(ctx context.Context) bool
	ToggleDarkMode(ctx context.Context) (bool, error)
}

// ToggledMsg bubbles to the shell, which swaps the process-wide palette.
type ToggledMsg struct {
	Dark bool
}

type toggleResultMsg struct {
	dark bool
	err  error
}

type Model struct {
	port PrefsPort

	dark    bool
	pending bool
	errMsg  string
	width   int
	height  int
}

func New(port PrefsPort) Model {
	return Model{port: port, dark: port.DarkMode(context.Background())}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toggleResultMsg:
		m.pending = false
		if msg.err != nil {
			m.errMsg = "Could not save preference: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.dark = msg.dark
		dark := msg.dark
		return m, func() tea.Msg { return ToggledMsg{Dark: dark} }

	case tea.KeyMsg:
		if msg.String() == "enter" || msg.String() == " " {
			if m.pending {
				return m, nil
			}
			m.pending = true
			return m, func() tea.Msg {
				dark, err := m.port.ToggleDarkMode(context.Background())
				return toggleResultMsg{dark: dark, err: err}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("APP SETTINGS") + "\n\n")

	mode := "light"
	if m.dark {
		mode = "dark"
	}
	sb.WriteString(theme.Muted.Render("color mode: ") + theme.Accent.Render(mode) + "\n")

	if m.errMsg != "" {
		sb.WriteString("\n" + theme.Bad.Render(m.errMsg) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("enter: toggle dark mode"))

	pane := theme.Pane.Render(sb.String())
	if m.width == 0 {
		return pane
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}
