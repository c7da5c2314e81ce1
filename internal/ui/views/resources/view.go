package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	librarydto "skillbridge/internal/modules/library/dto"
	"skillbridge/internal/platform/api"
	"skillbridge/internal/ui/async"
	"skillbridge/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type LibraryPort interface {
	ListResources(ctx context.Context) ([]librarydto.ResourceOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type loadedMsg struct {
	seq uint64
	out []librarydto.ResourceOutput
	err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type item struct {
	resource librarydto.ResourceOutput
}

func (i item) Title() string { return i.resource.Title }

func (i item) Description() string {
	parts := make([]string, 0, 3)
	if i.resource.ResourceType != "" {
		parts = append(parts, i.resource.ResourceType)
	}
	if i.resource.Difficulty != "" {
		parts = append(parts, i.resource.Difficulty)
	}
	if i.resource.EstimatedTimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", i.resource.EstimatedTimeMinutes))
	}
	if len(parts) == 0 {
		return i.resource.Source
	}
	return strings.Join(parts, " · ")
}

func (i item) FilterValue() string { return i.resource.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port LibraryPort

	list    list.Model
	spinner spinner.Model
	state   async.State[[]librarydto.ResourceOutput]
	width   int
	height  int
}

func New(port LibraryPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "All Resources"
	l.SetShowStatusBar(false)
	l.Styles.Title = theme.Title

	return Model{port: port, list: l, spinner: sp}
}

// Refresh reloads the catalog. The shell fires it each time this view is
// entered; results for a superseded load are dropped.
func (m *Model) Refresh() tea.Cmd {
	seq := m.state.Begin()
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := m.port.ListResources(context.Background())
		return loadedMsg{seq: seq, out: out, err: err}
	})
}

// Filtering reports whether the list's filter prompt owns the keyboard,
// so the shell can keep its global bindings out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.state.Fail(msg.seq, "Could not load resources: "+api.Humanize(msg.err))
			return m, nil
		}
		if m.state.Resolve(msg.seq, msg.out, "") {
			items := make([]list.Item, len(msg.out))
			for i, r := range msg.out {
				items[i] = item{resource: r}
			}
			cmd := m.list.SetItems(items)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+r" && !m.Filtering() {
			cmd := m.Refresh()
			return m, cmd
		}

	case spinner.TickMsg:
		if !m.state.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.state.Pending() {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			m.spinner.View() + " Loading resources…")
	}
	if m.state.ErrMessage() != "" {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			theme.Bad.Render(m.state.ErrMessage()) + "\n\n" +
				theme.Muted.Render("ctrl+r: retry"))
	}

	var detail string
	if it, ok := m.list.SelectedItem().(item); ok {
		var sb strings.Builder
		sb.WriteString(theme.Accent.Render(it.resource.Title) + "\n")
		if it.resource.URL != "" {
			sb.WriteString(theme.Muted.Render(it.resource.URL) + "\n")
		}
		if it.resource.Description != "" {
			sb.WriteString("\n" + it.resource.Description)
		}
		detail = theme.Pane.Render(sb.String())
	}

	body := m.list.View()
	if detail != "" {
		body += "\n" + detail
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
