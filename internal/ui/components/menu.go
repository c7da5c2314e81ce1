package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"skillbridge/internal/ui/theme"
)

// MenuSelectMsg is emitted when the user picks a menu item.
type MenuSelectMsg struct{ Item string }

// MenuDismissMsg is emitted when the menu closes without a selection:
// esc, an unbound key, or a click outside its bounds.
type MenuDismissMsg struct{}

// Menu is the profile dropdown. It receives input only while open, so
// the dismiss-on-outside-interaction listener exists exactly as long
// as the menu does.
type Menu struct {
	items   []string
	cursor  int
	visible bool

	// bounds of the rendered overlay, for outside-click detection
	x, y, w, h int
}

func NewMenu(items []string) Menu {
	return Menu{items: items}
}

func (m Menu) Visible() bool { return m.visible }

func (m *Menu) Open() {
	m.visible = true
	m.cursor = 0
}

// SetBounds records where the shell placed the overlay, in screen cells.
func (m *Menu) SetBounds(x, y, w, h int) {
	m.x, m.y, m.w, m.h = x, y, w, h
}

func (m Menu) contains(x, y int) bool {
	return x >= m.x && x < m.x+m.w && y >= m.y && y < m.y+m.h
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			item := m.items[m.cursor]
			m.visible = false
			return m, func() tea.Msg { return MenuSelectMsg{Item: item} }
		default:
			// Any other key counts as an interaction outside the menu.
			m.visible = false
			return m, func() tea.Msg { return MenuDismissMsg{} }
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !m.contains(msg.X, msg.Y) {
			m.visible = false
			return m, func() tea.Msg { return MenuDismissMsg{} }
		}
	}
	return m, nil
}

func (m Menu) View() string {
	if !m.visible {
		return ""
	}
	out := ""
	for i, item := range m.items {
		line := "  " + item + "  "
		if i == m.cursor {
			line = theme.Hot.Render("› " + item + "  ")
		} else {
			line = theme.Text.Render(line)
		}
		out += line
		if i < len(m.items)-1 {
			out += "\n"
		}
	}
	return theme.PaneActive.Render(out)
}
