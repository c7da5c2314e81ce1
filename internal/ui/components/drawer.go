package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
)

// DrawerDismissMsg is emitted when the drawer closes without a choice.
type DrawerDismissMsg struct{}

// Drawer is the navigation sidebar. Like Menu it only sees input while
// open; selection bubbles a nav.GoMsg that the shell gates.
type Drawer struct {
	views   []nav.View
	cursor  int
	visible bool
}

func NewDrawer(views []nav.View) Drawer {
	return Drawer{views: views}
}

func (d Drawer) Visible() bool { return d.visible }

func (d *Drawer) Open() {
	d.visible = true
}

func (d *Drawer) Close() {
	d.visible = false
}

func (d Drawer) Update(msg tea.Msg) (Drawer, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.views)-1 {
			d.cursor++
		}
	case "enter":
		view := d.views[d.cursor]
		d.visible = false
		return d, nav.Go(view)
	case "esc":
		d.visible = false
		return d, func() tea.Msg { return DrawerDismissMsg{} }
	}
	return d, nil
}

func (d Drawer) View() string {
	if !d.visible {
		return ""
	}
	out := theme.Title.Render("Navigate") + "\n\n"
	for i, view := range d.views {
		if i == d.cursor {
			out += theme.Hot.Render("› "+view.String()) + "\n"
		} else {
			out += theme.Text.Render("  "+view.String()) + "\n"
		}
	}
	out += "\n" + theme.Muted.Render("esc: close")
	return theme.Pane.Render(out)
}
