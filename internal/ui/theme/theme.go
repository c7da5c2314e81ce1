package theme

import "github.com/charmbracelet/lipgloss"

// Two Catppuccin palettes: Mocha for dark mode, Latte for light.
// Apply swaps the exported styles in place; the next render picks the
// new palette up everywhere.

type palette struct {
	base     lipgloss.Color
	mantle   lipgloss.Color
	surface  lipgloss.Color
	text     lipgloss.Color
	subtext  lipgloss.Color
	lavender lipgloss.Color
	sapphire lipgloss.Color
	green    lipgloss.Color
	peach    lipgloss.Color
	red      lipgloss.Color
}

var mocha = palette{
	base:     lipgloss.Color("#1e1e2e"),
	mantle:   lipgloss.Color("#181825"),
	surface:  lipgloss.Color("#45475a"),
	text:     lipgloss.Color("#cdd6f4"),
	subtext:  lipgloss.Color("#a6adc8"),
	lavender: lipgloss.Color("#b4befe"),
	sapphire: lipgloss.Color("#74c7ec"),
	green:    lipgloss.Color("#a6e3a1"),
	peach:    lipgloss.Color("#fab387"),
	red:      lipgloss.Color("#f38ba8"),
}

var latte = palette{
	base:     lipgloss.Color("#eff1f5"),
	mantle:   lipgloss.Color("#e6e9ef"),
	surface:  lipgloss.Color("#bcc0cc"),
	text:     lipgloss.Color("#4c4f69"),
	subtext:  lipgloss.Color("#6c6f85"),
	lavender: lipgloss.Color("#7287fd"),
	sapphire: lipgloss.Color("#209fb5"),
	green:    lipgloss.Color("#40a02b"),
	peach:    lipgloss.Color("#fe640b"),
	red:      lipgloss.Color("#d20f39"),
}

var (
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color

	Title  lipgloss.Style
	Muted  lipgloss.Style
	Hot    lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Text   lipgloss.Style
	Accent lipgloss.Style

	Pane       lipgloss.Style
	PaneActive lipgloss.Style
)

func init() {
	Apply(false)
}

// Apply switches the process-wide presentation mode.
func Apply(dark bool) {
	p := latte
	if dark {
		p = mocha
	}

	Base = p.base
	Mantle = p.mantle
	Surface = p.surface

	Title = lipgloss.NewStyle().Foreground(p.sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(p.subtext)
	Hot = lipgloss.NewStyle().Foreground(p.peach).Bold(true)
	Good = lipgloss.NewStyle().Foreground(p.green)
	Bad = lipgloss.NewStyle().Foreground(p.red)
	Text = lipgloss.NewStyle().Foreground(p.text)
	Accent = lipgloss.NewStyle().Foreground(p.lavender)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.surface).
		Background(p.mantle).
		Foreground(p.text).
		Padding(1)

	PaneActive = Pane.BorderForeground(p.lavender)
}
