package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	knowledgedto "skillbridge/internal/modules/knowledge/dto"
	"skillbridge/internal/modules/knowledge/domain"
	pathdto "skillbridge/internal/modules/path/dto"
	"skillbridge/internal/platform/api"
	apperrors "skillbridge/internal/platform/errors"
	"skillbridge/internal/ui/async"
	"skillbridge/internal/ui/nav"
	"skillbridge/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type KnowledgePort interface {
	Update(ctx context.Context, input knowledgedto.UpdateInput) (knowledgedto.UpdateOutput, error)
}

type PathPort interface {
	Generate(ctx context.Context, input pathdto.GenerateInput) (pathdto.GenerateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type knowledgeResultMsg struct {
	seq uint64
	out knowledgedto.UpdateOutput
	err error
}

type pathResultMsg struct {
	seq uint64
	out pathdto.GenerateOutput
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	focusConcept = iota
	focusLevel
	focusTarget
	focusCount
)

type Model struct {
	knowledgePort KnowledgePort
	pathPort      PathPort

	concept textinput.Model
	level   int
	target  textinput.Model
	focus   int

	knowledge async.State[knowledgedto.UpdateOutput]
	path      async.State[pathdto.GenerateOutput]

	results viewport.Model
	width   int
	height  int
}

func New(knowledgePort KnowledgePort, pathPort PathPort) Model {
	concept := textinput.New()
	concept.Placeholder = "concept, e.g. goroutines"
	concept.CharLimit = 120
	concept.Focus()

	target := textinput.New()
	target.Placeholder = "target concept, e.g. distributed systems"
	target.CharLimit = 120

	return Model{
		knowledgePort: knowledgePort,
		pathPort:      pathPort,
		concept:       concept,
		level:         domain.MinLevel,
		target:        target,
		results:       viewport.New(0, 0),
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width - 6
		m.results.Height = msg.Height - 14
		if m.results.Height < 3 {
			m.results.Height = 3
		}
		return m, nil

	case knowledgeResultMsg:
		if msg.err != nil {
			if m.knowledge.Fail(msg.seq, "Update failed: "+api.Humanize(msg.err)) && expired(msg.err) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		m.knowledge.Resolve(msg.seq, msg.out, msg.out.Message)
		return m, nil

	case pathResultMsg:
		if msg.err != nil {
			if m.path.Fail(msg.seq, "Path generation failed: "+api.Humanize(msg.err)) && expired(msg.err) {
				return m, nav.SessionExpired
			}
			return m, nil
		}
		if m.path.Resolve(msg.seq, msg.out, msg.out.Message) {
			m.results.SetContent(renderPath(msg.out))
			m.results.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			m.cycleFocus(msg.String() == "shift+tab")
			return m, nil
		case "left", "right":
			if m.focus == focusLevel {
				if msg.String() == "left" && m.level > domain.MinLevel {
					m.level--
				}
				if msg.String() == "right" && m.level < domain.MaxLevel {
					m.level++
				}
				return m, nil
			}
		case "enter":
			if m.focus == focusTarget {
				return m.generatePath()
			}
			return m.updateKnowledge()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusConcept:
		m.concept, cmd = m.concept.Update(msg)
	case focusTarget:
		m.target, cmd = m.target.Update(msg)
	default:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFocus(backward bool) {
	m.concept.Blur()
	m.target.Blur()
	if backward {
		m.focus = (m.focus + focusCount - 1) % focusCount
	} else {
		m.focus = (m.focus + 1) % focusCount
	}
	switch m.focus {
	case focusConcept:
		m.concept.Focus()
	case focusTarget:
		m.target.Focus()
	}
}

func (m Model) updateKnowledge() (Model, tea.Cmd) {
	if m.knowledge.Pending() {
		return m, nil
	}
	input := knowledgedto.UpdateInput{
		ConceptName: strings.TrimSpace(m.concept.Value()),
		Level:       m.level,
	}
	if input.ConceptName == "" {
		return m, nil
	}
	// Prior confirmation stays on screen while the new request is in flight.
	seq := m.knowledge.BeginRetain()
	return m, func() tea.Msg {
		out, err := m.knowledgePort.Update(context.Background(), input)
		return knowledgeResultMsg{seq: seq, out: out, err: err}
	}
}

func (m Model) generatePath() (Model, tea.Cmd) {
	if m.path.Pending() {
		return m, nil
	}
	input := pathdto.GenerateInput{TargetConcept: strings.TrimSpace(m.target.Value())}
	if input.TargetConcept == "" {
		return m, nil
	}
	// A fresh request discards the previous path outright.
	seq := m.path.Begin()
	m.results.SetContent("")
	return m, func() tea.Msg {
		out, err := m.pathPort.Generate(context.Background(), input)
		return pathResultMsg{seq: seq, out: out, err: err}
	}
}

func expired(err error) bool {
	return errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNoSession)
}

func renderPath(out pathdto.GenerateOutput) string {
	var sb strings.Builder
	if out.Message != "" {
		sb.WriteString(theme.Good.Render(out.Message) + "\n\n")
	}
	for i, step := range out.Steps {
		sb.WriteString(theme.Accent.Render(fmt.Sprintf("%d. %s", i+1, step.Concept)) + "\n")
		for _, r := range step.Resources {
			sb.WriteString(fmt.Sprintf("   • %s", r.Title))
			if r.ResourceType != "" {
				sb.WriteString(theme.Muted.Render(" ["+r.ResourceType+"]"))
			}
			sb.WriteString("\n")
			if r.URL != "" {
				sb.WriteString(theme.Muted.Render("     "+r.URL) + "\n")
			}
		}
	}
	if len(out.Steps) == 0 {
		sb.WriteString(theme.Muted.Render("No steps returned for this target."))
	}
	return sb.String()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render("DASHBOARD") + "\n\n")

	sb.WriteString(theme.Accent.Render("Update your knowledge") + "\n")
	sb.WriteString(theme.Muted.Render("concept: ") + m.concept.View() + "\n")
	level := fmt.Sprintf("level:   ◂ %d ▸  (%d..%d)", m.level, domain.MinLevel, domain.MaxLevel)
	if m.focus == focusLevel {
		sb.WriteString(theme.Hot.Render(level) + "\n")
	} else {
		sb.WriteString(theme.Muted.Render(level) + "\n")
	}
	switch {
	case m.knowledge.Pending():
		// BeginRetain keeps the last confirmation around; show it next
		// to the spinner text instead of blanking it mid-flight.
		line := theme.Muted.Render("Saving…")
		if m.knowledge.Message() != "" {
			line = theme.Good.Render(m.knowledge.Message()) + "  " + line
		}
		sb.WriteString(line + "\n")
	case m.knowledge.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.knowledge.ErrMessage()) + "\n")
	case m.knowledge.Message() != "":
		sb.WriteString(theme.Good.Render(m.knowledge.Message()) + "\n")
	default:
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + theme.Accent.Render("Generate a learning path") + "\n")
	sb.WriteString(theme.Muted.Render("target:  ") + m.target.View() + "\n")
	switch {
	case m.path.Pending():
		sb.WriteString(theme.Muted.Render("Generating path…") + "\n")
	case m.path.ErrMessage() != "":
		sb.WriteString(theme.Bad.Render(m.path.ErrMessage()) + "\n")
	default:
		sb.WriteString("\n")
	}

	if _, ok := m.path.Data(); ok {
		sb.WriteString("\n" + m.results.View() + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("tab: next field  ←/→: level  enter: submit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
