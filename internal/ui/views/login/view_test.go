package login

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	authdto "skillbridge/internal/modules/auth/dto"
)

type countingPort struct{ calls int }

func (p *countingPort) Login(context.Context, authdto.LoginInput) (authdto.LoginOutput, error) {
	p.calls++
	return authdto.LoginOutput{}, nil
}

func TestSubmitWithEmptyFieldsStaysLocal(t *testing.T) {
	t.Parallel()
	port := &countingPort{}
	m := New(port)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty submit must not produce a command")
	}
	if m.state.Pending() {
		t.Fatal("empty submit must not enter pending")
	}
	if m.notice == "" {
		t.Fatal("expected a local validation message")
	}
	if port.calls != 0 {
		t.Fatal("no network call expected")
	}
}

func TestSubmitWhilePendingIsIgnored(t *testing.T) {
	t.Parallel()
	port := &countingPort{}
	m := New(port)
	m.inputs[fieldEmail].SetValue("a@b.c")
	m.inputs[fieldPassword].SetValue("pw")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("valid submit must produce a command")
	}
	if !m.state.Pending() {
		t.Fatal("valid submit must enter pending")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("a second submit while pending must be dropped")
	}
}

func TestStaleLoginResultIsDiscarded(t *testing.T) {
	t.Parallel()
	port := &countingPort{}
	m := New(port)
	m.inputs[fieldEmail].SetValue("a@b.c")
	m.inputs[fieldPassword].SetValue("pw")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Sequence numbers start above zero, so zero is always stale.
	m, cmd := m.Update(resultMsg{seq: 0, out: authdto.LoginOutput{Email: "a@b.c"}})
	if cmd != nil {
		t.Fatal("stale result must not route anywhere")
	}
	if !m.state.Pending() {
		t.Fatal("stale result must not settle the live invocation")
	}
}
