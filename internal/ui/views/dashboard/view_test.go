package dashboard

import (
	"context"
	"strings"
	"testing"

	knowledgedto "skillbridge/internal/modules/knowledge/dto"
	pathdto "skillbridge/internal/modules/path/dto"
)

type stubKnowledge struct{}

func (stubKnowledge) Update(context.Context, knowledgedto.UpdateInput) (knowledgedto.UpdateOutput, error) {
	return knowledgedto.UpdateOutput{Message: "Knowledge updated successfully!"}, nil
}

type stubPath struct{}

func (stubPath) Generate(context.Context, pathdto.GenerateInput) (pathdto.GenerateOutput, error) {
	return pathdto.GenerateOutput{}, nil
}

func TestConfirmationStaysVisibleDuringRetry(t *testing.T) {
	t.Parallel()
	m := New(stubKnowledge{}, stubPath{})
	m.concept.SetValue("recursion")

	m, cmd := m.updateKnowledge()
	if cmd == nil {
		t.Fatal("expected an in-flight update")
	}
	m, _ = m.Update(cmd())
	if !strings.Contains(m.View(), "Knowledge updated") {
		t.Fatal("confirmation expected after the settle")
	}

	m, cmd = m.updateKnowledge()
	if cmd == nil {
		t.Fatal("expected a second in-flight update")
	}
	view := m.View()
	if !strings.Contains(view, "Knowledge updated") {
		t.Fatal("prior confirmation must stay visible while the retry is in flight")
	}
	if !strings.Contains(view, "Saving…") {
		t.Fatal("pending indicator expected while in flight")
	}
}
