package async_test

import (
	"testing"

	"skillbridge/internal/ui/async"
)

func TestBeginClearsPreviousOutcome(t *testing.T) {
	t.Parallel()
	var s async.State[string]
	seq := s.Begin()
	if !s.Resolve(seq, "first", "done") {
		t.Fatal("resolve of current invocation should apply")
	}
	s.Begin()
	if !s.Pending() {
		t.Fatal("expected pending after begin")
	}
	if _, ok := s.Data(); ok {
		t.Fatal("begin should drop the previous result")
	}
	if s.Message() != "" || s.ErrMessage() != "" {
		t.Fatal("begin should drop previous messages")
	}
}

func TestBeginRetainKeepsLastResult(t *testing.T) {
	t.Parallel()
	var s async.State[string]
	s.Resolve(s.Begin(), "kept", "saved")
	s.BeginRetain()
	if !s.Pending() {
		t.Fatal("expected pending")
	}
	got, ok := s.Data()
	if !ok || got != "kept" {
		t.Fatalf("expected retained data, got %q ok=%t", got, ok)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	t.Parallel()
	var s async.State[int]
	first := s.Begin()
	second := s.Begin()

	if s.Resolve(first, 1, "old") {
		t.Fatal("settle for a superseded invocation must be rejected")
	}
	if !s.Pending() {
		t.Fatal("stale settle must not change status")
	}
	if !s.Resolve(second, 2, "new") {
		t.Fatal("settle for the live invocation must apply")
	}
	got, _ := s.Data()
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	// The first response arriving even later still loses.
	if s.Fail(first, "late failure") {
		t.Fatal("late stale failure must be rejected")
	}
	if s.ErrMessage() != "" {
		t.Fatal("stale failure must not overwrite a success")
	}
}

func TestFailAndRecover(t *testing.T) {
	t.Parallel()
	var s async.State[string]
	seq := s.Begin()
	if !s.Fail(seq, "boom") {
		t.Fatal("failure of current invocation should apply")
	}
	if s.Pending() {
		t.Fatal("failed state is settled")
	}
	if s.ErrMessage() != "boom" {
		t.Fatalf("unexpected error message %q", s.ErrMessage())
	}
	// Settling twice is a no-op.
	if s.Resolve(seq, "zombie", "") {
		t.Fatal("a settled invocation cannot settle again")
	}

	seq = s.Begin()
	if !s.Resolve(seq, "ok", "") {
		t.Fatal("fresh invocation should resolve")
	}
	if s.ErrMessage() != "" {
		t.Fatal("new invocation should clear the old error")
	}
}

func TestResetInvalidatesInFlightWork(t *testing.T) {
	t.Parallel()
	var s async.State[string]
	seq := s.Begin()
	s.Reset()
	if s.Pending() {
		t.Fatal("reset should return to idle")
	}
	if s.Resolve(seq, "late", "") {
		t.Fatal("work from before the reset must be discarded")
	}
}
