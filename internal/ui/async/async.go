// Package async is the one lifecycle every backend interaction in the
// UI goes through: idle → pending → success|error, with a latest-wins
// guard so an older in-flight call can never clobber a newer one.
package async

// Status is the lifecycle position of one operation slot.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

// State tracks one operation slot. Each Begin hands out a sequence
// number; a settle carrying a stale number is discarded. Views own one
// State per operation they render and thread the sequence number
// through the tea.Msg that resolves it.
type State[T any] struct {
	status  Status
	data    T
	hasData bool
	message string
	errMsg  string
	seq     uint64
}

// Begin enters pending and clears whatever the previous invocation
// left behind. Returns the sequence number the settle must echo.
func (s *State[T]) Begin() uint64 {
	var zero T
	s.data = zero
	s.hasData = false
	s.message = ""
	s.errMsg = ""
	return s.begin()
}

// BeginRetain enters pending but keeps the previous settled data and
// message on display until the new invocation settles. Used where
// clearing mid-flight would make the UI flicker (knowledge updates,
// contributions).
func (s *State[T]) BeginRetain() uint64 {
	return s.begin()
}

func (s *State[T]) begin() uint64 {
	s.status = StatusPending
	s.seq++
	return s.seq
}

// Resolve settles the invocation identified by seq with its payload.
// Returns false (and changes nothing) when seq is stale.
func (s *State[T]) Resolve(seq uint64, data T, message string) bool {
	if seq != s.seq || s.status != StatusPending {
		return false
	}
	s.status = StatusSuccess
	s.data = data
	s.hasData = true
	s.message = message
	s.errMsg = ""
	return true
}

// Fail settles the invocation identified by seq with a failure
// message. Returns false when seq is stale.
func (s *State[T]) Fail(seq uint64, message string) bool {
	if seq != s.seq || s.status != StatusPending {
		return false
	}
	s.status = StatusError
	var zero T
	s.data = zero
	s.hasData = false
	s.message = ""
	s.errMsg = message
	return true
}

// Reset returns the slot to idle, dropping data and messages. A bumped
// sequence number makes sure anything still in flight lands stale.
func (s *State[T]) Reset() {
	var zero T
	*s = State[T]{seq: s.seq + 1, data: zero}
}

func (s *State[T]) Status() Status     { return s.status }
func (s *State[T]) Pending() bool      { return s.status == StatusPending }
func (s *State[T]) Message() string    { return s.message }
func (s *State[T]) ErrMessage() string { return s.errMsg }

// Data returns the last successful payload, if one is visible.
func (s *State[T]) Data() (T, bool) {
	return s.data, s.hasData
}
