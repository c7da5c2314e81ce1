// Package clock narrows time.Now behind an interface so token expiry
// checks stay deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
