package in

import "context"

type Usecase interface {
	// DarkMode reads the persisted flag; an absent key means false.
	DarkMode(ctx context.Context) bool
	// ToggleDarkMode flips and persists the flag, returning the new value.
	ToggleDarkMode(ctx context.Context) (bool, error)
}
