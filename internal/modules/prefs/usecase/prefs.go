package usecase

import (
	"context"

	prefsin "skillbridge/internal/modules/prefs/port/in"
	prefsout "skillbridge/internal/modules/prefs/port/out"
)

// Preferences are device-scoped, not identity-scoped: they survive
// logout untouched.
type Interactor struct {
	store prefsout.PreferenceStore
}

func NewInteractor(store prefsout.PreferenceStore) prefsin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) DarkMode(ctx context.Context) bool {
	on, err := i.store.DarkMode(ctx)
	if err != nil {
		return false
	}
	return on
}

func (i *Interactor) ToggleDarkMode(ctx context.Context) (bool, error) {
	next := !i.DarkMode(ctx)
	if err := i.store.SetDarkMode(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}
