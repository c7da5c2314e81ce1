package out

import (
	"context"
	"fmt"
	"strconv"

	prefsout "skillbridge/internal/modules/prefs/port/out"
	"skillbridge/internal/platform/kv"
)

const darkModeKey = "prefs.dark_mode"

// KVPrefStore keeps preferences in the same durable store as the
// session, under its own key namespace.
type KVPrefStore struct {
	store kv.Store
}

func NewKVPrefStore(store kv.Store) prefsout.PreferenceStore {
	return &KVPrefStore{store: store}
}

func (s *KVPrefStore) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, darkModeKey)
	if err != nil {
		return false, fmt.Errorf("load dark mode: %w", err)
	}
	if !ok {
		return false, nil
	}
	on, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return on, nil
}

func (s *KVPrefStore) SetDarkMode(ctx context.Context, on bool) error {
	if err := s.store.Set(ctx, darkModeKey, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("persist dark mode: %w", err)
	}
	return nil
}
