package out

import "context"

type PreferenceStore interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, on bool) error
}
