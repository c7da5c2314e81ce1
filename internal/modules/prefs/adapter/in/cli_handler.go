package in

import (
	"context"

	prefsin "skillbridge/internal/modules/prefs/port/in"
)

type CLIHandler struct {
	usecase prefsin.Usecase
}

func NewCLIHandler(usecase prefsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) DarkMode(ctx context.Context) bool {
	return h.usecase.DarkMode(ctx)
}

func (h CLIHandler) ToggleDarkMode(ctx context.Context) (bool, error) {
	return h.usecase.ToggleDarkMode(ctx)
}
