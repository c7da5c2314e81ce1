package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "skillbridge/internal/modules/auth/adapter/in"
	authoutadapter "skillbridge/internal/modules/auth/adapter/out"
	authservice "skillbridge/internal/modules/auth/service"
	authusecase "skillbridge/internal/modules/auth/usecase"
	knowledgeinadapter "skillbridge/internal/modules/knowledge/adapter/in"
	knowledgeoutadapter "skillbridge/internal/modules/knowledge/adapter/out"
	knowledgein "skillbridge/internal/modules/knowledge/port/in"
	knowledgeservice "skillbridge/internal/modules/knowledge/service"
	knowledgeusecase "skillbridge/internal/modules/knowledge/usecase"
	libraryinadapter "skillbridge/internal/modules/library/adapter/in"
	libraryoutadapter "skillbridge/internal/modules/library/adapter/out"
	libraryin "skillbridge/internal/modules/library/port/in"
	libraryusecase "skillbridge/internal/modules/library/usecase"
	pathinadapter "skillbridge/internal/modules/path/adapter/in"
	pathoutadapter "skillbridge/internal/modules/path/adapter/out"
	pathin "skillbridge/internal/modules/path/port/in"
	pathusecase "skillbridge/internal/modules/path/usecase"
	prefsinadapter "skillbridge/internal/modules/prefs/adapter/in"
	prefsoutadapter "skillbridge/internal/modules/prefs/adapter/out"
	prefsin "skillbridge/internal/modules/prefs/port/in"
	prefsusecase "skillbridge/internal/modules/prefs/usecase"
	profileinadapter "skillbridge/internal/modules/profile/adapter/in"
	profileoutadapter "skillbridge/internal/modules/profile/adapter/out"
	profilein "skillbridge/internal/modules/profile/port/in"
	profileusecase "skillbridge/internal/modules/profile/usecase"
	"skillbridge/internal/platform/api"
	"skillbridge/internal/platform/clock"
	"skillbridge/internal/platform/config"
	"skillbridge/internal/platform/kv"
	"skillbridge/internal/platform/logging"
	uiapp "skillbridge/internal/ui/app"
	"skillbridge/internal/ui/theme"
)

// App wires every module once and hands out the inbound adapters.
type App struct {
	AuthCLI      authinadapter.CLIHandler
	PathCLI      pathinadapter.CLIHandler
	KnowledgeCLI knowledgeinadapter.CLIHandler
	LibraryCLI   libraryinadapter.CLIHandler
	ProfileCLI   profileinadapter.CLIHandler
	PrefsCLI     prefsinadapter.CLIHandler

	authUC      *authusecase.Interactor
	pathUC      pathin.Usecase
	knowledgeUC knowledgein.Usecase
	libraryUC   libraryin.Usecase
	profileUC   profilein.Usecase
	prefsUC     prefsin.Usecase

	store  *kv.SQLiteStore
	logger *zap.Logger
}

func New(cfg config.Config, debug bool) (*App, error) {
	logger, err := logging.New(cfg.LogPath, debug)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.Timeout, logger)

	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(clock.SystemClock{}),
		authoutadapter.NewKVSessionStore(store),
		authoutadapter.NewHTTPAuthAPI(client),
		logger,
	)
	// Protected requests pull the bearer token from the session manager.
	client.SetTokenSource(authUC)

	pathUC := pathusecase.NewInteractor(pathoutadapter.NewHTTPPathAPI(client), authUC)
	knowledgeUC := knowledgeusecase.NewInteractor(
		knowledgeservice.NewKnowledgeService(),
		knowledgeoutadapter.NewHTTPKnowledgeAPI(client),
		authUC,
	)
	libraryUC := libraryusecase.NewInteractor(libraryoutadapter.NewHTTPLibraryAPI(client), authUC)
	profileUC := profileusecase.NewInteractor(profileoutadapter.NewHTTPProfileAPI(client), authUC)
	prefsUC := prefsusecase.NewInteractor(prefsoutadapter.NewKVPrefStore(store))

	return &App{
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		PathCLI:      pathinadapter.NewCLIHandler(pathUC),
		KnowledgeCLI: knowledgeinadapter.NewCLIHandler(knowledgeUC),
		LibraryCLI:   libraryinadapter.NewCLIHandler(libraryUC),
		ProfileCLI:   profileinadapter.NewCLIHandler(profileUC),
		PrefsCLI:     prefsinadapter.NewCLIHandler(prefsUC),
		authUC:       authUC,
		pathUC:       pathUC,
		knowledgeUC:  knowledgeUC,
		libraryUC:    libraryUC,
		profileUC:    profileUC,
		prefsUC:      prefsUC,
		store:        store,
		logger:       logger,
	}, nil
}

// Close flushes the logger and releases the store.
func (a *App) Close() error {
	_ = a.logger.Sync()
	return a.store.Close()
}

// RunTUI restores the session, applies the persisted color mode and
// starts the shell.
func RunTUI(app *App) error {
	ctx := context.Background()

	theme.Apply(app.prefsUC.DarkMode(ctx))

	session, authenticated := app.authUC.Restore(ctx)

	model := uiapp.New(uiapp.Ports{
		Auth:      app.authUC,
		Knowledge: app.knowledgeUC,
		Path:      app.pathUC,
		Library:   app.libraryUC,
		Profile:   app.profileUC,
		Prefs:     app.prefsUC,
	}, authenticated, session.Email)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
