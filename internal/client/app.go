package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/MKhiriev/go-lingo/internal/tui"
)

var ErrNilDependency = errors.New("client dependency is nil")

const loggedOutNotice = "You have been logged out"

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || log == nil {
		return nil, ErrNilDependency
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores the session, then alternates between the auth flow and the
// main loop until the user quits. The session is disposed on return.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())
	log := a.logger.With().Str("func", "App.Run").Logger()

	session := a.services.SessionService
	session.Init(ctx)
	defer session.Dispose()

	language := a.services.LanguageService.Load(ctx)
	log.Info().
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Stringer("build", a.services.AppInfoService.BuildInfo()).
		Str("language", language).
		Bool("restored", session.State().LoggedIn()).
		Msg("client started")

	notice := ""
	for {
		if !session.State().LoggedIn() {
			if err := a.ui.AuthFlow(ctx, notice); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return fmt.Errorf("auth flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		log.Info().Msg("session ended, back to the auth flow")
		notice = loggedOutNotice
	}
}
