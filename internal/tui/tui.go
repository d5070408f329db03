// Package tui is the terminal front-end of go-lingo built on Bubble Tea.
//
// It runs two programs in turn: the auth flow (welcome menu, login and
// sign-up forms) and the main loop with the Analyse, Correction, Dictionary
// and Settings tabs.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("client services are not set")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
	options  []tea.ProgramOption
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{
		services: services,
		logger:   logger,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// AuthFlow shows the welcome menu until the user logs in or signs up.
// notice, when set, is displayed on top of the menu.
func (t *TUI) AuthFlow(ctx context.Context, notice string) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.SessionService),
		pageRegister: NewRegisterModel(ctx, t.services.SessionService),
	}
	if notice != "" {
		pages[pageMenu].Update(StatusNotice{Text: notice})
	}

	root := NewRootModel(pages, pageMenu, t.services.AppInfoService.GetAppVersion(ctx), t.services.AppInfoService.BuildInfo())
	finalModel, runErr := t.program(ctx, root).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.AuthFlow").Msg("user authenticated")
	return nil
}

// MainLoop runs the learning tabs. It reports logout when the session ended
// from the settings tab (log out or account deletion).
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := t.program(ctx, model).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}

func (t *TUI) program(ctx context.Context, model tea.Model) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, opts...)
}
