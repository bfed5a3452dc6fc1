package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/internal/tui"
	"github.com/avdeev/go-coursebook/internal/workers"
)

// App ties the client services, the expiry janitor and the terminal UI into
// one runnable application.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	cfg      config.ClientSession

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientSession, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run implements [Client]. It restores a persisted session if one is still
// valid, starts the session expiry janitor, and blocks in the UI loop until
// the user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := a.services.SessionService.Restore(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("emailAddress", session.EmailAddress).Msg("restored persisted session")
	case errors.Is(err, service.ErrNotSignedIn), errors.Is(err, service.ErrSessionExpired):
		// start signed out
	default:
		return fmt.Errorf("error restoring session: %w", err)
	}

	janitor := workers.NewSessionJanitor(a.services.SessionService, a.cfg.SweepInterval, a.logger)
	go workers.NewWorkers(janitor).Run(ctx)

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui error: %w", err)
	}

	return nil
}
