// Package tui is the terminal front end of the coursebook client. It is a
// set of Bubble Tea pages behind a single router model: a welcome menu,
// sign-in and sign-up forms, and the course catalogue with its detail,
// create, edit and delete flows.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/models"
)

// ErrUserQuit reports that the user closed the program from the UI.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run starts the interactive loop and blocks until the user quits. When a
// restored session is already active the catalogue opens directly,
// otherwise the welcome menu does.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:    newMenuModel(),
		pageSignIn:  newSignInModel(ctx, t.services.SessionService),
		pageSignUp:  newSignUpModel(ctx, t.services.SessionService),
		pageCourses: newCoursesModel(ctx, t.services),
	}

	startPage := pageMenu
	if t.services.SessionService.State() == models.SignedIn {
		startPage = pageCourses
	}

	root := newRootModel(pages, startPage, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
