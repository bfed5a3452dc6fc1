package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/models"
)

// rootModel is the TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles navigateTo messages
// 4) delegates all other messages to the active page
type rootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// newRootModel registers all pages and opens startPage.
func newRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) rootModel {
	return rootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r rootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(navigateTo); ok {
		next, exists := r.pages[nav.page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.payload != nil {
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return nav.payload })
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r rootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("CourseBook", "", "")
	}
	return r.current.View()
}

func (r rootModel) isMenuPage() bool {
	_, ok := r.current.(*menuModel)
	return ok
}
