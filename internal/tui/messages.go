package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/models"
)

// Page names known to the router.
const (
	pageMenu    = "menu"
	pageSignIn  = "signin"
	pageSignUp  = "signup"
	pageCourses = "courses"
)

// navigateTo switches the router to another page. An optional payload is
// re-delivered as the first message on the target page.
type navigateTo struct {
	page    string
	payload tea.Msg
}

// signInDoneMsg finishes an async sign-in or sign-up attempt.
type signInDoneMsg struct {
	session models.Session
	err     error
}

// sessionExpiredNotice is delivered to the sign-in page after a protected
// action was rejected mid-session.
type sessionExpiredNotice struct{}

type coursesLoadedMsg struct {
	courses []models.Course
	err     error
}

type courseSavedMsg struct {
	id  int64
	err error
}

type courseDeletedMsg struct {
	err error
}

type signOutDoneMsg struct {
	err error
}
