package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/internal/service"
)

// signInModel is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (email address and password) and dispatches an async sign-in
// command on form submission. On success it navigates to the course
// catalogue.
type signInModel struct {
	ctx      context.Context
	sessions service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
	errMsg     string
}

func newSignInModel(ctx context.Context, sessions service.SessionService) *signInModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "joe@smith.com"
	emailInput.CharLimit = 255
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &signInModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{emailInput, passwordInput},
	}
}

func (m *signInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - signInDoneMsg          — clears submitting state; on success navigates
//     to the catalogue, on error populates errMsg.
//   - sessionExpiredNotice   — shows the "session expired" banner.
//   - esc                    — cancels and navigates back to the menu.
//   - tab / shift+tab        — moves focus between inputs.
//   - enter                  — validates inputs and dispatches the sign-in.
//
// All other key events are forwarded to the focused input widget.
func (m *signInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionExpiredNotice:
		m.notice = "Your session has expired, please sign in again"
		return m, nil
	case signInDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrInvalidCredentials) {
				m.errMsg = "Access Denied"
			} else {
				m.errMsg = humanizeServerUnavailableError(msg.err)
			}
			return m, nil
		}

		m.reset()
		return m, func() tea.Msg { return navigateTo{page: pageCourses} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return navigateTo{page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email address and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdSignIn(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *signInModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *signInModel) cmdSignIn(email, pass string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		session, err := sessions.SignIn(ctx, email, pass)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m *signInModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
	m.inputs[1].SetValue("")
}

func (m *signInModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *signInModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
