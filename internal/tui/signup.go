package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/models"
)

const (
	signUpFieldFirstName = iota
	signUpFieldLastName
	signUpFieldEmail
	signUpFieldPassword
	signUpFieldConfirm
)

// signUpModel is the Bubble Tea model for the registration screen. A
// successful registration signs the new user straight in, mirroring the
// behaviour of the web client.
type signUpModel struct {
	ctx      context.Context
	sessions service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsgs    []string
}

func newSignUpModel(ctx context.Context, sessions service.SessionService) *signUpModel {
	firstName := textinput.New()
	firstName.Placeholder = "Joe"
	firstName.CharLimit = 255
	firstName.Width = 40
	firstName.Focus()

	lastName := textinput.New()
	lastName.Placeholder = "Smith"
	lastName.CharLimit = 255
	lastName.Width = 40

	email := textinput.New()
	email.Placeholder = "joe@smith.com"
	email.CharLimit = 255
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return &signUpModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{firstName, lastName, email, password, confirm},
	}
}

func (m *signUpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *signUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			if failed, isValidation := adapter.AsValidationFailed(result.err); isValidation {
				m.errMsgs = failed.Messages
			} else {
				m.errMsgs = []string{humanizeServerUnavailableError(result.err)}
			}
			return m, nil
		}

		m.errMsgs = nil
		return m, func() tea.Msg { return navigateTo{page: pageCourses} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsgs = nil
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

			registration, errMsgs := m.collect()
			if len(errMsgs) > 0 {
				m.errMsgs = errMsgs
				return m, nil
			}

			m.errMsgs = nil
			m.submitting = true
			return m, m.cmdSignUp(registration)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// collect gathers and pre-checks the form values. Only the checks the
// server cannot do run locally; everything else is the server's call.
func (m *signUpModel) collect() (models.UserRegistration, []string) {
	registration := models.UserRegistration{
		FirstName:    strings.TrimSpace(m.inputs[signUpFieldFirstName].Value()),
		LastName:     strings.TrimSpace(m.inputs[signUpFieldLastName].Value()),
		EmailAddress: strings.TrimSpace(m.inputs[signUpFieldEmail].Value()),
		Password:     m.inputs[signUpFieldPassword].Value(),
	}

	var errMsgs []string
	if registration.Password != m.inputs[signUpFieldConfirm].Value() {
		errMsgs = append(errMsgs, "Passwords do not match")
	}

	return registration, errMsgs
}

func (m *signUpModel) View() string {
	var b strings.Builder

	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("First name  │ [" + m.inputs[signUpFieldFirstName].View() + "]\n")
	b.WriteString("Last name   │ [" + m.inputs[signUpFieldLastName].View() + "]\n")
	b.WriteString("Email       │ [" + m.inputs[signUpFieldEmail].View() + "]\n")
	b.WriteString("Password    │ [" + m.inputs[signUpFieldPassword].View() + "]\n")
	b.WriteString("Confirm     │ [" + m.inputs[signUpFieldConfirm].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if len(m.errMsgs) > 0 {
		b.WriteString("\n")
		for _, msg := range m.errMsgs {
			b.WriteString(errorStyle.Render("• " + msg))
			b.WriteString("\n")
		}
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *signUpModel) cmdSignUp(registration models.UserRegistration) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		session, err := sessions.SignUp(ctx, registration)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m *signUpModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *signUpModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
