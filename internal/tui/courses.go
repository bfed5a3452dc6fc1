package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/go-coursebook/internal/adapter"
	"github.com/avdeev/go-coursebook/internal/service"
	"github.com/avdeev/go-coursebook/models"
)

type formStage int

const (
	formStageNone formStage = iota
	formStageBasics
	formStageDescription
	formStageMaterials
)

// coursesModel is the catalogue page: the course list with its detail view,
// the staged create/edit form and the delete confirmation. Browsing works
// signed out; mutations require an active session.
type coursesModel struct {
	ctx      context.Context
	services *service.ClientServices

	courses []models.Course
	idx     int
	loading bool
	status  string
	errMsg  string

	detail     bool
	confirming bool

	stage       formStage
	formErrs    []string
	formInput   models.CourseInput
	editID      int64
	editing     bool
	basicInputs []textinput.Model
	basicFocus  int
	descArea    textarea.Model
	matArea     textarea.Model
	saving      bool
}

func newCoursesModel(ctx context.Context, services *service.ClientServices) *coursesModel {
	return &coursesModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m *coursesModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoadCourses()
}

func (m *coursesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleActionError(msg.err, "loading courses")
		}
		m.errMsg = ""
		m.courses = msg.courses
		if m.idx >= len(m.courses) {
			m.idx = len(m.courses) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case courseSavedMsg:
		m.saving = false
		if msg.err != nil {
			if failed, ok := adapter.AsValidationFailed(msg.err); ok {
				m.formErrs = failed.Messages
				m.stage = formStageBasics
				return m, nil
			}
			return m.handleActionError(msg.err, "saving the course")
		}
		if m.editing {
			m.status = "Course updated"
		} else {
			m.status = fmt.Sprintf("Course #%d created", msg.id)
		}
		m.resetForm()
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCourses()
	case courseDeletedMsg:
		if msg.err != nil {
			return m.handleActionError(msg.err, "deleting the course")
		}
		m.status = "Course deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCourses()
	case signOutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return navigateTo{page: pageMenu} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage != formStageNone {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if m.stage != formStageNone {
		return m.updateForm(msg)
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m *coursesModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.courses)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No courses yet"
			return m, nil
		}
		m.detail = true
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadCourses()
	case key.Matches(keyMsg, keys.add):
		if !m.signedIn() {
			return m, m.cmdGoSignIn()
		}
		m.startCreate()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		course, ok := m.current()
		if !ok {
			m.status = "No courses yet"
			return m, nil
		}
		if !m.signedIn() {
			return m, m.cmdGoSignIn()
		}
		m.startEdit(course)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); !ok {
			m.status = "No courses yet"
			return m, nil
		}
		if !m.signedIn() {
			return m, m.cmdGoSignIn()
		}
		m.confirming = true
	case key.Matches(keyMsg, keys.signOut):
		if !m.signedIn() {
			return m, func() tea.Msg { return navigateTo{page: pageMenu} }
		}
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return navigateTo{page: pageMenu} }
	}

	return m, nil
}

func (m *coursesModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	course, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(courseCopyText(course)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
	case key.Matches(keyMsg, keys.edit):
		if !m.signedIn() {
			return m, m.cmdGoSignIn()
		}
		m.detail = false
		m.startEdit(course)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if !m.signedIn() {
			return m, m.cmdGoSignIn()
		}
		m.detail = false
		m.confirming = true
	}

	return m, nil
}

func (m *coursesModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	course, ok := m.current()
	if !ok {
		m.confirming = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		return m, m.cmdDelete(course.ID)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirming = false
	}

	return m, nil
}

func (m *coursesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case formStageBasics:
		return m.updateFormBasics(msg)
	case formStageDescription:
		return m.updateFormTextarea(msg, &m.descArea, m.finishDescription)
	case formStageMaterials:
		return m.updateFormTextarea(msg, &m.matArea, m.finishMaterials)
	default:
		return m, nil
	}
}

func (m *coursesModel) updateFormBasics(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetForm()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.basicInputs[m.basicFocus].Blur()
			m.basicFocus = (m.basicFocus + 1) % len(m.basicInputs)
			m.basicInputs[m.basicFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.basicInputs[m.basicFocus].Blur()
			m.basicFocus = (m.basicFocus - 1 + len(m.basicInputs)) % len(m.basicInputs)
			m.basicInputs[m.basicFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			title := strings.TrimSpace(m.basicInputs[0].Value())
			if title == "" {
				m.formErrs = []string{"Title is required"}
				return m, nil
			}

			m.formInput.Title = title
			m.formInput.EstimatedTime = strings.TrimSpace(m.basicInputs[1].Value())
			m.formErrs = nil
			m.stage = formStageDescription
			return m, textarea.Blink
		}
	}

	var cmd tea.Cmd
	m.basicInputs[m.basicFocus], cmd = m.basicInputs[m.basicFocus].Update(msg)
	return m, cmd
}

func (m *coursesModel) updateFormTextarea(msg tea.Msg, area *textarea.Model, finish func() (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.resetForm()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return finish()
		}
	}

	var cmd tea.Cmd
	*area, cmd = area.Update(msg)
	return m, cmd
}

func (m *coursesModel) finishDescription() (tea.Model, tea.Cmd) {
	description := strings.TrimSpace(m.descArea.Value())
	if description == "" {
		m.formErrs = []string{"Description is required"}
		return m, nil
	}

	m.formInput.Description = description
	m.formErrs = nil
	m.stage = formStageMaterials
	return m, textarea.Blink
}

func (m *coursesModel) finishMaterials() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	m.formInput.MaterialsNeeded = strings.TrimSpace(m.matArea.Value())
	m.formErrs = nil
	m.saving = true
	return m, m.cmdSave(m.formInput, m.editing, m.editID)
}

// handleActionError routes service errors to the right surface: an expired
// session sends the user back to sign-in, everything else is shown in
// place.
func (m *coursesModel) handleActionError(err error, action string) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		m.resetForm()
		return m, m.cmdSessionExpired()
	case errors.Is(err, adapter.ErrForbidden):
		m.errMsg = "You are not authorized to modify this course"
	case errors.Is(err, adapter.ErrNotFound):
		m.errMsg = "Course not found, the list may be out of date"
		m.loading = true
		return m, m.cmdLoadCourses()
	default:
		m.errMsg = fmt.Sprintf("Error %s: %s", action, humanizeServerUnavailableError(err))
	}

	return m, nil
}

func (m *coursesModel) startCreate() {
	m.editing = false
	m.editID = 0
	m.formInput = models.CourseInput{}
	m.initForm(models.CourseInput{})
}

func (m *coursesModel) startEdit(course models.Course) {
	m.editing = true
	m.editID = course.ID
	input := models.CourseInput{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
	}
	m.formInput = input
	m.initForm(input)
}

func (m *coursesModel) initForm(input models.CourseInput) {
	title := textinput.New()
	title.Placeholder = "Course title"
	title.Width = 44
	title.SetValue(input.Title)
	title.Focus()

	estimated := textinput.New()
	estimated.Placeholder = "Estimated time (optional)"
	estimated.Width = 44
	estimated.SetValue(input.EstimatedTime)

	desc := textarea.New()
	desc.Placeholder = "Course description"
	desc.SetWidth(54)
	desc.SetHeight(6)
	desc.SetValue(input.Description)
	desc.Focus()

	mat := textarea.New()
	mat.Placeholder = "Materials needed (optional)"
	mat.SetWidth(54)
	mat.SetHeight(4)
	mat.SetValue(input.MaterialsNeeded)
	mat.Focus()

	m.basicInputs = []textinput.Model{title, estimated}
	m.basicFocus = 0
	m.descArea = desc
	m.matArea = mat
	m.formErrs = nil
	m.saving = false
	m.stage = formStageBasics
}

func (m *coursesModel) resetForm() {
	m.stage = formStageNone
	m.formErrs = nil
	m.formInput = models.CourseInput{}
	m.basicInputs = nil
	m.basicFocus = 0
	m.saving = false
	m.editing = false
	m.editID = 0
}

func (m *coursesModel) current() (models.Course, bool) {
	if len(m.courses) == 0 || m.idx < 0 || m.idx >= len(m.courses) {
		return models.Course{}, false
	}
	return m.courses[m.idx], true
}

func (m *coursesModel) signedIn() bool {
	return m.services.SessionService.State() == models.SignedIn
}

func (m *coursesModel) sessionLine() string {
	session, err := m.services.SessionService.CurrentSession()
	if err != nil {
		return "Browsing as guest, sign in to add courses"
	}
	return fmt.Sprintf("Signed in as %s %s (%s)", session.FirstName, session.LastName, session.EmailAddress)
}

func (m *coursesModel) cmdLoadCourses() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseService

	return func() tea.Msg {
		courses, err := svc.ListCourses(ctx)
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (m *coursesModel) cmdSave(input models.CourseInput, editing bool, id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseService

	return func() tea.Msg {
		if editing {
			return courseSavedMsg{id: id, err: svc.UpdateCourse(ctx, id, input)}
		}

		newID, err := svc.CreateCourse(ctx, input)
		return courseSavedMsg{id: newID, err: err}
	}
}

func (m *coursesModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseService

	return func() tea.Msg {
		return courseDeletedMsg{err: svc.DeleteCourse(ctx, id)}
	}
}

func (m *coursesModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService

	return func() tea.Msg {
		return signOutDoneMsg{err: sessions.SignOut(ctx)}
	}
}

// cmdSessionExpired tears the dead session down and bounces the user to the
// sign-in page with an explanatory banner.
func (m *coursesModel) cmdSessionExpired() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService

	return func() tea.Msg {
		_ = sessions.SignOut(ctx)
		return navigateTo{page: pageSignIn, payload: sessionExpiredNotice{}}
	}
}

// cmdGoSignIn redirects a guest who tried a protected action.
func (m *coursesModel) cmdGoSignIn() tea.Cmd {
	return func() tea.Msg {
		return navigateTo{page: pageSignIn}
	}
}

func courseCopyText(course models.Course) string {
	var b strings.Builder
	b.WriteString(course.Title)
	b.WriteString("\n\n")
	b.WriteString(course.Description)
	if course.EstimatedTime != "" {
		b.WriteString("\n\nEstimated time: ")
		b.WriteString(course.EstimatedTime)
	}
	if course.MaterialsNeeded != "" {
		b.WriteString("\n\nMaterials needed:\n")
		b.WriteString(course.MaterialsNeeded)
	}
	return b.String()
}
