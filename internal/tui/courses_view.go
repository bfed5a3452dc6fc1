package tui

import (
	"fmt"
	"strings"
)

const coursesHotKeys = "a: add │ e: edit │ ctrl+d: delete │ enter: open │ r: refresh │ l: sign out │ ↑/↓: navigate"

func (m *coursesModel) View() string {
	switch m.stage {
	case formStageBasics:
		return m.viewFormBasics()
	case formStageDescription:
		return m.viewFormTextarea("DESCRIPTION", m.descArea.View(), "enter: new line │ ctrl+s: next step │ esc: cancel")
	case formStageMaterials:
		return m.viewFormTextarea("MATERIALS NEEDED", m.matArea.View(), "enter: new line │ ctrl+s: save │ esc: cancel")
	}

	if m.confirming {
		return m.viewConfirm()
	}

	if m.detail {
		return m.viewDetail()
	}

	return m.viewList()
}

func (m *coursesModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.sessionLine())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading courses...")
		return renderPage("COURSES", b.String(), coursesHotKeys)
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	if len(m.courses) == 0 {
		b.WriteString("No courses yet\n")
	} else {
		b.WriteString("ID   │ Title                            │ Estimated time\n")
		b.WriteString("─────┼──────────────────────────────────┼──────────────────\n")
		for i, course := range m.courses {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			b.WriteString(fmt.Sprintf(
				"%s %-3d│ %-32s │ %s\n",
				cursor,
				course.ID,
				fitText(course.Title, 32),
				valueOrDash(course.EstimatedTime),
			))
		}
	}

	return renderPage("COURSES", strings.TrimRight(b.String(), "\n"), coursesHotKeys)
}

func (m *coursesModel) viewDetail() string {
	course, ok := m.current()
	if !ok {
		return renderPage("COURSE", "Course not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("[ COURSE ]\n")
	b.WriteString("Title          : " + course.Title + "\n")
	b.WriteString("Estimated time : " + valueOrDash(course.EstimatedTime) + "\n")
	b.WriteString("Owner          : #" + fmt.Sprintf("%d", course.UserID) + "\n\n")

	b.WriteString("[ DESCRIPTION ]\n")
	b.WriteString(course.Description + "\n\n")

	b.WriteString("[ MATERIALS NEEDED ]\n")
	if strings.TrimSpace(course.MaterialsNeeded) != "" {
		b.WriteString(course.MaterialsNeeded + "\n")
	} else {
		b.WriteString("(none)\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "COURSE: " + fitText(course.Title, 40)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "e: edit │ c: copy │ ctrl+d: delete │ esc: back")
}

func (m *coursesModel) viewConfirm() string {
	course, ok := m.current()
	if !ok {
		return renderPage("DELETE COURSE", "Course not found", "esc: back")
	}

	body := overlayBoxStyle.Render(fmt.Sprintf("Delete course \"%s\"?\n\nThis cannot be undone.", fitText(course.Title, 40)))
	return renderPage("DELETE COURSE", body, "y: delete │ n/esc: cancel")
}

func (m *coursesModel) viewFormBasics() string {
	var b strings.Builder

	b.WriteString("Field           │ Value\n")
	b.WriteString("────────────────┼──────────────────────────────────────────────\n")
	b.WriteString("Title           │ [" + m.basicInputs[0].View() + "]\n")
	b.WriteString("Estimated time  │ [" + m.basicInputs[1].View() + "]\n")
	m.writeFormErrs(&b)

	return renderPage(m.formTitle(), strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: next step │ esc: cancel")
}

func (m *coursesModel) viewFormTextarea(section, area, hotKeys string) string {
	var b strings.Builder

	b.WriteString("[ " + section + " ]\n")
	b.WriteString(area)
	b.WriteString("\n")
	m.writeFormErrs(&b)

	if m.saving {
		b.WriteString("\nSaving...\n")
	}

	return renderPage(m.formTitle(), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *coursesModel) writeFormErrs(b *strings.Builder) {
	if len(m.formErrs) == 0 {
		return
	}

	b.WriteString("\n")
	for _, msg := range m.formErrs {
		b.WriteString(errorStyle.Render("• " + msg))
		b.WriteString("\n")
	}
}

func (m *coursesModel) formTitle() string {
	if m.editing {
		return "EDIT COURSE"
	}
	return "NEW COURSE"
}
