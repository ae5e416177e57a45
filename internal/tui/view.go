package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateStaffForm, StateAddDept, StateAssign, StateConfirmDelete:
		return m.form.View()
	}

	var content string
	switch m.state {
	case StateBoard:
		content = m.boardView.View()
	case StateStandby:
		content = docStyle.Render(m.standbyView.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewDateLine(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Board", "Standby"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDateLine() string {
	date := m.ctrl.Date()
	line := dateStyle.Render(date + " (" + timeutil.WeekdayOf(date) + ")")
	if m.status != "" {
		line += statusStyle.Render(m.status)
	}
	return line
}
