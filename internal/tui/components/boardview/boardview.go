// Package boardview renders one day of the shift board as a time grid:
// an hour gutter on the left and one column per department, with shifts
// drawn as colored blocks over coverage-shaded cells.
package boardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenzaizenzai/ShiftPatch/internal/board"
	"github.com/zenzaizenzai/ShiftPatch/internal/coverage"
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

const (
	// GutterWidth is the fixed width of the hour label column.
	GutterWidth = 6
	// HeaderRows is the number of rows above the scheduling grid.
	HeaderRows = 1
)

var (
	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(GutterWidth).
			Align(lipgloss.Right)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	understaffedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("52"))

	sufficientStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("22"))

	selectedMark = "»"
)

type Model struct {
	ctrl  *board.Controller
	width int
}

func New(ctrl *board.Controller) Model {
	return Model{ctrl: ctrl}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

// columnsWidth is the horizontal space shared by the department columns.
func (m Model) columnsWidth() int {
	return m.width - GutterWidth
}

// DeptAt resolves a board-local x position to the department column under it.
// It also returns the column's left edge and current width so callers can
// start a column resize.
func (m Model) DeptAt(x int) (deptID string, colStart, colWidth int, ok bool) {
	if x < GutterWidth {
		return "", 0, 0, false
	}
	left := GutterWidth
	widths := m.ctrl.ColumnWidths(m.columnsWidth())
	for i, d := range m.ctrl.Departments() {
		if x < left+widths[i] {
			return d.DeptID, left, widths[i], true
		}
		left += widths[i]
	}
	return "", 0, 0, false
}

// ShiftAt resolves a board-local position to the shift block under it and the
// affordance zone hit within that block. y is grid-relative (header excluded).
func (m Model) ShiftAt(x, y int) (shiftID string, zone board.Zone, ok bool) {
	deptID, _, _, found := m.DeptAt(x)
	if !found {
		return "", board.ZoneNone, false
	}
	cfg := m.ctrl.Config()
	// Later shifts draw on top, so hit-test in reverse order.
	day := m.ctrl.DayShifts()
	for i := len(day) - 1; i >= 0; i-- {
		s := day[i]
		if s.DeptID != deptID {
			continue
		}
		if z := cfg.HitZone(cfg.ShiftBox(s), y); z != board.ZoneNone {
			return s.ShiftID, z, true
		}
	}
	return "", board.ZoneNone, false
}

func (m Model) View() string {
	cfg := m.ctrl.Config()
	departments := m.ctrl.Departments()
	if len(departments) == 0 {
		return "\n  No departments yet.\n  Press 'A' to add one."
	}
	widths := m.ctrl.ColumnWidths(m.columnsWidth())
	height := cfg.BoardHeight()

	cols := make([][]string, len(departments))
	for i, d := range departments {
		cols[i] = m.renderColumn(d, widths[i], height)
	}

	var b strings.Builder
	b.WriteString(gutterStyle.Render(""))
	for i, d := range departments {
		b.WriteString(headerStyle.Width(widths[i]).
			Foreground(lipgloss.Color(d.ColorCode)).
			Render(truncate(d.Name, widths[i])))
	}
	b.WriteString("\n")

	for y := 0; y < height; y++ {
		b.WriteString(gutterStyle.Render(m.gutterLabel(y)))
		for i := range departments {
			b.WriteString(cols[i][y])
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// gutterLabel returns the hour label when the row lands exactly on an hour
// boundary, and an empty string otherwise.
func (m Model) gutterLabel(y int) string {
	cfg := m.ctrl.Config()
	minutes := cfg.MinutesAt(y)
	whole := int(minutes)
	if float64(whole) != minutes || whole%60 != 0 {
		return ""
	}
	return fmt.Sprintf("%02d:00 ", whole/60%24)
}

func (m Model) renderColumn(d models.Department, width, height int) []string {
	cfg := m.ctrl.Config()
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for y := range rows {
		hour := int(cfg.MinutesAt(y)) / 60
		switch m.ctrl.CoverageAt(d.DeptID, hour) {
		case coverage.Understaffed:
			rows[y] = understaffedStyle.Render(blank)
		case coverage.Sufficient:
			rows[y] = sufficientStyle.Render(blank)
		default:
			rows[y] = blank
		}
	}

	for _, s := range m.ctrl.DayShifts() {
		if s.DeptID != d.DeptID {
			continue
		}
		st, ok := m.ctrl.StaffByID(s.StaffID)
		if !ok {
			continue
		}
		m.renderShift(rows, s, st, width)
	}
	return rows
}

func (m Model) renderShift(rows []string, s models.Shift, st models.Staff, width int) {
	cfg := m.ctrl.Config()
	box := cfg.ShiftBox(s)

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(deptColor(m.ctrl, s.DeptID))).
		Foreground(lipgloss.Color("232"))
	selected := s.ShiftID == m.ctrl.SelectedID()
	if selected {
		style = style.Bold(true).Underline(true)
	}

	label := st.Name
	if m.ctrl.HasWarning(s) {
		label += " ⚠"
	}
	if selected {
		label = selectedMark + label
	}

	for y := box.Top; y < box.Top+box.Height && y < len(rows); y++ {
		if y < 0 {
			continue
		}
		content := ""
		switch y {
		case box.Top:
			content = truncate(label, width)
		case box.Top + box.Height - 1:
			content = truncate(s.StartTime+"–"+s.EndTime, width)
		}
		rows[y] = style.Width(width).Render(content)
	}
}

func deptColor(ctrl *board.Controller, deptID string) string {
	if d, ok := ctrl.DeptByID(deptID); ok {
		return d.ColorCode
	}
	return "240"
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
