package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zenzaizenzai/ShiftPatch/internal/board"
	"github.com/zenzaizenzai/ShiftPatch/internal/export"
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
	"github.com/zenzaizenzai/ShiftPatch/internal/tui/components/standby"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Staff Form State (add and edit)
	if m.state == StateStaffForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateStandby
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			staffList := append([]models.Staff{}, m.ctrl.StaffList()...)
			var name string
			if m.editingStaffID != "" {
				for i := range staffList {
					if staffList[i].StaffID == m.editingStaffID {
						staffList[i].Name = m.staffForm.Name
						staffList[i].Skill = m.staffForm.Skill
						staffList[i].StartTime = m.staffForm.Start
						staffList[i].EndTime = m.staffForm.End
						staffList[i].DayNote = m.staffForm.Note
						name = staffList[i].Name
						break
					}
				}
			} else {
				st := models.Staff{
					StaffID:   models.NewID(),
					Name:      m.staffForm.Name,
					Skill:     m.staffForm.Skill,
					StartTime: m.staffForm.Start,
					EndTime:   m.staffForm.End,
					DayNote:   m.staffForm.Note,
				}
				staffList = append(staffList, st)
				name = st.Name
			}
			if err := m.store.SaveStaff(staffList); err != nil {
				m.log.Error().Err(err).Msg("failed to save staff")
				m.status = "Failed to save staff"
			} else {
				m.ctrl.SetData(m.ctrl.Departments(), staffList, m.ctrl.Shifts(), m.ctrl.Requirements())
				m.refreshStandby()
				m.status = fmt.Sprintf("Saved %s", name)
			}
			m.state = StateStandby
		case huh.StateAborted:
			m.state = StateStandby
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateStandby
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if m.confirmForm.Confirmed {
				snap, err := m.store.GetSnapshot()
				if err != nil {
					m.log.Error().Err(err).Msg("failed to read snapshot for delete")
					m.status = "Failed to remove staff"
				} else {
					next := snap.RemoveStaff(m.deleteStaffID)
					if err := m.store.SaveSnapshot(next); err != nil {
						m.log.Error().Err(err).Msg("failed to save snapshot")
						m.status = "Failed to remove staff"
					} else {
						m.ctrl.SetData(next.Departments, next.Staff, next.Shifts, next.Requirements)
						m.ctrl.Deselect()
						m.refreshStandby()
						m.status = "Removed staff member"
					}
				}
			}
			m.state = StateStandby
		case huh.StateAborted:
			m.state = StateStandby
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Department State
	if m.state == StateAddDept {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateBoard
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			d := models.Department{
				DeptID:    models.NewID(),
				Name:      m.deptForm.Name,
				ColorCode: m.deptForm.Color,
			}
			departments := append(append([]models.Department{}, m.ctrl.Departments()...), d)
			if err := m.store.SaveDepartments(departments); err != nil {
				m.log.Error().Err(err).Msg("failed to save departments")
				m.status = "Failed to save department"
			} else {
				m.ctrl.SetData(departments, m.ctrl.StaffList(), m.ctrl.Shifts(), m.ctrl.Requirements())
				m.status = fmt.Sprintf("Added %s", d.Name)
			}
			m.state = StateBoard
		case huh.StateAborted:
			m.state = StateBoard
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Assign State
	if m.state == StateAssign {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateStandby
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			payload := board.DropPayload{StaffID: m.assignStaffID}
			startMin := timeutil.ToMinutes(m.assignForm.Start)
			if shift, ok := m.ctrl.ScheduleStaff(payload, m.assignForm.DeptID, startMin); ok {
				m.refreshStandby()
				m.status = fmt.Sprintf("Scheduled %s–%s", shift.StartTime, shift.EndTime)
				m.state = StateBoard
			} else {
				m.status = "Could not schedule that staff member"
				m.state = StateStandby
			}
		case huh.StateAborted:
			m.state = StateStandby
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.boardView.SetWidth(msg.Width)
		m.standbyView.SetSize(msg.Width-2, msg.Height-4)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case standby.AssignMsg:
		m.assignStaffID = msg.StaffID
		m.assignForm = &AssignFormModel{Start: "09:00"}
		m.form = newAssignForm(m.assignForm, m.ctrl.Departments())
		m.state = StateAssign
		return m, m.form.Init()

	case standby.EditMsg:
		m.editingStaffID = msg.Staff.StaffID
		m.staffForm = &StaffFormModel{
			Name:  msg.Staff.Name,
			Skill: msg.Staff.Skill,
			Start: msg.Staff.StartTime,
			End:   msg.Staff.EndTime,
			Note:  msg.Staff.DayNote,
		}
		m.form = newStaffForm(m.staffForm)
		m.state = StateStaffForm
		return m, m.form.Init()

	case standby.DeleteMsg:
		st, ok := m.ctrl.StaffByID(msg.StaffID)
		if !ok {
			return m, nil
		}
		m.deleteStaffID = msg.StaffID
		m.confirmForm = &ConfirmModel{}
		m.form = newConfirmDeleteForm(st.Name, m.confirmForm)
		m.state = StateConfirmDelete
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.PrevDay):
			m.setDate(m.addDays(-1))
		case key.Matches(msg, m.keys.NextDay):
			m.setDate(m.addDays(1))
		case key.Matches(msg, m.keys.Today):
			m.setDate(timeutil.Today())
		case key.Matches(msg, m.keys.Export):
			m.exportDay()
		case key.Matches(msg, m.keys.AddStaff):
			if m.state == StateStandby {
				m.editingStaffID = ""
				m.staffForm = &StaffFormModel{Skill: models.SkillMedium, Start: "09:00", End: "22:00"}
				m.form = newStaffForm(m.staffForm)
				m.state = StateStaffForm
				return m, m.form.Init()
			}
		case key.Matches(msg, m.keys.AddDept):
			if m.state == StateBoard {
				m.deptForm = &DeptFormModel{Color: "#a5b4fc"}
				m.form = newDeptForm(m.deptForm)
				m.state = StateAddDept
				return m, m.form.Init()
			}
		default:
			if m.state == StateBoard {
				return m.updateBoardKeys(msg)
			}
		}
	}

	if m.state == StateStandby {
		var cmd tea.Cmd
		m.standbyView, cmd = m.standbyView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.ctrl.Config()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Remove):
		if s, ok := m.ctrl.SelectedShift(); ok {
			m.ctrl.ReturnToStandby(s.ShiftID)
			m.refreshStandby()
			m.status = "Returned to standby"
		}
	case key.Matches(msg, m.keys.NudgeUp):
		m.ctrl.NudgeSelected(-cfg.SnapInterval)
	case key.Matches(msg, m.keys.NudgeDn):
		m.ctrl.NudgeSelected(cfg.SnapInterval)
	case key.Matches(msg, m.keys.GrowEnd):
		m.ctrl.ResizeSelected(board.DragResizeEnd, cfg.SnapInterval)
	case key.Matches(msg, m.keys.TrimEnd):
		m.ctrl.ResizeSelected(board.DragResizeEnd, -cfg.SnapInterval)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != StateBoard {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		if msg.Y == boardOriginY-1 {
			// Column header: start a width adjustment.
			if deptID, _, width, ok := m.boardView.DeptAt(msg.X); ok {
				m.ctrl.PressColumn(deptID, width, msg.X)
			}
			break
		}
		gridY := msg.Y - boardOriginY
		if gridY < 0 {
			break
		}
		if id, zone, ok := m.boardView.ShiftAt(msg.X, gridY); ok {
			if id == m.lastClickShift && time.Since(m.lastClickAt) < doubleClick {
				m.ctrl.ReturnToStandby(id)
				m.refreshStandby()
				m.status = "Returned to standby"
				m.lastClickShift = ""
				break
			}
			m.lastClickShift = id
			m.lastClickAt = time.Now()
			if mode, ok := zone.DragModeFor(); ok {
				m.ctrl.PressShift(id, mode, gridY)
			}
		} else {
			m.ctrl.Deselect()
		}

	case tea.MouseActionMotion:
		if m.ctrl.Dragging() {
			m.ctrl.PointerMove(msg.X, msg.Y-boardOriginY)
		}

	case tea.MouseActionRelease:
		m.ctrl.PointerRelease()
	}

	return m, nil
}

func (m *Model) setDate(date string) {
	m.ctrl.SetDate(date)
	m.ctrl.Deselect()
	m.refreshStandby()
	m.status = ""
}

func (m Model) addDays(n int) string {
	d, err := time.Parse(timeutil.DateFormat, m.ctrl.Date())
	if err != nil {
		return timeutil.Today()
	}
	return d.AddDate(0, 0, n).Format(timeutil.DateFormat)
}

// moveSelection steps through the day's shifts in collection order.
func (m *Model) moveSelection(step int) {
	day := m.ctrl.DayShifts()
	if len(day) == 0 {
		return
	}
	idx := -1
	for i, s := range day {
		if s.ShiftID == m.ctrl.SelectedID() {
			idx = i
			break
		}
	}
	idx += step
	if idx < 0 {
		idx = 0
	}
	if idx >= len(day) {
		idx = len(day) - 1
	}
	m.ctrl.SelectShift(day[idx].ShiftID)
}

func (m *Model) exportDay() {
	day := m.ctrl.DayShifts()
	if err := export.ToClipboard(m.ctrl.ExportTSV()); err != nil {
		m.log.Error().Err(err).Msg("clipboard export failed")
		m.status = "Clipboard export failed"
		return
	}
	m.log.Info().Str("date", m.ctrl.Date()).Int("shifts", len(day)).Msg("exported to clipboard")
	m.status = fmt.Sprintf("Copied %d shift(s) to clipboard", len(day))
}
