package board

import (
	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/coverage"
	"github.com/zenzaizenzai/ShiftPatch/internal/export"
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

// ShiftSink receives the complete shift collection after every committed
// mutation. The controller never patches incrementally; each change replaces
// the collection wholesale.
type ShiftSink interface {
	SaveShifts([]models.Shift) error
}

// DropPayload is the cross-boundary drag message for creating a shift from
// the standby pool. The staff identity is the only field; a payload that does
// not resolve to a known staff member is ignored.
type DropPayload struct {
	StaffID string `json:"staff_id"`
}

// Controller composes the board: it holds the selected date and shift, the
// manual column widths, and the in-progress gesture, and derives day shifts,
// the unassigned pool, and coverage on demand.
type Controller struct {
	cfg  Config
	sink ShiftSink
	log  zerolog.Logger

	departments  []models.Department
	staff        []models.Staff
	shifts       []models.Shift
	requirements []models.Requirement

	date       string
	selectedID string
	colWidths  map[string]int

	shiftDrag  *ShiftDrag
	columnDrag *ColumnDrag
}

func NewController(cfg Config, sink ShiftSink, log zerolog.Logger) *Controller {
	return &Controller{
		cfg:       cfg,
		sink:      sink,
		log:       log,
		date:      timeutil.Today(),
		colWidths: make(map[string]int),
	}
}

// SetData replaces the controller's view of the domain collections, e.g.
// after the initial snapshot load or an external CRUD edit.
func (c *Controller) SetData(departments []models.Department, staff []models.Staff, shifts []models.Shift, requirements []models.Requirement) {
	c.departments = departments
	c.staff = staff
	c.shifts = shifts
	c.requirements = requirements
}

func (c *Controller) Config() Config                     { return c.cfg }
func (c *Controller) Departments() []models.Department   { return c.departments }
func (c *Controller) Requirements() []models.Requirement { return c.requirements }
func (c *Controller) StaffList() []models.Staff          { return c.staff }
func (c *Controller) Shifts() []models.Shift             { return c.shifts }

func (c *Controller) Date() string { return c.date }

func (c *Controller) SetDate(date string) {
	c.date = date
}

// DayShifts is the subset of shifts on the selected date, derived fresh on
// every call.
func (c *Controller) DayShifts() []models.Shift {
	var out []models.Shift
	for _, s := range c.shifts {
		if s.Date == c.date {
			out = append(out, s)
		}
	}
	return out
}

// UnassignedStaff is the standby pool: staff with no shift on the selected
// date.
func (c *Controller) UnassignedStaff() []models.Staff {
	assigned := make(map[string]bool)
	for _, s := range c.DayShifts() {
		assigned[s.StaffID] = true
	}
	var out []models.Staff
	for _, st := range c.staff {
		if !assigned[st.StaffID] {
			out = append(out, st)
		}
	}
	return out
}

// CoverageAt grades one department/hour cell for the selected date.
func (c *Controller) CoverageAt(deptID string, hour int) coverage.Level {
	return coverage.Evaluate(c.DayShifts(), c.requirements, deptID, timeutil.WeekdayOf(c.date), hour)
}

func (c *Controller) SelectedID() string { return c.selectedID }

func (c *Controller) SelectShift(id string) { c.selectedID = id }

func (c *Controller) Deselect() { c.selectedID = "" }

func (c *Controller) SelectedShift() (models.Shift, bool) {
	if c.selectedID == "" {
		return models.Shift{}, false
	}
	return c.ShiftByID(c.selectedID)
}

func (c *Controller) ShiftByID(id string) (models.Shift, bool) {
	for _, s := range c.shifts {
		if s.ShiftID == id {
			return s, true
		}
	}
	return models.Shift{}, false
}

func (c *Controller) StaffByID(id string) (models.Staff, bool) {
	for _, st := range c.staff {
		if st.StaffID == id {
			return st, true
		}
	}
	return models.Staff{}, false
}

func (c *Controller) DeptByID(id string) (models.Department, bool) {
	for _, d := range c.departments {
		if d.DeptID == id {
			return d, true
		}
	}
	return models.Department{}, false
}

// --- Gestures ---

// PressShift starts a drag on an existing shift and selects it. It is a no-op
// while another gesture is active.
func (c *Controller) PressShift(shiftID string, mode DragMode, pointerY int) {
	if c.shiftDrag != nil || c.columnDrag != nil {
		return
	}
	s, ok := c.ShiftByID(shiftID)
	if !ok {
		return
	}
	d := BeginShiftDrag(s, mode, pointerY)
	c.shiftDrag = &d
	c.selectedID = shiftID
}

// PressColumn starts a column width adjustment.
func (c *Controller) PressColumn(deptID string, currentWidth, pointerX int) {
	if c.shiftDrag != nil || c.columnDrag != nil {
		return
	}
	c.columnDrag = &ColumnDrag{DeptID: deptID, OriginX: pointerX, OriginWidth: currentWidth}
}

// PointerMove advances whichever gesture is active. A column resize only
// updates layout state; a shift drag immediately commits the recomputed
// collection, so every intermediate position is the live value.
func (c *Controller) PointerMove(pointerX, pointerY int) {
	if c.columnDrag != nil {
		c.colWidths[c.columnDrag.DeptID] = c.columnDrag.Apply(c.cfg, pointerX)
		return
	}
	if c.shiftDrag != nil {
		c.commit(c.shiftDrag.Apply(c.cfg, c.shifts, pointerY))
	}
}

// PointerRelease ends the active gesture unconditionally; there is no revert.
func (c *Controller) PointerRelease() {
	c.shiftDrag = nil
	c.columnDrag = nil
}

func (c *Controller) Dragging() bool {
	return c.shiftDrag != nil || c.columnDrag != nil
}

// NudgeSelected moves the selected shift by deltaMinutes with the same clamps
// as a pointer move. Keyboard counterpart of the MOVE gesture.
func (c *Controller) NudgeSelected(deltaMinutes int) {
	c.adjustSelected(DragMove, deltaMinutes)
}

// ResizeSelected adjusts one edge of the selected shift by deltaMinutes.
func (c *Controller) ResizeSelected(mode DragMode, deltaMinutes int) {
	c.adjustSelected(mode, deltaMinutes)
}

func (c *Controller) adjustSelected(mode DragMode, deltaMinutes int) {
	s, ok := c.SelectedShift()
	if !ok {
		return
	}
	d := BeginShiftDrag(s, mode, 0)
	c.commit(d.applyDelta(c.cfg, c.shifts, deltaMinutes))
}

// --- Mutations ---

// DropStaff accepts a standby-pool drop onto a department column. The drop
// offset is converted to minutes at the board scale; callers that already
// hold a clock time use ScheduleStaff directly.
func (c *Controller) DropStaff(p DropPayload, deptID string, offsetY int) (models.Shift, bool) {
	return c.ScheduleStaff(p, deptID, timeutil.Snap(c.cfg.MinutesAt(offsetY), c.cfg.SnapInterval))
}

// ScheduleStaff creates a shift starting at startMinutes since midnight,
// snapped and clamped so the default duration fits the board window; the new
// shift becomes selected. Payloads that do not resolve to a known staff
// member or department are ignored.
func (c *Controller) ScheduleStaff(p DropPayload, deptID string, startMinutes int) (models.Shift, bool) {
	st, ok := c.StaffByID(p.StaffID)
	if !ok {
		c.log.Debug().Str("staff_id", p.StaffID).Msg("drop payload ignored: unknown staff")
		return models.Shift{}, false
	}
	if _, ok := c.DeptByID(deptID); !ok {
		return models.Shift{}, false
	}

	snapped := timeutil.Snap(float64(startMinutes), c.cfg.SnapInterval)
	start := clamp(snapped, c.cfg.OpenMinutes(), c.cfg.CloseMinutes()-c.cfg.DefaultShiftMinutes)

	shift := models.Shift{
		ShiftID:   models.NewID(),
		StaffID:   st.StaffID,
		DeptID:    deptID,
		Date:      c.date,
		StartTime: timeutil.ToClock(start),
		EndTime:   timeutil.ToClock(start + c.cfg.DefaultShiftMinutes),
	}
	c.commit(append(append([]models.Shift{}, c.shifts...), shift))
	c.selectedID = shift.ShiftID
	c.log.Info().Str("shift_id", shift.ShiftID).Str("staff", st.Name).Str("dept", deptID).
		Str("start", shift.StartTime).Msg("shift created")
	return shift, true
}

// ReturnToStandby removes a shift, sending its staff member back to the
// unassigned pool, and clears the selection.
func (c *Controller) ReturnToStandby(shiftID string) {
	out := make([]models.Shift, 0, len(c.shifts))
	for _, s := range c.shifts {
		if s.ShiftID != shiftID {
			out = append(out, s)
		}
	}
	c.commit(out)
	c.selectedID = ""
	c.log.Info().Str("shift_id", shiftID).Msg("shift returned to standby")
}

// ExportTSV renders the selected date's shifts as tab-separated rows.
func (c *Controller) ExportTSV() string {
	return export.TSV(c.DayShifts(), c.staff, c.departments)
}

func (c *Controller) commit(shifts []models.Shift) {
	c.shifts = shifts
	if c.sink == nil {
		return
	}
	if err := c.sink.SaveShifts(shifts); err != nil {
		c.log.Error().Err(err).Msg("failed to persist shifts")
	}
}

// --- Layout state ---

// ColumnWidth resolves one department's column width for the given total
// board width.
func (c *Controller) ColumnWidth(deptID string, totalWidth int) int {
	widths := c.cfg.ColumnWidths(c.departments, c.colWidths, totalWidth)
	for i, d := range c.departments {
		if d.DeptID == deptID {
			return widths[i]
		}
	}
	return c.cfg.MinColumnWidth
}

func (c *Controller) ColumnWidths(totalWidth int) []int {
	return c.cfg.ColumnWidths(c.departments, c.colWidths, totalWidth)
}

// HasWarning reports the availability marker for a shift; shifts whose staff
// reference cannot be resolved render without one (and are skipped by the
// views entirely).
func (c *Controller) HasWarning(s models.Shift) bool {
	st, ok := c.StaffByID(s.StaffID)
	if !ok {
		return false
	}
	return AvailabilityWarning(s, st)
}
