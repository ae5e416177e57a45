package board

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/coverage"
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type recordingSink struct {
	saves [][]models.Shift
	err   error
}

func (r *recordingSink) SaveShifts(shifts []models.Shift) error {
	snapshot := append([]models.Shift{}, shifts...)
	r.saves = append(r.saves, snapshot)
	return r.err
}

func newTestController(sink ShiftSink) *Controller {
	c := NewController(testConfig(), sink, zerolog.Nop())
	c.SetData(
		[]models.Department{
			{DeptID: "d1", Name: "Kitchen"},
			{DeptID: "d2", Name: "Hall"},
		},
		[]models.Staff{
			{StaffID: "s1", Name: "Sato", Skill: models.SkillHigh, StartTime: "09:00", EndTime: "23:00"},
			{StaffID: "s2", Name: "Tanaka", Skill: models.SkillMedium, StartTime: "17:00", EndTime: "22:00"},
		},
		[]models.Shift{
			{ShiftID: "sh1", StaffID: "s1", DeptID: "d1", Date: "2025-12-29", StartTime: "09:00", EndTime: "13:00"},
			{ShiftID: "sh2", StaffID: "s2", DeptID: "d1", Date: "2025-12-30", StartTime: "12:00", EndTime: "15:00"},
		},
		[]models.Requirement{
			{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 2},
		},
	)
	c.SetDate("2025-12-29")
	return c
}

func TestDayShiftsAndUnassignedPool(t *testing.T) {
	c := newTestController(nil)

	day := c.DayShifts()
	if len(day) != 1 || day[0].ShiftID != "sh1" {
		t.Fatalf("DayShifts = %+v, want only sh1", day)
	}

	pool := c.UnassignedStaff()
	if len(pool) != 1 || pool[0].StaffID != "s2" {
		t.Fatalf("UnassignedStaff = %+v, want only s2", pool)
	}

	// On the next day the assignments flip.
	c.SetDate("2025-12-30")
	pool = c.UnassignedStaff()
	if len(pool) != 1 || pool[0].StaffID != "s1" {
		t.Fatalf("UnassignedStaff after date change = %+v, want only s1", pool)
	}
}

func TestCoverageAt(t *testing.T) {
	c := newTestController(nil)

	// 2025-12-29 is a Monday; only sh1 overlaps hour 12 and two are required.
	if got := c.CoverageAt("d1", 12); got != coverage.Understaffed {
		t.Errorf("CoverageAt(d1, 12) = %v, want Understaffed", got)
	}
	if got := c.CoverageAt("d1", 8); got != coverage.None {
		t.Errorf("CoverageAt(d1, 8) = %v, want None", got)
	}
}

func TestDropStaffCreatesSnappedShift(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink)

	// Vertical offset for 13:07 at 1.2 px/min from a 06:00 open.
	minutesFromOpen := 787 - 360
	offsetY := int(float64(minutesFromOpen) * 1.2)
	created, ok := c.DropStaff(DropPayload{StaffID: "s2"}, "d2", offsetY)
	if !ok {
		t.Fatal("drop was rejected")
	}

	if created.StartTime != "13:00" || created.EndTime != "17:00" {
		t.Errorf("created %s-%s, want 13:00-17:00", created.StartTime, created.EndTime)
	}
	if created.DeptID != "d2" || created.StaffID != "s2" {
		t.Errorf("created refs = %s/%s, want d2/s2", created.DeptID, created.StaffID)
	}
	if created.Date != "2025-12-29" {
		t.Errorf("created date = %s", created.Date)
	}
	if c.SelectedID() != created.ShiftID {
		t.Error("new shift was not selected")
	}
	if len(sink.saves) != 1 || len(sink.saves[0]) != 3 {
		t.Fatalf("sink saw %d saves of sizes %v, want one full 3-shift collection", len(sink.saves), sink.saves)
	}
}

func TestScheduleStaffKeepsQuarterHourStart(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink)

	// 09:15 is on the snap interval and must survive untouched, even though
	// the terminal scale cannot represent it as a whole row.
	created, ok := c.ScheduleStaff(DropPayload{StaffID: "s2"}, "d2", 9*60+15)
	if !ok {
		t.Fatal("schedule was rejected")
	}
	if created.StartTime != "09:15" || created.EndTime != "13:15" {
		t.Errorf("created %s-%s, want 09:15-13:15", created.StartTime, created.EndTime)
	}
	if c.SelectedID() != created.ShiftID {
		t.Error("new shift was not selected")
	}

	// Off-interval minutes snap like a drop.
	created, ok = c.ScheduleStaff(DropPayload{StaffID: "s1"}, "d2", 9*60+22)
	if !ok {
		t.Fatal("schedule was rejected")
	}
	if created.StartTime != "09:15" {
		t.Errorf("09:22 snapped to %s, want 09:15", created.StartTime)
	}
}

func TestDropStaffClampsNearClose(t *testing.T) {
	c := newTestController(&recordingSink{})

	// A drop at the very bottom still has to fit the default duration.
	created, ok := c.DropStaff(DropPayload{StaffID: "s2"}, "d1", 100000)
	if !ok {
		t.Fatal("drop was rejected")
	}
	if created.StartTime != "22:00" || created.EndTime != "26:00" {
		t.Errorf("created %s-%s, want 22:00-26:00", created.StartTime, created.EndTime)
	}
}

func TestDropStaffIgnoresBadPayload(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink)

	if _, ok := c.DropStaff(DropPayload{}, "d1", 0); ok {
		t.Error("empty payload accepted")
	}
	if _, ok := c.DropStaff(DropPayload{StaffID: "ghost"}, "d1", 0); ok {
		t.Error("unknown staff accepted")
	}
	if _, ok := c.DropStaff(DropPayload{StaffID: "s1"}, "nope", 0); ok {
		t.Error("unknown department accepted")
	}
	if len(sink.saves) != 0 {
		t.Errorf("rejected drops persisted %d times", len(sink.saves))
	}
}

func TestReturnToStandby(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink)
	c.SelectShift("sh1")

	c.ReturnToStandby("sh1")

	if _, ok := c.ShiftByID("sh1"); ok {
		t.Error("shift still present after return to standby")
	}
	if _, ok := c.ShiftByID("sh2"); !ok {
		t.Error("unrelated shift was removed")
	}
	if c.SelectedID() != "" {
		t.Error("selection not cleared")
	}
	if len(sink.saves) != 1 || len(sink.saves[0]) != 1 {
		t.Fatalf("sink saves = %v, want one save with the surviving shift", sink.saves)
	}

	pool := c.UnassignedStaff()
	if len(pool) != 2 {
		t.Errorf("standby pool has %d staff, want 2", len(pool))
	}
}

func TestPointerDragSequenceCommitsEveryMove(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(sink)

	c.PressShift("sh1", DragMove, 100)
	if c.SelectedID() != "sh1" {
		t.Error("press did not select the shift")
	}

	c.PointerMove(0, 118) // +15 minutes
	c.PointerMove(0, 136) // +30 minutes
	c.PointerRelease()

	if len(sink.saves) != 2 {
		t.Fatalf("sink saw %d saves, want one per move", len(sink.saves))
	}
	s, _ := c.ShiftByID("sh1")
	if s.StartTime != "09:30" || s.EndTime != "13:30" {
		t.Errorf("after drag: %s-%s, want 09:30-13:30", s.StartTime, s.EndTime)
	}
	if c.Dragging() {
		t.Error("release did not return the machine to idle")
	}
}

func TestSingleGestureAtATime(t *testing.T) {
	c := newTestController(&recordingSink{})

	c.PressColumn("d1", 150, 40)
	c.PressShift("sh1", DragMove, 0) // ignored while the column drag owns the pointer
	c.PointerMove(100, 500)

	if w := c.ColumnWidth("d1", 600); w != 210 {
		t.Errorf("column width = %d, want 210", w)
	}
	s, _ := c.ShiftByID("sh1")
	if s.StartTime != "09:00" {
		t.Errorf("column resize moved a shift to %s", s.StartTime)
	}

	c.PointerRelease()
	if c.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestNudgeAndResizeSelected(t *testing.T) {
	c := newTestController(&recordingSink{})
	c.SelectShift("sh1")

	c.NudgeSelected(15)
	s, _ := c.ShiftByID("sh1")
	if s.StartTime != "09:15" || s.EndTime != "13:15" {
		t.Errorf("nudge gave %s-%s, want 09:15-13:15", s.StartTime, s.EndTime)
	}

	c.ResizeSelected(DragResizeEnd, -15)
	s, _ = c.ShiftByID("sh1")
	if s.StartTime != "09:15" || s.EndTime != "13:00" {
		t.Errorf("resize gave %s-%s, want 09:15-13:00", s.StartTime, s.EndTime)
	}

	// Nudging with nothing selected is a no-op.
	c.Deselect()
	c.NudgeSelected(60)
	s, _ = c.ShiftByID("sh1")
	if s.StartTime != "09:15" {
		t.Errorf("deselected nudge moved shift to %s", s.StartTime)
	}
}

func TestHasWarning(t *testing.T) {
	c := newTestController(nil)

	// sh1 (09:00-13:00) sits inside Sato's 09:00-23:00 window.
	s, _ := c.ShiftByID("sh1")
	if c.HasWarning(s) {
		t.Error("in-window shift flagged")
	}

	// sh2 (12:00-15:00) starts before Tanaka's 17:00 availability.
	s, _ = c.ShiftByID("sh2")
	if !c.HasWarning(s) {
		t.Error("out-of-window shift not flagged")
	}

	// Dangling staff references never warn (and never crash).
	if c.HasWarning(models.Shift{StaffID: "ghost"}) {
		t.Error("dangling reference flagged")
	}
}
