package coverage

import (
	"testing"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

func shift(dept, start, end string) models.Shift {
	return models.Shift{
		ShiftID:   dept + start,
		StaffID:   "s1",
		DeptID:    dept,
		Date:      "2025-12-29",
		StartTime: start,
		EndTime:   end,
	}
}

func TestEvaluate_NoRequirementIsNone(t *testing.T) {
	shifts := []models.Shift{shift("d1", "09:00", "13:00")}

	if got := Evaluate(shifts, nil, "d1", "Mon", 9); got != None {
		t.Errorf("no requirements: got %v, want None", got)
	}

	zero := []models.Requirement{{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 9, RequiredCount: 0}}
	if got := Evaluate(shifts, zero, "d1", "Mon", 9); got != None {
		t.Errorf("zero required_count: got %v, want None", got)
	}
}

func TestEvaluate_OverlapCounting(t *testing.T) {
	shifts := []models.Shift{
		shift("d1", "09:00", "13:00"),
		shift("d1", "12:00", "15:00"),
	}
	reqAt := func(hour int) []models.Requirement {
		return []models.Requirement{{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: hour, RequiredCount: 2}}
	}

	// Both shifts overlap hour 12: [09:00,13:00) and [12:00,15:00).
	if got := Evaluate(shifts, reqAt(12), "d1", "Mon", 12); got != Sufficient {
		t.Errorf("hour 12: got %v, want Sufficient", got)
	}
	// Only the second shift overlaps hour 13.
	if got := Evaluate(shifts, reqAt(13), "d1", "Mon", 13); got != Understaffed {
		t.Errorf("hour 13: got %v, want Understaffed", got)
	}
}

func TestEvaluate_StrictIntervalOverlap(t *testing.T) {
	// A shift ending exactly at the window start does not overlap it.
	shifts := []models.Shift{shift("d1", "09:00", "12:00")}
	reqs := []models.Requirement{{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 1}}

	if got := Evaluate(shifts, reqs, "d1", "Mon", 12); got != Understaffed {
		t.Errorf("touching interval counted as overlap: got %v", got)
	}
}

func TestEvaluate_IgnoresOtherDepartmentsAndDays(t *testing.T) {
	shifts := []models.Shift{shift("d2", "09:00", "13:00")}
	reqs := []models.Requirement{
		{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 9, RequiredCount: 1},
		{ReqID: "r2", DeptID: "d1", DayOfWeek: "Tue", StartHour: 10, RequiredCount: 1},
	}

	if got := Evaluate(shifts, reqs, "d1", "Mon", 9); got != Understaffed {
		t.Errorf("d2 shift counted for d1: got %v", got)
	}
	if got := Evaluate(shifts, reqs, "d1", "Mon", 10); got != None {
		t.Errorf("Tuesday requirement matched on Monday: got %v", got)
	}
}

func TestRequired_PastMidnightLookup(t *testing.T) {
	reqs := []models.Requirement{{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 1, RequiredCount: 2}}

	// Board hour 25 is 01:00 next morning; requirements store clock hours 0-23.
	if got := Required(reqs, "d1", "Mon", 25); got != 2 {
		t.Errorf("Required at board hour 25 = %d, want 2", got)
	}
}

func TestAssigned_CountsOverlapsOnly(t *testing.T) {
	shifts := []models.Shift{
		shift("d1", "06:00", "08:00"),
		shift("d1", "07:30", "10:00"),
		shift("d1", "08:00", "09:00"),
	}
	if got := Assigned(shifts, "d1", 7); got != 2 {
		t.Errorf("Assigned(hour 7) = %d, want 2", got)
	}
}
