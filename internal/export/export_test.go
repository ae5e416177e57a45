package export

import (
	"strings"
	"testing"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

var (
	testStaff = []models.Staff{
		{StaffID: "s1", Name: "Sato"},
		{StaffID: "s2", Name: "Tanaka"},
	}
	testDepts = []models.Department{
		{DeptID: "d1", Name: "Kitchen"},
		{DeptID: "d2", Name: "Hall"},
	}
)

func TestTSV_EmptyDateIsHeaderOnly(t *testing.T) {
	got := TSV(nil, testStaff, testDepts)
	if got != "date\tname\tdepartment\tstart\tend" {
		t.Errorf("empty export = %q", got)
	}
}

func TestTSV_OneRowPerShift(t *testing.T) {
	shifts := []models.Shift{
		{ShiftID: "sh1", StaffID: "s1", DeptID: "d1", Date: "2025-12-29", StartTime: "09:00", EndTime: "13:00"},
		{ShiftID: "sh2", StaffID: "s2", DeptID: "d2", Date: "2025-12-29", StartTime: "17:00", EndTime: "22:00"},
	}

	got := TSV(shifts, testStaff, testDepts)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), got)
	}
	if lines[1] != "2025-12-29\tSato\tKitchen\t09:00\t13:00" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2025-12-29\tTanaka\tHall\t17:00\t22:00" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestTSV_SkipsDanglingReferences(t *testing.T) {
	shifts := []models.Shift{
		{ShiftID: "sh1", StaffID: "ghost", DeptID: "d1", Date: "2025-12-29", StartTime: "09:00", EndTime: "13:00"},
		{ShiftID: "sh2", StaffID: "s1", DeptID: "gone", Date: "2025-12-29", StartTime: "09:00", EndTime: "13:00"},
		{ShiftID: "sh3", StaffID: "s1", DeptID: "d1", Date: "2025-12-29", StartTime: "09:00", EndTime: "13:00"},
	}

	got := TSV(shifts, testStaff, testDepts)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 resolvable row:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "Sato") {
		t.Errorf("surviving row = %q", lines[1])
	}
}
