package storage

import (
	"testing"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

func cascadeFixture() Snapshot {
	return Snapshot{
		Departments: []models.Department{
			{DeptID: "d1", Name: "Kitchen"},
			{DeptID: "d2", Name: "Hall"},
		},
		Staff: []models.Staff{
			{StaffID: "s1", Name: "Sato"},
			{StaffID: "s2", Name: "Tanaka"},
		},
		Shifts: []models.Shift{
			{ShiftID: "sh1", StaffID: "s1", DeptID: "d1", Date: "2025-12-29"},
			{ShiftID: "sh2", StaffID: "s2", DeptID: "d1", Date: "2025-12-29"},
			{ShiftID: "sh3", StaffID: "s1", DeptID: "d2", Date: "2025-12-30"},
		},
		Requirements: []models.Requirement{
			{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 2},
			{ReqID: "r2", DeptID: "d2", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 3},
		},
	}
}

func TestRemoveStaffCascades(t *testing.T) {
	snap := cascadeFixture().RemoveStaff("s1")

	if len(snap.Staff) != 1 || snap.Staff[0].StaffID != "s2" {
		t.Fatalf("staff after cascade = %+v", snap.Staff)
	}
	if len(snap.Shifts) != 1 || snap.Shifts[0].ShiftID != "sh2" {
		t.Fatalf("shifts after cascade = %+v, want only sh2", snap.Shifts)
	}
	// Departments and requirements are untouched by a staff cascade.
	if len(snap.Departments) != 2 || len(snap.Requirements) != 2 {
		t.Errorf("staff cascade touched departments/requirements")
	}
}

func TestRemoveDepartmentCascades(t *testing.T) {
	snap := cascadeFixture().RemoveDepartment("d1")

	if len(snap.Departments) != 1 || snap.Departments[0].DeptID != "d2" {
		t.Fatalf("departments after cascade = %+v", snap.Departments)
	}
	if len(snap.Shifts) != 1 || snap.Shifts[0].ShiftID != "sh3" {
		t.Fatalf("shifts after cascade = %+v, want only sh3", snap.Shifts)
	}
	if len(snap.Requirements) != 1 || snap.Requirements[0].ReqID != "r2" {
		t.Fatalf("requirements after cascade = %+v, want only r2", snap.Requirements)
	}
	if len(snap.Staff) != 2 {
		t.Error("department cascade touched staff")
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	before := cascadeFixture()
	after := before.RemoveStaff("ghost").RemoveDepartment("ghost")

	if len(after.Staff) != len(before.Staff) ||
		len(after.Shifts) != len(before.Shifts) ||
		len(after.Departments) != len(before.Departments) {
		t.Errorf("removing unknown ids changed the snapshot: %+v", after)
	}
}

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot()

	if len(snap.Departments) != 3 || len(snap.Staff) != 3 || len(snap.Requirements) != 2 {
		t.Fatalf("unexpected seed sizes: %d depts, %d staff, %d reqs",
			len(snap.Departments), len(snap.Staff), len(snap.Requirements))
	}
	if len(snap.Shifts) != 0 {
		t.Error("seed snapshot should start with an empty board")
	}

	// Every seeded requirement must reference a seeded department.
	depts := make(map[string]bool)
	for _, d := range snap.Departments {
		depts[d.DeptID] = true
	}
	for _, r := range snap.Requirements {
		if !depts[r.DeptID] {
			t.Errorf("requirement %s references unknown department %s", r.ReqID, r.DeptID)
		}
	}
}
