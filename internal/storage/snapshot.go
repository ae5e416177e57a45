package storage

import "github.com/zenzaizenzai/ShiftPatch/internal/models"

// Snapshot is the complete persisted state: every collection is written in
// full on each change (replace-on-write, never incremental patches).
type Snapshot struct {
	Departments  []models.Department  `json:"departments"`
	Staff        []models.Staff       `json:"staff"`
	Shifts       []models.Shift       `json:"shifts"`
	Requirements []models.Requirement `json:"requirements"`
}

// DefaultSnapshot seeds a small restaurant so a fresh (or unreadable) store
// opens onto a usable board.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Departments: []models.Department{
			{DeptID: "d1", Name: "Kitchen", ColorCode: "#fca5a5"},
			{DeptID: "d2", Name: "Hall", ColorCode: "#67e8f9"},
			{DeptID: "d3", Name: "Register", ColorCode: "#bef264"},
		},
		Staff: []models.Staff{
			{StaffID: "s1", Name: "Sato (manager)", Skill: models.SkillHigh, StartTime: "09:00", EndTime: "23:00", DayNote: "any day", NightNote: "any day"},
			{StaffID: "s2", Name: "Tanaka (part-time)", Skill: models.SkillMedium, StartTime: "17:00", EndTime: "22:00", DayNote: "classes first", NightNote: "weekdays ok"},
			{StaffID: "s3", Name: "Suzuki (trainee)", Skill: models.SkillLow, StartTime: "18:00", EndTime: "22:00", DayNote: "unavailable", NightNote: "weekends only"},
		},
		Requirements: []models.Requirement{
			{ReqID: "r1", DeptID: "d1", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 2},
			{ReqID: "r2", DeptID: "d2", DayOfWeek: "Mon", StartHour: 12, RequiredCount: 3},
		},
	}
}

// RemoveStaff drops a staff member and cascades: every shift referencing the
// removed id goes with them, keeping the snapshot free of dangling references.
func (s Snapshot) RemoveStaff(staffID string) Snapshot {
	staff := make([]models.Staff, 0, len(s.Staff))
	for _, st := range s.Staff {
		if st.StaffID != staffID {
			staff = append(staff, st)
		}
	}
	shifts := make([]models.Shift, 0, len(s.Shifts))
	for _, sh := range s.Shifts {
		if sh.StaffID != staffID {
			shifts = append(shifts, sh)
		}
	}
	s.Staff = staff
	s.Shifts = shifts
	return s
}

// RemoveDepartment drops a department, its shifts, and its requirements.
func (s Snapshot) RemoveDepartment(deptID string) Snapshot {
	depts := make([]models.Department, 0, len(s.Departments))
	for _, d := range s.Departments {
		if d.DeptID != deptID {
			depts = append(depts, d)
		}
	}
	shifts := make([]models.Shift, 0, len(s.Shifts))
	for _, sh := range s.Shifts {
		if sh.DeptID != deptID {
			shifts = append(shifts, sh)
		}
	}
	reqs := make([]models.Requirement, 0, len(s.Requirements))
	for _, r := range s.Requirements {
		if r.DeptID != deptID {
			reqs = append(reqs, r)
		}
	}
	s.Departments = depts
	s.Shifts = shifts
	s.Requirements = reqs
	return s
}
