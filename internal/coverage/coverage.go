// Package coverage grades staffing adequacy for one department/hour cell
// against the declared requirements.
package coverage

import (
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

type Level int

const (
	None Level = iota // no requirement declared for the cell
	Understaffed
	Sufficient
)

func (l Level) String() string {
	switch l {
	case Understaffed:
		return "understaffed"
	case Sufficient:
		return "sufficient"
	default:
		return "none"
	}
}

// Required returns the declared headcount for (dept, weekday, hour), or zero
// when no requirement matches. Board hours past midnight (>= 24) are looked up
// against their 0-23 clock hour.
func Required(requirements []models.Requirement, deptID, weekday string, hour int) int {
	lookup := hour
	if lookup >= 24 {
		lookup -= 24
	}
	for _, r := range requirements {
		if r.DeptID == deptID && r.DayOfWeek == weekday && r.StartHour == lookup {
			return r.RequiredCount
		}
	}
	return 0
}

// Assigned counts the shifts of one department whose [start, end) interval
// strictly overlaps the hour window [hour*60, hour*60+60).
func Assigned(dayShifts []models.Shift, deptID string, hour int) int {
	windowStart := hour * 60
	windowEnd := windowStart + 60
	n := 0
	for _, s := range dayShifts {
		if s.DeptID != deptID {
			continue
		}
		if timeutil.ToMinutes(s.StartTime) < windowEnd && timeutil.ToMinutes(s.EndTime) > windowStart {
			n++
		}
	}
	return n
}

// Evaluate grades one department/hour cell for the given weekday. dayShifts
// must already be filtered to the visible date.
func Evaluate(dayShifts []models.Shift, requirements []models.Requirement, deptID, weekday string, hour int) Level {
	required := Required(requirements, deptID, weekday, hour)
	if required == 0 {
		return None
	}
	if Assigned(dayShifts, deptID, hour) < required {
		return Understaffed
	}
	return Sufficient
}
