package models

import "github.com/google/uuid"

type SkillLevel string

const (
	SkillHigh   SkillLevel = "high"
	SkillMedium SkillLevel = "medium"
	SkillLow    SkillLevel = "low"
)

// Department is a work area on the board. Shifts and requirements reference it
// by DeptID.
type Department struct {
	DeptID    string `json:"dept_id"`
	Name      string `json:"name"`
	ColorCode string `json:"color_code"` // display accent, hex or ANSI color
}

type Staff struct {
	StaffID   string     `json:"staff_id"`
	Name      string     `json:"name"`
	Skill     SkillLevel `json:"skill_level"`
	StartTime string     `json:"start_time"` // HH:MM, personal availability window
	EndTime   string     `json:"end_time"`   // HH:MM
	DayNote   string     `json:"avail_cond_text_day"`   // display only
	NightNote string     `json:"avail_cond_text_night"` // display only
}

// Requirement declares the headcount needed for one department during the
// one-hour window [StartHour, StartHour+1) on a given weekday.
type Requirement struct {
	ReqID         string `json:"req_id"`
	DeptID        string `json:"dept_id"`
	DayOfWeek     string `json:"day_of_week"` // "Mon".."Sun"
	StartHour     int    `json:"start_hour"`  // 0-23
	RequiredCount int    `json:"required_count"`
}

// Shift assigns one staff member to one department for a time range on one
// date. End is strictly after start; hours past 23 represent times after
// midnight within the same board day (e.g. "25:30").
type Shift struct {
	ShiftID   string `json:"shift_id"`
	StaffID   string `json:"staff_id"`
	DeptID    string `json:"dept_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewID() string {
	return uuid.NewString()
}
