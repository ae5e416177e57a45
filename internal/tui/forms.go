package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type StaffFormModel struct {
	Name  string
	Skill models.SkillLevel
	Start string
	End   string
	Note  string
}

type DeptFormModel struct {
	Name  string
	Color string
}

type AssignFormModel struct {
	DeptID string
	Start  string
}

func validateClock(s string) error {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("use HH:MM")
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 47 {
		return fmt.Errorf("hour must be 0-47")
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return fmt.Errorf("minute must be 0-59")
	}
	return nil
}

func newStaffForm(fm *StaffFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.SkillLevel]().
				Title("Skill").
				Options(
					huh.NewOption("High", models.SkillHigh),
					huh.NewOption("Medium", models.SkillMedium),
					huh.NewOption("Low", models.SkillLow),
				).
				Value(&fm.Skill),
			huh.NewInput().
				Title("Available from (HH:MM)").
				Value(&fm.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("Available until (HH:MM)").
				Value(&fm.End).
				Validate(validateClock),
			huh.NewInput().
				Title("Note").
				Description("Shown in the standby pool").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

func newDeptForm(fm *DeptFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Department name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color").
				Description("Hex color used on the board").
				Value(&fm.Color).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "#") || len(s) != 7 {
						return fmt.Errorf("use #RRGGBB")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// ConfirmModel is heap-allocated so the form keeps writing to the same value
// across Model copies.
type ConfirmModel struct {
	Confirmed bool
}

func newConfirmDeleteForm(name string, fm *ConfirmModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", name)).
				Description("Their shifts are removed as well.").
				Affirmative("Remove").
				Negative("Keep").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

func newAssignForm(fm *AssignFormModel, departments []models.Department) *huh.Form {
	options := make([]huh.Option[string], len(departments))
	for i, d := range departments {
		options[i] = huh.NewOption(d.Name, d.DeptID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Department").
				Options(options...).
				Value(&fm.DeptID),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&fm.Start).
				Validate(validateClock),
		),
	).WithTheme(huh.ThemeDracula())
}
