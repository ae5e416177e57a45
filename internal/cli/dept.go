package cli

import (
	"fmt"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type DeptCmd struct {
	Add    DeptAddCmd    `cmd:"" help:"Add a department."`
	List   DeptListCmd   `cmd:"" help:"List departments."`
	Delete DeptDeleteCmd `cmd:"" help:"Remove a department, its shifts, and its requirements."`
}

type DeptAddCmd struct {
	Name  string `arg:"" help:"Department name."`
	Color string `help:"Hex color used on the board." default:"#a5b4fc"`
}

func (c *DeptAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	d := models.Department{
		DeptID:    models.NewID(),
		Name:      c.Name,
		ColorCode: c.Color,
	}
	snap.Departments = append(snap.Departments, d)
	if err := ctx.Store.SaveDepartments(snap.Departments); err != nil {
		return err
	}

	ctx.Log.Info().Str("dept_id", d.DeptID).Str("name", d.Name).Msg("department added")
	fmt.Printf("Added department %q (%s)\n", d.Name, d.DeptID)
	return nil
}

type DeptListCmd struct{}

func (c *DeptListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	if len(snap.Departments) == 0 {
		fmt.Println("No departments yet. Add one with 'shiftpatch dept add'.")
		return nil
	}
	for _, d := range snap.Departments {
		fmt.Printf("%-36s  %-20s %s\n", d.DeptID, d.Name, d.ColorCode)
	}
	return nil
}

type DeptDeleteCmd struct {
	ID string `arg:"" help:"ID of the department to remove."`
}

func (c *DeptDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	found := false
	for _, d := range snap.Departments {
		if d.DeptID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no department with id %q", c.ID)
	}

	beforeShifts := len(snap.Shifts)
	beforeReqs := len(snap.Requirements)
	next := snap.RemoveDepartment(c.ID)
	if err := ctx.Store.SaveSnapshot(next); err != nil {
		return err
	}

	ctx.Log.Info().
		Str("dept_id", c.ID).
		Int("shifts_removed", beforeShifts-len(next.Shifts)).
		Int("requirements_removed", beforeReqs-len(next.Requirements)).
		Msg("department removed")
	fmt.Printf("Removed department %s, %d shift(s), %d requirement(s)\n",
		c.ID, beforeShifts-len(next.Shifts), beforeReqs-len(next.Requirements))
	return nil
}
