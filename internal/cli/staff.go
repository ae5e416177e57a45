package cli

import (
	"fmt"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type StaffCmd struct {
	Add    StaffAddCmd    `cmd:"" help:"Add a staff member."`
	List   StaffListCmd   `cmd:"" help:"List staff members."`
	Delete StaffDeleteCmd `cmd:"" help:"Remove a staff member and their shifts."`
}

type StaffAddCmd struct {
	Name  string `arg:"" help:"Staff member's display name."`
	Skill string `help:"Skill level (high, medium, low)." default:"medium" enum:"high,medium,low"`
	Start string `help:"Earliest available time (HH:MM)." default:"09:00"`
	End   string `help:"Latest available time (HH:MM)." default:"22:00"`
}

func (c *StaffAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	st := models.Staff{
		StaffID:   models.NewID(),
		Name:      c.Name,
		Skill:     models.SkillLevel(c.Skill),
		StartTime: c.Start,
		EndTime:   c.End,
	}
	snap.Staff = append(snap.Staff, st)
	if err := ctx.Store.SaveStaff(snap.Staff); err != nil {
		return err
	}

	ctx.Log.Info().Str("staff_id", st.StaffID).Str("name", st.Name).Msg("staff added")
	fmt.Printf("Added staff %q (%s)\n", st.Name, st.StaffID)
	return nil
}

type StaffListCmd struct{}

func (c *StaffListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	if len(snap.Staff) == 0 {
		fmt.Println("No staff yet. Add one with 'shiftpatch staff add'.")
		return nil
	}
	for _, st := range snap.Staff {
		fmt.Printf("%-36s  %-20s %-6s %s–%s\n", st.StaffID, st.Name, st.Skill, st.StartTime, st.EndTime)
	}
	return nil
}

type StaffDeleteCmd struct {
	ID string `arg:"" help:"ID of the staff member to remove."`
}

func (c *StaffDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	found := false
	for _, st := range snap.Staff {
		if st.StaffID == c.ID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no staff member with id %q", c.ID)
	}

	before := len(snap.Shifts)
	next := snap.RemoveStaff(c.ID)
	if err := ctx.Store.SaveSnapshot(next); err != nil {
		return err
	}

	removed := before - len(next.Shifts)
	ctx.Log.Info().Str("staff_id", c.ID).Int("shifts_removed", removed).Msg("staff removed")
	fmt.Printf("Removed staff %s and %d shift(s)\n", c.ID, removed)
	return nil
}
