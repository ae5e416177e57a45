package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/board"
	"github.com/zenzaizenzai/ShiftPatch/internal/coverage"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return err
	}

	ctrl := board.NewController(board.DefaultConfig(), nil, zerolog.Nop())
	ctrl.SetData(snap.Departments, snap.Staff, snap.Shifts, snap.Requirements)
	ctrl.SetDate(date)

	fmt.Printf("Board for %s (%s):\n\n", date, timeutil.WeekdayOf(date))

	day := ctrl.DayShifts()
	if len(day) == 0 {
		fmt.Println("  No shifts scheduled")
	}
	for _, s := range day {
		st, okStaff := ctrl.StaffByID(s.StaffID)
		d, okDept := ctrl.DeptByID(s.DeptID)
		if !okStaff || !okDept {
			continue
		}
		marker := ""
		if ctrl.HasWarning(s) {
			marker = "  [outside availability]"
		}
		fmt.Printf("%s–%s  %-24s %s%s\n", s.StartTime, s.EndTime, st.Name, d.Name, marker)
	}

	// Understaffed cells for the day, if any requirements apply.
	cfg := ctrl.Config()
	short := 0
	for _, d := range snap.Departments {
		for hour := cfg.OpenHour; hour < cfg.CloseHour; hour++ {
			if ctrl.CoverageAt(d.DeptID, hour) == coverage.Understaffed {
				fmt.Printf("\n⚠ %s understaffed at %02d:00", d.Name, hour%24)
				short++
			}
		}
	}
	if short > 0 {
		fmt.Println()
	}

	pool := ctrl.UnassignedStaff()
	fmt.Printf("\nStandby: %d staff\n", len(pool))
	return nil
}
