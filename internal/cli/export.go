package cli

import (
	"fmt"

	"github.com/zenzaizenzai/ShiftPatch/internal/export"
	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type ExportCmd struct {
	Date      string `arg:"" help:"Date to export (YYYY-MM-DD or 'today')." default:"today"`
	Clipboard bool   `short:"c" help:"Copy to the system clipboard instead of printing."`
}

func (c *ExportCmd) Run(ctx *Context) error {
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

	var day []models.Shift
	for _, s := range snap.Shifts {
		if s.Date == date {
			day = append(day, s)
		}
	}

	tsv := export.TSV(day, snap.Staff, snap.Departments)
	if c.Clipboard {
		if err := export.ToClipboard(tsv); err != nil {
			return err
		}
		ctx.Log.Info().Str("date", date).Int("shifts", len(day)).Msg("exported to clipboard")
		fmt.Printf("Copied %d shift(s) for %s to the clipboard.\n", len(day), date)
		return nil
	}

	fmt.Println(tsv)
	return nil
}
