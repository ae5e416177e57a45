// Package export renders one date's shifts as tab-separated rows suitable for
// pasting into a spreadsheet, and places them on the system clipboard.
package export

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

var header = strings.Join([]string{"date", "name", "department", "start", "end"}, "\t")

// TSV renders the header row followed by one row per shift. Shifts whose
// staff or department reference cannot be resolved are skipped rather than
// rendered with holes.
func TSV(shifts []models.Shift, staff []models.Staff, departments []models.Department) string {
	staffNames := make(map[string]string, len(staff))
	for _, st := range staff {
		staffNames[st.StaffID] = st.Name
	}
	deptNames := make(map[string]string, len(departments))
	for _, d := range departments {
		deptNames[d.DeptID] = d.Name
	}

	var b strings.Builder
	b.WriteString(header)
	for _, s := range shifts {
		name, okStaff := staffNames[s.StaffID]
		dept, okDept := deptNames[s.DeptID]
		if !okStaff || !okDept {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{s.Date, name, dept, s.StartTime, s.EndTime}, "\t"))
	}
	return b.String()
}

// ToClipboard places the rendered rows on the system clipboard.
func ToClipboard(tsv string) error {
	if err := clipboard.WriteAll(tsv); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
