package e2e

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/board"
	"github.com/zenzaizenzai/ShiftPatch/internal/coverage"
	"github.com/zenzaizenzai/ShiftPatch/internal/export"
	"github.com/zenzaizenzai/ShiftPatch/internal/storage"
)

// TestEndToEndWorkflow walks the full scheduling loop against a real JSON
// store: initialize, drop a staff member onto the board, move the shift,
// export the day, and return the shift to standby. A fresh store instance is
// opened between steps to prove every edit actually hit disk.
func TestEndToEndWorkflow(t *testing.T) {
	tempDir := t.TempDir()
	storePath := filepath.Join(tempDir, "shiftpatch.json")

	store := storage.NewJSONStore(storePath, zerolog.Nop())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	snap, err := store.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if len(snap.Departments) == 0 || len(snap.Staff) == 0 {
		t.Fatal("expected seeded departments and staff")
	}

	cfg := board.DefaultConfig()
	ctrl := board.NewController(cfg, store, zerolog.Nop())
	ctrl.SetData(snap.Departments, snap.Staff, snap.Shifts, snap.Requirements)
	ctrl.SetDate("2026-01-05") // a Monday, so the seeded requirements apply

	staff := snap.Staff[0]
	dept := snap.Departments[0]

	// Drop at the 13:00 row.
	offsetY := int(float64(13*60-cfg.OpenMinutes()) * cfg.PxPerMin)
	shift, ok := ctrl.DropStaff(board.DropPayload{StaffID: staff.StaffID}, dept.DeptID, offsetY)
	if !ok {
		t.Fatal("DropStaff rejected a valid payload")
	}
	if shift.StartTime != "13:00" || shift.EndTime != "17:00" {
		t.Errorf("expected 13:00-17:00, got %s-%s", shift.StartTime, shift.EndTime)
	}

	// The standby pool no longer contains the scheduled member.
	for _, st := range ctrl.UnassignedStaff() {
		if st.StaffID == staff.StaffID {
			t.Error("scheduled staff member still in standby pool")
		}
	}

	// Reopen the store: the drop must have been persisted.
	store2 := storage.NewJSONStore(storePath, zerolog.Nop())
	if err := store2.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	snap2, err := store2.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot after reload failed: %v", err)
	}
	if len(snap2.Shifts) != 1 {
		t.Fatalf("expected 1 persisted shift, got %d", len(snap2.Shifts))
	}

	// Nudge the shift an hour later and confirm coverage follows it.
	ctrl.SelectShift(shift.ShiftID)
	ctrl.NudgeSelected(60)
	moved, ok := ctrl.ShiftByID(shift.ShiftID)
	if !ok {
		t.Fatal("shift disappeared after nudge")
	}
	if moved.StartTime != "14:00" || moved.EndTime != "18:00" {
		t.Errorf("expected 14:00-18:00 after nudge, got %s-%s", moved.StartTime, moved.EndTime)
	}
	if got := ctrl.CoverageAt(dept.DeptID, 12); got != coverage.Understaffed {
		t.Errorf("expected hour 12 understaffed, got %v", got)
	}

	// Export the day.
	tsv := export.TSV(ctrl.DayShifts(), ctrl.StaffList(), ctrl.Departments())
	lines := strings.Split(tsv, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	row := strings.Split(lines[1], "\t")
	if row[0] != "2026-01-05" || row[1] != staff.Name || row[2] != dept.Name {
		t.Errorf("unexpected export row: %q", lines[1])
	}

	// Return to standby and verify the deletion persisted.
	ctrl.ReturnToStandby(shift.ShiftID)
	store3 := storage.NewJSONStore(storePath, zerolog.Nop())
	if err := store3.Load(); err != nil {
		t.Fatalf("final reload failed: %v", err)
	}
	snap3, err := store3.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot after delete failed: %v", err)
	}
	if len(snap3.Shifts) != 0 {
		t.Errorf("expected 0 shifts after return to standby, got %d", len(snap3.Shifts))
	}
}
