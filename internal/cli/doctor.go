package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/zenzaizenzai/ShiftPatch/internal/backup"
	"github.com/zenzaizenzai/ShiftPatch/internal/storage"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: Storage reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: Data validation (only if storage is reachable)
	if storeReachable {
		if err := checkDataIntegrity(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Concurrent instances (warning only)
	if err := checkConcurrentInstances(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 5: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkDataIntegrity(ctx *Context) error {
	snap, err := ctx.Store.GetSnapshot()
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	deptIDs := make(map[string]bool)
	for _, d := range snap.Departments {
		if deptIDs[d.DeptID] {
			return fmt.Errorf("duplicate department ID found: %s", d.DeptID)
		}
		deptIDs[d.DeptID] = true
	}

	staffIDs := make(map[string]bool)
	for _, s := range snap.Staff {
		if staffIDs[s.StaffID] {
			return fmt.Errorf("duplicate staff ID found: %s", s.StaffID)
		}
		staffIDs[s.StaffID] = true
		if timeutil.ToMinutes(s.StartTime) > timeutil.ToMinutes(s.EndTime) {
			return fmt.Errorf("staff %s has availability ending before it starts (%s–%s)", s.StaffID, s.StartTime, s.EndTime)
		}
	}

	shiftIDs := make(map[string]bool)
	for _, sh := range snap.Shifts {
		if shiftIDs[sh.ShiftID] {
			return fmt.Errorf("duplicate shift ID found: %s", sh.ShiftID)
		}
		shiftIDs[sh.ShiftID] = true
		if !staffIDs[sh.StaffID] {
			return fmt.Errorf("shift %s references unknown staff %s", sh.ShiftID, sh.StaffID)
		}
		if !deptIDs[sh.DeptID] {
			return fmt.Errorf("shift %s references unknown department %s", sh.ShiftID, sh.DeptID)
		}
		if _, err := time.Parse(timeutil.DateFormat, sh.Date); err != nil {
			return fmt.Errorf("shift %s has invalid date %q", sh.ShiftID, sh.Date)
		}
		if timeutil.ToMinutes(sh.EndTime)-timeutil.ToMinutes(sh.StartTime) <= 0 {
			return fmt.Errorf("shift %s ends before it starts (%s–%s)", sh.ShiftID, sh.StartTime, sh.EndTime)
		}
	}

	for _, r := range snap.Requirements {
		if !deptIDs[r.DeptID] {
			return fmt.Errorf("requirement %s references unknown department %s", r.ReqID, r.DeptID)
		}
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'shiftpatch backup create'")
	}

	return nil
}

// checkConcurrentInstances warns when another shiftpatch process is running.
// Two instances writing the same snapshot file race on last-writer-wins.
func checkConcurrentInstances() error {
	self := filepath.Base(os.Args[0])
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.HasPrefix(p.Executable(), "shiftpatch") || p.Executable() == self {
			return fmt.Errorf("another shiftpatch process is running (PID %d) - concurrent edits may be lost", p.Pid())
		}
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
