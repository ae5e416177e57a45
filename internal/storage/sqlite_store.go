package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS departments (
	dept_id    TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	color_code TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS staff (
	staff_id   TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	skill      TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	day_note   TEXT NOT NULL DEFAULT '',
	night_note TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS requirements (
	req_id         TEXT PRIMARY KEY,
	dept_id        TEXT NOT NULL,
	day_of_week    TEXT NOT NULL,
	start_hour     INTEGER NOT NULL,
	required_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS shifts (
	shift_id   TEXT PRIMARY KEY,
	staff_id   TEXT NOT NULL,
	dept_id    TEXT NOT NULL,
	date       TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
`

type SQLiteStore struct {
	path string
	log  zerolog.Logger
	db   *sql.DB
}

func NewSQLiteStore(path string, log zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{
		path: path,
		log:  log,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed a fresh database with the default snapshot.
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if count == 0 {
		if err := s.SaveSnapshot(DefaultSnapshot()); err != nil {
			return fmt.Errorf("failed to seed default snapshot: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'shiftpatch init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSnapshot() (Snapshot, error) {
	if s.db == nil {
		return Snapshot{}, fmt.Errorf("storage not loaded")
	}

	var snap Snapshot

	rows, err := s.db.Query("SELECT dept_id, name, color_code FROM departments ORDER BY rowid")
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.DeptID, &d.Name, &d.ColorCode); err != nil {
			return Snapshot{}, err
		}
		snap.Departments = append(snap.Departments, d)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	rows, err = s.db.Query("SELECT staff_id, name, skill, start_time, end_time, day_note, night_note FROM staff ORDER BY rowid")
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var st models.Staff
		var skill string
		if err := rows.Scan(&st.StaffID, &st.Name, &skill, &st.StartTime, &st.EndTime, &st.DayNote, &st.NightNote); err != nil {
			return Snapshot{}, err
		}
		st.Skill = models.SkillLevel(skill)
		snap.Staff = append(snap.Staff, st)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	rows, err = s.db.Query("SELECT req_id, dept_id, day_of_week, start_hour, required_count FROM requirements ORDER BY rowid")
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var r models.Requirement
		if err := rows.Scan(&r.ReqID, &r.DeptID, &r.DayOfWeek, &r.StartHour, &r.RequiredCount); err != nil {
			return Snapshot{}, err
		}
		snap.Requirements = append(snap.Requirements, r)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	rows, err = s.db.Query("SELECT shift_id, staff_id, dept_id, date, start_time, end_time FROM shifts ORDER BY rowid")
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var sh models.Shift
		if err := rows.Scan(&sh.ShiftID, &sh.StaffID, &sh.DeptID, &sh.Date, &sh.StartTime, &sh.EndTime); err != nil {
			return Snapshot{}, err
		}
		snap.Shifts = append(snap.Shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

func (s *SQLiteStore) SaveSnapshot(snap Snapshot) error {
	if err := s.SaveDepartments(snap.Departments); err != nil {
		return err
	}
	if err := s.SaveStaff(snap.Staff); err != nil {
		return err
	}
	if err := s.SaveRequirements(snap.Requirements); err != nil {
		return err
	}
	return s.SaveShifts(snap.Shifts)
}

// SaveShifts replaces the shift table wholesale; every committed board change
// is a full-collection write.
func (s *SQLiteStore) SaveShifts(shifts []models.Shift) error {
	return s.replace("shifts",
		"INSERT INTO shifts (shift_id, staff_id, dept_id, date, start_time, end_time) VALUES (?, ?, ?, ?, ?, ?)",
		len(shifts), func(i int) []any {
			sh := shifts[i]
			return []any{sh.ShiftID, sh.StaffID, sh.DeptID, sh.Date, sh.StartTime, sh.EndTime}
		})
}

func (s *SQLiteStore) SaveStaff(staff []models.Staff) error {
	return s.replace("staff",
		"INSERT INTO staff (staff_id, name, skill, start_time, end_time, day_note, night_note) VALUES (?, ?, ?, ?, ?, ?, ?)",
		len(staff), func(i int) []any {
			st := staff[i]
			return []any{st.StaffID, st.Name, string(st.Skill), st.StartTime, st.EndTime, st.DayNote, st.NightNote}
		})
}

func (s *SQLiteStore) SaveDepartments(departments []models.Department) error {
	return s.replace("departments",
		"INSERT INTO departments (dept_id, name, color_code) VALUES (?, ?, ?)",
		len(departments), func(i int) []any {
			d := departments[i]
			return []any{d.DeptID, d.Name, d.ColorCode}
		})
}

func (s *SQLiteStore) SaveRequirements(requirements []models.Requirement) error {
	return s.replace("requirements",
		"INSERT INTO requirements (req_id, dept_id, day_of_week, start_hour, required_count) VALUES (?, ?, ?, ?, ?)",
		len(requirements), func(i int) []any {
			r := requirements[i]
			return []any{r.ReqID, r.DeptID, r.DayOfWeek, r.StartHour, r.RequiredCount}
		})
}

// replace clears a table and inserts the full collection inside one
// transaction, so readers never observe a partial write.
func (s *SQLiteStore) replace(table, insert string, n int, args func(i int) []any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return err
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
