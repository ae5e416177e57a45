package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type fileStore struct {
	Version int `json:"version"`
	Snapshot
}

type JSONStore struct {
	path string
	log  zerolog.Logger
	snap *Snapshot
}

func NewJSONStore(path string, log zerolog.Logger) *JSONStore {
	return &JSONStore{
		path: path,
		log:  log,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	snap := DefaultSnapshot()
	s.snap = &snap
	return s.save()
}

// Load reads the persisted snapshot. A file that exists but cannot be parsed
// is replaced by the default snapshot rather than surfaced as a failure; the
// board must always come up.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'shiftpatch init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	store := &fileStore{}
	if err := json.Unmarshal(data, store); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("snapshot unreadable, falling back to defaults")
		snap := DefaultSnapshot()
		s.snap = &snap
		return nil
	}

	s.snap = &store.Snapshot
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(&fileStore{Version: 1, Snapshot: *s.snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSnapshot() (Snapshot, error) {
	if s.snap == nil {
		return Snapshot{}, fmt.Errorf("storage not loaded")
	}
	return *s.snap, nil
}

func (s *JSONStore) SaveSnapshot(snap Snapshot) error {
	s.snap = &snap
	return s.save()
}

func (s *JSONStore) SaveShifts(shifts []models.Shift) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.snap.Shifts = shifts
	return s.save()
}

func (s *JSONStore) SaveStaff(staff []models.Staff) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.snap.Staff = staff
	return s.save()
}

func (s *JSONStore) SaveDepartments(departments []models.Department) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.snap.Departments = departments
	return s.save()
}

func (s *JSONStore) SaveRequirements(requirements []models.Requirement) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.snap.Requirements = requirements
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple shiftpatch processes against the same storage path is
//     not supported and may lead to data loss ('shiftpatch doctor' checks).
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
