package storage

import "github.com/zenzaizenzai/ShiftPatch/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshot
	GetSnapshot() (Snapshot, error)
	SaveSnapshot(Snapshot) error

	// Per-collection replace-on-write
	SaveShifts([]models.Shift) error
	SaveStaff([]models.Staff) error
	SaveDepartments([]models.Department) error
	SaveRequirements([]models.Requirement) error

	// Utils
	GetConfigPath() string
}
