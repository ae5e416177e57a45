package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/storage"
	"github.com/zenzaizenzai/ShiftPatch/internal/timeutil"
)

type Context struct {
	Store storage.Provider
	Log   zerolog.Logger
}

// resolveDate accepts YYYY-MM-DD or "today".
func resolveDate(arg string) (string, error) {
	if arg == "today" || arg == "" {
		return timeutil.Today(), nil
	}
	if _, err := time.Parse(timeutil.DateFormat, arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}
