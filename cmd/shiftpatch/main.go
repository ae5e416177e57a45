package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/cli"
	"github.com/zenzaizenzai/ShiftPatch/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/shiftpatch/shiftpatch.db"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize shiftpatch storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive shift board." default:"1"`
	Day    cli.DayCmd    `cmd:"" help:"Show the board for a day."`
	Export cli.ExportCmd `cmd:"" help:"Export a day's shifts as TSV."`
	Staff  cli.StaffCmd  `cmd:"" help:"Manage staff members."`
	Dept   cli.DeptCmd   `cmd:"" help:"Manage departments."`
	Backup cli.BackupCmd `cmd:"" help:"Manage storage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on storage and data."`
}

// newLogger writes structured logs next to the config file. The TUI owns
// stdout, so logs never go to the terminal.
func newLogger(configPath string) zerolog.Logger {
	logPath := filepath.Join(filepath.Dir(configPath), "shiftpatch.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("shiftpatch"),
		kong.Description("Drag-and-drop shift board for small retail and food-service teams"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	log := newLogger(CLI.Config)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config, log)
	} else {
		store = storage.NewSQLiteStore(CLI.Config, log)
	}
	appCtx := &cli.Context{
		Store: store,
		Log:   log,
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
