package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/zenzaizenzai/ShiftPatch/internal/board"
	"github.com/zenzaizenzai/ShiftPatch/internal/storage"
	"github.com/zenzaizenzai/ShiftPatch/internal/tui/components/boardview"
	"github.com/zenzaizenzai/ShiftPatch/internal/tui/components/standby"
)

type SessionState int

const (
	StateBoard SessionState = iota
	StateStandby
	StateStaffForm
	StateAddDept
	StateAssign
	StateConfirmDelete
)

// tabCount covers the cycleable tabs; form states are entered explicitly.
const tabCount = 2

// Rows above the scheduling grid in the composed view: the tab bar, the date
// line, and the board's own column header. Mouse positions are translated by
// these before hit-testing.
const (
	boardOriginY = 2 + boardview.HeaderRows
	doubleClick  = 400 * time.Millisecond
)

type Model struct {
	store storage.Provider
	log   zerolog.Logger
	ctrl  *board.Controller

	state       SessionState
	keys        KeyMap
	help        help.Model
	boardView   boardview.Model
	standbyView standby.Model

	form           *huh.Form
	staffForm      *StaffFormModel
	deptForm       *DeptFormModel
	assignForm     *AssignFormModel
	assignStaffID  string
	editingStaffID string
	deleteStaffID  string
	confirmForm    *ConfirmModel

	status   string
	quitting bool
	width    int
	height   int

	lastClickShift string
	lastClickAt    time.Time
}

func NewModel(store storage.Provider, log zerolog.Logger) Model {
	ctrl := board.NewController(board.DefaultConfig(), store, log)

	snap, err := store.GetSnapshot()
	if err != nil {
		log.Error().Err(err).Msg("failed to load snapshot")
		snap = storage.Snapshot{}
	}
	ctrl.SetData(snap.Departments, snap.Staff, snap.Shifts, snap.Requirements)

	m := Model{
		store:       store,
		log:         log,
		ctrl:        ctrl,
		state:       StateBoard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		boardView:   boardview.New(ctrl),
		standbyView: standby.New(ctrl.UnassignedStaff(), 0, 0),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateBoard:
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Export, m.keys.Remove)
	case StateStandby:
		keys = append(keys, m.keys.Enter, m.keys.AddStaff)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	switch m.state {
	case StateBoard:
		actions = []key.Binding{m.keys.Export, m.keys.Remove, m.keys.NudgeUp, m.keys.NudgeDn, m.keys.GrowEnd, m.keys.TrimEnd, m.keys.AddDept}
	case StateStandby:
		actions = []key.Binding{m.keys.AddStaff}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshStandby re-derives the unassigned pool after any shift or staff
// mutation.
func (m *Model) refreshStandby() {
	m.standbyView.SetStaff(m.ctrl.UnassignedStaff())
}
