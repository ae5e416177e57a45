package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Help     key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	Export   key.Binding
	AddStaff key.Binding
	AddDept  key.Binding
	Remove   key.Binding
	NudgeUp  key.Binding
	NudgeDn  key.Binding
	GrowEnd  key.Binding
	TrimEnd  key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit},
		{k.Up, k.Down, k.Enter, k.Help, k.PrevDay, k.NextDay, k.Today, k.Export, k.AddStaff, k.AddDept, k.Remove},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev shift"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next shift"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export day"),
		),
		AddStaff: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add staff"),
		),
		AddDept: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add department"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d", "return to standby"),
		),
		NudgeUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move earlier"),
		),
		NudgeDn: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move later"),
		),
		GrowEnd: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "extend end"),
		),
		TrimEnd: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shorten end"),
		),
	}
}
