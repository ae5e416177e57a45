// Package standby lists the staff with no shift on the selected date. Picking
// a member starts the assignment flow back in the main model.
package standby

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zenzaizenzai/ShiftPatch/internal/models"
)

type AssignMsg struct {
	StaffID string
}

type EditMsg struct {
	Staff models.Staff
}

type DeleteMsg struct {
	StaffID string
}

type Item struct {
	Staff models.Staff
}

func (i Item) Title() string { return i.Staff.Name }

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | available %s–%s", i.Staff.Skill, i.Staff.StartTime, i.Staff.EndTime)
	if i.Staff.DayNote != "" {
		desc += " | " + i.Staff.DayNote
	}
	return desc
}

func (i Item) FilterValue() string { return i.Staff.Name }

type KeyMap struct {
	Assign key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Assign: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "assign"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(staff []models.Staff, width, height int) Model {
	items := make([]list.Item, len(staff))
	for i, st := range staff {
		items[i] = Item{Staff: st}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Standby"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Assign, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetStaff(staff []models.Staff) {
	items := make([]list.Item, len(staff))
	for i, st := range staff {
		items[i] = Item{Staff: st}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Assign):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AssignMsg{StaffID: i.Staff.StaffID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{StaffID: i.Staff.StaffID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Everyone is scheduled for this day."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
