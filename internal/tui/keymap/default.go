package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key bindings of the task list UI.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default tasklist key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeCompose: defaultComposeBindings(),
			ModeEdit:    defaultEditBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// List navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Down", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Down", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Up", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Up", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "First task", Category: "Navigation"},
			{KeyType: tea.KeyHome, Command: CmdCursorTop, Description: "First task", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorBottom, Description: "Last task", Category: "Navigation"},
			{KeyType: tea.KeyEnd, Command: CmdCursorBottom, Description: "Last task", Category: "Navigation"},

			// Task actions
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdEnterCompose, Description: "New task", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdEnterCompose, Description: "New task", Category: "Tasks"},
			{KeyType: tea.KeyEnter, Command: CmdStartEdit, Description: "Edit", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdStartEdit, Description: "Edit", Category: "Tasks"},
			{KeyType: tea.KeySpace, Command: CmdToggleDone, Description: "Toggle done", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdToggleDone, Description: "Toggle done", Category: "Tasks"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdRemove, Description: "Delete", Category: "Tasks"},
			{KeyType: tea.KeyDelete, Command: CmdRemove, Description: "Delete", Category: "Tasks"},

			// Selections
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdCyclePriority, Description: "Priority", Category: "Selections"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCycleCategory, Description: "Category", Category: "Selections"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdCycleFilter, Description: "Filter", Category: "Selections"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultComposeBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCompose,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Add task", Category: "Compose"},
			{KeyType: tea.KeyTab, Command: CmdCyclePriority, Description: "Priority", Category: "Compose"},
			{KeyType: tea.KeyShiftTab, Command: CmdCycleCategory, Description: "Category", Category: "Compose"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Done", Category: "Compose"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultEditBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeEdit,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Save", Category: "Edit"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Edit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}
