// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the model's Update method only
// dispatches on commands, never on raw keys.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal  Mode = "normal"  // Navigating the task list
	ModeCompose Mode = "compose" // Typing a new task
	ModeEdit    Mode = "edit"    // Edit session open on one task
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Navigation
	CmdCursorDown   Command = "cursor_down"
	CmdCursorUp     Command = "cursor_up"
	CmdCursorTop    Command = "cursor_top"
	CmdCursorBottom Command = "cursor_bottom"

	// Task actions
	CmdEnterCompose  Command = "enter_compose"
	CmdStartEdit     Command = "start_edit"
	CmdToggleDone    Command = "toggle_done"
	CmdRemove        Command = "remove"
	CmdCyclePriority Command = "cycle_priority"
	CmdCycleCategory Command = "cycle_category"
	CmdCycleFilter   Command = "cycle_filter"

	// View
	CmdToggleHelp Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// Text input commands (compose and edit modes)
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. Rune keys use tea.KeyRunes
	// and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	// Pastes and multi-rune input are text, never a command.
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) != 1 {
		return false
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	switch kb.KeyType {
	case tea.KeyRunes:
	case tea.KeySpace:
		return prefix + "space"
	default:
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings, in
// declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []string

	for _, binding := range mb.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// HelpEntry is one key/description pair for the help bar.
type HelpEntry struct {
	Command     Command
	Keys        string
	Description string
	Category    string
}

// Help returns one entry per command in a mode, joining every key bound
// to it ("j/down"). Entries keep declaration order.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	index := make(map[Command]int)
	var entries []HelpEntry
	for _, binding := range mb.Bindings {
		if i, ok := index[binding.Command]; ok {
			entries[i].Keys += "/" + binding.String()
			continue
		}
		index[binding.Command] = len(entries)
		entries = append(entries, HelpEntry{
			Command:     binding.Command,
			Keys:        binding.String(),
			Description: binding.Description,
			Category:    binding.Category,
		})
	}
	return entries
}
