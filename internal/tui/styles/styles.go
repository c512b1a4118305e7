// Package styles holds the color palettes and lipgloss styles of the task
// list UI. Built-in themes live in code; custom themes are YAML files
// resolved through a [Registry].
package styles

import "github.com/Iron-Ham/tasklist/internal/task"

// Layout constants
const (
	HeaderLines   = 2 // title + margin
	ComposeLines  = 4 // bordered compose input + selection badges
	FilterLines   = 2 // filter tabs + margin
	FooterLines   = 3 // status bar + help bar with margin
	MessageLines  = 1 // validation / status message
	MinListHeight = 3

	// ChromeLines is everything that is not the task list itself.
	ChromeLines = HeaderLines + ComposeLines + FilterLines + FooterLines + MessageLines
)

// CheckIcon returns the checkbox glyph for a task's completion state.
func CheckIcon(completed bool) string {
	if completed {
		return "[✓]"
	}
	return "[ ]"
}

// PriorityIcon returns the marker shown before a task's text.
func PriorityIcon(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "▲"
	case task.PriorityMedium:
		return "■"
	case task.PriorityLow:
		return "▼"
	default:
		return "·"
	}
}
