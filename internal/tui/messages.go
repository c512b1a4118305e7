package tui

import (
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// ThemeChangedMsg swaps the active styles, typically after the config file
// changed on disk.
type ThemeChangedMsg struct {
	Styles *styles.ThemedStyles
}

// errMsg wraps an error for display in the UI
type errMsg struct {
	err error
}
