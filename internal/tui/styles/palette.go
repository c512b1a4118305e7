package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (titles, active filter tab, cursor)
	Primary lipgloss.Color
	// Secondary accent color (key hints, completed checkbox)
	Secondary lipgloss.Color
	// Warning color
	Warning lipgloss.Color
	// Error color (validation messages)
	Error lipgloss.Color
	// Muted color (de-emphasized text, completed tasks)
	Muted lipgloss.Color
	// Surface color (status bar and selected row background)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (input borders)
	Border lipgloss.Color

	// Priority badge colors
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		PriorityHigh:   lipgloss.Color("#F87171"), // Red
		PriorityMedium: lipgloss.Color("#FBBF24"), // Yellow
		PriorityLow:    lipgloss.Color("#60A5FA"), // Blue
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Pink
		Secondary: lipgloss.Color("#A6E22E"), // Green
		Warning:   lipgloss.Color("#E6DB74"), // Yellow
		Error:     lipgloss.Color("#F92672"), // Pink
		Muted:     lipgloss.Color("#75715E"), // Comment gray
		Surface:   lipgloss.Color("#3E3D32"), // Line highlight
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#75715E"), // Comment gray

		PriorityHigh:   lipgloss.Color("#F92672"), // Pink
		PriorityMedium: lipgloss.Color("#FD971F"), // Orange
		PriorityLow:    lipgloss.Color("#66D9EF"), // Cyan
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#F1FA8C"), // Yellow
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment
		Surface:   lipgloss.Color("#44475A"), // Current line
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#6272A4"), // Comment

		PriorityHigh:   lipgloss.Color("#FF5555"), // Red
		PriorityMedium: lipgloss.Color("#FFB86C"), // Orange
		PriorityLow:    lipgloss.Color("#8BE9FD"), // Cyan
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#7B88A1"), // Muted snow
		Surface:   lipgloss.Color("#3B4252"), // Polar night
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm
		Border:    lipgloss.Color("#4C566A"), // Polar night

		PriorityHigh:   lipgloss.Color("#BF616A"), // Aurora red
		PriorityMedium: lipgloss.Color("#EBCB8B"), // Aurora yellow
		PriorityLow:    lipgloss.Color("#81A1C1"), // Frost blue
	}
}

// builtinPalette returns the palette of a built-in theme, or nil.
func builtinPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDefault:
		return DefaultPalette()
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return nil
	}
}
