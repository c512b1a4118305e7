package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type ThemedStyles struct {
	Name    ThemeName
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Filter tab styles
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Input boxes
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
	InputLabel   lipgloss.Style

	// Compose selection badges
	Badge lipgloss.Style

	// Task rows
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	RowCompleted lipgloss.Style
	RowEditing   lipgloss.Style
	Checkbox     lipgloss.Style
	CheckboxDone lipgloss.Style
	EmptyList    lipgloss.Style

	// Mode badges
	ModeBadgeNormal  lipgloss.Style
	ModeBadgeCompose lipgloss.Style
	ModeBadgeEdit    lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style

	// Footer
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style
	HelpKey   lipgloss.Style

	priority map[task.Priority]lipgloss.Style
}

// NewThemedStyles builds every style from p.
func NewThemedStyles(name ThemeName, p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Name: name, Palette: p}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	s.InputBlurred = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.InputLabel = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginRight(1)

	s.Badge = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1).
		MarginRight(1)

	s.Row = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	s.RowSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	s.RowCompleted = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)

	s.RowEditing = lipgloss.NewStyle().
		Foreground(p.Warning).
		Italic(true)

	s.Checkbox = lipgloss.NewStyle().Foreground(p.Muted)
	s.CheckboxDone = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	s.EmptyList = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		Padding(1, 1)

	s.ModeBadgeNormal = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 1)

	s.ModeBadgeCompose = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Secondary).
		Padding(0, 1)

	s.ModeBadgeEdit = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Warning).
		Padding(0, 1)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.priority = map[task.Priority]lipgloss.Style{
		task.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(p.PriorityHigh),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(p.PriorityMedium),
		task.PriorityLow:    lipgloss.NewStyle().Foreground(p.PriorityLow),
	}

	return s
}

// Default returns the styles of the default theme.
func Default() *ThemedStyles {
	return NewThemedStyles(ThemeDefault, DefaultPalette())
}

// PriorityColor returns the badge color for p.
func (s *ThemedStyles) PriorityColor(p task.Priority) lipgloss.Color {
	switch p {
	case task.PriorityHigh:
		return s.Palette.PriorityHigh
	case task.PriorityMedium:
		return s.Palette.PriorityMedium
	case task.PriorityLow:
		return s.Palette.PriorityLow
	default:
		return s.Palette.Muted
	}
}

// Priority returns the style used for the priority marker of a task.
func (s *ThemedStyles) Priority(p task.Priority) lipgloss.Style {
	if st, ok := s.priority[p]; ok {
		return st
	}
	return s.Muted
}
