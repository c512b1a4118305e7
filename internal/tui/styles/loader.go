package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Priority colors (optional - default to error/warning/primary)
	Priority ThemePriorityColors `yaml:"priority,omitempty"`
}

// ThemePriorityColors defines the priority badge colors.
type ThemePriorityColors struct {
	High   string `yaml:"high,omitempty"`
	Medium string `yaml:"medium,omitempty"`
	Low    string `yaml:"low,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"priority.high", t.Colors.Priority.High},
		{"priority.medium", t.Colors.Priority.Medium},
		{"priority.low", t.Colors.Priority.Low},
	}
	for _, c := range optional {
		if c.color != "" && !isValidHexColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),

		PriorityHigh:   colorOrDefault(t.Colors.Priority.High, t.Colors.Error),
		PriorityMedium: colorOrDefault(t.Colors.Priority.Medium, t.Colors.Warning),
		PriorityLow:    colorOrDefault(t.Colors.Priority.Low, t.Colors.Primary),
	}
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// Registry resolves theme names to palettes: built-in themes plus custom
// themes discovered from a directory of YAML files.
type Registry struct {
	dir    string
	custom map[ThemeName]*ThemeFile
}

// NewRegistry creates a registry whose custom themes live in dir.
// An empty dir disables custom themes.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		custom: make(map[ThemeName]*ThemeFile),
	}
}

// Dir returns the custom themes directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Register adds a custom theme by name.
func (r *Registry) Register(name ThemeName, theme *ThemeFile) {
	r.custom[name] = theme
}

// Discover scans the themes directory and registers every valid theme.
// A missing directory is not an error. Invalid files are skipped and
// reported.
func (r *Registry) Discover() ([]string, []error) {
	if r.dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(r.dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")

		// Don't allow custom themes to override built-in themes
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		r.Register(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// CustomThemeNames returns the sorted names of all registered custom themes.
func (r *Registry) CustomThemeNames() []string {
	names := make([]string, 0, len(r.custom))
	for name := range r.custom {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ValidThemes returns all valid theme names (built-in + custom).
func (r *Registry) ValidThemes() []string {
	return append(BuiltinThemes(), r.CustomThemeNames()...)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func (r *Registry) IsValidTheme(name string) bool {
	if IsBuiltinTheme(name) {
		return true
	}
	_, ok := r.custom[ThemeName(name)]
	return ok
}

// Palette returns the palette for name. Custom themes are checked first;
// unknown names get the default palette.
func (r *Registry) Palette(name ThemeName) *ColorPalette {
	if custom, ok := r.custom[name]; ok {
		return custom.ToPalette()
	}
	if p := builtinPalette(name); p != nil {
		return p
	}
	return DefaultPalette()
}

// ThemeFileFromPalette describes p as a theme file, ready to be saved and
// customized.
func ThemeFileFromPalette(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    name,
		Version: "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Priority: ThemePriorityColors{
				High:   string(p.PriorityHigh),
				Medium: string(p.PriorityMedium),
				Low:    string(p.PriorityLow),
			},
		},
	}
}

// Theme returns the theme file for name: a custom theme as loaded, or a
// built-in theme described from its palette. Unknown names return nil.
func (r *Registry) Theme(name ThemeName) *ThemeFile {
	if custom, ok := r.custom[name]; ok {
		return custom
	}
	if p := builtinPalette(name); p != nil {
		return ThemeFileFromPalette(string(name), p)
	}
	return nil
}

// Marshal encodes the theme file as YAML.
func (t *ThemeFile) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
