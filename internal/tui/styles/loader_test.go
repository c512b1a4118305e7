package styles

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

func validThemeFile() ThemeFile {
	return ThemeFile{
		Name:    "Test Theme",
		Version: "1",
		Colors: ThemeColors{
			Primary:   "#A78BFA",
			Secondary: "#10B981",
			Warning:   "#F59E0B",
			Error:     "#F87171",
			Muted:     "#9CA3AF",
			Surface:   "#1F2937",
			Text:      "#F9FAFB",
			Border:    "#6B7280",
		},
	}
}

func writeTheme(t *testing.T, dir, name string, theme ThemeFile) {
	t.Helper()
	data, err := yaml.Marshal(theme)
	if err != nil {
		t.Fatalf("marshal theme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		expected bool
	}{
		{"valid 6-digit hex", "#A78BFA", true},
		{"valid 6-digit hex lowercase", "#a78bfa", true},
		{"valid 3-digit hex", "#ABC", true},
		{"invalid - no hash", "A78BFA", false},
		{"invalid - too short", "#AB", false},
		{"invalid - 4 digits", "#ABCD", false},
		{"invalid - bad characters", "#GHIJKL", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidHexColor(tt.color); got != tt.expected {
				t.Errorf("isValidHexColor(%q) = %v, want %v", tt.color, got, tt.expected)
			}
		})
	}
}

func TestThemeFileValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ThemeFile)
		errMsg string
	}{
		{"valid minimal theme", func(*ThemeFile) {}, ""},
		{"missing name", func(tf *ThemeFile) { tf.Name = "" }, "name is required"},
		{"missing version", func(tf *ThemeFile) { tf.Version = "" }, "version is required"},
		{"unsupported version", func(tf *ThemeFile) { tf.Version = "2" }, "unsupported theme version"},
		{"missing primary", func(tf *ThemeFile) { tf.Colors.Primary = "" }, "'primary' is required"},
		{"bad border", func(tf *ThemeFile) { tf.Colors.Border = "gray" }, "'border' has invalid format"},
		{"valid priority override", func(tf *ThemeFile) { tf.Colors.Priority.High = "#FF0000" }, ""},
		{"bad priority override", func(tf *ThemeFile) { tf.Colors.Priority.Low = "blue" }, "'priority.low' has invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := validThemeFile()
			tt.modify(&theme)
			err := theme.Validate()

			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestThemeFileToPalette(t *testing.T) {
	t.Run("priority colors fall back", func(t *testing.T) {
		theme := validThemeFile()
		p := theme.ToPalette()

		if p.PriorityHigh != lipgloss.Color(theme.Colors.Error) {
			t.Errorf("PriorityHigh = %q, want error color %q", p.PriorityHigh, theme.Colors.Error)
		}
		if p.PriorityMedium != lipgloss.Color(theme.Colors.Warning) {
			t.Errorf("PriorityMedium = %q, want warning color %q", p.PriorityMedium, theme.Colors.Warning)
		}
		if p.PriorityLow != lipgloss.Color(theme.Colors.Primary) {
			t.Errorf("PriorityLow = %q, want primary color %q", p.PriorityLow, theme.Colors.Primary)
		}
	})

	t.Run("priority overrides win", func(t *testing.T) {
		theme := validThemeFile()
		theme.Colors.Priority.Medium = "#123456"
		if got := theme.ToPalette().PriorityMedium; got != "#123456" {
			t.Errorf("PriorityMedium = %q, want #123456", got)
		}
	})
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		writeTheme(t, dir, "ocean.yaml", validThemeFile())
		theme, err := LoadThemeFile(filepath.Join(dir, "ocean.yaml"))
		if err != nil {
			t.Fatalf("LoadThemeFile() error: %v", err)
		}
		if theme.Name != "Test Theme" {
			t.Errorf("Name = %q, want %q", theme.Name, "Test Theme")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadThemeFile(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("name: [unterminated"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadThemeFile(path)
		if err == nil || !strings.Contains(err.Error(), "parsing theme file") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestRegistry_Discover(t *testing.T) {
	t.Run("missing directory is not an error", func(t *testing.T) {
		r := NewRegistry(filepath.Join(t.TempDir(), "nope"))
		loaded, errs := r.Discover()
		if len(loaded) != 0 || len(errs) != 0 {
			t.Errorf("Discover() = %v, %v; want nothing", loaded, errs)
		}
	})

	t.Run("empty dir disables discovery", func(t *testing.T) {
		loaded, errs := NewRegistry("").Discover()
		if loaded != nil || errs != nil {
			t.Errorf("Discover() = %v, %v; want nil", loaded, errs)
		}
	})

	t.Run("loads valid and skips invalid", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "ocean.yaml", validThemeFile())
		writeTheme(t, dir, "forest.yml", validThemeFile())
		writeTheme(t, dir, "dracula.yaml", validThemeFile())

		bad := validThemeFile()
		bad.Version = "9"
		writeTheme(t, dir, "bad.yaml", bad)

		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755); err != nil {
			t.Fatal(err)
		}

		r := NewRegistry(dir)
		loaded, errs := r.Discover()

		slices.Sort(loaded)
		if !slices.Equal(loaded, []string{"forest", "ocean"}) {
			t.Errorf("loaded = %v, want [forest ocean]", loaded)
		}
		if len(errs) != 2 {
			t.Errorf("expected 2 errors (bad version, builtin override), got %d: %v", len(errs), errs)
		}
		if !slices.Equal(r.CustomThemeNames(), []string{"forest", "ocean"}) {
			t.Errorf("CustomThemeNames() = %v", r.CustomThemeNames())
		}
	})
}

func TestRegistry_Palette(t *testing.T) {
	r := NewRegistry("")
	custom := validThemeFile()
	custom.Colors.Primary = "#010203"
	r.Register("ocean", &custom)

	tests := []struct {
		name        string
		theme       ThemeName
		wantPrimary lipgloss.Color
	}{
		{"custom theme", "ocean", "#010203"},
		{"builtin theme", ThemeNord, NordPalette().Primary},
		{"unknown falls back to default", "missing", DefaultPalette().Primary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Palette(tt.theme).Primary; got != tt.wantPrimary {
				t.Errorf("Palette(%q).Primary = %q, want %q", tt.theme, got, tt.wantPrimary)
			}
		})
	}

	if !r.IsValidTheme("ocean") || !r.IsValidTheme("monokai") {
		t.Error("expected custom and builtin themes to be valid")
	}
	if r.IsValidTheme("missing") {
		t.Error("unknown theme should be invalid")
	}
	if got := len(r.ValidThemes()); got != len(BuiltinThemes())+1 {
		t.Errorf("ValidThemes() length = %d, want %d", got, len(BuiltinThemes())+1)
	}
}

func TestRegistry_ThemeRoundTrip(t *testing.T) {
	r := NewRegistry("")

	theme := r.Theme(ThemeMonokai)
	if theme == nil {
		t.Fatal("Theme(monokai) = nil")
	}
	if err := theme.Validate(); err != nil {
		t.Fatalf("exported builtin theme is invalid: %v", err)
	}

	data, err := theme.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "copy.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile() error: %v", err)
	}
	if *loaded.ToPalette() != *MonokaiPalette() {
		t.Errorf("palette changed across export: %+v", loaded.ToPalette())
	}

	if r.Theme("missing") != nil {
		t.Error("Theme(missing) should be nil")
	}
}
