package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	appconfig "github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the tasklist TUI.

Besides the built-in themes, custom themes can be stored as YAML files in
~/.config/tasklist/themes/. A running tasklist picks up theme changes made
with 'tasklist config set tui.theme <name>' without restarting.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML as a starting point for a custom theme.

Without an output file the YAML is written to stdout.

Examples:
  tasklist config theme export dracula
  tasklist config theme export nord ~/.config/tasklist/themes/frost.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show the colors of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the custom themes directory path",
	RunE:  runThemePath,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a custom theme from the default palette",
	Long: `Create a new custom theme file in your themes directory.

Example:
  tasklist config theme create solarized
  # Creates ~/.config/tasklist/themes/solarized.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeCreate,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themePathCmd)
	themeCmd.AddCommand(themeCreateCmd)
	configCmd.AddCommand(themeCmd)
}

// loadRegistry discovers custom themes and writes load failures to w.
func loadRegistry(w io.Writer) (*styles.Registry, []error) {
	registry := styles.NewRegistry(appconfig.ThemesDir())
	_, loadErrs := registry.Discover()
	if len(loadErrs) > 0 {
		fmt.Fprintln(w, "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(w, "  - %v\n", err)
		}
		fmt.Fprintln(w)
	}
	return registry, loadErrs
}

// unknownThemeError explains why name could not be resolved, pointing at
// its load error when the file exists but is broken.
func unknownThemeError(registry *styles.Registry, name string, loadErrs []error) error {
	for _, err := range loadErrs {
		msg := err.Error()
		if strings.HasPrefix(msg, name+".yaml:") || strings.HasPrefix(msg, name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %v", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s\nRun 'tasklist config theme list' to see available themes.\nCustom themes should be placed in: %s",
		name, registry.Dir())
}

func runThemeList(cmd *cobra.Command, args []string) error {
	registry, _ := loadRegistry(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if custom := registry.CustomThemeNames(); len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range custom {
			theme := registry.Theme(styles.ThemeName(name))
			if theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", registry.Dir())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	registry, loadErrs := loadRegistry(cmd.ErrOrStderr())

	theme := registry.Theme(styles.ThemeName(name))
	if theme == nil {
		return unknownThemeError(registry, name, loadErrs)
	}

	data, err := theme.Marshal()
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	registry, loadErrs := loadRegistry(cmd.ErrOrStderr())

	theme := registry.Theme(styles.ThemeName(name))
	if theme == nil {
		return unknownThemeError(registry, name, loadErrs)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme: %s\n\n", name)
	if styles.IsBuiltinTheme(name) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme.Author != "" {
			fmt.Fprintf(out, "Author: %s\n", theme.Author)
		}
		if theme.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", theme.Description)
		}
	}

	p := registry.Palette(styles.ThemeName(name))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Base Colors:")
	fmt.Fprintf(out, "  Primary:   %s\n", p.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", p.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", p.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", p.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", p.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", p.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", p.Text)
	fmt.Fprintf(out, "  Border:    %s\n", p.Border)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Priority Colors:")
	fmt.Fprintf(out, "  High:   %s\n", p.PriorityHigh)
	fmt.Fprintf(out, "  Medium: %s\n", p.PriorityMedium)
	fmt.Fprintf(out, "  Low:    %s\n", p.PriorityLow)

	return nil
}

func runThemePath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themesDir := appconfig.ThemesDir()
	fmt.Fprintln(out, themesDir)

	if _, err := os.Stat(themesDir); os.IsNotExist(err) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Note: This directory does not exist yet.")
		fmt.Fprintln(out, "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\:*?\"<>| ") {
		return fmt.Errorf("theme name contains invalid characters")
	}
	if styles.IsBuiltinTheme(name) {
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	themesDir := appconfig.ThemesDir()
	themePath := filepath.Join(themesDir, name+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, themePath)
	}

	theme := styles.ThemeFileFromPalette(capitalizeFirst(name), styles.DefaultPalette())
	theme.Description = "A custom tasklist theme"

	data, err := theme.Marshal()
	if err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}
	if err := os.WriteFile(themePath, data, 0o644); err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n\n", themePath)
	fmt.Fprintln(out, "Edit this file to customize your theme colors, then run:")
	fmt.Fprintf(out, "  tasklist config set tui.theme %s\n", name)

	return nil
}

// capitalizeFirst upper-cases the first byte of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
