// Package config provides CLI commands for managing tasklist configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/task"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify tasklist configuration",
	Long: `View or modify tasklist configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  tasklist config set defaults.priority High
  tasklist config set tui.theme dracula

Valid keys:
  defaults.priority   - Priority selected for new tasks (High, Medium, Low)
  defaults.category   - Category selected for new tasks (Personal, Work)
  defaults.filter     - Filter shown at startup (All, Personal, Work)
  tui.theme           - Color theme (built-in or custom)
  tui.show_help       - Show full key help at startup (true/false)
  tui.max_text_width  - Max columns of task text, 0 = terminal width
  logging.enabled     - Write a debug log file (true/false)
  logging.level       - Minimum log level (debug, info, warn, error)
  logging.dir         - Directory for tasklist.log
  logging.max_size_mb - Rotate tasklist.log at this size, 0 = never
  logging.max_backups - Number of rotated log files kept`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tasklist/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  tasklist config reset            # Reset all to defaults
  tasklist config reset tui.theme  # Reset only tui.theme to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind describes how a config value is parsed and validated.
type keyKind int

const (
	kindPriority keyKind = iota
	kindCategory
	kindFilter
	kindTheme
	kindBool
	kindInt
	kindLevel
	kindString
)

// settableKeys lists every key `config set` and `config reset` accept.
var settableKeys = map[string]keyKind{
	"defaults.priority":   kindPriority,
	"defaults.category":   kindCategory,
	"defaults.filter":     kindFilter,
	"tui.theme":           kindTheme,
	"tui.show_help":       kindBool,
	"tui.max_text_width":  kindInt,
	"logging.enabled":     kindBool,
	"logging.level":       kindLevel,
	"logging.dir":         kindString,
	"logging.max_size_mb": kindInt,
	"logging.max_backups": kindInt,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	// Session defaults
	fmt.Fprintln(out, "defaults:")
	fmt.Fprintf(out, "  priority: %s\n", cfg.Defaults.Priority)
	fmt.Fprintf(out, "  category: %s\n", cfg.Defaults.Category)
	fmt.Fprintf(out, "  filter: %s\n", cfg.Defaults.Filter)

	// TUI settings
	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  show_help: %v\n", cfg.TUI.ShowHelp)
	fmt.Fprintf(out, "  max_text_width: %d\n", cfg.TUI.MaxTextWidth)

	// Logging settings
	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.LogDir())
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	return nil
}

// parseValue validates value for key and converts it to the type stored in
// the config file.
func parseValue(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'tasklist config set --help' to see valid keys", key)
	}

	switch kind {
	case kindPriority:
		p, err := task.ParsePriority(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, joinNames(task.Priorities()))
		}
		return p.String(), nil
	case kindCategory:
		c, err := task.ParseCategory(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, joinNames(task.Categories()))
		}
		return c.String(), nil
	case kindFilter:
		f, err := task.ParseFilter(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s", key, value, joinNames(task.Filters()))
		}
		return f.String(), nil
	case kindTheme:
		registry := styles.NewRegistry(appconfig.ThemesDir())
		_, _ = registry.Discover()
		if !registry.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(registry.ValidThemes(), ", "))
		}
		return value, nil
	case kindBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case kindInt:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case kindLevel:
		if !slices.Contains(appconfig.ValidLogLevels(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return value, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigContent is the commented config file written by `config init`.
const defaultConfigContent = `# tasklist configuration

# Selections a new session starts with
defaults:
  # Priority for new tasks: High, Medium or Low
  priority: Medium
  # Category for new tasks: Personal or Work
  category: Personal
  # Category filter: All, Personal or Work
  filter: All

# TUI (terminal user interface) settings
tui:
  # Color theme: default, monokai, dracula, nord, or a custom theme name
  theme: default
  # Show the full key help below the list at startup
  show_help: true
  # Maximum columns of task text before it is truncated (0 = terminal width)
  max_text_width: 80

# Debug logging
logging:
  # Write JSON logs to tasklist.log
  enabled: false
  # Minimum level: debug, info, warn, error
  level: info
  # Directory for the log file (empty = config directory)
  dir: ""
  # Rotate tasklist.log once it reaches this many megabytes (0 = never)
  max_size_mb: 5
  # Number of rotated files to keep (tasklist.log.1, tasklist.log.2, ...)
  max_backups: 2
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'tasklist config set' to modify values", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize tasklist.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: TASKLIST_* (e.g., TASKLIST_TUI_THEME)")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...\n")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

// findEditor returns $EDITOR, $VISUAL or the first common editor on PATH.
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	for _, e := range []string{"vim", "nano", "vi"} {
		if _, err := execLookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// defaultValues maps every settable key to its default.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"defaults.priority":   d.Defaults.Priority,
		"defaults.category":   d.Defaults.Category,
		"defaults.filter":     d.Defaults.Filter,
		"tui.theme":           d.TUI.Theme,
		"tui.show_help":       d.TUI.ShowHelp,
		"tui.max_text_width":  d.TUI.MaxTextWidth,
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.dir":         d.Logging.Dir,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
	}
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s", key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	} else {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults")
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
