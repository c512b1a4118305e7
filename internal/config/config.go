package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// Config represents the complete tasklist configuration
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultsConfig controls the initial selections of a new session
type DefaultsConfig struct {
	// Priority is the compose priority a session starts with
	// Options: "High", "Medium", "Low" (default: "Medium")
	Priority string `mapstructure:"priority"`
	// Category is the compose category a session starts with
	// Options: "Personal", "Work" (default: "Personal")
	Category string `mapstructure:"category"`
	// Filter is the category filter a session starts with
	// Options: "All", "Personal", "Work" (default: "All")
	Filter string `mapstructure:"filter"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Built-in options: "default", "monokai", "dracula", "nord"; custom themes
	// are loaded from <config dir>/themes/*.yaml
	Theme string `mapstructure:"theme"`
	// ShowHelp shows the key help footer (default: true)
	ShowHelp bool `mapstructure:"show_help"`
	// MaxTextWidth caps the rendered width of a task's text in columns; longer
	// text is truncated with an ellipsis (default: 80, 0 = terminal width)
	MaxTextWidth int `mapstructure:"max_text_width"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on file logging (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory holding tasklist.log (default: the config directory)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the size at which tasklist.log is rotated (default: 5, 0 = never)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files kept (default: 2)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Priority: "Medium",
			Category: "Personal",
			Filter:   "All",
		},
		TUI: TUIConfig{
			Theme:        "default",
			ShowHelp:     true,
			MaxTextWidth: 80,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Session defaults
	viper.SetDefault("defaults.priority", defaults.Defaults.Priority)
	viper.SetDefault("defaults.category", defaults.Defaults.Category)
	viper.SetDefault("defaults.filter", defaults.Defaults.Filter)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.max_text_width", defaults.TUI.MaxTextWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tasklist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasklist"
	}
	return filepath.Join(home, ".config", "tasklist")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory custom theme files are loaded from
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// Selections parses the configured defaults. Unparseable values come back as
// zero, which the store treats as "keep the built-in default".
func (d *DefaultsConfig) Selections() (task.Priority, task.Category, task.Filter) {
	p, _ := task.ParsePriority(d.Priority)
	c, _ := task.ParseCategory(d.Category)
	f, _ := task.ParseFilter(d.Filter)
	return p, c, f
}

// LogDir returns the directory log files are written to
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return ConfigDir()
}
