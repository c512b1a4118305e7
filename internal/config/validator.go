package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "defaults.priority")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// themeNameRegex validates theme names; they double as file names under the
// themes directory
var themeNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateDefaults()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateDefaults validates the DefaultsConfig
func (c *Config) validateDefaults() []ValidationError {
	var errors []ValidationError

	if _, err := task.ParsePriority(c.Defaults.Priority); err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.priority",
			Value:   c.Defaults.Priority,
			Message: fmt.Sprintf("must be one of: %s", joinNames(task.Priorities())),
		})
	}

	if _, err := task.ParseCategory(c.Defaults.Category); err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.category",
			Value:   c.Defaults.Category,
			Message: fmt.Sprintf("must be one of: %s", joinNames(task.Categories())),
		})
	}

	if _, err := task.ParseFilter(c.Defaults.Filter); err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.filter",
			Value:   c.Defaults.Filter,
			Message: fmt.Sprintf("must be one of: %s", joinNames(task.Filters())),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// Whether the theme exists is checked by the TUI, which knows about
	// custom theme files; only the name's shape is checked here.
	if c.TUI.Theme != "" && !themeNameRegex.MatchString(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must be lowercase letters, digits, hyphens or underscores",
		})
	}

	if c.TUI.MaxTextWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_text_width",
			Value:   c.TUI.MaxTextWidth,
			Message: "must be non-negative",
		})
	}

	const maxTextWidthLimit = 1000
	if c.TUI.MaxTextWidth > maxTextWidthLimit {
		errors = append(errors, ValidationError{
			Field:   "tui.max_text_width",
			Value:   c.TUI.MaxTextWidth,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTextWidthLimit),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
