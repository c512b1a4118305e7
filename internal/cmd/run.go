package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/tasklist/internal/config"
	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/store"
	"github.com/Iron-Ham/tasklist/internal/tui"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// isTerminal reports whether fd is a terminal; swapped in tests.
var isTerminal = term.IsTerminal

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return errors.New("tasklist needs an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	base, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = base.Close() }()
	logger := base.WithSession(newSessionID(time.Now()))

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		logger.Debug("starting tui", "width", w, "height", h, "config_file", viper.ConfigFileUsed())
	}

	app := tui.New(newStore(cfg, logger), tui.Options{
		Styles:       loadStyles(cfg.TUI.Theme, logger),
		ShowHelp:     cfg.TUI.ShowHelp,
		MaxTextWidth: cfg.TUI.MaxTextWidth,
		Logger:       logger,
	})

	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			logger.Info("config file changed", "path", e.Name, "op", e.Op.String())
			applyConfigChange(app, logger)
		})
		viper.WatchConfig()
	}

	if err := app.Run(); err != nil {
		return errors.Wrap(err, "TUI error")
	}
	return nil
}

// newLogger opens the log file when logging is enabled and returns a
// discarding logger otherwise.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewRotatingLogger(cfg.LogDir(), cfg.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log in %s", cfg.LogDir())
	}
	return logger, nil
}

// newSessionID tags the log records of one run so `tasklist logs --grep`
// can tell runs apart.
func newSessionID(now time.Time) string {
	return fmt.Sprintf("%s-%d", now.Format("20060102-150405"), os.Getpid())
}

// newStore creates the session store with the configured starting
// selections.
func newStore(cfg *config.Config, logger *logging.Logger) *store.Store {
	priority, category, filter := cfg.Defaults.Selections()
	return store.New(
		store.WithLogger(logger),
		store.WithComposeDefaults(priority, category),
		store.WithFilter(filter),
	)
}

// loadStyles resolves name against the built-in and custom themes. Unknown
// names fall back to the default palette.
func loadStyles(name string, logger *logging.Logger) *styles.ThemedStyles {
	registry := styles.NewRegistry(config.ThemesDir())
	_, loadErrs := registry.Discover()
	for _, err := range loadErrs {
		logger.Warn("skipping custom theme", "error", err.Error())
	}

	theme := styles.ThemeName(name)
	if !registry.IsValidTheme(name) {
		logger.Warn("unknown theme, using default", "theme", name)
		theme = styles.ThemeDefault
	}
	return styles.NewThemedStyles(theme, registry.Palette(theme))
}

// themeTarget receives the results of a config reload.
type themeTarget interface {
	SetTheme(*styles.ThemedStyles)
	ReportError(error)
}

// applyConfigChange re-reads the configuration and pushes the resulting
// theme to target. Invalid configuration is reported and otherwise ignored.
func applyConfigChange(target themeTarget, logger *logging.Logger) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring invalid config change", "error", err.Error())
		target.ReportError(errors.Wrap(err, "config not reloaded"))
		return
	}
	target.SetTheme(loadStyles(cfg.TUI.Theme, logger))
}
