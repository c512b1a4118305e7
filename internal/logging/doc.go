// Package logging provides structured JSON logging for tasklist.
//
// It wraps log/slog. Records are JSON lines that carry persistent context
// attributes, and `tasklist logs` reads them back.
//
// # Usage
//
// The terminal UI owns stdout and stderr while it runs, so an interactive
// session logs to a file or not at all:
//
//	logger, err := logging.NewLogger(dir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	storeLog := logger.WithComponent("store")
//	storeLog.Debug("task added", "index", 3, "priority", "High")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"task added","component":"store","index":3,"priority":"High"}
//
// When logging is disabled, [NopLogger] discards everything, which keeps
// call sites free of nil checks. Tests use it too.
//
// # Log Rotation
//
// The log file is written through a [RotatingWriter]. Once a write would push
// tasklist.log past MaxSizeMB, the file is renamed to tasklist.log.1 and
// older backups shift up, up to MaxBackups files:
//
//	logger, err := logging.NewRotatingLogger(dir, "DEBUG", logging.RotationConfig{
//	    MaxSizeMB:  5,
//	    MaxBackups: 2,
//	})
//
// # Log Levels
//
// The package defines four log levels: [LevelDebug], [LevelInfo] (the
// default), [LevelWarn] and [LevelError]. Use [ValidLevels] for the list of
// valid level strings and [ParseLevel] to normalize user input.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: debug
//	  dir: ""          # defaults to the config directory
//	  max_size_mb: 5
//	  max_backups: 2
package logging
