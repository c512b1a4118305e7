package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp/syntax"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/tasklist/internal/logging"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// writeTestLog writes a few entries through a real logger and returns the
// log file path.
func writeTestLog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logger, err := logging.NewLogger(dir, "debug")
	require.NoError(t, err)

	storeLog := logger.WithComponent("store")
	storeLog.Debug("task added", "index", 0, "text", "Buy milk")
	storeLog.Warn("index out of range", "op", "remove", "index", 7)
	logger.WithComponent("tui").Error("render failed", "error", "boom")
	require.NoError(t, logger.Close())

	return filepath.Join(dir, logging.FileName)
}

func TestLogEntry_UnmarshalJSON(t *testing.T) {
	line := `{"time":"2026-01-02T15:04:05.123Z","level":"WARN","msg":"index out of range","component":"store","op":"remove","index":7}`

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))

	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "index out of range", entry.Msg)
	assert.Equal(t, "store", entry.Component)
	assert.Equal(t, map[string]any{"op": "remove", "index": float64(7)}, entry.Extra)
	assert.Equal(t, 2026, entry.Time.Year())
}

func TestLogFilter(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	entry := &logEntry{
		Time:      now.Add(-10 * time.Minute),
		Level:     "WARN",
		Msg:       "index out of range",
		Component: "store",
		Extra:     map[string]any{"text": "Buy milk"},
	}

	tests := []struct {
		name      string
		level     string
		since     string
		grep      string
		component string
		want      bool
	}{
		{name: "no filters", want: true},
		{name: "level below", level: "warn", want: true},
		{name: "level above", level: "error", want: false},
		{name: "since covers entry", since: "1h", want: true},
		{name: "since excludes entry", since: "5m", want: false},
		{name: "grep message", grep: "out of", want: true},
		{name: "grep extra field", grep: "milk", want: true},
		{name: "grep miss", grep: "^nothing$", want: false},
		{name: "component match", component: "store", want: true},
		{name: "component miss", component: "tui", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := newLogFilter(tt.level, tt.since, tt.grep, tt.component, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.matches(entry))
		})
	}
}

func TestNewLogFilter_Errors(t *testing.T) {
	_, err := newLogFilter("", "yesterday", "", "", time.Now())
	assert.ErrorContains(t, err, `invalid duration format "yesterday"`)

	_, err = newLogFilter("", "", "([", "", time.Now())
	assert.ErrorContains(t, err, `invalid grep pattern "(["`)
	var syntaxErr *syntax.Error
	assert.ErrorAs(t, err, &syntaxErr, "the regexp error should stay in the chain")
}

func TestFormatLogEntry(t *testing.T) {
	entry := &logEntry{
		Time:      time.Date(2026, 1, 2, 15, 4, 5, 123_000_000, time.UTC),
		Level:     "warn",
		Msg:       "index out of range",
		Component: "store",
		Extra:     map[string]any{"op": "remove", "index": 7},
	}

	got := formatLogEntry(entry)
	for _, want := range []string{"15:04:05.123", "[WARN]", "index out of range", "component=store", "index=", "op=", "remove"} {
		assert.Contains(t, got, want)
	}
	assert.Less(t, strings.Index(got, "index="), strings.Index(got, "op="), "extra fields should be sorted")
}

func TestDisplayLogs(t *testing.T) {
	logPath := writeTestLog(t)

	t.Run("all entries", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, displayLogs(&out, logPath, 0, logFilter{minLevel: -1}))
		assert.Contains(t, out.String(), "task added")
		assert.Contains(t, out.String(), "render failed")
	})

	t.Run("tail", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, displayLogs(&out, logPath, 1, logFilter{minLevel: -1}))
		assert.NotContains(t, out.String(), "task added")
		assert.Contains(t, out.String(), "render failed")
	})

	t.Run("component filter", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, displayLogs(&out, logPath, 0, logFilter{minLevel: -1, component: "store"}))
		assert.Contains(t, out.String(), "index out of range")
		assert.NotContains(t, out.String(), "render failed")
	})

	t.Run("nothing matches", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, displayLogs(&out, logPath, 0, logFilter{minLevel: -1, component: "none"}))
		assert.Contains(t, out.String(), "No matching log entries found.")
	})

	t.Run("raw lines pass through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), logging.FileName)
		require.NoError(t, os.WriteFile(path, []byte("not json\n"), 0o644))

		var out bytes.Buffer
		require.NoError(t, displayLogs(&out, path, 0, logFilter{minLevel: -1}))
		assert.Equal(t, "not json\n", out.String())
	})
}

func TestFollowLogs(t *testing.T) {
	logPath := writeTestLog(t)

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- followLogs(ctx, out, logPath, logFilter{minLevel: -1})
	}()

	// Existing entries are skipped; appended ones are printed
	require.Eventually(t, func() bool {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return false
		}
		_, _ = f.WriteString(`{"time":"2026-01-02T15:04:05Z","level":"INFO","msg":"task completed"}` + "\n")
		_ = f.Close()
		return strings.Contains(out.String(), "task completed")
	}, 5*time.Second, 100*time.Millisecond)

	assert.NotContains(t, out.String(), "task added")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("followLogs did not stop after cancel")
	}
}

func TestRunLogs_NoFile(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand(rootCmd, "logs")
	require.NoError(t, err)
	assert.Contains(t, output, "No log file at")
	assert.Contains(t, output, "tasklist config set logging.enabled true")
}
