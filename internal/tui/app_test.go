package tui

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/tasklist/internal/store"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

func TestApp_SendBeforeRunIsNoop(t *testing.T) {
	app := New(store.New(), Options{})

	// Neither call may block or panic without a running program
	app.SetTheme(styles.Default())
	app.ReportError(errors.New("boom"))
	app.ReportError(nil)

	if app.program != nil {
		t.Error("program should not exist before Run")
	}
}

func TestErrMsgShowsInline(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(errMsg{err: errors.New("config reload failed")})
	m = updated.(Model)

	if m.ErrorMessage() != "config reload failed" {
		t.Errorf("ErrorMessage() = %q, want %q", m.ErrorMessage(), "config reload failed")
	}
}
