package tui

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tasklist/internal/store"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// App wraps the Bubbletea program
type App struct {
	mu      sync.Mutex
	program *tea.Program
	model   Model
	opts    []tea.ProgramOption
}

// New creates a new TUI application over st.
func New(st *store.Store, opts Options, programOpts ...tea.ProgramOption) *App {
	return &App{
		model: NewModel(st, opts),
		opts:  programOpts,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.opts...)

	a.mu.Lock()
	a.program = tea.NewProgram(a.model, opts...)
	program := a.program
	a.mu.Unlock()

	// Quit cleanly on termination so the terminal is restored
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			program.Send(tea.Quit())
		}
	}()

	_, err := program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	a.mu.Lock()
	a.program = nil
	a.mu.Unlock()

	return err
}

// SetTheme swaps the styles of a running program. It is safe to call from
// any goroutine and does nothing when the program is not running.
func (a *App) SetTheme(s *styles.ThemedStyles) {
	a.send(ThemeChangedMsg{Styles: s})
}

// ReportError shows err on the inline error line of a running program.
func (a *App) ReportError(err error) {
	if err == nil {
		return
	}
	a.send(errMsg{err: err})
}

func (a *App) send(msg tea.Msg) {
	a.mu.Lock()
	program := a.program
	a.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
