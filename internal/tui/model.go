// Package tui provides the terminal user interface for the task list.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/store"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

// Input settings
const (
	inputPrompt     = "› "
	composeHint     = "What needs doing?"
	defaultInputCol = 40
)

// Options configures a Model.
type Options struct {
	// Styles is the initial theme. Nil means the default theme.
	Styles *styles.ThemedStyles
	// Keymap overrides the default key bindings.
	Keymap *keymap.Keymap
	// ShowHelp shows the full key help below the list at startup.
	ShowHelp bool
	// MaxTextWidth caps the rendered width of task text (0 = terminal width).
	MaxTextWidth int
	// Logger receives UI events. Nil means no logging.
	Logger *logging.Logger
}

// Model holds the TUI application state
type Model struct {
	// Core components
	store  *store.Store
	keymap *keymap.Keymap
	styles *styles.ThemedStyles
	logger *logging.Logger

	// Text inputs
	compose textinput.Model
	edit    textinput.Model

	// UI state
	mode         keymap.Mode
	cursor       int
	width        int
	height       int
	ready        bool
	quitting     bool
	showHelp     bool
	maxTextWidth int

	// Messages shown above the footer
	errorMessage string
	infoMessage  string
}

// NewModel creates a new TUI model over st.
func NewModel(st *store.Store, opts Options) Model {
	if opts.Styles == nil {
		opts.Styles = styles.Default()
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	compose := newInput(composeHint)
	compose.SetValue(st.Compose().Text)

	return Model{
		store:        st,
		keymap:       opts.Keymap,
		styles:       opts.Styles,
		logger:       opts.Logger.WithComponent("tui"),
		compose:      compose,
		edit:         newInput(""),
		mode:         keymap.ModeNormal,
		showHelp:     opts.ShowHelp,
		maxTextWidth: opts.MaxTextWidth,
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = inputPrompt
	ti.Placeholder = placeholder
	ti.CharLimit = 0 // no limit; only empty text is rejected
	ti.Width = defaultInputCol
	return ti
}

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// Cursor returns the selected row of the visible list.
func (m Model) Cursor() int {
	return m.cursor
}

// ErrorMessage returns the inline error currently shown, if any.
func (m Model) ErrorMessage() string {
	return m.errorMessage
}

// selected returns the task under the cursor.
func (m Model) selected() (store.VisibleTask, bool) {
	visible := m.store.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return store.VisibleTask{}, false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor on a visible row after the list shrinks.
func (m *Model) clampCursor() {
	n := len(m.store.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// listHeight returns how many task rows fit on screen.
func (m Model) listHeight() int {
	h := m.height - styles.ChromeLines
	if m.store.Edit().Active {
		h -= 3
	}
	if m.showHelp {
		h -= len(m.keymap.GetCategories(keymap.ModeNormal))
	}
	return max(h, styles.MinListHeight)
}

// resizeInputs fits the text inputs to the terminal width.
func (m *Model) resizeInputs() {
	// border (2) + padding (2) + prompt
	w := m.width - 4 - len([]rune(inputPrompt)) - 1
	if w < 10 {
		w = 10
	}
	m.compose.Width = w
	m.edit.Width = w
}
