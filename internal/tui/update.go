package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		return m, nil

	case ThemeChangedMsg:
		if msg.Styles != nil {
			m.styles = msg.Styles
			m.infoMessage = fmt.Sprintf("Theme: %s", msg.Styles.Name)
			m.logger.Info("theme applied", "theme", string(msg.Styles.Name))
		}
		return m, nil

	case errMsg:
		m.errorMessage = msg.err.Error()
		return m, nil
	}

	// Cursor blink and other input housekeeping
	return m.updateFocusedInput(msg)
}

// handleKeypress dispatches a key to the command bound to it in the current
// mode. Unbound keys in compose and edit mode are typed into the input.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.infoMessage = ""

	cmd, ok := m.keymap.GetBinding(msg, m.mode)

	switch m.mode {
	case keymap.ModeCompose:
		if !ok {
			return m.typeInto(msg)
		}
		return m.handleComposeCommand(cmd)

	case keymap.ModeEdit:
		if !ok {
			return m.typeInto(msg)
		}
		return m.handleEditCommand(cmd)

	default:
		if !ok {
			return m, nil
		}
		return m.handleNormalCommand(cmd)
	}
}

func (m Model) handleNormalCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdCursorDown:
		if m.cursor < len(m.store.VisibleTasks())-1 {
			m.cursor++
		}
	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.CmdCursorTop:
		m.cursor = 0
	case keymap.CmdCursorBottom:
		m.cursor = len(m.store.VisibleTasks()) - 1
		m.clampCursor()

	case keymap.CmdEnterCompose:
		m.mode = keymap.ModeCompose
		return m, m.compose.Focus()

	case keymap.CmdStartEdit:
		vt, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.StartEdit(vt.Index); err != nil {
			m.showError(err)
			return m, nil
		}
		m.edit.SetValue(vt.Task.Text)
		m.edit.CursorEnd()
		m.mode = keymap.ModeEdit
		return m, m.edit.Focus()

	case keymap.CmdToggleDone:
		vt, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.ToggleComplete(vt.Index); err != nil {
			m.showError(err)
		}

	case keymap.CmdRemove:
		vt, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.RemoveTask(vt.Index); err != nil {
			m.showError(err)
			return m, nil
		}
		m.infoMessage = "Deleted: " + vt.Task.Text
		m.clampCursor()

	case keymap.CmdCyclePriority:
		m.cyclePriority()
	case keymap.CmdCycleCategory:
		m.cycleCategory()

	case keymap.CmdCycleFilter:
		m.store.SetFilter(m.store.Filter().Next())
		m.clampCursor()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleComposeCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdConfirm:
		m.store.SetComposeText(m.compose.Value())
		if _, err := m.store.AddTask(); err != nil {
			m.showError(err)
			return m, nil
		}
		m.compose.SetValue(m.store.Compose().Text)
		if visible := m.store.VisibleTasks(); len(visible) > 0 && visible[len(visible)-1].Index == m.store.Len()-1 {
			m.cursor = len(visible) - 1
		}

	case keymap.CmdCyclePriority:
		m.cyclePriority()
	case keymap.CmdCycleCategory:
		m.cycleCategory()

	case keymap.CmdCancel:
		m.mode = keymap.ModeNormal
		m.compose.Blur()

	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleEditCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdConfirm:
		m.store.SetEditText(m.edit.Value())
		if err := m.store.SaveEdit(); err != nil {
			m.showError(err)
			return m, nil
		}
		m.closeEdit()

	case keymap.CmdCancel:
		m.store.CancelEdit()
		m.closeEdit()

	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// typeInto forwards a key to the focused input and mirrors its value into
// the store.
func (m Model) typeInto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case keymap.ModeCompose:
		m.compose, cmd = m.compose.Update(msg)
		m.store.SetComposeText(m.compose.Value())
	case keymap.ModeEdit:
		m.edit, cmd = m.edit.Update(msg)
		m.store.SetEditText(m.edit.Value())
	}
	return m, cmd
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case keymap.ModeCompose:
		m.compose, cmd = m.compose.Update(msg)
	case keymap.ModeEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return m, cmd
}

func (m *Model) cyclePriority() {
	m.store.SetComposePriority(m.store.Compose().Priority.Next())
}

func (m *Model) cycleCategory() {
	m.store.SetComposeCategory(m.store.Compose().Category.Next())
}

func (m *Model) closeEdit() {
	m.edit.Blur()
	m.edit.SetValue("")
	m.mode = keymap.ModeNormal
}

// showError puts err on the inline error line and logs it at the level
// matching its severity. Messages of user-facing errors are shown as-is.
func (m *Model) showError(err error) {
	if errors.IsUserFacing(err) {
		m.errorMessage = errors.UserMessage(err)
	} else {
		m.errorMessage = "Error: " + err.Error()
	}

	severity := errors.GetSeverity(err)
	args := []any{"error", err.Error(), "severity", severity.String()}
	switch severity {
	case errors.SeverityDebug:
		m.logger.Debug("store operation failed", args...)
	case errors.SeverityInfo:
		m.logger.Info("store operation failed", args...)
	case errors.SeverityWarning:
		m.logger.Warn("store operation failed", args...)
	default:
		m.logger.Error("store operation failed", args...)
	}
}

var _ tea.Model = Model{}
