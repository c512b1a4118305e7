package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tasklist/internal/store"
	"github.com/Iron-Ham/tasklist/internal/task"
	"github.com/Iron-Ham/tasklist/internal/tui/keymap"
	"github.com/Iron-Ham/tasklist/internal/tui/styles"
	"github.com/Iron-Ham/tasklist/internal/util"
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return ""
	}

	snap := m.store.Snapshot()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCompose(snap.Compose))
	b.WriteString("\n")
	b.WriteString(m.renderFilterTabs(snap.Filter))
	b.WriteString("\n\n")

	if snap.Edit.Active {
		b.WriteString(m.renderEdit(snap.Edit))
		b.WriteString("\n")
	}

	b.WriteString(m.renderList(snap))
	b.WriteString("\n")

	if m.errorMessage != "" {
		b.WriteString(m.styles.ErrorMsg.Render("✗ " + m.errorMessage))
	} else if m.infoMessage != "" {
		b.WriteString(m.styles.SuccessMsg.Render(m.infoMessage))
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar(snap))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	return m.styles.Title.Render("Task List")
}

// renderCompose renders the new-task input and the selections it will use.
func (m Model) renderCompose(c store.Compose) string {
	box := m.styles.InputBlurred
	if m.mode == keymap.ModeCompose {
		box = m.styles.InputFocused
	}
	input := box.Width(max(m.width-2, 20)).Render(m.compose.View())

	priority := m.styles.Badge.
		Foreground(m.styles.PriorityColor(c.Priority)).
		Render(styles.PriorityIcon(c.Priority) + " " + c.Priority.String())
	category := m.styles.Badge.Render(c.Category.String())
	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.InputLabel.Render("Priority"), priority,
		m.styles.InputLabel.Render("Category"), category,
	)

	return lipgloss.JoinVertical(lipgloss.Left, input, badges)
}

func (m Model) renderFilterTabs(current task.Filter) string {
	tabs := make([]string, 0, len(task.Filters()))
	for _, f := range task.Filters() {
		if f == current {
			tabs = append(tabs, m.styles.TabActive.Render(f.String()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(f.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderEdit(e store.Edit) string {
	label := m.styles.RowEditing.Render(fmt.Sprintf("Editing task %d", e.Index+1))
	input := m.styles.InputFocused.Width(max(m.width-2, 20)).Render(m.edit.View())
	return lipgloss.JoinVertical(lipgloss.Left, label, input)
}

// renderList renders the visible tasks, scrolled so the cursor stays on screen.
func (m Model) renderList(snap store.Snapshot) string {
	if len(snap.Visible) == 0 {
		if len(snap.Tasks) == 0 {
			msg := "No tasks yet."
			if hint := m.keyHint(keymap.CmdEnterCompose); hint != "" {
				msg += " Press " + hint + " to add one."
			}
			return m.styles.EmptyList.Render(msg)
		}
		return m.styles.EmptyList.Render(fmt.Sprintf("No %s tasks.", snap.Filter))
	}

	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(snap.Visible))

	textWidth := util.ClampWidth(m.maxTextWidth, m.width-rowChrome)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		vt := snap.Visible[i]
		editing := snap.Edit.Active && snap.Edit.Index == vt.Index
		rows = append(rows, m.renderRow(vt, i == m.cursor, editing, textWidth))
	}
	return strings.Join(rows, "\n")
}

// keyHint returns the first normal-mode key bound to cmd, bracketed, or ""
// when the keymap leaves cmd unbound.
func (m Model) keyHint(cmd keymap.Command) string {
	bindings := m.keymap.GetBindingsForCommand(cmd, keymap.ModeNormal)
	if len(bindings) == 0 {
		return ""
	}
	return "[" + bindings[0].String() + "]"
}

// rowChrome is the width of everything on a row except the task text:
// padding, checkbox, priority marker, category tag and separating spaces.
const rowChrome = 2 + 3 + 1 + 2 + 1 + len("[Personal]") + 1

func (m Model) renderRow(vt store.VisibleTask, selected, editing bool, textWidth int) string {
	t := vt.Task

	check := m.styles.Checkbox.Render(styles.CheckIcon(t.Completed))
	if t.Completed {
		check = m.styles.CheckboxDone.Render(styles.CheckIcon(t.Completed))
	}

	marker := m.styles.Priority(t.Priority).Render(styles.PriorityIcon(t.Priority))
	category := m.styles.Muted.Render("[" + t.Category.String() + "]")

	text := util.Truncate(util.SingleLine(t.Text), textWidth)
	switch {
	case editing:
		text = m.styles.RowEditing.Render(text)
	case t.Completed:
		text = m.styles.RowCompleted.Render(text)
	}

	line := strings.Join([]string{check, marker, text, category}, " ")
	if selected && m.mode == keymap.ModeNormal {
		return m.styles.RowSelected.Render(line)
	}
	return m.styles.Row.Render(line)
}

func (m Model) renderStatusBar(snap store.Snapshot) string {
	var mode string
	switch m.mode {
	case keymap.ModeCompose:
		mode = m.styles.ModeBadgeCompose.Render("COMPOSE")
	case keymap.ModeEdit:
		mode = m.styles.ModeBadgeEdit.Render("EDIT")
	default:
		mode = m.styles.ModeBadgeNormal.Render("NORMAL")
	}

	counts := fmt.Sprintf("%d tasks · %d done · showing %d",
		len(snap.Tasks), snap.Completed, len(snap.Visible))

	return lipgloss.JoinHorizontal(lipgloss.Top, mode, m.styles.StatusBar.Render(counts))
}

// shortHelp lists the commands hinted in normal mode while full help is off.
var shortHelp = map[keymap.Command]bool{
	keymap.CmdEnterCompose: true,
	keymap.CmdStartEdit:    true,
	keymap.CmdToggleDone:   true,
	keymap.CmdRemove:       true,
	keymap.CmdCycleFilter:  true,
	keymap.CmdToggleHelp:   true,
	keymap.CmdQuit:         true,
}

// renderHelp renders the key hints for the current mode. With help toggled
// on, normal mode lists every binding grouped by category.
func (m Model) renderHelp() string {
	entries := m.keymap.Help(m.mode)

	if m.mode != keymap.ModeNormal {
		return m.styles.HelpBar.Render(m.helpLine(entries))
	}

	if !m.showHelp {
		var short []keymap.HelpEntry
		for _, e := range entries {
			if shortHelp[e.Command] {
				short = append(short, e)
			}
		}
		return m.styles.HelpBar.Render(m.helpLine(short))
	}

	byCategory := make(map[string][]keymap.HelpEntry)
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
	lines := make([]string, 0, len(byCategory))
	for _, cat := range m.keymap.GetCategories(m.mode) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("%-12s", cat))+m.helpLine(byCategory[cat]))
	}
	return m.styles.HelpBar.Render(strings.Join(lines, "\n"))
}

func (m Model) helpLine(entries []keymap.HelpEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, m.styles.HelpKey.Render("["+e.Keys+"]")+" "+e.Description)
	}
	return strings.Join(parts, "  ")
}
