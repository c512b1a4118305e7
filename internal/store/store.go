package store

import (
	"slices"
	"strings"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/logging"
	"github.com/Iron-Ham/tasklist/internal/task"
)

// Message shown when submitted task text is empty after trimming.
const msgTextRequired = "task text required"

// VisibleTask is one row of the filtered view. Index is the task's position
// in the full collection.
type VisibleTask struct {
	Index int
	Task  task.Task
}

// Compose is the pending input for the next task.
type Compose struct {
	Text     string
	Priority task.Priority
	Category task.Category
}

// Edit is the state of the edit session. Index and Text are meaningful only
// when Active is true.
type Edit struct {
	Active bool
	Index  int
	Text   string
}

// Snapshot is a read-only copy of everything a view needs to render.
type Snapshot struct {
	Tasks     []task.Task
	Visible   []VisibleTask
	Compose   Compose
	Edit      Edit
	Filter    task.Filter
	Completed int
}

// Store is the task-list state machine. It has a single owner and is not
// safe for concurrent use.
type Store struct {
	tasks   []task.Task
	compose Compose
	edit    Edit
	filter  task.Filter
	logger  *logging.Logger
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger sets the logger used for operation tracing.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.WithComponent("store")
		}
	}
}

// WithComposeDefaults sets the initial compose priority and category.
// Invalid values are ignored.
func WithComposeDefaults(p task.Priority, c task.Category) Option {
	return func(s *Store) {
		if p.Valid() {
			s.compose.Priority = p
		}
		if c.Valid() {
			s.compose.Category = c
		}
	}
}

// WithFilter sets the initial filter. Invalid values are ignored.
func WithFilter(f task.Filter) Option {
	return func(s *Store) {
		if f.Valid() {
			s.filter = f
		}
	}
}

// New creates an empty store: no tasks, filter All, compose priority Medium,
// compose category Personal and no edit session.
func New(opts ...Option) *Store {
	s := &Store{
		tasks: []task.Task{},
		compose: Compose{
			Priority: task.PriorityMedium,
			Category: task.CategoryPersonal,
		},
		filter: task.FilterAll,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetComposeText sets the pending text for the next task.
func (s *Store) SetComposeText(text string) {
	s.compose.Text = text
}

// SetComposePriority sets the priority used for the next task.
func (s *Store) SetComposePriority(p task.Priority) {
	if !p.Valid() {
		return
	}
	s.compose.Priority = p
	s.trace("compose priority set", "compose_priority", "priority", p.String())
}

// SetComposeCategory sets the category used for the next task.
func (s *Store) SetComposeCategory(c task.Category) {
	if !c.Valid() {
		return
	}
	s.compose.Category = c
	s.trace("compose category set", "compose_category", "category", c.String())
}

// AddTask appends a task built from the compose state and clears the compose
// text. Priority and category selections are kept for the next task.
// Empty or whitespace-only text is rejected and nothing changes.
func (s *Store) AddTask() ([]task.Task, error) {
	if strings.TrimSpace(s.compose.Text) == "" {
		s.logger.Warn("add rejected", "op", "add", "reason", msgTextRequired)
		return s.Tasks(), textRequired(s.compose.Text)
	}

	s.tasks = append(s.tasks, task.Task{
		Text:     s.compose.Text,
		Priority: s.compose.Priority,
		Category: s.compose.Category,
	})
	s.compose.Text = ""

	added := s.tasks[len(s.tasks)-1]
	s.trace("task added", "add",
		"index", len(s.tasks)-1,
		"priority", added.Priority.String(),
		"category", added.Category.String())
	return s.Tasks(), nil
}

// RemoveTask deletes the task at index; later tasks shift down by one.
//
// An open edit session is kept consistent: it is closed when its task is
// removed and re-pointed when an earlier task is removed.
func (s *Store) RemoveTask(index int) error {
	if err := s.checkIndex("remove", index); err != nil {
		return err
	}

	s.tasks = slices.Delete(s.tasks, index, index+1)

	editClosed := false
	if s.edit.Active {
		switch {
		case s.edit.Index == index:
			s.edit = Edit{}
			editClosed = true
		case s.edit.Index > index:
			s.edit.Index--
		}
	}

	s.trace("task removed", "remove", "index", index, "edit_closed", editClosed)
	return nil
}

// StartEdit opens an edit session on the task at index, replacing any
// session already open.
func (s *Store) StartEdit(index int) error {
	if err := s.checkIndex("edit", index); err != nil {
		return err
	}

	s.edit = Edit{Active: true, Index: index, Text: s.tasks[index].Text}
	s.trace("edit started", "edit", "index", index)
	return nil
}

// SetEditText sets the pending replacement text. It does nothing when no
// edit session is open.
func (s *Store) SetEditText(text string) {
	if !s.edit.Active {
		return
	}
	s.edit.Text = text
}

// SaveEdit writes the pending text into the edited task and closes the
// session. Without a session it does nothing. Empty text is rejected and the
// session stays open.
func (s *Store) SaveEdit() error {
	if !s.edit.Active {
		return nil
	}
	if strings.TrimSpace(s.edit.Text) == "" {
		s.logger.Warn("save rejected", "op", "save", "index", s.edit.Index, "reason", msgTextRequired)
		return textRequired(s.edit.Text)
	}

	index := s.edit.Index
	s.tasks[index].Text = s.edit.Text
	s.edit = Edit{}
	s.trace("edit saved", "save", "index", index)
	return nil
}

// CancelEdit closes the edit session without changing any task.
func (s *Store) CancelEdit() {
	if !s.edit.Active {
		return
	}
	index := s.edit.Index
	s.edit = Edit{}
	s.trace("edit canceled", "cancel", "index", index)
}

// ToggleComplete flips the completion flag of the task at index in place.
func (s *Store) ToggleComplete(index int) error {
	if err := s.checkIndex("toggle", index); err != nil {
		return err
	}

	s.tasks[index].Completed = !s.tasks[index].Completed
	s.trace("task toggled", "toggle", "index", index, "completed", s.tasks[index].Completed)
	return nil
}

// SetFilter sets the category filter. Stored tasks are not affected.
func (s *Store) SetFilter(f task.Filter) {
	if !f.Valid() {
		return
	}
	s.filter = f
	s.trace("filter set", "filter", "filter", f.String())
}

// VisibleTasks returns, in insertion order, the tasks that pass the filter
// together with their underlying indices.
func (s *Store) VisibleTasks() []VisibleTask {
	visible := make([]VisibleTask, 0, len(s.tasks))
	for i, t := range s.tasks {
		if s.filter.Matches(t.Category) {
			visible = append(visible, VisibleTask{Index: i, Task: t})
		}
	}
	return visible
}

// Tasks returns a copy of the full collection.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Compose returns the compose state.
func (s *Store) Compose() Compose {
	return s.compose
}

// Edit returns the edit session state.
func (s *Store) Edit() Edit {
	return s.edit
}

// Filter returns the current filter.
func (s *Store) Filter() task.Filter {
	return s.filter
}

// Snapshot returns a copy of the full state for rendering.
func (s *Store) Snapshot() Snapshot {
	completed := 0
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return Snapshot{
		Tasks:     s.Tasks(),
		Visible:   s.VisibleTasks(),
		Compose:   s.compose,
		Edit:      s.edit,
		Filter:    s.filter,
		Completed: completed,
	}
}

func (s *Store) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.tasks) {
		s.logger.Warn("index rejected", "op", op, "index", index, "len", len(s.tasks))
		return errors.NewIndexError(op, index, len(s.tasks))
	}
	return nil
}

// trace logs one DEBUG line for a state change. Every line carries the
// operation name and the collection length after the change.
func (s *Store) trace(msg, op string, args ...any) {
	s.logger.Debug(msg, append([]any{"op", op, "len", len(s.tasks)}, args...)...)
}

func textRequired(value string) error {
	return errors.NewValidationError(msgTextRequired).
		WithField("text").
		WithValue(value).
		WithCause(errors.ErrTextRequired)
}
