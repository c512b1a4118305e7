// Package store holds the task-list state machine.
//
// A [Store] owns the task collection plus the transient compose, edit and
// filter state of one session. It is created fresh when the session starts
// and discarded when it ends; nothing is persisted.
//
// Every operation runs to completion synchronously. A failed operation
// leaves the store exactly as it was: empty text is rejected with an
// [errors.ValidationError] and an index that does not address a task is
// rejected with an [errors.IndexError].
//
// Consumers render from [Store.Snapshot] after every call. Rows of the
// filtered view carry their underlying index ([VisibleTask.Index]), and that
// index, never the row position, is what must be passed back:
//
//	s := store.New()
//	s.SetComposeText("Ship release")
//	s.SetComposePriority(task.PriorityHigh)
//	s.SetComposeCategory(task.CategoryWork)
//	if _, err := s.AddTask(); err != nil {
//	    // show errors.UserMessage(err)
//	}
//
//	s.SetFilter(task.FilterWork)
//	for _, row := range s.VisibleTasks() {
//	    _ = s.ToggleComplete(row.Index)
//	}
package store
