// Package task defines the task entity and the enumerations that describe it.
package task

import (
	"fmt"
	"strings"
)

// Priority ranks a task. It is fixed when the task is created.
type Priority int

// Priority values. The zero value is not a valid priority.
const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

// Priorities returns all priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the declared priorities.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Next returns the following priority, wrapping from Low back to High.
func (p Priority) Next() Priority {
	if !p.Valid() || p == PriorityLow {
		return PriorityHigh
	}
	return p + 1
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities() {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

// Category groups a task. It is fixed when the task is created.
type Category int

// Category values. The zero value is not a valid category.
const (
	CategoryPersonal Category = iota + 1
	CategoryWork
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork}
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryPersonal:
		return "Personal"
	case CategoryWork:
		return "Work"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c == CategoryPersonal || c == CategoryWork
}

// Next returns the other category.
func (c Category) Next() Category {
	if c == CategoryPersonal {
		return CategoryWork
	}
	return CategoryPersonal
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Filter selects which categories are shown. It only affects the derived
// view, never the stored tasks.
type Filter int

// Filter values.
const (
	FilterAll Filter = iota + 1
	FilterPersonal
	FilterWork
)

// Filters returns all filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterPersonal, FilterWork}
}

// String returns the display name of the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterPersonal:
		return "Personal"
	case FilterWork:
		return "Work"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the declared filters.
func (f Filter) Valid() bool {
	return f >= FilterAll && f <= FilterWork
}

// Next returns the following filter, wrapping from Work back to All.
func (f Filter) Next() Filter {
	if !f.Valid() || f == FilterWork {
		return FilterAll
	}
	return f + 1
}

// Matches reports whether a task in category c passes the filter.
func (f Filter) Matches(c Category) bool {
	switch f {
	case FilterPersonal:
		return c == CategoryPersonal
	case FilterWork:
		return c == CategoryWork
	default:
		return true
	}
}

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters() {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", s)
}

// Task is one to-do item.
type Task struct {
	Text      string
	Completed bool
	Priority  Priority
	Category  Category
}
