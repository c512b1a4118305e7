// Package util provides shared string helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to text cut short by Truncate.
const Ellipsis = "…"

// Truncate fits s into maxWidth terminal columns, ending it with an ellipsis
// when it had to be cut. It is aware of ANSI escape codes and wide
// characters. A non-positive maxWidth returns s unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= lipgloss.Width(Ellipsis) {
		return Ellipsis
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// SingleLine collapses line breaks and tabs so a task renders on one row.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

// ClampWidth picks the width available for text: the configured cap when set,
// bounded by what the terminal has left.
func ClampWidth(limit, available int) int {
	if available <= 0 {
		return limit
	}
	if limit <= 0 || limit > available {
		return available
	}
	return limit
}
