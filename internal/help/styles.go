// Package help styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package help

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for help rendering.
type Styles struct {
	// Description is the style for the text printed before the argument list.
	Description lipgloss.Style

	// Flag is the style for argument headers like "--count, -c" (cyan).
	Flag lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
// Colors are dropped automatically when stdout is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Description: lipgloss.NewStyle().Bold(true),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{
		Description: lipgloss.NewStyle(),
		Flag:        lipgloss.NewStyle(),
	}
}
