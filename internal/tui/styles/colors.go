// Package styles provides the centralized color palette and style definitions
// for ythandle's terminal output. All visual constants live here so the rest
// of the UI code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent
	Red  = lipgloss.Color("#FF4E45")
	Blue = lipgloss.Color("#5FAFFF")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
)
