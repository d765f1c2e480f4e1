package styles

import (
	"github.com/bluestero/ythandle/internal/auditlog"

	"github.com/charmbracelet/lipgloss"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// Handle renders a channel handle.
	Handle = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)

// --- Outcome badges ---

// OutcomeStyle returns the style for an audit outcome value.
func OutcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case auditlog.OutcomeMatched, auditlog.OutcomeSuccess:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case auditlog.OutcomeNoMatch:
		return lipgloss.NewStyle().Foreground(Yellow)
	case auditlog.OutcomeError:
		return lipgloss.NewStyle().Foreground(Red)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// OutcomeIndicator returns a small dot + outcome text with appropriate color.
func OutcomeIndicator(outcome string) string {
	style := OutcomeStyle(outcome)
	return style.Render("●") + " " + style.Render(outcome)
}

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// CardActive is a card with an accent border for focused elements.
	CardActive = lipgloss.NewStyle().
			Border(Border).
			BorderForeground(Red).
			Padding(1, 2)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "esc").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "cancel").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}
