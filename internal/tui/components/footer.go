package components

import (
	"strings"

	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding is one entry in the footer help bar.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders the key help bar with an optional status on the right.
// Bindings that do not fit are dropped from the end.
func Footer(width int, status string, bindings ...KeyBinding) string {
	if width < 10 || (len(bindings) == 0 && status == "") {
		return ""
	}

	right := ""
	if status != "" {
		right = styles.MutedText.Render(status)
	}

	sep := styles.KeySepStyle.Render("  ")
	budget := width - barPadding - lipgloss.Width(right) - 1
	var left strings.Builder
	for i, b := range bindings {
		part := styles.FormatKeyBinding(b.Key, b.Desc)
		if i > 0 {
			part = sep + part
		}
		if lipgloss.Width(left.String())+lipgloss.Width(part) > budget {
			break
		}
		left.WriteString(part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(spread(left.String(), right, width-barPadding))
}
