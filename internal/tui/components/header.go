// Package components provides render-only building blocks (not tea.Model)
// that the interactive screens compose into views.
package components

import (
	"strings"

	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// barPadding is the horizontal padding of the header and footer bars.
const barPadding = 4

// Header renders the application header bar.
//
//	  ythandle > auth login         YouTube
//	──────────────────────────────────────────
func Header(width int, breadcrumb string, provider string) string {
	if width < 10 {
		return ""
	}

	right := ""
	if provider != "" {
		right = styles.Subtitle.Render(provider)
	}

	left := styles.Title.Foreground(styles.Red).Render("ythandle")
	if breadcrumb != "" {
		room := width - barPadding - lipgloss.Width(left) - lipgloss.Width(right) - 4
		if room > 0 {
			left += styles.MutedText.Render(" > ") + styles.Title.Render(ansi.Truncate(breadcrumb, room, "…"))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(spread(left, right, width-barPadding))
}

// spread places left and right at the edges of a line of the given width,
// keeping at least one space between them.
func spread(left, right string, width int) string {
	if right == "" {
		return left
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
