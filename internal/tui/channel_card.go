package tui

import (
	"strings"

	"github.com/bluestero/ythandle/internal/channel/domain"
	"github.com/bluestero/ythandle/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	minCardWidth        = 40
	maxDescriptionLines = 3
)

// RenderChannelCard renders a snippet as a bordered card no wider than width.
func RenderChannelCard(s *domain.Snippet, width int) string {
	if s == nil {
		return ""
	}
	width = max(width, minCardWidth)
	// Border and padding take 6 columns.
	inner := width - 6

	title := styles.Title.Render(ansi.Truncate(s.Title, inner, "…"))
	handle := styles.Handle.Render(s.Handle())

	rows := []string{title, handle, ""}
	rows = append(rows, field("Channel ID", s.ChannelID, inner))
	rows = append(rows, field("Custom URL", s.CustomURL, inner))
	if s.Country != "" {
		rows = append(rows, field("Country", s.Country, inner))
	}
	if !s.PublishedAt.IsZero() {
		rows = append(rows, field("Created", s.PublishedAt.Format("2006-01-02"), inner))
	}
	if desc := descriptionLines(s.Description, inner); len(desc) > 0 {
		rows = append(rows, "")
		for _, line := range desc {
			rows = append(rows, styles.MutedText.Render(line))
		}
	}

	return styles.CardActive.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func field(label, value string, width int) string {
	l := styles.Label.Render(label + ": ")
	v := ansi.Truncate(value, max(width-lipgloss.Width(l), 1), "…")
	return l + styles.Value.Render(v)
}

func descriptionLines(desc string, width int) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(desc), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(lines) == maxDescriptionLines {
			last := lines[len(lines)-1]
			if !strings.HasSuffix(last, "…") {
				lines[len(lines)-1] = ansi.Truncate(last, width-1, "") + "…"
			}
			break
		}
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return lines
}
