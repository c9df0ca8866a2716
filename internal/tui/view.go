package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fwew/internal/model"
)

func promptFor(cfg model.Config) string {
	if cfg.Direction == model.ToNavi {
		return cfg.Lang + "> "
	}
	return "na'vi> "
}

func directionLabel(cfg model.Config) string {
	if cfg.Direction == model.ToNavi {
		return cfg.Lang + " → Na'vi"
	}
	return "Na'vi → " + cfg.Lang
}

func styleLines(lines []string, style lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(line)
	}
	return out
}

// truncateLine cuts plain text to width columns.
func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}
