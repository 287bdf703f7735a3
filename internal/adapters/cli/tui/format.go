package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/devbush/podbleep/internal/domain"
	"github.com/devbush/podbleep/internal/redact"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// FormatHit formats one banned-word match for display.
// Example: "  ✗ hell at 35:46.12 (560ms redacted)"
func FormatHit(h redact.Hit) string {
	return fmt.Sprintf("  %s %s at %s %s",
		matchStyle.Render("✗"),
		matchStyle.Render(h.Word),
		domain.FormatTimestamp(h.At),
		dimStyle.Render(fmt.Sprintf("(%dms redacted)", h.Interval.DurationMs())))
}

// Success renders a success line
func Success(msg string) string {
	return successStyle.Render("✓ ") + msg
}

// Warn renders a warning line
func Warn(msg string) string {
	return warnStyle.Render("! ") + msg
}

// FormatSize renders a byte count for humans: "140 MB", "3.0 GB".
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.0f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatInspectRow formats one word row of the inspect table.
// Example: "35:46.12     hell                ◀ YOU ARE HERE"
func FormatInspectRow(word domain.Word, nearest bool) string {
	marker := ""
	if nearest {
		marker = matchStyle.Render(" ◀ YOU ARE HERE")
	}
	return fmt.Sprintf("%-12s %-20s%s", domain.FormatTimestamp(word.Start), word.Text, marker)
}
