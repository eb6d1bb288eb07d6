package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yacobolo/dsfrkit/internal/deck"
)

// Terminal styles shared by the reporters.
// Lipgloss degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for high severity issues and failures.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for medium severity issues.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleBlue is used for low severity issues.
	StyleBlue = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	// StyleGreen is used for passing checks and recommendations.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for issue types and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// SeverityStyle maps a severity to its style.
func SeverityStyle(s deck.Severity) lipgloss.Style {
	switch s {
	case deck.SeverityHigh:
		return StyleRed
	case deck.SeverityMedium:
		return StyleYellow
	default:
		return StyleBlue
	}
}
