package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#436b77")).
			Padding(0, 1)

	pillSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16161d")).
				Background(lipgloss.Color("#a7754e")).
				Bold(true).
				Padding(0, 1)
)

// TagPills renders tags as pills with a close marker. selected is the index
// of the highlighted pill, or -1 for none.
func TagPills(tags []string, selected int) string {
	if len(tags) == 0 {
		return ""
	}
	pills := make([]string, len(tags))
	for i, t := range tags {
		style := pillStyle
		if i == selected {
			style = pillSelectedStyle
		}
		pills[i] = style.Render("× " + SanitizeOneLine(t))
	}
	return strings.Join(pills, " ")
}
