package styles

import "github.com/charmbracelet/lipgloss"

var (
	helpPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(defaultTheme.BorderFocus).
			Padding(0, 2)

	focusMarkerStyle = lipgloss.NewStyle().
				Foreground(defaultTheme.Primary).
				Bold(true)
)

// HelpPanelStyle returns the bordered style of the help panel.
func HelpPanelStyle() lipgloss.Style {
	return helpPanelStyle
}

// FocusMarker returns the marker drawn next to the focused carousel's title,
// or blank padding of the same width.
func FocusMarker(focused bool) string {
	if focused {
		return focusMarkerStyle.Render("▸ ")
	}
	return "  "
}
