// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Brand is the application name shown on the left.
const Brand = "showcase"

// Render returns the header bar for the given width: the brand on the
// left and one tab per section centered in the remaining space.
// active is the focused section, or -1.
func Render(sections []string, active, width int) string {
	if width < 20 {
		return render.EmptyLine(width)
	}

	t := styles.T()
	brand := styles.ApplyBoldGradient(Brand, t.Primary, t.Secondary)

	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	separator := lipgloss.NewStyle().Foreground(t.Border).Render(" │ ")

	parts := make([]string, 0, len(sections))
	for i, name := range sections {
		if i == active {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	tabs := strings.Join(parts, separator)

	brandWidth := lipgloss.Width(brand) + 1
	free := width - 2*brandWidth
	line := " " + brand
	if lipgloss.Width(tabs) <= free {
		line += lipgloss.PlaceHorizontal(free, lipgloss.Center, tabs)
	}
	return line + strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
}
