// Package overlay draws panels on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws panel over base with its top-left corner at column x, row y.
// Every base line is treated as width cells wide; shorter lines are padded.
// Panel lines falling outside the base are dropped.
func Place(base, panel string, x, y, width int) string {
	if panel == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, line := range strings.Split(panel, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) || x >= width {
			continue
		}
		pw := min(ansi.StringWidth(line), width-x)
		under := padRight(baseLines[row], width)
		baseLines[row] = ansi.Cut(under, 0, x) + ansi.Cut(line, 0, pw) + ansi.Cut(under, x+pw, width)
	}
	return strings.Join(baseLines, "\n")
}

// Center draws panel in the middle of a width x height base.
func Center(base, panel string, width, height int) string {
	pw, ph := size(panel)
	return Place(base, panel, (width-pw)/2, (height-ph)/2, width)
}

func size(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return width, len(lines)
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
