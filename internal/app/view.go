// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui/headerbar"
	"github.com/llehouerou/showcase/internal/ui/overlay"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// hints are the bindings advertised on the bottom line.
var hints = []struct {
	action keymap.Action
	label  string
}{
	{keymap.ActionScrollLeft, "prev"},
	{keymap.ActionScrollRight, "next"},
	{keymap.ActionSwitchFocus, "focus"},
	{keymap.ActionPageDown, "page"},
	{keymap.ActionHelp, "help"},
	{keymap.ActionQuit, "quit"},
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	titles := make([]string, len(m.Carousels))
	for i, c := range m.Carousels {
		titles[i] = c.Title()
	}

	parts := []string{headerbar.Render(titles, m.Focus, m.Width)}
	if body := m.renderBody(); body != "" {
		parts = append(parts, body)
	}
	if m.Status != "" {
		parts = append(parts, m.renderStatus())
	}
	parts = append(parts, m.renderHints())

	view := strings.Join(parts, "\n")
	if m.ShowHelp {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

// renderBody stacks the sections and cuts the visible window of rows.
func (m Model) renderBody() string {
	height := m.contentHeight()
	if height == 0 {
		return ""
	}

	var rows []string
	for _, c := range m.Carousels {
		rows = append(rows, strings.Split(c.View(), "\n")...)
	}

	start := min(m.ScrollTop, len(rows))
	end := min(start+height, len(rows))
	lines := make([]string, 0, height)
	for _, row := range rows[start:end] {
		lines = append(lines, padLine(row, m.Width))
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(m.Width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	style := s.Status
	if m.StatusErr {
		style = s.Error
	}
	return style.Render(render.Pad(" "+render.Truncate(m.Status, m.Width-2), m.Width))
}

func (m Model) renderHints() string {
	keys := keymap.ForContexts("global", "carousel")
	parts := make([]string, 0, len(hints)+1)
	parts = append(parts, "drag scroll")
	for _, h := range hints {
		if k := keys.KeysFor(h.action); len(k) > 0 {
			parts = append(parts, k[0]+" "+h.label)
		}
	}
	line := " " + strings.Join(parts, " · ")
	return styles.T().S().Muted.Render(render.Pad(render.Truncate(line, m.Width), m.Width))
}

// padLine pads a styled line with spaces to width.
func padLine(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
