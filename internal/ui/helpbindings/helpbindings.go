// Package helpbindings provides a scrollable panel listing key and mouse bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// CloseMsg signals the help panel should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "carousel", "mouse", "help"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Global",
	"carousel": "Carousel (hovered or focused)",
	"mouse":    "Mouse",
	"help":     "Help",
}

// mouseBindings documents pointer input; they have no key resolver.
var mouseBindings = []keymap.Binding{
	{Keys: []string{"drag"}, Description: "Scroll a carousel", Context: "mouse"},
	{Keys: []string{"wheel"}, Description: "Scroll the carousel under the pointer", Context: "mouse"},
	{Keys: []string{"click ‹ ›"}, Description: "Previous / next card", Context: "mouse"},
	{Keys: []string{"click card"}, Description: "Open card", Context: "mouse"},
}

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	keys         *keymap.Resolver
	scrollOffset int
}

// New creates a help panel listing every binding.
func New() Model {
	m := Model{keys: keymap.ForContexts("help")}
	for _, ctx := range categoryOrder {
		if ctx == "mouse" {
			m.bindings = append(m.bindings, mouseBindings...)
			continue
		}
		m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
	}
	return m
}

// Reset scrolls back to the top.
func (m *Model) Reset() {
	m.scrollOffset = 0
}

// Update handles help panel keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.Resolve(keyMsg.String()) {
	case keymap.ActionHelpClose:
		return m, func() tea.Msg { return CloseMsg{} }
	case keymap.ActionHelpDown:
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case keymap.ActionHelpUp:
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the bordered panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	// Width from all lines keeps the panel steady while scrolling
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, line+strings.Repeat(" ", maxWidth-lipgloss.Width(line)))
	}

	t := styles.T()
	var b strings.Builder
	b.WriteString(t.S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(m.footer()))

	return styles.HelpPanelStyle().Render(b.String())
}

func (m Model) contentLines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.BorderGrab).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				separatorStyle.Render(strings.Repeat("─", keyWidth+15)),
			)
			current = b.Context
		}

		keys := strings.Join(b.Keys, ", ")
		padded := keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
		lines = append(lines, keyStyle.Render(padded)+"  "+descStyle.Render(b.Description))
	}
	return lines
}

func (m Model) footer() string {
	if len(m.contentLines()) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the title, footer and border.
func (m Model) visibleHeight() int {
	return max(m.Height()-8, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}
