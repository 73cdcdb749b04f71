package scroller

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/cards"
	"github.com/llehouerou/showcase/internal/ui/layout"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

const (
	arrowLeft  = "‹"
	arrowRight = "›"
	emptyText  = "nothing to show"
)

// span is a card's horizontal extent on the strip, in cells.
type span struct {
	start, end int
}

// cardSpans returns the integer extents of every card. Rounding the
// running position keeps adjacent cards and gaps tiling exactly.
func cardSpans(m layout.Metrics, n int) []span {
	spans := make([]span, n)
	for i := range n {
		left := m.Gap + float64(i)*m.Step()
		spans[i] = span{
			start: int(math.Round(left)),
			end:   int(math.Round(left + m.CardWidth)),
		}
	}
	return spans
}

// cardAt returns the index of the card under section-local column lx, or -1.
func (m Model) cardAt(lx int) int {
	x := int(math.Round(m.track.Offset())) + lx - ui.GutterWidth
	for i, s := range cardSpans(m.metrics, len(m.items)) {
		if x >= s.start && x < s.end {
			return i
		}
	}
	return -1
}

// stripCache holds the full-width rendered strip for one layout.
type stripCache struct {
	metrics layout.Metrics
	rows    int
	lines   []string
}

func (c *stripCache) reset() {
	c.lines = nil
}

// stripLines renders every card side by side, one string per row.
func (m Model) stripLines(rows int) []string {
	if m.strip.lines != nil && m.strip.metrics == m.metrics && m.strip.rows == rows {
		return m.strip.lines
	}

	total := int(math.Round(m.metrics.TrackWidth(len(m.items))))
	spans := cardSpans(m.metrics, len(m.items))
	blocks := make([][]string, len(spans))
	for i, s := range spans {
		d := cards.Dims{Width: s.end - s.start, Height: rows, Scale: m.metrics.Scale}
		blocks[i] = fitBlock(m.renderer.Render(m.items[i], d), d.Width, rows)
	}

	lines := make([]string, rows)
	for r := range rows {
		var b strings.Builder
		pos := 0
		for i, s := range spans {
			b.WriteString(strings.Repeat(" ", max(s.start-pos, 0)))
			b.WriteString(blocks[i][r])
			pos = s.end
		}
		b.WriteString(strings.Repeat(" ", max(total-pos, 0)))
		lines[r] = b.String()
	}

	m.strip.metrics = m.metrics
	m.strip.rows = rows
	m.strip.lines = lines
	return lines
}

// fitBlock forces a rendered card to exactly width x height cells.
func fitBlock(s string, width, height int) []string {
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range height {
		var line string
		if i < len(src) {
			line = src[i]
		}
		out[i] = padTo(ansi.Truncate(line, width, ""), width)
	}
	return out
}

func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}

	lines := make([]string, 0, m.SectionHeight())
	lines = append(lines, padTo(m.titleLine(width), width))
	for len(lines) < ui.TitleHeight {
		lines = append(lines, render.EmptyLine(width))
	}

	rows := m.CardRows()
	if rows > 0 {
		lines = append(lines, m.trackRows(rows)...)
		lines = append(lines, padTo(m.progressLine(width), width))
	} else {
		lines = append(lines, render.EmptyLine(width))
	}
	for range m.bottomGap() {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) titleLine(width int) string {
	t := styles.T()
	marker := styles.FocusMarker(m.IsFocused())
	title := t.S().Title.Render(render.Truncate(m.title, max(width/2, 1)))

	var counter string
	if n := len(m.items); n > 0 && !m.metrics.IsZero() {
		first := int(math.Round(m.track.Offset()/m.metrics.Step())) + 1
		counter = fmt.Sprintf("%d/%d", min(max(first, 1), n), n)
		if m.input.Dragging() {
			counter = lipgloss.NewStyle().Foreground(t.BorderGrab).Render("grabbing ") + counter
		}
		counter = t.S().Muted.Render(counter)
	}

	left := marker + title
	gap := width - lipgloss.Width(left) - lipgloss.Width(counter) - ui.GutterWidth
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + counter
}

// trackRows renders the visible window of the strip between the arrow gutters.
func (m Model) trackRows(rows int) []string {
	inner := m.InnerWidth()
	off := int(math.Round(m.track.Offset()))
	strip := m.stripLines(rows)

	left, right := m.arrowStyles()
	mid := rows / 2

	out := make([]string, rows)
	for r := range rows {
		var body string
		if len(m.items) == 0 {
			if r == mid {
				body = styles.T().S().Muted.Render(render.Center(emptyText, inner))
			} else {
				body = render.EmptyLine(inner)
			}
		} else {
			body = padTo(ansi.Cut(strip[r], off, off+inner), inner)
		}

		lg, rg := render.EmptyLine(ui.GutterWidth), render.EmptyLine(ui.GutterWidth)
		if r == mid {
			lg = left.Render(render.Center(arrowLeft, ui.GutterWidth))
			rg = right.Render(render.Center(arrowRight, ui.GutterWidth))
		}
		out[r] = lg + body + rg
	}
	return out
}

// arrowStyles dims an arrow that cannot scroll further and highlights
// both while the section is active.
func (m Model) arrowStyles() (left, right lipgloss.Style) {
	s := styles.T().S()
	active := s.Arrow
	switch {
	case m.input.Dragging():
		active = lipgloss.NewStyle().Foreground(styles.T().BorderGrab).Bold(true)
	case m.input.Hovered() || m.IsFocused():
		active = s.ArrowActive
	}

	left, right = active, active
	if m.track.Offset() <= 0 {
		left = s.Subtle
	}
	if m.track.Offset() >= m.track.MaxScroll() {
		right = s.Subtle
	}
	return left, right
}

func (m Model) progressLine(width int) string {
	inner := m.InnerWidth()
	barWidth := min(m.metrics.ScaledInt(m.cfg.BaseProgressWidth), inner-5)
	bar := m.progress.View(barWidth)
	if bar == "" {
		return ""
	}
	pct := styles.T().S().Muted.Render(fmt.Sprintf(" %3.0f%%", m.progress.Percent()))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar+pct)
}
