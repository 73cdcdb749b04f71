// Package cards renders the content of a single carousel card.
//
// Renderers receive the card's size from the scroller and draw into exactly
// that many cells; they never see or change scroll state.
package cards

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Base sizes at scale 1.0, in cells.
const (
	BasePaddingX    = 2
	BasePaddingY    = 1
	BaseInternalGap = 2
)

// Dims is the size a card must fill.
type Dims struct {
	Width  int
	Height int
	Scale  float64
}

// Scaled returns a base attribute at the card's scale, rounded to whole cells.
func (d Dims) Scaled(base float64) int {
	return int(math.Round(base * d.Scale))
}

// Renderer draws one record into a Width x Height block.
type Renderer interface {
	Render(rec content.Record, d Dims) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(rec content.Record, d Dims) string

// Render implements Renderer.
func (f RendererFunc) Render(rec content.Record, d Dims) string {
	return f(rec, d)
}

// Images draws local card images. Lines of a block share one width;
// a nil block means the image cannot be shown.
type Images interface {
	Block(ref string, width, height int) []string
}

// ForKind returns the renderer for a content family. images may be nil.
func ForKind(kind content.Kind, images Images) Renderer {
	switch kind {
	case content.KindStat:
		return Stat{Images: images}
	case content.KindProject:
		return Project{Images: images}
	case content.KindStep:
		return Step{}
	}
	return Plain{}
}

// Plain renders just the record's name; used for unknown record kinds.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(rec content.Record, d Dims) string {
	c := newCanvas(d, lipgloss.Color("#374151"))
	c.add(rec.Name(), c.text())
	return c.String()
}

// canvas accumulates padded rows on a solid background.
type canvas struct {
	width, height int
	padX, padY    int
	bg            lipgloss.Color
	rows          []string
}

func newCanvas(d Dims, bg lipgloss.Color) *canvas {
	c := &canvas{width: max(d.Width, 0), height: max(d.Height, 0), bg: bg}
	c.padX = max(d.Scaled(BasePaddingX), 1)
	if c.width < 2*c.padX+1 {
		c.padX = 0
	}
	c.padY = min(d.Scaled(BasePaddingY), max((c.height-1)/2, 0))
	return c
}

func (c *canvas) innerWidth() int {
	return max(c.width-2*c.padX, 0)
}

func (c *canvas) innerHeight() int {
	return max(c.height-2*c.padY, 0)
}

func (c *canvas) full() bool {
	return len(c.rows) >= c.innerHeight()
}

// text returns a style on the canvas background with a readable foreground.
func (c *canvas) text() lipgloss.Style {
	return lipgloss.NewStyle().Background(c.bg).Foreground(styles.Contrast(c.bg))
}

func (c *canvas) fill() lipgloss.Style {
	return lipgloss.NewStyle().Background(c.bg)
}

// add appends one row of plain text, truncated and padded to the inner width.
func (c *canvas) add(s string, st lipgloss.Style) {
	if c.full() {
		return
	}
	w := c.innerWidth()
	c.rows = append(c.rows, st.Render(render.Pad(render.Truncate(s, w), w)))
}

// addCentered appends a centered row.
func (c *canvas) addCentered(s string, st lipgloss.Style) {
	if c.full() {
		return
	}
	c.rows = append(c.rows, st.Render(render.Center(s, c.innerWidth())))
}

// addStyled appends a row that is already exactly innerWidth wide.
func (c *canvas) addStyled(s string) {
	if c.full() {
		return
	}
	c.rows = append(c.rows, s)
}

// imageLine centers one line of an image block in width cells.
func imageLine(line string, width int, fill lipgloss.Style) string {
	w := lipgloss.Width(line)
	left := max((width-w)/2, 0)
	return fill.Render(render.EmptyLine(left)) + line + fill.Render(render.EmptyLine(width-w-left))
}

func (c *canvas) blank() {
	c.add("", c.fill())
}

// String pads the rows to the canvas size and adds the padding border.
func (c *canvas) String() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	fill := c.fill()
	empty := fill.Render(strings.Repeat(" ", c.width))
	side := fill.Render(strings.Repeat(" ", c.padX))

	lines := make([]string, 0, c.height)
	for range c.padY {
		lines = append(lines, empty)
	}
	for i := range c.innerHeight() {
		if i < len(c.rows) {
			lines = append(lines, side+c.rows[i]+side)
		} else {
			lines = append(lines, empty)
		}
	}
	for len(lines) < c.height {
		lines = append(lines, empty)
	}
	return strings.Join(lines, "\n")
}
