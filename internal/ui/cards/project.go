package cards

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

const projectDefaultBg = lipgloss.Color("#334155")

// Project renders an image card with its title on a shaded band.
type Project struct {
	Images Images
}

// Render implements Renderer.
func (r Project) Render(rec content.Record, d Dims) string {
	p, ok := rec.(content.Project)
	if !ok {
		return Plain{}.Render(rec, d)
	}

	bg := styles.OrDefault(p.BgColor, projectDefaultBg)
	c := newCanvas(d, bg)
	band := styles.Shade(bg, 0.45)
	titleStyle := lipgloss.NewStyle().
		Background(band).
		Foreground(styles.OrDefault(p.TitleColor, styles.Contrast(band))).
		Bold(true)

	title := render.Wrap(p.Title, c.innerWidth(), max(c.innerHeight()-2, 1))
	glyph := placeholderGlyph
	glyphStyle := c.text().Foreground(styles.Shade(styles.Contrast(bg), 0.4))
	if content.ImageAvailable(p.Image) {
		glyph = imageGlyph
		glyphStyle = c.text()
	}

	h := c.innerHeight()
	titleTop := 0
	if p.TextPosition != content.TextTop {
		titleTop = max(h-len(title), 0)
	}
	// image glyph sits in the middle of the rows the title leaves free
	freeTop, freeBottom := len(title), h
	if titleTop > 0 {
		freeTop, freeBottom = 0, titleTop
	}
	glyphRow := freeTop + (freeBottom-freeTop)/2
	var block []string
	if r.Images != nil {
		block = r.Images.Block(p.Image, c.innerWidth(), freeBottom-freeTop)
	}
	blockTop := freeTop + (freeBottom-freeTop-len(block))/2

	for i := range h {
		switch {
		case i >= titleTop && i < titleTop+len(title):
			c.add(title[i-titleTop], titleStyle)
		case i >= blockTop && i < blockTop+len(block):
			c.addStyled(imageLine(block[i-blockTop], c.innerWidth(), c.fill()))
		case block == nil && i == glyphRow:
			c.addCentered(glyph, glyphStyle)
		default:
			c.blank()
		}
	}
	return c.String()
}
