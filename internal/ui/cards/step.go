package cards

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

const (
	stepDefaultBg = lipgloss.Color("#f8fafc")
	checkGlyph    = "✔ "
)

// Step renders a numbered process stage with its checklist.
type Step struct{}

// Render implements Renderer.
func (Step) Render(rec content.Record, d Dims) string {
	s, ok := rec.(content.Step)
	if !ok {
		return Plain{}.Render(rec, d)
	}

	bg := styles.OrDefault(s.BgColor, stepDefaultBg)
	c := newCanvas(d, bg)
	text := c.text()
	w := c.innerWidth()

	badge := fmt.Sprintf(" STEP %d ", s.Number)
	badgeStyle := lipgloss.NewStyle().
		Background(styles.T().Primary).
		Foreground(styles.Contrast(styles.T().Primary)).
		Bold(true)
	glyph := placeholderGlyph
	if content.ImageAvailable(s.Image) {
		glyph = imageGlyph
	}
	header := []span{{badge, badgeStyle}, {" " + glyph, text}}
	c.addStyled(renderRow(header, w, c.fill()))
	c.blank()

	titleStyle := text.Foreground(styles.OrDefault(s.TitleColor, styles.Contrast(bg))).Bold(true)
	for _, line := range render.Wrap(s.Title, w, 2) {
		c.add(line, titleStyle)
	}

	remaining := c.innerHeight() - len(c.rows)
	checks := len(s.Checklist)
	descLines := max(remaining-checks-1, 1)
	if s.Description != "" {
		descStyle := text.Foreground(styles.OrDefault(s.DescriptionColor, styles.Contrast(bg)))
		for _, line := range render.Wrap(s.Description, w, descLines) {
			c.add(line, descStyle)
		}
	}

	if checks > 0 {
		c.blank()
		checkStyle := text.Foreground(styles.OrDefault(s.ChecklistColor, styles.T().Secondary))
		for _, item := range s.Checklist {
			c.add(checkGlyph+render.Sanitize(item), checkStyle)
		}
	}
	return c.String()
}
