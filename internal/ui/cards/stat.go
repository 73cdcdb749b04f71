package cards

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/render"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

const (
	statDefaultBg = lipgloss.Color("#e6f4ea")
	// statImageRatio is the share of the inner width given to the image.
	statImageRatio = 0.35
	// statMinImageWidth hides the image column on very narrow cards.
	statMinImageWidth = 6

	imageGlyph       = "◉"
	placeholderGlyph = "○"
	knowMoreLabel    = "Know more ›"
)

// span is a piece of text with its style, laid out by the column renderer.
type span struct {
	text  string
	style lipgloss.Style
}

// Stat renders a headline number with its label and an image column.
type Stat struct {
	Images Images
}

// Render implements Renderer.
func (r Stat) Render(rec content.Record, d Dims) string {
	s, ok := rec.(content.Stat)
	if !ok {
		return Plain{}.Render(rec, d)
	}

	bg := styles.OrDefault(s.BgColor, statDefaultBg)
	c := newCanvas(d, bg)
	text := c.text()

	inner := c.innerWidth()
	imageW := int(float64(inner) * statImageRatio)
	gap := min(d.Scaled(BaseInternalGap), 2)
	if imageW < statMinImageWidth {
		imageW, gap = 0, 0
	}
	textW := max(inner-imageW-gap, 0)

	var rows [][]span
	if s.Caption != "" {
		dot := styles.OrDefault(s.DotColor, styles.T().Secondary)
		capColor := styles.OrDefault(s.CaptionColor, styles.Contrast(bg))
		rows = append(rows, []span{
			{"● ", text.Foreground(dot)},
			{s.Caption, text.Foreground(capColor)},
		})
	}
	if v := s.DisplayValue(); v != "" {
		valColor := styles.OrDefault(s.ValueColor, styles.Contrast(bg))
		rows = append(rows, []span{{v, text.Foreground(valColor).Bold(true)}})
	}
	if s.Label != "" {
		labelColor := styles.OrDefault(s.LabelColor, styles.Contrast(bg))
		maxLines := max(c.innerHeight()-len(rows)-knowMoreRows(s), 1)
		for _, line := range render.Wrap(s.Label, textW, maxLines) {
			rows = append(rows, []span{{line, text.Foreground(labelColor)}})
		}
	}
	if s.KnowMore {
		btn := lipgloss.NewStyle().
			Background(styles.T().Primary).
			Foreground(styles.Contrast(styles.T().Primary))
		rows = append(rows, nil, []span{{" " + knowMoreLabel + " ", btn}})
	}

	glyph := placeholderGlyph
	glyphStyle := text.Foreground(styles.Shade(styles.Contrast(bg), 0.4))
	if content.ImageAvailable(s.Image) {
		glyph = imageGlyph
		glyphStyle = text.Foreground(styles.Contrast(bg))
	}
	imageRow := c.innerHeight() / 2
	var block []string
	if r.Images != nil && imageW > 0 {
		block = r.Images.Block(s.Image, imageW, c.innerHeight())
	}
	blockTop := (c.innerHeight() - len(block)) / 2

	fill := c.fill()
	for i := range c.innerHeight() {
		var line string
		if imageW > 0 {
			switch {
			case i >= blockTop && i < blockTop+len(block):
				line += imageLine(block[i-blockTop], imageW, fill)
			case block == nil && i == imageRow:
				line += glyphStyle.Render(render.Center(glyph, imageW))
			default:
				line += fill.Render(render.EmptyLine(imageW))
			}
			line += fill.Render(render.EmptyLine(gap))
		}
		if i < len(rows) {
			line += renderRow(rows[i], textW, fill)
		} else {
			line += fill.Render(render.EmptyLine(textW))
		}
		c.addStyled(line)
	}
	return c.String()
}

func knowMoreRows(s content.Stat) int {
	if s.KnowMore {
		return 2
	}
	return 0
}

// renderRow renders spans left to right, truncated and padded to width.
func renderRow(row []span, width int, fill lipgloss.Style) string {
	var out string
	used := 0
	for _, sp := range row {
		if used >= width {
			break
		}
		t := render.Truncate(sp.text, width-used)
		out += sp.style.Render(t)
		used += lipgloss.Width(t)
	}
	if used < width {
		out += fill.Render(render.EmptyLine(width - used))
	}
	return out
}
