package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

var (
	darkText  = lipgloss.Color("#111827")
	lightText = lipgloss.Color("#f9fafb")
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i].Hex())).
			Bold(true)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Contrast returns a dark or light text color readable on bg.
func Contrast(bg lipgloss.Color) lipgloss.Color {
	c, ok := parse(bg)
	if !ok {
		return lightText
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return darkText
	}
	return lightText
}

// Shade blends c toward black by amount (0..1). Non-hex colors are returned unchanged.
func Shade(c lipgloss.Color, amount float64) lipgloss.Color {
	cf, ok := parse(c)
	if !ok {
		return c
	}
	black := colorful.Color{}
	return lipgloss.Color(cf.BlendLab(black, clamp01(amount)).Clamped().Hex())
}

// OrDefault returns hex as a color, or fallback when hex is not a valid #rrggbb color.
func OrDefault(hex string, fallback lipgloss.Color) lipgloss.Color {
	if _, ok := parse(lipgloss.Color(hex)); ok {
		return lipgloss.Color(hex)
	}
	return fallback
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	c2 := toColorful(to)

	if size < 2 {
		return []colorful.Color{c1}
	}

	colors := make([]colorful.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

func toColorful(c lipgloss.Color) colorful.Color {
	if cf, ok := parse(c); ok {
		return cf
	}
	// ANSI colors have no hex value; use a neutral gray
	cf, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return cf
}

func parse(c lipgloss.Color) (colorful.Color, bool) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	cf, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return cf, true
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
