// Package layout provides pure functions for carousel dimension calculations.
package layout

import "math"

// Breakpoint maps a minimum viewport width to the number of cards that
// should be visible at that width. SlidesToShow may be fractional so the
// next card peeks in from the edge.
type Breakpoint struct {
	MinViewport  float64
	SlidesToShow float64
}

// Breakpoints is a per-carousel table ordered by descending MinViewport.
type Breakpoints []Breakpoint

// SlidesToShow returns the target visible-card count for the viewport width.
// The first entry whose MinViewport fits wins. Widths below every threshold
// use the last entry. An empty table returns fallback.
func (b Breakpoints) SlidesToShow(viewportWidth, fallback float64) float64 {
	if len(b) == 0 {
		return fallback
	}
	for _, bp := range b {
		if viewportWidth >= bp.MinViewport {
			return bp.SlidesToShow
		}
	}
	return b[len(b)-1].SlidesToShow
}

// Settings holds the base dimensions the metrics are derived from.
type Settings struct {
	BaseCardWidth  float64
	BaseCardHeight float64
	BaseGap        float64

	Breakpoints     Breakpoints
	MinVisibleCards float64 // used when Breakpoints is empty

	// MinCardWidth keeps cards usable on narrow containers. Zero disables the floor.
	MinCardWidth float64
	// MinScale floors the scale factor so derived text stays legible. Zero disables it.
	MinScale float64
}

// GapRatio returns the gap as a fraction of the base card width.
func (s Settings) GapRatio() float64 {
	if s.BaseCardWidth <= 0 {
		return 0
	}
	return s.BaseGap / s.BaseCardWidth
}

// AspectRatio returns BaseCardHeight / BaseCardWidth.
func (s Settings) AspectRatio() float64 {
	if s.BaseCardWidth <= 0 {
		return 0
	}
	return s.BaseCardHeight / s.BaseCardWidth
}

// Metrics are the concrete card dimensions for one container width.
type Metrics struct {
	CardWidth    float64
	CardHeight   float64
	Gap          float64
	Scale        float64
	SlidesToShow float64
	Clamped      bool // CardWidth was raised to MinCardWidth
}

// IsZero reports whether no layout has been computed yet.
func (m Metrics) IsZero() bool {
	return m.CardWidth <= 0
}

// Step is the distance between the left edges of two adjacent cards.
func (m Metrics) Step() float64 {
	return m.CardWidth + m.Gap
}

// Scaled returns a base attribute (padding, radius, font size...) at the current scale.
func (m Metrics) Scaled(base float64) float64 {
	return base * m.Scale
}

// ScaledInt rounds Scaled to whole cells.
func (m Metrics) ScaledInt(base float64) int {
	return int(math.Round(m.Scaled(base)))
}

// TrackWidth returns the width of a track holding n cards, with a gap
// between cards and a gap of padding on each side.
func (m Metrics) TrackWidth(n int) float64 {
	if n <= 0 || m.IsZero() {
		return 0
	}
	return float64(n)*m.CardWidth + float64(n+1)*m.Gap
}

// Compute derives card metrics from the container width.
// The viewport width only selects the breakpoint.
//
// cardWidth solves containerWidth = s*cardWidth + (s-1)*gap with
// gap = cardWidth*gapRatio. When the result falls below MinCardWidth the
// width is clamped and the gap recomputed from the same ratio; slidesToShow
// is never revised.
func Compute(containerWidth, viewportWidth float64, s Settings) Metrics {
	slides := s.Breakpoints.SlidesToShow(viewportWidth, s.MinVisibleCards)
	if containerWidth <= 0 || s.BaseCardWidth <= 0 || slides <= 0 {
		return Metrics{SlidesToShow: slides}
	}

	ratio := s.GapRatio()
	divisor := slides + (slides-1)*ratio
	if divisor <= 0 {
		return Metrics{SlidesToShow: slides}
	}

	m := Metrics{SlidesToShow: slides}
	m.CardWidth = containerWidth / divisor
	if s.MinCardWidth > 0 && m.CardWidth < s.MinCardWidth {
		m.CardWidth = s.MinCardWidth
		m.Clamped = true
	}
	m.Gap = m.CardWidth * ratio
	m.CardHeight = m.CardWidth * s.AspectRatio()

	m.Scale = m.CardWidth / s.BaseCardWidth
	if s.MinScale > 0 && m.Scale < s.MinScale {
		m.Scale = s.MinScale
	}
	return m
}
