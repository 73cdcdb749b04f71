// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Blue - progress fill, focus, active arrows
	Secondary lipgloss.Color // Green - section titles, card accents

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgPage  lipgloss.Color // Section background
	BgTrack lipgloss.Color // Empty part of the progress bar

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	BorderGrab  lipgloss.Color // Track border while a drag is active

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Arrow       lipgloss.Style // Carousel scroll gutters
	ArrowActive lipgloss.Style // Gutters of the hovered or focused carousel
	Status      lipgloss.Style
	Error       lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#2563eb"),
	Secondary: lipgloss.Color("#16a34a"),

	FgBase:   lipgloss.Color("#e5e7eb"),
	FgMuted:  lipgloss.Color("#9ca3af"),
	FgSubtle: lipgloss.Color("#4b5563"),

	BgPage:  lipgloss.Color("#0f172a"),
	BgTrack: lipgloss.Color("#e2e8f0"),

	Border:      lipgloss.Color("#4b5563"),
	BorderFocus: lipgloss.Color("#2563eb"),
	BorderGrab:  lipgloss.Color("#f1a208"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Arrow: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Bold(true),
		ArrowActive: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Bold(true),
		Status: lipgloss.NewStyle().Foreground(t.Secondary),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
