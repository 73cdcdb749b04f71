package scroller

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/styles"
)

// Percent maps a scroll offset to 0..100. Content that fits reports 0.
func Percent(offset, maxScroll float64) float64 {
	if maxScroll <= 0 || math.IsNaN(offset) || math.IsNaN(maxScroll) {
		return 0
	}
	return min(max(offset/maxScroll*100, 0), 100)
}

// Tracker holds the progress percentage. It only learns about scrolling
// through ScrollChanged, so every input path updates it the same way.
type Tracker struct {
	percent float64
	bar     progress.Model
}

// NewTracker creates a tracker at 0%.
func NewTracker() *Tracker {
	t := styles.T()
	bar := progress.New(
		progress.WithGradient(string(t.Primary), string(t.Secondary)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.BgTrack)
	return &Tracker{bar: bar}
}

// ScrollChanged implements ScrollObserver.
func (t *Tracker) ScrollChanged(offset, maxScroll float64) {
	t.percent = Percent(offset, maxScroll)
}

// Percent returns the last computed progress, 0..100.
func (t *Tracker) Percent() float64 {
	return t.percent
}

// View renders the bar at the given width.
func (t *Tracker) View(width int) string {
	if width < ui.MinProgressBarWidth {
		return ""
	}
	t.bar.Width = width
	return t.bar.ViewAs(t.percent / 100)
}
