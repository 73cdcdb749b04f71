// internal/app/carousels.go
package app

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/cards"
	"github.com/llehouerou/showcase/internal/ui/layout"
	"github.com/llehouerou/showcase/internal/ui/scroller"
)

// Carousel ids, also used as config keys.
const (
	IDActivities = "activities"
	IDProjects   = "projects"
	IDSteps      = "steps"
)

// carouselPreset is the built-in setup of one carousel.
type carouselPreset struct {
	id    string
	title string
	kind  content.Kind
	cfg   scroller.Config
}

// presets lists the carousels in page order. Sizes are in cells and
// breakpoints in window columns.
func presets() []carouselPreset {
	return []carouselPreset{
		{
			id:    IDActivities,
			title: "Our Impact",
			kind:  content.KindStat,
			cfg: scroller.Config{
				BaseCardWidth:  48,
				BaseCardHeight: 16,
				BaseGap:        4,
				Breakpoints: layout.Breakpoints{
					{MinViewport: 150, SlidesToShow: 2.8},
					{MinViewport: 100, SlidesToShow: 2.3},
					{MinViewport: 0, SlidesToShow: 1.5},
				},
				MinCardWidth: 24,
				MinScale:     0.5,
				DragSpeed:    0.85,
				WheelSpeed:   1,
			},
		},
		{
			id:    IDProjects,
			title: "Projects",
			kind:  content.KindProject,
			cfg: scroller.Config{
				BaseCardWidth:  30,
				BaseCardHeight: 18,
				BaseGap:        3,
				Breakpoints: layout.Breakpoints{
					{MinViewport: 150, SlidesToShow: 3.8},
					{MinViewport: 100, SlidesToShow: 3.2},
					{MinViewport: 0, SlidesToShow: 2.2},
				},
				MinCardWidth: 18,
				DragSpeed:    1.5,
				WheelSpeed:   1.5,
			},
		},
		{
			id:    IDSteps,
			title: "How It Works",
			kind:  content.KindStep,
			cfg: scroller.Config{
				BaseCardWidth:  60,
				BaseCardHeight: 20,
				BaseGap:        4,
				Breakpoints: layout.Breakpoints{
					{MinViewport: 150, SlidesToShow: 2.3},
					{MinViewport: 100, SlidesToShow: 1.8},
					{MinViewport: 0, SlidesToShow: 1.3},
				},
				MinCardWidth: 28,
				DragSpeed:    0.75,
				WheelSpeed:   1,
				KeyScroll:    40,
			},
		},
	}
}

// applyOverride layers user settings over a preset.
func applyOverride(p carouselPreset, o config.CarouselConfig) carouselPreset {
	if o.Title != "" {
		p.title = o.Title
	}
	c := &p.cfg
	if o.BaseCardWidth > 0 {
		c.BaseCardWidth = o.BaseCardWidth
	}
	if o.BaseCardHeight > 0 {
		c.BaseCardHeight = o.BaseCardHeight
	}
	if o.BaseGap != nil {
		c.BaseGap = *o.BaseGap
	}
	if o.MinCardWidth > 0 {
		c.MinCardWidth = o.MinCardWidth
	}
	if o.MinScale > 0 {
		c.MinScale = o.MinScale
	}
	if o.DragSpeed > 0 {
		c.DragSpeed = o.DragSpeed
	}
	if o.WheelSpeed > 0 {
		c.WheelSpeed = o.WheelSpeed
	}
	if o.KeyScroll > 0 {
		c.KeyScroll = o.KeyScroll
	}
	if len(o.Breakpoints) > 0 {
		c.Breakpoints = make(layout.Breakpoints, len(o.Breakpoints))
		for i, bp := range o.Breakpoints {
			c.Breakpoints[i] = layout.Breakpoint{MinViewport: bp.MinWidth, SlidesToShow: bp.Slides}
		}
		// SlidesToShow takes the first fitting entry, so widest first.
		slices.SortStableFunc(c.Breakpoints, func(a, b layout.Breakpoint) int {
			return cmp.Compare(b.MinViewport, a.MinViewport)
		})
	}
	return p
}

// buildCarousels creates one scroller per preset with the catalog's records.
func buildCarousels(cfg *config.Config, catalog *content.Catalog, images cards.Images) ([]scroller.Model, error) {
	out := make([]scroller.Model, 0, len(presets()))
	for _, p := range presets() {
		if o, ok := cfg.Carousel(p.id); ok {
			p = applyOverride(p, o)
		}
		p.cfg.ResizeDebounce = cfg.ResizeDebounce()

		s, err := scroller.New(p.id, p.title, catalog.Records(p.kind), cards.ForKind(p.kind, images), p.cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.id, err)
		}
		out = append(out, s)
	}
	return out, nil
}
