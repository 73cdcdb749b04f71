package scroller

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/showcase/internal/ui/layout"
)

// ErrInvalidConfig is returned by New and Config.Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid scroller config")

// Default input tuning, in cells.
const (
	DefaultDragSpeed         = 1.0
	DefaultWheelSpeed        = 1.0
	DefaultWheelStep         = 3.0
	DefaultDragThreshold     = 2.0
	DefaultResizeDebounce    = 100 * time.Millisecond
	DefaultSmoothDuration    = 200 * time.Millisecond
	DefaultBaseProgressWidth = 40.0
)

// Config parameterizes one carousel. It is copied into the scroller at
// construction; reconfiguring means building a new scroller.
type Config struct {
	// Card geometry at scale 1.0, in cells.
	BaseCardWidth  float64
	BaseCardHeight float64
	BaseGap        float64

	Breakpoints     layout.Breakpoints
	MinVisibleCards float64 // used when Breakpoints is empty
	MinCardWidth    float64
	MinScale        float64

	DragSpeed  float64 // pointer travel multiplier
	WheelSpeed float64 // wheel multiplier
	WheelStep  float64 // cells per wheel notch before WheelSpeed
	// KeyScroll is the distance of one key or arrow activation.
	// Zero scrolls by one card width plus gap.
	KeyScroll float64

	// DragThreshold is the pointer travel that turns a press into a drag.
	DragThreshold float64

	ResizeDebounce time.Duration
	// SmoothDuration is the length of animated scrolls. Zero jumps immediately.
	SmoothDuration time.Duration

	// BaseProgressWidth is the progress bar width at scale 1.0.
	BaseProgressWidth float64
}

// withDefaults fills zero tuning values.
func (c Config) withDefaults() Config {
	if c.DragSpeed == 0 {
		c.DragSpeed = DefaultDragSpeed
	}
	if c.WheelSpeed == 0 {
		c.WheelSpeed = DefaultWheelSpeed
	}
	if c.WheelStep == 0 {
		c.WheelStep = DefaultWheelStep
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = DefaultDragThreshold
	}
	if c.ResizeDebounce == 0 {
		c.ResizeDebounce = DefaultResizeDebounce
	}
	if c.SmoothDuration == 0 {
		c.SmoothDuration = DefaultSmoothDuration
	}
	if c.BaseProgressWidth == 0 {
		c.BaseProgressWidth = DefaultBaseProgressWidth
	}
	return c
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.BaseCardWidth <= 0:
		return fmt.Errorf("%w: base card width %v must be > 0", ErrInvalidConfig, c.BaseCardWidth)
	case c.BaseCardHeight <= 0:
		return fmt.Errorf("%w: base card height %v must be > 0", ErrInvalidConfig, c.BaseCardHeight)
	case c.BaseGap < 0:
		return fmt.Errorf("%w: base gap %v must be >= 0", ErrInvalidConfig, c.BaseGap)
	case c.MinCardWidth < 0 || c.MinScale < 0:
		return fmt.Errorf("%w: minimums must be >= 0", ErrInvalidConfig)
	case c.DragSpeed < 0 || c.WheelSpeed < 0 || c.WheelStep < 0 || c.KeyScroll < 0:
		return fmt.Errorf("%w: speeds must be >= 0", ErrInvalidConfig)
	case c.ResizeDebounce < 0 || c.SmoothDuration < 0:
		return fmt.Errorf("%w: durations must be >= 0", ErrInvalidConfig)
	}
	if len(c.Breakpoints) == 0 && c.MinVisibleCards <= 0 {
		return fmt.Errorf("%w: slides to show %v must be > 0", ErrInvalidConfig, c.MinVisibleCards)
	}
	for _, bp := range c.Breakpoints {
		if bp.SlidesToShow <= 0 {
			return fmt.Errorf("%w: breakpoint %v shows %v slides", ErrInvalidConfig, bp.MinViewport, bp.SlidesToShow)
		}
	}
	return nil
}

// Settings returns the layout engine input for this carousel.
func (c Config) Settings() layout.Settings {
	return layout.Settings{
		BaseCardWidth:   c.BaseCardWidth,
		BaseCardHeight:  c.BaseCardHeight,
		BaseGap:         c.BaseGap,
		Breakpoints:     c.Breakpoints,
		MinVisibleCards: c.MinVisibleCards,
		MinCardWidth:    c.MinCardWidth,
		MinScale:        c.MinScale,
	}
}
