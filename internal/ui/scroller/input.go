package scroller

import (
	"math"
	"time"
)

// Phase is the per-carousel interaction state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHovered
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseHovered:
		return "hovered"
	case PhaseDragging:
		return "dragging"
	}
	return "idle"
}

// Direction of a one-step scroll.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Anchor is recorded when the pointer goes down.
type Anchor struct {
	PointerX      float64
	OffsetAtStart float64
}

// DragOffset returns the offset for pointer position x during a drag.
// The result is not clamped; the track clamps it.
func DragOffset(a Anchor, x, speed float64) float64 {
	return a.OffsetAtStart - (x-a.PointerX)*speed
}

// DominantDelta picks the wheel axis to scroll by: vertical when present,
// horizontal otherwise.
func DominantDelta(dx, dy float64) float64 {
	if dy != 0 {
		return dy
	}
	return dx
}

// Controller turns drag, wheel and key input into track movement.
// Wheel and key input are gated by the hover and focus flags read at event
// time; a drag keeps tracking until release or leave.
type Controller struct {
	track *Track
	cfg   Config

	hovered bool
	focused bool

	anchor *Anchor
	moved  bool // pointer travelled past the drag threshold
}

// NewController creates a controller driving track.
func NewController(track *Track, cfg Config) *Controller {
	return &Controller{track: track, cfg: cfg.withDefaults()}
}

// Phase returns the current interaction state.
func (c *Controller) Phase() Phase {
	switch {
	case c.anchor != nil:
		return PhaseDragging
	case c.hovered:
		return PhaseHovered
	}
	return PhaseIdle
}

// Hovered reports whether the pointer is over the carousel.
func (c *Controller) Hovered() bool { return c.hovered }

// Focused reports whether the carousel has keyboard focus.
func (c *Controller) Focused() bool { return c.focused }

// Dragging reports whether the pointer is held down on the track.
func (c *Controller) Dragging() bool { return c.anchor != nil }

// Anchor returns a copy of the drag anchor, or nil when not dragging.
func (c *Controller) Anchor() *Anchor {
	if c.anchor == nil {
		return nil
	}
	a := *c.anchor
	return &a
}

// Enter marks the pointer as inside the carousel.
func (c *Controller) Enter() {
	c.hovered = true
}

// Leave marks the pointer as outside and ends any drag.
func (c *Controller) Leave() {
	c.hovered = false
	c.endDrag()
}

// SetFocused sets keyboard focus.
func (c *Controller) SetFocused(focused bool) {
	c.focused = focused
}

// Press starts a potential drag at pointer x.
func (c *Controller) Press(x float64) {
	c.track.Stop()
	c.anchor = &Anchor{PointerX: x, OffsetAtStart: c.track.Offset()}
	c.moved = false
}

// Move tracks the pointer during a drag. It reports whether the track was driven.
// The track holds still until the pointer has travelled DragThreshold cells,
// so a jittery click neither scrolls nor counts as a drag.
func (c *Controller) Move(x float64) bool {
	if c.anchor == nil {
		return false
	}
	if !c.moved && math.Abs(x-c.anchor.PointerX) < c.cfg.DragThreshold {
		return false
	}
	c.moved = true
	c.track.SetOffset(DragOffset(*c.anchor, x, c.cfg.DragSpeed))
	return true
}

// Release ends the drag. wasDrag is true when the pointer travelled far
// enough that a click on a card should be suppressed.
func (c *Controller) Release() (wasDrag bool) {
	if c.anchor == nil {
		return false
	}
	wasDrag = c.moved
	c.endDrag()
	return wasDrag
}

func (c *Controller) endDrag() {
	c.anchor = nil
	c.moved = false
}

// Wheel scrolls by one wheel event. It reports whether the event was
// consumed, which only happens while hovered and not dragging.
func (c *Controller) Wheel(dx, dy float64, now time.Time) bool {
	if !c.hovered || c.anchor != nil {
		return false
	}
	delta := DominantDelta(dx, dy) * c.cfg.WheelStep * c.cfg.WheelSpeed
	c.track.ScrollBy(delta, now, c.cfg.SmoothDuration)
	return true
}

// Key scrolls one step in dir when hovered or focused.
func (c *Controller) Key(dir Direction, step float64, now time.Time) bool {
	if !c.keyActive() {
		return false
	}
	c.track.ScrollBy(float64(dir)*step, now, c.cfg.SmoothDuration)
	return true
}

// KeyEdge scrolls to the start or the end when hovered or focused.
func (c *Controller) KeyEdge(dir Direction, now time.Time) bool {
	if !c.keyActive() {
		return false
	}
	target := 0.0
	if dir == Forward {
		target = c.track.MaxScroll()
	}
	c.track.ScrollTo(target, now, c.cfg.SmoothDuration)
	return true
}

// Button scrolls one step in dir. Arrow buttons work regardless of hover.
func (c *Controller) Button(dir Direction, step float64, now time.Time) {
	c.track.ScrollBy(float64(dir)*step, now, c.cfg.SmoothDuration)
}

func (c *Controller) keyActive() bool {
	return (c.hovered || c.focused) && c.anchor == nil
}

// Reset clears hover, focus and drag state.
func (c *Controller) Reset() {
	c.hovered = false
	c.focused = false
	c.endDrag()
}
