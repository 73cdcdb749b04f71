package scroller

import (
	"math"
	"time"
)

// ScrollObserver is notified whenever a track's offset or extent changes.
type ScrollObserver interface {
	ScrollChanged(offset, maxScroll float64)
}

// Track is the horizontally scrollable strip of cards. It owns the scroll
// offset and keeps it within [0, MaxScroll] on every path.
type Track struct {
	offset   float64
	content  float64
	viewport float64
	observer ScrollObserver
	anim     *tween
}

// tween is a time-based smooth scroll toward a target offset.
type tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

// at returns the tween position at now and whether it has finished.
func (tw tween) at(now time.Time) (float64, bool) {
	elapsed := now.Sub(tw.start)
	if elapsed >= tw.duration {
		return tw.to, true
	}
	if elapsed <= 0 {
		return tw.from, false
	}
	p := easeOutCubic(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*p, false
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// NewTrack creates an empty track reporting to observer (may be nil).
func NewTrack(observer ScrollObserver) *Track {
	return &Track{observer: observer}
}

// Offset returns the current scroll position.
func (t *Track) Offset() float64 {
	return t.offset
}

// MaxScroll returns the largest valid offset; 0 when the content fits.
func (t *Track) MaxScroll() float64 {
	return max(t.content-t.viewport, 0)
}

// ContentWidth returns the full width of the strip.
func (t *Track) ContentWidth() float64 {
	return t.content
}

// ViewportWidth returns the visible width of the strip.
func (t *Track) ViewportWidth() float64 {
	return t.viewport
}

// SetExtent updates the content and viewport widths and re-clamps the offset.
func (t *Track) SetExtent(content, viewport float64) {
	t.content = max(content, 0)
	t.viewport = max(viewport, 0)
	t.offset = t.clamp(t.offset)
	if t.anim != nil {
		t.anim.to = t.clamp(t.anim.to)
	}
	t.notify()
}

// SetOffset jumps to v, clamped, and cancels any running animation.
func (t *Track) SetOffset(v float64) {
	t.anim = nil
	t.set(v)
}

// ScrollBy moves the target by delta. Consecutive calls accumulate while an
// animation is running. A zero duration jumps immediately.
func (t *Track) ScrollBy(delta float64, now time.Time, d time.Duration) {
	t.ScrollTo(t.Target()+delta, now, d)
}

// ScrollTo animates toward v, clamped.
func (t *Track) ScrollTo(v float64, now time.Time, d time.Duration) {
	target := t.clamp(v)
	if d <= 0 {
		t.SetOffset(target)
		return
	}
	if target == t.offset {
		t.anim = nil
		return
	}
	t.anim = &tween{from: t.offset, to: target, start: now, duration: d}
}

// Target returns where the track will rest once any animation finishes.
func (t *Track) Target() float64 {
	if t.anim != nil {
		return t.anim.to
	}
	return t.offset
}

// Animating reports whether a smooth scroll is in progress.
func (t *Track) Animating() bool {
	return t.anim != nil
}

// Step advances the animation to now and reports whether it is still running.
func (t *Track) Step(now time.Time) bool {
	if t.anim == nil {
		return false
	}
	v, done := t.anim.at(now)
	if done {
		t.anim = nil
	}
	t.set(v)
	return !done
}

// Stop cancels any running animation, leaving the offset where it is.
func (t *Track) Stop() {
	t.anim = nil
}

// Reset returns to the start without animation.
func (t *Track) Reset() {
	t.anim = nil
	t.set(0)
}

func (t *Track) set(v float64) {
	v = t.clamp(v)
	if v == t.offset {
		return
	}
	t.offset = v
	t.notify()
}

func (t *Track) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), t.MaxScroll())
}

func (t *Track) notify() {
	if t.observer != nil {
		t.observer.ScrollChanged(t.offset, t.MaxScroll())
	}
}
