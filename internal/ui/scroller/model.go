// Package scroller provides a responsive horizontal carousel component.
//
// A Model lays its cards out from the window width, scrolls them with drag,
// wheel, key and arrow-button input, and shows a progress bar driven by the
// track position. Instances share no state.
package scroller

import (
	"fmt"
	"log"
	"math"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/cards"
	"github.com/llehouerou/showcase/internal/ui/layout"
)

// BaseBottomGap is the blank space under a section at scale 1.0, in rows.
const BaseBottomGap = 2.0

// State is a snapshot of a carousel's scroll state.
type State struct {
	OffsetPx        float64
	MaxScroll       float64
	ProgressPercent float64
	Dragging        bool
	DragAnchor      *Anchor
	Hovered         bool
}

// Model is one carousel section: title row, card strip with arrow gutters,
// and progress bar.
type Model struct {
	ui.Base

	id       string
	title    string
	items    []content.Record
	renderer cards.Renderer
	cfg      Config
	keys     *keymap.Resolver

	x, y    int
	metrics layout.Metrics

	track    *Track
	input    *Controller
	progress *Tracker
	strip    *stripCache

	sized         bool // first window size applied
	resizeVersion int
	frameGen      int
	ticking       bool // a FrameMsg is in flight

	clock func() time.Time
}

// New creates a carousel. items are shown in order and never modified.
func New(id, title string, items []content.Record, renderer cards.Renderer, cfg Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("carousel %q: %w", id, err)
	}
	if renderer == nil {
		return Model{}, fmt.Errorf("carousel %q: %w: no card renderer", id, ErrInvalidConfig)
	}
	cfg = cfg.withDefaults()

	progress := NewTracker()
	track := NewTrack(progress)
	return Model{
		id:       id,
		title:    title,
		items:    slices.Clone(items),
		renderer: renderer,
		cfg:      cfg,
		keys:     keymap.ForContexts("carousel"),
		track:    track,
		input:    NewController(track, cfg),
		progress: progress,
		strip:    &stripCache{},
		clock:    time.Now,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ID returns the carousel identifier used to route its messages.
func (m Model) ID() string { return m.id }

// Title returns the section heading.
func (m Model) Title() string { return m.title }

// Len returns the number of cards.
func (m Model) Len() int { return len(m.items) }

// Metrics returns the current card metrics; zero until the first layout.
func (m Model) Metrics() layout.Metrics { return m.metrics }

// Phase returns the interaction state.
func (m Model) Phase() Phase { return m.input.Phase() }

// Hovered reports whether the pointer is over the section.
func (m Model) Hovered() bool { return m.input.Hovered() }

// State returns a snapshot of the scroll state.
func (m Model) State() State {
	return State{
		OffsetPx:        m.track.Offset(),
		MaxScroll:       m.track.MaxScroll(),
		ProgressPercent: m.progress.Percent(),
		Dragging:        m.input.Dragging(),
		DragAnchor:      m.input.Anchor(),
		Hovered:         m.input.Hovered(),
	}
}

// SetOrigin places the section's top-left corner in screen coordinates.
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
}

// Origin returns the section's top-left corner.
func (m Model) Origin() (x, y int) {
	return m.x, m.y
}

// Hover reports pointer enter or leave. Leaving ends any drag.
func (m *Model) Hover(inside bool) {
	switch {
	case inside && !m.input.Hovered():
		m.input.Enter()
	case !inside && m.input.Hovered():
		m.input.Leave()
	}
}

// SetFocused gives or removes keyboard focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.input.SetFocused(focused)
}

// Unmount drops pending timers and returns to idle at the start of the strip.
func (m *Model) Unmount() {
	m.resizeVersion++
	m.frameGen++
	m.ticking = false
	m.sized = false
	m.input.Reset()
	m.track.Reset()
	m.Base.SetFocused(false)
}

// CardRows returns the height of the card strip in rows.
func (m Model) CardRows() int {
	return layout.CardRows(m.metrics.CardHeight)
}

// bottomGap is the scaled blank space under the progress bar.
func (m Model) bottomGap() int {
	return min(max(m.metrics.ScaledInt(BaseBottomGap), 1), 3)
}

// SectionHeight returns the rows the section occupies.
func (m Model) SectionHeight() int {
	return layout.SectionHeight(m.CardRows(), layout.SectionOpts{
		TitleHeight:    ui.TitleHeight,
		ProgressHeight: ui.ProgressHeight,
		BottomGap:      m.bottomGap(),
	})
}

// keyStep is the distance of one key or arrow activation.
func (m Model) keyStep() float64 {
	if m.cfg.KeyScroll > 0 {
		return m.cfg.KeyScroll
	}
	return m.metrics.Step()
}

// applyWidth recomputes the layout for a window width.
// A width that leaves no room for cards keeps the previous layout.
func (m *Model) applyWidth(width int) {
	inner := max(width-2*ui.GutterWidth, 0)
	metrics := layout.Compute(float64(inner), float64(width), m.cfg.Settings())
	if metrics.IsZero() {
		log.Printf("scroller %s: width %d leaves no room, keeping layout", m.id, width)
		return
	}

	m.metrics = metrics
	m.strip.reset()
	trackWidth := math.Round(metrics.TrackWidth(len(m.items)))
	m.track.SetExtent(trackWidth, float64(inner))
	m.SetSize(width, m.SectionHeight())
	log.Printf("scroller %s: width %d card %.1f gap %.1f scale %.2f slides %.1f clamped=%v",
		m.id, width, metrics.CardWidth, metrics.Gap, metrics.Scale, metrics.SlidesToShow, metrics.Clamped)
}
