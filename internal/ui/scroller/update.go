package scroller

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui"
)

// Update implements tea.Model.
//
// Mouse coordinates are absolute; the section's origin is set with SetOrigin.
// Key messages are accepted by every carousel and acted on only by the
// hovered or focused one.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case ResizeSettledMsg:
		if msg.ID != m.id || msg.Version != m.resizeVersion {
			return m, nil
		}
		m.applyWidth(msg.Width)
		return m, nil
	case FrameMsg:
		return m.handleFrame(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleWindowSize applies the first size at once and debounces the rest.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.resizeVersion++
	if !m.sized {
		m.sized = true
		m.applyWidth(msg.Width)
		return m, nil
	}
	return m, ResizeSettleCmd(m.id, m.resizeVersion, msg.Width, m.cfg.ResizeDebounce)
}

func (m Model) handleFrame(msg FrameMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}
	if msg.Gen != m.frameGen {
		log.Printf("scroller %s: dropping stale frame gen %d (current %d)", m.id, msg.Gen, m.frameGen)
		return m, nil
	}
	if m.track.Step(msg.Time) {
		return m, FrameCmd(m.id, m.frameGen)
	}
	m.ticking = false
	return m, nil
}

// startFrames schedules animation frames when a smooth scroll has begun
// and no frame is already pending.
func (m *Model) startFrames() tea.Cmd {
	if !m.track.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	m.frameGen++
	return FrameCmd(m.id, m.frameGen)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	now := m.clock()
	var handled bool
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionScrollLeft:
		handled = m.input.Key(Backward, m.keyStep(), now)
	case keymap.ActionScrollRight:
		handled = m.input.Key(Forward, m.keyStep(), now)
	case keymap.ActionScrollStart:
		handled = m.input.KeyEdge(Backward, now)
	case keymap.ActionScrollEnd:
		handled = m.input.KeyEdge(Forward, now)
	}
	if !handled {
		return m, nil
	}
	return m, m.startFrames()
}

// region is the part of a section under the pointer.
type region int

const (
	regionNone region = iota
	regionLeftArrow
	regionTrack
	regionRightArrow
)

// regionAt maps section-local coordinates to a region.
// Only the card rows are interactive.
func (m Model) regionAt(lx, ly int) region {
	rows := m.CardRows()
	if rows == 0 || ly < ui.TitleHeight || ly >= ui.TitleHeight+rows {
		return regionNone
	}
	switch w := m.Width(); {
	case lx < 0 || lx >= w:
		return regionNone
	case lx < ui.GutterWidth:
		return regionLeftArrow
	case lx >= w-ui.GutterWidth:
		return regionRightArrow
	}
	return regionTrack
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	lx, ly := msg.X-m.x, msg.Y-m.y
	now := m.clock()

	switch msg.Action {
	case tea.MouseActionPress:
		if dx, dy, ok := wheelDelta(msg.Button); ok {
			if m.input.Wheel(dx, dy, now) {
				return m, m.startFrames()
			}
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch m.regionAt(lx, ly) {
		case regionLeftArrow:
			m.input.Button(Backward, m.keyStep(), now)
			return m, m.startFrames()
		case regionRightArrow:
			m.input.Button(Forward, m.keyStep(), now)
			return m, m.startFrames()
		case regionTrack:
			m.input.Press(float64(lx))
		}

	case tea.MouseActionMotion:
		m.input.Move(float64(lx))

	case tea.MouseActionRelease:
		if !m.input.Dragging() {
			return m, nil
		}
		if m.input.Release() {
			return m, nil
		}
		if m.regionAt(lx, ly) != regionTrack {
			return m, nil
		}
		if i := m.cardAt(lx); i >= 0 {
			return m, activatedCmd(m.id, i, m.items[i])
		}
	}
	return m, nil
}

// wheelDelta converts a wheel button into one notch on each axis.
func wheelDelta(b tea.MouseButton) (dx, dy float64, ok bool) {
	switch b {
	case tea.MouseButtonWheelUp:
		return 0, -1, true
	case tea.MouseButtonWheelDown:
		return 0, 1, true
	case tea.MouseButtonWheelLeft:
		return -1, 0, true
	case tea.MouseButtonWheelRight:
		return 1, 0, true
	}
	return 0, 0, false
}
