package scroller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/content"
)

// frameInterval paces smooth-scroll frames at about 60fps.
const frameInterval = time.Second / 60

// ResizeSettledMsg fires once the window width has been stable for the
// debounce window. Only the latest Version is applied.
type ResizeSettledMsg struct {
	ID      string
	Version int
	Width   int
}

// FrameMsg advances a smooth scroll. Frames from an older Gen are dropped.
type FrameMsg struct {
	ID   string
	Gen  int
	Time time.Time
}

// CardActivatedMsg is sent when a card is clicked without dragging.
type CardActivatedMsg struct {
	ID     string
	Index  int
	Record content.Record
}

// ResizeSettleCmd returns a command that sends ResizeSettledMsg after d.
func ResizeSettleCmd(id string, version, width int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ResizeSettledMsg{ID: id, Version: version, Width: width}
	})
}

// FrameCmd returns a command that sends the next FrameMsg.
func FrameCmd(id string, gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}

func activatedCmd(id string, index int, rec content.Record) tea.Cmd {
	return func() tea.Msg {
		return CardActivatedMsg{ID: id, Index: index, Record: rec}
	}
}
