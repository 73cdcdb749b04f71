// internal/app/messages.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusClearMsg is sent to clear a specific status message after a delay.
type StatusClearMsg struct {
	ID int64
}

// StatusDuration is how long status messages are displayed.
const StatusDuration = 3 * time.Second

// StatusClearCmd returns a command that clears the status message after a delay.
func StatusClearCmd(id int64) tea.Cmd {
	return tea.Tick(StatusDuration, func(time.Time) tea.Msg {
		return StatusClearMsg{ID: id}
	})
}

// ContentChangedMsg is sent when the catalog file changed on disk.
type ContentChangedMsg struct{}

// waitForContentChange blocks until the next change notification.
func waitForContentChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return ContentChangedMsg{}
	}
}
