// internal/app/update.go
package app

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/ui/helpbindings"
	"github.com/llehouerou/showcase/internal/ui/scroller"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case scroller.CardActivatedMsg:
		return m.handleCardActivated(msg)

	case ContentChangedMsg:
		return m.handleContentChanged()

	case helpbindings.CloseMsg:
		m.ShowHelp = false
		return m, nil

	case StatusClearMsg:
		if msg.ID == m.statusID {
			m.Status = ""
			m.StatusErr = false
			m.layoutSections()
		}
		return m, nil
	}

	// Resize settles and animation frames carry their carousel id.
	cmd := m.broadcast(msg)
	return m, cmd
}

// broadcast sends msg to every carousel and re-lays out the page,
// since a settled resize can change section heights.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.Carousels {
		var cmd tea.Cmd
		m.Carousels[i], cmd = m.Carousels[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.layoutSections()
	return tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.SetSize(msg.Width, msg.Height)
	cmd := m.broadcast(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		m.Help.Reset()
		return m, nil
	case keymap.ActionSwitchFocus:
		m.cycleFocus(1)
		return m, nil
	case keymap.ActionFocusPrev:
		m.cycleFocus(-1)
		return m, nil
	case keymap.ActionPageUp:
		m.scrollPage(-1)
		return m, nil
	case keymap.ActionPageDown:
		m.scrollPage(1)
		return m, nil
	}

	// The section under the pointer takes keys ahead of the focused one.
	if m.Hovered >= 0 && m.Hovered < len(m.Carousels) {
		var cmd tea.Cmd
		m.Carousels[m.Hovered], cmd = m.Carousels[m.Hovered].Update(msg)
		return m, cmd
	}

	// Carousels decide themselves whether they are focused.
	cmd := m.broadcast(msg)
	return m, cmd
}

// cycleFocus moves keyboard focus to the next or previous carousel and
// scrolls the page so it is visible.
func (m *Model) cycleFocus(dir int) {
	n := len(m.Carousels)
	if n == 0 {
		return
	}
	switch {
	case m.Focus < 0 && dir > 0:
		m.Focus = 0
	case m.Focus < 0:
		m.Focus = n - 1
	default:
		m.Focus = (m.Focus + dir + n) % n
	}
	for i := range m.Carousels {
		m.Carousels[i].SetFocused(i == m.Focus)
	}
	m.ensureVisible(m.Focus)
}

// setHovered syncs the hover state of every carousel with the section
// under the pointer.
func (m *Model) setHovered(idx int) {
	for i := range m.Carousels {
		m.Carousels[i].Hover(i == idx)
	}
	m.Hovered = idx
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	idx := m.sectionAt(msg.Y)
	m.setHovered(idx)

	switch {
	case msg.Action == tea.MouseActionRelease:
		// A drag may have started in another section.
		cmd := m.broadcast(msg)
		return m, cmd

	case idx < 0:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollRows(-PageWheelStep)
		case tea.MouseButtonWheelDown:
			m.scrollRows(PageWheelStep)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Carousels[idx], cmd = m.Carousels[idx].Update(msg)
	return m, cmd
}

func (m Model) handleCardActivated(msg scroller.CardActivatedMsg) (tea.Model, tea.Cmd) {
	title := msg.ID
	if i := m.carouselIndex(msg.ID); i >= 0 {
		title = m.Carousels[i].Title()
	}

	if ref := msg.Record.ImageRef(); ref != "" && !content.ImageAvailable(ref) {
		err := fmt.Errorf("image %q not found", ref)
		log.Printf("card %s/%d: %v", msg.ID, msg.Index, err)
		cmd := m.setStatus(errmsg.FormatWith(errmsg.OpCardOpen, describe(msg.Record), err), true)
		return m, cmd
	}

	cmd := m.setStatus(title+" › "+describe(msg.Record), false)
	return m, cmd
}

// setStatus shows a status message and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.Status = text
	m.StatusErr = isErr
	m.layoutSections()
	return StatusClearCmd(m.statusID)
}

// describe returns a one-line summary of a card.
func describe(rec content.Record) string {
	switch r := rec.(type) {
	case content.Stat:
		if v := r.DisplayValue(); v != "" {
			return v + " " + r.Name()
		}
	case content.Step:
		return fmt.Sprintf("Step %d: %s", r.Number, r.Title)
	}
	return rec.Name()
}

// handleContentChanged rebuilds every carousel from the reloaded catalog.
// A catalog that fails to load keeps the current carousels.
func (m Model) handleContentChanged() (tea.Model, tea.Cmd) {
	wait := waitForContentChange(m.contentChanges)

	catalog, err := content.Load(m.contentPath)
	if err != nil {
		status := m.setStatus(errmsg.FormatWith(errmsg.OpContentLoad, m.contentPath, err), true)
		return m, tea.Batch(wait, status)
	}
	carousels, err := buildCarousels(m.cfg, catalog, m.images)
	if err != nil {
		status := m.setStatus(errmsg.Format(errmsg.OpCarousel, err), true)
		return m, tea.Batch(wait, status)
	}

	for i := range m.Carousels {
		m.Carousels[i].Unmount()
	}
	m.Carousels = carousels
	if m.Focus >= len(m.Carousels) {
		m.Focus = -1
	}
	for i := range m.Carousels {
		m.Carousels[i].SetFocused(i == m.Focus)
	}
	m.Hovered = -1

	var resize tea.Cmd
	if m.Width > 0 {
		resize = m.broadcast(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
	}
	log.Printf("content reloaded from %s", m.contentPath)
	status := m.setStatus("Content reloaded", false)
	return m, tea.Batch(wait, resize, status)
}
