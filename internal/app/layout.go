// internal/app/layout.go
package app

import (
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/layout"
)

// PageWheelStep is how many rows one wheel notch scrolls the page.
const PageWheelStep = 3

func (m Model) statusHeight() int {
	if m.Status == "" {
		return 0
	}
	return 1
}

// contentHeight returns the rows available to the carousel sections.
func (m Model) contentHeight() int {
	return layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight: ui.HeaderHeight,
		StatusHeight: m.statusHeight(),
		HelpHeight:   ui.HelpHeight,
	})
}

func (m Model) sectionHeights() []int {
	heights := make([]int, len(m.Carousels))
	for i, c := range m.Carousels {
		heights[i] = c.SectionHeight()
	}
	return heights
}

func (m Model) pageHeight() int {
	total := 0
	for _, h := range m.sectionHeights() {
		total += h
	}
	return total
}

func (m Model) maxScrollTop() int {
	return max(m.pageHeight()-m.contentHeight(), 0)
}

// layoutSections clamps the page scroll and moves every section to its
// screen position.
func (m *Model) layoutSections() {
	m.ScrollTop = min(max(m.ScrollTop, 0), m.maxScrollTop())
	heights := m.sectionHeights()
	for i := range m.Carousels {
		m.Carousels[i].SetOrigin(0, ui.HeaderHeight+layout.SectionTop(heights, 0, i)-m.ScrollTop)
	}
}

// sectionAt returns the carousel drawn at screen row y, or -1.
func (m Model) sectionAt(y int) int {
	if y < ui.HeaderHeight || y >= ui.HeaderHeight+m.contentHeight() {
		return -1
	}
	return layout.SectionAt(m.sectionHeights(), ui.HeaderHeight-m.ScrollTop, y)
}

// scrollRows scrolls the page by delta rows.
func (m *Model) scrollRows(delta int) {
	m.ScrollTop += delta
	m.layoutSections()
}

// scrollPage jumps to the next or previous section top.
func (m *Model) scrollPage(dir int) {
	heights := m.sectionHeights()
	target := 0
	if dir > 0 {
		target = m.maxScrollTop()
		for i := range heights {
			if top := layout.SectionTop(heights, 0, i); top > m.ScrollTop {
				target = top
				break
			}
		}
	} else {
		for i := range heights {
			if top := layout.SectionTop(heights, 0, i); top < m.ScrollTop {
				target = top
			}
		}
	}
	m.ScrollTop = target
	m.layoutSections()
}

// ensureVisible scrolls the page so section i is on screen,
// showing its top when it is taller than the view.
func (m *Model) ensureVisible(i int) {
	heights := m.sectionHeights()
	if i < 0 || i >= len(heights) {
		return
	}
	top := layout.SectionTop(heights, 0, i)
	bottom := top + heights[i]
	switch ch := m.contentHeight(); {
	case top < m.ScrollTop:
		m.ScrollTop = top
	case bottom > m.ScrollTop+ch:
		m.ScrollTop = min(bottom-ch, top)
	}
	m.layoutSections()
}
