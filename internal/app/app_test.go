// internal/app/app_test.go
package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/config"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui"
	"github.com/llehouerou/showcase/internal/ui/helpbindings"
	"github.com/llehouerou/showcase/internal/ui/scroller"
	"github.com/llehouerou/showcase/internal/ui/testutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	catalog, err := content.Default()
	require.NoError(t, err)
	m, err := New(&config.Config{}, catalog, nil)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

// sized returns a model laid out for a 120x40 window.
func sized(t *testing.T) Model {
	t.Helper()
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// cardRow returns a screen row inside the card strip of section i.
func cardRow(m Model, i int) int {
	_, y := m.Carousels[i].Origin()
	return y + ui.TitleHeight + 1
}

func TestNew_BuildsCarouselsInPageOrder(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.Carousels, 3)
	assert.Equal(t, IDActivities, m.Carousels[0].ID())
	assert.Equal(t, IDProjects, m.Carousels[1].ID())
	assert.Equal(t, IDSteps, m.Carousels[2].ID())
	assert.Equal(t, -1, m.Focus)
	assert.Equal(t, -1, m.Hovered)
}

func TestNew_InvalidOverride(t *testing.T) {
	catalog, err := content.Default()
	require.NoError(t, err)
	cfg := &config.Config{Carousels: map[string]config.CarouselConfig{
		IDProjects: {Breakpoints: []config.BreakpointConfig{{MinWidth: 0, Slides: -1}}},
	}}

	_, err = New(cfg, catalog, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, scroller.ErrInvalidConfig)
	assert.Contains(t, err.Error(), IDProjects)
}

func TestApplyOverride(t *testing.T) {
	gap := 0.0
	p := applyOverride(presets()[0], config.CarouselConfig{
		Title:       "Impact",
		BaseGap:     &gap,
		DragSpeed:   2,
		Breakpoints: []config.BreakpointConfig{{MinWidth: 0, Slides: 1}},
	})

	assert.Equal(t, "Impact", p.title)
	assert.Zero(t, p.cfg.BaseGap)
	assert.InDelta(t, 2, p.cfg.DragSpeed, 1e-9)
	require.Len(t, p.cfg.Breakpoints, 1)
	assert.InDelta(t, 1, p.cfg.Breakpoints[0].SlidesToShow, 1e-9)
	assert.InDelta(t, 48, p.cfg.BaseCardWidth, 1e-9, "unset fields keep the preset")
}

func TestApplyOverride_OrdersBreakpointsWidestFirst(t *testing.T) {
	p := applyOverride(presets()[0], config.CarouselConfig{
		Breakpoints: []config.BreakpointConfig{
			{MinWidth: 0, Slides: 1.5},
			{MinWidth: 150, Slides: 2.8},
			{MinWidth: 100, Slides: 2.3},
		},
	})

	require.Len(t, p.cfg.Breakpoints, 3)
	assert.InDelta(t, 150, p.cfg.Breakpoints[0].MinViewport, 1e-9)
	assert.InDelta(t, 100, p.cfg.Breakpoints[1].MinViewport, 1e-9)
	assert.InDelta(t, 0, p.cfg.Breakpoints[2].MinViewport, 1e-9)
}

func TestNew_AscendingBreakpointOverrideStillMatchesWideWindow(t *testing.T) {
	catalog, err := content.Default()
	require.NoError(t, err)
	cfg := &config.Config{Carousels: map[string]config.CarouselConfig{
		IDActivities: {Breakpoints: []config.BreakpointConfig{
			{MinWidth: 0, Slides: 1.5},
			{MinWidth: 150, Slides: 2.8},
		}},
	}}
	m, err := New(cfg, catalog, nil)
	require.NoError(t, err)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.InDelta(t, 2.8, m.Carousels[0].Metrics().SlidesToShow, 1e-9)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, scroller.ResizeSettledMsg{ID: IDActivities, Version: 2, Width: 120})
	assert.InDelta(t, 1.5, m.Carousels[0].Metrics().SlidesToShow, 1e-9)
}

func TestUpdate_WindowSizeMsg_LaysOutSections(t *testing.T) {
	m := sized(t)

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)

	y := ui.HeaderHeight
	for i, c := range m.Carousels {
		assert.False(t, c.Metrics().IsZero(), "carousel %d laid out", i)
		_, top := c.Origin()
		assert.Equal(t, y, top, "carousel %d origin", i)
		y += c.SectionHeight()
	}
}

func TestUpdate_WindowSizeMsg_DebouncesLaterResizes(t *testing.T) {
	m := sized(t)

	_, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.NotNil(t, cmd, "later resizes settle through a timer")
}

func TestView_FillsWindow(t *testing.T) {
	m := sized(t)

	lines := testutil.SplitLines(m.View())
	assert.Len(t, lines, 40)
	for i, line := range lines {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 120, "line %d", i)
	}

	plain := testutil.StripANSI(m.View())
	assert.Contains(t, plain, "Our Impact")
	assert.Contains(t, plain, "? help")
}

func TestView_EmptyBeforeFirstSize(t *testing.T) {
	assert.Empty(t, newTestModel(t).View())
}

func TestMouse_HoverFollowsPointer(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, testutil.Hover(10, cardRow(m, 0)))
	assert.Equal(t, 0, m.Hovered)
	assert.True(t, m.Carousels[0].Hovered())
	assert.False(t, m.Carousels[1].Hovered())

	m, _ = update(t, m, testutil.Hover(10, cardRow(m, 1)))
	assert.Equal(t, 1, m.Hovered)
	assert.False(t, m.Carousels[0].Hovered())
	assert.True(t, m.Carousels[1].Hovered())

	m, _ = update(t, m, testutil.Hover(10, 0))
	assert.Equal(t, -1, m.Hovered)
	assert.False(t, m.Carousels[1].Hovered())
}

func TestMouse_WheelOverSectionScrollsCarousel(t *testing.T) {
	m := sized(t)

	m, cmd := update(t, m, testutil.Wheel(10, cardRow(m, 0), tea.MouseButtonWheelDown))
	assert.NotNil(t, cmd, "carousel starts animating")
	assert.Zero(t, m.ScrollTop, "page does not move")
}

func TestMouse_WheelOutsideSectionsScrollsPage(t *testing.T) {
	m := sized(t)
	require.Positive(t, m.maxScrollTop())

	m, _ = update(t, m, testutil.Wheel(10, 0, tea.MouseButtonWheelDown))
	assert.Equal(t, min(PageWheelStep, m.maxScrollTop()), m.ScrollTop)

	_, y := m.Carousels[0].Origin()
	assert.Equal(t, ui.HeaderHeight-m.ScrollTop, y, "sections move with the page")

	m, _ = update(t, m, testutil.Wheel(10, 0, tea.MouseButtonWheelUp))
	assert.Zero(t, m.ScrollTop)
}

func TestMouse_DragScrollsOnlyThatCarousel(t *testing.T) {
	m := sized(t)
	y := cardRow(m, 0)

	m, _ = update(t, m, testutil.Press(60, y))
	m, _ = update(t, m, testutil.Motion(40, y))

	st := m.Carousels[0].State()
	assert.True(t, st.Dragging)
	assert.InDelta(t, 20*0.85, st.OffsetPx, 1e-9)
	assert.Zero(t, m.Carousels[1].State().OffsetPx)

	m, cmd := update(t, m, testutil.Release(40, y))
	assert.False(t, m.Carousels[0].State().Dragging)
	assert.Nil(t, cmd, "a drag is not a click")
}

func TestMouse_LeavingSectionEndsDrag(t *testing.T) {
	m := sized(t)
	y := cardRow(m, 0)

	m, _ = update(t, m, testutil.Press(60, y))
	m, _ = update(t, m, testutil.Motion(50, y))
	require.True(t, m.Carousels[0].State().Dragging)

	m, _ = update(t, m, testutil.Motion(50, 0))
	assert.False(t, m.Carousels[0].State().Dragging)
	assert.Equal(t, scroller.PhaseIdle, m.Carousels[0].Phase())
}

func TestMouse_ClickActivatesCardAndShowsStatus(t *testing.T) {
	m := sized(t)
	y := cardRow(m, 0)

	m, _ = update(t, m, testutil.Press(12, y))
	m, cmd := update(t, m, testutil.Release(12, y))
	require.NotNil(t, cmd)

	msg, ok := cmd().(scroller.CardActivatedMsg)
	require.True(t, ok, "click emits CardActivatedMsg")
	assert.Equal(t, IDActivities, msg.ID)
	assert.Equal(t, 0, msg.Index)

	m, cmd = update(t, m, msg)
	assert.NotNil(t, cmd, "status clears itself")
	assert.Equal(t, "Our Impact › 2025-2026", m.Status)
	assert.False(t, m.StatusErr)
	assert.True(t, testutil.ContainsLine(testutil.StripANSI(m.View()), "Our Impact › 2025-2026"))
	assert.Len(t, testutil.SplitLines(m.View()), 40, "status line takes a body row")
}

func TestCardActivated_MissingImageShowsError(t *testing.T) {
	m := sized(t)
	rec := content.Stat{Label: "Trees Planted", Value: "10", Image: "/nonexistent/trees.png"}

	m, _ = update(t, m, scroller.CardActivatedMsg{ID: IDActivities, Index: 3, Record: rec})

	assert.True(t, m.StatusErr)
	assert.Contains(t, m.Status, "Failed to open card '10 Trees Planted'")
	assert.Contains(t, m.Status, "/nonexistent/trees.png")
}

func TestStatusClear_IgnoresStaleID(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, scroller.CardActivatedMsg{ID: IDSteps, Record: content.Step{Number: 2, Title: "Sort"}})
	assert.Equal(t, "How It Works › Step 2: Sort", m.Status)
	first := m.statusID

	m, _ = update(t, m, scroller.CardActivatedMsg{ID: IDSteps, Record: content.Step{Number: 3, Title: "Ship"}})
	m, _ = update(t, m, StatusClearMsg{ID: first})
	assert.Equal(t, "How It Works › Step 3: Ship", m.Status)

	m, _ = update(t, m, StatusClearMsg{ID: m.statusID})
	assert.Empty(t, m.Status)
}

func TestKeys_TabCyclesFocusAndScrollsIntoView(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, testutil.Key("tab"))
	assert.Equal(t, 0, m.Focus)
	assert.True(t, m.Carousels[0].IsFocused())

	m, _ = update(t, m, testutil.Key("tab"))
	m, _ = update(t, m, testutil.Key("tab"))
	assert.Equal(t, 2, m.Focus)
	assert.False(t, m.Carousels[0].IsFocused())
	assert.True(t, m.Carousels[2].IsFocused())

	_, y := m.Carousels[2].Origin()
	bottom := y + m.Carousels[2].SectionHeight()
	assert.LessOrEqual(t, bottom, ui.HeaderHeight+m.contentHeight(), "focused section fully visible")

	m, _ = update(t, m, testutil.Key("tab"))
	assert.Equal(t, 0, m.Focus, "focus wraps")
	assert.Zero(t, m.ScrollTop)

	m, _ = update(t, m, testutil.Key("shift+tab"))
	assert.Equal(t, 2, m.Focus)
}

func TestKeys_ArrowsReachFocusedCarouselOnly(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, testutil.Key("tab"))

	m, cmd := update(t, m, testutil.Key("right"))
	assert.NotNil(t, cmd, "focused carousel animates")

	m.Carousels[0].SetFocused(false)
	m.Focus = -1
	_, cmd = update(t, m, testutil.Key("right"))
	assert.Nil(t, cmd, "no carousel is hovered or focused")
}

func TestKeys_HoveredCarouselTakesKeysOverFocused(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, testutil.Key("tab"))
	require.Equal(t, 0, m.Focus)
	m, _ = update(t, m, testutil.Hover(10, cardRow(m, 1)))
	require.Equal(t, 1, m.Hovered)

	m, cmd := update(t, m, testutil.Key("right"))
	require.NotNil(t, cmd)
	frame, ok := cmd().(scroller.FrameMsg)
	require.True(t, ok, "only one carousel animates")
	assert.Equal(t, IDProjects, frame.ID)

	m, _ = update(t, m, testutil.Hover(10, 0))
	_, cmd = update(t, m, testutil.Key("right"))
	require.NotNil(t, cmd)
	frame, ok = cmd().(scroller.FrameMsg)
	require.True(t, ok)
	assert.Equal(t, IDActivities, frame.ID, "focus applies again once nothing is hovered")
}

func TestKeys_PageJumpsBetweenSections(t *testing.T) {
	m := sized(t)
	require.Positive(t, m.maxScrollTop())

	m, _ = update(t, m, testutil.Key("pgdown"))
	assert.Equal(t, min(m.Carousels[0].SectionHeight(), m.maxScrollTop()), m.ScrollTop)

	m, _ = update(t, m, testutil.Key("pgup"))
	assert.Zero(t, m.ScrollTop)
}

func TestKeys_HelpOpensAndCloses(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, testutil.Key("?"))
	require.True(t, m.ShowHelp)
	assert.True(t, strings.Contains(testutil.StripANSI(m.View()), "Help"))

	m, cmd := update(t, m, testutil.Key("esc"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, helpbindings.CloseMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.False(t, m.ShowHelp)
}

func TestKeys_QuitWhileHelpClosesHelpFirst(t *testing.T) {
	m := sized(t)

	_, cmd := update(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, testutil.Key("?"))
	_, cmd = update(t, m, testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, helpbindings.CloseMsg{}, cmd())
}

const reloadedCatalog = `activities:
  - label: Trees Planted
    value: "10"
steps:
  - step: 1
    title: Plant
`

func TestContentChanged_RebuildsCarousels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reloadedCatalog), 0o600))

	changes := make(chan struct{}, 1)
	m := sized(t).WatchContent(path, changes)
	m, _ = update(t, m, testutil.Key("tab"))

	m, cmd := update(t, m, ContentChangedMsg{})
	assert.NotNil(t, cmd)

	require.Len(t, m.Carousels, 3)
	assert.Equal(t, 1, m.Carousels[0].Len())
	assert.Zero(t, m.Carousels[1].Len())
	assert.Equal(t, 1, m.Carousels[2].Len())
	assert.False(t, m.Carousels[0].Metrics().IsZero(), "rebuilt carousels are laid out at once")
	assert.True(t, m.Carousels[0].IsFocused(), "focus survives a reload")
	assert.Equal(t, "Content reloaded", m.Status)
	assert.False(t, m.StatusErr)
}

func TestContentChanged_BadFileKeepsCarousels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activities: []\n"), 0o600))

	m := sized(t).WatchContent(path, make(chan struct{}))
	before := m.Carousels[0].Len()

	m, _ = update(t, m, ContentChangedMsg{})

	assert.Equal(t, before, m.Carousels[0].Len())
	assert.True(t, m.StatusErr)
	assert.Contains(t, m.Status, "Failed to load content")
}

func TestWaitForContentChange(t *testing.T) {
	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	assert.Equal(t, ContentChangedMsg{}, waitForContentChange(changes)())

	close(changes)
	assert.Nil(t, waitForContentChange(changes)())
}
