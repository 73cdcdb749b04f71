package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/ui/testutil"
)

func TestRender_Width(t *testing.T) {
	sections := []string{"Our Impact", "Projects", "How It Works"}
	for _, width := range []int{10, 20, 40, 80, 200} {
		got := Render(sections, 1, width)
		assert.Equal(t, width, lipgloss.Width(got), "width %d", width)
	}
}

func TestRender_ShowsBrandAndSections(t *testing.T) {
	got := testutil.StripANSI(Render([]string{"Our Impact", "Projects"}, -1, 100))
	assert.Contains(t, got, Brand)
	assert.Contains(t, got, "Our Impact")
	assert.Contains(t, got, "Projects")
}

func TestRender_DropsTabsWhenTooNarrow(t *testing.T) {
	got := testutil.StripANSI(Render([]string{"A very long section title", "Another long one"}, 0, 30))
	assert.Contains(t, got, Brand)
	assert.NotContains(t, got, "Another")
}
