package cards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/ui/testutil"
)

func int64p(v int64) *int64 { return &v }

func sampleRecords() []content.Record {
	return []content.Record{
		content.Stat{
			Caption:  "Since 2019",
			Label:    "MT of plastic collected from coastlines and rivers",
			Count:    int64p(38406),
			KnowMore: true,
		},
		content.Project{Title: "Ocean Cleanup Initiative", TextPosition: content.TextBottom},
		content.Project{Title: "Recycling Hub", TextPosition: content.TextTop},
		content.Step{
			Number:      3,
			Title:       "Segregation",
			Description: "Collected waste is sorted by material type at the facility.",
			Checklist:   []string{"PET", "HDPE", "LDPE"},
		},
	}
}

func TestRender_FillsExactDims(t *testing.T) {
	sizes := []Dims{
		{Width: 40, Height: 12, Scale: 1},
		{Width: 24, Height: 8, Scale: 0.5},
		{Width: 80, Height: 20, Scale: 1.6},
		{Width: 5, Height: 4, Scale: 0.2},
		{Width: 1, Height: 1, Scale: 0.1},
	}

	for _, rec := range sampleRecords() {
		r := ForKind(rec.Kind(), nil)
		for _, d := range sizes {
			out := r.Render(rec, d)
			w, h := testutil.BlockSize(out)
			assert.Equal(t, d.Width, w, "%s %+v width", rec.Kind(), d)
			assert.Equal(t, d.Height, h, "%s %+v height", rec.Kind(), d)
			assert.True(t, testutil.UniformWidth(out, d.Width), "%s %+v ragged lines", rec.Kind(), d)
		}
	}
}

func TestRender_EmptyDims(t *testing.T) {
	for _, rec := range sampleRecords() {
		r := ForKind(rec.Kind(), nil)
		assert.Empty(t, r.Render(rec, Dims{Width: 0, Height: 10, Scale: 1}))
		assert.Empty(t, r.Render(rec, Dims{Width: 10, Height: 0, Scale: 1}))
	}
}

func TestStat_ShowsValueAndLabel(t *testing.T) {
	out := testutil.StripANSI(Stat{}.Render(sampleRecords()[0], Dims{Width: 60, Height: 14, Scale: 1}))

	assert.Contains(t, out, "38,406")
	assert.Contains(t, out, "Since 2019")
	assert.Contains(t, out, "MT of plastic")
	assert.Contains(t, out, knowMoreLabel)
	assert.Contains(t, out, placeholderGlyph, "missing image falls back to the placeholder")
}

func TestStat_NarrowCardDropsImageColumn(t *testing.T) {
	rec := content.Stat{Value: "12", Label: "Cities"}
	out := testutil.StripANSI(Stat{}.Render(rec, Dims{Width: 12, Height: 6, Scale: 0.3}))

	assert.NotContains(t, out, placeholderGlyph)
	assert.Contains(t, out, "12")
}

func TestStat_ImageGlyphWhenAvailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	rec := content.Stat{Value: "7", Label: "States", Image: path}
	out := testutil.StripANSI(Stat{}.Render(rec, Dims{Width: 40, Height: 10, Scale: 1}))

	assert.Contains(t, out, imageGlyph)
	assert.NotContains(t, out, placeholderGlyph)
}

// fakeImages draws every image as a block of '#'.
type fakeImages struct{ width, height int }

func (f fakeImages) Block(_ string, width, height int) []string {
	w, h := min(f.width, width), min(f.height, height)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat("#", w)
	}
	return lines
}

func TestStat_DrawsImageBlock(t *testing.T) {
	rec := content.Stat{Value: "7", Label: "States", Image: "icon.png"}
	d := Dims{Width: 40, Height: 10, Scale: 1}
	out := Stat{Images: fakeImages{width: 4, height: 3}}.Render(rec, d)

	plain := testutil.StripANSI(out)
	assert.Equal(t, 3, strings.Count(plain, "####"))
	assert.NotContains(t, plain, imageGlyph)
	assert.True(t, testutil.UniformWidth(out, d.Width))
}

func TestProject_DrawsImageBlockAboveTitle(t *testing.T) {
	rec := content.Project{Title: "Ocean", Image: "ocean.png", TextPosition: content.TextBottom}
	d := Dims{Width: 30, Height: 12, Scale: 1}
	out := Project{Images: fakeImages{width: 20, height: 50}}.Render(rec, d)

	w, h := testutil.BlockSize(out)
	assert.Equal(t, d.Width, w)
	assert.Equal(t, d.Height, h)

	lines := testutil.SplitLines(testutil.StripANSI(out))
	first, last := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "####") {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	titleRow := -1
	for i, line := range lines {
		if strings.Contains(line, "Ocean") {
			titleRow = i
		}
	}
	assert.GreaterOrEqual(t, first, 0, "image drawn")
	assert.Less(t, last, titleRow, "image stays above a bottom title")
}

func TestProject_TitlePosition(t *testing.T) {
	recs := sampleRecords()
	d := Dims{Width: 30, Height: 10, Scale: 1}

	bottom := testutil.SplitLines(testutil.StripANSI(Project{}.Render(recs[1], d)))
	top := testutil.StripANSI(Project{}.Render(recs[2], d))

	titleRow := -1
	for i, line := range bottom {
		if testutil.ContainsLine(line, "Ocean") {
			titleRow = i
		}
	}
	assert.Greater(t, titleRow, d.Height/2, "bottom title drawn in the lower half")

	lines := testutil.SplitLines(top)
	assert.Contains(t, lines[1], "Recycling Hub", "top title drawn right under the padding row")
}

func TestStep_ShowsBadgeAndChecklist(t *testing.T) {
	out := testutil.StripANSI(Step{}.Render(sampleRecords()[3], Dims{Width: 50, Height: 16, Scale: 1}))

	assert.Contains(t, out, "STEP 3")
	assert.Contains(t, out, "Segregation")
	assert.Contains(t, out, checkGlyph+"HDPE")
}

func TestRender_WrongRecordFallsBackToPlain(t *testing.T) {
	rec := content.Project{Title: "Mismatch"}
	out := testutil.StripANSI(Stat{}.Render(rec, Dims{Width: 20, Height: 4, Scale: 1}))
	assert.Contains(t, out, "Mismatch")
}

func TestRendererFunc(t *testing.T) {
	var called Dims
	r := RendererFunc(func(_ content.Record, d Dims) string {
		called = d
		return "x"
	})
	assert.Equal(t, "x", r.Render(content.Step{}, Dims{Width: 3, Height: 2, Scale: 1}))
	assert.Equal(t, 3, called.Width)
}

func TestDims_Scaled(t *testing.T) {
	assert.Equal(t, 3, Dims{Scale: 1.4}.Scaled(2))
	assert.Equal(t, 0, Dims{Scale: 0.2}.Scaled(2))
}
