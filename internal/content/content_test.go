package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Activities, 7)
	assert.Len(t, c.Projects, 5)
	assert.Len(t, c.Steps, 10)

	assert.Equal(t, "2025-2026", c.Activities[0].Name())
	assert.Equal(t, "38,406", c.Activities[1].DisplayValue())
	assert.Equal(t, TextTop, c.Projects[1].TextPosition)
	assert.Empty(t, c.Steps[8].Checklist)
}

func TestRecords_PreservesOrder(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	recs := c.Records(KindProject)
	require.Len(t, recs, len(c.Projects))
	for i, r := range recs {
		assert.Equal(t, KindProject, r.Kind())
		assert.Equal(t, c.Projects[i].Title, r.Name())
	}
}

func TestRecords_NumbersUnnumberedSteps(t *testing.T) {
	c := &Catalog{Steps: []Step{{Title: "a"}, {Title: "b", Number: 7}, {Title: "c"}}}

	recs := c.Records(KindStep)
	require.Len(t, recs, 3)
	assert.Equal(t, 1, recs[0].(Step).Number)
	assert.Equal(t, 7, recs[1].(Step).Number)
	assert.Equal(t, 3, recs[2].(Step).Number)
	assert.Equal(t, 0, c.Steps[0].Number, "catalog must not be modified")
}

func TestRecords_UnknownKind(t *testing.T) {
	c := &Catalog{Steps: []Step{{Title: "a"}}}
	assert.Empty(t, c.Records(Kind("nope")))
}

func TestStat_DisplayValue(t *testing.T) {
	n := int64(1234567)
	tests := []struct {
		name string
		stat Stat
		want string
	}{
		{"preformatted", Stat{Value: "278k+"}, "278k+"},
		{"count with separators", Stat{Count: &n}, "1,234,567"},
		{"count with suffix", Stat{Count: &n, Suffix: "+"}, "1,234,567+"},
		{"value wins over count", Stat{Value: "x", Count: &n}, "x"},
		{"nothing", Stat{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stat.DisplayValue(); got != tt.want {
				t.Errorf("DisplayValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"malformed", "activities: [\n"},
		{"activity without label", "activities:\n  - value: \"1\"\n"},
		{"project without title", "projects:\n  - image: x\n"},
		{"bad text position", "projects:\n  - title: a\n    text_position: middle\n"},
		{"step without title", "steps:\n  - step: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyCatalogSentinel(t *testing.T) {
	_, err := Parse([]byte("activities: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - title: Solo\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "Solo", c.Projects[0].Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestImageAvailable(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "card.png")
	require.NoError(t, os.WriteFile(local, []byte{0}, 0o600))

	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"empty", "", false},
		{"https url", "https://example.com/a.png", true},
		{"http url", "http://example.com/a.png", true},
		{"unsupported scheme", "ftp://example.com/a.png", false},
		{"url without host", "https:///a.png", false},
		{"existing file", local, true},
		{"missing file", filepath.Join(dir, "nope.png"), false},
		{"directory", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageAvailable(tt.ref); got != tt.want {
				t.Errorf("ImageAvailable(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
