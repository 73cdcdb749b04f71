package scroller

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/showcase/internal/ui/testutil"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		maxScroll float64
		want      float64
	}{
		{"start", 0, 1000, 0},
		{"quarter", 250, 1000, 25},
		{"end", 1000, 1000, 100},
		{"overshoot clamps", 1000.0000001, 1000, 100},
		{"negative clamps", -3, 1000, 0},
		{"content fits", 500, 0, 0},
		{"negative max", 10, -20, 0},
		{"nan offset", math.NaN(), 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percent(tt.offset, tt.maxScroll), 1e-9)
		})
	}
}

func TestPercent_Monotonic(t *testing.T) {
	const maxScroll = 733.0
	prev := -1.0
	for offset := 0.0; offset <= maxScroll; offset += 7.3 {
		p := Percent(offset, maxScroll)
		if p < prev {
			t.Fatalf("Percent(%v) = %v dropped below %v", offset, p, prev)
		}
		prev = p
	}
}

func TestTracker_FollowsTrack(t *testing.T) {
	tracker := NewTracker()
	track := NewTrack(tracker)

	track.SetExtent(2000, 1000)
	track.SetOffset(250)
	assert.InDelta(t, 25, tracker.Percent(), 1e-9)

	track.SetOffset(1000)
	assert.InDelta(t, 100, tracker.Percent(), 1e-9)
}

func TestTracker_ContentFits(t *testing.T) {
	tracker := NewTracker()
	track := NewTrack(tracker)

	track.SetExtent(800, 1000)
	track.SetOffset(300)
	assert.Zero(t, track.Offset())
	assert.Zero(t, tracker.Percent())
}

func TestTracker_View(t *testing.T) {
	tracker := NewTracker()
	tracker.ScrollChanged(50, 100)

	assert.Empty(t, tracker.View(2), "too narrow for a bar")
	assert.Equal(t, 20, testutil.MeasureWidth(tracker.View(20)))
}
