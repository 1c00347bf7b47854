package timeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTimeline(t *testing.T) *Timeline {
	t.Helper()
	tl, err := New(3, scenarioConfig())
	require.NoError(t, err)
	return tl
}

func TestResolveScenario(t *testing.T) {
	tl := scenarioTimeline(t)

	tests := []struct {
		name    string
		at      float64
		phase   Phase
		current int
		next    int
		zoom    float64
	}{
		{"start", 0, PhaseZoomInFirst, 0, 1, 0},
		{"first zoom half way", 0.25, PhaseZoomInFirst, 0, 1, 0.5},
		{"first hold", 0.5, PhaseHold, 0, 1, 1},
		{"first hold late", 2.6, PhaseHold, 0, 1, 1},
		{"zoom out entry", 2.7, PhaseZoomOut, 0, 1, 1},
		{"zoom out half way", 2.95, PhaseZoomOut, 0, 1, 0.5},
		{"scroll entry", 3.2, PhaseScroll, 0, 1, 0},
		{"zoom in to next", 3.5, PhaseZoomIn, 1, 1, 0},
		{"late zoom in", 3.9, PhaseZoomIn, 1, 1, EaseInOutCubic(0.8)},
		{"second hold", 4.0, PhaseHold, 1, 2, 1},
		{"second zoom out", 6.7, PhaseZoomOut, 1, 2, 1},
		{"last item head", 8.0, PhaseHold, 2, 2, 1},
		{"last item end", 11.99, PhaseHold, 2, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := tl.Resolve(tt.at)
			assert.Equal(t, tt.phase, fs.Phase, "phase at %.2fs", tt.at)
			assert.Equal(t, tt.current, fs.Current)
			assert.Equal(t, tt.next, fs.Next)
			assert.InDelta(t, tt.zoom, fs.Zoom, 1e-9)
		})
	}
}

func TestResolveScrollInterpolates(t *testing.T) {
	tl := scenarioTimeline(t)

	fs := tl.Resolve(3.35)
	require.Equal(t, PhaseScroll, fs.Phase)
	assert.Equal(t, 0, fs.Current, "scroll reports the departing item")
	assert.Equal(t, 0, fs.ScrollFrom)
	assert.Equal(t, 1, fs.ScrollTo)
	assert.InDelta(t, 0.5, fs.ScrollFraction, 1e-9)
	assert.Equal(t, 0.0, fs.Zoom)

	fs = tl.Resolve(7.35)
	assert.Equal(t, 1, fs.ScrollFrom)
	assert.Equal(t, 2, fs.ScrollTo)
}

func TestResolveZoomOutEntryIsFullyZoomed(t *testing.T) {
	tl := scenarioTimeline(t)
	b := tl.Boundaries(0)

	fs := tl.Resolve(b.HoldEnd)
	assert.Equal(t, PhaseZoomOut, fs.Phase)
	assert.Equal(t, 1.0, fs.Zoom)
}

func TestResolveWithoutScroll(t *testing.T) {
	cfg := Config{ZoomDuration: 0.5, TotalDuration: 9, MinimumHold: 0.5}
	tl, err := New(3, cfg)
	require.NoError(t, err)

	// 3s per item: hold until 2.0, zoom out to 2.5, zoom in to 3.0
	seen := map[Phase]bool{}
	for f := 0; f < 270; f++ {
		fs := tl.Resolve(FrameTime(f, 30))
		seen[fs.Phase] = true
		assert.Equal(t, 0.0, fs.ScrollFraction)
	}
	assert.False(t, seen[PhaseScroll])
	assert.True(t, seen[PhaseZoomOut])
	assert.True(t, seen[PhaseZoomIn])

	assert.Equal(t, PhaseZoomIn, tl.Resolve(2.5).Phase)
	assert.Equal(t, 1, tl.Resolve(2.5).Current)
}

func TestResolveTerminalAbsorption(t *testing.T) {
	tl := scenarioTimeline(t)
	last := tl.Len() - 1

	for _, at := range []float64{8, 10, 11.5, 12, 15, 1000} {
		fs := tl.Resolve(at)
		assert.Equal(t, PhaseHold, fs.Phase, "t=%v", at)
		assert.Equal(t, last, fs.Current)
		assert.Equal(t, last, fs.Next)
		assert.Equal(t, 1.0, fs.Zoom)
	}
}

func TestResolveSingleItem(t *testing.T) {
	tl, err := New(1, scenarioConfig())
	require.NoError(t, err)

	assert.Equal(t, PhaseZoomInFirst, tl.Resolve(0.1).Phase)
	fs := tl.Resolve(0.5)
	assert.Equal(t, PhaseHold, fs.Phase)
	assert.Equal(t, 0, fs.Next)
	assert.Equal(t, PhaseHold, tl.Resolve(50).Phase)
}

func TestResolveNegativeTime(t *testing.T) {
	tl := scenarioTimeline(t)
	assert.Equal(t, tl.Resolve(0), tl.Resolve(-3))
}

func TestResolveCoverage(t *testing.T) {
	tl := scenarioTimeline(t)

	for f := 0; f < 360*4; f++ {
		at := float64(f) / 120
		fs := tl.Resolve(at)
		assert.Contains(t, Phases(), fs.Phase)
		assert.GreaterOrEqual(t, fs.Zoom, 0.0)
		assert.LessOrEqual(t, fs.Zoom, 1.0)
		assert.GreaterOrEqual(t, fs.ScrollFraction, 0.0)
		assert.LessOrEqual(t, fs.ScrollFraction, 1.0)
		assert.GreaterOrEqual(t, fs.Current, 0)
		assert.Less(t, fs.Current, tl.Len())
	}
}

func TestResolveContinuity(t *testing.T) {
	tl := scenarioTimeline(t)
	const d = 1e-7

	for i := 0; i < tl.Len()-1; i++ {
		b := tl.Boundaries(i)

		before, after := tl.Resolve(b.ZoomOutEnd-d), tl.Resolve(b.ZoomOutEnd+d)
		assert.Equal(t, PhaseZoomOut, before.Phase)
		assert.Equal(t, PhaseScroll, after.Phase)
		assert.InDelta(t, 0, before.Zoom, 1e-6)
		assert.Equal(t, 0.0, after.Zoom)

		before, after = tl.Resolve(b.HoldEnd-d), tl.Resolve(b.HoldEnd+d)
		assert.InDelta(t, before.Zoom, after.Zoom, 1e-6)

		before, after = tl.Resolve(b.ScrollEnd-d), tl.Resolve(b.ScrollEnd+d)
		assert.InDelta(t, 1, before.ScrollFraction, 1e-6)
		assert.InDelta(t, 0, after.Zoom, 1e-6)
		assert.Equal(t, before.ScrollTo, after.Current)

		before, after = tl.Resolve(b.End-d), tl.Resolve(b.End+d)
		assert.InDelta(t, 1, before.Zoom, 1e-6)
		assert.Equal(t, 1.0, after.Zoom)
		assert.Equal(t, before.Current, after.Current)
	}
}

func TestResolveDeterministicAndOrderFree(t *testing.T) {
	tl := scenarioTimeline(t)
	const frames = 360

	inOrder := make([]FrameState, frames)
	for f := 0; f < frames; f++ {
		inOrder[f] = tl.Resolve(FrameTime(f, 30))
	}

	order := rand.New(rand.NewSource(7)).Perm(frames)
	shuffled := make([]FrameState, frames)
	for _, f := range order {
		shuffled[f] = tl.Resolve(FrameTime(f, 30))
	}
	assert.Equal(t, inOrder, shuffled)

	for f := 0; f < frames; f++ {
		assert.Equal(t, inOrder[f], tl.Resolve(FrameTime(f, 30)))
	}
}

func TestResolveConcurrent(t *testing.T) {
	tl := scenarioTimeline(t)
	want := tl.Resolve(5.55)

	done := make(chan FrameState, 16)
	for g := 0; g < 16; g++ {
		go func() { done <- tl.Resolve(5.55) }()
	}
	for g := 0; g < 16; g++ {
		assert.Equal(t, want, <-done)
	}
}

func TestBoundaries(t *testing.T) {
	tl := scenarioTimeline(t)

	b := tl.Boundaries(0)
	assert.InDelta(t, 0.5, b.ZoomInEnd, 1e-9)
	assert.InDelta(t, 2.7, b.HoldEnd, 1e-9)
	assert.InDelta(t, 3.2, b.ZoomOutEnd, 1e-9)
	assert.InDelta(t, 3.5, b.ScrollEnd, 1e-9)
	assert.False(t, b.Terminal)

	b = tl.Boundaries(1)
	assert.Equal(t, b.Start, b.ZoomInEnd)

	b = tl.Boundaries(2)
	assert.True(t, b.Terminal)
	assert.Equal(t, b.End, b.HoldEnd)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "zoom_in_first", PhaseZoomInFirst.String())
	assert.Equal(t, "scroll", PhaseScroll.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
