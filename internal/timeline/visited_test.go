package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVisited(t *testing.T) {
	tl := scenarioTimeline(t)

	assert.True(t, tl.IsVisited(0, 0))
	assert.False(t, tl.IsVisited(1, 3.9), "zooming into item 1 does not reveal it in the overview yet")
	assert.True(t, tl.IsVisited(1, 4.0))
	assert.False(t, tl.IsVisited(2, 7.99))
	assert.True(t, tl.IsVisited(2, 8.0))
	assert.False(t, tl.IsVisited(3, 100))
	assert.False(t, tl.IsVisited(-1, 100))
}

func TestVisitedMonotonic(t *testing.T) {
	tl := scenarioTimeline(t)

	prev := make([]bool, tl.Len())
	for f := 0; f < 400; f++ {
		at := FrameTime(f, 30)
		count := 0
		for i := range prev {
			v := tl.IsVisited(i, at)
			if prev[i] {
				assert.True(t, v, "item %d unrevealed at %.3fs", i, at)
			}
			prev[i] = v
			if v {
				count++
			}
		}
		assert.Equal(t, count, tl.VisitedCount(at))
	}
}
