package templates

import (
	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// GridHighlight shows every item in a static grid and zooms straight from
// one card to the next.
type GridHighlight struct{}

func init() {
	Register(&GridHighlight{})
}

func (t *GridHighlight) GetName() string {
	return "listicle_grid_highlight"
}

func (t *GridHighlight) GetDescription() string {
	return "all items in a grid, zoom flow without scrolling"
}

func (t *GridHighlight) HasScroll() bool {
	return false
}

func (t *GridHighlight) GetDefaultScroll() float64 {
	return 0
}

func (t *GridHighlight) GetDefaultOrder() string {
	return OrderForward
}

func (t *GridHighlight) BuildSequence(job *config.Job) (*timeline.Sequence, error) {
	return buildSingle(job)
}

func (t *GridHighlight) NewLayout(seq *timeline.Sequence, job *config.Job) (renderer.Layout, error) {
	return renderer.NewGridLayout(seq.Len(), job.Width, job.Height, job.Title != ""), nil
}
