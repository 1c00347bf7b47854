package templates

import (
	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// Scroll is the film strip countdown: the strip slides between items while
// zoomed out.
type Scroll struct{}

func init() {
	Register(&Scroll{})
}

func (t *Scroll) GetName() string {
	return "listicle_scroll"
}

func (t *Scroll) GetDescription() string {
	return "horizontal strip countdown, #N to #1"
}

func (t *Scroll) HasScroll() bool {
	return true
}

func (t *Scroll) GetDefaultScroll() float64 {
	return 0.4
}

func (t *Scroll) GetDefaultOrder() string {
	return OrderCountdown
}

func (t *Scroll) BuildSequence(job *config.Job) (*timeline.Sequence, error) {
	return buildSingle(job)
}

func (t *Scroll) NewLayout(seq *timeline.Sequence, job *config.Job) (renderer.Layout, error) {
	return renderer.NewStripLayout(seq, job.Width, job.Height, job.Title != ""), nil
}
