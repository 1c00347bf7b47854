package templates

import (
	"fmt"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// GoodBad alternates two ranked lists and shows them as two rows.
type GoodBad struct{}

func init() {
	Register(&GoodBad{})
}

func (t *GoodBad) GetName() string {
	return "listicle_goodbad"
}

func (t *GoodBad) GetDescription() string {
	return "good and bad lists interleaved, two-row overview"
}

func (t *GoodBad) HasScroll() bool {
	return true
}

func (t *GoodBad) GetDefaultScroll() float64 {
	return 0.3
}

func (t *GoodBad) GetDefaultOrder() string {
	return OrderForward
}

func (t *GoodBad) BuildSequence(job *config.Job) (*timeline.Sequence, error) {
	seq, err := timeline.BuildDual(
		timeline.List{Label: ListGood, Items: toAny(job.Good)},
		timeline.List{Label: ListBad, Items: toAny(job.Bad)},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: no good or bad items: %w", job.Template, err)
	}
	return seq, nil
}

func (t *GoodBad) NewLayout(seq *timeline.Sequence, job *config.Job) (renderer.Layout, error) {
	good, err := config.ParseHexColor(job.GoodColor)
	if err != nil {
		return nil, err
	}
	bad, err := config.ParseHexColor(job.BadColor)
	if err != nil {
		return nil, err
	}
	rows := [2]renderer.RowSpec{
		{List: ListGood, Label: job.GoodLabel, Color: good},
		{List: ListBad, Label: job.BadLabel, Color: bad},
	}
	return renderer.NewTwoRowLayout(seq, rows, job.Width, job.Height), nil
}
