package director

import (
	"fmt"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/templates"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// Plan is a job resolved against its template: the display order, the
// timeline and the number of frames to render. It is immutable once built.
type Plan struct {
	Job      *config.Job
	Template templates.Template
	Sequence *timeline.Sequence
	Timeline *timeline.Timeline
	Order    string
	Overflow timeline.Overflow
	Frames   int

	// Notes are non-fatal adjustments made while planning.
	Notes []string
}

// BuildPlan resolves a validated job into a Plan
func BuildPlan(job *config.Job) (*Plan, error) {
	tpl, err := templates.Get(job.Template)
	if err != nil {
		return nil, err
	}

	seq, err := tpl.BuildSequence(job)
	if err != nil {
		return nil, err
	}

	p := &Plan{Job: job, Template: tpl}

	p.Order = job.Order
	if p.Order == "" {
		p.Order = tpl.GetDefaultOrder()
	}
	if p.Order == templates.OrderCountdown {
		seq = seq.Reversed()
	}
	p.Sequence = seq

	cfg := timeline.Config{
		ZoomDuration:  job.ZoomDuration,
		TotalDuration: job.Duration,
		MinimumHold:   job.MinimumHold,
	}
	if tpl.HasScroll() {
		cfg.ScrollDuration = tpl.GetDefaultScroll()
		if job.ScrollDuration != nil {
			cfg.ScrollDuration = *job.ScrollDuration
		}
	} else if job.ScrollDuration != nil && *job.ScrollDuration > 0 {
		p.Notes = append(p.Notes, fmt.Sprintf("%s has no scroll phase, scroll_duration ignored", tpl.GetName()))
	}

	spans, err := explicitSpans(seq)
	if err != nil {
		return nil, err
	}
	if spans != nil {
		p.Timeline, err = timeline.NewExplicit(spans, cfg)
	} else {
		p.Timeline, err = timeline.New(seq.Len(), cfg)
	}
	if err != nil {
		return nil, err
	}

	if p.Overflow, err = timeline.ParseOverflow(job.Overflow); err != nil {
		return nil, err
	}
	if p.Frames, err = p.Timeline.FrameCount(job.FPS, p.Overflow); err != nil {
		return nil, err
	}

	if p.Timeline.Clamped() {
		p.Notes = append(p.Notes, fmt.Sprintf("minimum hold %.2fs stretches %d items to %.2fs (requested %.2fs, overflow %s)",
			job.MinimumHold, seq.Len(), p.Timeline.Duration(), job.Duration, p.Overflow))
	}
	return p, nil
}

// explicitSpans returns per-item intervals in display order when every item
// carries start_time and end_time, nil when none does.
func explicitSpans(seq *timeline.Sequence) ([]timeline.Interval, error) {
	timed := 0
	for _, e := range seq.Entries() {
		if Item(e).HasTiming() {
			timed++
		}
	}
	switch timed {
	case 0:
		return nil, nil
	case seq.Len():
	default:
		return nil, fmt.Errorf("%w: %d of %d items carry start_time/end_time, need all or none",
			timeline.ErrInvalidConfig, timed, seq.Len())
	}

	spans := make([]timeline.Interval, seq.Len())
	for i, e := range seq.Entries() {
		it := Item(e)
		spans[i] = timeline.Interval{Index: i, Start: *it.StartTime, End: *it.EndTime}
	}
	return spans, nil
}

// Item returns the job item carried by a sequence entry.
func Item(e timeline.Entry) config.Item {
	it, _ := e.Item.(config.Item)
	return it
}

// Duration is the rendered length in seconds.
func (p *Plan) Duration() float64 {
	return float64(p.Frames) / float64(p.Job.FPS)
}

// VisualSpecs describes each display position for the renderer. Items
// without a color take their list color on dual templates and a palette
// color otherwise.
func (p *Plan) VisualSpecs() []renderer.VisualSpec {
	specs := make([]renderer.VisualSpec, p.Sequence.Len())
	for i, e := range p.Sequence.Entries() {
		it := Item(e)
		c := it.Color
		if c == "" {
			switch e.List {
			case templates.ListGood:
				c = p.Job.GoodColor
			case templates.ListBad:
				c = p.Job.BadColor
			default:
				c = config.PaletteColor(e.SourceIndex)
			}
		}
		specs[i] = renderer.VisualSpec{
			Label:         it.Label,
			Color:         c,
			ThumbnailPath: it.ThumbnailPath,
			Number:        e.SourceIndex + 1,
		}
	}
	return specs
}
