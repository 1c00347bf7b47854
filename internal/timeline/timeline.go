// Package timeline maps a render time to what is on screen: which item,
// how far it is zoomed in, whether the overview is scrolling and which
// items have already been revealed. Everything here is computed once per
// job and then queried as pure functions of time.
package timeline

import (
	"fmt"
	"math"
	"sort"
)

// boundaryEpsilon absorbs float drift of frame times such as frame/fps
// landing a hair before a phase boundary.
const boundaryEpsilon = 1e-9

// Config holds the phase durations of a job, in seconds.
// ScrollDuration is zero for layouts without a scroll phase.
type Config struct {
	ZoomDuration   float64 `yaml:"zoom_duration"`
	ScrollDuration float64 `yaml:"scroll_duration"`
	TotalDuration  float64 `yaml:"total_duration"`
	MinimumHold    float64 `yaml:"minimum_hold"`
}

func (c Config) Validate() error {
	switch {
	case !(c.ZoomDuration > 0):
		return fmt.Errorf("%w: zoom duration must be positive, got %v", ErrInvalidConfig, c.ZoomDuration)
	case c.ScrollDuration < 0 || math.IsNaN(c.ScrollDuration):
		return fmt.Errorf("%w: scroll duration must not be negative, got %v", ErrInvalidConfig, c.ScrollDuration)
	case !(c.TotalDuration > 0):
		return fmt.Errorf("%w: total duration must be positive, got %v", ErrInvalidConfig, c.TotalDuration)
	case !(c.MinimumHold > 0):
		return fmt.Errorf("%w: minimum hold must be positive, got %v", ErrInvalidConfig, c.MinimumHold)
	}
	return nil
}

// TransitionTotal is the fixed cost of one item-to-item transition:
// zoom out, scroll (if any), zoom in.
func (c Config) TransitionTotal() float64 {
	return 2*c.ZoomDuration + c.ScrollDuration
}

// Interval is the time span owned by one display position.
type Interval struct {
	Index int     `yaml:"index"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Timeline is the read-only interval table of a render job.
type Timeline struct {
	cfg       Config
	intervals []Interval
	hold      float64
	clamped   bool
}

// New allocates equal intervals for n items so that they tile
// cfg.TotalDuration, unless the minimum hold floor forces them longer.
func New(n int, cfg Config) (*Timeline, error) {
	if n <= 0 {
		return nil, ErrEmptySequence
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transition := cfg.TransitionTotal()
	raw := (cfg.TotalDuration - transition*float64(n)) / float64(n)
	hold := math.Max(cfg.MinimumHold, raw)
	length := hold + transition

	intervals := make([]Interval, n)
	for i := range intervals {
		intervals[i] = Interval{
			Index: i,
			Start: float64(i) * length,
			End:   float64(i+1) * length,
		}
	}

	return &Timeline{
		cfg:       cfg,
		intervals: intervals,
		hold:      hold,
		clamped:   raw < cfg.MinimumHold,
	}, nil
}

// NewExplicit uses caller supplied intervals, e.g. timings coming from an
// orchestrator. They must start at 0, tile without gaps and leave room for
// the transitions. cfg.TotalDuration is replaced by the end of the last one.
func NewExplicit(spans []Interval, cfg Config) (*Timeline, error) {
	if len(spans) == 0 {
		return nil, ErrEmptySequence
	}
	last := spans[len(spans)-1]
	cfg.TotalDuration = last.End
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transition := cfg.TransitionTotal()
	intervals := make([]Interval, len(spans))
	prevEnd := 0.0
	for i, sp := range spans {
		if math.Abs(sp.Start-prevEnd) > boundaryEpsilon {
			return nil, fmt.Errorf("%w: item %d starts at %.3fs, previous ends at %.3fs", ErrNonContiguous, i, sp.Start, prevEnd)
		}
		need := transition
		if i == len(spans)-1 {
			need = 0
		}
		if i == 0 {
			need += cfg.ZoomDuration
		}
		if !(sp.Length() > 0) || sp.Length() < need {
			return nil, fmt.Errorf("%w: item %d lasts %.3fs, transitions need %.3fs", ErrInvalidConfig, i, sp.Length(), need)
		}
		intervals[i] = Interval{Index: i, Start: prevEnd, End: sp.End}
		prevEnd = sp.End
	}

	return &Timeline{cfg: cfg, intervals: intervals, hold: -1}, nil
}

func (tl *Timeline) Config() Config {
	return tl.cfg
}

func (tl *Timeline) Len() int {
	return len(tl.intervals)
}

// Interval returns the span of display position i.
func (tl *Timeline) Interval(i int) Interval {
	return tl.intervals[i]
}

// Intervals returns a copy of the interval table.
func (tl *Timeline) Intervals() []Interval {
	out := make([]Interval, len(tl.intervals))
	copy(out, tl.intervals)
	return out
}

// Hold is the allocated hold time per item, or -1 for explicit timelines.
func (tl *Timeline) Hold() float64 {
	return tl.hold
}

// Duration is the true tiled length of the timeline.
func (tl *Timeline) Duration() float64 {
	return tl.intervals[len(tl.intervals)-1].End
}

// Clamped reports whether the minimum hold pushed Duration past the
// requested total.
func (tl *Timeline) Clamped() bool {
	return tl.clamped
}

// locate returns the display position whose interval contains t.
func (tl *Timeline) locate(t float64) int {
	// first interval that has not started yet
	i := sort.Search(len(tl.intervals), func(i int) bool {
		return !reached(t, tl.intervals[i].Start)
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

func reached(t, boundary float64) bool {
	return t >= boundary-boundaryEpsilon
}
