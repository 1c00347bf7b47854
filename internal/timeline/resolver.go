package timeline

import "math"

// Phase is one state of the per-item reveal state machine.
type Phase int

const (
	PhaseZoomInFirst Phase = iota
	PhaseHold
	PhaseZoomOut
	PhaseScroll
	PhaseZoomIn
)

var phaseNames = [...]string{
	PhaseZoomInFirst: "zoom_in_first",
	PhaseHold:        "hold",
	PhaseZoomOut:     "zoom_out",
	PhaseScroll:      "scroll",
	PhaseZoomIn:      "zoom_in",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in temporal order.
func Phases() []Phase {
	return []Phase{PhaseZoomInFirst, PhaseHold, PhaseZoomOut, PhaseScroll, PhaseZoomIn}
}

// FrameState is what the compositor needs to draw one frame.
//
// Current is the item owning the frame: the item whose interval contains t,
// except during ZoomIn where it is already the destination. During Scroll it
// is the departing item and Next the arriving one. ScrollFrom/ScrollTo are
// the overview positions the viewport interpolates between by
// ScrollFraction; outside Scroll both equal Current.
type FrameState struct {
	Current        int
	Next           int
	Phase          Phase
	Zoom           float64
	ScrollFrom     int
	ScrollTo       int
	ScrollFraction float64
}

// Boundaries are the absolute phase edges of one item's interval.
type Boundaries struct {
	Start      float64 `yaml:"start"`
	ZoomInEnd  float64 `yaml:"zoom_in_end"`
	HoldEnd    float64 `yaml:"hold_end"`
	ZoomOutEnd float64 `yaml:"zoom_out_end"`
	ScrollEnd  float64 `yaml:"scroll_end"`
	End        float64 `yaml:"end"`
	Terminal   bool    `yaml:"terminal"`
}

// Boundaries returns the phase table of display position i. Only the first
// item has a leading zoom in; for the others ZoomInEnd equals Start because
// their zoom in ran at the tail of the previous interval. The last item has
// no outgoing transition, so HoldEnd..End collapse onto End.
func (tl *Timeline) Boundaries(i int) Boundaries {
	iv := tl.intervals[i]
	z, s := tl.cfg.ZoomDuration, tl.cfg.ScrollDuration

	b := Boundaries{Start: iv.Start, ZoomInEnd: iv.Start, End: iv.End}
	if i == 0 {
		b.ZoomInEnd = iv.Start + z
	}
	if i == len(tl.intervals)-1 {
		b.HoldEnd, b.ZoomOutEnd, b.ScrollEnd = iv.End, iv.End, iv.End
		b.Terminal = true
		return b
	}
	b.HoldEnd = iv.End - 2*z - s
	b.ZoomOutEnd = iv.End - z - s
	b.ScrollEnd = iv.End - z
	return b
}

// Resolve returns the frame state at time t (seconds). It is a pure
// function of t and the immutable timeline, so frames can be resolved in any
// order and from any goroutine. Negative times resolve as t=0.
func (tl *Timeline) Resolve(t float64) FrameState {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}

	i := tl.locate(t)
	last := len(tl.intervals) - 1
	next := i
	if i < last {
		next = i + 1
	}
	b := tl.Boundaries(i)
	z, s := tl.cfg.ZoomDuration, tl.cfg.ScrollDuration

	fs := FrameState{
		Current:    i,
		Next:       next,
		Phase:      PhaseHold,
		Zoom:       1.0,
		ScrollFrom: i,
		ScrollTo:   i,
	}

	switch {
	case i == 0 && !reached(t, b.ZoomInEnd):
		fs.Phase = PhaseZoomInFirst
		fs.Zoom = EaseInOutCubic((t - b.Start) / z)
	case b.Terminal || !reached(t, b.HoldEnd):
		// hold, including the terminal absorption of the last item
	case !reached(t, b.ZoomOutEnd):
		fs.Phase = PhaseZoomOut
		fs.Zoom = 1 - EaseInOutCubic(progress(t, b.HoldEnd, z))
	case !reached(t, b.ScrollEnd):
		fs.Phase = PhaseScroll
		fs.Zoom = 0
		fs.ScrollTo = next
		fs.ScrollFraction = EaseInOutCubic(progress(t, b.ZoomOutEnd, s))
	default:
		fs.Phase = PhaseZoomIn
		fs.Current = next
		fs.ScrollFrom, fs.ScrollTo = next, next
		fs.Zoom = EaseInOutCubic(progress(t, b.ScrollEnd, z))
	}
	return fs
}

// progress is the normalized position of t inside [from, from+d).
func progress(t, from, d float64) float64 {
	if d <= 0 {
		return 1
	}
	return clamp01((t - from) / d)
}
