package timeline

import (
	"fmt"
	"math"
)

// Overflow decides what happens when the minimum hold makes the timeline
// longer than the requested duration.
type Overflow string

const (
	// OverflowExtend renders the whole tiled timeline.
	OverflowExtend Overflow = "extend"
	// OverflowTruncate renders the requested duration and cuts the tail of
	// the last item.
	OverflowTruncate Overflow = "truncate"
	// OverflowStrict refuses to render with ErrDurationTooShort.
	OverflowStrict Overflow = "strict"
)

// ParseOverflow maps a config string to a policy. Empty means extend.
func ParseOverflow(s string) (Overflow, error) {
	switch Overflow(s) {
	case "", OverflowExtend:
		return OverflowExtend, nil
	case OverflowTruncate, OverflowStrict:
		return Overflow(s), nil
	}
	return "", fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidConfig, s)
}

// FrameCount returns how many frames to render at fps under policy p.
func (tl *Timeline) FrameCount(fps int, p Overflow) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, fps)
	}
	nominal := int(math.Round(float64(fps) * tl.cfg.TotalDuration))

	switch p {
	case OverflowTruncate:
		return nominal, nil
	case OverflowStrict:
		if tl.clamped {
			return 0, fmt.Errorf("%w: %d items need %.2fs, %.2fs requested",
				ErrDurationTooShort, tl.Len(), tl.Duration(), tl.cfg.TotalDuration)
		}
		return nominal, nil
	case OverflowExtend, "":
		full := int(math.Round(float64(fps) * tl.Duration()))
		return max(nominal, full), nil
	}
	return 0, fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidConfig, p)
}

// FrameTime is the timeline time of frame index f.
func FrameTime(f, fps int) float64 {
	return float64(f) / float64(fps)
}
