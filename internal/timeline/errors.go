package timeline

import "errors"

var (
	// ErrEmptySequence is returned when no items were supplied.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrDurationTooShort is returned by the strict overflow policy when the
	// minimum hold forces the timeline past the requested duration.
	ErrDurationTooShort = errors.New("duration too short for minimum hold")
	// ErrInvalidConfig wraps every TimelineConfig validation failure.
	ErrInvalidConfig = errors.New("invalid timeline config")
	// ErrNonContiguous is returned for explicit intervals that do not tile.
	ErrNonContiguous = errors.New("intervals are not contiguous")
)
