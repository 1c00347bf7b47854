package renderer

import (
	"image"
	"math"

	"github.com/ivlev/motiongfx/internal/timeline"
)

// StripLayout is the horizontal film strip of listicle_scroll. Cards sit
// in source order; the strip slides so that the focused card is centered.
type StripLayout struct {
	card    image.Point
	spacing float64
	centerY int
	width   int
	pos     []int // strip position of each display index
}

func NewStripLayout(seq *timeline.Sequence, width, height int, title bool) *StripLayout {
	cardW := int(math.Round(float64(width) * 420 / 1920))
	cardH := cardW * 9 / 16
	gap := max(4, cardW*20/420)

	centerY := height / 2
	if title {
		centerY += 25
	}

	pos := make([]int, seq.Len())
	for i := range pos {
		pos[i] = seq.At(i).SourceIndex
	}

	return &StripLayout{
		card:    image.Pt(cardW, cardH),
		spacing: float64(cardW + gap),
		centerY: centerY,
		width:   width,
		pos:     pos,
	}
}

func (s *StripLayout) CardSize() image.Point { return s.card }
func (s *StripLayout) Border() int           { return 8 }
func (s *StripLayout) Bands() []Band         { return nil }

// Offset is the x of strip position 0 for state fs.
func (s *StripLayout) Offset(fs timeline.FrameState) float64 {
	from := float64(s.pos[fs.ScrollFrom]) * s.spacing
	to := float64(s.pos[fs.ScrollTo]) * s.spacing
	center := timeline.Lerp(from, to, fs.ScrollFraction)
	return float64(s.width)/2 - float64(s.card.X)/2 - center
}

func (s *StripLayout) Slot(i int, fs timeline.FrameState) image.Rectangle {
	x := int(s.Offset(fs) + float64(s.pos[i])*s.spacing)
	y := s.centerY - s.card.Y/2
	return image.Rect(x, y, x+s.card.X, y+s.card.Y)
}
