package renderer

import (
	"image"
	"image/color"

	"github.com/ivlev/motiongfx/internal/timeline"
)

// Layout places the overview cards of a template. Slot is called for every
// card on every frame and must be a pure function of its arguments.
type Layout interface {
	// CardSize is the size of an overview card, border included.
	CardSize() image.Point
	// Border is the card border width in the overview.
	Border() int
	// Slot is where display position i sits in the overview for state fs.
	Slot(i int, fs timeline.FrameState) image.Rectangle
	// Bands are labelled stripes drawn behind rows of cards.
	Bands() []Band
}

// Band is a labelled horizontal stripe of the overview.
type Band struct {
	Rect   image.Rectangle
	Label  string
	Color  color.RGBA
	LabelX int
}

// ActiveRect interpolates the active card from its overview slot (zoom 0)
// to the full frame (zoom 1). Size and center move linearly in zoom.
func ActiveRect(slot, frame image.Rectangle, zoom float64) image.Rectangle {
	sw, sh := float64(slot.Dx()), float64(slot.Dy())
	fw, fh := float64(frame.Dx()), float64(frame.Dy())

	sx := float64(slot.Min.X) + sw/2
	sy := float64(slot.Min.Y) + sh/2
	fx := float64(frame.Min.X) + fw/2
	fy := float64(frame.Min.Y) + fh/2

	cw := timeline.Lerp(sw, fw, zoom)
	ch := timeline.Lerp(sh, fh, zoom)
	cx := timeline.Lerp(sx, fx, zoom)
	cy := timeline.Lerp(sy, fy, zoom)

	x1 := int(cx - cw/2)
	y1 := int(cy - ch/2)
	return image.Rect(x1, y1, x1+int(cw), y1+int(ch))
}

// visible reports whether r is on screen or within margin of it.
func visible(r, frame image.Rectangle, margin int) bool {
	return r.Overlaps(frame.Inset(-margin))
}
