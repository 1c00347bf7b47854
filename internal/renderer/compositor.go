package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// Draw thresholds of the two compositing passes.
const (
	overviewMaxZoom   = 0.95 // overview is drawn below this zoom
	skipActiveMinZoom = 0.1  // active card leaves the overview above this
	activeMinZoom     = 0.05 // active card is drawn above this
	badgeMaxZoom      = 0.7  // active badge fades out up to this
	offscreenMargin   = 50
)

// Scene is everything a Compositor needs for one job.
type Scene struct {
	Width, Height int
	Timeline      *timeline.Timeline
	Layout        Layout
	Visuals       []Visual // by display index
	Theme         config.Theme
	Fonts         *FontSet
	Title         string
	Source        string
}

// Compositor draws frames. After NewCompositor it holds only read-only
// state, so Render may be called from many goroutines at once.
type Compositor struct {
	frame    image.Rectangle
	tl       *timeline.Timeline
	layout   Layout
	visuals  []Visual
	bg       *image.RGBA
	title    *image.RGBA
	source   *image.RGBA
	qr       *image.RGBA
	question *image.RGBA
	bands    []*image.RGBA
}

func NewCompositor(s Scene) (*Compositor, error) {
	bg, err := GridBackground(s.Width, s.Height, s.Theme)
	if err != nil {
		return nil, err
	}
	primary, err := config.ParseHexColor(s.Theme.PrimaryText)
	if err != nil {
		return nil, err
	}
	secondary, err := config.ParseHexColor(s.Theme.SecondaryText)
	if err != nil {
		return nil, err
	}

	c := &Compositor{
		frame:   image.Rect(0, 0, s.Width, s.Height),
		tl:      s.Timeline,
		layout:  s.Layout,
		visuals: s.Visuals,
		bg:      bg,
	}

	if s.Title != "" {
		if c.title, err = TextSprite(s.Fonts.Title, 40, s.Title, primary); err != nil {
			return nil, err
		}
	}
	if s.Source != "" {
		if c.source, err = TextSprite(s.Fonts.Body, 15, s.Source, secondary); err != nil {
			return nil, err
		}
		if IsURL(s.Source) {
			if c.qr, err = QRSprite(s.Source, 96, secondary); err != nil {
				return nil, err
			}
		}
	}

	card := s.Layout.CardSize()
	qSize := math.Max(20, math.Min(60, float64(card.Y)/4))
	if c.question, err = TextSprite(s.Fonts.Title, qSize, "?", color.White); err != nil {
		return nil, err
	}
	for _, b := range s.Layout.Bands() {
		sprite, err := TextSprite(s.Fonts.Title, 22, b.Label, b.Color)
		if err != nil {
			return nil, err
		}
		c.bands = append(c.bands, sprite)
	}
	return c, nil
}

// Bounds is the frame rectangle.
func (c *Compositor) Bounds() image.Rectangle {
	return c.frame
}

// Render paints the frame at time t into dst, which must have the frame's
// bounds, and returns the state it drew.
func (c *Compositor) Render(dst *image.RGBA, t float64) timeline.FrameState {
	fs := c.tl.Resolve(t)

	copy(dst.Pix, c.bg.Pix)
	if fs.Zoom < overviewMaxZoom {
		c.drawOverview(dst, fs, t)
	}
	if fs.Zoom > activeMinZoom {
		c.drawActive(dst, fs)
	}
	return fs
}

func (c *Compositor) drawOverview(dst *image.RGBA, fs timeline.FrameState, t float64) {
	oa := 1 - fs.Zoom

	if c.title != nil {
		x := (c.frame.Dx() - c.title.Rect.Dx()) / 2
		DrawAlpha(dst, image.Pt(x, 20), c.title, oa)
	}

	for i, b := range c.layout.Bands() {
		FillRoundedRect(dst, b.Rect, 0, b.Color, oa*0.2)
		y := b.Rect.Min.Y + (b.Rect.Dy()-c.bands[i].Rect.Dy())/2
		DrawAlpha(dst, image.Pt(b.LabelX, y), c.bands[i], oa)
	}

	border := c.layout.Border()
	for i, v := range c.visuals {
		if i == fs.Current && fs.Zoom > skipActiveMinZoom {
			continue
		}
		slot := c.layout.Slot(i, fs)
		if !visible(slot, c.frame, offscreenMargin) {
			continue
		}

		// The item being zoomed into is shown revealed even before its
		// interval starts.
		seen := c.tl.IsVisited(i, t) || i == fs.Current
		ia, ba := oa, oa
		if !seen {
			ia = oa * 0.5
			ba = ia * 0.4
		}
		FillRoundedRect(dst, slot, 5, v.Color, ba)

		inner := slot.Inset(border)
		if inner.Dx() > 10 && inner.Dy() > 10 {
			thumb := v.Thumb
			if !seen {
				thumb = v.Faded
			}
			DrawAlpha(dst, inner.Min, thumb, ia)
		}

		if seen {
			at := image.Pt(slot.Min.X+5, slot.Max.Y-v.Badge.Rect.Dy()-8)
			DrawAlpha(dst, at, v.Badge, math.Min(1, ia+30.0/255))
		} else {
			q := c.question.Rect.Size()
			at := image.Pt(slot.Min.X+(slot.Dx()-q.X)/2, slot.Min.Y+(slot.Dy()-q.Y)/2)
			DrawAlpha(dst, at, c.question, ia*0.5)
		}
	}

	if c.source != nil && oa > 50.0/255 {
		at := image.Pt(c.frame.Dx()-c.source.Rect.Dx()-16, c.frame.Dy()-c.source.Rect.Dy()-8)
		DrawAlpha(dst, at, c.source, math.Min(130.0/255, oa*0.5))
	}
	if c.qr != nil {
		at := image.Pt(16, c.frame.Dy()-c.qr.Rect.Dy()-16)
		DrawAlpha(dst, at, c.qr, oa*0.6)
	}
}

func (c *Compositor) drawActive(dst *image.RGBA, fs timeline.FrameState) {
	v := c.visuals[fs.Current]
	zoom := fs.Zoom

	slot := c.layout.Slot(fs.Current, fs)
	r := ActiveRect(slot, c.frame, zoom)

	border := max(1, int(float64(c.layout.Border())*(1-zoom*0.8)))
	alpha := math.Max(0.05, 1-zoom*0.8)
	radius := int(5 * (1 - zoom*0.9))
	FillRoundedRect(dst, r, radius, v.Color, alpha)

	inner := r.Inset(border)
	if inner.Dx() < 10 || inner.Dy() < 10 {
		inner = image.Rectangle{Min: inner.Min, Max: inner.Min.Add(image.Pt(max(10, inner.Dx()), max(10, inner.Dy())))}
	}
	xdraw.ApproxBiLinear.Scale(dst, inner, v.Full, v.Full.Bounds(), draw.Over, nil)

	if zoom < badgeMaxZoom {
		at := image.Pt(r.Min.X+8, r.Max.Y-v.Badge.Rect.Dy()-6)
		DrawAlpha(dst, at, v.Badge, 1-zoom/badgeMaxZoom)
	}
}
