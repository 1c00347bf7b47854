package source

import (
	"image"

	"golang.org/x/image/draw"
)

// CoverRect returns the largest sub-rectangle of b with the aspect ratio
// w:h. It is centered on focus, shifted as needed to stay inside b.
func CoverRect(b image.Rectangle, w, h int, focus image.Point) image.Rectangle {
	if w <= 0 || h <= 0 || b.Empty() {
		return b
	}
	iw, ih := b.Dx(), b.Dy()
	target := float64(w) / float64(h)

	cw, ch := iw, ih
	if float64(iw)/float64(ih) > target {
		cw = int(float64(ih) * target)
	} else {
		ch = int(float64(iw) / target)
	}
	cw = max(cw, 1)
	ch = max(ch, 1)

	x0 := focus.X - cw/2
	y0 := focus.Y - ch/2
	x0 = min(max(x0, b.Min.X), b.Max.X-cw)
	y0 = min(max(y0, b.Min.Y), b.Max.Y-ch)
	return image.Rect(x0, y0, x0+cw, y0+ch)
}

// Cover crops img to the w:h aspect around focus and scales it to w x h.
// A nil focus crops around the center.
func Cover(img image.Image, w, h int, focus *image.Point) *image.RGBA {
	b := img.Bounds()
	center := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	if focus != nil {
		center = *focus
	}
	sr := CoverRect(b, w, h, center)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}
