package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/vector"
)

type maskKey struct {
	w, h, radius int
}

// maxCachedMasks bounds the cache; the overview card sizes are the first
// ones drawn and stay cached, zoom frames past the limit rasterize fresh.
const maxCachedMasks = 32

var maskCache = struct {
	sync.RWMutex
	m map[maskKey]*image.Alpha
}{m: make(map[maskKey]*image.Alpha)}

// roundedMask returns an anti-aliased rounded rectangle coverage mask.
// The returned image is read-only.
func roundedMask(w, h, radius int) *image.Alpha {
	key := maskKey{w, h, radius}
	maskCache.RLock()
	m, ok := maskCache.m[key]
	maskCache.RUnlock()
	if ok {
		return m
	}

	fw, fh := float32(w), float32(h)
	r := float32(min(radius, w/2, h/2))

	z := vector.NewRasterizer(w, h)
	z.MoveTo(r, 0)
	z.LineTo(fw-r, 0)
	z.QuadTo(fw, 0, fw, r)
	z.LineTo(fw, fh-r)
	z.QuadTo(fw, fh, fw-r, fh)
	z.LineTo(r, fh)
	z.QuadTo(0, fh, 0, fh-r)
	z.LineTo(0, r)
	z.QuadTo(0, 0, r, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	maskCache.Lock()
	if len(maskCache.m) < maxCachedMasks {
		maskCache.m[key] = mask
	}
	maskCache.Unlock()
	return mask
}

// FillRoundedRect paints r in c at opacity alpha (0..1). r may extend past
// dst; it is clipped.
func FillRoundedRect(dst draw.Image, r image.Rectangle, radius int, c color.RGBA, alpha float64) {
	if r.Empty() || alpha <= 0 {
		return
	}
	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha8(alpha * float64(c.A) / 255)})
	if radius <= 0 {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		return
	}
	mask := roundedMask(r.Dx(), r.Dy(), radius)
	draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// DrawAlpha composites img at p with opacity alpha (0..1).
func DrawAlpha(dst draw.Image, p image.Point, img image.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	b := img.Bounds()
	r := image.Rectangle{Min: p, Max: p.Add(b.Size())}
	if alpha >= 1 {
		draw.Draw(dst, r, img, b.Min, draw.Over)
		return
	}
	draw.DrawMask(dst, r, img, b.Min, image.NewUniform(color.Alpha{A: alpha8(alpha)}), image.Point{}, draw.Over)
}

// alpha8 converts an opacity in 0..1 to 0..255.
func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}
