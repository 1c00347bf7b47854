package effects

import (
	"image"
	"image/draw"
)

// FadedBrightness and FadedBlurRadius describe how an unrevealed item
// looks in the overview.
const (
	FadedBrightness = 0.15
	FadedBlurRadius = 3
)

// Faded returns the darkened, blurred variant of img used for items
// that have not been revealed yet.
func Faded(img image.Image) *image.RGBA {
	return Blur(Darken(img, FadedBrightness), FadedBlurRadius)
}

// Darken scales the color channels of img by factor; alpha is kept.
func Darken(img image.Image, factor float64) *image.RGBA {
	out := ToRGBA(img)
	if out == img {
		out = clone(out)
	}
	if factor < 0 {
		factor = 0
	}
	f := uint32(factor * 256)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = scale8(out.Pix[i+0], f)
		out.Pix[i+1] = scale8(out.Pix[i+1], f)
		out.Pix[i+2] = scale8(out.Pix[i+2], f)
	}
	return out
}

// Blur approximates a gaussian blur of the given radius with three box
// blur passes in each direction.
func Blur(img *image.RGBA, radius int) *image.RGBA {
	if radius <= 0 {
		return clone(img)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src := clone(img)
	tmp := image.NewRGBA(src.Rect)

	for pass := 0; pass < 3; pass++ {
		boxH(src.Pix, tmp.Pix, w, h, src.Stride, radius)
		boxV(tmp.Pix, src.Pix, w, h, src.Stride, radius)
	}
	return src
}

// ToRGBA returns img itself when it is already a zero-origin RGBA, or a
// converted copy otherwise.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	draw.Draw(out, out.Bounds(), img, img.Rect.Min, draw.Src)
	return out
}

func scale8(v uint8, f uint32) uint8 {
	r := uint32(v) * f >> 8
	if r > 255 {
		r = 255
	}
	return uint8(r)
}

func boxH(src, dst []uint8, w, h, stride, r int) {
	div := uint32(2*r + 1)
	for y := 0; y < h; y++ {
		row := y * stride
		for c := 0; c < 4; c++ {
			var acc uint32
			for k := -r; k <= r; k++ {
				x := min(max(k, 0), w-1)
				acc += uint32(src[row+x*4+c])
			}
			for x := 0; x < w; x++ {
				dst[row+x*4+c] = uint8(acc / div)
				out := min(max(x-r, 0), w-1)
				in := min(max(x+r+1, 0), w-1)
				acc += uint32(src[row+in*4+c])
				acc -= uint32(src[row+out*4+c])
			}
		}
	}
}

func boxV(src, dst []uint8, w, h, stride, r int) {
	div := uint32(2*r + 1)
	for x := 0; x < w; x++ {
		for c := 0; c < 4; c++ {
			var acc uint32
			for k := -r; k <= r; k++ {
				y := min(max(k, 0), h-1)
				acc += uint32(src[y*stride+x*4+c])
			}
			for y := 0; y < h; y++ {
				dst[y*stride+x*4+c] = uint8(acc / div)
				out := min(max(y-r, 0), h-1)
				in := min(max(y+r+1, 0), h-1)
				acc += uint32(src[in*stride+x*4+c])
				acc -= uint32(src[out*stride+x*4+c])
			}
		}
	}
}
