package effects

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDarken(t *testing.T) {
	src := solid(4, 4, color.RGBA{200, 100, 40, 255})
	out := Darken(src, 0.5)

	assert.Equal(t, color.RGBA{100, 50, 20, 255}, out.RGBAAt(1, 1))
	// Source is untouched.
	assert.Equal(t, color.RGBA{200, 100, 40, 255}, src.RGBAAt(1, 1))
}

func TestBlurKeepsFlatImage(t *testing.T) {
	src := solid(16, 9, color.RGBA{80, 80, 80, 255})
	out := Blur(src, 3)
	assert.Equal(t, src.Pix, out.Pix)
}

func TestBlurSpreadsEdge(t *testing.T) {
	src := solid(20, 1, color.RGBA{0, 0, 0, 255})
	for x := 10; x < 20; x++ {
		src.SetRGBA(x, 0, color.RGBA{255, 255, 255, 255})
	}

	out := Blur(src, 2)
	left := out.RGBAAt(9, 0).R
	right := out.RGBAAt(10, 0).R
	assert.Greater(t, left, uint8(0))
	assert.Less(t, right, uint8(255))
	assert.Equal(t, uint8(0), out.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), out.RGBAAt(19, 0).R)
}

func TestFaded(t *testing.T) {
	src := solid(32, 18, color.RGBA{255, 255, 255, 255})
	out := Faded(src)
	require.Equal(t, src.Bounds(), out.Bounds())

	px := out.RGBAAt(16, 9)
	assert.InDelta(t, 38, int(px.R), 2)
	assert.Equal(t, uint8(255), px.A)
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 10, 10))
	src.SetRGBA(5, 5, color.RGBA{1, 2, 3, 255})

	out := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 5, 5), out.Bounds())
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, out.RGBAAt(0, 0))
}
