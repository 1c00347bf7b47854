package renderer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ivlev/motiongfx/internal/config"
)

const (
	subGridSpacing  = 40
	mainGridSpacing = 200
)

// GridBackground renders the blueprint background: theme color, a faint
// 40px grid and a brighter 200px grid on top.
func GridBackground(w, h int, theme config.Theme) (*image.RGBA, error) {
	bg, err := config.ParseHexColor(theme.Background)
	if err != nil {
		return nil, err
	}
	grid, err := config.ParseHexColor(theme.GridColor)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	mainA := min(255, int(theme.GridOpacity*255*1.8))
	subA := min(255, int(theme.GridOpacity*255*0.8))

	sub := color.NRGBA{R: grid.R, G: grid.G, B: grid.B, A: uint8(subA)}
	gridLines(img, subGridSpacing, sub)

	bright := color.NRGBA{
		R: uint8(min(255, int(grid.R)+30)),
		G: uint8(min(255, int(grid.G)+30)),
		B: uint8(min(255, int(grid.B)+30)),
		A: uint8(min(255, mainA+40)),
	}
	gridLines(img, mainGridSpacing, bright)
	return img, nil
}

func gridLines(img *image.RGBA, spacing int, c color.NRGBA) {
	b := img.Bounds()
	src := image.NewUniform(c)
	for x := b.Min.X; x < b.Max.X; x += spacing {
		draw.Draw(img, image.Rect(x, b.Min.Y, x+1, b.Max.Y), src, image.Point{}, draw.Over)
	}
	for y := b.Min.Y; y < b.Max.Y; y += spacing {
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), src, image.Point{}, draw.Over)
	}
}
