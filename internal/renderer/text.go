package renderer

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSet holds the parsed typefaces of a theme. Parsed fonts are safe to
// share; faces are not, so text is rasterized into sprites up front and
// frames only composite images.
type FontSet struct {
	Title   *opentype.Font
	Body    *opentype.Font
	Numbers *opentype.Font
}

// LoadFonts resolves theme font names to the bundled Go fonts.
func LoadFonts(title, body, numbers string) (*FontSet, error) {
	t, err := parseFont(title, gobold.TTF)
	if err != nil {
		return nil, err
	}
	b, err := parseFont(body, goregular.TTF)
	if err != nil {
		return nil, err
	}
	n, err := parseFont(numbers, gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &FontSet{Title: t, Body: b, Numbers: n}, nil
}

func parseFont(name string, fallback []byte) (*opentype.Font, error) {
	data := fallback
	switch name {
	case "bold":
		data = gobold.TTF
	case "regular":
		data = goregular.TTF
	case "mono":
		data = gomono.TTF
	}
	return opentype.Parse(data)
}

// TextSprite renders s in a tightly sized transparent image.
func TextSprite(f *opentype.Font, size float64, s string, c color.Color) (*image.RGBA, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	m := face.Metrics()
	w := max(1, font.MeasureString(face, s).Ceil())
	h := max(1, (m.Ascent + m.Descent).Ceil())

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)
	return img, nil
}

// BadgeSprite renders a "#N" style label on a rounded colored plate.
func BadgeSprite(f *opentype.Font, size float64, s string, plate color.RGBA) (*image.RGBA, error) {
	text, err := TextSprite(f, size, s, color.White)
	if err != nil {
		return nil, err
	}
	const padX, padY = 6, 3
	tb := text.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, tb.Dx()+padX*2, tb.Dy()+padY*2))
	FillRoundedRect(img, img.Bounds(), 4, plate, 1)
	draw.Draw(img, tb.Add(image.Pt(padX, padY)), text, image.Point{}, draw.Over)
	return img, nil
}
