package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/sirupsen/logrus"

	"github.com/ivlev/motiongfx/internal/analyzer"
	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/effects"
	"github.com/ivlev/motiongfx/internal/source"
)

// Visual is the pre-rendered look of one sequence entry. Visuals are built
// once per job and only read while frames render.
type Visual struct {
	Color  color.RGBA
	Label  string
	Number int
	Thumb  *image.RGBA // overview card interior
	Faded  *image.RGBA // Thumb darkened and blurred
	Full   *image.RGBA // full frame interior
	Badge  *image.RGBA
}

// VisualSpec is what a job says about one item.
type VisualSpec struct {
	Label         string
	Color         string
	ThumbnailPath string
	Number        int
}

// Preparer turns VisualSpecs into Visuals for one layout and frame size.
type Preparer struct {
	Fonts     *FontSet
	Detector  analyzer.Detector // nil crops around the center
	Log       logrus.FieldLogger
	Card      image.Point // overview interior size
	Frame     image.Point // full frame interior size
	BadgeSize float64
}

func (p *Preparer) Prepare(spec VisualSpec) (Visual, error) {
	c, err := config.ParseHexColor(spec.Color)
	if err != nil {
		return Visual{}, err
	}

	v := Visual{Color: c, Label: spec.Label, Number: spec.Number}
	v.Badge, err = BadgeSprite(p.Fonts.Numbers, p.BadgeSize, fmt.Sprintf("#%d", spec.Number), c)
	if err != nil {
		return Visual{}, err
	}

	img := p.load(spec.ThumbnailPath)
	if img != nil {
		var focus *image.Point
		if p.Detector != nil {
			if f, err := p.Detector.Detect(img); err == nil {
				focus = &f.Point
			}
		}
		v.Thumb = source.Cover(img, p.Card.X, p.Card.Y, focus)
		v.Full = source.Cover(img, p.Frame.X, p.Frame.Y, focus)
	} else {
		if v.Thumb, err = p.placeholder(p.Card, c, fmt.Sprintf("#%d", spec.Number)); err != nil {
			return Visual{}, err
		}
		if v.Full, err = p.placeholder(p.Frame, c, spec.Label); err != nil {
			return Visual{}, err
		}
	}
	v.Faded = effects.Faded(v.Thumb)
	return v, nil
}

func (p *Preparer) load(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := source.Load(path)
	if err != nil {
		if p.Log != nil {
			p.Log.WithError(err).WithField("thumbnail", path).Warn("thumbnail unavailable, using placeholder")
		}
		return nil
	}
	return img
}

// placeholder is a tinted card with text centered on it.
func (p *Preparer) placeholder(size image.Point, c color.RGBA, text string) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rectangle{Max: size})
	tint := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 35}
	draw.Draw(img, img.Bounds(), image.NewUniform(tint), image.Point{}, draw.Src)
	if text == "" {
		return img, nil
	}

	fontSize := float64(min(size.X, size.Y)) / 2
	if len([]rune(text)) > 4 {
		fontSize = float64(min(size.X, size.Y)) / 6
	}
	sprite, err := TextSprite(p.Fonts.Numbers, fontSize, text, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 120})
	if err != nil {
		return nil, err
	}
	sb := sprite.Bounds()
	at := image.Pt((size.X-sb.Dx())/2, (size.Y-sb.Dy())/2)
	draw.Draw(img, sb.Add(at), sprite, image.Point{}, draw.Over)
	return img, nil
}
