package renderer

import (
	"image"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ivlev/motiongfx/internal/effects"
)

// IsURL reports whether a source line should get a QR code.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// QRSprite encodes content as a light-on-transparent QR code of size px.
func QRSprite(content string, size int, fg color.RGBA) (*image.RGBA, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	q.ForegroundColor = fg
	q.BackgroundColor = color.Transparent
	return effects.ToRGBA(q.Image(size)), nil
}
