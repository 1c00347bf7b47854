package analyzer

import "image"

// Focus is the point of interest of an image, in image coordinates.
type Focus struct {
	Point      image.Point
	Confidence float64 // 0.0-1.0
}

// Detector finds where the interesting part of a thumbnail is, so a
// cover crop can keep it in frame.
type Detector interface {
	Detect(img image.Image) (Focus, error)
}

// CenterDetector always answers the middle of the image.
type CenterDetector struct{}

func (CenterDetector) Detect(img image.Image) (Focus, error) {
	b := img.Bounds()
	return Focus{
		Point: image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2),
	}, nil
}
