package analyzer

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// GradientDetector places the focus on the centroid of edge energy,
// measured with a Sobel operator on a downscaled grayscale copy.
type GradientDetector struct {
	SampleWidth   int     // Width of the analysis copy in pixels
	EdgeThreshold float64 // Gradient magnitudes below this are ignored
}

// NewGradientDetector creates a gradient detector with default settings
func NewGradientDetector() *GradientDetector {
	return &GradientDetector{
		SampleWidth:   160,
		EdgeThreshold: 30.0,
	}
}

// Detect returns the weighted centroid of strong gradients. Flat images
// fall back to the center with zero confidence.
func (d *GradientDetector) Detect(img image.Image) (Focus, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return Focus{}, fmt.Errorf("empty image")
	}

	gray, scale := d.sample(img)
	mag := sobelMagnitude(gray)

	gb := gray.Bounds()
	var sum, sx, sy float64
	for y := gb.Min.Y; y < gb.Max.Y; y++ {
		for x := gb.Min.X; x < gb.Max.X; x++ {
			m := mag[(y-gb.Min.Y)*gb.Dx()+(x-gb.Min.X)]
			if m <= d.EdgeThreshold {
				continue
			}
			sum += m
			sx += m * float64(x)
			sy += m * float64(y)
		}
	}

	if sum == 0 {
		return CenterDetector{}.Detect(img)
	}

	cx := bounds.Min.X + int(math.Round(sx/sum/scale))
	cy := bounds.Min.Y + int(math.Round(sy/sum/scale))
	cx = min(max(cx, bounds.Min.X), bounds.Max.X-1)
	cy = min(max(cy, bounds.Min.Y), bounds.Max.Y-1)

	// Share of pixels that carry edges, saturating at a quarter of the frame.
	coverage := 0.0
	for _, m := range mag {
		if m > d.EdgeThreshold {
			coverage++
		}
	}
	coverage /= float64(len(mag))

	return Focus{
		Point:      image.Pt(cx, cy),
		Confidence: math.Min(1.0, coverage*4),
	}, nil
}

// sample converts the image to grayscale at SampleWidth and returns the
// applied scale factor.
func (d *GradientDetector) sample(img image.Image) (*image.Gray, float64) {
	b := img.Bounds()
	scale := 1.0
	w, h := b.Dx(), b.Dy()
	if d.SampleWidth > 0 && w > d.SampleWidth {
		scale = float64(d.SampleWidth) / float64(w)
		w = d.SampleWidth
		h = max(1, int(float64(h)*scale))
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)
	return gray, scale
}

// sobelMagnitude returns gradient magnitudes in row-major order; the
// one pixel border stays zero.
func sobelMagnitude(gray *image.Gray) []float64 {
	bounds := gray.Bounds()
	w := bounds.Dx()
	out := make([]float64, w*bounds.Dy())

	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * float64(gx[ky+1][kx+1])
					sumY += pixel * float64(gy[ky+1][kx+1])
				}
			}
			out[(y-bounds.Min.Y)*w+(x-bounds.Min.X)] = math.Sqrt(sumX*sumX + sumY*sumY)
		}
	}
	return out
}

