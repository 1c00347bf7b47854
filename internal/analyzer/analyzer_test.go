package analyzer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientDetector(t *testing.T) {
	// White square on black, placed in the right-bottom quadrant.
	img := image.NewGray(image.Rect(0, 0, 400, 200))
	for y := 120; y < 180; y++ {
		for x := 300; x < 380; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	focus, err := NewGradientDetector().Detect(img)
	require.NoError(t, err)

	t.Logf("focus: %v (confidence %.2f)", focus.Point, focus.Confidence)
	assert.InDelta(t, 340, focus.Point.X, 12)
	assert.InDelta(t, 150, focus.Point.Y, 12)
	assert.Greater(t, focus.Confidence, 0.0)
}

func TestGradientDetectorFlatImage(t *testing.T) {
	img := image.NewGray(image.Rect(10, 10, 110, 60))

	focus, err := NewGradientDetector().Detect(img)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(60, 35), focus.Point)
	assert.Zero(t, focus.Confidence)
}

func TestGradientDetectorEmpty(t *testing.T) {
	_, err := NewGradientDetector().Detect(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}

func TestDetectorRegistry(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"gradient", false},
		{"center", false},
		{"", false}, // default
		{"ocr", true},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			detector, err := NewDetector(tt.variant)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, detector)
		})
	}
}
