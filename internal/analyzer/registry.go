package analyzer

import "fmt"

// NewDetector creates a detector based on the specified variant
func NewDetector(variant string) (Detector, error) {
	switch variant {
	case "gradient":
		return NewGradientDetector(), nil
	case "center", "":
		return CenterDetector{}, nil
	default:
		return nil, fmt.Errorf("unknown focus detector: %s", variant)
	}
}
