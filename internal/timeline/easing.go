package timeline

// EaseOutCubic decelerates towards 1. x is clamped to [0,1].
func EaseOutCubic(x float64) float64 {
	x = clamp01(x)
	return 1 - pow(1-x, 3)
}

// EaseInOutCubic accelerates up to x=0.5 and decelerates after it.
// x is clamped to [0,1].
func EaseInOutCubic(x float64) float64 {
	x = clamp01(x)
	if x < 0.5 {
		return 4 * x * x * x
	}
	return 1 - pow(-2*x+2, 3)/2
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
