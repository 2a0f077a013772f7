package noise

import "math"

func clampf(v, lower, upper float64) float64 {
	switch {
	case v < lower:
		return lower
	case v > upper:
		return upper
	default:
		return v
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// sCurve3 is the cubic smoothstep 3t^2 - 2t^3 on [0, 1].
func sCurve3(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// scaleShift folds v to its absolute value, scales it by n and shifts
// the result down by one. Used to remap accumulated octave sums into
// the [-1, 1] range.
func scaleShift(v, n float64) float64 {
	return math.Abs(v)*n - 1.0
}

func dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func dot4(a, b [4]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
