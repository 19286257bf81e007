package gamemath

import "math"

// Approach moves value toward target by at most step.
func Approach(value, target, step float64) float64 {
	if value > target {
		return math.Max(target, value-step)
	}
	if value < target {
		return math.Min(target, value+step)
	}
	return value
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SphereGap returns the distance between the surfaces of two spheres of
// radius r centered at (ax, ay) and (bx, by). Negative when they overlap.
func SphereGap(ax, ay, bx, by, r float64) float64 {
	return math.Hypot(bx-ax, by-ay) - 2*r
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b float64) float64 {
	return a + (b-a)/2
}

// HeadingAxis maps a heading in degrees onto the lateral world axis.
func HeadingAxis(degrees float64) float64 {
	return -math.Sin(degrees * math.Pi / 180)
}
