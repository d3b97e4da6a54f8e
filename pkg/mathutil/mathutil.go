// Package mathutil holds the small numeric helpers shared by the track
// builder, the simulation and the renderer. Nothing in here keeps state.
package mathutil

import (
	"math"
	"math/rand"
)

// Limit clamps value into [min, max].
func Limit(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}

// Accelerate integrates a velocity by accel over dt seconds.
func Accelerate(v, accel, dt float64) float64 {
	return v + accel*dt
}

// Interpolate returns the linear blend of a and b at percent.
func Interpolate(a, b, percent float64) float64 {
	return a + (b-a)*percent
}

// EaseIn is a quadratic ease starting slow.
func EaseIn(a, b, percent float64) float64 {
	return a + (b-a)*math.Pow(percent, 2)
}

// EaseOut is a quadratic ease ending slow.
func EaseOut(a, b, percent float64) float64 {
	return a + (b-a)*(1-math.Pow(1-percent, 2))
}

// EaseInOut is the cosine smoothstep, flat at both ends.
func EaseInOut(a, b, percent float64) float64 {
	return a + (b-a)*((-math.Cos(percent*math.Pi)/2)+0.5)
}

// ExponentialFog returns the visibility (1 = clear, towards 0 = fogged) of
// something at the given normalised distance.
func ExponentialFog(distance, density float64) float64 {
	return 1 / math.Pow(math.E, distance*distance*density)
}

// Increase adds increment to start and wraps the result into [0, max).
// max must be positive.
func Increase(start, increment, max float64) float64 {
	result := math.Mod(start+increment, max)
	if result < 0 {
		result += max
	}
	// -0 and the rounding case where result+max == max
	if result >= max {
		result = 0
	}
	return result
}

// Delta is the shortest signed distance from a to b around a loop of the
// given length, in [-length/2, length/2).
func Delta(a, b, length float64) float64 {
	return Increase(b-a, length/2, length) - length/2
}

// PercentRemaining is the fractional position of n inside its current
// total-sized bucket, always in [0, 1).
func PercentRemaining(n, total float64) float64 {
	return Increase(n, 0, total) / total
}

// Overlap reports whether two boxes of widths w1 and w2 centred on x1 and x2
// intersect once both widths are scaled by percent. A non-positive percent
// means 1.
func Overlap(x1, w1, x2, w2, percent float64) bool {
	if percent <= 0 {
		percent = 1
	}
	half := percent / 2
	min1 := x1 - w1*half
	max1 := x1 + w1*half
	min2 := x2 - w2*half
	max2 := x2 + w2*half
	return max1 >= min2 && min1 <= max2
}

// RandomInt returns an integer in [min, max] using rng.
func RandomInt(rng *rand.Rand, min, max int) int {
	return int(math.Round(Interpolate(float64(min), float64(max), rng.Float64())))
}

// RandomChoice picks one element of options. options must not be empty.
func RandomChoice[T any](rng *rand.Rand, options []T) T {
	return options[RandomInt(rng, 0, len(options)-1)]
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
