package random

import "math"

// Number returns a uniform integer in the inclusive range [min, max].
// If the bounds arrive reversed they are swapped.
func (r *Rand) Number(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.intn(max-min+1)
}

// Int returns a uniform integer in [0, max). A non-positive max yields 0.
func (r *Rand) Int(max int) int {
	if max <= 0 {
		return 0
	}
	return r.intn(max)
}

// Float returns a uniform float in [min, max) rounded to the given number
// of decimal places.
func (r *Rand) Float(min, max float64, decimals int) float64 {
	if max < min {
		min, max = max, min
	}
	v := min + r.float64()*(max-min)
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// Boolean returns true with the given probability (default 0.5).
func (r *Rand) Boolean(probability ...float64) bool {
	p := 0.5
	if len(probability) > 0 {
		p = probability[0]
	}
	return r.float64() < p
}

// Number returns a uniform integer in [min, max] from the default source.
func Number(min, max int) int { return Default().Number(min, max) }

// Int returns a uniform integer in [0, max) from the default source.
func Int(max int) int { return Default().Int(max) }

// Float returns a rounded uniform float in [min, max) from the default source.
func Float(min, max float64, decimals int) float64 { return Default().Float(min, max, decimals) }

// Boolean returns true with the given probability (default 0.5) from the
// default source.
func Boolean(probability ...float64) bool { return Default().Boolean(probability...) }
