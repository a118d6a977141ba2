package risk

import "math"

// clamp limits v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func percent(v float64) float64 {
	return round1(clamp(v, 0, 100))
}

// outside returns how far v lies outside [lo, hi] relative to the range width.
func outside(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	width := hi - lo
	switch {
	case v < lo:
		return (lo - v) / width
	case v > hi:
		return (v - hi) / width
	}
	return 0
}
