package chart

import (
	"math"
	"strconv"
)

// ticks returns "nice" tick positions covering [lo, hi] with at most
// max intervals. Steps are 1, 2, 2.5 or 5 times a power of ten.
func ticks(lo, hi float64, max int) []float64 {
	if hi <= lo || max < 1 {
		return nil
	}
	step := niceStep((hi - lo) / float64(max))
	first := math.Ceil(lo/step) * step
	var out []float64
	for v := first; v <= hi+step*1e-9; v += step {
		// Snap near-zero values produced by accumulation.
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// niceStep rounds raw up to the nearest 1/2/2.5/5 x 10^n step.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	frac := raw / mag
	switch {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 2.5:
		return 2.5 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// formatTick renders a tick value without trailing noise.
func formatTick(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 6 {
		s = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return s
}
