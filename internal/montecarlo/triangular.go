package montecarlo

import (
	"math"
	"math/rand"
)

// sampleTriangular draws one sample from a triangular distribution with the
// given low/mode/high parameters using inverse transform sampling.
//
// Degenerate bounds are valid input: a zero-duration task collapses all three
// parameters to the same point under any uncertainty factor, and the sample
// is that point. Library implementations typically reject low == high, which
// is why the sampling is done by hand here.
func sampleTriangular(rng *rand.Rand, low, mode, high float64) float64 {
	width := high - low
	if width <= 0 {
		return mode
	}

	u := rng.Float64()
	c := (mode - low) / width
	if u < c {
		return low + math.Sqrt(u*width*(mode-low))
	}
	return high - math.Sqrt((1-u)*width*(high-mode))
}
