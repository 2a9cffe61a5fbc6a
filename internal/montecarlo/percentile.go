package montecarlo

import (
	"math"
	"sort"
)

// Percentile computes the p-th percentile of values using the standard
// linear-interpolation method. The input slice is not modified.
// Percentiles are monotone: p1 <= p2 implies Percentile(v, p1) <= Percentile(v, p2).
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
