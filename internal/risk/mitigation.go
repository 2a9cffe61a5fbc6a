package risk

import (
	"sort"

	"riskcast/internal/project"
)

// Candidate is one mitigation strategy under evaluation.
type Candidate struct {
	Strategy string  `json:"strategy"`
	Cost     float64 `json:"cost"` // implementation cost in currency units
}

// RankedStrategy is a candidate with its simulated effectiveness.
type RankedStrategy struct {
	Strategy          string  `json:"strategy"`
	InitialScore      float64 `json:"initial_score"`
	NewScore          float64 `json:"new_score"`
	ReductionPercent  float64 `json:"reduction_percent"`
	Cost              float64 `json:"cost"`
	CostEffectiveness float64 `json:"cost_effectiveness"` // % reduction per $1000 spent
}

// RankStrategies simulates the effectiveness of each candidate against the
// risk and ranks them by cost-effectiveness, best first.
//
// probReduction and impactReduction are the declared reduction potentials as
// fractions in [0,1]. Each candidate draws two independent jitter factors in
// [0.8, 1.2] so effectiveness varies between runs; seed the scorer or disable
// jitter to pin the outcome.
//
// A candidate with zero or negative cost gets cost-effectiveness 0 and sinks
// to the bottom; it is never an error. Ties keep insertion order.
func (s *Scorer) RankStrategies(r project.Risk, candidates []Candidate, probReduction, impactReduction float64) []RankedStrategy {
	severity := ParseLevel(r.Severity).Score()
	probability := ParseLevel(r.Probability).Score()
	initial := float64(severity * probability)

	ranked := make([]RankedStrategy, 0, len(candidates))
	for _, c := range candidates {
		probEff := probReduction * s.factor()
		impactEff := impactReduction * s.factor()

		newProb := float64(probability) * (1 - probEff)
		newImpact := float64(severity) * (1 - impactEff)
		newScore := newProb * newImpact

		reduction := (initial - newScore) / initial * 100

		costEff := 0.0
		if c.Cost > 0 {
			costEff = reduction / (c.Cost / 1000)
		}

		ranked = append(ranked, RankedStrategy{
			Strategy:          c.Strategy,
			InitialScore:      initial,
			NewScore:          newScore,
			ReductionPercent:  reduction,
			Cost:              c.Cost,
			CostEffectiveness: costEff,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CostEffectiveness > ranked[j].CostEffectiveness
	})

	return ranked
}
