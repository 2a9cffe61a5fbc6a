package risk

import (
	"math/rand"
	"strings"
	"time"

	"riskcast/internal/project"
)

// Scorer classifies risk impact against project objectives.
//
// Classification is stochastic: each (risk, objective) pair gets a bounded
// random jitter in [0.8, 1.2], so repeated calls over identical input may
// differ at threshold boundaries. Tests seed the scorer or disable jitter
// entirely for determinism.
type Scorer struct {
	rng    *rand.Rand
	jitter bool
}

func NewScorer() *Scorer {
	return &Scorer{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		jitter: true,
	}
}

// SetSeed fixes the random source for reproducible classification.
func (s *Scorer) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// DisableJitter pins the jitter multiplier to 1.0, making classification a
// pure function of risk category, objective and base score.
func (s *Scorer) DisableJitter() {
	s.jitter = false
}

// ImpactRow is one matrix row: a risk's impact level per objective. Rows are
// positional and keyed by the risk description; two risks sharing a
// description produce two separate rows rather than merging.
type ImpactRow struct {
	Risk    string           `json:"risk"`
	Impacts map[string]Level `json:"impacts"`
}

// RadarScore carries one risk's 0-10 score per objective, index-aligned with
// Objectives, shaped for radar-chart consumers.
type RadarScore struct {
	Risk       string    `json:"risk"`
	Objectives []string  `json:"objectives"`
	Scores     []float64 `json:"scores"`
}

// CombinedImpact averages all risks' impact scores per objective on a 0-10
// scale. Values are always within [0, 10].
type CombinedImpact struct {
	Objectives   []string  `json:"objectives"`
	ImpactScores []float64 `json:"impact_scores"`
}

// Analysis bundles the scorer outputs for one invocation.
type Analysis struct {
	Matrix      []ImpactRow    `json:"impact_matrix"`
	RadarScores []RadarScore   `json:"radar_scores"`
	Combined    CombinedImpact `json:"combined_impact"`
}

// BaseScore converts a risk's severity and probability levels to the 1-9
// base score used everywhere downstream.
func BaseScore(r project.Risk) int {
	return ParseLevel(r.Severity).Score() * ParseLevel(r.Probability).Score()
}

// ScoreImpacts builds the impact matrix, radar scores and combined impact
// for the given risks and objectives.
//
// An empty risk list yields an empty matrix and zero combined impact rather
// than an error; the permissive contract lets callers render "nothing yet"
// without special-casing.
func (s *Scorer) ScoreImpacts(risks []project.Risk, objectives []string) Analysis {
	if len(objectives) == 0 {
		objectives = Objectives
	}

	analysis := Analysis{
		Combined: CombinedImpact{
			Objectives:   objectives,
			ImpactScores: make([]float64, len(objectives)),
		},
	}

	// Per-objective running sum of level scores, for the combined average.
	sums := make([]int, len(objectives))

	for _, r := range risks {
		base := BaseScore(r)
		category := strings.ToLower(strings.TrimSpace(r.Category))

		row := ImpactRow{Risk: r.Description, Impacts: make(map[string]Level, len(objectives))}
		radar := RadarScore{Risk: r.Description, Objectives: objectives}

		for i, objective := range objectives {
			level := s.classify(category, objective, base)
			row.Impacts[objective] = level
			radar.Scores = append(radar.Scores, float64(level.Score())*10.0/3.0)
			sums[i] += level.Score()
		}

		analysis.Matrix = append(analysis.Matrix, row)
		analysis.RadarScores = append(analysis.RadarScores, radar)
	}

	if len(risks) > 0 {
		for i := range objectives {
			analysis.Combined.ImpactScores[i] = float64(sums[i]) / float64(len(risks)) * 10.0 / 3.0
		}
	}

	return analysis
}

// classify maps a category/objective pair and base score to an impact level.
// adjusted = weight * (base/4.5) * jitter; High above 0.66, Medium above 0.33.
func (s *Scorer) classify(category, objective string, base int) Level {
	adjusted := weightFor(category, objective) * (float64(base) / 4.5) * s.factor()
	switch {
	case adjusted > 0.66:
		return High
	case adjusted > 0.33:
		return Medium
	default:
		return Low
	}
}

// factor returns the bounded jitter multiplier in [0.8, 1.2], or exactly 1.0
// when jitter is disabled.
func (s *Scorer) factor() float64 {
	if !s.jitter {
		return 1.0
	}
	return 0.8 + 0.4*s.rng.Float64()
}

// MostImpacted returns the objective with the highest combined score. The
// second return is false when the analysis holds no risks.
func (a Analysis) MostImpacted() (string, float64, bool) {
	if len(a.Matrix) == 0 || len(a.Combined.Objectives) == 0 {
		return "", 0, false
	}
	best := 0
	for i, score := range a.Combined.ImpactScores {
		if score > a.Combined.ImpactScores[best] {
			best = i
		}
	}
	return a.Combined.Objectives[best], a.Combined.ImpactScores[best], true
}

// HighImpactObjectives lists objectives whose combined score reaches the
// upper third of the 0-10 scale.
func (a Analysis) HighImpactObjectives() []string {
	var high []string
	for i, score := range a.Combined.ImpactScores {
		if score >= 20.0/3.0 {
			high = append(high, a.Combined.Objectives[i])
		}
	}
	return high
}
