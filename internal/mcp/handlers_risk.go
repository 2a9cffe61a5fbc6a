package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"riskcast/internal/project"
	"riskcast/internal/risk"
)

type analyzeRiskInput struct {
	Plan       string   `json:"plan" jsonschema:"name of a loaded plan"`
	Risks      []string `json:"risks,omitempty" jsonschema:"risk descriptions to analyze; default is all risks in the plan"`
	Objectives []string `json:"objectives,omitempty" jsonschema:"project objectives to score against; default is Schedule, Budget, Scope, Quality, Resources"`
	Seed       int64    `json:"seed,omitempty" jsonschema:"fixed random seed for reproducible scoring; 0 uses entropy"`
}

type analyzeRiskOutput struct {
	Plan            string              `json:"plan"`
	Matrix          []risk.ImpactRow    `json:"impact_matrix"`
	RadarScores     []risk.RadarScore   `json:"radar_scores"`
	Combined        risk.CombinedImpact `json:"combined_impact"`
	MostImpacted    string              `json:"most_impacted,omitempty"`
	HighImpact      []string            `json:"high_impact_objectives,omitempty"`
	Recommendations map[string][]string `json:"recommendations,omitempty"`
	Chart           string              `json:"chart,omitempty"`
}

func (s *Server) handleAnalyzeRiskImpacts(_ context.Context, _ *sdkmcp.CallToolRequest, input analyzeRiskInput) (*sdkmcp.CallToolResult, analyzeRiskOutput, error) {
	plan, ok := s.getPlan(input.Plan)
	if !ok {
		return nil, analyzeRiskOutput{}, fmt.Errorf("plan %q is not loaded; call load_project first", input.Plan)
	}
	if len(plan.Risks) == 0 {
		return nil, analyzeRiskOutput{}, fmt.Errorf("plan %q has no risks; add risks before running an impact analysis", input.Plan)
	}

	risks, err := selectRisks(plan, input.Risks)
	if err != nil {
		return nil, analyzeRiskOutput{}, err
	}

	scorer := risk.NewScorer()
	if seed := pickSeed(input.Seed, s.cfg.SimulationSeed); seed != 0 {
		scorer.SetSeed(seed)
	}

	analysis := scorer.ScoreImpacts(risks, input.Objectives)

	out := analyzeRiskOutput{
		Plan:        plan.Name,
		Matrix:      analysis.Matrix,
		RadarScores: analysis.RadarScores,
		Combined:    analysis.Combined,
		HighImpact:  analysis.HighImpactObjectives(),
	}

	if name, _, found := analysis.MostImpacted(); found {
		out.MostImpacted = name
	}
	for _, obj := range out.HighImpact {
		if recs := objectiveRecommendations(obj); len(recs) > 0 {
			if out.Recommendations == nil {
				out.Recommendations = make(map[string][]string)
			}
			out.Recommendations[obj] = recs
		}
	}

	out.Chart = s.maybeImpactChart(analysis.Combined)

	return nil, out, nil
}

type strategyCandidate struct {
	Strategy string  `json:"strategy" jsonschema:"mitigation strategy description"`
	Cost     float64 `json:"cost,omitempty" jsonschema:"estimated implementation cost; default 10000"`
}

type rankStrategiesInput struct {
	Plan               string              `json:"plan" jsonschema:"name of a loaded plan"`
	Risk               string              `json:"risk" jsonschema:"description of the risk to mitigate"`
	Candidates         []strategyCandidate `json:"candidates,omitempty" jsonschema:"strategies to compare; default is the category catalog for the risk"`
	ProbReductionPct   float64             `json:"prob_reduction_pct,omitempty" jsonschema:"assumed probability reduction in percent; default 30"`
	ImpactReductionPct float64             `json:"impact_reduction_pct,omitempty" jsonschema:"assumed impact reduction in percent; default 40"`
	Seed               int64               `json:"seed,omitempty" jsonschema:"fixed random seed for reproducible ranking; 0 uses entropy"`
}

type rankStrategiesOutput struct {
	Plan        string                `json:"plan"`
	Risk        string                `json:"risk"`
	Ranked      []risk.RankedStrategy `json:"ranked_strategies"`
	Recommended string                `json:"recommended,omitempty"`
}

const defaultStrategyCost = 10000

func (s *Server) handleRankStrategies(_ context.Context, _ *sdkmcp.CallToolRequest, input rankStrategiesInput) (*sdkmcp.CallToolResult, rankStrategiesOutput, error) {
	plan, ok := s.getPlan(input.Plan)
	if !ok {
		return nil, rankStrategiesOutput{}, fmt.Errorf("plan %q is not loaded; call load_project first", input.Plan)
	}

	r, ok := plan.FindRisk(input.Risk)
	if !ok {
		return nil, rankStrategiesOutput{}, fmt.Errorf("risk %q not found in plan %q; call analyze_risk_impacts to list risks", input.Risk, input.Plan)
	}

	candidates := make([]risk.Candidate, 0, len(input.Candidates))
	for _, c := range input.Candidates {
		cost := c.Cost
		if cost == 0 {
			cost = defaultStrategyCost
		}
		candidates = append(candidates, risk.Candidate{Strategy: c.Strategy, Cost: cost})
	}
	if len(candidates) == 0 {
		for _, strat := range risk.AlternativeStrategies(r) {
			candidates = append(candidates, risk.Candidate{Strategy: strat, Cost: defaultStrategyCost})
		}
	}

	probReduction := input.ProbReductionPct
	if probReduction == 0 {
		probReduction = 30
	}
	impactReduction := input.ImpactReductionPct
	if impactReduction == 0 {
		impactReduction = 40
	}

	scorer := risk.NewScorer()
	if seed := pickSeed(input.Seed, s.cfg.SimulationSeed); seed != 0 {
		scorer.SetSeed(seed)
	}

	ranked := scorer.RankStrategies(r, candidates, probReduction/100, impactReduction/100)

	out := rankStrategiesOutput{
		Plan:   plan.Name,
		Risk:   r.Description,
		Ranked: ranked,
	}
	if len(ranked) > 0 {
		out.Recommended = ranked[0].Strategy
	}
	return nil, out, nil
}

// selectRisks resolves a list of risk descriptions against the plan. An empty
// filter returns every risk.
func selectRisks(plan *project.Plan, filter []string) ([]project.Risk, error) {
	if len(filter) == 0 {
		return plan.Risks, nil
	}
	selected := make([]project.Risk, 0, len(filter))
	for _, desc := range filter {
		r, ok := plan.FindRisk(desc)
		if !ok {
			return nil, fmt.Errorf("risk %q not found in plan %q", desc, plan.Name)
		}
		selected = append(selected, r)
	}
	return selected, nil
}
