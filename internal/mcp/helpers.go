package mcp

import (
	"riskcast/internal/montecarlo"
	"riskcast/internal/risk"
	"riskcast/internal/visuals"
)

// pickSeed resolves the effective random seed: an explicit request wins,
// otherwise the configured seed, otherwise 0 (entropy).
func pickSeed(requested, configured int64) int64 {
	if requested != 0 {
		return requested
	}
	return configured
}

func (s *Server) maybeHistogram(result montecarlo.Result) string {
	if !s.cfg.EnableMermaidCharts {
		return ""
	}
	return visuals.GenerateDurationHistogram(result, 10)
}

func (s *Server) maybeImpactChart(combined risk.CombinedImpact) string {
	if !s.cfg.EnableMermaidCharts {
		return ""
	}
	return visuals.GenerateImpactChart(combined)
}

var recommendationCatalog = map[string][]string{
	"Schedule": {
		"Develop contingency plans for critical path activities",
		"Add buffer time to critical path tasks",
		"Identify acceleration opportunities for key milestones",
	},
	"Budget": {
		"Establish management reserves of 15-20% of project budget",
		"Identify cost-saving opportunities in non-critical areas",
		"Implement stricter cost control and approval processes",
	},
	"Scope": {
		"Strengthen the change control process",
		"Clarify scope boundaries with stakeholders",
		"Prioritize requirements to protect core deliverables",
	},
	"Quality": {
		"Strengthen quality assurance processes",
		"Increase testing coverage for high-risk components",
		"Add quality checkpoints ahead of key deliverables",
	},
	"Resources": {
		"Identify backup resources for key roles",
		"Cross-train team members on critical skills",
		"Prepare contingency staffing plans",
	},
}

func objectiveRecommendations(objective string) []string {
	return recommendationCatalog[objective]
}
