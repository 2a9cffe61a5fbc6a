package risk

import (
	"strings"

	"riskcast/internal/project"
)

// categoryStrategies is the mitigation catalog per risk category.
var categoryStrategies = map[string][]string{
	"technical": {
		"Conduct technical proof of concept",
		"Implement more rigorous testing procedures",
		"Bring in technical expert consultant",
	},
	"schedule": {
		"Add buffer time to critical path activities",
		"Implement fast-tracking for critical activities",
		"Add additional resources to key activities",
	},
	"cost": {
		"Establish cost contingency reserve",
		"Implement stricter cost control measures",
		"Identify alternative lower-cost approaches",
	},
	"resource": {
		"Cross-train team members for key roles",
		"Identify and onboard backup resources",
		"Redistribute workload across the team",
	},
	"scope": {
		"Implement stricter change control process",
		"Clarify scope boundaries with stakeholders",
		"Prioritize requirements to identify potential scope reduction",
	},
	"quality": {
		"Enhance quality assurance processes",
		"Implement additional quality control checkpoints",
		"Increase testing coverage and depth",
	},
	"external": {
		"Develop partnerships with alternative vendors",
		"Establish contractual safeguards",
		"Develop influence strategies for external stakeholders",
	},
}

var genericStrategies = []string{
	"Accept the risk and monitor closely",
	"Develop contingency plan to implement if risk occurs",
	"Transfer risk to third party or insurance",
}

// AlternativeStrategies assembles candidate mitigation strategies for a risk:
// the current mitigation first, then the category catalog, then the generic
// fallbacks. Empty entries and duplicates are dropped, keeping first
// occurrence order.
func AlternativeStrategies(r project.Risk) []string {
	category := strings.ToLower(strings.TrimSpace(r.Category))

	var all []string
	if r.Mitigation != "" {
		all = append(all, r.Mitigation)
	}
	all = append(all, categoryStrategies[category]...)
	all = append(all, genericStrategies...)

	seen := make(map[string]bool, len(all))
	var out []string
	for _, s := range all {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
