package risk

// Objectives is the canonical objective list in display order. Callers may
// pass any subset or additional labels; unknown labels fall back to the
// default weight row.
var Objectives = []string{"Schedule", "Budget", "Scope", "Quality", "Resources"}

// categoryWeights encodes how strongly each risk category influences each
// project objective, on a 0-1 scale. A schedule risk hits the Schedule
// objective hard (0.9) but barely touches Scope (0.3).
var categoryWeights = map[string]map[string]float64{
	"technical": {
		"Schedule":  0.7,
		"Budget":    0.5,
		"Scope":     0.3,
		"Quality":   0.8,
		"Resources": 0.4,
	},
	"schedule": {
		"Schedule":  0.9,
		"Budget":    0.6,
		"Scope":     0.3,
		"Quality":   0.4,
		"Resources": 0.5,
	},
	"cost": {
		"Schedule":  0.4,
		"Budget":    0.9,
		"Scope":     0.5,
		"Quality":   0.3,
		"Resources": 0.6,
	},
	"resource": {
		"Schedule":  0.7,
		"Budget":    0.5,
		"Scope":     0.3,
		"Quality":   0.6,
		"Resources": 0.9,
	},
	"scope": {
		"Schedule":  0.6,
		"Budget":    0.7,
		"Scope":     0.9,
		"Quality":   0.5,
		"Resources": 0.4,
	},
	"quality": {
		"Schedule":  0.5,
		"Budget":    0.4,
		"Scope":     0.3,
		"Quality":   0.9,
		"Resources": 0.4,
	},
	"external": {
		"Schedule":  0.7,
		"Budget":    0.6,
		"Scope":     0.5,
		"Quality":   0.4,
		"Resources": 0.6,
	},
}

// defaultWeights covers categories outside the known seven.
var defaultWeights = map[string]float64{
	"Schedule":  0.6,
	"Budget":    0.6,
	"Scope":     0.5,
	"Quality":   0.5,
	"Resources": 0.5,
}

// weightFor looks up the influence weight for a category/objective pair.
// Unknown categories use the default row; unknown objectives within any row
// use 0.5. Neither case is an error.
func weightFor(category, objective string) float64 {
	row, ok := categoryWeights[category]
	if !ok {
		row = defaultWeights
	}
	if w, ok := row[objective]; ok {
		return w
	}
	return 0.5
}
