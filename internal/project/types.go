package project

import "time"

// Task is a single WBS entry in a plan snapshot.
type Task struct {
	ID           string
	Name         string
	Duration     float64 // working days
	StartDate    time.Time
	EndDate      time.Time
	Critical     bool
	Progress     float64 // 0-100
	Dependencies []string
}

// Risk is a single RAID-log entry. Severity and Probability carry the raw
// text from the snapshot; coercion to levels happens in the risk package.
type Risk struct {
	Description string
	Severity    string
	Probability string
	Category    string
	Mitigation  string
	Owner       string
	Status      string
}

// Plan is an immutable project snapshot. Analytical components receive a Plan
// by value or pointer but never mutate it; every analysis call builds fresh
// outputs from the snapshot it was handed.
type Plan struct {
	Name   string
	Anchor time.Time // baseline start used as the simulation anchor date
	Tasks  []Task
	Risks  []Risk
}

// CriticalTasks returns the subset of tasks flagged as critical-path.
func (p *Plan) CriticalTasks() []Task {
	var critical []Task
	for _, t := range p.Tasks {
		if t.Critical {
			critical = append(critical, t)
		}
	}
	return critical
}

// FindRisk looks up a risk by its description. Descriptions act as the risk
// identity within a plan; when duplicates exist the first match wins.
func (p *Plan) FindRisk(description string) (Risk, bool) {
	for _, r := range p.Risks {
		if r.Description == description {
			return r, true
		}
	}
	return Risk{}, false
}

// TotalDuration sums the baseline durations of all tasks.
func (p *Plan) TotalDuration() float64 {
	var total float64
	for _, t := range p.Tasks {
		total += t.Duration
	}
	return total
}
