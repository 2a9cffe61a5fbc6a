package engine

import (
	"fmt"
	"math/rand"
	"riskcast/internal/project"
	"time"
)

type GeneratorConfig struct {
	Scenario string // "website", "platform" or "rollout"
	Seed     int64
	Now      time.Time
}

type taskSpec struct {
	id       string
	name     string
	startDay int // offset in days from cfg.Now
	duration float64
	critical bool
	progress float64
	deps     []string
}

type riskSpec struct {
	description string
	severity    string
	probability string
	category    string
	mitigation  string
	owner       string
}

// Generate builds a deterministic sample plan for the requested scenario.
// A non-zero seed adds reproducible jitter to in-flight task progress so
// repeated generations do not all look identical.
func Generate(cfg GeneratorConfig) (*project.Plan, error) {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	day := cfg.Now.Truncate(24 * time.Hour)

	var name string
	var tasks []taskSpec
	var risks []riskSpec

	switch cfg.Scenario {
	case "website":
		name = "Website Redesign"
		tasks = websiteTasks
		risks = websiteRisks
	case "platform":
		name = "Platform Migration"
		tasks = platformTasks
		risks = platformRisks
	case "rollout":
		name = "Enterprise Rollout"
		tasks = rolloutTasks
		risks = rolloutRisks
	default:
		return nil, fmt.Errorf("unknown scenario %q (expected website, platform or rollout)", cfg.Scenario)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	plan := &project.Plan{Name: name, Anchor: day}
	for _, ts := range tasks {
		start := day.AddDate(0, 0, ts.startDay)
		progress := ts.progress
		if cfg.Seed != 0 && progress > 0 && progress < 100 {
			progress += rng.Float64()*10 - 5
			if progress < 0 {
				progress = 0
			}
			if progress > 100 {
				progress = 100
			}
		}
		plan.Tasks = append(plan.Tasks, project.Task{
			ID:           ts.id,
			Name:         ts.name,
			Duration:     ts.duration,
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, int(ts.duration)),
			Critical:     ts.critical,
			Progress:     progress,
			Dependencies: ts.deps,
		})
		if start.Before(plan.Anchor) {
			plan.Anchor = start
		}
	}
	for _, rs := range risks {
		plan.Risks = append(plan.Risks, project.Risk{
			Description: rs.description,
			Severity:    rs.severity,
			Probability: rs.probability,
			Category:    rs.category,
			Mitigation:  rs.mitigation,
			Owner:       rs.owner,
			Status:      "Open",
		})
	}
	return plan, nil
}

// Save writes the plan snapshot to disk in the loadable JSON format.
func Save(plan *project.Plan, path string) error {
	return project.Save(plan, path)
}

var websiteTasks = []taskSpec{
	{id: "T1", name: "Project Initiation", startDay: -30, duration: 10, critical: true, progress: 100},
	{id: "T2", name: "Stakeholder Analysis", startDay: -25, duration: 7, progress: 100, deps: []string{"T1"}},
	{id: "T3", name: "Requirements Gathering", startDay: -20, duration: 15, critical: true, progress: 90, deps: []string{"T1"}},
	{id: "T4", name: "Requirements Approval", startDay: -5, duration: 5, critical: true, progress: 70, deps: []string{"T3"}},
	{id: "T5", name: "Design Phase", startDay: 1, duration: 15, critical: true, deps: []string{"T4"}},
	{id: "T6", name: "Content Strategy", startDay: 5, duration: 7, deps: []string{"T5"}},
	{id: "T7", name: "UI/UX Design", startDay: 5, duration: 10, deps: []string{"T5"}},
	{id: "T8", name: "Design Review", startDay: 16, duration: 3, critical: true, deps: []string{"T5", "T6", "T7"}},
	{id: "T9", name: "Development Sprint 1", startDay: 19, duration: 14, critical: true, deps: []string{"T8"}},
	{id: "T10", name: "Development Sprint 2", startDay: 33, duration: 14, critical: true, deps: []string{"T9"}},
	{id: "T11", name: "QA Planning", startDay: 10, duration: 10, deps: []string{"T5"}},
	{id: "T12", name: "Testing Sprint", startDay: 33, duration: 7, critical: true, deps: []string{"T9", "T11"}},
	{id: "T13", name: "Bug Fixes", startDay: 40, duration: 7, critical: true, deps: []string{"T12"}},
	{id: "T14", name: "User Acceptance Testing", startDay: 47, duration: 8, critical: true, deps: []string{"T13"}},
	{id: "T15", name: "Launch", startDay: 55, duration: 3, critical: true, deps: []string{"T14"}},
	{id: "T16", name: "Post-Launch Review", startDay: 58, duration: 5, deps: []string{"T15"}},
}

var websiteRisks = []riskSpec{
	{
		description: "Key technical lead may be unavailable during critical phase",
		severity:    "High", probability: "Medium", category: "resource",
		mitigation: "Cross-train another team member to serve as backup",
		owner:      "John Smith",
	},
	{
		description: "Requirements may change significantly after design phase",
		severity:    "High", probability: "Medium", category: "scope",
		mitigation: "Implement change control process, include buffer in schedule",
		owner:      "Sarah Johnson",
	},
	{
		description: "Integration with third-party API may have unexpected issues",
		severity:    "High", probability: "High", category: "technical",
		mitigation: "Early prototype development and testing with third-party system",
		owner:      "Mike Williams",
	},
	{
		description: "Performance may not meet SLA requirements",
		severity:    "Medium", probability: "Low", category: "quality",
		mitigation: "Performance testing early in development",
		owner:      "Dev Team",
	},
	{
		description: "Budget constraints may limit resources in later phases",
		severity:    "Medium", probability: "Medium", category: "cost",
		mitigation: "Regular budget tracking, prioritization of features",
		owner:      "John Smith",
	},
}

var platformTasks = []taskSpec{
	{id: "P1", name: "Current State Assessment", startDay: -20, duration: 10, critical: true, progress: 100},
	{id: "P2", name: "Target Architecture Design", startDay: -10, duration: 12, critical: true, progress: 60, deps: []string{"P1"}},
	{id: "P3", name: "Data Migration Strategy", startDay: -5, duration: 8, progress: 40, deps: []string{"P1"}},
	{id: "P4", name: "Infrastructure Provisioning", startDay: 2, duration: 10, critical: true, deps: []string{"P2"}},
	{id: "P5", name: "Service Migration Wave 1", startDay: 12, duration: 15, critical: true, deps: []string{"P4"}},
	{id: "P6", name: "Data Migration Dry Run", startDay: 12, duration: 7, deps: []string{"P3", "P4"}},
	{id: "P7", name: "Service Migration Wave 2", startDay: 27, duration: 15, critical: true, deps: []string{"P5"}},
	{id: "P8", name: "Cutover Rehearsal", startDay: 42, duration: 5, critical: true, deps: []string{"P6", "P7"}},
	{id: "P9", name: "Production Cutover", startDay: 47, duration: 3, critical: true, deps: []string{"P8"}},
	{id: "P10", name: "Legacy Decommissioning", startDay: 50, duration: 10, deps: []string{"P9"}},
}

var platformRisks = []riskSpec{
	{
		description: "Vendor may not deliver key functionality on time",
		severity:    "High", probability: "Medium", category: "external",
		mitigation: "Regular vendor status meetings, clear contractual obligations",
		owner:      "Maria Rodriguez",
	},
	{
		description: "Data migration may corrupt or lose records",
		severity:    "High", probability: "Medium", category: "technical",
		mitigation: "Dry runs with full verification before cutover",
		owner:      "Data Team",
	},
	{
		description: "Cutover window may overrun the agreed downtime",
		severity:    "Medium", probability: "Medium", category: "schedule",
		mitigation: "Rehearse cutover twice and prepare rollback plan",
		owner:      "Ops Team",
	},
}

var rolloutTasks = []taskSpec{
	{id: "R1", name: "Project Charter Approval", startDay: -40, duration: 5, critical: true, progress: 100},
	{id: "R2", name: "Vendor Selection", startDay: -35, duration: 15, critical: true, progress: 100, deps: []string{"R1"}},
	{id: "R3", name: "Contract Negotiation", startDay: -20, duration: 10, critical: true, progress: 100, deps: []string{"R2"}},
	{id: "R4", name: "Requirements Workshops", startDay: -10, duration: 12, critical: true, progress: 80, deps: []string{"R3"}},
	{id: "R5", name: "System Configuration Phase 1", startDay: 3, duration: 20, critical: true, deps: []string{"R4"}},
	{id: "R6", name: "Training Material Development", startDay: 3, duration: 15, deps: []string{"R4"}},
	{id: "R7", name: "System Configuration Phase 2", startDay: 23, duration: 20, critical: true, deps: []string{"R5"}},
	{id: "R8", name: "Pilot Site Rollout", startDay: 43, duration: 10, critical: true, deps: []string{"R7", "R6"}},
	{id: "R9", name: "Full Rollout", startDay: 53, duration: 25, critical: true, deps: []string{"R8"}},
	{id: "R10", name: "Hypercare Support", startDay: 78, duration: 15, deps: []string{"R9"}},
}

var rolloutRisks = []riskSpec{
	{
		description: "User adoption may be slower than planned",
		severity:    "Medium", probability: "High", category: "scope",
		mitigation: "Early champion program and phased training",
		owner:      "Change Manager",
	},
	{
		description: "License costs may exceed the approved budget",
		severity:    "High", probability: "Medium", category: "cost",
		mitigation: "Negotiate volume discounts, track consumption monthly",
		owner:      "Procurement",
	},
	{
		description: "Pilot site feedback may force configuration rework",
		severity:    "Medium", probability: "Medium", category: "quality",
		mitigation: "Structured pilot exit criteria and feedback triage",
		owner:      "Rollout Lead",
	},
	{
		description: "Regulatory changes may invalidate configured workflows",
		severity:    "High", probability: "Low", category: "external",
		mitigation: "Quarterly compliance review with legal team",
		owner:      "Compliance Officer",
	},
}
