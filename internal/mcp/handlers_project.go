package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"riskcast/internal/project"
	"riskcast/internal/schedule"
)

type loadProjectInput struct {
	Path string `json:"path" jsonschema:"path to the plan JSON file; relative paths resolve against the plans folder"`
	Name string `json:"name,omitempty" jsonschema:"optional name override for referencing the plan in later calls"`
}

type loadProjectOutput struct {
	Plan          string `json:"plan"`
	Tasks         int    `json:"tasks"`
	CriticalTasks int    `json:"critical_tasks"`
	Risks         int    `json:"risks"`
	AnchorDate    string `json:"anchor_date"`
}

func (s *Server) handleLoadProject(_ context.Context, _ *sdkmcp.CallToolRequest, input loadProjectInput) (*sdkmcp.CallToolResult, loadProjectOutput, error) {
	path := input.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.cfg.PlansDir, path)
	}

	plan, err := project.Load(path)
	if err != nil {
		return nil, loadProjectOutput{}, err
	}
	if input.Name != "" {
		plan.Name = input.Name
	}
	if plan.Name == "" {
		plan.Name = filepath.Base(path)
	}
	s.putPlan(plan)

	log.Info().Str("plan", plan.Name).Str("path", path).Msg("Plan snapshot loaded")

	return nil, loadProjectOutput{
		Plan:          plan.Name,
		Tasks:         len(plan.Tasks),
		CriticalTasks: len(plan.CriticalTasks()),
		Risks:         len(plan.Risks),
		AnchorDate:    plan.Anchor.Format("2006-01-02"),
	}, nil
}

type listProjectsInput struct{}

type planInfo struct {
	Plan       string `json:"plan"`
	Tasks      int    `json:"tasks"`
	Risks      int    `json:"risks"`
	AnchorDate string `json:"anchor_date"`
}

type listProjectsOutput struct {
	Plans []planInfo `json:"plans"`
}

func (s *Server) handleListProjects(_ context.Context, _ *sdkmcp.CallToolRequest, _ listProjectsInput) (*sdkmcp.CallToolResult, listProjectsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := listProjectsOutput{Plans: make([]planInfo, 0, len(s.plans))}
	for _, p := range s.plans {
		out.Plans = append(out.Plans, planInfo{
			Plan:       p.Name,
			Tasks:      len(p.Tasks),
			Risks:      len(p.Risks),
			AnchorDate: p.Anchor.Format("2006-01-02"),
		})
	}
	sort.Slice(out.Plans, func(i, j int) bool { return out.Plans[i].Plan < out.Plans[j].Plan })
	return nil, out, nil
}

type analyzeCriticalPathInput struct {
	Plan string `json:"plan" jsonschema:"name of a loaded plan"`
}

type analyzeCriticalPathOutput struct {
	Plan          string                  `json:"plan"`
	TotalDuration float64                 `json:"total_duration_days"`
	CriticalPath  []string                `json:"critical_path"`
	Tasks         []schedule.TaskSchedule `json:"tasks"`
	Slippage      schedule.SlippageReport `json:"slippage"`
}

func (s *Server) handleAnalyzeCriticalPath(_ context.Context, _ *sdkmcp.CallToolRequest, input analyzeCriticalPathInput) (*sdkmcp.CallToolResult, analyzeCriticalPathOutput, error) {
	plan, ok := s.getPlan(input.Plan)
	if !ok {
		return nil, analyzeCriticalPathOutput{}, fmt.Errorf("plan %q is not loaded; call load_project first", input.Plan)
	}
	if len(plan.Tasks) == 0 {
		return nil, analyzeCriticalPathOutput{}, fmt.Errorf("plan %q has no tasks; add tasks before analyzing the critical path", input.Plan)
	}

	analysis, err := schedule.Analyze(plan.Tasks)
	if err != nil {
		return nil, analyzeCriticalPathOutput{}, err
	}

	out := analyzeCriticalPathOutput{
		Plan:          plan.Name,
		TotalDuration: analysis.TotalDuration,
		CriticalPath:  analysis.CriticalPath,
		Slippage:      schedule.AssessSlippage(plan.Tasks, time.Now()),
	}
	for _, id := range analysis.TopoOrder {
		out.Tasks = append(out.Tasks, *analysis.Tasks[id])
	}
	return nil, out, nil
}

type whatIfScheduleInput struct {
	Plan           string             `json:"plan" jsonschema:"name of a loaded plan"`
	DurationDeltas map[string]float64 `json:"duration_deltas" jsonschema:"task ID to duration change in days, e.g. {\"T3\": 5, \"T7\": -2}"`
}

type scenarioTask struct {
	ID        string  `json:"id"`
	Duration  float64 `json:"duration"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

type whatIfScheduleOutput struct {
	Plan             string         `json:"plan"`
	BaselineDays     float64        `json:"baseline_total_days"`
	ScenarioDays     float64        `json:"scenario_total_days"`
	DeltaDays        float64        `json:"delta_days"`
	ScenarioEndDate  string         `json:"scenario_end_date"`
	ScenarioSchedule []scenarioTask `json:"scenario_schedule"`
}

func (s *Server) handleWhatIfSchedule(_ context.Context, _ *sdkmcp.CallToolRequest, input whatIfScheduleInput) (*sdkmcp.CallToolResult, whatIfScheduleOutput, error) {
	plan, ok := s.getPlan(input.Plan)
	if !ok {
		return nil, whatIfScheduleOutput{}, fmt.Errorf("plan %q is not loaded; call load_project first", input.Plan)
	}
	if len(plan.Tasks) == 0 {
		return nil, whatIfScheduleOutput{}, fmt.Errorf("plan %q has no tasks; add tasks before running scenarios", input.Plan)
	}

	scenario := schedule.ApplyDurationDeltas(plan.Tasks, input.DurationDeltas)
	resequenced := schedule.Resequence(scenario, plan.Anchor)

	out := whatIfScheduleOutput{
		Plan:         plan.Name,
		BaselineDays: plan.TotalDuration(),
	}
	for _, t := range resequenced {
		out.ScenarioDays += t.Duration
		out.ScenarioSchedule = append(out.ScenarioSchedule, scenarioTask{
			ID:        t.ID,
			Duration:  t.Duration,
			StartDate: t.StartDate.Format("2006-01-02"),
			EndDate:   t.EndDate.Format("2006-01-02"),
		})
	}
	out.DeltaDays = out.ScenarioDays - out.BaselineDays
	if n := len(resequenced); n > 0 {
		out.ScenarioEndDate = resequenced[n-1].EndDate.Format("2006-01-02")
	}
	return nil, out, nil
}
