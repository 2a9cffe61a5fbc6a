package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"riskcast/internal/montecarlo"
	"riskcast/internal/report"
)

type runSimulationInput struct {
	Plan             string    `json:"plan" jsonschema:"name of a loaded plan"`
	UncertaintyPct   *float64  `json:"uncertainty_pct,omitempty" jsonschema:"task duration uncertainty in percent (0-100); default from configuration"`
	Iterations       int       `json:"iterations,omitempty" jsonschema:"number of trials; default from configuration"`
	CriticalPathOnly bool      `json:"critical_path_only,omitempty" jsonschema:"simulate only tasks flagged as critical"`
	AnchorDate       string    `json:"anchor_date,omitempty" jsonschema:"simulation start date (YYYY-MM-DD); default is the plan anchor"`
	Seed             int64     `json:"seed,omitempty" jsonschema:"fixed random seed for reproducible runs; 0 uses entropy"`
	ConfidenceLevels []float64 `json:"confidence_levels,omitempty" jsonschema:"percentiles to report; default [50, 80, 90, 95]"`
}

type runSimulationOutput struct {
	Plan           string                       `json:"plan"`
	TasksSimulated int                          `json:"tasks_simulated"`
	Iterations     int                          `json:"iterations"`
	UncertaintyPct float64                      `json:"uncertainty_pct"`
	Summary        montecarlo.Summary           `json:"summary"`
	Confidence     []montecarlo.ConfidenceLevel `json:"confidence_levels"`
	Chart          string                       `json:"chart,omitempty"`
	ReportPath     string                       `json:"report_path,omitempty"`
}

func (s *Server) handleRunSimulation(_ context.Context, _ *sdkmcp.CallToolRequest, input runSimulationInput) (*sdkmcp.CallToolResult, runSimulationOutput, error) {
	plan, ok := s.getPlan(input.Plan)
	if !ok {
		return nil, runSimulationOutput{}, fmt.Errorf("plan %q is not loaded; call load_project first", input.Plan)
	}
	if len(plan.Tasks) == 0 {
		return nil, runSimulationOutput{}, fmt.Errorf("plan %q has no tasks; add tasks before running a simulation", input.Plan)
	}

	tasks := plan.Tasks
	if input.CriticalPathOnly {
		tasks = plan.CriticalTasks()
		if len(tasks) == 0 {
			return nil, runSimulationOutput{}, fmt.Errorf("plan %q has no critical path tasks; mark tasks as critical or disable critical_path_only", input.Plan)
		}
	}

	uncertainty := s.cfg.DefaultUncertainty
	if input.UncertaintyPct != nil {
		uncertainty = *input.UncertaintyPct / 100
	}

	iterations := input.Iterations
	if iterations == 0 {
		iterations = s.cfg.DefaultIterations
	}

	anchor := plan.Anchor
	if input.AnchorDate != "" {
		t, err := time.Parse("2006-01-02", input.AnchorDate)
		if err != nil {
			return nil, runSimulationOutput{}, fmt.Errorf("invalid anchor_date format (expected YYYY-MM-DD): %w", err)
		}
		anchor = t
	}

	engine := montecarlo.NewEngine()
	if seed := pickSeed(input.Seed, s.cfg.SimulationSeed); seed != 0 {
		engine.SetSeed(seed)
	}

	start := time.Now()
	result, err := engine.Run(tasks, uncertainty, iterations, anchor)
	if err != nil {
		return nil, runSimulationOutput{}, err
	}

	log.Debug().
		Str("plan", plan.Name).
		Int("iterations", iterations).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation finished")

	levels := input.ConfidenceLevels
	if len(levels) == 0 {
		levels = []float64{50, 80, 90, 95}
	}

	out := runSimulationOutput{
		Plan:           plan.Name,
		TasksSimulated: len(tasks),
		Iterations:     iterations,
		UncertaintyPct: uncertainty * 100,
		Summary:        result.Summarize(),
	}
	for _, p := range levels {
		out.Confidence = append(out.Confidence, result.ConfidenceLevel(p))
	}

	out.Chart = s.maybeHistogram(result)
	out.ReportPath = s.maybeReport(plan.Name, result, out.Confidence)

	return nil, out, nil
}

// maybeReport writes an HTML report when enabled in configuration.
func (s *Server) maybeReport(planName string, result montecarlo.Result, confidence []montecarlo.ConfidenceLevel) string {
	if !s.cfg.EnableHTMLReports {
		return ""
	}

	data := report.Data{
		PlanName:   planName,
		Generated:  time.Now(),
		Summary:    result.Summarize(),
		Confidence: confidence,
	}
	data.BuildHistogram(result, 20)

	path, err := report.WriteAndOpen(data, s.cfg.ReportsDir, s.cfg.OpenReports)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to write HTML report")
		return ""
	}
	return path
}
