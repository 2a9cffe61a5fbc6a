package mcp

import (
	"context"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"riskcast/internal/config"
	"riskcast/internal/project"
)

// Server holds the MCP server state: configuration plus the plan snapshots
// loaded during this session, keyed by plan name.
type Server struct {
	cfg *config.AppConfig

	MCPServer *sdkmcp.Server

	mu    sync.Mutex
	plans map[string]*project.Plan
}

// NewServer creates the riskcast MCP server with all analysis tools registered.
func NewServer(cfg *config.AppConfig, version string) *Server {
	s := &Server{
		cfg: cfg,
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "riskcast", Version: version},
			nil,
		),
		plans: make(map[string]*project.Plan),
	}
	s.registerTools()
	return s
}

// Run starts the stdio loop and blocks until the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	log.Info().Msg("MCP server starting stdio loop")
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "load_project",
		Description: "Load a project plan snapshot (tasks + risks) from a JSON file. Relative paths resolve against the configured plans folder. The plan stays loaded for the session and is referenced by name in the analysis tools.",
	}, s.handleLoadProject)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List the plan snapshots loaded in this session with task and risk counts.",
	}, s.handleListProjects)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name: "run_schedule_simulation",
		Description: "Run a Monte-Carlo schedule simulation over a loaded plan. Each trial perturbs task durations with a triangular distribution bounded by the uncertainty percentage and sums them into a total project duration.\n\n" +
			"NOTE: the total is a flat sum of task durations; the dependency network is NOT consulted. Use analyze_critical_path for dependency-aware numbers and never present the two as interchangeable.\n" +
			"DO NOT estimate completion probabilities yourself if this tool fails; report the error to the user instead.",
	}, s.handleRunSimulation)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name: "analyze_risk_impacts",
		Description: "Score how a plan's risks impact the project objectives (Schedule, Budget, Scope, Quality, Resources). Returns the impact matrix, per-risk radar scores and the combined 0-10 impact per objective.\n\n" +
			"Classification is stochastic (bounded jitter); pass a seed for reproducible output.",
	}, s.handleAnalyzeRiskImpacts)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name: "rank_mitigation_strategies",
		Description: "Simulate the effectiveness of mitigation strategies for one risk and rank them by cost-effectiveness (% risk-score reduction per $1000). When no candidate strategies are supplied, a category-specific catalog is used.",
	}, s.handleRankStrategies)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_critical_path",
		Description: "Run critical path method analysis over the plan's dependency graph (earliest/latest windows, slack, longest path) and report slippage of critical tasks (completed / at risk / delayed).",
	}, s.handleAnalyzeCriticalPath)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "what_if_schedule",
		Description: "Apply duration changes to a copy of the plan and resequence the schedule to compare scenario completion against the baseline. The loaded plan is never modified.",
	}, s.handleWhatIfSchedule)
}

// getPlan fetches a loaded plan by name under the lock.
func (s *Server) getPlan(name string) (*project.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[name]
	return p, ok
}

func (s *Server) putPlan(p *project.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[p.Name] = p
}
