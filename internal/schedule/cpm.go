package schedule

import (
	"fmt"
	"math"
	"sort"

	"riskcast/internal/project"
)

// TaskSchedule holds the computed scheduling window for a single task.
type TaskSchedule struct {
	TaskID         string  `json:"task_id"`
	ES             float64 `json:"earliest_start"`
	EF             float64 `json:"earliest_finish"`
	LS             float64 `json:"latest_start"`
	LF             float64 `json:"latest_finish"`
	Slack          float64 `json:"slack"`
	OnCriticalPath bool    `json:"on_critical_path"`
}

// Analysis is the result of a critical path method pass over the plan's
// dependency graph. TotalDuration here is the longest path through the DAG,
// unlike the Monte-Carlo engine's flat sum; the two are reported side by side
// and never substituted for each other.
type Analysis struct {
	Tasks         map[string]*TaskSchedule `json:"tasks"`
	CriticalPath  []string                 `json:"critical_path"`
	TotalDuration float64                  `json:"total_duration"`
	TopoOrder     []string                 `json:"-"`
}

const slackTolerance = 1e-9

// Analyze performs a forward and backward pass over the task dependency
// graph, computing earliest/latest windows, slack and the critical path.
// Dependencies referencing unknown task IDs are ignored; a dependency cycle
// is an error.
func Analyze(tasks []project.Task) (*Analysis, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks to analyze")
	}

	byID := make(map[string]project.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	// adj: task -> successors, preds: task -> known predecessors
	adj := make(map[string][]string)
	preds := make(map[string][]string)
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if _, ok := byID[dep]; !ok {
				continue
			}
			adj[dep] = append(adj[dep], t.ID)
			preds[t.ID] = append(preds[t.ID], dep)
		}
	}

	order, err := topoSort(byID, preds, adj)
	if err != nil {
		return nil, err
	}

	result := &Analysis{
		Tasks:     make(map[string]*TaskSchedule, len(tasks)),
		TopoOrder: order,
	}
	for _, id := range order {
		result.Tasks[id] = &TaskSchedule{TaskID: id}
	}

	// Forward pass: ES = max(EF of predecessors)
	for _, id := range order {
		ts := result.Tasks[id]
		for _, pred := range preds[id] {
			if ef := result.Tasks[pred].EF; ef > ts.ES {
				ts.ES = ef
			}
		}
		ts.EF = ts.ES + byID[id].Duration
		if ts.EF > result.TotalDuration {
			result.TotalDuration = ts.EF
		}
	}

	// Backward pass in reverse topological order: LF = min(LS of successors)
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		ts := result.Tasks[id]

		if len(adj[id]) == 0 {
			ts.LF = result.TotalDuration
		} else {
			minLS := math.Inf(1)
			for _, succ := range adj[id] {
				if ls := result.Tasks[succ].LS; ls < minLS {
					minLS = ls
				}
			}
			ts.LF = minLS
		}
		ts.LS = ts.LF - byID[id].Duration
		ts.Slack = ts.LS - ts.ES
		ts.OnCriticalPath = ts.Slack < slackTolerance
	}

	for _, id := range order {
		if result.Tasks[id].OnCriticalPath {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	return result, nil
}

// topoSort runs Kahn's algorithm, visiting ready tasks in sorted ID order so
// the result is deterministic.
func topoSort(byID map[string]project.Task, preds, adj map[string][]string) ([]string, error) {
	inDegree := make(map[string]int, len(byID))
	for id := range byID {
		inDegree[id] = len(preds[id])
	}

	var queue []string
	for id := range byID {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		var ready []string
		for _, succ := range adj[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(byID) {
		return nil, fmt.Errorf("dependency cycle detected among %d tasks", len(byID)-len(order))
	}
	return order, nil
}
