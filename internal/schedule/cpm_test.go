package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"riskcast/internal/project"
)

func TestAnalyze_DiamondGraph(t *testing.T) {
	// A -> B (5), A -> C (3), B/C -> D. Critical path: A, B, D.
	tasks := []project.Task{
		{ID: "A", Duration: 2},
		{ID: "B", Duration: 5, Dependencies: []string{"A"}},
		{ID: "C", Duration: 3, Dependencies: []string{"A"}},
		{ID: "D", Duration: 1, Dependencies: []string{"B", "C"}},
	}

	a, err := Analyze(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.TotalDuration != 8 {
		t.Errorf("Expected total duration 8 (2+5+1), got %f", a.TotalDuration)
	}
	if diff := cmp.Diff([]string{"A", "B", "D"}, a.CriticalPath); diff != "" {
		t.Errorf("Critical path mismatch (-want +got):\n%s", diff)
	}

	// C can slip by 2 days without moving D.
	c := a.Tasks["C"]
	if c.Slack != 2 {
		t.Errorf("Expected slack 2 for C, got %f", c.Slack)
	}
	if c.OnCriticalPath {
		t.Errorf("C must not be on the critical path")
	}

	b := a.Tasks["B"]
	if b.ES != 2 || b.EF != 7 {
		t.Errorf("Expected B window [2, 7], got [%f, %f]", b.ES, b.EF)
	}
	if b.Slack != 0 {
		t.Errorf("Expected zero slack for B, got %f", b.Slack)
	}
}

func TestAnalyze_ParallelChains(t *testing.T) {
	tasks := []project.Task{
		{ID: "A", Duration: 4},
		{ID: "B", Duration: 4},
		{ID: "C", Duration: 2, Dependencies: []string{"A"}},
		{ID: "D", Duration: 3, Dependencies: []string{"B"}},
	}

	a, err := Analyze(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// B->D (7) is the longest chain; A->C (6) carries 1 day of slack.
	if a.TotalDuration != 7 {
		t.Errorf("Expected total duration 7, got %f", a.TotalDuration)
	}
	if a.Tasks["C"].Slack != 1 {
		t.Errorf("Expected slack 1 for C, got %f", a.Tasks["C"].Slack)
	}
	if !a.Tasks["D"].OnCriticalPath {
		t.Errorf("D must be on the critical path")
	}
}

func TestAnalyze_CycleIsAnError(t *testing.T) {
	tasks := []project.Task{
		{ID: "A", Duration: 1, Dependencies: []string{"B"}},
		{ID: "B", Duration: 1, Dependencies: []string{"A"}},
	}
	if _, err := Analyze(tasks); err == nil {
		t.Fatal("Expected cycle error, got nil")
	}
}

func TestAnalyze_UnknownDependenciesIgnored(t *testing.T) {
	tasks := []project.Task{
		{ID: "A", Duration: 3, Dependencies: []string{"ghost"}},
	}
	a, err := Analyze(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TotalDuration != 3 {
		t.Errorf("Expected total duration 3, got %f", a.TotalDuration)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Fatal("Expected error for empty task list, got nil")
	}
}

func TestAnalyze_DeterministicTopoOrder(t *testing.T) {
	tasks := []project.Task{
		{ID: "T3", Duration: 1},
		{ID: "T1", Duration: 1},
		{ID: "T2", Duration: 1},
	}
	a, err := Analyze(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"T1", "T2", "T3"}, a.TopoOrder); diff != "" {
		t.Errorf("Topological order not ID-sorted for independent tasks (-want +got):\n%s", diff)
	}
}
