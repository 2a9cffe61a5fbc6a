package schedule

import (
	"testing"
	"time"

	"riskcast/internal/project"
)

func TestApplyDurationDeltas(t *testing.T) {
	tasks := []project.Task{
		{ID: "A", Duration: 10},
		{ID: "B", Duration: 5},
	}

	out := ApplyDurationDeltas(tasks, map[string]float64{
		"A":     -3,
		"B":     -8, // clamps at zero
		"ghost": 4,  // unknown, ignored
	})

	if out[0].Duration != 7 {
		t.Errorf("Expected A duration 7, got %f", out[0].Duration)
	}
	if out[1].Duration != 0 {
		t.Errorf("Expected B duration clamped to 0, got %f", out[1].Duration)
	}
	// Original must stay untouched.
	if tasks[0].Duration != 10 || tasks[1].Duration != 5 {
		t.Errorf("Input tasks were mutated: %+v", tasks)
	}
}

func TestResequence_SequentialDates(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	tasks := []project.Task{
		{ID: "late", Duration: 4, StartDate: d1},
		{ID: "early", Duration: 2, StartDate: d2},
	}

	out := Resequence(tasks, anchor)

	// Earliest start date wins as the sequence origin, sorted order applies.
	if out[0].ID != "early" {
		t.Fatalf("Expected earliest-dated task first, got %q", out[0].ID)
	}
	if !out[0].StartDate.Equal(d2) {
		t.Errorf("Expected sequence to start at %v, got %v", d2, out[0].StartDate)
	}
	wantEnd := d2.AddDate(0, 0, 2)
	if !out[0].EndDate.Equal(wantEnd) {
		t.Errorf("Expected first end %v, got %v", wantEnd, out[0].EndDate)
	}
	if !out[1].StartDate.Equal(out[0].EndDate) {
		t.Errorf("Expected second task to start when the first ends")
	}
}

func TestResequence_NoDatesUsesAnchor(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []project.Task{
		{ID: "A", Duration: 3},
		{ID: "B", Duration: 2},
	}

	out := Resequence(tasks, anchor)
	if !out[0].StartDate.Equal(anchor) {
		t.Errorf("Expected sequence to start at the anchor, got %v", out[0].StartDate)
	}
	if !out[1].EndDate.Equal(anchor.AddDate(0, 0, 5)) {
		t.Errorf("Expected total span of 5 days, got end %v", out[1].EndDate)
	}
}

func TestAssessSlippage(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 10)

	tasks := []project.Task{
		{ID: "done", Critical: true, Progress: 100, EndDate: past},
		{ID: "late", Critical: true, Progress: 80, EndDate: past},
		{ID: "shaky", Critical: true, Progress: 20, EndDate: future},
		{ID: "fine", Critical: true, Progress: 60, EndDate: future},
		{ID: "ignored", Critical: false, Progress: 0, EndDate: past},
	}

	report := AssessSlippage(tasks, now)

	if report.CriticalTasks != 4 {
		t.Errorf("Expected 4 critical tasks, got %d", report.CriticalTasks)
	}
	if report.Completed != 1 {
		t.Errorf("Expected 1 completed, got %d", report.Completed)
	}
	if len(report.Delayed) != 1 || report.Delayed[0] != "late" {
		t.Errorf("Expected [late] delayed, got %v", report.Delayed)
	}
	if len(report.AtRisk) != 1 || report.AtRisk[0] != "shaky" {
		t.Errorf("Expected [shaky] at risk, got %v", report.AtRisk)
	}
}
