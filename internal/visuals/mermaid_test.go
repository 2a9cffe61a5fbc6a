package visuals

import (
	"strings"
	"testing"
	"time"

	"riskcast/internal/montecarlo"
	"riskcast/internal/risk"
)

func TestGenerateDurationHistogram(t *testing.T) {
	result := montecarlo.Result{
		Durations: []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 20},
		Anchor:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	chart := GenerateDurationHistogram(result, 5)

	if !strings.HasPrefix(chart, "```mermaid\nxychart-beta\n") {
		t.Errorf("Chart missing mermaid header:\n%s", chart)
	}
	if !strings.Contains(chart, "bar [") {
		t.Errorf("Chart missing bar series:\n%s", chart)
	}
	// 5 buckets means 5 comma-separated bars.
	barLine := ""
	for _, line := range strings.Split(chart, "\n") {
		if strings.Contains(line, "bar [") {
			barLine = line
		}
	}
	if got := strings.Count(barLine, ",") + 1; got != 5 {
		t.Errorf("Expected 5 bars, got %d in %q", got, barLine)
	}
}

func TestGenerateDurationHistogram_Degenerate(t *testing.T) {
	// All trials identical: one bucket holds everything.
	result := montecarlo.Result{Durations: []float64{35, 35, 35}}
	chart := GenerateDurationHistogram(result, 10)
	if !strings.Contains(chart, "bar [3,") {
		t.Errorf("Expected all 3 trials in the first bucket:\n%s", chart)
	}
}

func TestGenerateDurationHistogram_Empty(t *testing.T) {
	if chart := GenerateDurationHistogram(montecarlo.Result{}, 10); chart != "" {
		t.Errorf("Expected empty chart for no trials, got:\n%s", chart)
	}
}

func TestGenerateImpactChart(t *testing.T) {
	combined := risk.CombinedImpact{
		Objectives:   []string{"Schedule", "Budget"},
		ImpactScores: []float64{7.5, 3.3},
	}

	chart := GenerateImpactChart(combined)
	if !strings.Contains(chart, "\"Schedule\"") || !strings.Contains(chart, "\"Budget\"") {
		t.Errorf("Chart missing objective labels:\n%s", chart)
	}
	if !strings.Contains(chart, "7.5") || !strings.Contains(chart, "3.3") {
		t.Errorf("Chart missing scores:\n%s", chart)
	}
	if !strings.Contains(chart, "0 --> 10") {
		t.Errorf("Impact chart must use the fixed 0-10 scale:\n%s", chart)
	}
}

func TestGenerateImpactChart_Empty(t *testing.T) {
	if chart := GenerateImpactChart(risk.CombinedImpact{}); chart != "" {
		t.Errorf("Expected empty chart for no objectives, got:\n%s", chart)
	}
}
