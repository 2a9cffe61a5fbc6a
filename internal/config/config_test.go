package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultIterations != 1000 {
		t.Errorf("Expected default 1000 iterations, got %d", cfg.DefaultIterations)
	}
	if cfg.DefaultUncertainty != 0.2 {
		t.Errorf("Expected default uncertainty 0.2, got %f", cfg.DefaultUncertainty)
	}
	if cfg.SimulationSeed != 0 {
		t.Errorf("Expected seed 0 (entropy), got %d", cfg.SimulationSeed)
	}
	if cfg.EnableMermaidCharts || cfg.EnableHTMLReports || cfg.OpenReports {
		t.Errorf("Feature toggles must default to off: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dataPath := t.TempDir()
	t.Setenv("DATA_PATH", dataPath)
	t.Setenv("DEFAULT_ITERATIONS", "5000")
	t.Setenv("DEFAULT_UNCERTAINTY", "0.35")
	t.Setenv("SIMULATION_SEED", "42")
	t.Setenv("ENABLE_MERMAID_CHARTS", "true")
	t.Setenv("PLANS_FOLDER", filepath.Join(dataPath, "my-plans"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultIterations != 5000 {
		t.Errorf("Expected 5000 iterations, got %d", cfg.DefaultIterations)
	}
	if cfg.DefaultUncertainty != 0.35 {
		t.Errorf("Expected uncertainty 0.35, got %f", cfg.DefaultUncertainty)
	}
	if cfg.SimulationSeed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.SimulationSeed)
	}
	if !cfg.EnableMermaidCharts {
		t.Errorf("Expected mermaid charts enabled")
	}
	if cfg.PlansDir != filepath.Join(dataPath, "my-plans") {
		t.Errorf("Expected plans folder override, got %s", cfg.PlansDir)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("DEFAULT_ITERATIONS", "not-a-number")
	t.Setenv("DEFAULT_UNCERTAINTY", "lots")
	t.Setenv("ENABLE_HTML_REPORTS", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultIterations != 1000 {
		t.Errorf("Malformed int must fall back to 1000, got %d", cfg.DefaultIterations)
	}
	if cfg.DefaultUncertainty != 0.2 {
		t.Errorf("Malformed float must fall back to 0.2, got %f", cfg.DefaultUncertainty)
	}
	if cfg.EnableHTMLReports {
		t.Errorf("Malformed bool must fall back to false")
	}
}
