package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"riskcast/cmd/plangen/engine"
	"time"
)

func main() {
	scenario := flag.String("scenario", "website", "Scenario to generate: website, platform, rollout")
	outDir := flag.String("out", "./plans", "Output directory for plan files")
	seed := flag.Int64("seed", 0, "Random seed for generated progress values (0 = entropy)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' to %s...\n", cfg.Scenario, *outDir)

	plan, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate plan: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(*outDir, cfg.Scenario+".json")
	if err := engine.Save(plan, path); err != nil {
		fmt.Printf("Failed to save plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
