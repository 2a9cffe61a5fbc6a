package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"

	"riskcast/internal/montecarlo"
	"riskcast/internal/risk"
)

// Data is everything one HTML report renders.
type Data struct {
	PlanName   string
	Generated  time.Time
	Summary    montecarlo.Summary
	Confidence []montecarlo.ConfidenceLevel
	Combined   risk.CombinedImpact

	// Histogram buckets of the duration distribution.
	BucketLabels []string
	BucketCounts []int
}

// BuildHistogram fills the report's histogram buckets from a simulation result.
func (d *Data) BuildHistogram(result montecarlo.Result, buckets int) {
	if len(result.Durations) == 0 {
		return
	}
	if buckets < 1 {
		buckets = 20
	}

	minD, maxD := result.Durations[0], result.Durations[0]
	for _, v := range result.Durations {
		if v < minD {
			minD = v
		}
		if v > maxD {
			maxD = v
		}
	}

	width := (maxD - minD) / float64(buckets)
	counts := make([]int, buckets)
	if width == 0 {
		counts[0] = len(result.Durations)
	} else {
		for _, v := range result.Durations {
			idx := int((v - minD) / width)
			if idx >= buckets {
				idx = buckets - 1
			}
			counts[idx]++
		}
	}

	for i, c := range counts {
		d.BucketLabels = append(d.BucketLabels, fmt.Sprintf("%.0f", minD+(float64(i)+0.5)*width))
		d.BucketCounts = append(d.BucketCounts, c)
	}
}

// Render produces a self-contained HTML document. The inline chart script is
// minified through esbuild so the report stays a single small file.
func Render(data Data) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"bucket_labels": data.BucketLabels,
		"bucket_counts": data.BucketCounts,
		"objectives":    data.Combined.Objectives,
		"impact_scores": data.Combined.ImpactScores,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report payload: %w", err)
	}

	minified := api.Transform(chartScript, api.TransformOptions{
		Loader:            api.LoaderJS,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: true,
	})
	if len(minified.Errors) > 0 {
		return nil, fmt.Errorf("failed to minify chart script: %s", minified.Errors[0].Text)
	}

	var buf bytes.Buffer
	err = reportTemplate.Execute(&buf, map[string]any{
		"Data":    data,
		"Payload": template.JS(payload),
		"Script":  template.JS(minified.Code),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAndOpen renders the report into dir and optionally opens it in the
// default browser. Returns the written file path.
func WriteAndOpen(data Data, dir string, open bool) (string, error) {
	html, err := Render(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := fmt.Sprintf("riskcast-%s.html", data.Generated.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, html, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	if open {
		if err := browser.OpenFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to open report in browser")
		}
	}
	return path, nil
}
