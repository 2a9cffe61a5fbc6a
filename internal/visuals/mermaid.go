package visuals

import (
	"fmt"
	"math"
	"strings"

	"riskcast/internal/montecarlo"
	"riskcast/internal/risk"
)

// GenerateDurationHistogram creates a Mermaid xychart-beta showing the
// distribution of simulated project durations across the given number of
// buckets.
func GenerateDurationHistogram(result montecarlo.Result, buckets int) string {
	if len(result.Durations) == 0 {
		return ""
	}
	if buckets < 1 {
		buckets = 10
	}

	minD, maxD := result.Durations[0], result.Durations[0]
	for _, d := range result.Durations {
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	width := (maxD - minD) / float64(buckets)
	counts := make([]int, buckets)
	if width == 0 {
		// Zero-uncertainty runs collapse to a single bar.
		counts[0] = len(result.Durations)
	} else {
		for _, d := range result.Durations {
			idx := int((d - minD) / width)
			if idx >= buckets {
				idx = buckets - 1
			}
			counts[idx]++
		}
	}

	var labels []string
	var values []string
	maxCount := 0
	for i, c := range counts {
		mid := minD + (float64(i)+0.5)*width
		labels = append(labels, fmt.Sprintf("\"%.0fd\"", mid))
		values = append(values, fmt.Sprintf("%d", c))
		if c > maxCount {
			maxCount = c
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Simulated Project Duration Distribution\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Trials\" 0 --> %d\n", maxCount+int(math.Max(1, float64(maxCount)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateImpactChart creates a Mermaid bar chart of the combined risk
// impact per objective on the fixed 0-10 scale.
func GenerateImpactChart(combined risk.CombinedImpact) string {
	if len(combined.Objectives) == 0 {
		return ""
	}

	var labels []string
	var values []string
	for i, obj := range combined.Objectives {
		labels = append(labels, fmt.Sprintf("\"%s\"", obj))
		values = append(values, fmt.Sprintf("%.1f", combined.ImpactScores[i]))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Combined Risk Impact by Objective\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Impact Score\" 0 --> 10\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
