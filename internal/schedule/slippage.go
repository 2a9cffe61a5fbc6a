package schedule

import (
	"time"

	"riskcast/internal/project"
)

// SlippageReport summarizes the health of the tasks flagged as critical in
// the snapshot. "At risk" means under half done with the end date still
// ahead; "delayed" means the end date has passed without completion.
type SlippageReport struct {
	CriticalTasks int      `json:"critical_tasks"`
	Completed     int      `json:"completed"`
	AtRisk        []string `json:"at_risk,omitempty"`
	Delayed       []string `json:"delayed,omitempty"`
}

// AssessSlippage inspects the critical-path tasks of a plan relative to now.
// It reads the snapshot's critical flags rather than recomputing the path,
// so the report reflects the plan as its owner marked it.
func AssessSlippage(tasks []project.Task, now time.Time) SlippageReport {
	var report SlippageReport

	for _, t := range tasks {
		if !t.Critical {
			continue
		}
		report.CriticalTasks++

		switch {
		case t.Progress >= 100:
			report.Completed++
		case !t.EndDate.IsZero() && t.EndDate.Before(now):
			report.Delayed = append(report.Delayed, t.ID)
		case t.Progress < 50:
			report.AtRisk = append(report.AtRisk, t.ID)
		}
	}

	return report
}
