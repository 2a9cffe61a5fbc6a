package schedule

import (
	"sort"
	"time"

	"riskcast/internal/project"
)

// ApplyDurationDeltas returns a copy of tasks with duration changes applied,
// clamping at zero. Unknown IDs in deltas are ignored. The input slice is
// never mutated; what-if scenarios always work on copies.
func ApplyDurationDeltas(tasks []project.Task, deltas map[string]float64) []project.Task {
	out := make([]project.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if delta, ok := deltas[out[i].ID]; ok {
			out[i].Duration += delta
			if out[i].Duration < 0 {
				out[i].Duration = 0
			}
		}
	}
	return out
}

// Resequence recalculates start and end dates assuming strictly sequential
// execution in start-date order, beginning at the earliest task start (or
// the anchor when no task carries a date). This mirrors the scenario model
// of the what-if analysis: durations drive dates, dependencies do not.
func Resequence(tasks []project.Task, anchor time.Time) []project.Task {
	out := make([]project.Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].StartDate, out[j].StartDate
		if a.IsZero() || b.IsZero() {
			return b.IsZero() && !a.IsZero()
		}
		return a.Before(b)
	})

	current := anchor
	if len(out) > 0 && !out[0].StartDate.IsZero() {
		current = out[0].StartDate
	}

	for i := range out {
		out[i].StartDate = current
		end := current.Add(time.Duration(out[i].Duration * 24 * float64(time.Hour)))
		out[i].EndDate = end
		current = end
	}
	return out
}
