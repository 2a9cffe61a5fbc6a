package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// PlanDTO is the wire shape of a plan snapshot file. Dates travel as
// YYYY-MM-DD strings and are parsed during mapping.
type PlanDTO struct {
	Name   string    `json:"name" jsonschema:"project name"`
	Anchor string    `json:"anchor_date,omitempty" jsonschema:"baseline start date (YYYY-MM-DD), defaults to today"`
	Tasks  []TaskDTO `json:"wbs" jsonschema:"work breakdown structure tasks"`
	Risks  []RiskDTO `json:"risks,omitempty" jsonschema:"RAID log risks"`
}

type TaskDTO struct {
	ID           string   `json:"id" jsonschema:"task identifier"`
	Name         string   `json:"name,omitempty"`
	Duration     float64  `json:"duration" jsonschema:"duration in working days, must be >= 0"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Critical     bool     `json:"critical,omitempty" jsonschema:"true if the task is on the critical path"`
	Progress     float64  `json:"progress,omitempty" jsonschema:"completion percentage 0-100"`
	Dependencies []string `json:"dependencies,omitempty" jsonschema:"IDs of predecessor tasks"`
}

type RiskDTO struct {
	Description string `json:"description" jsonschema:"risk description, acts as identity within the plan"`
	Severity    string `json:"severity,omitempty" jsonschema:"Low, Medium or High"`
	Probability string `json:"probability,omitempty" jsonschema:"Low, Medium or High"`
	Category    string `json:"category,omitempty" jsonschema:"technical, schedule, cost, resource, scope, quality or external"`
	Mitigation  string `json:"mitigation,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Status      string `json:"status,omitempty"`
}

const dateLayout = "2006-01-02"

// Load reads, validates and maps a plan snapshot from a JSON file.
// The file is validated against the schema derived from PlanDTO before
// unmarshaling so malformed snapshots fail with a field-level message
// instead of a zero-valued plan.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	if err := validateSnapshot(data); err != nil {
		return nil, fmt.Errorf("plan file %s is not a valid snapshot: %w", filepath.Base(path), err)
	}

	var dto PlanDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	plan, err := MapPlan(dto)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("plan", plan.Name).
		Int("tasks", len(plan.Tasks)).
		Int("risks", len(plan.Risks)).
		Msg("Loaded plan snapshot")

	return plan, nil
}

// Save writes a plan back to disk in the wire format.
func Save(plan *Plan, path string) error {
	dto := unmapPlan(plan)
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

func validateSnapshot(data []byte) error {
	schema, err := jsonschema.For[PlanDTO](nil)
	if err != nil {
		return fmt.Errorf("failed to derive snapshot schema: %w", err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("failed to resolve snapshot schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return resolved.Validate(raw)
}

// MapPlan transforms a PlanDTO into a domain Plan, parsing dates and
// enforcing snapshot invariants.
func MapPlan(dto PlanDTO) (*Plan, error) {
	plan := &Plan{
		Name:   dto.Name,
		Anchor: time.Now().Truncate(24 * time.Hour),
	}

	if dto.Anchor != "" {
		t, err := time.Parse(dateLayout, dto.Anchor)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor_date %q: %w", dto.Anchor, err)
		}
		plan.Anchor = t
	}

	for _, td := range dto.Tasks {
		if td.Duration < 0 {
			return nil, fmt.Errorf("task %q has negative duration %.1f", td.ID, td.Duration)
		}

		task := Task{
			ID:           td.ID,
			Name:         td.Name,
			Duration:     td.Duration,
			Critical:     td.Critical,
			Progress:     td.Progress,
			Dependencies: td.Dependencies,
		}
		if td.StartDate != "" {
			if t, err := time.Parse(dateLayout, td.StartDate); err == nil {
				task.StartDate = t
			}
		}
		if td.EndDate != "" {
			if t, err := time.Parse(dateLayout, td.EndDate); err == nil {
				task.EndDate = t
			}
		}
		plan.Tasks = append(plan.Tasks, task)
	}

	// Earliest task start beats the declared anchor when both are present.
	for _, t := range plan.Tasks {
		if !t.StartDate.IsZero() && t.StartDate.Before(plan.Anchor) {
			plan.Anchor = t.StartDate
		}
	}

	for _, rd := range dto.Risks {
		plan.Risks = append(plan.Risks, Risk{
			Description: rd.Description,
			Severity:    rd.Severity,
			Probability: rd.Probability,
			Category:    rd.Category,
			Mitigation:  rd.Mitigation,
			Owner:       rd.Owner,
			Status:      rd.Status,
		})
	}

	return plan, nil
}

func unmapPlan(plan *Plan) PlanDTO {
	dto := PlanDTO{
		Name:   plan.Name,
		Anchor: plan.Anchor.Format(dateLayout),
	}
	for _, t := range plan.Tasks {
		td := TaskDTO{
			ID:           t.ID,
			Name:         t.Name,
			Duration:     t.Duration,
			Critical:     t.Critical,
			Progress:     t.Progress,
			Dependencies: t.Dependencies,
		}
		if !t.StartDate.IsZero() {
			td.StartDate = t.StartDate.Format(dateLayout)
		}
		if !t.EndDate.IsZero() {
			td.EndDate = t.EndDate.Format(dateLayout)
		}
		dto.Tasks = append(dto.Tasks, td)
	}
	for _, r := range plan.Risks {
		dto.Risks = append(dto.Risks, RiskDTO{
			Description: r.Description,
			Severity:    r.Severity,
			Probability: r.Probability,
			Category:    r.Category,
			Mitigation:  r.Mitigation,
			Owner:       r.Owner,
			Status:      r.Status,
		})
	}
	return dto
}
