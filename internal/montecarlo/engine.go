package montecarlo

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"riskcast/internal/project"
)

// ErrInvalidInput marks precondition failures (no tasks, bad iteration count,
// negative uncertainty). Callers match it with errors.Is and surface an
// actionable message; no partial result is ever returned alongside it.
var ErrInvalidInput = errors.New("invalid simulation input")

// Engine performs the Monte-Carlo schedule simulation.
type Engine struct {
	rng     *rand.Rand
	workers int
}

// Result holds the raw outcome of every trial, in trial order. Percentiles
// and summary statistics are derived from Durations on demand, never stored.
type Result struct {
	Durations       []float64   `json:"durations"`
	CompletionDates []time.Time `json:"completion_dates"`
	Anchor          time.Time   `json:"anchor"`
}

func NewEngine() *Engine {
	return &Engine{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		workers: runtime.NumCPU(),
	}
}

// SetSeed fixes the random source for reproducible runs.
func (e *Engine) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// SetWorkers overrides the number of parallel trial workers (default NumCPU).
func (e *Engine) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// Run executes the requested number of independent trials. Each trial samples
// every task duration from a triangular distribution bounded by the
// uncertainty factor and sums the samples into a total project duration.
//
// The total is a flat sum: dependency structure is deliberately not consulted
// here. Dependency-aware analysis lives in the schedule package and is
// reported separately.
func (e *Engine) Run(tasks []project.Task, uncertainty float64, iterations int, anchor time.Time) (Result, error) {
	if len(tasks) == 0 {
		return Result{}, fmt.Errorf("%w: no tasks to simulate; add tasks before running a simulation", ErrInvalidInput)
	}
	if iterations < 1 {
		return Result{}, fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidInput, iterations)
	}
	if uncertainty < 0 {
		return Result{}, fmt.Errorf("%w: uncertainty must not be negative, got %.2f", ErrInvalidInput, uncertainty)
	}

	durations := make([]float64, iterations)
	completions := make([]time.Time, iterations)

	workers := e.workers
	if workers < 1 {
		workers = 1
	}
	if workers > iterations {
		workers = iterations
	}

	// Each worker owns an RNG stream split deterministically from the engine
	// source, so a seeded run is reproducible regardless of scheduling and
	// trials never contend on a shared generator.
	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = e.rng.Int63()
	}

	chunk := (iterations + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, iterations)
		if start >= end {
			break
		}
		rng := rand.New(rand.NewSource(seeds[w]))
		g.Go(func() error {
			for i := start; i < end; i++ {
				var total float64
				for _, t := range tasks {
					total += sampleTriangular(rng, t.Duration*(1-uncertainty), t.Duration, t.Duration*(1+uncertainty))
				}
				durations[i] = total
				completions[i] = dateAfter(anchor, total)
			}
			return nil
		})
	}
	// Workers write disjoint index ranges and never fail.
	_ = g.Wait()

	return Result{Durations: durations, CompletionDates: completions, Anchor: anchor}, nil
}

// ConfidenceLevel is the duration (and mapped completion date) below which
// the given percentage of trials fall.
type ConfidenceLevel struct {
	Percentile float64   `json:"percentile"`
	Days       float64   `json:"days"`
	Date       time.Time `json:"date"`
}

// ConfidenceLevel computes the p-th percentile duration via linear
// interpolation and maps it back to a calendar date from the anchor.
func (r Result) ConfidenceLevel(p float64) ConfidenceLevel {
	days := Percentile(r.Durations, p)
	return ConfidenceLevel{Percentile: p, Days: days, Date: dateAfter(r.Anchor, days)}
}

// Summary holds derived statistics over all trials.
type Summary struct {
	Trials   int       `json:"trials"`
	MinDays  float64   `json:"min_days"`
	MeanDays float64   `json:"mean_days"`
	MaxDays  float64   `json:"max_days"`
	Earliest time.Time `json:"earliest_completion"`
	Likely   time.Time `json:"most_likely_completion"`
	Latest   time.Time `json:"latest_completion"`
}

// Summarize derives min/mean/max statistics from the trial durations.
func (r Result) Summarize() Summary {
	s := Summary{Trials: len(r.Durations)}
	if s.Trials == 0 {
		return s
	}

	s.MinDays = r.Durations[0]
	s.MaxDays = r.Durations[0]
	var sum float64
	for _, d := range r.Durations {
		if d < s.MinDays {
			s.MinDays = d
		}
		if d > s.MaxDays {
			s.MaxDays = d
		}
		sum += d
	}
	s.MeanDays = sum / float64(s.Trials)
	s.Earliest = dateAfter(r.Anchor, s.MinDays)
	s.Likely = dateAfter(r.Anchor, s.MeanDays)
	s.Latest = dateAfter(r.Anchor, s.MaxDays)
	return s
}

func dateAfter(anchor time.Time, days float64) time.Time {
	return anchor.Add(time.Duration(days * 24 * float64(time.Hour)))
}
