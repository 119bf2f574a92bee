/*
PURPOSE:
  High-level runner that orchestrates a batch of simulations.
  Each scenario is an independent catchment, so scenarios run in parallel.

REQUIREMENTS:
  User-specified:
  - Run every configured scenario.
  - Log results to CSV/JSON.

  Implementation-discovered:
  - Scenarios share no mutable state; parallelism is bounded by cfg.Workers.
  - One run ID stamps every record of a batch.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/model, internal/metrics, internal/output

ERROR HANDLING:
  - Logs scenario errors but continues (resilience); the error string
    lands in the JSON summary.
  - Returns an error only for setup failures or cancellation.

IMPLEMENTATION RULES:
  - errgroup with SetLimit for the fan-out.
  - Results keep configuration order regardless of completion order.

USAGE:
  results, err := engine.Run(ctx, cfg)

RELATED FILES:
  - internal/engine/catchment.go
*/

package engine

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/gr-runner/internal/config"
	"github.com/daryltucker/gr-runner/internal/metrics"
	"github.com/daryltucker/gr-runner/internal/model"
	"github.com/daryltucker/gr-runner/internal/output"
)

// Engine simulates scenarios for one batch.
type Engine struct {
	Config *config.Config
	RunID  string
}

// New creates a new Engine with a fresh run ID.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Config: cfg,
		RunID:  uuid.NewString(),
	}
}

// Simulate runs one scenario from its initial state. Failures are reported
// in Result.Error.
func (e *Engine) Simulate(s config.Scenario) model.Result {
	start := time.Now()
	res := model.Result{
		RunID:     e.RunID,
		Scenario:  s.Name,
		Model:     strings.ToUpper(s.Model),
		Timestamp: start,
		Steps:     len(s.Rainfall),
		Observed:  s.Observed,
	}

	c, err := NewCatchment(s.Model, s.Parameters)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Model = c.Info.Name
	res.Timestep = c.Info.Timestep
	res.Parameters = c.Parameters()

	if err := c.SetStates(s.States); err != nil {
		res.Error = err.Error()
		return res
	}

	flow, err := c.Run(s.Rainfall, s.Evapotranspiration)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Flow = flow
	res.FinalStates = c.States()
	for _, q := range flow {
		res.TotalFlow += q
		res.PeakFlow = math.Max(res.PeakFlow, q)
	}

	if len(s.Observed) > 0 {
		scores, err := metrics.Evaluate(flow, s.Observed, s.Warmup)
		if err != nil {
			output.Logger.Warn("Could not score scenario", "scenario", s.Name, "error", err)
		} else {
			res.Scores = finite(scores.Map())
		}
	}
	return res
}

// Run executes every selected scenario of cfg and returns the results in
// configuration order.
func Run(ctx context.Context, cfg *config.Config) ([]model.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scenarios := cfg.Filter()
	if len(scenarios) == 0 {
		output.Logger.Warn("No scenario left after filtering", "exclude", cfg.Exclude, "only", cfg.Only)
		return nil, nil
	}

	e := New(cfg)

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, strings.TrimSuffix(cfg.OutputFile, filepath.Ext(cfg.OutputFile))+".jsonl")
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()
	jsonWriter.KeepFlow = cfg.KeepFlow

	output.Logger.Info("Starting batch", "run_id", e.RunID, "scenarios", len(scenarios), "workers", cfg.Workers)

	results := make([]model.Result, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, s := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			output.Logger.Debug("Running scenario", "scenario", s.Name, "model", s.Model, "steps", len(s.Rainfall))
			res := e.Simulate(s)
			results[i] = res

			if res.Error != "" {
				output.Logger.Error("Scenario failed", "scenario", s.Name, "error", res.Error)
			} else {
				output.Logger.Info("Scenario complete",
					"scenario", s.Name,
					"model", res.Model,
					"steps", res.Steps,
					"peak_flow", fmt.Sprintf("%.3f", res.PeakFlow),
					"duration", res.Duration,
				)
				if err := csvWriter.Write(res); err != nil {
					output.Logger.Error("Failed to write result to CSV", "scenario", s.Name, "error", err)
				}
			}
			if err := jsonWriter.Write(res); err != nil {
				output.Logger.Error("Failed to write result to JSON", "scenario", s.Name, "error", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func finite(m map[string]float64) map[string]float64 {
	for k, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			delete(m, k)
		}
	}
	return m
}
