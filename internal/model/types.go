/*
PURPOSE:
  Defines the data structures shared across GR Runner boundaries:
  the reservoir state carried between simulation calls, and the
  per-scenario result record written by the output layer.

REQUIREMENTS:
  User-specified:
  - State must round-trip between calls (continuation).
  - Record parameters, final state, flow and fit scores per scenario.

  Implementation-discovered:
  - Unit hydrograph buffers are part of the state, not of the parameters.
  - Need JSON tags for the JSONL writer.

ARCHITECTURE INTEGRATION:
  - Used by: internal/model drivers, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - State is treated as a value: drivers never mutate the caller's slices.

USAGE:
  st := model.State{Stores: []float64{77.17, 44.12}, UH1: make([]float64, 20), UH2: make([]float64, 40)}

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add field and update CSV/JSON writers.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new stores or result fields.
*/

package model

import (
	"time"
)

// State is the reservoir state of a model: store levels in mm and the
// unit hydrograph pipelines. Stores is ordered production, routing,
// exponential; UH1/UH2 are nil for models that do not use them.
type State struct {
	Stores []float64 `json:"stores"`
	UH1    []float64 `json:"uh1,omitempty"`
	UH2    []float64 `json:"uh2,omitempty"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Stores: clone(s.Stores),
		UH1:    clone(s.UH1),
		UH2:    clone(s.UH2),
	}
}

// Result represents the outcome of simulating one scenario.
type Result struct {
	RunID      string             `json:"run_id"`
	Scenario   string             `json:"scenario"`
	Model      string             `json:"model"`
	Timestep   Timestep           `json:"timestep"`
	Parameters map[string]float64 `json:"parameters"`
	Timestamp  time.Time          `json:"timestamp"`
	Duration   time.Duration      `json:"duration"`
	Steps      int                `json:"steps"`

	// Store fill levels after the last timestep, keyed by store name.
	FinalStates map[string]float64 `json:"final_states,omitempty"`

	Flow      []float64 `json:"flow,omitempty"`
	Observed  []float64 `json:"-"`
	TotalFlow float64   `json:"total_flow"`
	PeakFlow  float64   `json:"peak_flow"`

	// Goodness of fit after warm-up, present only when observations were supplied.
	Scores map[string]float64 `json:"scores,omitempty"`

	Error string `json:"error,omitempty"` // If the run failed
}
