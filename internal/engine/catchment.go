/*
PURPOSE:
  Caller-side wrapper around a GR model driver for one catchment.
  Holds named parameters, the reservoir state between runs, and the
  input checks the simulation core deliberately leaves out.

REQUIREMENTS:
  User-specified:
  - Continue a simulation across calls without the caller touching buffers.
  - Store levels are exchanged as fractions of their capacity parameter.

  Implementation-discovered:
  - Calibrated parameter sets occasionally drift below physical limits;
    those are raised to a floor with a warning rather than rejected.
  - Unit hydrograph buffers must grow when X4 changes between catchments.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: internal/model, internal/output (logging)

ERROR HANDLING:
  - Missing parameters and out-of-range fractions are errors.
  - Negative or NaN climate values are logged, not rejected.
  - Driver errors are returned unchanged (errors.Is against model sentinels).

IMPLEMENTATION RULES:
  - A Catchment is not safe for concurrent use; the runner gives each
    scenario its own.

USAGE:
  c, err := engine.NewCatchment("GR4J", map[string]float64{"X1": 257.2, ...})
  flow, err := c.Run(rain, evap)
*/

package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/daryltucker/gr-runner/internal/model"
	"github.com/daryltucker/gr-runner/internal/output"
)

var (
	// ErrMissingParameter indicates a parameter required by the model was not supplied.
	ErrMissingParameter = errors.New("engine: missing parameter")

	// ErrInvalidFraction indicates a store fraction outside its allowed range.
	ErrInvalidFraction = errors.New("engine: invalid store fraction")

	// ErrUnknownStore indicates a state name the model does not have.
	ErrUnknownStore = errors.New("engine: unknown store")
)

// Lower bounds for capacities and time bases.
const (
	capacityFloor = 0.01
	timeBaseFloor = 0.5
)

var parameterFloors = map[string]map[string]float64{
	"GR2M": {"X1": capacityFloor, "X2": capacityFloor},
	"GR4H": {"X1": capacityFloor, "X3": capacityFloor, "X4": timeBaseFloor},
	"GR4J": {"X1": capacityFloor, "X3": capacityFloor, "X4": timeBaseFloor},
	"GR5J": {"X1": capacityFloor, "X3": capacityFloor, "X4": timeBaseFloor},
	"GR6J": {"X1": capacityFloor, "X3": capacityFloor, "X4": timeBaseFloor, "X6": capacityFloor},
}

// DefaultFractions are the initial store fill ratios when none are given.
var DefaultFractions = map[string]float64{
	"production_store":  0.3,
	"routing_store":     0.5,
	"exponential_store": 0.3,
}

// Catchment couples a model with its parameters and current state.
type Catchment struct {
	Info   model.Info
	params []float64
	state  model.State
}

// NewCatchment builds a catchment for the named model with default state.
func NewCatchment(name string, params map[string]float64) (*Catchment, error) {
	info, err := model.Lookup(name)
	if err != nil {
		return nil, err
	}

	vec := make([]float64, info.NumParameters())
	for i, p := range info.ParameterNames {
		v, ok := params[p]
		if !ok {
			return nil, fmt.Errorf("%w: %s requires %s", ErrMissingParameter, info.Name, p)
		}
		if floor, ok := parameterFloors[info.Name][p]; ok && v < floor {
			output.Logger.Warn("Parameter under threshold, raised to threshold",
				"model", info.Name, "parameter", p, "value", v, "threshold", floor)
			v = floor
		}
		vec[i] = v
	}
	for p := range params {
		if !slices.Contains(info.ParameterNames, p) {
			output.Logger.Warn("Ignoring unknown parameter", "model", info.Name, "parameter", p)
		}
	}

	c := &Catchment{Info: info, params: vec}
	if err := c.SetStates(nil); err != nil {
		return nil, err
	}
	return c, nil
}

// Parameters returns the effective parameters, after thresholds.
func (c *Catchment) Parameters() map[string]float64 {
	out := make(map[string]float64, len(c.params))
	for i, p := range c.Info.ParameterNames {
		out[p] = c.params[i]
	}
	return out
}

// SetStates resets the catchment to the given store fractions and empty
// unit hydrographs. Stores missing from fractions take DefaultFractions.
// Production and routing fractions must lie in [0, 1]; the exponential
// store may hold any finite ratio.
func (c *Catchment) SetStates(fractions map[string]float64) error {
	for name := range fractions {
		if !slices.Contains(c.Info.StoreNames, name) {
			return fmt.Errorf("%w: %s has no %s", ErrUnknownStore, c.Info.Name, name)
		}
	}

	levels := make([]float64, len(c.Info.StoreNames))
	for i, name := range c.Info.StoreNames {
		f, ok := fractions[name]
		if !ok {
			f = DefaultFractions[name]
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidFraction, name, f)
		}
		if name != "exponential_store" && (f < 0 || f > 1) {
			return fmt.Errorf("%w: %s = %v, want [0, 1]", ErrInvalidFraction, name, f)
		}
		levels[i] = f * c.params[c.Info.StoreScales[i]]
	}

	st, err := c.Info.NewState(c.params, levels...)
	if err != nil {
		return err
	}
	c.state = st
	return nil
}

// States returns the current store levels as fractions of their scaling parameter.
func (c *Catchment) States() map[string]float64 {
	out := make(map[string]float64, len(c.Info.StoreNames))
	for i, name := range c.Info.StoreNames {
		out[name] = c.state.Stores[i] / c.params[c.Info.StoreScales[i]]
	}
	return out
}

// State returns a copy of the raw model state (levels in mm and UH buffers).
func (c *Catchment) State() model.State {
	return c.state.Clone()
}

// Run simulates the series and keeps the resulting state for the next call.
// On error the state is left unchanged.
func (c *Catchment) Run(rainfall, evapotranspiration []float64) ([]float64, error) {
	checkSeries(c.Info.Name, "rainfall", rainfall)
	checkSeries(c.Info.Name, "evapotranspiration", evapotranspiration)

	next, flow, err := c.Info.Run(c.params, rainfall, evapotranspiration, c.state)
	if err != nil {
		return nil, err
	}
	c.state = next
	return flow, nil
}

func checkSeries(modelName, name string, v []float64) {
	var negative, missing int
	for _, x := range v {
		switch {
		case math.IsNaN(x):
			missing++
		case x < 0:
			negative++
		}
	}
	if missing > 0 {
		output.Logger.Warn("NA detected in input series", "model", modelName, "series", name, "count", missing)
	}
	if negative > 0 {
		output.Logger.Warn("Negative values detected in input series", "model", modelName, "series", name, "count", negative)
	}
}
