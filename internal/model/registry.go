/*
PURPOSE:
  Describes each model (timestep, parameter and store names, unit
  hydrographs, default buffer lengths) and maps names to drivers.

REQUIREMENTS:
  User-specified:
  - Select a model by name from config files and the CLI.

  Implementation-discovered:
  - Store names double as YAML keys for initial fractions.
  - Default buffers are 20/40 daily steps (480/960 hourly) so a
    catchment can continue with a different X4 without reallocating.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/config, internal/cli

ERROR HANDLING:
  - Lookup wraps ErrUnknownModel; NewState wraps the driver sentinels.

USAGE:
  info, err := model.Lookup("gr4j")
  st, err := info.NewState(params, 0.3*params[0], 0.5*params[2])
*/

package model

import (
	"fmt"
	"sort"
	"strings"
)

// Timestep is the input resolution a model was calibrated for.
type Timestep string

const (
	Hourly  Timestep = "hourly"
	Daily   Timestep = "daily"
	Monthly Timestep = "monthly"
	Annual  Timestep = "annual"
)

// Driver is the calling convention shared by all six models: parameters,
// climate series and a prior state in; the next state and the flow series out.
// Inputs are never modified.
type Driver func(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error)

// Info describes a registered model.
type Info struct {
	Name           string
	Timestep       Timestep
	ParameterNames []string
	// StoreNames[i] names State.Stores[i]; StoreScales[i] is the index of
	// the parameter its level is expressed against when given as a fraction.
	StoreNames  []string
	StoreScales []int
	UH1, UH2    bool
	// Default pipeline lengths, grown to ceil(X4) / ceil(2*X4) when needed.
	DefaultUH1 int
	DefaultUH2 int
	Run        Driver
}

// NumParameters returns the model arity.
func (i Info) NumParameters() int {
	return len(i.ParameterNames)
}

// NewState allocates a state with the given store levels (mm) and empty
// unit hydrographs sized for params.
func (i Info) NewState(params []float64, levels ...float64) (State, error) {
	if len(params) != i.NumParameters() {
		return State{}, fmt.Errorf("%w: %s expects %d parameters, got %d", ErrInvalidParameterCount, i.Name, i.NumParameters(), len(params))
	}
	if len(levels) != len(i.StoreNames) {
		return State{}, fmt.Errorf("%w: %s expects %d stores, got %d", ErrInvalidStateSize, i.Name, len(i.StoreNames), len(levels))
	}

	st := State{Stores: clone(levels)}
	if st.Stores == nil {
		st.Stores = []float64{}
	}
	if !i.UH1 && !i.UH2 {
		return st, nil
	}
	x4 := params[3]
	if err := CheckTimeBase(x4); err != nil {
		return State{}, err
	}
	if i.UH1 {
		st.UH1 = make([]float64, max(i.DefaultUH1, Length1(x4)))
	}
	if i.UH2 {
		st.UH2 = make([]float64, max(i.DefaultUH2, Length2(x4)))
	}
	return st, nil
}

var registry = map[string]Info{
	"GR1A": {
		Name:           "GR1A",
		Timestep:       Annual,
		ParameterNames: []string{"X1"},
		Run:            GR1A,
	},
	"GR2M": {
		Name:           "GR2M",
		Timestep:       Monthly,
		ParameterNames: []string{"X1", "X2"},
		StoreNames:     []string{"production_store", "routing_store"},
		StoreScales:    []int{0, 1},
		Run:            GR2M,
	},
	"GR4H": {
		Name:           "GR4H",
		Timestep:       Hourly,
		ParameterNames: []string{"X1", "X2", "X3", "X4"},
		StoreNames:     []string{"production_store", "routing_store"},
		StoreScales:    []int{0, 2},
		UH1:            true,
		UH2:            true,
		DefaultUH1:     20 * 24,
		DefaultUH2:     40 * 24,
		Run:            GR4H,
	},
	"GR4J": {
		Name:           "GR4J",
		Timestep:       Daily,
		ParameterNames: []string{"X1", "X2", "X3", "X4"},
		StoreNames:     []string{"production_store", "routing_store"},
		StoreScales:    []int{0, 2},
		UH1:            true,
		UH2:            true,
		DefaultUH1:     20,
		DefaultUH2:     40,
		Run:            GR4J,
	},
	"GR5J": {
		Name:           "GR5J",
		Timestep:       Daily,
		ParameterNames: []string{"X1", "X2", "X3", "X4", "X5"},
		StoreNames:     []string{"production_store", "routing_store"},
		StoreScales:    []int{0, 2},
		UH2:            true,
		DefaultUH2:     40,
		Run:            GR5J,
	},
	"GR6J": {
		Name:           "GR6J",
		Timestep:       Daily,
		ParameterNames: []string{"X1", "X2", "X3", "X4", "X5", "X6"},
		StoreNames:     []string{"production_store", "routing_store", "exponential_store"},
		StoreScales:    []int{0, 2, 5},
		UH1:            true,
		UH2:            true,
		DefaultUH1:     20,
		DefaultUH2:     40,
		Run:            GR6J,
	},
}

// Lookup returns the model registered under name (case-insensitive).
func Lookup(name string) (Info, error) {
	info, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return info, nil
}

// Names lists the registered models in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
