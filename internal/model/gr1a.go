package model

import "math"

var gr1aTopology = topology{name: "GR1A", params: 1}

// GR1A simulates annual flow with a single regression parameter X1.
// The first timestep has no previous year to draw on and is left at zero.
func GR1A(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr1aTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	x1 := params[0]

	flow := make([]float64, len(rainfall))
	for t := 1; t < len(rainfall); t++ {
		tt := (0.7*rainfall[t] + 0.3*rainfall[t-1]) / x1 / evapotranspiration[t]
		flow[t] = rainfall[t] * (1 - 1/math.Sqrt(1+tt*tt))
	}
	return State{Stores: []float64{}}, flow, nil
}
