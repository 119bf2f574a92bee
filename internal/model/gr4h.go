package model

var gr4hTopology = topology{name: "GR4H", params: 4, stores: 2, uh1: true, uh2: true}

// GR4H is the hourly variant of GR4J. It shares the topology but uses a
// flatter unit hydrograph and the sub-daily percolation constant.
func GR4H(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr4hTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	return gr4(params, rainfall, evapotranspiration, st, HourlyExponent, percolationGR4H)
}
