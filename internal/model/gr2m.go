package model

import "math"

var gr2mTopology = topology{name: "GR2M", params: 2, stores: 2}

// GR2M simulates monthly flow. X1 is the production store capacity (mm),
// X2 the groundwater exchange coefficient applied to the routing store.
func GR2M(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr2mTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	x1, x2 := params[0], params[1]
	prod, rout := st.Stores[0], st.Stores[1]

	flow := make([]float64, len(rainfall))
	for t, rain := range rainfall {
		// Rainfall fills the store, then evapotranspiration drains it.
		ws := scaledTanh(rain, x1)
		s1 := (prod + x1*ws) / (1 + prod/x1*ws)
		p1 := rain + prod - s1

		we := scaledTanh(evapotranspiration[t], x1)
		s2 := s1 * (1 - we) / (1 + (1-s1/x1)*we)

		// Cube-law percolation.
		sr := s2 / x1
		sr = sr*sr*sr + 1
		prod = s2 / math.Pow(sr, 1.0/3)

		p3 := p1 + s2 - prod
		r := x2 * (rout + p3)
		flow[t] = r * r / (r + gr2mRoutingScale)
		rout = r - flow[t]
	}
	return State{Stores: []float64{prod, rout}}, flow, nil
}
