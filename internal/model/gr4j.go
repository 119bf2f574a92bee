package model

var gr4jTopology = topology{name: "GR4J", params: 4, stores: 2, uh1: true, uh2: true}

// GR4J simulates daily flow with the canonical four-parameter topology:
//
//	X1 production store capacity [mm]
//	X2 inter-catchment exchange coefficient [mm/d]
//	X3 routing store capacity [mm]
//	X4 unit hydrograph time base [d]
//
// The returned state continues the simulation in a later call.
func GR4J(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr4jTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	return gr4(params, rainfall, evapotranspiration, st, DailyExponent, percolationGR4J)
}

// gr4 runs the shared GR4H/GR4J loop on validated input.
func gr4(params, rainfall, evapotranspiration []float64, st State, exp, percolation float64) (State, []float64, error) {
	x1, x2, x3, x4 := params[0], params[1], params[2], params[3]

	prod := productionStore{capacity: x1, percolation: percolation}
	rout := routingStore{capacity: x3, split: storageFraction, exchange: powerExchange(x2, x3)}
	uh1 := newUnitHydrograph(Ordinates1(x4, exp), st.UH1)
	uh2 := newUnitHydrograph(Ordinates2(x4, exp), st.UH2)
	s := clone(st.Stores)

	flow := make([]float64, len(rainfall))
	for t, rain := range rainfall {
		var routed float64
		s[0], routed = prod.step(s[0], rain, evapotranspiration[t])

		q1 := uh1.convolve(routed)
		q2 := uh2.convolve(routed)

		exch := rout.exchange(s[1])
		var qr float64
		s[1], qr = rout.drain(s[1], q1*rout.split+exch)

		flow[t] = qr + rout.direct(q2, exch)
	}
	return State{Stores: s, UH1: uh1.buf, UH2: uh2.buf}, flow, nil
}
