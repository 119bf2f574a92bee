package model

var gr5jTopology = topology{name: "GR5J", params: 5, stores: 2, uh2: true}

// GR5J drops UH1: both the routing store and the direct path are fed by
// UH2. X5 is the exchange threshold of the linear exchange term.
func GR5J(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr5jTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	x1, x2, x3, x4, x5 := params[0], params[1], params[2], params[3], params[4]

	prod := productionStore{capacity: x1, percolation: percolationDaily}
	rout := routingStore{capacity: x3, split: storageFraction, exchange: thresholdExchange(x2, x3, x5)}
	uh2 := newUnitHydrograph(Ordinates2(x4, DailyExponent), st.UH2)
	s := clone(st.Stores)

	flow := make([]float64, len(rainfall))
	for t, rain := range rainfall {
		var routed float64
		s[0], routed = prod.step(s[0], rain, evapotranspiration[t])

		q := uh2.convolve(routed)

		exch := rout.exchange(s[1])
		var qr float64
		s[1], qr = rout.drain(s[1], q*rout.split+exch)

		flow[t] = qr + rout.direct(q, exch)
	}
	return State{Stores: s, UH1: clone(st.UH1), UH2: uh2.buf}, flow, nil
}
