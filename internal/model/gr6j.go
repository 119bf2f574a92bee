package model

var gr6jTopology = topology{name: "GR6J", params: 6, stores: 3, uh1: true, uh2: true}

// GR6J extends GR4J with the threshold exchange of GR5J and an exponential
// store taking a share of UH1 output. X6 scales the exponential store; its
// level is allowed to go negative.
func GR6J(params, rainfall, evapotranspiration []float64, st State) (State, []float64, error) {
	if err := gr6jTopology.validate(params, rainfall, evapotranspiration, st); err != nil {
		return State{}, nil, err
	}
	x1, x2, x3, x4, x5, x6 := params[0], params[1], params[2], params[3], params[4], params[5]

	prod := productionStore{capacity: x1, percolation: percolationDaily}
	rout := routingStore{capacity: x3, split: storageFraction, exchange: thresholdExchange(x2, x3, x5)}
	expo := exponentialStore{scale: x6}
	uh1 := newUnitHydrograph(Ordinates1(x4, DailyExponent), st.UH1)
	uh2 := newUnitHydrograph(Ordinates2(x4, DailyExponent), st.UH2)
	s := clone(st.Stores)
	ef := float64(expFraction)

	flow := make([]float64, len(rainfall))
	for t, rain := range rainfall {
		var routed float64
		s[0], routed = prod.step(s[0], rain, evapotranspiration[t])

		q1 := uh1.convolve(routed)
		q2 := uh2.convolve(routed)

		exch := rout.exchange(s[1])
		var qr, qe float64
		s[1], qr = rout.drain(s[1], q1*rout.split*(1-ef)+exch)
		s[2], qe = expo.drain(s[2], q1*rout.split*ef+exch)

		flow[t] = qr + rout.direct(q2, exch) + qe
	}
	return State{Stores: s, UH1: uh1.buf, UH2: uh2.buf}, flow, nil
}
