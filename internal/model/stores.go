/*
PURPOSE:
  Reservoir updates shared by the GR drivers: the production (soil) store
  with percolation, the nonlinear routing store, the groundwater exchange
  laws and the GR6J exponential store.

REQUIREMENTS:
  Implementation-discovered:
  - tanh arguments are clamped at 13; beyond that tanh is 1 in float64.
  - The routing split is held in a variable so 1-split rounds like the
    published models (0.09999999999999998, not 0.1).
  - The exponential store level may go negative; its outflow may not.

ARCHITECTURE INTEGRATION:
  - Called by: gr2m.go, gr4j.go, gr4h.go, gr5j.go, gr6j.go

IMPLEMENTATION RULES:
  - Value types with pure step methods; no allocation, no logging.
  - Constants must not be "tidied": fixtures depend on every digit.

RELATED FILES:
  - internal/model/stores_test.go
*/

package model

import "math"

const (
	// tanh(13) is 1 to double precision.
	tanhClamp = 13.0

	// Percolation constants, (9/4)^4 and (21/4)^4. GR4J keeps the rounded value it was published with.
	percolationGR4J  = 25.62891
	percolationDaily = 25.62890625
	percolationGR4H  = 759.69140625

	storageFraction = 0.9
	expFraction     = 0.4

	expRatioClamp  = 33.0
	expRatioSwitch = 7.0

	gr2mRoutingScale = 60.0
)

func scaledTanh(v, capacity float64) float64 {
	s := v / capacity
	if s > tanhClamp {
		s = tanhClamp
	}
	return math.Tanh(s)
}

// productionStore is the soil moisture reservoir of the GR4/5/6 family.
type productionStore struct {
	capacity    float64 // X1
	percolation float64
}

// step exchanges rainfall and evapotranspiration with the store, then
// percolates. It returns the new level and the water leaving for routing.
func (p productionStore) step(level, rain, evap float64) (float64, float64) {
	var routed float64
	fill := level / p.capacity
	if rain <= evap {
		ws := scaledTanh(evap-rain, p.capacity)
		level -= level * (2 - fill) * ws / (1 + (1-fill)*ws)
	} else {
		net := rain - evap
		ws := scaledTanh(net, p.capacity)
		absorbed := p.capacity * (1 - fill*fill) * ws / (1 + fill*ws)
		routed = net - absorbed
		level += absorbed
	}
	if level < 0 {
		level = 0
	}

	perc := level * (1 - 1/math.Pow(1+math.Pow(level/p.capacity, 4)/p.percolation, 0.25))
	return level - perc, routed + perc
}

// routingStore is the nonlinear reservoir fed by UH output and groundwater exchange.
type routingStore struct {
	capacity float64 // X3
	split    float64 // share of UH output routed through the store
	exchange func(level float64) float64
}

func powerExchange(x2, x3 float64) func(float64) float64 {
	return func(level float64) float64 {
		return x2 * math.Pow(level/x3, 3.5)
	}
}

func thresholdExchange(x2, x3, x5 float64) func(float64) float64 {
	return func(level float64) float64 {
		return x2 * (level/x3 - x5)
	}
}

// drain adds inflow, floors the level at zero and releases the routed flow.
func (r routingStore) drain(level, inflow float64) (float64, float64) {
	level += inflow
	if level < 0 {
		level = 0
	}
	q := level * (1 - 1/math.Pow(1+math.Pow(level/r.capacity, 4), 0.25))
	return level - q, q
}

// direct is the flow bypassing the store; strongly negative exchange cannot make it negative.
func (r routingStore) direct(head, exch float64) float64 {
	q := head*(1-r.split) + exch
	if q < 0 {
		return 0
	}
	return q
}

// exponentialStore is the GR6J store. Its level may go negative.
type exponentialStore struct {
	scale float64 // X6
}

func (e exponentialStore) drain(level, inflow float64) (float64, float64) {
	level += inflow
	q := exponentialFlow(level, e.scale)
	return level - q, q
}

func exponentialFlow(level, x6 float64) float64 {
	ratio := level / x6
	if ratio > expRatioClamp {
		ratio = expRatioClamp
	}
	if ratio < -expRatioClamp {
		ratio = -expRatioClamp
	}

	switch {
	case ratio > expRatioSwitch:
		return level + x6/math.Exp(ratio)
	case ratio < -expRatioSwitch:
		// Departs from the published x6/exp(ratio) on purpose: that form jumps at -7.
		return x6 * math.Exp(ratio)
	default:
		return x6 * math.Log(math.Exp(ratio)+1)
	}
}
