/*
PURPOSE:
  Goodness-of-fit criteria comparing simulated and observed flow.

REQUIREMENTS:
  Implementation-discovered:
  - Observations carry gaps (NaN); those timesteps are skipped.
  - A warm-up period at the start of a run is excluded from scoring.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Depends on: gonum floats/stat for the moments and correlation

ERROR HANDLING:
  - ErrLengthMismatch if the series differ in length.
  - ErrNoData if nothing is left to compare after warm-up and gap removal.
*/

package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch indicates simulated and observed series differ in length.
	ErrLengthMismatch = errors.New("metrics: series length mismatch")

	// ErrNoData indicates no comparable timestep remained.
	ErrNoData = errors.New("metrics: no data to compare")
)

// Scores groups the criteria computed by Evaluate.
type Scores struct {
	RMSE  float64 `json:"rmse"`
	NSE   float64 `json:"nse"`
	KGE   float64 `json:"kge"`
	PBias float64 `json:"pbias"`
	N     int     `json:"n"`
}

// Map flattens the scores for records keyed by criterion name.
func (s Scores) Map() map[string]float64 {
	return map[string]float64{
		"rmse":  s.RMSE,
		"nse":   s.NSE,
		"kge":   s.KGE,
		"pbias": s.PBias,
	}
}

// Evaluate scores sim against obs, ignoring the first warmup timesteps.
func Evaluate(sim, obs []float64, warmup int) (Scores, error) {
	s, o, err := pairs(sim, obs, warmup)
	if err != nil {
		return Scores{}, err
	}
	return Scores{
		RMSE:  rmse(s, o),
		NSE:   nse(s, o),
		KGE:   kge(s, o),
		PBias: pbias(s, o),
		N:     len(s),
	}, nil
}

// RMSE is the root mean square error.
func RMSE(sim, obs []float64) (float64, error) {
	s, o, err := pairs(sim, obs, 0)
	if err != nil {
		return 0, err
	}
	return rmse(s, o), nil
}

// NSE is the Nash-Sutcliffe efficiency; 1 is a perfect fit.
func NSE(sim, obs []float64) (float64, error) {
	s, o, err := pairs(sim, obs, 0)
	if err != nil {
		return 0, err
	}
	return nse(s, o), nil
}

// KGE is the Kling-Gupta efficiency (2009 formulation).
func KGE(sim, obs []float64) (float64, error) {
	s, o, err := pairs(sim, obs, 0)
	if err != nil {
		return 0, err
	}
	return kge(s, o), nil
}

// PBias is the percent bias of total simulated volume, positive for overestimation.
func PBias(sim, obs []float64) (float64, error) {
	s, o, err := pairs(sim, obs, 0)
	if err != nil {
		return 0, err
	}
	return pbias(s, o), nil
}

func pairs(sim, obs []float64, warmup int) ([]float64, []float64, error) {
	if len(sim) != len(obs) {
		return nil, nil, fmt.Errorf("%w: %d simulated, %d observed", ErrLengthMismatch, len(sim), len(obs))
	}
	if warmup < 0 {
		warmup = 0
	}
	var s, o []float64
	for i := warmup; i < len(sim); i++ {
		if math.IsNaN(obs[i]) || math.IsNaN(sim[i]) {
			continue
		}
		s = append(s, sim[i])
		o = append(o, obs[i])
	}
	if len(s) == 0 {
		return nil, nil, ErrNoData
	}
	return s, o, nil
}

func rmse(s, o []float64) float64 {
	return floats.Distance(s, o, 2) / math.Sqrt(float64(len(s)))
}

func nse(s, o []float64) float64 {
	sse := floats.Distance(s, o, 2)
	_, vo := stat.PopMeanVariance(o, nil)
	return 1 - sse*sse/(vo*float64(len(o)))
}

// kge follows Gupta et al. (2009): correlation, variability ratio and bias ratio.
func kge(s, o []float64) float64 {
	r := stat.Correlation(s, o, nil)
	alpha := stat.StdDev(s, nil) / stat.StdDev(o, nil)
	beta := stat.Mean(s, nil) / stat.Mean(o, nil)
	return 1 - math.Sqrt((r-1)*(r-1)+(alpha-1)*(alpha-1)+(beta-1)*(beta-1))
}

func pbias(s, o []float64) float64 {
	so := floats.Sum(o)
	return 100 * (floats.Sum(s) - so) / so
}
