/*
PURPOSE:
  S-curves and unit hydrograph ordinate tables.

REQUIREMENTS:
  Implementation-discovered:
  - Ordinates are first differences of the S-curve, so each table sums to 1.
  - X4 is bounded above; a finite but huge X4 would overflow the table length.

ARCHITECTURE INTEGRATION:
  - Called by: the UH drivers, registry.go (NewState), internal/cli (ordinates)

ERROR HANDLING:
  - CheckTimeBase returns ErrInvalidParameter; nothing here panics on bad X4
    once it has been checked.
*/

package model

import (
	"fmt"
	"math"
)

// Unit hydrograph shape exponents.
const (
	// DailyExponent is used by GR4J, GR5J and GR6J.
	DailyExponent = 2.5
	// HourlyExponent is used by GR4H.
	HourlyExponent = 1.25
)

// SCurve1 is the cumulative response of the single-limb unit hydrograph (UH1)
// at timestep t for time base x4. SCurve1(0, ...) is 0.
func SCurve1(t int, x4, exp float64) float64 {
	tt := float64(t)
	if tt < x4 {
		return math.Pow(tt/x4, exp)
	}
	return 1
}

// SCurve2 is the cumulative response of the symmetric unit hydrograph (UH2),
// rising over [0, x4) and falling over [x4, 2*x4).
func SCurve2(t int, x4, exp float64) float64 {
	tt := float64(t)
	switch {
	case tt < x4:
		return 0.5 * math.Pow(tt/x4, exp)
	case tt < 2*x4:
		return 1 - 0.5*math.Pow(2-tt/x4, exp)
	default:
		return 1
	}
}

// MaxTimeBase bounds X4 so unit hydrograph tables stay allocatable.
const MaxTimeBase = 1 << 20

// CheckTimeBase reports an ErrInvalidParameter unless x4 lies in (0, MaxTimeBase].
func CheckTimeBase(x4 float64) error {
	if !(x4 > 0) || x4 > MaxTimeBase {
		return fmt.Errorf("%w: X4 must be in (0, %d], got %v", ErrInvalidParameter, MaxTimeBase, x4)
	}
	return nil
}

// Length1 is the number of UH1 ordinates for time base x4, ceil(x4).
func Length1(x4 float64) int {
	return int(math.Ceil(x4))
}

// Length2 is the number of UH2 ordinates for time base x4, ceil(2*x4).
func Length2(x4 float64) int {
	return int(math.Ceil(2 * x4))
}

// Ordinates1 returns the UH1 convolution weights S1(i) - S1(i-1), i = 1..ceil(x4).
// x4 must be positive.
func Ordinates1(x4, exp float64) []float64 {
	return ordinates(Length1(x4), x4, exp, SCurve1)
}

// Ordinates2 returns the UH2 convolution weights S2(i) - S2(i-1), i = 1..ceil(2*x4).
// x4 must be positive.
func Ordinates2(x4, exp float64) []float64 {
	return ordinates(Length2(x4), x4, exp, SCurve2)
}

func ordinates(n int, x4, exp float64, s func(int, float64, float64) float64) []float64 {
	o := make([]float64, n)
	for i := 1; i <= n; i++ {
		o[i-1] = s(i, x4, exp) - s(i-1, x4, exp)
	}
	return o
}
