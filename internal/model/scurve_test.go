package model

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSCurveValues(t *testing.T) {
	tests := []struct {
		name string
		s    func(int, float64, float64) float64
		t    int
		x4   float64
		exp  float64
		want float64
	}{
		{"S1 origin", SCurve1, 0, 2.0, 2.5, 0},
		{"S1 rising", SCurve1, 1, 2.0, 1.0, 0.5},
		{"S1 saturated", SCurve1, 2, 1.0, 1.0, 1.0},
		{"S1 at time base", SCurve1, 2, 2.0, 2.5, 1.0},
		{"S2 origin", SCurve2, 0, 2.0, 2.5, 0},
		{"S2 rising", SCurve2, 1, 2.0, 1.0, 0.25},
		{"S2 falling", SCurve2, 3, 2.0, 1.0, 0.75},
		{"S2 saturated", SCurve2, 2, 1.0, 1.0, 1.0},
		{"S2 midpoint", SCurve2, 2, 2.0, 2.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s(tt.t, tt.x4, tt.exp))
		})
	}
}

func TestOrdinatesGR4J(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	wantUH1 := []float64{0.13803916620160606, 0.6428282777223341, 0.21913255607605986}
	if diff := cmp.Diff(wantUH1, Ordinates1(2.208, DailyExponent), approx); diff != "" {
		t.Errorf("UH1 ordinates mismatch (-want +got):\n%s", diff)
	}

	wantUH2 := []float64{0.06901958310080303, 0.32141413886116704, 0.44489021900358455, 0.15697224734804904, 0.0077038116863963335}
	if diff := cmp.Diff(wantUH2, Ordinates2(2.208, DailyExponent), approx); diff != "" {
		t.Errorf("UH2 ordinates mismatch (-want +got):\n%s", diff)
	}
}

func TestOrdinatesSumToOne(t *testing.T) {
	for _, x4 := range []float64{0.3, 0.5, 1, 1.999, 2, 2.001, 2.208, 4.124, 10, 37.5} {
		for _, exp := range []float64{HourlyExponent, DailyExponent} {
			var sum1, sum2 float64
			for _, v := range Ordinates1(x4, exp) {
				assert.GreaterOrEqual(t, v, 0.0)
				sum1 += v
			}
			for _, v := range Ordinates2(x4, exp) {
				assert.GreaterOrEqual(t, v, 0.0)
				sum2 += v
			}
			assert.InDelta(t, 1.0, sum1, 1e-12, "UH1 x4=%v exp=%v", x4, exp)
			assert.InDelta(t, 1.0, sum2, 1e-12, "UH2 x4=%v exp=%v", x4, exp)
		}
	}
}

func TestOrdinateLengths(t *testing.T) {
	tests := []struct {
		x4    float64
		want1 int
		want2 int
	}{
		{0.3, 1, 1},
		{0.5, 1, 1},
		{0.51, 1, 2},
		{1, 1, 2},
		{1.999, 2, 4},
		{2, 2, 4},
		{2.001, 3, 5},
		{2.5, 3, 5},
		{3, 3, 6},
	}

	for _, tt := range tests {
		assert.Len(t, Ordinates1(tt.x4, DailyExponent), tt.want1, "UH1 x4=%v", tt.x4)
		assert.Len(t, Ordinates2(tt.x4, DailyExponent), tt.want2, "UH2 x4=%v", tt.x4)
		assert.Equal(t, tt.want1, Length1(tt.x4))
		assert.Equal(t, tt.want2, Length2(tt.x4))
	}
}

func TestOrdinatesIntegralTimeBase(t *testing.T) {
	// At an integral X4 the last ordinate still carries the remaining mass.
	o1 := Ordinates1(2, DailyExponent)
	assert.InDelta(t, 1-SCurve1(1, 2, DailyExponent), o1[1], 1e-15)

	o2 := Ordinates2(2, DailyExponent)
	assert.InDelta(t, 1-SCurve2(3, 2, DailyExponent), o2[3], 1e-15)
}

func TestCheckTimeBase(t *testing.T) {
	for _, x4 := range []float64{0.5, 2.208, MaxTimeBase} {
		assert.NoError(t, CheckTimeBase(x4), "x4=%v", x4)
	}
	for _, x4 := range []float64{0, -1, math.NaN(), math.Inf(1), MaxTimeBase + 1, 1e19} {
		assert.True(t, errors.Is(CheckTimeBase(x4), ErrInvalidParameter), "x4=%v", x4)
	}
}
