package model

// unitHydrograph is a FIFO of routed water already apportioned to future
// timesteps. Only the first len(ord) positions of buf take part in the
// convolution; any tail beyond that is carried through untouched.
type unitHydrograph struct {
	ord []float64
	buf []float64
}

func newUnitHydrograph(ord, buf []float64) *unitHydrograph {
	return &unitHydrograph{ord: ord, buf: clone(buf)}
}

// convolve shifts the pipeline one step, spreads input over it and returns
// the water arriving this timestep (the head after the shift).
func (u *unitHydrograph) convolve(input float64) float64 {
	last := len(u.ord) - 1
	for i := 0; i < last; i++ {
		u.buf[i] = u.buf[i+1] + u.ord[i]*input
	}
	u.buf[last] = u.ord[last] * input
	return u.buf[0]
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
