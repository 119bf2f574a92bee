/*
PURPOSE:
  Precondition checks every driver runs before touching its input.

ERROR HANDLING:
  - Checks run in a fixed order so the first failing rule names the error:
    parameter count, series lengths, empty series, store count, X4, buffers.
*/

package model

import "fmt"

// topology describes what a driver expects from its caller.
type topology struct {
	name   string
	params int
	stores int
	uh1    bool
	uh2    bool
}

func (tp topology) validate(params, rainfall, evapotranspiration []float64, st State) error {
	if len(params) != tp.params {
		return fmt.Errorf("%w: %s expects %d parameters, got %d", ErrInvalidParameterCount, tp.name, tp.params, len(params))
	}
	if len(rainfall) != len(evapotranspiration) {
		return fmt.Errorf("%w: rainfall has %d values, evapotranspiration %d", ErrLengthMismatch, len(rainfall), len(evapotranspiration))
	}
	if len(rainfall) == 0 {
		return ErrEmptySeries
	}
	if len(st.Stores) != tp.stores {
		return fmt.Errorf("%w: %s expects %d stores, got %d", ErrInvalidStateSize, tp.name, tp.stores, len(st.Stores))
	}
	if !tp.uh1 && !tp.uh2 {
		return nil
	}

	x4 := params[3]
	if err := CheckTimeBase(x4); err != nil {
		return err
	}
	if n := Length1(x4); tp.uh1 && len(st.UH1) < n {
		return fmt.Errorf("%w: UH1 needs %d values, got %d", ErrInvalidBufferSize, n, len(st.UH1))
	}
	if n := Length2(x4); tp.uh2 && len(st.UH2) < n {
		return fmt.Errorf("%w: UH2 needs %d values, got %d", ErrInvalidBufferSize, n, len(st.UH2))
	}
	return nil
}
