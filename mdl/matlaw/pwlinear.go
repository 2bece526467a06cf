// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/flikka/opm-material/mdl/pwlin"
	"github.com/flikka/opm-material/mdl/traits"
)

// PiecewiseLinear implements a tabulated two-phase law where capillary
// pressure and relative permeabilities are reconstructed by linear
// interpolation of sample points given as functions of the wetting saturation
//  Capillary pressure is extrapolated linearly outside its table.
//  Relative permeabilities are kept constant outside their tables, with zero derivatives.
type PiecewiseLinear struct {
	traits.TwoPhase
}

// add model to factory
func init() {
	allocators["pwlin"] = func(tr traits.TwoPhase) (Law, error) { return NewPiecewiseLinear(tr) }
}

// NewPiecewiseLinear returns a new tabulated law using the given phase indices
func NewPiecewiseLinear(tr traits.TwoPhase) (o *PiecewiseLinear, err error) {
	tr, err = traits.NewTwoPhase(tr.Wetting, tr.NonWetting)
	if err != nil {
		return
	}
	return &PiecewiseLinear{tr}, nil
}

// Flags returns the capability flags
func (o PiecewiseLinear) Flags() Flags {
	return Flags{
		TwoPhaseAPI:    true,
		TwoPhaseSatAPI: true,
		Saturation:     true,
	}
}

// CapillaryPressures computes capillary pressures with the wetting phase as reference
func (o PiecewiseLinear) CapillaryPressures(values []float64, prms *Params, fs FluidState) {
	values[o.Wetting] = 0
	values[o.NonWetting] = o.Pcnw(prms, fs)
}

// Saturations is not available
func (o PiecewiseLinear) Saturations(values []float64, prms *Params, fs FluidState) error {
	return unsupported("pwlin", "Saturations")
}

// RelativePermeabilities computes relative permeabilities
func (o PiecewiseLinear) RelativePermeabilities(values []float64, prms *Params, fs FluidState) {
	values[o.Wetting] = o.Krw(prms, fs)
	values[o.NonWetting] = o.Krn(prms, fs)
}

// DpcDsat computes ∂pc/∂s of all phases w.r.t. the saturation of satPhase
//  Only pcnw depends on sw
func (o PiecewiseLinear) DpcDsat(values []float64, prms *Params, fs FluidState, satPhase int) {
	values[o.Wetting] = 0
	values[o.NonWetting] = 0
	if satPhase == o.Wetting {
		values[o.NonWetting] = pwlin.Deriv(prms.Pcnw, fs.Saturation(o.Wetting))
	}
}

// DpcDpres computes ∂pc/∂p; i.e. zero
func (o PiecewiseLinear) DpcDpres(values []float64, prms *Params, fs FluidState, pPhase int) {
	zero(values[:traits.NumPhases])
}

// DpcDtemp computes ∂pc/∂T; i.e. zero
func (o PiecewiseLinear) DpcDtemp(values []float64, prms *Params, fs FluidState) {
	zero(values[:traits.NumPhases])
}

// DpcDmolfrac computes ∂pc/∂x; i.e. zero
func (o PiecewiseLinear) DpcDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int) {
	zero(values[:traits.NumPhases])
}

// DkrDsat computes ∂kr/∂s of all phases w.r.t. the saturation of satPhase
//  krn is tabulated against sw = 1 - sn, hence ∂krn/∂sn = -∂krn/∂sw
func (o PiecewiseLinear) DkrDsat(values []float64, prms *Params, fs FluidState, satPhase int) {
	values[o.Wetting] = 0
	values[o.NonWetting] = 0
	switch satPhase {
	case o.Wetting:
		values[o.Wetting] = o.TwoPhaseSatDkrwDsw(prms, fs.Saturation(o.Wetting))
	case o.NonWetting:
		values[o.NonWetting] = -o.TwoPhaseSatDkrnDsw(prms, 1-fs.Saturation(o.NonWetting))
	}
}

// DkrDpres computes ∂kr/∂p; i.e. zero
func (o PiecewiseLinear) DkrDpres(values []float64, prms *Params, fs FluidState, pPhase int) {
	zero(values[:traits.NumPhases])
}

// DkrDtemp computes ∂kr/∂T; i.e. zero
func (o PiecewiseLinear) DkrDtemp(values []float64, prms *Params, fs FluidState) {
	zero(values[:traits.NumPhases])
}

// DkrDmolfrac computes ∂kr/∂x; i.e. zero
func (o PiecewiseLinear) DkrDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int) {
	zero(values[:traits.NumPhases])
}

// Pcnw computes pn - pw
func (o PiecewiseLinear) Pcnw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatPcnw(prms, fs.Saturation(o.Wetting))
}

// TwoPhaseSatPcnw computes pn - pw at sw
func (o PiecewiseLinear) TwoPhaseSatPcnw(prms *Params, sw float64) float64 {
	return pwlin.Value(prms.Pcnw, sw)
}

// Sw is not available since pc(sw) is not invertible in general
func (o PiecewiseLinear) Sw(prms *Params, fs FluidState) (float64, error) {
	return 0, unsupported("pwlin", "Sw")
}

// TwoPhaseSatSw is not available since pc(sw) is not invertible in general
func (o PiecewiseLinear) TwoPhaseSatSw(prms *Params, pc float64) (float64, error) {
	return 0, unsupported("pwlin", "TwoPhaseSatSw")
}

// Sn computes 1 - Sw
func (o PiecewiseLinear) Sn(prms *Params, fs FluidState) (float64, error) {
	sw, err := o.Sw(prms, fs)
	if err != nil {
		return 0, err
	}
	return 1 - sw, nil
}

// TwoPhaseSatSn computes 1 - TwoPhaseSatSw
func (o PiecewiseLinear) TwoPhaseSatSn(prms *Params, pc float64) (float64, error) {
	sw, err := o.TwoPhaseSatSw(prms, pc)
	if err != nil {
		return 0, err
	}
	return 1 - sw, nil
}

// DpcnwDsw computes ∂pcnw/∂sw
func (o PiecewiseLinear) DpcnwDsw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatDpcnwDsw(prms, fs.Saturation(o.Wetting))
}

// TwoPhaseSatDpcnwDsw computes ∂pcnw/∂sw at sw
func (o PiecewiseLinear) TwoPhaseSatDpcnwDsw(prms *Params, sw float64) float64 {
	return pwlin.Deriv(prms.Pcnw, sw)
}

// Krw computes the wetting phase relative permeability
func (o PiecewiseLinear) Krw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatKrw(prms, fs.Saturation(o.Wetting))
}

// TwoPhaseSatKrw computes the wetting phase relative permeability at sw
func (o PiecewiseLinear) TwoPhaseSatKrw(prms *Params, sw float64) float64 {
	return pwlin.ClampedValue(prms.Krw, sw)
}

// DkrwDsw computes ∂krw/∂sw
func (o PiecewiseLinear) DkrwDsw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatDkrwDsw(prms, fs.Saturation(o.Wetting))
}

// TwoPhaseSatDkrwDsw computes ∂krw/∂sw at sw
func (o PiecewiseLinear) TwoPhaseSatDkrwDsw(prms *Params, sw float64) float64 {
	return pwlin.ClampedDeriv(prms.Krw, sw)
}

// Krn computes the non-wetting phase relative permeability
//  Note: the table is indexed by the wetting saturation, thus it is evaluated at 1 - sn
func (o PiecewiseLinear) Krn(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatKrn(prms, 1-fs.Saturation(o.NonWetting))
}

// TwoPhaseSatKrn computes the non-wetting phase relative permeability at sw
func (o PiecewiseLinear) TwoPhaseSatKrn(prms *Params, sw float64) float64 {
	return pwlin.ClampedValue(prms.Krn, sw)
}

// DkrnDsw computes ∂krn/∂sw
func (o PiecewiseLinear) DkrnDsw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatDkrnDsw(prms, fs.Saturation(o.Wetting))
}

// TwoPhaseSatDkrnDsw computes ∂krn/∂sw at sw
func (o PiecewiseLinear) TwoPhaseSatDkrnDsw(prms *Params, sw float64) float64 {
	return pwlin.ClampedDeriv(prms.Krn, sw)
}
