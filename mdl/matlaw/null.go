// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/cpmech/gosl/chk"
	"github.com/flikka/opm-material/mdl/traits"
)

// Null implements a law without capillarity and with relative
// permeabilities equal to the saturations clamped to [0, 1]
//  Params are not used and may be nil.
//  The two-phase interfaces are only meaningful when Nphases == 2.
type Null struct {
	Nphases int             // number of phases
	Tr      traits.TwoPhase // phase indices for the two-phase interfaces
}

// add model to factory
func init() {
	allocators["null"] = func(tr traits.TwoPhase) (Law, error) {
		o, err := NewNull(traits.NumPhases)
		if err != nil {
			return nil, err
		}
		o.Tr, err = traits.NewTwoPhase(tr.Wetting, tr.NonWetting)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// NewNull returns a new null law with nphases phases
func NewNull(nphases int) (o *Null, err error) {
	if nphases < 1 {
		return nil, chk.Err("null: number of phases must be positive. %d is invalid", nphases)
	}
	return &Null{Nphases: nphases, Tr: traits.WaterOil}, nil
}

// Flags returns the capability flags
func (o Null) Flags() Flags {
	return Flags{
		TwoPhaseAPI:    o.Nphases == 2,
		TwoPhaseSatAPI: o.Nphases == 2,
		Saturation:     true,
	}
}

// NumPhases returns the number of phases
func (o Null) NumPhases() int {
	return o.Nphases
}

// CapillaryPressures sets all capillary pressures to zero
func (o Null) CapillaryPressures(values []float64, prms *Params, fs FluidState) {
	zero(values[:o.Nphases])
}

// Saturations is not available
func (o Null) Saturations(values []float64, prms *Params, fs FluidState) error {
	return unsupported("null", "Saturations")
}

// RelativePermeabilities computes kr = clamp(s, 0, 1) for each phase
func (o Null) RelativePermeabilities(values []float64, prms *Params, fs FluidState) {
	for α := 0; α < o.Nphases; α++ {
		values[α] = clamp01(fs.Saturation(α))
	}
}

// DpcDsat sets zeros
func (o Null) DpcDsat(values []float64, prms *Params, fs FluidState, satPhase int) {
	zero(values[:o.Nphases])
}

// DpcDpres sets zeros
func (o Null) DpcDpres(values []float64, prms *Params, fs FluidState, pPhase int) {
	zero(values[:o.Nphases])
}

// DpcDtemp sets zeros
func (o Null) DpcDtemp(values []float64, prms *Params, fs FluidState) {
	zero(values[:o.Nphases])
}

// DpcDmolfrac sets zeros
func (o Null) DpcDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int) {
	zero(values[:o.Nphases])
}

// DkrDsat computes ∂kr/∂s; i.e. one for satPhase if its saturation is within [0, 1]
func (o Null) DkrDsat(values []float64, prms *Params, fs FluidState, satPhase int) {
	zero(values[:o.Nphases])
	if satPhase < 0 || satPhase >= o.Nphases {
		return
	}
	s := fs.Saturation(satPhase)
	if s >= 0 && s <= 1 {
		values[satPhase] = 1
	}
}

// DkrDpres sets zeros
func (o Null) DkrDpres(values []float64, prms *Params, fs FluidState, pPhase int) {
	zero(values[:o.Nphases])
}

// DkrDtemp sets zeros
func (o Null) DkrDtemp(values []float64, prms *Params, fs FluidState) {
	zero(values[:o.Nphases])
}

// DkrDmolfrac sets zeros
func (o Null) DkrDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int) {
	zero(values[:o.Nphases])
}

// Pcnw returns zero
func (o Null) Pcnw(prms *Params, fs FluidState) float64 { return 0 }

// TwoPhaseSatPcnw returns zero
func (o Null) TwoPhaseSatPcnw(prms *Params, sw float64) float64 { return 0 }

// Sw is not available
func (o Null) Sw(prms *Params, fs FluidState) (float64, error) {
	return 0, unsupported("null", "Sw")
}

// TwoPhaseSatSw is not available
func (o Null) TwoPhaseSatSw(prms *Params, pc float64) (float64, error) {
	return 0, unsupported("null", "TwoPhaseSatSw")
}

// Sn is not available
func (o Null) Sn(prms *Params, fs FluidState) (float64, error) {
	return 0, unsupported("null", "Sn")
}

// TwoPhaseSatSn is not available
func (o Null) TwoPhaseSatSn(prms *Params, pc float64) (float64, error) {
	return 0, unsupported("null", "TwoPhaseSatSn")
}

// DpcnwDsw returns zero
func (o Null) DpcnwDsw(prms *Params, fs FluidState) float64 { return 0 }

// TwoPhaseSatDpcnwDsw returns zero
func (o Null) TwoPhaseSatDpcnwDsw(prms *Params, sw float64) float64 { return 0 }

// Krw computes clamp(sw, 0, 1)
func (o Null) Krw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatKrw(prms, fs.Saturation(o.Tr.Wetting))
}

// TwoPhaseSatKrw computes clamp(sw, 0, 1)
func (o Null) TwoPhaseSatKrw(prms *Params, sw float64) float64 {
	return clamp01(sw)
}

// DkrwDsw computes ∂krw/∂sw
func (o Null) DkrwDsw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatDkrwDsw(prms, fs.Saturation(o.Tr.Wetting))
}

// TwoPhaseSatDkrwDsw computes ∂krw/∂sw at sw
func (o Null) TwoPhaseSatDkrwDsw(prms *Params, sw float64) float64 {
	if sw < 0 || sw > 1 {
		return 0
	}
	return 1
}

// Krn computes clamp(sn, 0, 1)
func (o Null) Krn(prms *Params, fs FluidState) float64 {
	return clamp01(fs.Saturation(o.Tr.NonWetting))
}

// TwoPhaseSatKrn computes clamp(1 - sw, 0, 1)
func (o Null) TwoPhaseSatKrn(prms *Params, sw float64) float64 {
	return clamp01(1 - sw)
}

// DkrnDsw computes ∂krn/∂sw
func (o Null) DkrnDsw(prms *Params, fs FluidState) float64 {
	return o.TwoPhaseSatDkrnDsw(prms, fs.Saturation(o.Tr.Wetting))
}

// TwoPhaseSatDkrnDsw computes ∂krn/∂sw at sw
func (o Null) TwoPhaseSatDkrnDsw(prms *Params, sw float64) float64 {
	if sw < 0 || sw > 1 {
		return 0
	}
	return -1
}

func clamp01(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
