// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package matlaw implements fluid-matrix interaction laws; i.e. capillary
// pressure and relative permeability as functions of the fluid state, and
// their partial derivatives with respect to saturation, pressure,
// temperature and composition
package matlaw

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/flikka/opm-material/mdl/pwlin"
	"github.com/flikka/opm-material/mdl/traits"
)

// ErrUnsupported is returned by operations that a law cannot implement;
// e.g. computing saturations from capillary pressures of a tabulated curve
var ErrUnsupported = chk.Err("operation not supported by material law")

// unsupported wraps ErrUnsupported with the name of the law and operation
func unsupported(law, op string) error {
	return fmt.Errorf("%s: %s: %w", law, op, ErrUnsupported)
}

// FluidState is the part of a fluid state read by material laws
type FluidState interface {
	Saturation(phase int) float64 // saturation of phase
}

// Flags describes which quantities a law implements and depends on
//  Note: a derivative along an axis flagged as independent is always exactly
//        zero; generic callers may skip computing it
type Flags struct {
	TwoPhaseAPI    bool // implements the TwoPhase interface
	TwoPhaseSatAPI bool // implements the TwoPhaseSat interface
	Saturation     bool // depends on phase saturations
	Pressure       bool // depends on absolute phase pressures
	Temperature    bool // depends on temperature
	Composition    bool // depends on phase compositions
}

// Params holds the sample tables of tabulated two-phase laws
//  Pcnw -- capillary pressure pn - pw versus wetting saturation
//  Krw  -- wetting phase relative permeability versus wetting saturation
//  Krn  -- non-wetting phase relative permeability versus WETTING saturation
type Params struct {
	Pcnw *pwlin.Table
	Krw  *pwlin.Table
	Krn  *pwlin.Table
}

// NewParams returns a new set of parameters referencing the given tables
func NewParams(pcnw, krw, krn *pwlin.Table) (o *Params, err error) {
	for i, t := range []*pwlin.Table{pcnw, krw, krn} {
		if t == nil {
			return nil, chk.Err("matlaw: table %d is nil", i)
		}
		if t.Len() < 2 {
			return nil, chk.Err("matlaw: table %d must have at least two sample points", i)
		}
	}
	return &Params{Pcnw: pcnw, Krw: krw, Krn: krn}, nil
}

// Law defines the array-filling interface of material laws
//  values has one entry per phase. The derivative functions fill values[α]
//  with the partial derivative of the α-phase quantity along one axis:
//   Dsat    -- saturation of satPhase
//   Dpres   -- pressure of pPhase
//   Dtemp   -- temperature
//   Dmolfrac -- mole fraction of component comp in phase
type Law interface {
	Flags() Flags   // capability flags
	NumPhases() int // number of phases

	CapillaryPressures(values []float64, prms *Params, fs FluidState)     // capillary pressure of each phase w.r.t. the reference phase
	Saturations(values []float64, prms *Params, fs FluidState) error      // saturations from capillary pressures
	RelativePermeabilities(values []float64, prms *Params, fs FluidState) // relative permeability of each phase

	DpcDsat(values []float64, prms *Params, fs FluidState, satPhase int)
	DpcDpres(values []float64, prms *Params, fs FluidState, pPhase int)
	DpcDtemp(values []float64, prms *Params, fs FluidState)
	DpcDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int)

	DkrDsat(values []float64, prms *Params, fs FluidState, satPhase int)
	DkrDpres(values []float64, prms *Params, fs FluidState, pPhase int)
	DkrDtemp(values []float64, prms *Params, fs FluidState)
	DkrDmolfrac(values []float64, prms *Params, fs FluidState, phase, comp int)
}

// TwoPhase defines the two-phase convenience interface taking fluid states
type TwoPhase interface {
	Pcnw(prms *Params, fs FluidState) float64        // pn - pw
	Sw(prms *Params, fs FluidState) (float64, error) // wetting saturation from pc
	Sn(prms *Params, fs FluidState) (float64, error) // non-wetting saturation from pc
	DpcnwDsw(prms *Params, fs FluidState) float64    // ∂pcnw/∂sw
	Krw(prms *Params, fs FluidState) float64         // wetting relative permeability
	DkrwDsw(prms *Params, fs FluidState) float64     // ∂krw/∂sw
	Krn(prms *Params, fs FluidState) float64         // non-wetting relative permeability
	DkrnDsw(prms *Params, fs FluidState) float64     // ∂krn/∂sw
}

// TwoPhaseSat defines the two-phase convenience interface taking the wetting saturation
type TwoPhaseSat interface {
	TwoPhaseSatPcnw(prms *Params, sw float64) float64
	TwoPhaseSatSw(prms *Params, pc float64) (float64, error)
	TwoPhaseSatSn(prms *Params, pc float64) (float64, error)
	TwoPhaseSatDpcnwDsw(prms *Params, sw float64) float64
	TwoPhaseSatKrw(prms *Params, sw float64) float64
	TwoPhaseSatDkrwDsw(prms *Params, sw float64) float64
	TwoPhaseSatKrn(prms *Params, sw float64) float64
	TwoPhaseSatDkrnDsw(prms *Params, sw float64) float64
}

// New returns a new two-phase material law
func New(name string, tr traits.TwoPhase) (model Law, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'matlaw' database", name)
	}
	return allocator(tr)
}

// allocators holds all available models
var allocators = map[string]func(tr traits.TwoPhase) (Law, error){}

// zero sets all values to zero
func zero(values []float64) {
	for i := range values {
		values[i] = 0
	}
}
