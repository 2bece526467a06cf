// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/flikka/opm-material/mdl/state"
	"gonum.org/v1/gonum/diff/fd"
)

// Result holds capillary pressures, relative permeabilities and all their
// partial derivatives at one fluid state
//  Note: derivative arrays are indexed as [axis][phase]; e.g. DpcDs[β][α] = ∂pcα/∂sβ
type Result struct {
	Sw    float64       // wetting saturation, when computed by Driver
	Pc    []float64     // capillary pressures
	Kr    []float64     // relative permeabilities
	DpcDs [][]float64   // ∂pc/∂s
	DkrDs [][]float64   // ∂kr/∂s
	DpcDp [][]float64   // ∂pc/∂p
	DkrDp [][]float64   // ∂kr/∂p
	DpcDT []float64     // ∂pc/∂T
	DkrDT []float64     // ∂kr/∂T
	DpcDx [][][]float64 // ∂pc/∂x as [phase][comp][phase]
	DkrDx [][][]float64 // ∂kr/∂x as [phase][comp][phase]
}

// NewResult allocates a new Result filled with zeros
func NewResult(nphases, ncomps int) (o *Result) {
	o = new(Result)
	o.Pc = make([]float64, nphases)
	o.Kr = make([]float64, nphases)
	o.DpcDs = alloc(nphases, nphases)
	o.DkrDs = alloc(nphases, nphases)
	o.DpcDp = alloc(nphases, nphases)
	o.DkrDp = alloc(nphases, nphases)
	o.DpcDT = make([]float64, nphases)
	o.DkrDT = make([]float64, nphases)
	o.DpcDx = make([][][]float64, nphases)
	o.DkrDx = make([][][]float64, nphases)
	for β := 0; β < nphases; β++ {
		o.DpcDx[β] = alloc(ncomps, nphases)
		o.DkrDx[β] = alloc(ncomps, nphases)
	}
	return
}

// Eval computes all quantities of law at fs
//  Axes flagged as independent by law.Flags() are not computed; they keep
//  their zero values
func Eval(law Law, prms *Params, fs FluidState, ncomps int) (r *Result) {
	np := law.NumPhases()
	r = NewResult(np, ncomps)
	law.CapillaryPressures(r.Pc, prms, fs)
	law.RelativePermeabilities(r.Kr, prms, fs)
	f := law.Flags()
	for β := 0; β < np; β++ {
		if f.Saturation {
			law.DpcDsat(r.DpcDs[β], prms, fs, β)
			law.DkrDsat(r.DkrDs[β], prms, fs, β)
		}
		if f.Pressure {
			law.DpcDpres(r.DpcDp[β], prms, fs, β)
			law.DkrDpres(r.DkrDp[β], prms, fs, β)
		}
		if f.Composition {
			for c := 0; c < ncomps; c++ {
				law.DpcDmolfrac(r.DpcDx[β][c], prms, fs, β, c)
				law.DkrDmolfrac(r.DkrDx[β][c], prms, fs, β, c)
			}
		}
	}
	if f.Temperature {
		law.DpcDtemp(r.DpcDT, prms, fs)
		law.DkrDtemp(r.DkrDT, prms, fs)
	}
	return
}

// Driver runs sweeps of the wetting saturation on two-phase material laws
type Driver struct {

	// input
	Law  Law     // material law
	Prms *Params // tables; may be nil for laws without parameters
	Wet  int     // index of the wetting phase
	Ncmp int     // number of components

	// settings
	Verbose bool      // print results
	TolDs   float64   // tolerance to check ∂pc/∂s and ∂kr/∂s
	Step    float64   // step of finite differences
	Kinks   []float64 // saturations where derivatives are not checked; e.g. knots

	// check derivatives
	TstD *testing.T // if != nil, do check derivatives w.r.t saturations

	// results
	Res []*Result // results
}

// Init initialises driver
func (o *Driver) Init(law Law, prms *Params, wet, ncmp int) (err error) {
	if law == nil {
		return chk.Err("driver: law must be non-nil")
	}
	if !law.Flags().Saturation {
		return chk.Err("driver: law must depend on saturation")
	}
	if wet < 0 || wet >= law.NumPhases() {
		return chk.Err("driver: wetting phase index %d is out of range", wet)
	}
	if ncmp < 1 {
		ncmp = 1
	}
	o.Law, o.Prms, o.Wet, o.Ncmp = law, prms, wet, ncmp
	o.TolDs = 1e-8
	o.Step = 1e-6
	o.Verbose = chk.Verbose
	o.Kinks = nil
	if prms != nil {
		o.Kinks = append(o.Kinks, prms.Pcnw.X...)
		o.Kinks = append(o.Kinks, prms.Krw.X...)
		o.Kinks = append(o.Kinks, prms.Krn.X...)
	}
	return
}

// Run computes results at each wetting saturation in Sw
//  The remaining pore space is shared equally among the other phases
func (o *Driver) Run(Sw []float64) (err error) {
	np := o.Law.NumPhases()
	fs, err := state.New(np, o.Ncmp, false)
	if err != nil {
		return
	}
	o.Res = make([]*Result, len(Sw))
	if o.Verbose {
		io.Pf("%8s%14s%14s%14s\n", "sw", "pc[n]", "kr[w]", "kr[n]")
	}
	for i, sw := range Sw {
		o.setSaturations(fs, sw)
		o.Res[i] = Eval(o.Law, o.Prms, fs, o.Ncmp)
		o.Res[i].Sw = sw
		if o.Verbose {
			r := o.Res[i]
			io.Pf("%8.4f%14.6g%14.6g%14.6g\n", sw, r.Pc[o.other()], r.Kr[o.Wet], r.Kr[o.other()])
		}
		if o.TstD != nil && !o.nearKink(sw) {
			o.checkDs(fs, o.Res[i])
		}
	}
	return
}

// checkDs compares ∂pc/∂s and ∂kr/∂s with central finite differences,
// perturbing one saturation at a time
func (o *Driver) checkDs(fs *state.NonEquilibrium, r *Result) {
	np := o.Law.NumPhases()
	tmp := fs.GetCopy()
	pc := make([]float64, np)
	kr := make([]float64, np)
	settings := &fd.Settings{Formula: fd.Central, Step: o.Step}
	for β := 0; β < np; β++ {
		sβ := fs.Saturation(β)
		for α := 0; α < np; α++ {
			dpc := fd.Derivative(func(x float64) float64 {
				tmp.SetSaturation(β, x)
				o.Law.CapillaryPressures(pc, o.Prms, tmp)
				return pc[α]
			}, sβ, settings)
			dkr := fd.Derivative(func(x float64) float64 {
				tmp.SetSaturation(β, x)
				o.Law.RelativePermeabilities(kr, o.Prms, tmp)
				return kr[α]
			}, sβ, settings)
			tmp.SetSaturation(β, sβ)
			chk.Float64(o.TstD, io.Sf("∂pc%d/∂s%d @ sw=%.4f", α, β, r.Sw), o.tol(r.DpcDs[β][α]), r.DpcDs[β][α], dpc)
			chk.Float64(o.TstD, io.Sf("∂kr%d/∂s%d @ sw=%.4f", α, β, r.Sw), o.tol(r.DkrDs[β][α]), r.DkrDs[β][α], dkr)
		}
	}
}

// tol returns a tolerance relative to the magnitude of the analytical derivative
func (o *Driver) tol(ana float64) float64 {
	return o.TolDs * math.Max(1, math.Abs(ana))
}

// setSaturations sets sw and shares 1 - sw among the other phases
func (o *Driver) setSaturations(fs *state.NonEquilibrium, sw float64) {
	np := fs.NumPhases()
	for α := 0; α < np; α++ {
		if α == o.Wet {
			fs.SetSaturation(α, sw)
		} else if np > 1 {
			fs.SetSaturation(α, (1-sw)/float64(np-1))
		}
	}
}

// other returns the index of the first phase that is not the wetting phase
func (o *Driver) other() int {
	if o.Law.NumPhases() < 2 {
		return o.Wet
	}
	if o.Wet == 0 {
		return 1
	}
	return 0
}

// nearKink tells whether finite differences at sw would straddle a kink
func (o *Driver) nearKink(sw float64) bool {
	h := 10 * o.Step
	if math.Abs(sw) < h || math.Abs(sw-1) < h {
		return true
	}
	for _, x := range o.Kinks {
		if math.Abs(sw-x) < h {
			return true
		}
		if math.Abs((1-sw)-x) < h {
			return true
		}
	}
	return false
}

func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}
