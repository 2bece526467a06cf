// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/flikka/opm-material/mdl/matlaw"
	"github.com/flikka/opm-material/mdl/traits"
)

// Table implements relative conductivities given by sample tables of a
// piecewise-linear two-phase law; liquid is the wetting phase and gas the
// non-wetting one
//   klr(sl) = max(krw(sl), klrmin)
//   kgr(sg) = max(krn(1 - sg), kgrmin)
type Table struct {

	// parameters
	klrmin float64 // minimum klr
	kgrmin float64 // minimum kgr

	// tables
	law  *matlaw.PiecewiseLinear // tabulated law
	prms *matlaw.Params          // sample tables
}

// add model to factory
func init() {
	allocators["table"] = func() Model { return new(Table) }
}

// Init initialises model
//  Note: SetTables must also be called before any evaluation
func (o *Table) Init(prms dbf.Params) (err error) {
	o.klrmin, o.kgrmin = 0, 0
	for _, p := range prms {
		switch p.N {
		case "klrmin":
			o.klrmin = p.V
		case "kgrmin":
			o.kgrmin = p.V
		default:
			return chk.Err("table: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.klrmin < 0 || o.klrmin >= 1 {
		return chk.Err("table: klrmin = %g is invalid", o.klrmin)
	}
	if o.kgrmin < 0 || o.kgrmin >= 1 {
		return chk.Err("table: kgrmin = %g is invalid", o.kgrmin)
	}
	return
}

// SetTables sets the sample tables; only Krw and Krn are used
func (o *Table) SetTables(prms *matlaw.Params) (err error) {
	if prms == nil || prms.Krw == nil || prms.Krn == nil {
		return chk.Err("table: Krw and Krn tables must be non-nil")
	}
	o.law, err = matlaw.NewPiecewiseLinear(traits.WaterOil)
	if err != nil {
		return
	}
	o.prms = prms
	return
}

// GetPrms gets (an example) of parameters
func (o Table) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "klrmin", V: 1e-3},
			&dbf.P{N: "kgrmin", V: 1e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "klrmin", V: o.klrmin},
		&dbf.P{N: "kgrmin", V: o.kgrmin},
	}
}

// Klr returns klr
func (o Table) Klr(sl float64) float64 {
	k := o.law.TwoPhaseSatKrw(o.prms, sl)
	if k < o.klrmin {
		return o.klrmin
	}
	return k
}

// Kgr returns kgr
func (o Table) Kgr(sg float64) float64 {
	k := o.law.TwoPhaseSatKrn(o.prms, 1-sg)
	if k < o.kgrmin {
		return o.kgrmin
	}
	return k
}

// DklrDsl returns ∂klr/∂sl
func (o Table) DklrDsl(sl float64) float64 {
	if o.law.TwoPhaseSatKrw(o.prms, sl) < o.klrmin {
		return 0
	}
	return o.law.TwoPhaseSatDkrwDsw(o.prms, sl)
}

// DkgrDsg returns ∂kgr/∂sg
//  krn is tabulated against sl = 1 - sg
func (o Table) DkgrDsg(sg float64) float64 {
	if o.law.TwoPhaseSatKrn(o.prms, 1-sg) < o.kgrmin {
		return 0
	}
	return -o.law.TwoPhaseSatDkrnDsw(o.prms, 1-sg)
}
