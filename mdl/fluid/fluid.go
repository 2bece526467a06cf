// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for liquid components with constant
// (or linearly pressure dependent) properties
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/flikka/opm-material/mdl/state"
)

// Model implements a liquid component with intrinsic density (R) and viscosity (Mu)
//   R(p) = R0 + C・(p - P0)   thus   dR/dp = C
//  C = 0 corresponds to an incompressible liquid. Temperature is ignored.
type Model struct {
	Name string  // name of component
	R0   float64 // intrinsic density corresponding to P0
	P0   float64 // pressure corresponding to R0
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Mu   float64 // dynamic viscosity
}

// NewLnapl returns a light non-aqueous phase liquid with R = 890 kg/m³ and Mu = 8e-3 Pa・s
func NewLnapl() *Model {
	return &Model{Name: "LNAPL", R0: 890, Mu: 8e-3}
}

// NewWater returns incompressible water with R = 1000 kg/m³ and Mu = 1e-3 Pa・s
func NewWater() *Model {
	return &Model{Name: "H2O", R0: 1000, Mu: 1e-3}
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "Mu":
			o.Mu = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("fluid: density R0 = %g is invalid", o.R0)
	}
	if o.Mu <= 0 {
		return chk.Err("fluid: viscosity Mu = %g is invalid", o.Mu)
	}
	if o.C < 0 {
		return chk.Err("fluid: compressibility C = %g is invalid", o.C)
	}
	return
}

// GetPrms gets (an example of) parameters
//  example -- returns LNAPL parameters; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "R0", V: 890},  // [kg/m³]
			&dbf.P{N: "P0", V: 0},    // [Pa]
			&dbf.P{N: "C", V: 0},     // [kg/(m³・Pa)]
			&dbf.P{N: "Mu", V: 8e-3}, // [Pa・s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Mu", V: o.Mu},
	}
}

// Compressible tells whether the density depends on pressure
func (o Model) Compressible() bool {
	return o.C > 0
}

// Density computes the intrinsic density at temperature T and pressure p
func (o Model) Density(T, p float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}

// Viscosity computes the dynamic viscosity at temperature T and pressure p
func (o Model) Viscosity(T, p float64) float64 {
	return o.Mu
}

// Fill sets density and viscosity of phase in fs using the phase pressure and temperature
func (o Model) Fill(fs *state.NonEquilibrium, phase int) {
	T, p := fs.Temperature(phase), fs.Pressure(phase)
	fs.SetDensity(phase, o.Density(T, p))
	fs.SetViscosity(phase, o.Viscosity(T, p))
}
