// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements containers for the thermodynamic state of
// multi-phase, multi-component fluid systems
package state

import (
	"github.com/cpmech/gosl/chk"
)

// ErrNoEnthalpy is returned when accessing enthalpies of a state that does not store them
var ErrNoEnthalpy = chk.Err("state: enthalpy is not stored")

// NonEquilibrium holds all quantities of a fluid system without assuming
// thermodynamic equilibrium; i.e. each phase has its own temperature and
// the fugacities of a component may differ among phases
//  Note: indices are [phase] or [phase][component]
type NonEquilibrium struct {
	P   []float64   // pressures
	T   []float64   // temperatures
	S   []float64   // saturations
	Rho []float64   // densities
	Mu  []float64   // viscosities
	H   []float64   // specific enthalpies; nil if not stored
	X   [][]float64 // mole fractions
	F   [][]float64 // fugacities
}

// New returns a new state with all quantities set to zero
//  withEnthalpy -- allocate and store specific enthalpies
func New(nphases, ncomps int, withEnthalpy bool) (o *NonEquilibrium, err error) {
	if nphases < 1 || ncomps < 1 {
		return nil, chk.Err("state: numbers of phases and components must be positive. nphases=%d ncomps=%d is invalid", nphases, ncomps)
	}
	o = new(NonEquilibrium)
	o.P = make([]float64, nphases)
	o.T = make([]float64, nphases)
	o.S = make([]float64, nphases)
	o.Rho = make([]float64, nphases)
	o.Mu = make([]float64, nphases)
	if withEnthalpy {
		o.H = make([]float64, nphases)
	}
	o.X = make([][]float64, nphases)
	o.F = make([][]float64, nphases)
	for α := 0; α < nphases; α++ {
		o.X[α] = make([]float64, ncomps)
		o.F[α] = make([]float64, ncomps)
	}
	return
}

// NumPhases returns the number of phases
func (o NonEquilibrium) NumPhases() int { return len(o.S) }

// NumComponents returns the number of components
func (o NonEquilibrium) NumComponents() int { return len(o.X[0]) }

// StoresEnthalpy tells whether enthalpies are stored
func (o NonEquilibrium) StoresEnthalpy() bool { return o.H != nil }

// Pressure returns the pressure of phase
func (o NonEquilibrium) Pressure(phase int) float64 { return o.P[phase] }

// Temperature returns the temperature of phase
func (o NonEquilibrium) Temperature(phase int) float64 { return o.T[phase] }

// Saturation returns the saturation of phase
func (o NonEquilibrium) Saturation(phase int) float64 { return o.S[phase] }

// Density returns the density of phase
func (o NonEquilibrium) Density(phase int) float64 { return o.Rho[phase] }

// Viscosity returns the viscosity of phase
func (o NonEquilibrium) Viscosity(phase int) float64 { return o.Mu[phase] }

// MoleFraction returns the mole fraction of comp in phase
func (o NonEquilibrium) MoleFraction(phase, comp int) float64 { return o.X[phase][comp] }

// Fugacity returns the fugacity of comp in phase
func (o NonEquilibrium) Fugacity(phase, comp int) float64 { return o.F[phase][comp] }

// Enthalpy returns the specific enthalpy of phase
func (o NonEquilibrium) Enthalpy(phase int) (float64, error) {
	if o.H == nil {
		return 0, ErrNoEnthalpy
	}
	return o.H[phase], nil
}

// SetPressure sets the pressure of phase
func (o *NonEquilibrium) SetPressure(phase int, v float64) { o.P[phase] = v }

// SetTemperature sets the temperature of phase
func (o *NonEquilibrium) SetTemperature(phase int, v float64) { o.T[phase] = v }

// SetTemperatures sets the same temperature in all phases
func (o *NonEquilibrium) SetTemperatures(v float64) {
	for α := range o.T {
		o.T[α] = v
	}
}

// SetSaturation sets the saturation of phase
func (o *NonEquilibrium) SetSaturation(phase int, v float64) { o.S[phase] = v }

// SetDensity sets the density of phase
func (o *NonEquilibrium) SetDensity(phase int, v float64) { o.Rho[phase] = v }

// SetViscosity sets the viscosity of phase
func (o *NonEquilibrium) SetViscosity(phase int, v float64) { o.Mu[phase] = v }

// SetMoleFraction sets the mole fraction of comp in phase
func (o *NonEquilibrium) SetMoleFraction(phase, comp int, v float64) { o.X[phase][comp] = v }

// SetFugacity sets the fugacity of comp in phase
func (o *NonEquilibrium) SetFugacity(phase, comp int, v float64) { o.F[phase][comp] = v }

// SetEnthalpy sets the specific enthalpy of phase
func (o *NonEquilibrium) SetEnthalpy(phase int, v float64) error {
	if o.H == nil {
		return ErrNoEnthalpy
	}
	o.H[phase] = v
	return nil
}

// Assign copies all quantities from another state with the same sizes
//  Note: enthalpies are copied only if both states store them
func (o *NonEquilibrium) Assign(s *NonEquilibrium) {
	if len(s.S) != len(o.S) || len(s.X[0]) != len(o.X[0]) {
		chk.Panic("state: cannot assign state with different sizes. nphases: %d != %d", len(s.S), len(o.S))
	}
	copy(o.P, s.P)
	copy(o.T, s.T)
	copy(o.S, s.S)
	copy(o.Rho, s.Rho)
	copy(o.Mu, s.Mu)
	if o.H != nil && s.H != nil {
		copy(o.H, s.H)
	}
	for α := range o.X {
		copy(o.X[α], s.X[α])
		copy(o.F[α], s.F[α])
	}
}

// GetCopy returns a copy of this state
func (o NonEquilibrium) GetCopy() *NonEquilibrium {
	c, _ := New(len(o.S), len(o.X[0]), o.H != nil)
	c.Assign(&o)
	return c
}
