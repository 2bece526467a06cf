// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pwlin implements tabulated functions of one variable reconstructed
// by piecewise-linear interpolation, e.g. capillary pressure or relative
// permeability as functions of saturation
package pwlin

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Table holds sample points (X[i], Y[i]) sorted by X
//  Note: X is non-decreasing; duplicated X values are only meaningful at the
//        ends of the table, as flat anchors
type Table struct {
	X []float64 // independent variable (knots)
	Y []float64 // dependent variable
}

// NewTable returns a new table with copies of x and y
func NewTable(x, y []float64) (o *Table, err error) {
	if len(x) != len(y) {
		return nil, chk.Err("pwlin: x and y must have the same length. %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, chk.Err("pwlin: at least two sample points are required. %d is invalid", len(x))
	}
	if floats.HasNaN(x) || floats.HasNaN(y) {
		return nil, chk.Err("pwlin: sample points must not contain NaN")
	}
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return nil, chk.Err("pwlin: x must be non-decreasing. x[%d]=%g < x[%d]=%g", i, x[i], i-1, x[i-1])
		}
	}
	o = new(Table)
	o.X = make([]float64, len(x))
	o.Y = make([]float64, len(y))
	copy(o.X, x)
	copy(o.Y, y)
	return
}

// NewTableFromPoints returns a new table from a list of (x, y) pairs
func NewTableFromPoints(pts [][2]float64) (*Table, error) {
	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p[0], p[1]
	}
	return NewTable(x, y)
}

// Len returns the number of sample points
func (o Table) Len() int {
	return len(o.X)
}

// At returns the i-th sample point
func (o Table) At(i int) (x, y float64) {
	return o.X[i], o.Y[i]
}

// Front returns the first sample point
func (o Table) Front() (x, y float64) {
	return o.X[0], o.Y[0]
}

// Back returns the last sample point
func (o Table) Back() (x, y float64) {
	l := len(o.X) - 1
	return o.X[l], o.Y[l]
}

// Xmin returns the lower end of the domain
func (o Table) Xmin() float64 {
	return o.X[0]
}

// Xmax returns the upper end of the domain
func (o Table) Xmax() float64 {
	return o.X[len(o.X)-1]
}

// Contains tells whether x lies within [Xmin, Xmax]
func (o Table) Contains(x float64) bool {
	return x >= o.Xmin() && x <= o.Xmax()
}

// String returns a representation of the sample points
func (o Table) String() (l string) {
	for i := range o.X {
		if i > 0 {
			l += " "
		}
		l += io.Sf("(%g,%g)", o.X[i], o.Y[i])
	}
	return "[" + l + "]"
}
