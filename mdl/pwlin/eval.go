// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pwlin

import "github.com/cpmech/gosl/chk"

// Segment returns the index i of the segment [X[i], X[i+1]] used to evaluate x
//  Outside the domain, the first or last segment is returned, thus Value
//  extrapolates linearly. Inside, bisection is used. When x coincides with an
//  internal knot, the segment to the left of that knot is selected; i.e. the
//  knot is the upper end of the returned segment. Value is continuous there,
//  but Deriv returns the slope of the left segment.
//  Note: the bisection compares with strict <, thus the lower segment wins at a
//        knot; keep it so, since derivatives at knots depend on it
func Segment(t *Table, x float64) int {
	n := len(t.X) - 1
	if n < 1 {
		chk.Panic("pwlin: at least two sample points are required. n=%d is invalid", n+1)
	}
	if t.X[n] < x {
		return n - 1
	}
	if t.X[0] > x {
		return 0
	}
	lo, hi := 0, n
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if t.X[mid] < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Value returns the linearly interpolated (or extrapolated) y at x
//  Note: a zero-width segment (duplicated knot at one end of the table) acts
//        as a flat anchor and yields its left y value
func Value(t *Table, x float64) float64 {
	i := Segment(t, x)
	Δx := t.X[i+1] - t.X[i]
	if Δx == 0 {
		return t.Y[i]
	}
	α := (x - t.X[i]) / Δx
	return t.Y[i] + (t.Y[i+1]-t.Y[i])*α
}

// Deriv returns dy/dx at x; i.e. the slope of the segment selected by Segment
//  Note: the slope of a zero-width segment is zero
func Deriv(t *Table, x float64) float64 {
	i := Segment(t, x)
	Δx := t.X[i+1] - t.X[i]
	if Δx == 0 {
		return 0
	}
	return (t.Y[i+1] - t.Y[i]) / Δx
}

// ClampedValue returns y at x with flat extrapolation outside [Xmin, Xmax]
func ClampedValue(t *Table, x float64) float64 {
	if x < t.Xmin() {
		return t.Y[0]
	}
	if x > t.Xmax() {
		return t.Y[len(t.Y)-1]
	}
	return Value(t, x)
}

// ClampedDeriv returns dy/dx consistent with ClampedValue; i.e. zero outside [Xmin, Xmax]
func ClampedDeriv(t *Table, x float64) float64 {
	if x < t.Xmin() || x > t.Xmax() {
		return 0
	}
	return Deriv(t, x)
}
