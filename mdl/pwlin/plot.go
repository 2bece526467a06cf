// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pwlin

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the interpolated function and its derivative over [x0, xf]
//  clamped -- use ClampedValue and ClampedDeriv instead of Value and Deriv
func Plot(t *Table, x0, xf float64, np int, clamped bool, xlabel, ylabel string) {
	X := utl.LinSpace(x0, xf, np)
	Y := make([]float64, np)
	D := make([]float64, np)
	for i, x := range X {
		if clamped {
			Y[i], D[i] = ClampedValue(t, x), ClampedDeriv(t, x)
		} else {
			Y[i], D[i] = Value(t, x), Deriv(t, x)
		}
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", NoClip: true})
	plt.Plot(t.X, t.Y, &plt.A{C: "r", M: "o", Ls: "none", NoClip: true})
	plt.Gll(xlabel, ylabel, nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(X, D, &plt.A{C: "b", Ls: "-", NoClip: true})
	plt.Gll(xlabel, "d("+ylabel+")/d("+xlabel+")", nil)
}
