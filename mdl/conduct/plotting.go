// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots klr(sl) or kgr(sg) and, optionally, their derivatives
func Plot(o Model, dirout, fname string, np int, gas, withText, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np)
	}
	for i := 0; i < np; i++ {
		if gas {
			Y[i] = o.Kgr(X[i])
		} else {
			Y[i] = o.Klr(X[i])
		}
		if deriv {
			if gas {
				Z[i] = o.DkgrDsg(X[i])
			} else {
				Z[i] = o.DklrDsl(X[i])
			}
		}
	}
	key := "\\ell"
	if gas {
		key = "g"
	}
	plt.Reset(false, nil)
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", NoClip: true})
	if withText {
		label(X, Y)
	}
	plt.Gll("$s_{"+key+"}$", "$k_{"+key+"}^r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Z, &plt.A{C: "b", Ls: "-", NoClip: true})
		if withText {
			label(X, Z)
		}
		plt.Gll("$s_{"+key+"}$", "$\\mathrm{d}{k_{"+key+"}^r}/\\mathrm{d}{s_{"+key+"}}$", nil)
	}
	plt.Save(dirout, fname)
}

// label writes the coordinates of the first and last points
func label(X, Y []float64) {
	l := len(X) - 1
	plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
	plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
}
