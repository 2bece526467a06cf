// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/flikka/opm-material/mdl/matlaw"
	"github.com/flikka/opm-material/mdl/pwlin"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01")

	krw, err := pwlin.NewTable([]float64{0.2, 0.6, 1.0}, []float64{0, 0.3, 1})
	require.NoError(tst, err)
	krn, err := pwlin.NewTable([]float64{0, 0.8}, []float64{1, 0})
	require.NoError(tst, err)
	prms, err := matlaw.NewParams(krw, krw, krn)
	require.NoError(tst, err)
	mdl, err := NewTabulated("table", dbf.Params{&dbf.P{N: "klrmin", V: 0.01}}, prms)
	require.NoError(tst, err)

	chk.Float64(tst, "klr(0.1)", 0, mdl.Klr(0.1), 0.01)
	chk.Float64(tst, "dklr/dsl(0.1)", 0, mdl.DklrDsl(0.1), 0)
	chk.Float64(tst, "klr(0.4)", 1e-15, mdl.Klr(0.4), 0.15)
	chk.Float64(tst, "dklr/dsl(0.4)", 1e-15, mdl.DklrDsl(0.4), 0.75)
	chk.Float64(tst, "klr(0.8)", 1e-15, mdl.Klr(0.8), 0.65)
	chk.Float64(tst, "kgr(0.6)", 1e-15, mdl.Kgr(0.6), 0.5)
	chk.Float64(tst, "dkgr/dsg(0.6)", 1e-15, mdl.DkgrDsg(0.6), 1.25)
	chk.Float64(tst, "kgr(0.1)", 0, mdl.Kgr(0.1), 0)

	// numerical derivatives away from knots (0.2, 0.6)
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, s := range utl.LinSpace(0.03, 0.97, 17) {
		dl := fd.Derivative(mdl.Klr, s, settings)
		dg := fd.Derivative(mdl.Kgr, s, settings)
		chk.Float64(tst, io.Sf("dklr/dsl @ %g", s), 1e-8, mdl.DklrDsl(s), dl)
		chk.Float64(tst, io.Sf("dkgr/dsg @ %g", s), 1e-8, mdl.DkgrDsg(s), dg)
	}

	if chk.Verbose {
		Plot(mdl, "/tmp/opm-material", "cnd_table01_liq", 101, false, true, true)
		Plot(mdl, "/tmp/opm-material", "cnd_table01_gas", 101, true, true, true)
	}
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02")

	var mdl Table
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))
	require.Error(tst, mdl.SetTables(nil))
	require.Error(tst, mdl.Init(dbf.Params{&dbf.P{N: "klrmin", V: 1.5}}))
	require.Error(tst, mdl.Init(dbf.Params{&dbf.P{N: "lam", V: 1}}))

	// Init starts from zero floors
	require.NoError(tst, mdl.Init(dbf.Params{&dbf.P{N: "klrmin", V: 0.2}, &dbf.P{N: "kgrmin", V: 0.3}}))
	require.NoError(tst, mdl.Init(dbf.Params{&dbf.P{N: "klrmin", V: 0.05}}))
	prms := mdl.GetPrms(false)
	chk.Float64(tst, "klrmin", 0, prms[0].V, 0.05)
	chk.Float64(tst, "kgrmin", 0, prms[1].V, 0)
	require.NoError(tst, mdl.Init(nil))
	prms = mdl.GetPrms(false)
	chk.Float64(tst, "klrmin", 0, prms[0].V, 0)

	_, err := New("m1")
	require.Error(tst, err)
	_, err = NewTabulated("table", mdl.GetPrms(true), nil)
	require.Error(tst, err)
}
