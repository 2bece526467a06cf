// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/flikka/opm-material/mdl/state"
	"github.com/flikka/opm-material/mdl/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_null01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("null01. three phases")

	law, err := NewNull(3)
	require.NoError(tst, err)
	assert.Equal(tst, Flags{Saturation: true}, law.Flags())

	fs, err := state.New(3, 1, false)
	require.NoError(tst, err)
	fs.SetSaturation(0, -0.1)
	fs.SetSaturation(1, 0.4)
	fs.SetSaturation(2, 1.2)

	values := make([]float64, 3)
	law.CapillaryPressures(values, nil, fs)
	chk.Array(tst, "pc", 0, values, []float64{0, 0, 0})
	law.RelativePermeabilities(values, nil, fs)
	chk.Array(tst, "kr", 0, values, []float64{0, 0.4, 1})
	law.DkrDsat(values, nil, fs, 1)
	chk.Array(tst, "dkr/ds1", 0, values, []float64{0, 1, 0})
	law.DkrDsat(values, nil, fs, 2)
	chk.Array(tst, "dkr/ds2", 0, values, []float64{0, 0, 0})
	law.DpcDsat(values, nil, fs, 1)
	chk.Array(tst, "dpc/ds1", 0, values, []float64{0, 0, 0})
	assert.ErrorIs(tst, law.Saturations(values, nil, fs), ErrUnsupported)

	_, err = NewNull(0)
	assert.Error(tst, err)

	var drv Driver
	drv.TstD = tst
	require.NoError(tst, drv.Init(law, nil, 0, 1))
	require.NoError(tst, drv.Run(utl.LinSpace(0.05, 0.95, 10)))
}

func Test_null02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("null02. two-phase interfaces")

	law, err := New("null", traits.WaterOil)
	require.NoError(tst, err)
	assert.True(tst, law.Flags().TwoPhaseAPI)

	tp, ok := law.(TwoPhase)
	require.True(tst, ok)
	sat, ok := law.(TwoPhaseSat)
	require.True(tst, ok)

	fs, err := state.New(2, 1, false)
	require.NoError(tst, err)
	fs.SetSaturation(0, 0.3)
	fs.SetSaturation(1, 0.7)

	chk.Float64(tst, "pcnw", 0, tp.Pcnw(nil, fs), 0)
	chk.Float64(tst, "krw", 0, tp.Krw(nil, fs), 0.3)
	chk.Float64(tst, "krn", 0, tp.Krn(nil, fs), 0.7)
	chk.Float64(tst, "dkrw/dsw", 0, tp.DkrwDsw(nil, fs), 1)
	chk.Float64(tst, "dkrn/dsw", 0, tp.DkrnDsw(nil, fs), -1)
	chk.Float64(tst, "krn(sw=0.3)", 1e-15, sat.TwoPhaseSatKrn(nil, 0.3), 0.7)
	chk.Float64(tst, "krw(sw=1.5)", 0, sat.TwoPhaseSatKrw(nil, 1.5), 1)
	chk.Float64(tst, "dkrw/dsw(1.5)", 0, sat.TwoPhaseSatDkrwDsw(nil, 1.5), 0)

	_, err = tp.Sw(nil, fs)
	assert.ErrorIs(tst, err, ErrUnsupported)
	_, err = sat.TwoPhaseSatSn(nil, 0)
	assert.ErrorIs(tst, err, ErrUnsupported)
}
