// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_traits01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traits01")

	o, err := NewTwoPhase(1, 0)
	require.NoError(tst, err)
	chk.Int(tst, "w", o.Wetting, 1)
	chk.Int(tst, "n", o.NonWetting, 0)
	chk.Int(tst, "np", o.NumPhases(), 2)

	for _, idx := range [][2]int{{0, 0}, {1, 1}, {-1, 1}, {0, 2}, {2, 0}} {
		_, err = NewTwoPhase(idx[0], idx[1])
		assert.Error(tst, err, "w=%d n=%d", idx[0], idx[1])
	}
}

func Test_traits02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traits02")

	var o TwoPhase
	require.NoError(tst, o.Init(o.GetPrms(true)))
	assert.Equal(tst, WaterOil, o)

	require.NoError(tst, o.Init(dbf.Params{&dbf.P{N: "wphase", V: 1}, &dbf.P{N: "nphase", V: 0}}))
	assert.Equal(tst, TwoPhase{Wetting: 1, NonWetting: 0}, o)
	assert.Equal(tst, 1.0, o.GetPrms(false)[0].V)

	assert.Error(tst, o.Init(dbf.Params{&dbf.P{N: "wphase", V: 1}}))
	assert.Error(tst, o.Init(dbf.Params{&dbf.P{N: "gphase", V: 2}}))
}
