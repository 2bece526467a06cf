// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package traits implements the mapping between phase roles (wetting,
// non-wetting) and phase indices used by fluid-matrix interaction laws
package traits

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NumPhases is the number of fluid phases handled by two-phase laws
const NumPhases = 2

// TwoPhase holds the indices of the wetting and non-wetting phases
//  Note: the indices are checked once by NewTwoPhase or Init; material laws
//        trust them afterwards
type TwoPhase struct {
	Wetting    int // index of the wetting phase
	NonWetting int // index of the non-wetting phase
}

// WaterOil is the usual convention: wetting phase is 0 and non-wetting phase is 1
var WaterOil = TwoPhase{Wetting: 0, NonWetting: 1}

// NewTwoPhase returns a new checked set of phase indices
func NewTwoPhase(wetting, nonWetting int) (o TwoPhase, err error) {
	o = TwoPhase{Wetting: wetting, NonWetting: nonWetting}
	err = o.check()
	return
}

// Init initialises phase indices from parameters "wphase" and "nphase"
func (o *TwoPhase) Init(prms dbf.Params) (err error) {
	*o = WaterOil
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "wphase":
			o.Wetting = int(p.V)
		case "nphase":
			o.NonWetting = int(p.V)
		default:
			return chk.Err("traits: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.check()
}

// GetPrms gets (an example) of parameters
func (o TwoPhase) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "wphase", V: 0},
			&dbf.P{N: "nphase", V: 1},
		}
	}
	return dbf.Params{
		&dbf.P{N: "wphase", V: float64(o.Wetting)},
		&dbf.P{N: "nphase", V: float64(o.NonWetting)},
	}
}

// NumPhases returns the number of phases
func (o TwoPhase) NumPhases() int {
	return NumPhases
}

// check checks ranges and distinctness of indices
func (o TwoPhase) check() error {
	if o.Wetting < 0 || o.Wetting >= NumPhases {
		return chk.Err("traits: wetting phase index %d is out of range [0, %d)", o.Wetting, NumPhases)
	}
	if o.NonWetting < 0 || o.NonWetting >= NumPhases {
		return chk.Err("traits: non-wetting phase index %d is out of range [0, %d)", o.NonWetting, NumPhases)
	}
	if o.Wetting == o.NonWetting {
		return chk.Err("traits: wetting and non-wetting phase indices must be different. %d == %d", o.Wetting, o.NonWetting)
	}
	return nil
}
