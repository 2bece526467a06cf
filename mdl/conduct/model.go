// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for liquid and gas relative conductivity
// in porous media, where the liquid wets the solid matrix
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/flikka/opm-material/mdl/matlaw"
)

// Model defines liquid-gas conductivity models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Klr(sl float64) float64          // Klr returns klr
	Kgr(sg float64) float64          // Kgr returns kgr
	DklrDsl(sl float64) float64      // DklrDsl returns ∂klr/∂sl
	DkgrDsg(sg float64) float64      // DkgrDsg returns ∂kgr/∂sg
}

// Tabulated is a subset of models whose curves come from sample tables
type Tabulated interface {
	SetTables(tables *matlaw.Params) error // sets krw and krn tables
}

// New returns a new conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// NewTabulated returns a new initialised model whose curves come from tables
func NewTabulated(name string, prms dbf.Params, tables *matlaw.Params) (model Model, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	m, ok := model.(Tabulated)
	if !ok {
		return nil, chk.Err("model %q does not take sample tables", name)
	}
	if err = model.Init(prms); err != nil {
		return nil, err
	}
	if err = m.SetTables(tables); err != nil {
		return nil, err
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
