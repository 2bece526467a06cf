// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// EvalAll evaluates law at many fluid states concurrently
//  nworkers -- maximum number of goroutines; nworkers < 1 means one per state
//  Note: laws and tables are read-only, thus states may share prms
func EvalAll(ctx context.Context, law Law, prms *Params, states []FluidState, ncomps, nworkers int) (res []*Result, err error) {
	if law == nil {
		return nil, chk.Err("matlaw: law must be non-nil")
	}
	for i, fs := range states {
		if fs == nil {
			return nil, chk.Err("matlaw: state %d is nil", i)
		}
	}
	res = make([]*Result, len(states))
	g, ctx := errgroup.WithContext(ctx)
	if nworkers > 0 {
		g.SetLimit(nworkers)
	}
	for i, fs := range states {
		i, fs := i, fs
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = Eval(law, prms, fs, ncomps)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}
