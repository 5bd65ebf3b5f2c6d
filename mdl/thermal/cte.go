// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/m-giraud/dumux3.0-sub000/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte implements a constant effective thermal conductivity tensor
//  Parameters: lam (isotropic) or lamx, lamy, lamz, lamxy, lamyz, lamxz
type Cte struct {
	L [][]float64
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(ndim int, prms dbf.Params) (err error) {
	*o = Cte{}
	for _, p := range prms {
		if !mdl.IsTensorKey(p.N, "lam") {
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	o.L, err = mdl.TensorFromPrms(ndim, prms, "lam")
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) dbf.Params {
	if example || o.L == nil {
		return dbf.Params{&dbf.P{N: "lam", V: 2.5}}
	}
	return dbf.Params{&dbf.P{N: "lam", V: o.L[0][0]}}
}

// Lten computes the conductivity tensor
func (o Cte) Lten(lten [][]float64, phi float64, sats []float64) {
	mdl.Scale(lten, 1, o.L)
}
