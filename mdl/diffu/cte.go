// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffu

import (
	"github.com/m-giraud/dumux3.0-sub000/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte implements a constant effective diffusion tensor
//  Parameters: d (isotropic) or dx, dy, dz, dxy, dyz, dxz
type Cte struct {
	D [][]float64
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(ndim int, prms dbf.Params) (err error) {
	*o = Cte{}
	for _, p := range prms {
		if !mdl.IsTensorKey(p.N, "d") {
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	o.D, err = mdl.TensorFromPrms(ndim, prms, "d")
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) dbf.Params {
	if example || o.D == nil {
		return dbf.Params{&dbf.P{N: "d", V: 2e-9}}
	}
	return dbf.Params{&dbf.P{N: "d", V: o.D[0][0]}}
}

// Dten computes the diffusion tensor
func (o Cte) Dten(dten [][]float64, phi, sat float64) {
	mdl.Scale(dten, 1, o.D)
}
