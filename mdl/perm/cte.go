// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"github.com/m-giraud/dumux3.0-sub000/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte implements a constant (possibly anisotropic and full) permeability tensor
//  Parameters: k (isotropic) or kx, ky, kz, kxy, kyz, kxz
type Cte struct {
	ndim int
	K    [][]float64
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(ndim int, prms dbf.Params) (err error) {
	*o = Cte{}
	o.ndim = ndim
	for _, p := range prms {
		if !mdl.IsTensorKey(p.N, "k") {
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	o.K, err = mdl.TensorFromPrms(ndim, prms, "k")
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) dbf.Params {
	if example || o.K == nil {
		return dbf.Params{
			&dbf.P{N: "k", V: 1e-12},
		}
	}
	diag, offd := mdl.TensorKeys("k", o.ndim)
	var prms dbf.Params
	for i, key := range diag {
		prms = append(prms, &dbf.P{N: key, V: o.K[i][i]})
	}
	for k, key := range offd {
		i, j := mdl.OffdIndices(k)
		prms = append(prms, &dbf.P{N: key, V: o.K[i][j]})
	}
	return prms
}

// Kten computes the permeability tensor
func (o Cte) Kten(kten [][]float64, phi float64) {
	mdl.Scale(kten, 1, o.K)
}
