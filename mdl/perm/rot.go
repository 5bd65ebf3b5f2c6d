// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Rot implements a permeability tensor given by its principal values rotated about the z-axis
//  K = R・diag(k1, k2, k3)・Rᵀ    with    R = [[cos α, -sin α, 0], [sin α, cos α, 0], [0, 0, 1]]
type Rot struct {
	k1, k2, k3 float64 // principal values
	α          float64 // rotation angle [rad]
	K          [][]float64
}

// add model to factory
func init() {
	allocators["rot"] = func() Model { return new(Rot) }
}

// Init initialises this structure
func (o *Rot) Init(ndim int, prms dbf.Params) (err error) {
	*o = Rot{}
	if ndim < 2 {
		return chk.Err("rot: model requires ndim >= 2")
	}
	o.k3 = -1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k1":
			o.k1 = p.V
		case "k2":
			o.k2 = p.V
		case "k3":
			o.k3 = p.V
		case "alpha":
			o.α = p.V
		default:
			return chk.Err("rot: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.k1 < 0 || o.k2 < 0 {
		return chk.Err("rot: principal permeabilities must be non-negative. k1=%g k2=%g is invalid", o.k1, o.k2)
	}
	if o.k3 < 0 {
		o.k3 = o.k2
	}
	c, s := math.Cos(o.α), math.Sin(o.α)
	o.K = utl.Alloc(ndim, ndim)
	o.K[0][0] = c*c*o.k1 + s*s*o.k2
	o.K[1][1] = s*s*o.k1 + c*c*o.k2
	o.K[0][1] = c * s * (o.k1 - o.k2)
	o.K[1][0] = o.K[0][1]
	if ndim == 3 {
		o.K[2][2] = o.k3
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Rot) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "k1", V: 1e-11},
			&dbf.P{N: "k2", V: 1e-12},
			&dbf.P{N: "alpha", V: math.Pi / 6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "k1", V: o.k1},
		&dbf.P{N: "k2", V: o.k2},
		&dbf.P{N: "k3", V: o.k3},
		&dbf.P{N: "alpha", V: o.α},
	}
}

// Kten computes the permeability tensor
func (o Rot) Kten(kten [][]float64, phi float64) {
	for i := range o.K {
		copy(kten[i], o.K[i])
	}
}
