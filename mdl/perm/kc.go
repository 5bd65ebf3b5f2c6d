// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"
	"strings"

	"github.com/m-giraud/dumux3.0-sub000/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// KozenyCarman scales a reference tensor with porosity
//  K(φ) = K0 ・ f(φ) / f(φ0)    with    f(φ) = φ³ / (1 - φ)²
type KozenyCarman struct {
	phi0 float64     // reference porosity
	K0   [][]float64 // reference tensor
	f0   float64     // f(φ0)
}

// add model to factory
func init() {
	allocators["kc"] = func() Model { return new(KozenyCarman) }
}

// Init initialises this structure
func (o *KozenyCarman) Init(ndim int, prms dbf.Params) (err error) {
	*o = KozenyCarman{}
	var kprms dbf.Params
	for _, p := range prms {
		switch {
		case strings.ToLower(p.N) == "phi0":
			o.phi0 = p.V
		case mdl.IsTensorKey(p.N, "k"):
			kprms = append(kprms, p)
		default:
			return chk.Err("kc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.phi0 <= 0 || o.phi0 >= 1 {
		return chk.Err("kc: reference porosity must be in (0,1). phi0=%g is invalid", o.phi0)
	}
	o.f0 = kcFactor(o.phi0)
	o.K0, err = mdl.TensorFromPrms(ndim, kprms, "k")
	return
}

// GetPrms gets (an example) of parameters
func (o KozenyCarman) GetPrms(example bool) dbf.Params {
	if example || o.K0 == nil {
		return dbf.Params{
			&dbf.P{N: "k", V: 1e-12},
			&dbf.P{N: "phi0", V: 0.3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "k", V: o.K0[0][0]},
		&dbf.P{N: "phi0", V: o.phi0},
	}
}

// Kten computes the permeability tensor
func (o KozenyCarman) Kten(kten [][]float64, phi float64) {
	phi = math.Min(math.Max(phi, 1e-10), 1-1e-10)
	mdl.Scale(kten, kcFactor(phi)/o.f0, o.K0)
}

func kcFactor(phi float64) float64 {
	return phi * phi * phi / ((1 - phi) * (1 - phi))
}
