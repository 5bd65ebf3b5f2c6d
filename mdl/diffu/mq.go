// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffu

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MillingtonQuirk implements the Millington-Quirk tortuosity correction
//  Deff = φ^(4/3) ・ s^(10/3) ・ d ・ I
type MillingtonQuirk struct {
	d float64 // binary diffusion coefficient in free fluid
}

// add model to factory
func init() {
	allocators["mq"] = func() Model { return new(MillingtonQuirk) }
}

// Init initialises this structure
func (o *MillingtonQuirk) Init(ndim int, prms dbf.Params) (err error) {
	*o = MillingtonQuirk{}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.d = p.V
		default:
			return chk.Err("mq: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.d < 0 {
		return chk.Err("mq: diffusion coefficient must be non-negative. d=%g is invalid", o.d)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MillingtonQuirk) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "d", V: 2e-9}}
	}
	return dbf.Params{&dbf.P{N: "d", V: o.d}}
}

// Dten computes the diffusion tensor
func (o MillingtonQuirk) Dten(dten [][]float64, phi, sat float64) {
	var v float64
	if phi > 0 && sat > 0 {
		v = math.Pow(phi, 4.0/3.0) * math.Pow(sat, 10.0/3.0) * o.d
	}
	for i := range dten {
		for j := range dten[i] {
			dten[i][j] = 0
		}
		dten[i][i] = v
	}
}
