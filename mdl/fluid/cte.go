// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cte implements an incompressible fluid with constant viscosity
type Cte struct {
	rho float64 // mass density
	mu  float64 // dynamic viscosity
	mm  float64 // molar mass
}

// add model to factory
func init() {
	allocators["cte"] = func() Model { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(prms dbf.Params) (err error) {
	*o = Cte{}
	o.rho, o.mu, o.mm = 1, 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho":
			o.rho = p.V
		case "mu":
			o.mu = p.V
		case "mm":
			o.mm = p.V
		default:
			return chk.Err("cte: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.rho <= 0 || o.mu <= 0 || o.mm <= 0 {
		return chk.Err("cte: rho, mu and mm must be positive. rho=%g mu=%g mm=%g is invalid", o.rho, o.mu, o.mm)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Cte) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water
			&dbf.P{N: "rho", V: 1000},
			&dbf.P{N: "mu", V: 1e-3},
			&dbf.P{N: "mm", V: 0.018},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.rho},
		&dbf.P{N: "mu", V: o.mu},
		&dbf.P{N: "mm", V: o.mm},
	}
}

// Rho returns the mass density
func (o Cte) Rho(p, T float64) float64 { return o.rho }

// MolarRho returns the molar density
func (o Cte) MolarRho(p, T float64) float64 { return o.rho / o.mm }

// Mu returns the dynamic viscosity
func (o Cte) Mu(p, T float64) float64 { return o.mu }
