// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Comp implements a slightly compressible fluid
//  ρ(p) = ρ0 ・ exp(cf ・ (p - p0))
type Comp struct {
	rho0 float64 // density at reference pressure
	p0   float64 // reference pressure
	cf   float64 // compressibility
	mu   float64 // dynamic viscosity
	mm   float64 // molar mass
}

// add model to factory
func init() {
	allocators["comp"] = func() Model { return new(Comp) }
}

// Init initialises this structure
func (o *Comp) Init(prms dbf.Params) (err error) {
	*o = Comp{}
	o.rho0, o.mu, o.mm = 1, 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho0":
			o.rho0 = p.V
		case "p0":
			o.p0 = p.V
		case "cf":
			o.cf = p.V
		case "mu":
			o.mu = p.V
		case "mm":
			o.mm = p.V
		default:
			return chk.Err("comp: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.rho0 <= 0 || o.mu <= 0 || o.mm <= 0 || o.cf < 0 {
		return chk.Err("comp: invalid parameters. rho0=%g mu=%g mm=%g cf=%g", o.rho0, o.mu, o.mm, o.cf)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Comp) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // water
			&dbf.P{N: "rho0", V: 1000},
			&dbf.P{N: "p0", V: 1e5},
			&dbf.P{N: "cf", V: 4.5e-10},
			&dbf.P{N: "mu", V: 1e-3},
			&dbf.P{N: "mm", V: 0.018},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho0", V: o.rho0},
		&dbf.P{N: "p0", V: o.p0},
		&dbf.P{N: "cf", V: o.cf},
		&dbf.P{N: "mu", V: o.mu},
		&dbf.P{N: "mm", V: o.mm},
	}
}

// Rho returns the mass density
func (o Comp) Rho(p, T float64) float64 { return o.rho0 * math.Exp(o.cf*(p-o.p0)) }

// MolarRho returns the molar density
func (o Comp) MolarRho(p, T float64) float64 { return o.Rho(p, T) / o.mm }

// Mu returns the dynamic viscosity
func (o Comp) Mu(p, T float64) float64 { return o.mu }
