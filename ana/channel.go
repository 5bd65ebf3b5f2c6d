// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Channel implements the steady one-dimensional flow of a slightly compressible fluid
// between two prescribed pressures
//     pl                      pr
//     |→→→→→→→→→→→→→→→→→→→→→→→|
//     x=0        k, μ         x=L
//   ρ(p) = ρ0・exp(cf・(p - p0))   =>   ρ(p(x)) varies linearly in x
//  Note: cf = 0 gives the linear solution of incompressible flow
type Channel struct {
	L   float64 // length
	Pl  float64 // pressure at x = 0
	Pr  float64 // pressure at x = L
	K   float64 // permeability along x
	Mu  float64 // viscosity
	Rho float64 // density at reference pressure
	P0  float64 // reference pressure
	Cf  float64 // compressibility
}

// Init initialises this structure
func (o *Channel) Init(prms dbf.Params) (err error) {

	// default values
	o.L, o.Pl, o.Pr = 1, 1, 0
	o.K, o.Mu, o.Rho = 1, 1, 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "L":
			o.L = p.V
		case "pl":
			o.Pl = p.V
		case "pr":
			o.Pr = p.V
		case "k":
			o.K = p.V
		case "mu":
			o.Mu = p.V
		case "rho0":
			o.Rho = p.V
		case "p0":
			o.P0 = p.V
		case "cf":
			o.Cf = p.V
		default:
			return chk.Err("channel: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.L <= 0 || o.K <= 0 || o.Mu <= 0 || o.Rho <= 0 || o.Cf < 0 {
		return chk.Err("channel: invalid parameters. L=%g k=%g mu=%g rho0=%g cf=%g", o.L, o.K, o.Mu, o.Rho, o.Cf)
	}
	return
}

// Density returns the density at pressure p
func (o Channel) Density(p float64) float64 {
	return o.Rho * math.Exp(o.Cf*(p-o.P0))
}

// Pressure returns the pressure at x
func (o Channel) Pressure(x float64) float64 {
	ξ := x / o.L
	if o.Cf == 0 {
		return o.Pl + (o.Pr-o.Pl)*ξ
	}
	ρl, ρr := o.Density(o.Pl), o.Density(o.Pr)
	return o.P0 + math.Log((ρl+(ρr-ρl)*ξ)/o.Rho)/o.Cf
}

// MassFlux returns the mass flux per unit area along x
//  Note: the flux is constant along the channel
func (o Channel) MassFlux() float64 {
	if o.Cf == 0 {
		return o.Rho * o.K / o.Mu * (o.Pl - o.Pr) / o.L
	}
	return o.K / (o.Mu * o.Cf) * (o.Density(o.Pl) - o.Density(o.Pr)) / o.L
}

// CompareP compares pressures at the given positions
//  Output:
//   e -- absolute error at each position
func (o Channel) CompareP(x [][]float64, p []float64, tol float64, verbose bool) (e []float64) {
	e = make([]float64, len(p))
	for i := range p {
		pa := o.Pressure(x[i][0])
		if verbose {
			chk.PrintAnaNum("p", tol, pa, p[i], verbose)
		}
		e[i] = math.Abs(pa - p[i])
	}
	return
}
