// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flux evaluates advective (Darcy), diffusive (Fick) and conductive (Fourier) fluxes
// through scvfs from cached transmissibilities and upwinded volume variables
package flux

import (
	"github.com/m-giraud/dumux3.0-sub000/cache"
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/mpfa"
	"github.com/m-giraud/dumux3.0-sub000/vars"

	"github.com/cpmech/gosl/chk"
)

// Quantity selects the transported quantity
type Quantity int

// quantities
const (
	Advection  Quantity = iota // phase mass (Darcy)
	Diffusion                  // component moles (Fick)
	Conduction                 // heat (Fourier)
)

// Upwind blends inside and outside values according to the sign of the flux q
//  w = 1 => full upwind; w = 0.5 => central
func Upwind(w, q, in, out float64) float64 {
	if q >= 0 {
		return w*in + (1-w)*out
	}
	return w*out + (1-w)*in
}

// Evaluator computes fluxes through scvfs
type Evaluator struct {
	G       *geo.FvGeometry    // geometry
	Cache   cache.Cache        // transmissibilities
	State   vars.StateProvider // volume variables of cells and ghost dofs
	Problem mpfa.Problem       // boundary conditions
	Eqs     inp.EqLayout       // numbering of equations
	Upwind  float64            // upwind weight
}

// Flux returns the flux of a quantity through scvf; phase and comp are ignored when not needed
func (o *Evaluator) Flux(quantity Quantity, scvf, phase, comp int) (float64, error) {
	switch quantity {
	case Advection:
		return o.Advective(scvf, phase)
	case Diffusion:
		return o.Diffusive(scvf, phase, comp)
	case Conduction:
		return o.Conductive(scvf)
	}
	return 0, chk.Err("quantity %d is invalid", quantity)
}

// Advective returns the mass flux of phase α: upw(ρ・λ)・(Σ t・p + neumann)
func (o *Evaluator) Advective(scvf, α int) (float64, error) {
	s := o.G.Scvfs[scvf]
	if q, ok, err := o.prescribed(s, o.Eqs.Advection(α)); ok || err != nil {
		return q, err
	}
	e, err := o.Cache.Get(scvf)
	if err != nil {
		return 0, err
	}
	rec := e.Advection()
	if rec == nil {
		return 0, chk.Err("advective transmissibilities of scvf %d are not available", scvf)
	}
	q := rec.Flux(func(d int) float64 { return o.State.VolVars(d).P[α] }) + e.AdvNeumann(α)
	return o.Upwinded(scvf, α, q) * q, nil
}

// Upwinded returns the upwinded ρ・λ of phase α at scvf for a flux with the sign of q
func (o *Evaluator) Upwinded(scvf, α int, q float64) float64 {
	s := o.G.Scvfs[scvf]
	ρλ := func(vv *vars.VolVars) float64 { return vv.Rho[α] * vv.Mobility(α) }
	return Upwind(o.Upwind, q, ρλ(o.State.VolVars(s.InsideScv)), o.outside(s, ρλ))
}

// Diffusive returns the molar flux of component κ in phase α: upw(ρm)・(Σ t・x + neumann)
func (o *Evaluator) Diffusive(scvf, α, κ int) (float64, error) {
	s := o.G.Scvfs[scvf]
	if q, ok, err := o.prescribed(s, o.Eqs.Diffusion(α, κ)); ok || err != nil {
		return q, err
	}
	e, err := o.Cache.Get(scvf)
	if err != nil {
		return 0, err
	}
	rec := e.Diffusion(α, κ)
	if rec == nil {
		return 0, chk.Err("diffusive transmissibilities of component %d in phase %d are not available at scvf %d", κ, α, scvf)
	}
	q := rec.Flux(func(d int) float64 { return o.State.VolVars(d).X[α][κ] })
	ρm := func(vv *vars.VolVars) float64 { return vv.MolarRho[α] }
	return Upwind(o.Upwind, q, ρm(o.State.VolVars(s.InsideScv)), o.outside(s, ρm)) * q, nil
}

// Conductive returns the heat flux: Σ t・T + neumann
func (o *Evaluator) Conductive(scvf int) (float64, error) {
	s := o.G.Scvfs[scvf]
	if q, ok, err := o.prescribed(s, o.Eqs.HeatEq()); ok || err != nil {
		return q, err
	}
	e, err := o.Cache.Get(scvf)
	if err != nil {
		return 0, err
	}
	rec := e.Conduction()
	if rec == nil {
		return 0, chk.Err("conductive transmissibilities of scvf %d are not available", scvf)
	}
	return rec.Flux(func(d int) float64 { return o.State.VolVars(d).T }), nil
}

// prescribed returns the Neumann flux of boundary scvfs
func (o *Evaluator) prescribed(s *geo.Scvf, eq int) (q float64, ok bool, err error) {
	if !s.Boundary {
		return
	}
	types, err := o.Problem.BcTypes(s)
	if err != nil {
		return
	}
	if types.IsNeumann(eq) {
		return o.Problem.Neumann(s, eq) * s.Area * o.G.Scvs[s.InsideScv].Extrusion, true, nil
	}
	return
}

// outside returns the value on the outside; the average over all outside scvs at branching points
func (o *Evaluator) outside(s *geo.Scvf, f func(vv *vars.VolVars) float64) (v float64) {
	for _, d := range s.OutsideScvs {
		v += f(o.State.VolVars(d))
	}
	return v / float64(len(s.OutsideScvs))
}
