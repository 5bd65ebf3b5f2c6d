// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"github.com/m-giraud/dumux3.0-sub000/dualgrid"
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/mpfa"
	"github.com/m-giraud/dumux3.0-sub000/vars"

	"github.com/cpmech/gosl/chk"
)

// Stats holds statistics of fill passes
type Stats struct {
	IvSolves int // number of local systems solved
	Writes   int // number of scvf entries written
}

// Filler solves interaction volumes and writes the results into cache entries
type Filler struct {

	// input
	G                *geo.FvGeometry    // geometry
	Dual             *dualgrid.DualGrid // nodal index sets
	Problem          mpfa.Problem       // boundary conditions
	State            vars.StateProvider // volume variables
	Eqs              inp.EqLayout       // numbering of equations
	NeumannDiffusive bool               // Neumann conditions belong to the diffusive law when diffusion is active
	GhostCells       []bool             // cells owned by other processes; may be nil

	// tensor accessors
	PermFunc   mpfa.TensorFunc   // permeability
	DiffuFuncs []mpfa.TensorFunc // diffusion tensor of each phase
	HeatFunc   mpfa.TensorFunc   // thermal conductivity

	// internal
	iv    *mpfa.InteractionVolume
	stats Stats
}

// NewFiller returns a filler whose tensor accessors read the volume variables
func NewFiller(g *geo.FvGeometry, dual *dualgrid.DualGrid, problem mpfa.Problem, state vars.StateProvider, eqs inp.EqLayout) (o *Filler) {
	o = &Filler{G: g, Dual: dual, Problem: problem, State: state, Eqs: eqs}
	o.PermFunc = func(cell int, vv *vars.VolVars, scv *geo.Scv) [][]float64 { return vv.K }
	o.DiffuFuncs = make([]mpfa.TensorFunc, eqs.Nphases)
	for α := range o.DiffuFuncs {
		phase := α
		o.DiffuFuncs[α] = func(cell int, vv *vars.VolVars, scv *geo.Scv) [][]float64 { return vv.D[phase] }
	}
	o.HeatFunc = func(cell int, vv *vars.VolVars, scv *geo.Scv) [][]float64 { return vv.Lambda }
	o.iv = mpfa.New(g, problem)
	return
}

// Stats returns the statistics since the filler was created
func (o *Filler) Stats() Stats { return o.stats }

// Fill solves the interaction volume at the vertex of scvf and writes all scvfs it touches
//  writer -- returns the mutation handle of the entry of a scvf
func (o *Filler) Fill(scvf int, writer func(scvf int) Writer) (err error) {
	s := o.G.Scvfs[scvf]
	set := o.Dual.Set(s.VertexId)
	if set == nil {
		return chk.Err("scvf %d is attached to vertex %d which has no index set", scvf, s.VertexId)
	}
	rows, err := o.fillAdvection(set, writer)
	if err != nil {
		return
	}
	for α := 0; α < o.Eqs.Nphases; α++ {
		for κ := 0; κ < o.Eqs.Ncomps; κ++ {
			if κ == α {
				continue
			}
			err = o.fillDiffusion(set, α, κ, writer)
			if err != nil {
				return
			}
		}
	}
	if o.Eqs.Heat {
		err = o.fillHeat(set, writer)
		if err != nil {
			return
		}
	}
	for _, idx := range rows {
		writer(idx).MarkUpdated()
	}
	o.stats.Writes += len(rows)
	return
}

// advectionNeumann tells whether the advective law carries the Neumann fluxes
func (o *Filler) advectionNeumann() bool {
	return o.Eqs.Ncomps == 0 || !o.NeumannDiffusive
}

// solve binds and solves the interaction volume for equation eq
func (o *Filler) solve(set *dualgrid.NodalIndexSet, eq int, tf mpfa.TensorFunc) (err error) {
	err = o.iv.SetUpLocalScope(set, eq)
	if err != nil {
		return
	}
	err = o.iv.SolveLocalSystem(tf, o.State)
	if err != nil {
		return
	}
	o.stats.IvSolves++
	return
}

// massScale converts prescribed mass fluxes of phase α into Darcy fluxes K∇p・n・a using
// the ρ・λ of the inside dof; the evaluator multiplies them back by the upwinded ρ・λ
func (o *Filler) massScale(α int) mpfa.ScaleFunc {
	return func(s *geo.Scvf) (float64, error) {
		vv := o.State.VolVars(s.InsideScv)
		ρλ := vv.Rho[α] * vv.Mobility(α)
		if ρλ <= 0 {
			return 0, chk.Err("phase %d is immobile at scvf %d where a mass flux is prescribed", α, s.Idx)
		}
		return 1 / ρλ, nil
	}
}

// molarScale converts prescribed molar fluxes in phase α into Fick fluxes D∇x・n・a
func (o *Filler) molarScale(α int) mpfa.ScaleFunc {
	return func(s *geo.Scvf) (float64, error) {
		ρm := o.State.VolVars(s.InsideScv).MolarRho[α]
		if ρm <= 0 {
			return 0, chk.Err("molar density of phase %d vanishes at scvf %d where a molar flux is prescribed", α, s.Idx)
		}
		return 1 / ρm, nil
	}
}

func (o *Filler) fillAdvection(set *dualgrid.NodalIndexSet, writer func(int) Writer) (rows []int, err error) {
	err = o.solve(set, o.Eqs.Advection(0), o.PermFunc)
	if err != nil {
		return
	}
	rows = o.iv.GlobalScvfs()
	stencil := append([]int{}, o.iv.Stencil()...)
	for r, idx := range rows {
		writer(idx).SetAdvection(stencil, o.iv.Transmissibilities(r))
	}
	if !set.Boundary || !o.advectionNeumann() {
		return
	}
	for α := 0; α < o.Eqs.Nphases; α++ {
		err = o.iv.AssembleNeumannFluxes(o.Eqs.Advection(α), o.massScale(α))
		if err != nil {
			return
		}
		for r, idx := range rows {
			writer(idx).SetAdvNeumann(o.Eqs.Nphases, α, o.iv.NeumannFlux(r))
		}
	}
	return
}

func (o *Filler) fillDiffusion(set *dualgrid.NodalIndexSet, α, κ int, writer func(int) Writer) (err error) {
	eq := o.Eqs.Diffusion(α, κ)
	err = o.solve(set, eq, o.DiffuFuncs[α])
	if err != nil {
		return
	}
	if set.Boundary && o.NeumannDiffusive {
		err = o.iv.AssembleNeumannFluxes(eq, o.molarScale(α))
		if err != nil {
			return
		}
	}
	stencil := append([]int{}, o.iv.Stencil()...)
	for r, idx := range o.iv.GlobalScvfs() {
		rec := &Record{Stencil: stencil, Tij: o.iv.Transmissibilities(r), Neumann: o.iv.NeumannFlux(r)}
		writer(idx).SetDiffusion(o.Eqs.Nphases, o.Eqs.Ncomps, α, κ, rec)
	}
	return
}

func (o *Filler) fillHeat(set *dualgrid.NodalIndexSet, writer func(int) Writer) (err error) {
	eq := o.Eqs.HeatEq()
	err = o.solve(set, eq, o.HeatFunc)
	if err != nil {
		return
	}
	if set.Boundary {
		err = o.iv.AssembleNeumannFluxes(eq, nil)
		if err != nil {
			return
		}
	}
	stencil := append([]int{}, o.iv.Stencil()...)
	for r, idx := range o.iv.GlobalScvfs() {
		writer(idx).SetConduction(&Record{Stencil: stencil, Tij: o.iv.Transmissibilities(r), Neumann: o.iv.NeumannFlux(r)})
	}
	return
}
