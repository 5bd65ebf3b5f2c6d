// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm binds mesh, geometry, interaction volumes, caches and state of a
// cell-centred finite volume simulation
package fvm

import (
	"github.com/m-giraud/dumux3.0-sub000/cache"
	"github.com/m-giraud/dumux3.0-sub000/dualgrid"
	"github.com/m-giraud/dumux3.0-sub000/flux"
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/vars"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds all data of a simulation on one mesh
//  dofs:  [0, ncells)            cells
//         [ncells, ncells+nbry)  ghost dofs of boundary scvfs
type Domain struct {

	// input
	Sim     *inp.Simulation // simulation data
	Msh     *inp.Mesh       // mesh
	Verbose bool            // show messages

	// discretisation
	G       *geo.FvGeometry    // geometry
	Dual    *dualgrid.DualGrid // nodal index sets
	Problem *SimProblem        // boundary conditions
	Filler  *cache.Filler      // interaction volume solver
	Cache   cache.Cache        // transmissibilities
	Eval    *flux.Evaluator    // fluxes

	// state
	Models []*vars.Models // [ncells] material models of each cell
	U      [][]float64    // [ncells][neq] primary variables of each cell
	Vars   vars.States    // [ndofs] volume variables of cells and ghost dofs

	// results
	Sum *Summary // summary of last solution
}

// NewDomain allocates a new domain
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Msh = sim.Msh
	o.Verbose = sim.Data.Verbose

	// models of cells
	models := make(map[int]*vars.Models)
	ncells := len(o.Msh.Cells)
	o.Models = make([]*vars.Models, ncells)
	extrusion := make([]float64, ncells)
	for i, cell := range o.Msh.Cells {
		mdl, ok := models[cell.Tag]
		if !ok {
			cd := sim.CellData(cell.Tag)
			if cd == nil {
				return nil, chk.Err("cannot find data of cell %d with tag %d", cell.Id, cell.Tag)
			}
			mdl, err = vars.NewModels(sim, cd)
			if err != nil {
				return nil, err
			}
			models[cell.Tag] = mdl
		}
		o.Models[i] = mdl
		extrusion[i] = mdl.Extrusion
	}

	// geometry
	o.G, err = geo.NewFvGeometry(o.Msh, sim.Mpfa.Q, extrusion)
	if err != nil {
		return nil, chk.Err("cannot build geometry:\n%v", err)
	}
	o.Dual, err = dualgrid.Build(o.G, o.Msh.GhostVerts(), o.Msh.GhostCells(), o.Verbose)
	if err != nil {
		return nil, chk.Err("cannot build dual grid:\n%v", err)
	}
	o.Problem = &SimProblem{Sim: sim, Time: sim.Data.Time}

	// initial state
	neq := sim.Eqs.Neq()
	o.U = make([][]float64, ncells)
	for i := range o.U {
		o.U[i] = make([]float64, neq)
		if sim.Eqs.Heat {
			o.U[i][sim.Eqs.HeatEq()] = o.Models[i].Temp
		}
	}
	o.Vars = make(vars.States, o.G.NumDofs())
	for d := range o.Vars {
		o.Vars[d] = new(vars.VolVars)
	}
	err = o.UpdateState()
	if err != nil {
		return nil, err
	}

	// cache and fluxes
	o.Filler = cache.NewFiller(o.G, o.Dual, o.Problem, o.Vars, sim.Eqs)
	o.Filler.NeumannDiffusive = sim.Mpfa.NeumannDiffusive
	o.Filler.GhostCells = o.Msh.GhostCells()
	o.Cache = cache.New(sim.Mpfa.CacheGlobally, o.Filler)
	if eager, ok := o.Cache.(*cache.Eager); ok {
		eager.Verbose = o.Verbose
	}
	o.Eval = &flux.Evaluator{G: o.G, Cache: o.Cache, State: o.Vars, Problem: o.Problem, Eqs: sim.Eqs, Upwind: sim.Mpfa.Upwind}
	if o.Verbose {
		io.Pfyel("domain: %d cells, %d scvfs, %d boundary dofs, %d index sets\n", ncells, len(o.G.Scvfs), o.G.NumBoundary(), len(o.Dual.Sets))
	}
	return
}

// UpdateState computes the volume variables of cells from U and of ghost dofs from Dirichlet values
func (o *Domain) UpdateState() (err error) {
	ncells := o.G.NumCells()
	for c := 0; c < ncells; c++ {
		o.Models[c].Calc(o.Vars[c], o.U[c])
	}
	for d := ncells; d < o.G.NumDofs(); d++ {
		s := o.G.GhostScvf(d)
		types, e := o.Problem.BcTypes(s)
		if e != nil {
			return chk.Err("cannot compute boundary state of scvf %d:\n%v", s.Idx, e)
		}
		u := append([]float64{}, o.U[s.CellId]...)
		for eq := range u {
			if types.IsDirichlet(eq) {
				u[eq] = o.Problem.Dirichlet(s, eq)
			}
		}
		o.Models[s.CellId].Calc(o.Vars[d], u)
	}
	return
}

// Refresh recomputes the state and all stale transmissibilities; e.g. after U has been changed
func (o *Domain) Refresh() (err error) {
	err = o.UpdateState()
	if err != nil {
		return
	}
	o.Cache.Invalidate()
	return o.Cache.Update()
}

// FaceFluxes returns the advective flux of phase α through every scvf
func (o *Domain) FaceFluxes(α int) (res []float64, err error) {
	res = make([]float64, len(o.G.Scvfs))
	for i := range o.G.Scvfs {
		res[i], err = o.Eval.Advective(i, α)
		if err != nil {
			return nil, err
		}
	}
	return
}

// CellPairFlux returns the total advective flux of phase α from cell a to cell b
func (o *Domain) CellPairFlux(a, b, α int) (q float64, err error) {
	found := false
	for _, f := range o.G.CellScvfs[a] {
		s := o.G.Scvfs[f]
		for _, c := range s.OutsideCells {
			if c == b {
				v, e := o.Eval.Advective(f, α)
				if e != nil {
					return 0, e
				}
				q += v
				found = true
				break
			}
		}
	}
	if !found {
		return 0, chk.Err("cells %d and %d are not neighbours", a, b)
	}
	return
}

// BoundaryFlux returns the total advective flux of phase α leaving the domain through faces with tag ftag
func (o *Domain) BoundaryFlux(ftag, α int) (q float64, err error) {
	for i, s := range o.G.Scvfs {
		if s.Boundary && s.Tag == ftag {
			v, e := o.Eval.Advective(i, α)
			if e != nil {
				return 0, e
			}
			q += v
		}
	}
	return
}

// Pressures returns the pressures of phase α in all cells
func (o *Domain) Pressures(α int) (p []float64) {
	p = make([]float64, len(o.U))
	for c, u := range o.U {
		p[c] = u[o.Sim.Eqs.Advection(α)]
	}
	return
}
