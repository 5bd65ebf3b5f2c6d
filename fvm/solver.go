// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// SolveSteady solves the steady mass balance of the first phase with Picard iterations
//   Σ_scvf upw(ρλ)・(Σ_j t_j・p_j + neumann) = 0   for each cell
//  Note: the upwinded ρλ is frozen during each iteration; other primary variables are kept
func (o *Domain) SolveSteady() (err error) {

	// check
	for _, ghost := range o.Filler.GhostCells {
		if ghost {
			return chk.Err("steady driver cannot run with cells owned by other processes")
		}
	}

	// summary
	o.Sum = new(Summary)
	before := o.Cache.Stats()
	defer func() {
		after := o.Cache.Stats()
		o.Sum.IvSolves = after.IvSolves - before.IvSolves
		o.Sum.Writes = after.Writes - before.Writes
	}()

	// iterations
	ncells := o.G.NumCells()
	eq := o.Sim.Eqs.Advection(0)
	for it := 0; it < o.Sim.Mpfa.NmaxIt; it++ {

		// state and transmissibilities
		err = o.Refresh()
		if err != nil {
			return
		}

		// assemble
		K := mat.NewDense(ncells, ncells, nil)
		r := mat.NewVecDense(ncells, nil)
		for c := 0; c < ncells; c++ {
			err = o.assemble(c, eq, K, r)
			if err != nil {
				return
			}
		}

		// solve
		var p mat.VecDense
		err = p.SolveVec(K, r)
		if err != nil {
			return chk.Err("cannot solve global system at iteration %d:\n%v", it, err)
		}

		// update
		var δ float64
		for c := 0; c < ncells; c++ {
			δ = math.Max(δ, math.Abs(p.AtVec(c)-o.U[c][eq]))
			o.U[c][eq] = p.AtVec(c)
		}
		o.Sum.Resids = append(o.Sum.Resids, δ)
		o.Sum.Iterations = it + 1
		if o.Verbose {
			io.Pf("%4d%23.15e\n", it, δ)
		}
		if δ < o.Sim.Mpfa.Tol {
			o.Sum.Converged = true
			break
		}
	}
	if !o.Sum.Converged {
		return chk.Err("Picard iterations did not converge after %d iterations", o.Sim.Mpfa.NmaxIt)
	}

	// final state
	return o.Refresh()
}

// assemble adds the balance of cell c to row c of K・p = r
func (o *Domain) assemble(c, eq int, K *mat.Dense, r *mat.VecDense) (err error) {
	for _, f := range o.G.CellScvfs[c] {
		s := o.G.Scvfs[f]

		// prescribed flux
		if s.Boundary {
			types, e := o.Problem.BcTypes(s)
			if e != nil {
				return e
			}
			if types.IsNeumann(eq) {
				q := o.Problem.Neumann(s, eq) * s.Area * o.G.Scvs[s.InsideScv].Extrusion
				r.SetVec(c, r.AtVec(c)-q)
				continue
			}
		}

		// transmissibilities
		e, err := o.Cache.Get(f)
		if err != nil {
			return err
		}
		rec := e.Advection()
		if rec == nil {
			return chk.Err("advective transmissibilities of scvf %d are not available", f)
		}
		neumann := e.AdvNeumann(0)
		q := rec.Flux(func(d int) float64 { return o.Vars.VolVars(d).P[0] }) + neumann
		m := o.Eval.Upwinded(f, 0, q)

		// coefficients
		for k, d := range rec.Stencil {
			t := m * rec.Tij[k]
			if o.G.IsGhostDof(d) {
				r.SetVec(c, r.AtVec(c)-t*o.Vars[d].P[0])
				continue
			}
			K.Set(c, d, K.At(c, d)+t)
		}
		r.SetVec(c, r.AtVec(c)-m*neumann)
	}
	return
}
