// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfa

import (
	"github.com/m-giraud/dumux3.0-sub000/adapt"
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/vars"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolveLocalSystem computes the transmissibilities of all rows
//  The flux of row d (scvf of scv s) is
//   q_d = Σ_j ω_dj (u_s - u_j)    with    ω_dj = a_d・e_s・n_d・K_s・ν_j
//  where j runs over the faces of s, u_j are face values and ν_j is the dual basis of s.
//  Flux continuity at unknown faces, Σ_d q_d = N_f, eliminates the face unknowns:
//   A・x = B・k + n    and    q = C・x + D・k
//  Hence q = T・k + C・A⁻¹・n with T = C・A⁻¹・B + D
func (o *InteractionVolume) SolveLocalSystem(tf TensorFunc, sp vars.StateProvider) (err error) {

	// clear matrices
	o.solved = false
	o.C.Zero()
	o.D.Zero()
	if o.nUnknown > 0 {
		o.A.Zero()
		o.B.Zero()
	}
	for r := range o.neumann {
		o.neumann[r] = 0
	}

	// assemble
	ndim := o.G.Msh.Ndim
	kn := make([]float64, ndim)
	for ls, scv := range o.scvs {
		gscv := o.G.Scvs[scv.GlobalScv]
		K := tf(scv.Cell, sp.VolVars(scv.GlobalScv), gscv)
		scv.Nu, err = o.dualBasis(scv, gscv)
		if err != nil {
			return chk.Err("cannot compute dual basis of cell %d at vertex %d:\n%v", scv.Cell, o.Set.VertexId, err)
		}
		for _, r := range scv.Rows {
			s := o.G.Scvfs[o.rows[r].GlobalScvf]
			for j := 0; j < ndim; j++ {
				kn[j] = 0
				for i := 0; i < ndim; i++ {
					kn[j] += s.Normal[i] * K[i][j]
				}
			}
			face := o.faces[o.rows[r].LocalFace]
			w := make([]float64, len(scv.Faces))
			var sum float64
			for j, f := range scv.Faces {
				w[j] = s.Area * gscv.Extrusion * floats.Dot(kn, scv.Nu[j])
				sum += w[j]
				fj := o.faces[f]
				if fj.Dirichlet {
					addTo(o.D, r, fj.Known, -w[j])
					if !face.Dirichlet {
						addTo(o.B, face.Unknown, fj.Known, -w[j])
					}
				} else {
					addTo(o.C, r, fj.Unknown, -w[j])
					if !face.Dirichlet {
						addTo(o.A, face.Unknown, fj.Unknown, w[j])
					}
				}
			}
			addTo(o.D, r, ls, sum)
			if !face.Dirichlet {
				addTo(o.B, face.Unknown, ls, sum)
			}
			o.omega[r] = w
		}
	}

	// eliminate face unknowns
	if o.nUnknown == 0 {
		o.T.Copy(o.D)
	} else {
		var x mat.Dense
		err = x.Solve(o.A, o.B)
		if err != nil {
			return chk.Err("local system at vertex %d is singular:\n%v", o.Set.VertexId, err)
		}
		o.T.Mul(o.C, &x)
		o.T.Add(o.T, o.D)
	}
	o.solved = true
	return
}

// dualBasis computes ν_j such that ∇u = Σ_j (u_j - u_s) ν_j, with e_j = ip_j - x_s.
//  nfaces ≤ gndim: Gram system  ν_j = Σ_k (G⁻¹)_jk e_k   G_jk = e_j・e_k
//  nfaces > gndim: least squares ν_j = M⁻¹ e_j           M = Σ_j e_j⊗e_j
func (o *InteractionVolume) dualBasis(scv *LocalScv, gscv *geo.Scv) (nu [][]float64, err error) {
	ndim := o.G.Msh.Ndim
	n := len(scv.Rows)
	e := make([][]float64, n)
	for j, r := range scv.Rows {
		s := o.G.Scvfs[o.rows[r].GlobalScvf]
		e[j] = make([]float64, ndim)
		floats.SubTo(e[j], s.IpGlobal, gscv.Center)
	}
	nu = make([][]float64, n)
	if n <= scv.Gndim {
		G := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				G.Set(j, k, floats.Dot(e[j], e[k]))
			}
		}
		var Gi mat.Dense
		if err = Gi.Inverse(G); err != nil {
			return nil, chk.Err("vectors to continuity points are linearly dependent:\n%v", err)
		}
		for j := 0; j < n; j++ {
			nu[j] = make([]float64, ndim)
			for k := 0; k < n; k++ {
				floats.AddScaled(nu[j], Gi.At(j, k), e[k])
			}
		}
		return
	}
	if scv.Gndim != ndim {
		return nil, chk.Err("%d faces at one vertex of a cell with gndim=%d embedded in ndim=%d are not supported", n, scv.Gndim, ndim)
	}
	M := mat.NewSymDense(ndim, nil)
	for j := 0; j < n; j++ {
		M.SymRankOne(M, 1, mat.NewVecDense(ndim, e[j]))
	}
	var Mi mat.Dense
	if err = Mi.Inverse(M); err != nil {
		return nil, chk.Err("vectors to continuity points do not span the cell:\n%v", err)
	}
	for j := 0; j < n; j++ {
		v := mat.NewVecDense(ndim, nil)
		v.MulVec(&Mi, mat.NewVecDense(ndim, e[j]))
		nu[j] = v.RawVector().Data
	}
	return
}

// AssembleNeumannFluxes computes the contribution C・A⁻¹・n of the Neumann conditions of
// equation eq. The known faces of eq must be the ones used to solve the local system.
//  scale -- converts prescribed fluxes into fluxes of the tensor law; nil means 1
func (o *InteractionVolume) AssembleNeumannFluxes(eq int, scale ScaleFunc) (err error) {
	if !o.solved {
		return chk.Err("local system at vertex %d must be solved before assembling Neumann fluxes", o.Set.VertexId)
	}
	dir, err := o.dirichletFaces(o.Set, eq)
	if err != nil {
		return
	}
	for f := range dir {
		if dir[f] != o.Dirtypes[f] {
			return chk.Err("Dirichlet faces of equation %d differ from the ones of equation %d at vertex %d", eq, o.Eq, o.Set.VertexId)
		}
	}
	for r := range o.neumann {
		o.neumann[r] = 0
	}
	if o.nUnknown == 0 {
		return
	}
	n := mat.NewVecDense(o.nUnknown, nil)
	found := false
	for _, face := range o.faces {
		if !face.Boundary || face.Dirichlet {
			continue
		}
		s := o.G.Scvfs[o.rows[face.Rows[0]].GlobalScvf]
		N := o.Problem.Neumann(s, eq) * s.Area * o.G.Scvs[s.InsideScv].Extrusion
		if N != 0 && scale != nil {
			f, e := scale(s)
			if e != nil {
				return chk.Err("cannot scale Neumann flux of scvf %d:\n%v", s.Idx, e)
			}
			N *= f
		}
		if N != 0 {
			n.SetVec(face.Unknown, -N)
			found = true
		}
	}
	if !found {
		return
	}
	var y, q mat.VecDense
	err = y.SolveVec(o.A, n)
	if err != nil {
		return chk.Err("local system at vertex %d is singular:\n%v", o.Set.VertexId, err)
	}
	q.MulVec(o.C, &y)
	for r := range o.neumann {
		o.neumann[r] = q.AtVec(r)
	}
	return
}

// Transmissibilities returns the coefficients of row r aligned with the stencil
func (o *InteractionVolume) Transmissibilities(r int) []float64 {
	if !o.solved {
		chk.Panic("local system at vertex %d has not been solved", o.Set.VertexId)
	}
	return mat.Row(nil, r, o.T)
}

// NeumannFlux returns the flux of row r due to Neumann conditions
func (o *InteractionVolume) NeumannFlux(r int) float64 { return o.neumann[r] }

// Omegas returns the coefficients ω_dj of row r aligned with the faces of its scv
func (o *InteractionVolume) Omegas(r int) []float64 { return o.omega[r] }

// Fluxes computes the flux of all rows given the known values aligned with the stencil
func (o *InteractionVolume) Fluxes(known []float64) (q []float64) {
	q = make([]float64, len(o.rows))
	for r := range o.rows {
		q[r] = floats.Dot(mat.Row(nil, r, o.T), known) + o.neumann[r]
	}
	return
}

// CellVelocity reconstructs the velocity of local scv ls from the fluxes of all rows
//  The velocity v satisfies q_d = a_d・e_s・v・n_d in the least squares sense
func (o *InteractionVolume) CellVelocity(ls int, fluxes []float64) (v []float64, err error) {
	scv := o.scvs[ls]
	err = adapt.CheckElementNumber(scv.Gndim, o.Topo, len(o.scvs))
	if err != nil {
		return
	}
	ndim := o.G.Msh.Ndim
	M := mat.NewSymDense(ndim, nil)
	b := mat.NewVecDense(ndim, nil)
	ext := o.G.Scvs[scv.GlobalScv].Extrusion
	for _, r := range scv.Rows {
		s := o.G.Scvfs[o.rows[r].GlobalScvf]
		a := s.Area * ext
		n := mat.NewVecDense(ndim, append([]float64{}, s.Normal...))
		M.SymRankOne(M, a*a, n)
		b.AddScaledVec(b, a*fluxes[r], n)
	}
	var x mat.VecDense
	err = x.SolveVec(M, b)
	if err != nil {
		return nil, chk.Err("cannot reconstruct velocity of cell %d at vertex %d:\n%v", scv.Cell, o.Set.VertexId, err)
	}
	return x.RawVector().Data, nil
}

func addTo(m *mat.Dense, i, j int, v float64) {
	m.Set(i, j, m.At(i, j)+v)
}
