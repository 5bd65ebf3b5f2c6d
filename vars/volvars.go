// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vars implements volume variables: the state of a control volume computed from the
// primary variables by the material models
package vars

import (
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/mdl/diffu"
	"github.com/m-giraud/dumux3.0-sub000/mdl/fluid"
	"github.com/m-giraud/dumux3.0-sub000/mdl/perm"
	"github.com/m-giraud/dumux3.0-sub000/mdl/relperm"
	"github.com/m-giraud/dumux3.0-sub000/mdl/thermal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// VolVars holds the state at a control volume (cell or boundary ghost)
type VolVars struct {
	P         []float64     // pressure of each phase
	S         []float64     // saturation of each phase
	Rho       []float64     // mass density of each phase
	MolarRho  []float64     // molar density of each phase
	Mu        []float64     // dynamic viscosity of each phase
	Kr        []float64     // relative permeability of each phase
	X         [][]float64   // mole fractions [nphases][ncomps]
	T         float64       // temperature
	Phi       float64       // porosity
	Extrusion float64       // extrusion factor
	K         [][]float64   // intrinsic permeability tensor
	D         [][][]float64 // effective diffusion tensor of each phase
	Lambda    [][]float64   // effective thermal conductivity tensor
}

// StateProvider gives access to the volume variables of cells and ghost dofs
type StateProvider interface {
	VolVars(dof int) *VolVars
}

// States implements StateProvider with a slice indexed by dof
type States []*VolVars

// VolVars returns the volume variables of dof
func (o States) VolVars(dof int) *VolVars { return o[dof] }

// Mobility returns the mobility kr/μ of phase α
func (o *VolVars) Mobility(α int) float64 {
	return o.Kr[α] / o.Mu[α]
}

// GetCopy returns a copy of VolVars
func (o VolVars) GetCopy() *VolVars {
	p := new(VolVars)
	p.Set(&o)
	return p
}

// Set sets this VolVars with another VolVars
func (o *VolVars) Set(s *VolVars) {
	o.P = append(o.P[:0], s.P...)
	o.S = append(o.S[:0], s.S...)
	o.Rho = append(o.Rho[:0], s.Rho...)
	o.MolarRho = append(o.MolarRho[:0], s.MolarRho...)
	o.Mu = append(o.Mu[:0], s.Mu...)
	o.Kr = append(o.Kr[:0], s.Kr...)
	o.X = copy2(s.X)
	o.T = s.T
	o.Phi = s.Phi
	o.Extrusion = s.Extrusion
	o.K = copy2(s.K)
	o.D = make([][][]float64, len(s.D))
	for α, d := range s.D {
		o.D[α] = copy2(d)
	}
	o.Lambda = copy2(s.Lambda)
}

func copy2(a [][]float64) (b [][]float64) {
	if a == nil {
		return nil
	}
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = append([]float64{}, a[i]...)
	}
	return
}

// Models holds the material models of a group of cells
type Models struct {
	Ndim      int           // space dimension
	Eqs       inp.EqLayout  // numbering of equations
	Perm      perm.Model    // permeability
	Diffu     diffu.Model   // diffusion; may be nil without diffusion
	Thermal   thermal.Model // thermal conductivity; may be nil without heat
	Fluids    []fluid.Model // fluid of each phase
	Relperm   relperm.Model // relative permeability; may be nil (=> kr = 1)
	Porosity  float64       // porosity
	Sats      []float64     // saturation of each phase
	Temp      float64       // temperature without heat equation
	Extrusion float64       // extrusion factor
}

// NewModels collects the models of cells with the given data
func NewModels(sim *inp.Simulation, cd *inp.CellData) (o *Models, err error) {
	o = &Models{Ndim: sim.Ndim, Eqs: sim.Eqs, Porosity: cd.Porosity, Sats: cd.Sats, Temp: cd.Temp, Extrusion: cd.Extrusion}
	mat, err := sim.Materials.GetOfType(cd.Perm, "perm")
	if err != nil {
		return nil, chk.Err("cells with tag %d:\n%v", cd.Tag, err)
	}
	o.Perm = mat.Perm
	if sim.Eqs.Ncomps > 0 {
		if mat, err = sim.Materials.GetOfType(cd.Diffu, "diffu"); err != nil {
			return nil, chk.Err("cells with tag %d:\n%v", cd.Tag, err)
		}
		o.Diffu = mat.Diffu
	}
	if sim.Eqs.Heat {
		if mat, err = sim.Materials.GetOfType(cd.Thermal, "thermal"); err != nil {
			return nil, chk.Err("cells with tag %d:\n%v", cd.Tag, err)
		}
		o.Thermal = mat.Thermal
	}
	for _, name := range cd.Fluids {
		if mat, err = sim.Materials.GetOfType(name, "fluid"); err != nil {
			return nil, chk.Err("cells with tag %d:\n%v", cd.Tag, err)
		}
		o.Fluids = append(o.Fluids, mat.Fluid)
	}
	if cd.Relperm != "" {
		if mat, err = sim.Materials.GetOfType(cd.Relperm, "relperm"); err != nil {
			return nil, chk.Err("cells with tag %d:\n%v", cd.Tag, err)
		}
		o.Relperm = mat.Relperm
	}
	return
}

// Calc computes the volume variables given the primary variables u (one per equation)
func (o *Models) Calc(vv *VolVars, u []float64) {
	np, nc := o.Eqs.Nphases, o.Eqs.Ncomps
	if len(vv.P) != np {
		vv.P = make([]float64, np)
		vv.S = make([]float64, np)
		vv.Rho = make([]float64, np)
		vv.MolarRho = make([]float64, np)
		vv.Mu = make([]float64, np)
		vv.Kr = make([]float64, np)
		vv.X = utl.Alloc(np, nc)
		vv.K = utl.Alloc(o.Ndim, o.Ndim)
		vv.D = make([][][]float64, np)
		for α := 0; α < np; α++ {
			vv.D[α] = utl.Alloc(o.Ndim, o.Ndim)
		}
		vv.Lambda = utl.Alloc(o.Ndim, o.Ndim)
	}
	vv.Phi = o.Porosity
	vv.Extrusion = o.Extrusion
	vv.T = o.Temp
	if o.Eqs.Heat {
		vv.T = u[o.Eqs.HeatEq()]
	}
	for α := 0; α < np; α++ {
		vv.P[α] = u[o.Eqs.Advection(α)]
		vv.S[α] = o.Sats[α]
		vv.Rho[α] = o.Fluids[α].Rho(vv.P[α], vv.T)
		vv.MolarRho[α] = o.Fluids[α].MolarRho(vv.P[α], vv.T)
		vv.Mu[α] = o.Fluids[α].Mu(vv.P[α], vv.T)
		vv.Kr[α] = 1
		if o.Relperm != nil {
			vv.Kr[α] = o.Relperm.Kr(vv.S[α])
		}
		for κ := 0; κ < nc; κ++ {
			vv.X[α][κ] = u[o.Eqs.Diffusion(α, κ)]
		}
		if o.Diffu != nil {
			o.Diffu.Dten(vv.D[α], vv.Phi, vv.S[α])
		}
	}
	o.Perm.Kten(vv.K, vv.Phi)
	if o.Thermal != nil {
		o.Thermal.Lten(vv.Lambda, vv.Phi, vv.S)
	}
}
