// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/inp"
)

// SimProblem implements the boundary conditions given in the facebcs section of a simulation
type SimProblem struct {
	Sim  *inp.Simulation // simulation data
	Time float64         // time used to evaluate boundary functions
}

// BcTypes returns the types of all equations on the boundary face of s
func (o *SimProblem) BcTypes(s *geo.Scvf) (inp.BcTypes, error) {
	return o.Sim.BcTypes(s.Tag)
}

// Dirichlet returns the prescribed value at the integration point of s
func (o *SimProblem) Dirichlet(s *geo.Scvf, eq int) float64 {
	return o.Sim.BcValue(s.Tag, eq, o.Time, s.IpGlobal)
}

// Neumann returns the prescribed outward flux per unit area at the integration point of s
func (o *SimProblem) Neumann(s *geo.Scvf, eq int) float64 {
	return o.Sim.BcValue(s.Tag, eq, o.Time, s.IpGlobal)
}
