// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// BcType classifies a boundary condition of one equation
type BcType int

// boundary condition types
const (
	BcNone      BcType = iota // not classified
	BcDirichlet               // prescribed value
	BcNeumann                 // prescribed flux (outward, per unit area)
)

// String returns the name of the boundary condition type
func (o BcType) String() string {
	switch o {
	case BcDirichlet:
		return "dirichlet"
	case BcNeumann:
		return "neumann"
	}
	return "none"
}

// BcTypes holds the boundary condition type of each equation on one face
type BcTypes []BcType

// IsDirichlet tells whether equation eq has a Dirichlet condition
func (o BcTypes) IsDirichlet(eq int) bool {
	return eq >= 0 && eq < len(o) && o[eq] == BcDirichlet
}

// IsNeumann tells whether equation eq has a Neumann condition
func (o BcTypes) IsNeumann(eq int) bool {
	return eq >= 0 && eq < len(o) && o[eq] == BcNeumann
}

// HasDirichlet tells whether any equation has a Dirichlet condition
func (o BcTypes) HasDirichlet() bool {
	for _, t := range o {
		if t == BcDirichlet {
			return true
		}
	}
	return false
}

// HasNeumann tells whether any equation has a Neumann condition
func (o BcTypes) HasNeumann() bool {
	for _, t := range o {
		if t == BcNeumann {
			return true
		}
	}
	return false
}

// EqLayout defines the numbering of the balance equations
//  advection of phase α                  => α
//  diffusion of component κ in phase α   => nphases + α・ncomps + κ
//  heat conduction                       => nphases + nphases・ncomps
//  keys (Dirichlet / Neumann):
//    p<α>  / q<α>      phase pressure / phase flux
//    x<ακ> / j<ακ>     mole fraction / diffusive flux
//    T     / qT        temperature / heat flux
type EqLayout struct {
	Nphases int  // number of fluid phases
	Ncomps  int  // number of components (0 => no diffusion)
	Heat    bool // with heat conduction
}

// Neq returns the number of equations
func (o EqLayout) Neq() int {
	n := o.Nphases + o.Nphases*o.Ncomps
	if o.Heat {
		n++
	}
	return n
}

// Advection returns the equation index of the advective transport of phase α
func (o EqLayout) Advection(α int) int { return α }

// Diffusion returns the equation index of the diffusion of component κ in phase α
func (o EqLayout) Diffusion(α, κ int) int { return o.Nphases + α*o.Ncomps + κ }

// HeatEq returns the equation index of heat conduction; -1 if there is no heat equation
func (o EqLayout) HeatEq() int {
	if !o.Heat {
		return -1
	}
	return o.Nphases + o.Nphases*o.Ncomps
}

// Parse returns the equation index and condition type corresponding to a key
func (o EqLayout) Parse(key string) (eq int, typ BcType, err error) {
	switch {
	case key == "T":
		eq, typ = o.HeatEq(), BcDirichlet
	case key == "qT":
		eq, typ = o.HeatEq(), BcNeumann
	case strings.HasPrefix(key, "p"), strings.HasPrefix(key, "q"):
		typ = BcDirichlet
		if key[0] == 'q' {
			typ = BcNeumann
		}
		α, e := strconv.Atoi(key[1:])
		if e != nil || α < 0 || α >= o.Nphases {
			return -1, BcNone, chk.Err("key %q does not correspond to any phase. nphases=%d", key, o.Nphases)
		}
		eq = o.Advection(α)
	case strings.HasPrefix(key, "x"), strings.HasPrefix(key, "j"):
		typ = BcDirichlet
		if key[0] == 'j' {
			typ = BcNeumann
		}
		if len(key) != 3 {
			return -1, BcNone, chk.Err("key %q must have the form x<phase><comp> or j<phase><comp>", key)
		}
		α, e1 := strconv.Atoi(key[1:2])
		κ, e2 := strconv.Atoi(key[2:3])
		if e1 != nil || e2 != nil || α >= o.Nphases || κ >= o.Ncomps {
			return -1, BcNone, chk.Err("key %q does not correspond to any phase/component pair. nphases=%d ncomps=%d", key, o.Nphases, o.Ncomps)
		}
		eq = o.Diffusion(α, κ)
	default:
		return -1, BcNone, chk.Err("boundary condition key %q is invalid", key)
	}
	if eq < 0 {
		return -1, BcNone, chk.Err("key %q requires the heat equation to be active", key)
	}
	return
}

// Key returns the Dirichlet key of equation eq
func (o EqLayout) Key(eq int) string {
	switch {
	case eq < o.Nphases:
		return io.Sf("p%d", eq)
	case eq == o.HeatEq():
		return "T"
	}
	k := eq - o.Nphases
	return io.Sf("x%d%d", k/o.Ncomps, k%o.Ncomps)
}

// FaceCond holds one boundary condition of a tagged face
type FaceCond struct {
	Eq    int    // equation index
	Type  BcType // type of condition
	Key   string // condition key; e.g. "p0" or "q0"
	Func  dbf.T  // function to compute boundary values
	Extra string // extra information
}

// FaceConds holds the conditions of one face tag; one per equation
type FaceConds []*FaceCond

// Types returns the condition types of all equations; each one must have a condition
func (o FaceConds) Types(neq int) (types BcTypes, err error) {
	types = make(BcTypes, neq)
	for _, fc := range o {
		types[fc.Eq] = fc.Type
	}
	for eq, t := range types {
		if t == BcNone {
			return nil, chk.Err("equation %d has neither Dirichlet nor Neumann condition", eq)
		}
	}
	return
}

// Get returns the condition of equation eq; nil if there is none
func (o FaceConds) Get(eq int) *FaceCond {
	for _, fc := range o {
		if fc.Eq == eq {
			return fc
		}
	}
	return nil
}

// setFaceConds converts face boundary conditions input data into FaceConds
func setFaceConds(facebcs []*FaceBc, eqs EqLayout, functions FuncsData) (res map[int]FaceConds, err error) {
	res = make(map[int]FaceConds)
	for _, fbc := range facebcs {
		if fbc.Tag >= 0 {
			return nil, chk.Err("face boundary condition tags must be negative. %d is invalid", fbc.Tag)
		}
		if len(fbc.Keys) != len(fbc.Funcs) {
			return nil, chk.Err("number of keys (%d) and functions (%d) must be equal (@ face tag %d)", len(fbc.Keys), len(fbc.Funcs), fbc.Tag)
		}
		conds := res[fbc.Tag]
		for j, key := range fbc.Keys {
			eq, typ, e := eqs.Parse(key)
			if e != nil {
				return nil, chk.Err("face tag %d:\n%v", fbc.Tag, e)
			}
			if conds.Get(eq) != nil {
				return nil, chk.Err("equation %d has more than one condition (@ face tag %d)", eq, fbc.Tag)
			}
			fcn, e := functions.Get(fbc.Funcs[j])
			if e != nil {
				return nil, chk.Err("cannot find function corresponding to face tag %d:\n%v", fbc.Tag, e)
			}
			conds = append(conds, &FaceCond{eq, typ, key, fcn, fbc.Extra})
		}
		res[fbc.Tag] = conds
	}
	for tag, conds := range res {
		if _, e := conds.Types(eqs.Neq()); e != nil {
			return nil, chk.Err("face tag %d:\n%v", tag, e)
		}
	}
	return
}
