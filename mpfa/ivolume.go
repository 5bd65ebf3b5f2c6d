// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpfa implements interaction volumes of the multi-point flux approximation:
// small local systems around each vertex whose solution gives the transmissibilities
// of all scvfs attached to the vertex
package mpfa

import (
	"github.com/m-giraud/dumux3.0-sub000/adapt"
	"github.com/m-giraud/dumux3.0-sub000/dualgrid"
	"github.com/m-giraud/dumux3.0-sub000/geo"
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/vars"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Problem gives the boundary conditions on scvfs
type Problem interface {
	BcTypes(s *geo.Scvf) (inp.BcTypes, error) // condition type of each equation
	Dirichlet(s *geo.Scvf, eq int) float64    // prescribed value
	Neumann(s *geo.Scvf, eq int) float64      // prescribed outward flux per unit area
}

// TensorFunc returns the tensor coefficient of a cell
type TensorFunc func(cell int, vv *vars.VolVars, scv *geo.Scv) [][]float64

// ScaleFunc returns the factor converting the prescribed Neumann flux of a boundary scvf
// into a flux of the tensor law; e.g. 1/(ρ・λ) for mass fluxes of the Darcy law
type ScaleFunc func(s *geo.Scvf) (float64, error)

// LocalScv holds the data of one scv inside an interaction volume
type LocalScv struct {
	GlobalScv int         // global scv
	Cell      int         // owning cell
	Gndim     int         // geometric dimension of cell
	Faces     []int       // local faces touching this scv
	Rows      []int       // rows (local scvfs) aligned with Faces
	Nu        [][]float64 // dual basis aligned with Faces
}

// LocalScvf holds the data of one scvf (a row of the flux expressions)
type LocalScvf struct {
	GlobalScvf int   // global scvf
	LocalScv   int   // scv on the inside
	LocalFace  int   // local face
	Flips      []int // rows of the same face on the outside scvs
}

// LocalFace holds one face of the interaction volume; its rows share a common face unknown
type LocalFace struct {
	Isect     int   // intersection
	Rows      []int // rows of this face
	Boundary  bool  // on domain boundary
	Dirichlet bool  // face value is known
	Unknown   int   // index among unknowns; -1 if Dirichlet
	Known     int   // index among knowns; -1 if not Dirichlet
	GhostDof  int   // ghost dof of boundary face; -1 if interior
}

// InteractionVolume holds the local system of one vertex
type InteractionVolume struct {

	// input
	G       *geo.FvGeometry // geometry
	Problem Problem         // boundary conditions

	// local scope
	Set      *dualgrid.NodalIndexSet // index set bound to this volume
	Eq       int                     // equation whose boundary types define the known faces
	Topo     adapt.Topology          // topology
	Dirtypes []bool                  // Dirichlet flag of each face for Eq
	scvs     []*LocalScv             // local scvs
	rows     []*LocalScvf            // local scvfs
	faces    []*LocalFace            // local faces
	nUnknown int                     // number of face unknowns
	nDir     int                     // number of Dirichlet faces
	stencil  []int                   // known dofs: cells then ghosts of Dirichlet faces

	// local system
	omega   [][]float64 // row => coefficient of each face of its scv
	A       *mat.Dense  // [nUnknown][nUnknown]
	B       *mat.Dense  // [nUnknown][nKnown]
	C       *mat.Dense  // [nRows][nUnknown]
	D       *mat.Dense  // [nRows][nKnown]
	T       *mat.Dense  // [nRows][nKnown] transmissibilities
	neumann []float64   // row => flux due to Neumann conditions
	solved  bool        // local system has been solved
}

// New returns a new interaction volume
func New(g *geo.FvGeometry, problem Problem) *InteractionVolume {
	return &InteractionVolume{G: g, Problem: problem}
}

// SetUpLocalScope binds this volume to an index set; boundary faces are classified
// with the condition types of equation eq
func (o *InteractionVolume) SetUpLocalScope(set *dualgrid.NodalIndexSet, eq int) (err error) {

	// reset
	o.Set, o.Eq, o.solved = set, eq, false
	o.Topo, err = adapt.Classify(set.Levels, set.HangingType)
	if err != nil {
		return chk.Err("cannot set up interaction volume at vertex %d:\n%v", set.VertexId, err)
	}

	// scvs
	o.scvs = make([]*LocalScv, len(set.Scvs))
	for i, scv := range set.Scvs {
		c := o.G.Scvs[scv].CellId
		o.scvs[i] = &LocalScv{GlobalScv: scv, Cell: c, Gndim: o.G.Msh.Cells[c].Shp.Gndim}
	}

	// faces
	o.faces = make([]*LocalFace, len(set.LocalFaces))
	o.Dirtypes, err = o.dirichletFaces(set, eq)
	if err != nil {
		return
	}
	o.nUnknown, o.nDir = 0, 0
	o.rows = o.rows[:0]
	for f, lf := range set.LocalFaces {
		face := &LocalFace{Isect: lf.Isect, Boundary: lf.Boundary, Unknown: -1, Known: -1, GhostDof: -1}
		if lf.Boundary {
			face.GhostDof = o.G.Scvfs[lf.Scvfs[0]].GhostDof
		}
		if o.Dirtypes[f] {
			face.Dirichlet = true
			face.Known = len(o.scvs) + o.nDir
			o.nDir++
		} else {
			face.Unknown = o.nUnknown
			o.nUnknown++
		}
		for k, idx := range lf.Scvfs {
			ls := lf.LocalScvs[k]
			face.Rows = append(face.Rows, len(o.rows))
			o.scvs[ls].Faces = append(o.scvs[ls].Faces, f)
			o.scvs[ls].Rows = append(o.scvs[ls].Rows, len(o.rows))
			o.rows = append(o.rows, &LocalScvf{GlobalScvf: idx, LocalScv: ls, LocalFace: f})
		}
		o.faces[f] = face
	}

	// flipped scvfs: scan the rows of the outside scvs
	for r, row := range o.rows {
		s := o.G.Scvfs[row.GlobalScvf]
		if s.Boundary {
			continue
		}
		for _, oscv := range s.OutsideScvs {
			flip := o.findFlip(s, oscv)
			if flip < 0 {
				return chk.Err("cannot find scvf of scv %d matching scvf %d at vertex %d", oscv, s.Idx, set.VertexId)
			}
			o.rows[r].Flips = append(o.rows[r].Flips, flip)
		}
	}

	// stencil
	o.stencil = make([]int, 0, len(o.scvs)+o.nDir)
	for _, scv := range o.scvs {
		o.stencil = append(o.stencil, scv.GlobalScv)
	}
	for _, face := range o.faces {
		if face.Dirichlet {
			o.stencil = append(o.stencil, face.GhostDof)
		}
	}

	// matrices
	nk, nr := o.NumKnowns(), len(o.rows)
	o.C = mat.NewDense(nr, imax(o.nUnknown, 1), nil)
	o.D = mat.NewDense(nr, nk, nil)
	o.T = mat.NewDense(nr, nk, nil)
	o.A, o.B = nil, nil
	if o.nUnknown > 0 {
		o.A = mat.NewDense(o.nUnknown, o.nUnknown, nil)
		o.B = mat.NewDense(o.nUnknown, nk, nil)
	}
	o.omega = make([][]float64, nr)
	o.neumann = make([]float64, nr)
	return
}

// dirichletFaces classifies the faces of an index set
func (o *InteractionVolume) dirichletFaces(set *dualgrid.NodalIndexSet, eq int) (dir []bool, err error) {
	dir = make([]bool, len(set.LocalFaces))
	for f, lf := range set.LocalFaces {
		if !lf.Boundary {
			continue
		}
		s := o.G.Scvfs[lf.Scvfs[0]]
		types, e := o.Problem.BcTypes(s)
		if e != nil {
			return nil, chk.Err("cannot get boundary types of scvf %d:\n%v", s.Idx, e)
		}
		switch {
		case types.IsDirichlet(eq):
			dir[f] = true
		case types.IsNeumann(eq):
		default:
			return nil, chk.Err("boundary scvf %d has neither Dirichlet nor Neumann condition for equation %d", s.Idx, eq)
		}
	}
	return
}

// findFlip returns the row of scv oscv attached to the same intersection and vertex as s
func (o *InteractionVolume) findFlip(s *geo.Scvf, oscv int) int {
	ls := o.Set.LocalScv(oscv)
	if ls < 0 {
		return -1
	}
	for _, r := range o.scvs[ls].Rows {
		t := o.G.Scvfs[o.rows[r].GlobalScvf]
		if t.VertexId != s.VertexId || t.Isect != s.Isect {
			continue
		}
		for _, out := range t.OutsideScvs {
			if out == s.InsideScv {
				return r
			}
		}
	}
	return -1
}

// accessors /////////////////////////////////////////////////////////////////////////////////////

// NumFaces returns the number of rows (scvfs) of the flux expressions
func (o *InteractionVolume) NumFaces() int { return len(o.rows) }

// NumLocalFaces returns the number of faces (groups of scvfs sharing a face unknown)
func (o *InteractionVolume) NumLocalFaces() int { return len(o.faces) }

// NumUnknowns returns the number of face unknowns
func (o *InteractionVolume) NumUnknowns() int { return o.nUnknown }

// NumKnowns returns the number of known values: cell values plus Dirichlet values
func (o *InteractionVolume) NumKnowns() int { return len(o.scvs) + o.nDir }

// NumScvs returns the number of scvs
func (o *InteractionVolume) NumScvs() int { return len(o.scvs) }

// Stencil returns the dofs of the known values
func (o *InteractionVolume) Stencil() []int { return o.stencil }

// LocalScv returns local scv i
func (o *InteractionVolume) LocalScv(i int) *LocalScv { return o.scvs[i] }

// LocalScvf returns row i
func (o *InteractionVolume) LocalScvf(i int) *LocalScvf { return o.rows[i] }

// LocalFace returns local face f
func (o *InteractionVolume) LocalFace(f int) *LocalFace { return o.faces[f] }

// GlobalScvfs returns the global scvfs of all rows
func (o *InteractionVolume) GlobalScvfs() (scvfs []int) {
	scvfs = make([]int, len(o.rows))
	for i, row := range o.rows {
		scvfs[i] = row.GlobalScvf
	}
	return
}

// Row returns the row of global scvf; -1 if not found
func (o *InteractionVolume) Row(scvf int) int {
	for i, row := range o.rows {
		if row.GlobalScvf == scvf {
			return i
		}
	}
	return -1
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// indexOf returns the position of local face f among the faces of this scv; -1 if not found
func (o *LocalScv) indexOf(f int) int {
	for j, g := range o.Faces {
		if g == f {
			return j
		}
	}
	return -1
}
