// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dualgrid implements the nodal index sets of the dual grid: for each vertex,
// the scvs and scvfs of all cells sharing that vertex with a local numbering
package dualgrid

import (
	"github.com/m-giraud/dumux3.0-sub000/adapt"

	"github.com/cpmech/gosl/io"
)

// LocalFace holds the scvfs of all cells sharing one intersection at the vertex of a nodal index set
type LocalFace struct {
	Isect     int   // intersection
	Scvfs     []int // global scvfs; one per cell
	LocalScvs []int // local scv of each scvf
	Boundary  bool  // on domain boundary
}

// NodalIndexSet holds the topology around one vertex
type NodalIndexSet struct {
	VertexId      int                   // vertex
	Scvs          []int                 // global scvs
	Scvfs         []int                 // global scvfs attached to vertex
	LocalFaces    []*LocalFace          // faces made of scvfs sharing an intersection
	ScvfLocalFace []int                 // local face of each scvf (aligned with Scvfs)
	ScvfLocalScv  []int                 // local scv of each scvf (aligned with Scvfs)
	ScvLocalFaces [][]int               // local scv => local faces
	Boundary      bool                  // any face is on the domain boundary
	Branching     bool                  // more than two cells share one face
	Levels        adapt.Levels          // refinement levels of cells
	HangingType   adapt.HangingNodeType // hanging node type at vertex
	Canonical     bool                  // numbering follows the canonical 3D ordering
	CanonicalRef  int                   // octant of the first cell; local octants are relative to it
}

// NumScvs returns the number of scvs
func (o *NodalIndexSet) NumScvs() int { return len(o.Scvs) }

// NumScvfs returns the number of scvfs
func (o *NodalIndexSet) NumScvfs() int { return len(o.Scvfs) }

// NumFaces returns the number of local faces
func (o *NodalIndexSet) NumFaces() int { return len(o.LocalFaces) }

// LocalScv returns the local index of global scv; -1 if not found
func (o *NodalIndexSet) LocalScv(scv int) int {
	for i, s := range o.Scvs {
		if s == scv {
			return i
		}
	}
	return -1
}

// LocalScvf returns the local index of global scvf; -1 if not found
func (o *NodalIndexSet) LocalScvf(scvf int) int {
	for i, s := range o.Scvfs {
		if s == scvf {
			return i
		}
	}
	return -1
}

// NeighborScvs returns the local scvs on either side of local face f
func (o *NodalIndexSet) NeighborScvs(f int) []int { return o.LocalFaces[f].LocalScvs }

// String returns a summary of the index set
func (o *NodalIndexSet) String() string {
	l := io.Sf("vertex %d: scvs=%v nfaces=%d bry=%v branching=%v levels=%v hanging=%v\n", o.VertexId, o.Scvs, len(o.LocalFaces), o.Boundary, o.Branching, o.Levels, o.HangingType)
	for i, f := range o.LocalFaces {
		l += io.Sf("  face %d: isect=%d scvfs=%v localscvs=%v bry=%v\n", i, f.Isect, f.Scvfs, f.LocalScvs, f.Boundary)
	}
	return l
}
