// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the finite volume geometry of cell-centred schemes:
// sub-control-volumes, sub-control-volume faces and intersections between cells
package geo

import "github.com/cpmech/gosl/io"

// Scv holds a sub-control-volume; cell-centred schemes have one per cell and Idx == CellId
type Scv struct {
	Idx       int       // global index
	CellId    int       // owning cell
	Volume    float64   // volume (length in 1D and area in 2D)
	Center    []float64 // centroid
	Extrusion float64   // extrusion factor; e.g. aperture of fractures
	Level     int       // refinement level of cell
}

// Scvf holds a sub-control-volume face: the portion of an intersection attached to one of its vertices
type Scvf struct {
	Idx          int       // global index
	InsideScv    int       // index of scv on the inside
	OutsideScvs  []int     // indices of scvs on the outside; boundary faces hold one ghost dof
	CellId       int       // cell owning this face
	OutsideCells []int     // cells on the outside; empty on boundaries
	Flips        []int     // scvfs of the outside cells at the same intersection and vertex
	Isect        int       // intersection index
	LocalFacet   int       // local facet of cell containing the intersection
	VertexId     int       // mesh vertex this face is attached to
	Normal       []float64 // unit normal pointing outwards
	Area         float64   // area of sub-face
	IpGlobal     []float64 // integration (continuity) point
	FacetCenter  []float64 // center of intersection
	Boundary     bool      // on domain boundary
	Branching    bool      // intersection is shared by more than two cells
	Tag          int       // face tag (boundary faces)
	GhostDof     int       // ghost dof of boundary face; -1 if interior
}

// Intersection holds the common part of the facets of neighbouring cells
type Intersection struct {
	Idx         int       // index
	Verts       []int     // vertices in cyclic order
	Cells       []int     // cells sharing this intersection
	LocalFacets []int     // local facet of each cell
	Center      []float64 // centroid
	Area        float64   // area (length in 2D; 1 for points)
	Boundary    bool      // on domain boundary
	Conforming  bool      // all cells share the whole facet
	Tag         int       // face tag of boundary intersection
}

// Branching tells whether more than two cells share this intersection
func (o *Intersection) Branching() bool { return len(o.Cells) > 2 }

// String returns a short representation of a scvf
func (o *Scvf) String() string {
	return io.Sf("scvf %d: cell=%d isect=%d vert=%d out=%v area=%g n=%v bry=%v", o.Idx, o.CellId, o.Isect, o.VertexId, o.OutsideScvs, o.Area, o.Normal, o.Boundary)
}
