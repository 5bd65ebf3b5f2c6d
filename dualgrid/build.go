// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgrid

import (
	"sort"

	"github.com/m-giraud/dumux3.0-sub000/adapt"
	"github.com/m-giraud/dumux3.0-sub000/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// DualGrid holds the nodal index sets of all vertices
type DualGrid struct {
	Sets           []*NodalIndexSet // vertex => set; nil if vertex is omitted
	BoundaryVerts  []bool           // vertex touches the domain boundary
	BranchingVerts []bool           // vertex is a branching point of a network
}

// Set returns the nodal index set of vertex v; nil if omitted
func (o *DualGrid) Set(v int) *NodalIndexSet { return o.Sets[v] }

// Build builds the nodal index sets of all vertices with at least one non-ghost cell
//  Input:
//   g          -- geometry
//   ghostVerts -- vertices owned by other processes; may be nil
//   ghostCells -- cells owned by other processes; may be nil
//   verbose    -- show statistics
func Build(g *geo.FvGeometry, ghostVerts, ghostCells []bool, verbose bool) (o *DualGrid, err error) {
	nverts := len(g.Msh.Verts)
	o = &DualGrid{
		Sets:           make([]*NodalIndexSet, nverts),
		BoundaryVerts:  make([]bool, nverts),
		BranchingVerts: make([]bool, nverts),
	}
	var nsets, nbry, nbranch, nhanging int
	for v := 0; v < nverts; v++ {
		if ghostVerts != nil && ghostVerts[v] {
			continue
		}
		if !hasOwnedCell(g.VertCells[v], ghostCells) {
			continue
		}
		set, e := buildSet(g, v)
		if e != nil {
			return nil, chk.Err("cannot build index set of vertex %d:\n%v", v, e)
		}
		o.Sets[v] = set
		o.BoundaryVerts[v] = set.Boundary
		o.BranchingVerts[v] = set.Branching
		nsets++
		if set.Boundary {
			nbry++
		}
		if set.Branching {
			nbranch++
		}
		if set.HangingType != adapt.NoHangingNode {
			nhanging++
		}
	}
	if verbose {
		io.Pfcyan("dual grid: %d sets, %d on boundary, %d branching, %d hanging (%d vertices)\n", nsets, nbry, nbranch, nhanging, nverts)
	}
	return
}

func hasOwnedCell(cells []int, ghostCells []bool) bool {
	for _, c := range cells {
		if ghostCells == nil || !ghostCells[c] {
			return true
		}
	}
	return false
}

// buildSet builds the index set of vertex v
func buildSet(g *geo.FvGeometry, v int) (o *NodalIndexSet, err error) {

	// cells
	o = &NodalIndexSet{VertexId: v}
	cells := g.VertCells[v]
	levels := make([]int, len(cells))
	gndim := 0
	var coarse, small [][]float64
	for i, c := range cells {
		cell := g.Msh.Cells[c]
		levels[i] = cell.Level
		if cell.Shp.Gndim > gndim {
			gndim = cell.Shp.Gndim
		}
		if utl.IntIndexSmall(cell.Verts, v) < 0 {
			coarse = append(coarse, g.Scvs[c].Center)
		} else {
			small = append(small, g.Scvs[c].Center)
		}
	}
	o.Levels = adapt.NewLevels(levels...)
	o.HangingType, err = adapt.DetectHangingNodeType(gndim, g.VertCoords(v), coarse, small)
	if err != nil {
		return
	}

	// scvs: canonical octant ordering of regular 3D sets; cell ids otherwise
	o.Scvs = make([]int, len(cells))
	for i, c := range cells {
		o.Scvs[i] = g.Scvs[c].Idx
	}
	var local []int
	if gndim == 3 && len(cells) == 8 && o.HangingType == adapt.NoHangingNode {
		local, o.CanonicalRef, err = canonicalOrder(g, v, o.Scvs)
		if err != nil {
			return
		}
		o.Canonical = true
	}

	// scvfs and local faces
	isect2face := make(map[int]int)
	for ls, scv := range o.Scvs {
		for _, idx := range g.CellScvfs[g.Scvs[scv].CellId] {
			s := g.Scvfs[idx]
			if s.VertexId != v {
				continue
			}
			f, ok := isect2face[s.Isect]
			if !ok {
				f = len(o.LocalFaces)
				isect2face[s.Isect] = f
				o.LocalFaces = append(o.LocalFaces, &LocalFace{Isect: s.Isect, Boundary: s.Boundary})
			}
			lf := o.LocalFaces[f]
			lf.Scvfs = append(lf.Scvfs, idx)
			lf.LocalScvs = append(lf.LocalScvs, ls)
			o.Boundary = o.Boundary || s.Boundary
			o.Branching = o.Branching || s.Branching
		}
	}
	if len(o.LocalFaces) == 0 {
		return nil, chk.Err("vertex has no scvfs")
	}
	if o.Canonical {
		canonicalFaces(o, local)
	}

	// complete faces: every scvf attached to the vertex appears exactly once
	for f, lf := range o.LocalFaces {
		if !lf.Boundary && len(lf.Scvfs) < 2 {
			return nil, chk.Err("interior face at intersection %d has scvfs of one cell only", lf.Isect)
		}
		for k, idx := range lf.Scvfs {
			o.Scvfs = append(o.Scvfs, idx)
			o.ScvfLocalFace = append(o.ScvfLocalFace, f)
			o.ScvfLocalScv = append(o.ScvfLocalScv, lf.LocalScvs[k])
		}
	}
	if len(o.Scvfs) != len(g.VertScvfs[v]) {
		return nil, chk.Err("index set has %d scvfs but %d are attached to vertex", len(o.Scvfs), len(g.VertScvfs[v]))
	}
	o.ScvLocalFaces = make([][]int, len(o.Scvs))
	for f, lf := range o.LocalFaces {
		for _, ls := range lf.LocalScvs {
			o.ScvLocalFaces[ls] = append(o.ScvLocalFaces[ls], f)
		}
	}
	return
}

// canonicalOrder sorts the scvs of a regular 8-cell set by octant. Cells are numbered relative
// to the first one (local octant = octant XOR ref) and mapped to the canonical numbering.
//  local -- local octant of the scv in each canonical slot
func canonicalOrder(g *geo.FvGeometry, v int, scvs []int) (local []int, ref int, err error) {
	x := g.VertCoords(v)
	ref = adapt.Octant(g.Scvs[scvs[0]].Center, x)
	ordered := make([]int, 8)
	local = make([]int, 8)
	seen := make([]bool, 8)
	for _, scv := range scvs {
		l := adapt.Octant(g.Scvs[scv].Center, x) ^ ref
		k := adapt.CanonicalElem(ref, l)
		if seen[k] {
			return nil, 0, chk.Err("two cells around vertex %d occupy octant %d", v, k)
		}
		seen[k] = true
		ordered[k] = scv
		local[k] = l
	}
	copy(scvs, ordered)
	return
}

// canonicalFaces sorts the interior local faces of a canonical set by canonical face index
func canonicalFaces(o *NodalIndexSet, local []int) {
	ref := o.CanonicalRef
	key := make([]int, len(o.LocalFaces))
	for f, lf := range o.LocalFaces {
		key[f] = 12 + f // boundary faces last, in order of appearance
		if len(lf.LocalScvs) == 2 {
			a, b := local[lf.LocalScvs[0]], local[lf.LocalScvs[1]]
			if l := adapt.FaceBetween(a, b); l >= 0 {
				key[f] = adapt.CanonicalFace(ref, l)
			}
		}
	}
	idx := utl.IntRange(len(o.LocalFaces))
	sort.SliceStable(idx, func(i, j int) bool { return key[idx[i]] < key[idx[j]] })
	faces := make([]*LocalFace, len(idx))
	for i, f := range idx {
		faces[i] = o.LocalFaces[f]
	}
	o.LocalFaces = faces
}
