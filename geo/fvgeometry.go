// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"sort"

	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// FvGeometry holds the finite volume geometry of a whole mesh
//  Note: dofs 0..ncells-1 are cells; dofs ncells.. are ghosts of boundary scvfs
type FvGeometry struct {
	Msh        *inp.Mesh       // the mesh
	Q          float64         // continuity point parameter: ip = xf + q・(xv - xf)
	Scvs       []*Scv          // all scvs; one per cell
	Scvfs      []*Scvf         // all scvfs
	Isects     []*Intersection // all intersections
	CellScvfs  [][]int         // cell => scvfs
	CellIsects [][]int         // cell => intersections
	VertScvfs  [][]int         // vertex => scvfs attached to it
	VertCells  [][]int         // vertex => cells with scvfs attached to it (sorted)
	ghost2scvf []int           // ghost dof - ncells => scvf
	key2scvf   map[scvfKey]int // (isect, vertex, cell) => scvf
}

type scvfKey struct{ isect, vert, cell int }

// NewFvGeometry builds the geometry of a mesh
//  Input:
//   msh       -- mesh
//   q         -- continuity point parameter in [0,1)
//   extrusion -- extrusion factor of each cell; may be nil (=> 1)
func NewFvGeometry(msh *inp.Mesh, q float64, extrusion []float64) (o *FvGeometry, err error) {

	// check
	if q < 0 || q >= 1 {
		return nil, chk.Err("continuity point parameter must be in [0,1). q=%g is invalid", q)
	}
	if extrusion != nil && len(extrusion) != len(msh.Cells) {
		return nil, chk.Err("number of extrusion factors (%d) must equal number of cells (%d)", len(extrusion), len(msh.Cells))
	}

	// scvs
	o = &FvGeometry{Msh: msh, Q: q}
	o.Scvs = make([]*Scv, len(msh.Cells))
	for _, c := range msh.Cells {
		x := msh.CellCoords(c)
		vol, e := shp.CellVolume(c.Shp, x)
		if e != nil {
			return nil, chk.Err("cell %d is degenerate:\n%v", c.Id, e)
		}
		ext := 1.0
		if extrusion != nil {
			ext = extrusion[c.Id]
		}
		if ext <= 0 {
			return nil, chk.Err("extrusion factor of cell %d must be positive. %g is invalid", c.Id, ext)
		}
		o.Scvs[c.Id] = &Scv{Idx: c.Id, CellId: c.Id, Volume: vol, Center: shp.Center(x), Extrusion: ext, Level: c.Level}
	}

	// intersections
	err = o.findIntersections()
	if err != nil {
		return nil, err
	}

	// scvfs
	err = o.buildScvfs()
	if err != nil {
		return nil, err
	}
	return
}

// NumCells returns the number of cells (== number of scvs)
func (o *FvGeometry) NumCells() int { return len(o.Scvs) }

// NumBoundary returns the number of boundary scvfs (== number of ghost dofs)
func (o *FvGeometry) NumBoundary() int { return len(o.ghost2scvf) }

// NumDofs returns the number of cell dofs plus ghost dofs
func (o *FvGeometry) NumDofs() int { return len(o.Scvs) + len(o.ghost2scvf) }

// IsGhostDof tells whether dof d is the ghost of a boundary scvf
func (o *FvGeometry) IsGhostDof(d int) bool { return d >= len(o.Scvs) }

// GhostScvf returns the boundary scvf of ghost dof d
func (o *FvGeometry) GhostScvf(d int) *Scvf {
	return o.Scvfs[o.ghost2scvf[d-len(o.Scvs)]]
}

// FindScvf returns the scvf of cell attached to (isect, vertex); -1 if not found
func (o *FvGeometry) FindScvf(isect, vert, cell int) int {
	if idx, ok := o.key2scvf[scvfKey{isect, vert, cell}]; ok {
		return idx
	}
	return -1
}

// VertCoords returns the coordinates of vertex v
func (o *FvGeometry) VertCoords(v int) []float64 { return o.Msh.Verts[v].C }

// facets ////////////////////////////////////////////////////////////////////////////////////////

// facetRef identifies the local facet of a cell
type facetRef struct{ cell, lf int }

func (o *FvGeometry) facetVerts(r facetRef) []int {
	c := o.Msh.Cells[r.cell]
	lverts := c.Shp.FaceLocalVerts[r.lf]
	verts := make([]int, len(lverts))
	for i, m := range lverts {
		verts[i] = c.Verts[m]
	}
	return verts
}

func (o *FvGeometry) coords(verts []int) (x [][]float64) {
	x = make([][]float64, len(verts))
	for i, v := range verts {
		x[i] = o.Msh.Verts[v].C
	}
	return
}

func (o *FvGeometry) addIsect(verts []int, refs []facetRef, boundary, conforming bool) error {
	pts := o.coords(verts)
	area := shp.PolygonArea(pts)
	if area < shp.MINVOL {
		return chk.Err("intersection with vertices %v has zero area", verts)
	}
	is := &Intersection{
		Idx:        len(o.Isects),
		Verts:      verts,
		Center:     shp.Center(pts),
		Area:       area,
		Boundary:   boundary,
		Conforming: conforming,
	}
	for _, r := range refs {
		is.Cells = append(is.Cells, r.cell)
		is.LocalFacets = append(is.LocalFacets, r.lf)
		o.CellIsects[r.cell] = append(o.CellIsects[r.cell], is.Idx)
	}
	if boundary {
		is.Tag = o.Msh.Cells[refs[0].cell].FTags[refs[0].lf]
	}
	o.Isects = append(o.Isects, is)
	return nil
}

// findIntersections matches the facets of all cells
func (o *FvGeometry) findIntersections() (err error) {

	// group facets by their sorted vertices
	owners := make(map[string][]facetRef)
	var keys []string
	for _, c := range o.Msh.Cells {
		for lf := range c.Shp.FaceLocalVerts {
			r := facetRef{c.Id, lf}
			verts := o.facetVerts(r)
			sorted := append([]int{}, verts...)
			sort.Ints(sorted)
			k := io.Sf("%v", sorted)
			if _, ok := owners[k]; !ok {
				keys = append(keys, k)
			}
			owners[k] = append(owners[k], r)
		}
	}

	// non-conforming pieces of unmatched facets
	var unmatched []facetRef
	for _, k := range keys {
		if len(owners[k]) == 1 {
			unmatched = append(unmatched, owners[k][0])
		}
	}
	pieces, consumed, err := o.findPieces(unmatched)
	if err != nil {
		return
	}

	// intersections in the order facets were found
	o.CellIsects = make([][]int, len(o.Msh.Cells))
	for _, k := range keys {
		refs := owners[k]
		r := refs[0]
		switch {
		case len(refs) > 1:
			err = o.addIsect(o.facetVerts(r), refs, false, true)
		case consumed[r]:
			continue
		case len(pieces[r]) > 0:
			for _, g := range pieces[r] {
				err = o.addIsect(o.facetVerts(g), []facetRef{g, r}, false, false)
				if err != nil {
					break
				}
			}
		default:
			err = o.addIsect(o.facetVerts(r), refs, true, true)
		}
		if err != nil {
			return
		}
	}

	// order intersections of each cell by local facet
	for c, ids := range o.CellIsects {
		sort.SliceStable(ids, func(i, j int) bool {
			return o.localFacet(ids[i], c) < o.localFacet(ids[j], c)
		})
	}
	return
}

// localFacet returns the local facet of cell c containing intersection i
func (o *FvGeometry) localFacet(i, c int) int {
	is := o.Isects[i]
	return is.LocalFacets[utl.IntIndexSmall(is.Cells, c)]
}

// findPieces finds, for each unmatched (coarse) facet, the unmatched facets of other cells
// lying on it. The areas of the pieces must add up to the area of the coarse facet.
func (o *FvGeometry) findPieces(unmatched []facetRef) (pieces map[facetRef][]facetRef, consumed map[facetRef]bool, err error) {
	pieces = make(map[facetRef][]facetRef)
	consumed = make(map[facetRef]bool)
	n := len(unmatched)
	pts := make([][][]float64, n)
	area := make([]float64, n)
	for i, r := range unmatched {
		pts[i] = o.coords(o.facetVerts(r))
		area[i] = shp.PolygonArea(pts[i])
	}
	for i, f := range unmatched {
		if len(pts[i]) < 2 {
			continue // points cannot be split
		}
		tol := 1e-9 * (1 + area[i])
		var sum float64
		for j, g := range unmatched {
			if g.cell == f.cell || area[j] > area[i]-tol || len(pts[j]) < 2 {
				continue
			}
			inside := true
			for _, x := range pts[j] {
				if !onFacet(pts[i], area[i], x) {
					inside = false
					break
				}
			}
			if inside {
				pieces[f] = append(pieces[f], g)
				consumed[g] = true
				sum += area[j]
			}
		}
		if len(pieces[f]) > 0 && !closeTo(sum, area[i], tol) {
			return nil, nil, chk.Err("facet %d of cell %d is partially covered by facets of finer cells (area=%g, covered=%g)", f.lf, f.cell, area[i], sum)
		}
	}
	return
}

// onFacet tells whether point x lies on the segment or convex polygon pts
func onFacet(pts [][]float64, area float64, x []float64) bool {
	tol := 1e-9 * (1 + area)
	if len(pts) == 2 {
		return closeTo(floats.Distance(pts[0], x, 2)+floats.Distance(x, pts[1], 2), area, tol)
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		sum += shp.TriangleArea(x, pts[i], pts[(i+1)%n])
	}
	return closeTo(sum, area, tol)
}

func closeTo(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}

// scvfs /////////////////////////////////////////////////////////////////////////////////////////

// buildScvfs creates one scvf per (cell, intersection, vertex of intersection)
func (o *FvGeometry) buildScvfs() (err error) {
	ncells := len(o.Scvs)
	o.CellScvfs = make([][]int, ncells)
	o.VertScvfs = make([][]int, len(o.Msh.Verts))
	o.key2scvf = make(map[scvfKey]int)
	for c, scv := range o.Scvs {
		for _, i := range o.CellIsects[c] {
			is := o.Isects[i]
			pts := o.coords(is.Verts)
			normal, e := shp.FacetNormal(pts, scv.Center)
			if e != nil {
				return chk.Err("cannot compute normal of intersection %d of cell %d:\n%v", i, c, e)
			}
			for k, v := range is.Verts {
				s := &Scvf{
					Idx:         len(o.Scvfs),
					InsideScv:   scv.Idx,
					CellId:      c,
					Isect:       i,
					LocalFacet:  o.localFacet(i, c),
					VertexId:    v,
					Normal:      append([]float64{}, normal...),
					Area:        shp.SubFaceArea(pts, k),
					FacetCenter: is.Center,
					Boundary:    is.Boundary,
					Branching:   is.Branching(),
					Tag:         is.Tag,
					GhostDof:    -1,
				}
				s.IpGlobal = make([]float64, len(pts[k]))
				floats.SubTo(s.IpGlobal, pts[k], is.Center)
				floats.Scale(o.Q, s.IpGlobal)
				floats.Add(s.IpGlobal, is.Center)
				if is.Boundary {
					s.GhostDof = ncells + len(o.ghost2scvf)
					s.OutsideScvs = []int{s.GhostDof}
					o.ghost2scvf = append(o.ghost2scvf, s.Idx)
				} else {
					for _, oc := range is.Cells {
						if oc != c {
							s.OutsideCells = append(s.OutsideCells, oc)
							s.OutsideScvs = append(s.OutsideScvs, o.Scvs[oc].Idx)
						}
					}
				}
				o.Scvfs = append(o.Scvfs, s)
				o.CellScvfs[c] = append(o.CellScvfs[c], s.Idx)
				o.VertScvfs[v] = append(o.VertScvfs[v], s.Idx)
				o.key2scvf[scvfKey{i, v, c}] = s.Idx
			}
		}
	}

	// flipped scvfs and cells attached to vertices
	for _, s := range o.Scvfs {
		for _, oc := range s.OutsideCells {
			f := o.FindScvf(s.Isect, s.VertexId, oc)
			if f < 0 {
				return chk.Err("cannot find outside scvf of scvf %d in cell %d", s.Idx, oc)
			}
			s.Flips = append(s.Flips, f)
		}
	}
	o.VertCells = make([][]int, len(o.Msh.Verts))
	for v, ids := range o.VertScvfs {
		cells := make([]int, len(ids))
		for i, id := range ids {
			cells[i] = o.Scvfs[id].CellId
		}
		o.VertCells[v] = utl.IntUnique(cells)
	}
	return
}
