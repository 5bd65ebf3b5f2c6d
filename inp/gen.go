// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// tags used by the structured generators
const (
	TagCells = -1  // all generated cells
	TagXmin  = -10 // facets on x-min
	TagXmax  = -11 // facets on x-max
	TagYmin  = -20 // facets on y-min
	TagYmax  = -21 // facets on y-max
	TagZmin  = -30 // facets on z-min
	TagZmax  = -31 // facets on z-max
	TagEnds  = -40 // dangling end points of line networks
)

// GenLines generates a network of lin2 cells
//  Input:
//   coords[nverts][ndim] -- coordinates of vertices
//   edges[ncells][2]     -- connectivity
//  Note: end points shared by one line only are tagged with TagEnds
func GenLines(coords [][]float64, edges [][]int) (*Mesh, error) {
	verts := make([]*Vert, len(coords))
	for i, x := range coords {
		verts[i] = &Vert{Id: i, C: append([]float64{}, x...)}
	}
	degree := make([]int, len(coords))
	for _, e := range edges {
		if len(e) != 2 {
			return nil, chk.Err("line cells require 2 vertices. %d is invalid", len(e))
		}
		degree[e[0]]++
		degree[e[1]]++
	}
	cells := make([]*Cell, len(edges))
	for i, e := range edges {
		ftags := []int{0, 0}
		for j, v := range e {
			if degree[v] == 1 {
				ftags[j] = TagEnds
			}
		}
		cells[i] = &Cell{Id: i, Tag: TagCells, Type: "lin2", Verts: []int{e[0], e[1]}, FTags: ftags}
	}
	return NewMesh(verts, cells)
}

// GenQuads generates a structured mesh of qua4 cells over [0,lx]×[0,ly]
//  vertex (i,j) => i + j*(nx+1)
//  cell   (i,j) => i + j*nx
func GenQuads(nx, ny int, lx, ly float64) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("number of divisions must be positive. nx=%d ny=%d is invalid", nx, ny)
	}
	verts := gridVerts2d(nx, ny, lx, ly)
	vid := func(i, j int) int { return i + j*(nx+1) }
	cells := make([]*Cell, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cells = append(cells, &Cell{
				Id:    len(cells),
				Tag:   TagCells,
				Type:  "qua4",
				Verts: []int{vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)},
				FTags: []int{
					onBoundary(j == 0, TagYmin),
					onBoundary(i == nx-1, TagXmax),
					onBoundary(j == ny-1, TagYmax),
					onBoundary(i == 0, TagXmin),
				},
			})
		}
	}
	return NewMesh(verts, cells)
}

// GenTris generates a structured mesh of tri3 cells over [0,lx]×[0,ly]
// by splitting each quadrilateral along its (0,2) diagonal
func GenTris(nx, ny int, lx, ly float64) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("number of divisions must be positive. nx=%d ny=%d is invalid", nx, ny)
	}
	verts := gridVerts2d(nx, ny, lx, ly)
	vid := func(i, j int) int { return i + j*(nx+1) }
	cells := make([]*Cell, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0, v1, v2, v3 := vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)
			cells = append(cells, &Cell{
				Id:    len(cells),
				Tag:   TagCells,
				Type:  "tri3",
				Verts: []int{v0, v1, v2},
				FTags: []int{onBoundary(j == 0, TagYmin), onBoundary(i == nx-1, TagXmax), 0},
			})
			cells = append(cells, &Cell{
				Id:    len(cells),
				Tag:   TagCells,
				Type:  "tri3",
				Verts: []int{v0, v2, v3},
				FTags: []int{0, onBoundary(j == ny-1, TagYmax), onBoundary(i == 0, TagXmin)},
			})
		}
	}
	return NewMesh(verts, cells)
}

// GenHexs generates a structured mesh of hex8 cells over [0,lx]×[0,ly]×[0,lz]
//  vertex (i,j,k) => i + j*(nx+1) + k*(nx+1)*(ny+1)
//  cell   (i,j,k) => i + j*nx + k*nx*ny
func GenHexs(nx, ny, nz int, lx, ly, lz float64) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("number of divisions must be positive. nx=%d ny=%d nz=%d is invalid", nx, ny, nz)
	}
	X := utl.LinSpace(0, lx, nx+1)
	Y := utl.LinSpace(0, ly, ny+1)
	Z := utl.LinSpace(0, lz, nz+1)
	verts := make([]*Vert, 0, len(X)*len(Y)*len(Z))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				verts = append(verts, &Vert{Id: len(verts), C: []float64{X[i], Y[j], Z[k]}})
			}
		}
	}
	vid := func(i, j, k int) int { return i + j*(nx+1) + k*(nx+1)*(ny+1) }
	cells := make([]*Cell, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cells = append(cells, &Cell{
					Id:   len(cells),
					Tag:  TagCells,
					Type: "hex8",
					Verts: []int{
						vid(i, j, k), vid(i+1, j, k), vid(i+1, j+1, k), vid(i, j+1, k),
						vid(i, j, k+1), vid(i+1, j, k+1), vid(i+1, j+1, k+1), vid(i, j+1, k+1),
					},
					FTags: []int{
						onBoundary(i == 0, TagXmin),
						onBoundary(i == nx-1, TagXmax),
						onBoundary(j == 0, TagYmin),
						onBoundary(j == ny-1, TagYmax),
						onBoundary(k == 0, TagZmin),
						onBoundary(k == nz-1, TagZmax),
					},
				})
			}
		}
	}
	return NewMesh(verts, cells)
}

// gridVerts2d generates the vertices of a structured 2D grid
func gridVerts2d(nx, ny int, lx, ly float64) (verts []*Vert) {
	X := utl.LinSpace(0, lx, nx+1)
	Y := utl.LinSpace(0, ly, ny+1)
	verts = make([]*Vert, 0, len(X)*len(Y))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			verts = append(verts, &Vert{Id: len(verts), C: []float64{X[i], Y[j]}})
		}
	}
	return
}

func onBoundary(cond bool, tag int) int {
	if cond {
		return tag
	}
	return 0
}
