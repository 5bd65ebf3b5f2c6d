// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/m-giraud/dumux3.0-sub000/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// hangingMesh returns a coarse square [0,2]² next to two fine cells on x ∈ [2,3]
//  3-----------2-----6
//  |           |  2  |
//  |     0     7-----5
//  |           |  1  |
//  0-----------1-----4
func hangingMesh(withTop bool) (*inp.Mesh, error) {
	verts := []*inp.Vert{
		{Id: 0, C: []float64{0, 0}},
		{Id: 1, C: []float64{2, 0}},
		{Id: 2, C: []float64{2, 2}},
		{Id: 3, C: []float64{0, 2}},
		{Id: 4, C: []float64{3, 0}},
		{Id: 5, C: []float64{3, 1}},
		{Id: 6, C: []float64{3, 2}},
		{Id: 7, C: []float64{2, 1}},
	}
	cells := []*inp.Cell{
		{Id: 0, Tag: -1, Type: "qua4", Verts: []int{0, 1, 2, 3}, FTags: []int{-20, 0, -21, -10}},
		{Id: 1, Tag: -1, Type: "qua4", Level: 1, Verts: []int{1, 4, 5, 7}, FTags: []int{-20, -11, 0, 0}},
	}
	if withTop {
		cells = append(cells, &inp.Cell{Id: 2, Tag: -1, Type: "qua4", Level: 1, Verts: []int{7, 5, 6, 2}, FTags: []int{0, -11, -21, 0}})
	}
	return inp.NewMesh(verts, cells)
}

func Test_geo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo01. structured quadrilaterals")

	msh, err := inp.GenQuads(2, 2, 1, 1)
	require.NoError(tst, err)
	g, err := NewFvGeometry(msh, 0, nil)
	require.NoError(tst, err)

	chk.IntAssert(g.NumCells(), 4)
	chk.IntAssert(len(g.Isects), 12)
	chk.IntAssert(len(g.Scvfs), 32)
	chk.IntAssert(g.NumBoundary(), 16)
	chk.IntAssert(g.NumDofs(), 20)

	// volumes and areas
	for c, scv := range g.Scvs {
		chk.Float64(tst, io.Sf("vol%d", c), 1e-15, scv.Volume, 0.25)
		var perimeter float64
		for _, idx := range g.CellScvfs[c] {
			perimeter += g.Scvfs[idx].Area
		}
		chk.Float64(tst, io.Sf("perimeter%d", c), 1e-15, perimeter, 2)
	}

	// interior faces: flips have opposite normals and the same area
	for _, s := range g.Scvfs {
		io.Pforan("%v\n", s)
		if s.Boundary {
			assert.True(tst, g.IsGhostDof(s.GhostDof))
			assert.Equal(tst, s.Idx, g.GhostScvf(s.GhostDof).Idx)
			assert.Empty(tst, s.OutsideCells)
			assert.Less(tst, s.Tag, 0)
			continue
		}
		require.Len(tst, s.Flips, 1)
		f := g.Scvfs[s.Flips[0]]
		chk.Float64(tst, "area", 1e-15, f.Area, s.Area)
		chk.Array(tst, "-n", 1e-15, f.Normal, []float64{-s.Normal[0], -s.Normal[1]})
		chk.IntAssert(f.Flips[0], s.Idx)
		chk.IntAssert(f.VertexId, s.VertexId)
		chk.IntAssert(s.OutsideScvs[0], f.InsideScv)
	}

	// the center vertex is attached to 8 scvfs of 4 cells
	chk.IntAssert(len(g.VertScvfs[4]), 8)
	chk.Ints(tst, "cells @ 4", g.VertCells[4], []int{0, 1, 2, 3})
}

func Test_geo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo02. continuity point and extrusion")

	msh, err := inp.GenQuads(1, 1, 2, 2)
	require.NoError(tst, err)
	g, err := NewFvGeometry(msh, 0.5, []float64{3})
	require.NoError(tst, err)
	chk.Float64(tst, "ext", 1e-15, g.Scvs[0].Extrusion, 3)

	// bottom facet (0,0)-(2,0) attached to vertex 1 at (2,0)
	s := g.Scvfs[g.FindScvf(g.CellIsects[0][0], 1, 0)]
	chk.Array(tst, "ip", 1e-15, s.IpGlobal, []float64{1.5, 0})
	chk.Array(tst, "n", 1e-15, s.Normal, []float64{0, -1})
	chk.Float64(tst, "area", 1e-15, s.Area, 1)
	chk.IntAssert(s.Tag, inp.TagYmin)

	_, err = NewFvGeometry(msh, 1, nil)
	assert.Error(tst, err)
	_, err = NewFvGeometry(msh, 0, []float64{1, 2})
	assert.Error(tst, err)
	_, err = NewFvGeometry(msh, 0, []float64{0})
	assert.Error(tst, err)
}

func Test_geo03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo03. non-conforming intersections")

	msh, err := hangingMesh(true)
	require.NoError(tst, err)
	g, err := NewFvGeometry(msh, 0, nil)
	require.NoError(tst, err)

	// coarse cell: 3 facets with 2 scvfs plus 2 pieces with 2 scvfs
	chk.IntAssert(len(g.CellScvfs[0]), 10)
	chk.IntAssert(len(g.CellIsects[0]), 5)

	// hanging vertex 7 is attached to the coarse cell twice
	chk.Ints(tst, "cells @ 7", g.VertCells[7], []int{0, 1, 2})
	ncoarse := 0
	for _, idx := range g.VertScvfs[7] {
		s := g.Scvfs[idx]
		if s.CellId == 0 {
			ncoarse++
			chk.Array(tst, "n", 1e-15, s.Normal, []float64{1, 0})
			chk.Float64(tst, "area", 1e-15, s.Area, 0.5)
			assert.False(tst, s.Boundary)
			require.Len(tst, s.OutsideCells, 1)
		}
	}
	chk.IntAssert(ncoarse, 2)

	// all intersections around the coarse cell
	var total float64
	for _, idx := range g.CellScvfs[0] {
		total += g.Scvfs[idx].Area
	}
	chk.Float64(tst, "perimeter", 1e-15, total, 8)

	// partial overlap
	msh, err = hangingMesh(false)
	require.NoError(tst, err)
	_, err = NewFvGeometry(msh, 0, nil)
	assert.Error(tst, err)
	io.Pforan("%v\n", err)
}

func Test_geo04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo04. networks and hexahedra")

	// three branches meeting at the origin
	msh, err := inp.GenLines([][]float64{{0, 0}, {1, 0}, {-1, 1}, {-1, -1}}, [][]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(tst, err)
	g, err := NewFvGeometry(msh, 0, []float64{0.1, 0.1, 0.1})
	require.NoError(tst, err)
	branching := 0
	for _, s := range g.Scvfs {
		if s.Branching {
			branching++
			chk.IntAssert(s.VertexId, 0)
			chk.IntAssert(len(s.OutsideCells), 2)
			chk.Float64(tst, "area", 1e-15, s.Area, 1)
		}
	}
	chk.IntAssert(branching, 3)
	chk.IntAssert(g.NumBoundary(), 3)

	// 2×2×2 box
	msh, err = inp.GenHexs(2, 2, 2, 1, 1, 1)
	require.NoError(tst, err)
	g, err = NewFvGeometry(msh, 0, nil)
	require.NoError(tst, err)
	chk.IntAssert(len(g.Scvfs), 8*6*4)
	chk.IntAssert(len(g.VertScvfs[13]), 24)
	for c := range g.Scvs {
		var area float64
		for _, idx := range g.CellScvfs[c] {
			area += g.Scvfs[idx].Area
		}
		chk.Float64(tst, "surface", 1e-14, area, 6*0.25)
	}
}
