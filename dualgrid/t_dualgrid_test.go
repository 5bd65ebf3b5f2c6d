// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dualgrid

import (
	"testing"

	"github.com/m-giraud/dumux3.0-sub000/adapt"
	"github.com/m-giraud/dumux3.0-sub000/geo"
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

func build(tst *testing.T, msh *inp.Mesh) (*geo.FvGeometry, *DualGrid) {
	g, err := geo.NewFvGeometry(msh, 0, nil)
	require.NoError(tst, err)
	dg, err := Build(g, msh.GhostVerts(), msh.GhostCells(), chk.Verbose)
	require.NoError(tst, err)
	return g, dg
}

// checkComplete checks that each scvf attached to a vertex appears exactly once in its set
func checkComplete(tst *testing.T, g *geo.FvGeometry, dg *DualGrid) {
	for v, set := range dg.Sets {
		if set == nil {
			continue
		}
		count := make(map[int]int)
		for _, idx := range set.Scvfs {
			count[idx]++
		}
		for _, idx := range g.VertScvfs[v] {
			assert.Equal(tst, 1, count[idx], "scvf %d @ vertex %d", idx, v)
		}
		for k, idx := range set.Scvfs {
			s := g.Scvfs[idx]
			assert.Equal(tst, s.InsideScv, set.Scvs[set.ScvfLocalScv[k]])
			assert.Equal(tst, s.Isect, set.LocalFaces[set.ScvfLocalFace[k]].Isect)
		}
	}
}

func Test_dualgrid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dualgrid01. quadrilaterals")

	msh, err := inp.GenQuads(2, 2, 1, 1)
	require.NoError(tst, err)
	g, dg := build(tst, msh)
	checkComplete(tst, g, dg)

	// center vertex
	set := dg.Set(4)
	io.Pforan("%v", set)
	chk.Ints(tst, "scvs", set.Scvs, []int{0, 1, 2, 3})
	chk.IntAssert(set.NumFaces(), 4)
	chk.IntAssert(set.NumScvfs(), 8)
	assert.False(tst, set.Boundary)
	assert.True(tst, set.Levels.SameLevel())
	assert.Equal(tst, adapt.NoHangingNode, set.HangingType)
	for ls := range set.Scvs {
		chk.IntAssert(len(set.ScvLocalFaces[ls]), 2)
	}

	// corner vertex: one cell and two boundary faces
	set = dg.Set(0)
	chk.Ints(tst, "scvs", set.Scvs, []int{0})
	chk.IntAssert(set.NumFaces(), 2)
	assert.True(tst, set.Boundary)
	assert.True(tst, dg.BoundaryVerts[1])
	assert.False(tst, dg.BoundaryVerts[4])
	assert.Equal(tst, 0, set.LocalScv(0))
	assert.Equal(tst, -1, set.LocalScv(3))
}

func Test_dualgrid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dualgrid02. ghosts, networks and hanging nodes")

	// cells 1 and 3 belong to another partition
	msh, err := inp.GenQuads(2, 2, 1, 1)
	require.NoError(tst, err)
	msh.Cells[1].Part = 1
	msh.Cells[3].Part = 1
	_, dg := build(tst, msh)
	assert.Nil(tst, dg.Set(2))
	assert.Nil(tst, dg.Set(8))
	assert.NotNil(tst, dg.Set(4))
	chk.IntAssert(dg.Set(4).NumScvs(), 4)

	// network
	msh, err = inp.GenLines([][]float64{{0, 0}, {1, 0}, {-1, 1}, {-1, -1}}, [][]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(tst, err)
	g, dg := build(tst, msh)
	checkComplete(tst, g, dg)
	set := dg.Set(0)
	assert.True(tst, set.Branching)
	assert.True(tst, dg.BranchingVerts[0])
	chk.IntAssert(set.NumFaces(), 1)
	chk.Ints(tst, "neighbours", set.NeighborScvs(0), []int{0, 1, 2})

	// hanging node
	verts := []*inp.Vert{
		{Id: 0, C: []float64{0, 0}}, {Id: 1, C: []float64{2, 0}}, {Id: 2, C: []float64{2, 2}},
		{Id: 3, C: []float64{0, 2}}, {Id: 4, C: []float64{3, 0}}, {Id: 5, C: []float64{3, 1}},
		{Id: 6, C: []float64{3, 2}}, {Id: 7, C: []float64{2, 1}},
	}
	cells := []*inp.Cell{
		{Id: 0, Tag: -1, Type: "qua4", Verts: []int{0, 1, 2, 3}, FTags: []int{-20, 0, -21, -10}},
		{Id: 1, Tag: -1, Type: "qua4", Level: 1, Verts: []int{1, 4, 5, 7}, FTags: []int{-20, -11, 0, 0}},
		{Id: 2, Tag: -1, Type: "qua4", Level: 1, Verts: []int{7, 5, 6, 2}, FTags: []int{0, -11, -21, 0}},
	}
	msh, err = inp.NewMesh(verts, cells)
	require.NoError(tst, err)
	g, dg = build(tst, msh)
	checkComplete(tst, g, dg)
	set = dg.Set(7)
	io.Pforan("%v", set)
	assert.Equal(tst, adapt.TwoSmallCells, set.HangingType)
	chk.Ints(tst, "levels", set.Levels, []int{0, 1})
	chk.IntAssert(set.NumFaces(), 3)
	chk.IntAssert(len(set.ScvLocalFaces[0]), 2)
	topo, err := adapt.Classify(set.Levels, set.HangingType)
	require.NoError(tst, err)
	assert.Equal(tst, adapt.HangingTwo, topo)
	assert.Equal(tst, adapt.NoHangingNode, dg.Set(1).HangingType)
}

func Test_dualgrid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dualgrid03. canonical ordering of hexahedra")

	msh, err := inp.GenHexs(2, 2, 2, 1, 1, 1)
	require.NoError(tst, err)
	g, dg := build(tst, msh)
	checkComplete(tst, g, dg)

	set := dg.Set(13)
	assert.True(tst, set.Canonical)
	chk.IntAssert(set.NumFaces(), 12)
	x := g.VertCoords(13)
	for k, scv := range set.Scvs {
		chk.IntAssert(adapt.Octant(g.Scvs[scv].Center, x), k)
	}
	for f, lf := range set.LocalFaces {
		a, b := lf.LocalScvs[0], lf.LocalScvs[1]
		chk.IntAssert(adapt.FaceBetween(a, b), f)
	}
	chk.IntAssert(set.CanonicalRef, 0)

	// reversed cell ids: the first cell lies in octant 7 and the same canonical order results
	n := len(msh.Cells)
	cells := make([]*inp.Cell, n)
	for i, c := range msh.Cells {
		cells[n-1-i] = &inp.Cell{Id: n - 1 - i, Tag: c.Tag, Type: c.Type, Verts: c.Verts, FTags: c.FTags}
	}
	msh, err = inp.NewMesh(msh.Verts, cells)
	require.NoError(tst, err)
	g, dg = build(tst, msh)
	checkComplete(tst, g, dg)
	set = dg.Set(13)
	assert.True(tst, set.Canonical)
	chk.IntAssert(set.CanonicalRef, 7)
	chk.IntAssert(set.NumFaces(), 12)
	for k, scv := range set.Scvs {
		chk.IntAssert(adapt.Octant(g.Scvs[scv].Center, x), k)
		chk.IntAssert(scv, 7-k)
	}
	for f, lf := range set.LocalFaces {
		a, b := lf.LocalScvs[0], lf.LocalScvs[1]
		chk.IntAssert(adapt.FaceBetween(a, b), f)
		chk.IntAssert(adapt.CanonicalFace(7, adapt.FaceBetween(a^7, b^7)), f)
	}
}
