// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. read mesh")

	msh, err := ReadMsh("data", "quad2x2.msh")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", msh)

	chk.IntAssert(msh.Ndim, 2)
	chk.IntAssert(len(msh.Verts), 9)
	chk.IntAssert(len(msh.Cells), 4)
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 1)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 1)
	chk.Ints(tst, "x-min verts", msh.FaceTag2verts[-10], []int{0, 3, 6})
	chk.Ints(tst, "x-max verts", msh.FaceTag2verts[-11], []int{2, 5, 8})
	chk.Ints(tst, "vert 4 => cells", msh.Vert2cells[4], []int{0, 1, 2, 3})
	chk.IntAssert(len(msh.FaceTag2cells[-20]), 2)
	chk.IntAssert(len(msh.CellTag2cells[-1]), 4)

	_, err = ReadMsh("data", "nothing.msh")
	if err == nil {
		tst.Errorf("reading a non-existent file must fail")
	}
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. ghosts")

	msh, err := GenQuads(2, 1, 2, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	msh.Cells[1].Part = 1

	// cell 1 belongs to another partition
	assert.Equal(tst, []bool{false, true}, msh.GhostCells())

	// vertices 2 and 5 are only touched by cell 1
	assert.Equal(tst, []bool{false, false, true, false, false, true}, msh.GhostVerts())
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. invalid meshes")

	verts := []*Vert{{Id: 0, C: []float64{0, 0}}, {Id: 1, C: []float64{1, 0}}, {Id: 2, C: []float64{0, 1}}}
	_, err := NewMesh(verts, []*Cell{{Id: 0, Tag: -1, Type: "tri3", Verts: []int{0, 1}}})
	if err == nil {
		tst.Errorf("wrong number of vertices must fail")
	}
	_, err = NewMesh(verts, []*Cell{{Id: 0, Tag: 1, Type: "tri3", Verts: []int{0, 1, 2}}})
	if err == nil {
		tst.Errorf("positive cell tag must fail")
	}
	_, err = NewMesh(verts, []*Cell{{Id: 0, Tag: -1, Type: "nothing", Verts: []int{0, 1, 2}}})
	if err == nil {
		tst.Errorf("unknown cell type must fail")
	}
	msh, err := NewMesh(verts, []*Cell{{Id: 0, Tag: -1, Type: "tri3", Verts: []int{0, 1, 2}}})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Ints(tst, "ftags", msh.Cells[0].FTags, []int{0, 0, 0})
}
