// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/m-giraud/dumux3.0-sub000/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==1, 2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type (string)
	Part  int    `json:"part"`  // partition id
	Level int    `json:"level"` // refinement level; 0 == coarsest
	Verts []int  `json:"verts"` // vertices
	FTags []int  `json:"ftags"` // point (1D), edge (2D) or face (3D) tags

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for finite volume analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	MyPart     int     // partition owned by this process; other cells are ghosts
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells
	FaceTag2verts map[int][]int        // face tag => vertices on tagged face
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
	Part2cells    map[int][]*Cell      // partition number => set of cells
	Vert2cells    [][]int              // vertex id => ids of cells sharing this vertex
}

// ReadMsh reads a mesh for finite volume analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := readFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.init()
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// NewMesh allocates a mesh from vertices and cells given in memory
func NewMesh(verts []*Vert, cells []*Cell) (o *Mesh, err error) {
	o = &Mesh{Verts: verts, Cells: cells}
	err = o.init()
	if err != nil {
		return nil, err
	}
	return
}

// readFile reads a file; io.ReadFile panics if the file cannot be read
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// GhostCells returns a flag for each cell indicating whether it belongs to another partition
func (o *Mesh) GhostCells() (ghost []bool) {
	ghost = make([]bool, len(o.Cells))
	for i, c := range o.Cells {
		ghost[i] = c.Part != o.MyPart
	}
	return
}

// GhostVerts returns a flag for each vertex indicating whether all of its cells are ghosts
func (o *Mesh) GhostVerts() (ghost []bool) {
	ghost = make([]bool, len(o.Verts))
	for i, cids := range o.Vert2cells {
		ghost[i] = true
		for _, cid := range cids {
			if o.Cells[cid].Part == o.MyPart {
				ghost[i] = false
				break
			}
		}
	}
	return
}

// CellCoords returns the coordinates of the vertices of a cell
func (o *Mesh) CellCoords(c *Cell) (x [][]float64) {
	x = make([][]float64, len(c.Verts))
	for i, v := range c.Verts {
		x[i] = o.Verts[v].C
	}
	return
}

// init computes derived data
func (o *Mesh) init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("at least 2 vertices are required in mesh")
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required in mesh")
	}

	// space dimension
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("number of coordinates must be 1, 2 or 3. %d is invalid", o.Ndim)
	}
	if o.Ndim == 3 {
		flat := true
		for _, v := range o.Verts {
			if len(v.C) == 3 && math.Abs(v.C[2]) > Ztol {
				flat = false
				break
			}
		}
		if flat && o.allCellsGndim(2) {
			o.Ndim = 2
		}
	}

	// vertex related derived data
	o.Xmin, o.Xmax = o.Verts[0].C[0], o.Verts[0].C[0]
	if o.Ndim > 1 {
		o.Ymin, o.Ymax = o.Verts[0].C[1], o.Verts[0].C[1]
	}
	if o.Ndim > 2 {
		o.Zmin, o.Zmax = o.Verts[0].C[2], o.Verts[0].C[2]
	}
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}

		// coordinates
		if len(v.C) < o.Ndim {
			return chk.Err("vertex %d has %d coordinates but ndim=%d", v.Id, len(v.C), o.Ndim)
		}
		v.C = v.C[:o.Ndim]

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		if o.Ndim > 1 {
			o.Ymin = utl.Min(o.Ymin, v.C[1])
			o.Ymax = utl.Max(o.Ymax, v.C[1])
		}
		if o.Ndim > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	o.Part2cells = make(map[int][]*Cell)
	o.Vert2cells = make([][]int, len(o.Verts))
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("cells tags must be negative. %d is invalid (@ cell %d)", c.Tag, c.Id)
		}
		if c.Level < 0 {
			return chk.Err("refinement level of cell %d must be non-negative. %d is invalid", c.Id, c.Level)
		}

		// get shape structure
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return chk.Err("cannot find shape type %q (@ cell %d)", c.Type, c.Id)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d of type %q must have %d vertices. %d is invalid", c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		if c.Shp.Gndim > o.Ndim {
			return chk.Err("cell %d of type %q cannot be embedded in ndim=%d space", c.Id, c.Type, o.Ndim)
		}
		if len(c.FTags) == 0 {
			c.FTags = make([]int, c.Shp.Nfaces())
		}
		if len(c.FTags) != c.Shp.Nfaces() {
			return chk.Err("cell %d must have %d face tags. %d is invalid", c.Id, c.Shp.Nfaces(), len(c.FTags))
		}

		// vertices => cells
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d references vertex %d which does not exist", c.Id, v)
			}
			o.Vert2cells[v] = append(o.Vert2cells[v], c.Id)
		}

		// tag => cells
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)

		// face tags
		for j, ftag := range c.FTags {
			if ftag < 0 {
				pairs := o.FaceTag2cells[ftag]
				o.FaceTag2cells[ftag] = append(pairs, CellFaceId{c, j})
				for _, l := range c.Shp.FaceLocalVerts[j] {
					o.FaceTag2verts[ftag] = append(o.FaceTag2verts[ftag], c.Verts[l])
				}
			}
		}

		// cell type => cells
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)

		// partition => cells
		cells = o.Part2cells[c.Part]
		o.Part2cells[c.Part] = append(cells, c)
	}

	// remove duplicates
	for ftag, verts := range o.FaceTag2verts {
		o.FaceTag2verts[ftag] = utl.IntUnique(verts)
	}
	return
}

// allCellsGndim checks whether all cells have the given geometric dimension
func (o *Mesh) allCellsGndim(gndim int) bool {
	for _, c := range o.Cells {
		s := shp.Get(c.Type)
		if s == nil || s.Gndim != gndim {
			return false
		}
	}
	return true
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"part\":%d, \"level\":%d, \"verts\":[", o.Id, o.Tag, o.Type, o.Part, o.Level)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
