// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adapt classifies interaction volumes on locally refined meshes
package adapt

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// HangingNodeType describes how cells of different levels meet at a vertex
type HangingNodeType int

// hanging node types
const (
	NoHangingNode      HangingNodeType = iota // vertex is a corner of all cells around it
	TwoSmallCells                             // two small cells on one side of a coarse facet or edge
	FourSmallCellsFace                        // four small cells at the center of a coarse face
	FourSmallCellsEdge                        // four small cells at a coarse edge; refined neighbours are adjacent
	FourSmallCellsDiag                        // four small cells at a coarse edge; refined neighbours are opposite
	SixSmallCells                             // six small cells at a coarse edge
)

// String returns the name of the hanging node type
func (o HangingNodeType) String() string {
	switch o {
	case NoHangingNode:
		return "none"
	case TwoSmallCells:
		return "twoSmallCells"
	case FourSmallCellsFace:
		return "fourSmallCellsFace"
	case FourSmallCellsEdge:
		return "fourSmallCellsEdge"
	case FourSmallCellsDiag:
		return "fourSmallCellsDiag"
	case SixSmallCells:
		return "sixSmallCells"
	}
	return "unknown"
}

// Topology tags the shape of an interaction volume
type Topology int

// interaction volume topologies
const (
	Unknown         Topology = iota // not classified
	Regular                         // all cells share the vertex as a corner
	HangingTwo                      // hanging node with two small cells
	HangingFourFace                 // hanging node at the center of a coarse face
	HangingFourEdge                 // hanging node at a coarse edge with adjacent refined neighbours
	HangingFourDiag                 // hanging node at a coarse edge with opposite refined neighbours
	HangingSix                      // hanging node at a coarse edge with six small cells
)

// String returns the name of the topology
func (o Topology) String() string {
	switch o {
	case Regular:
		return "regular"
	case HangingTwo:
		return "hangingTwo"
	case HangingFourFace:
		return "hangingFourFace"
	case HangingFourEdge:
		return "hangingFourEdge"
	case HangingFourDiag:
		return "hangingFourDiag"
	case HangingSix:
		return "hangingSix"
	}
	return "unknown"
}

// Levels holds the distinct refinement levels of the cells of an interaction volume (sorted)
type Levels []int

// NewLevels returns the sorted distinct levels
func NewLevels(levels ...int) Levels {
	return Levels(utl.IntUnique(levels))
}

// SameLevel tells whether all cells have the same level
func (o Levels) SameLevel() bool { return len(o) == 1 }

// HasLevel tells whether any cell has the given level
func (o Levels) HasLevel(level int) bool {
	i := sort.SearchInts(o, level)
	return i < len(o) && o[i] == level
}

// Classify returns the topology of an interaction volume
func Classify(levels Levels, hanging HangingNodeType) (Topology, error) {
	if len(levels) == 0 {
		return Unknown, chk.Err("cannot classify interaction volume without cells")
	}
	if hanging == NoHangingNode {
		return Regular, nil
	}
	if levels.SameLevel() {
		return Unknown, chk.Err("hanging node type %v requires cells of different levels. levels=%v", hanging, levels)
	}
	switch hanging {
	case TwoSmallCells:
		return HangingTwo, nil
	case FourSmallCellsFace:
		return HangingFourFace, nil
	case FourSmallCellsEdge:
		return HangingFourEdge, nil
	case FourSmallCellsDiag:
		return HangingFourDiag, nil
	case SixSmallCells:
		return HangingSix, nil
	}
	return Unknown, chk.Err("cannot classify interaction volume with hanging node type %d", hanging)
}

// DetectHangingNodeType determines the hanging node type at a vertex
//  Input:
//   gndim  -- geometric dimension of cells
//   vertex -- coordinates of vertex
//   coarse -- centers of cells that do not have the vertex as a corner
//   small  -- centers of cells that have the vertex as a corner
func DetectHangingNodeType(gndim int, vertex []float64, coarse, small [][]float64) (HangingNodeType, error) {
	nc, ns := len(coarse), len(small)
	if nc == 0 {
		return NoHangingNode, nil
	}
	switch gndim {
	case 2:
		if nc == 1 && ns == 2 {
			return TwoSmallCells, nil
		}
	case 3:
		switch {
		case nc == 1 && ns == 4:
			return FourSmallCellsFace, nil
		case nc == 1 && ns == 6:
			return SixSmallCells, nil
		case nc == 3 && ns == 2:
			return TwoSmallCells, nil
		case nc == 2 && ns == 4:
			return edgeOrDiag(vertex, coarse, small)
		}
	}
	return NoHangingNode, chk.Err("hanging node configuration with %d coarse and %d small cells is not supported (gndim=%d)", nc, ns, gndim)
}

// edgeOrDiag distinguishes adjacent from opposite refined neighbours around a coarse edge
func edgeOrDiag(vertex []float64, coarse, small [][]float64) (HangingNodeType, error) {

	// edge axis: coarse centers lie in the plane through the vertex normal to the edge
	axis, dmin := 0, math.MaxFloat64
	for k := 0; k < 3; k++ {
		if d := math.Abs(coarse[0][k] - vertex[k]); d < dmin {
			axis, dmin = k, d
		}
	}

	// quadrants of small cells around the edge
	var quads []int
	for _, c := range small {
		q := Octant(c, vertex) &^ (1 << uint(axis))
		if utl.IntIndexSmall(quads, q) < 0 {
			quads = append(quads, q)
		}
	}
	if len(quads) != 2 {
		return NoHangingNode, chk.Err("small cells around a coarse edge must occupy 2 quadrants. %d is invalid", len(quads))
	}
	switch bits(quads[0] ^ quads[1]) {
	case 1:
		return FourSmallCellsEdge, nil
	case 2:
		return FourSmallCellsDiag, nil
	}
	return NoHangingNode, chk.Err("cannot determine relative position of refined neighbours")
}

// CheckElementNumber checks whether the number of cells of an interaction volume is supported
// by the reconstruction of velocities
func CheckElementNumber(gndim int, topo Topology, n int) error {
	if gndim == 2 && topo != Regular && n != 3 && n != 4 {
		return chk.Err("interaction volumes of type %v with %d elements are not implemented", topo, n)
	}
	return nil
}

// Octant returns the octant (0..7) of a cell center relative to a vertex
func Octant(center, vertex []float64) (o int) {
	for k := 0; k < len(center) && k < 3; k++ {
		if center[k] > vertex[k] {
			o |= 1 << uint(k)
		}
	}
	return
}

// FaceBetween returns the face index between two octants; -1 if they are not adjacent
func FaceBetween(a, b int) int {
	d := a ^ b
	axis := -1
	switch d {
	case 1:
		axis = 0
	case 2:
		axis = 1
	case 4:
		axis = 2
	default:
		return -1
	}
	p, n := 0, 0
	for k := 0; k < 3; k++ {
		if k == axis {
			continue
		}
		p |= ((a >> uint(k)) & 1) << uint(n)
		n++
	}
	return 4*axis + p
}

// CanonicalElem maps a local element index under reference octant ref to the canonical one
func CanonicalElem(ref, local int) int {
	checkRange("element", ref, local, 8)
	return ElemPerm[ref][local]
}

// CanonicalFace maps a local face index under reference octant ref to the canonical one
func CanonicalFace(ref, local int) int {
	checkRange("face", ref, local, 12)
	return FacePerm[ref][local]
}

// CanonicalEdge maps a local edge index under reference octant ref to the canonical one
func CanonicalEdge(ref, local int) int {
	checkRange("edge", ref, local, 6)
	return EdgePerm[ref][local]
}

func checkRange(what string, ref, local, n int) {
	if ref < 0 || ref > 7 || local < 0 || local >= n {
		chk.Panic("cannot map %s %d with reference octant %d", what, local, ref)
	}
}

func bits(v int) (n int) {
	for ; v > 0; v >>= 1 {
		n += v & 1
	}
	return
}
