// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

// Numbering around a vertex shared by eight hexahedra
//
//   octant  o = bx + 2・by + 4・bz    with    b = 1 if cellCenter > vertex along that axis
//   face    f = 4・axis + p           between octants differing only along axis; p packs the
//                                     two remaining bits in increasing axis order
//   edge    e = 2・axis + d           half-axis leaving the vertex; d = 1 => positive direction
// Each table maps "local index when the cell in octant ref is numbered first" to the
// canonical index, i.e. the one obtained with the cell in octant 0 numbered first.

// ElemPerm[ref][local] => canonical element (octant)
var ElemPerm = [8][8]int{
	{0, 1, 2, 3, 4, 5, 6, 7}, // ref = 0
	{1, 0, 3, 2, 5, 4, 7, 6}, // ref = 1
	{2, 3, 0, 1, 6, 7, 4, 5}, // ref = 2
	{3, 2, 1, 0, 7, 6, 5, 4}, // ref = 3
	{4, 5, 6, 7, 0, 1, 2, 3}, // ref = 4
	{5, 4, 7, 6, 1, 0, 3, 2}, // ref = 5
	{6, 7, 4, 5, 2, 3, 0, 1}, // ref = 6
	{7, 6, 5, 4, 3, 2, 1, 0}, // ref = 7
}

// FacePerm[ref][local] => canonical face
var FacePerm = [8][12]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, // ref = 0
	{0, 1, 2, 3, 5, 4, 7, 6, 9, 8, 11, 10}, // ref = 1
	{1, 0, 3, 2, 4, 5, 6, 7, 10, 11, 8, 9}, // ref = 2
	{1, 0, 3, 2, 5, 4, 7, 6, 11, 10, 9, 8}, // ref = 3
	{2, 3, 0, 1, 6, 7, 4, 5, 8, 9, 10, 11}, // ref = 4
	{2, 3, 0, 1, 7, 6, 5, 4, 9, 8, 11, 10}, // ref = 5
	{3, 2, 1, 0, 6, 7, 4, 5, 10, 11, 8, 9}, // ref = 6
	{3, 2, 1, 0, 7, 6, 5, 4, 11, 10, 9, 8}, // ref = 7
}

// EdgePerm[ref][local] => canonical edge
var EdgePerm = [8][6]int{
	{0, 1, 2, 3, 4, 5}, // ref = 0
	{1, 0, 2, 3, 4, 5}, // ref = 1
	{0, 1, 3, 2, 4, 5}, // ref = 2
	{1, 0, 3, 2, 4, 5}, // ref = 3
	{0, 1, 2, 3, 5, 4}, // ref = 4
	{1, 0, 2, 3, 5, 4}, // ref = 5
	{0, 1, 3, 2, 5, 4}, // ref = 6
	{1, 0, 3, 2, 5, 4}, // ref = 7
}
