// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements reference cell topologies and cell/facet geometry
package shp

import "github.com/cpmech/gosl/utl"

// Shape holds the topology of a reference cell
type Shape struct {
	Type           string  // name; e.g. "qua4"
	FaceType       string  // geometry of facet; e.g. "qua4" => "lin2"
	Gndim          int     // geometry of shape; e.g. "lin2" => gnd == 1 (even in 3D simulations)
	Nverts         int     // number of vertices in cell; e.g. "hex8" => 8
	FaceNvertsMax  int     // max number of vertices on facet
	FaceLocalVerts [][]int // facet local vertices [nfacets][...] (cyclic order for polygons)
}

// Nfaces returns the number of facets
func (o *Shape) Nfaces() int { return len(o.FaceLocalVerts) }

// FacesOfVert returns the local facets containing local vertex m
func (o *Shape) FacesOfVert(m int) (faces []int) {
	for f, lverts := range o.FaceLocalVerts {
		if utl.IntIndexSmall(lverts, m) >= 0 {
			faces = append(faces, f)
		}
	}
	return
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := o
	p.FaceLocalVerts = make([][]int, len(o.FaceLocalVerts))
	for i, lverts := range o.FaceLocalVerts {
		p.FaceLocalVerts[i] = append([]int{}, lverts...)
	}
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: returns nil on errors
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// GetNverts returns the number of vertices of a cell type; -1 if unknown
func GetNverts(geoType string) int {
	if s, ok := factory[geoType]; ok {
		return s.Nverts
	}
	return -1
}

// GetFaceType returns the facet type of a cell type; "" if unknown
func GetFaceType(geoType string) string {
	if s, ok := factory[geoType]; ok {
		return s.FaceType
	}
	return ""
}

// GetFaceLocalVerts returns the local vertices of facet idxface; nil if unknown
func GetFaceLocalVerts(geoType string, idxface int) []int {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if idxface < 0 || idxface >= len(s.FaceLocalVerts) {
		return nil
	}
	return s.FaceLocalVerts[idxface]
}

// register shapes
func init() {

	// 1D: facets are the end points
	factory["lin2"] = &Shape{
		Type:           "lin2",
		FaceType:       "pnt1",
		Gndim:          1,
		Nverts:         2,
		FaceNvertsMax:  1,
		FaceLocalVerts: [][]int{{0}, {1}},
	}

	//        2
	//        |\
	//      2 | \ 1
	//        |  \
	//        0---1
	//          0
	factory["tri3"] = &Shape{
		Type:           "tri3",
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         3,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
	}

	//        3---2---2
	//        |       |
	//        3       1
	//        |       |
	//        0---0---1
	factory["qua4"] = &Shape{
		Type:           "qua4",
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         4,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}

	factory["tet4"] = &Shape{
		Type:           "tet4",
		FaceType:       "tri3",
		Gndim:          3,
		Nverts:         4,
		FaceNvertsMax:  3,
		FaceLocalVerts: [][]int{{0, 3, 2}, {0, 1, 3}, {0, 2, 1}, {1, 2, 3}},
	}

	//              4________________7
	//            ,'|              ,'|
	//          ,'  |            ,'  |
	//        ,'    |          ,'    |
	//      5'===============6'      |
	//      |       |        |       |
	//      |       0________|_______3
	//      |     ,'         |     ,'
	//      |   ,'           |   ,'
	//      | ,'             | ,'
	//      1________________2'
	factory["hex8"] = &Shape{
		Type:           "hex8",
		FaceType:       "qua4",
		Gndim:          3,
		Nverts:         8,
		FaceNvertsMax:  4,
		FaceLocalVerts: [][]int{{0, 4, 7, 3}, {1, 2, 6, 5}, {0, 1, 5, 4}, {2, 3, 7, 6}, {0, 3, 2, 1}, {4, 5, 6, 7}},
	}
}
