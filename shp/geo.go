// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// constants
const MINVOL = 1.0e-14 // minimum volume/area allowed for cells and facets

// Center returns the average of a set of points
//  Input:
//   x[npts][ndim] -- coordinates
func Center(x [][]float64) (c []float64) {
	if len(x) == 0 {
		return
	}
	c = make([]float64, len(x[0]))
	for _, p := range x {
		floats.Add(c, p)
	}
	floats.Scale(1.0/float64(len(x)), c)
	return
}

// CellVolume returns the volume (length in 1D and area in 2D) of a cell
//  Input:
//   x[nverts][ndim] -- coordinates of cell vertices
func CellVolume(s *Shape, x [][]float64) (vol float64, err error) {
	switch s.Gndim {
	case 1:
		vol = floats.Distance(x[0], x[1], 2)
	case 2:
		vol = PolygonArea(x)
	case 3:
		c := Center(x)
		for _, lverts := range s.FaceLocalVerts {
			pts := make([][]float64, len(lverts))
			for i, m := range lverts {
				pts[i] = x[m]
			}
			fc := Center(pts)
			n := len(pts)
			for i := 0; i < n; i++ {
				vol += tetVolume(c, fc, pts[i], pts[(i+1)%n])
			}
		}
	default:
		return 0, chk.Err("cannot compute volume of cell with gndim=%d", s.Gndim)
	}
	if vol < MINVOL {
		return 0, chk.Err("cell %q has zero volume (vol=%g)", s.Type, vol)
	}
	return
}

// PolygonArea returns the area of a convex polygon given in cyclic order.
// A segment returns its length and a single point returns 1.
func PolygonArea(pts [][]float64) (area float64) {
	switch len(pts) {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return floats.Distance(pts[0], pts[1], 2)
	}
	c := Center(pts)
	n := len(pts)
	for i := 0; i < n; i++ {
		area += TriangleArea(c, pts[i], pts[(i+1)%n])
	}
	return
}

// SubFaceArea returns the portion of a facet attached to its k-th vertex.
// Polygons are split by the facet center and the edge midpoints.
func SubFaceArea(pts [][]float64, k int) float64 {
	n := len(pts)
	switch n {
	case 1:
		return 1
	case 2:
		return 0.5 * floats.Distance(pts[0], pts[1], 2)
	}
	c := Center(pts)
	mnext := midpoint(pts[k], pts[(k+1)%n])
	mprev := midpoint(pts[k], pts[(k+n-1)%n])
	return TriangleArea(pts[k], mnext, c) + TriangleArea(pts[k], c, mprev)
}

// FacetNormal returns the unit normal of a facet pointing away from the cell center
//  Input:
//   pts[npts][ndim] -- facet vertices (1 point, 1 segment or a polygon in 3D)
//   cc[ndim]        -- cell center
func FacetNormal(pts [][]float64, cc []float64) (n []float64, err error) {
	ndim := len(cc)
	fc := Center(pts)
	v := make([]float64, ndim)
	floats.SubTo(v, fc, cc)
	switch len(pts) {
	case 1:
		n = v
	case 2:
		d := make([]float64, ndim)
		floats.SubTo(d, pts[1], pts[0])
		dd := floats.Dot(d, d)
		if dd < MINVOL {
			return nil, chk.Err("facet has zero length")
		}
		n = make([]float64, ndim)
		floats.AddScaledTo(n, v, -floats.Dot(v, d)/dd, d)
	default:
		if ndim != 3 {
			return nil, chk.Err("polygonal facets require ndim=3. ndim=%d is invalid", ndim)
		}
		n = make([]float64, 3)
		m := len(pts)
		for i := 0; i < m; i++ { // Newell's method
			a, b := pts[i], pts[(i+1)%m]
			n[0] += (a[1] - b[1]) * (a[2] + b[2])
			n[1] += (a[2] - b[2]) * (a[0] + b[0])
			n[2] += (a[0] - b[0]) * (a[1] + b[1])
		}
		if floats.Dot(n, v) < 0 {
			floats.Scale(-1, n)
		}
	}
	norm := floats.Norm(n, 2)
	if norm < MINVOL {
		return nil, chk.Err("cannot compute normal of degenerate facet")
	}
	floats.Scale(1.0/norm, n)
	return
}

// TriangleArea returns the area of triangle (a,b,c) in 2D or 3D
func TriangleArea(a, b, c []float64) float64 {
	u := make([]float64, 3)
	w := make([]float64, 3)
	for i := 0; i < len(a); i++ {
		u[i] = b[i] - a[i]
		w[i] = c[i] - a[i]
	}
	return 0.5 * floats.Norm(Cross(u, w), 2)
}

// Cross returns the cross product of two 3D vectors
func Cross(u, w []float64) []float64 {
	return []float64{
		u[1]*w[2] - u[2]*w[1],
		u[2]*w[0] - u[0]*w[2],
		u[0]*w[1] - u[1]*w[0],
	}
}

// tetVolume returns the (unsigned) volume of tetrahedron (a,b,c,d)
func tetVolume(a, b, c, d []float64) float64 {
	u := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := []float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	w := []float64{d[0] - a[0], d[1] - a[1], d[2] - a[2]}
	return math.Abs(floats.Dot(u, Cross(v, w))) / 6.0
}

func midpoint(a, b []float64) []float64 {
	m := make([]float64, len(a))
	floats.AddTo(m, a, b)
	floats.Scale(0.5, m)
	return m
}
