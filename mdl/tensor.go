// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl holds helpers shared by the material models
package mdl

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// TensorKeys returns the parameter names of the components of a symmetric tensor
//  Example: name="k", ndim=2 => kx, ky, kxy
func TensorKeys(name string, ndim int) (diag, offd []string) {
	switch ndim {
	case 1:
		diag = []string{name + "x"}
	case 2:
		diag = []string{name + "x", name + "y"}
		offd = []string{name + "xy"}
	default:
		diag = []string{name + "x", name + "y", name + "z"}
		offd = []string{name + "xy", name + "yz", name + "xz"}
	}
	return
}

// TensorFromPrms builds a symmetric tensor either from the isotropic parameter
// "name" or from the components "name"+{x,y,z,xy,yz,xz}
func TensorFromPrms(ndim int, prms dbf.Params, name string) (ten [][]float64, err error) {
	ten = utl.Alloc(ndim, ndim)
	diag, offd := TensorKeys(name, ndim)
	values, found := prms.GetValues(diag)
	if !utl.AllTrue(found) {
		p := prms.Find(name)
		if p == nil {
			return nil, chk.Err("either %q (isotropic) or %v must be given in database of material parameters", name, diag)
		}
		for i := 0; i < ndim; i++ {
			ten[i][i] = p.V
		}
		return
	}
	for i := 0; i < ndim; i++ {
		ten[i][i] = values[i]
	}
	for k, key := range offd {
		p := prms.Find(key)
		if p == nil {
			continue
		}
		i, j := OffdIndices(k)
		ten[i][j], ten[j][i] = p.V, p.V
	}
	return
}

// IsTensorKey tells whether a parameter name belongs to the tensor named "name"
func IsTensorKey(key, name string) bool {
	key = strings.ToLower(key)
	if key == name {
		return true
	}
	if !strings.HasPrefix(key, name) {
		return false
	}
	switch strings.TrimPrefix(key, name) {
	case "x", "y", "z", "xy", "yz", "xz":
		return true
	}
	return false
}

// Scale sets res := α·a
func Scale(res [][]float64, α float64, a [][]float64) {
	for i := range a {
		for j := range a[i] {
			res[i][j] = α * a[i][j]
		}
	}
}

// OffdIndices returns the (i,j) position of the k-th off-diagonal component xy, yz, xz
func OffdIndices(k int) (i, j int) {
	switch k {
	case 0:
		return 0, 1
	case 1:
		return 1, 2
	}
	return 0, 2
}
