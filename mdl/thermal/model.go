// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements models for the effective thermal conductivity tensor
package thermal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines thermal conductivity models
type Model interface {
	Init(ndim int, prms dbf.Params) error               // Init initialises this structure
	GetPrms(example bool) dbf.Params                    // gets (an example) of parameters
	Lten(lten [][]float64, phi float64, sats []float64) // Lten computes the effective conductivity given porosity and saturations
}

// New thermal conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermal' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
