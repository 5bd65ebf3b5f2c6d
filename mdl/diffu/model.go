// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffu implements models for the effective molecular diffusion tensor
package diffu

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines diffusion models
type Model interface {
	Init(ndim int, prms dbf.Params) error    // Init initialises this structure
	GetPrms(example bool) dbf.Params         // gets (an example) of parameters
	Dten(dten [][]float64, phi, sat float64) // Dten computes the effective diffusion tensor given porosity and phase saturation
}

// New diffusion model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'diffu' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
