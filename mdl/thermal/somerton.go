// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Somerton interpolates between dry and saturated conductivities with the wetting phase saturation
//  λ = λdry + √sw ・ (λwet - λdry)
type Somerton struct {
	ldry float64 // conductivity of the dry medium
	lwet float64 // conductivity of the fully saturated medium
}

// add model to factory
func init() {
	allocators["somerton"] = func() Model { return new(Somerton) }
}

// Init initialises this structure
func (o *Somerton) Init(ndim int, prms dbf.Params) (err error) {
	*o = Somerton{}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ldry":
			o.ldry = p.V
		case "lwet":
			o.lwet = p.V
		default:
			return chk.Err("somerton: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.ldry <= 0 || o.lwet <= 0 {
		return chk.Err("somerton: conductivities must be positive. ldry=%g lwet=%g is invalid", o.ldry, o.lwet)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Somerton) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "ldry", V: 0.58},
			&dbf.P{N: "lwet", V: 1.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "ldry", V: o.ldry},
		&dbf.P{N: "lwet", V: o.lwet},
	}
}

// Lten computes the conductivity tensor; sats[0] is the wetting saturation
func (o Somerton) Lten(lten [][]float64, phi float64, sats []float64) {
	sw := 1.0
	if len(sats) > 0 {
		sw = math.Min(math.Max(sats[0], 0), 1)
	}
	v := o.ldry + math.Sqrt(sw)*(o.lwet-o.ldry)
	for i := range lten {
		for j := range lten[i] {
			lten[i][j] = 0
		}
		lten[i][i] = v
	}
}
