// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_tensor01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("tensor01")

	ten, err := TensorFromPrms(2, dbf.Params{&dbf.P{N: "k", V: 3}}, "k")
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Deep2(tst, "iso", 1e-15, ten, [][]float64{{3, 0}, {0, 3}})

	ten, err = TensorFromPrms(3, dbf.Params{
		&dbf.P{N: "kx", V: 1},
		&dbf.P{N: "ky", V: 2},
		&dbf.P{N: "kz", V: 3},
		&dbf.P{N: "kxz", V: 0.5},
	}, "k")
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Deep2(tst, "aniso", 1e-15, ten, [][]float64{{1, 0, 0.5}, {0, 2, 0}, {0.5, 0, 3}})

	_, err = TensorFromPrms(2, dbf.Params{&dbf.P{N: "kx", V: 1}}, "k")
	if err == nil {
		tst.Errorf("incomplete tensor must fail")
	}

	if !IsTensorKey("Kxy", "k") || IsTensorKey("kw", "k") || !IsTensorKey("lam", "lam") {
		tst.Errorf("IsTensorKey failed")
	}
}
