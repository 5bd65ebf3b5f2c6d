// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_relperm01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("relperm01")

	lin, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = lin.Init(dbf.Params{&dbf.P{N: "sr", V: 0.2}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kr(0.1)", 1e-15, lin.Kr(0.1), 0)
	chk.Float64(tst, "kr(0.6)", 1e-15, lin.Kr(0.6), 0.5)
	chk.Float64(tst, "kr(1.2)", 1e-15, lin.Kr(1.2), 1)

	pow, err := New("pow")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = pow.Init(dbf.Params{&dbf.P{N: "n", V: 2}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kr(0.5)", 1e-15, pow.Kr(0.5), 0.25)
	chk.Float64(tst, "kr(1)", 1e-15, pow.Kr(1), 1)
}
