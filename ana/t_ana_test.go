// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_channel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("channel01. incompressible and compressible")

	var sol Channel
	require.NoError(tst, sol.Init(dbf.Params{&dbf.P{N: "L", V: 2}, &dbf.P{N: "k", V: 3}}))
	chk.Float64(tst, "p(0)", 1e-15, sol.Pressure(0), 1)
	chk.Float64(tst, "p(1)", 1e-15, sol.Pressure(1), 0.5)
	chk.Float64(tst, "p(L)", 1e-15, sol.Pressure(2), 0)
	chk.Float64(tst, "q", 1e-15, sol.MassFlux(), 1.5)

	require.NoError(tst, sol.Init(dbf.Params{&dbf.P{N: "L", V: 1.5}, &dbf.P{N: "cf", V: 0.5}}))
	chk.Float64(tst, "p(0)", 1e-15, sol.Pressure(0), 1)
	chk.Float64(tst, "p(L)", 1e-15, sol.Pressure(1.5), 0)

	// mass flux is constant: -ρ・k/μ・dp/dx
	h := 1e-6
	for _, x := range []float64{0.1, 0.75, 1.4} {
		dpdx := (sol.Pressure(x+h) - sol.Pressure(x-h)) / (2 * h)
		chk.Float64(tst, io.Sf("q(%g)", x), 1e-8, -sol.Density(sol.Pressure(x))*dpdx, sol.MassFlux())
	}

	// tiny compressibility approaches the linear solution
	require.NoError(tst, sol.Init(dbf.Params{&dbf.P{N: "cf", V: 1e-6}}))
	chk.Float64(tst, "p(0.3)", 1e-6, sol.Pressure(0.3), 0.7)
	chk.Float64(tst, "q", 1e-6, sol.MassFlux(), 1)

	e := sol.CompareP([][]float64{{0.3, 0}, {0.6, 1}}, []float64{0.7, 0.5}, 1e-6, chk.Verbose)
	chk.Float64(tst, "e0", 1e-6, e[0], 0)
	chk.Float64(tst, "e1", 1e-6, e[1], 0.1)

	require.Error(tst, sol.Init(dbf.Params{&dbf.P{N: "E", V: 1}}))
	require.Error(tst, sol.Init(dbf.Params{&dbf.P{N: "mu", V: 0}}))
}
