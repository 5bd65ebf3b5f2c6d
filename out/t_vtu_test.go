// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-giraud/dumux3.0-sub000/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vtu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vtu01. quadrilaterals and hexahedra")

	msh, err := inp.GenQuads(2, 1, 2, 1)
	require.NoError(tst, err)
	var buf bytes.Buffer
	require.NoError(tst, Vtu(&buf, msh, map[string][]float64{"p0": {1, 2}, "T": {3, 4}}))
	res := buf.String()
	assert.Contains(tst, res, "NumberOfPoints=\"6\" NumberOfCells=\"2\"")
	assert.Contains(tst, res, "0 1 4 3 1 2 5 4 ")
	assert.Contains(tst, res, "4 8 ")
	assert.Contains(tst, res, "9 9 ")
	assert.Less(tst, strings.Index(res, "Name=\"T\""), strings.Index(res, "Name=\"p0\""))
	assert.True(tst, strings.HasSuffix(res, "</VTKFile>\n"))

	require.Error(tst, Vtu(&buf, msh, map[string][]float64{"p0": {1}}))
	msh.Cells[0].Type = "qua8"
	require.Error(tst, Vtu(&buf, msh, nil))

	msh, err = inp.GenHexs(1, 1, 1, 1, 1, 1)
	require.NoError(tst, err)
	dirout := tst.TempDir()
	require.NoError(tst, SaveVtu(dirout, "hex", msh, nil, chk.Verbose))
	b, err := os.ReadFile(filepath.Join(dirout, "hex.vtu"))
	require.NoError(tst, err)
	assert.Contains(tst, string(b), "NumberOfPoints=\"8\" NumberOfCells=\"1\"")
	assert.Contains(tst, string(b), ">\n12 \n<")
}
