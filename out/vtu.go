// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes results of finite volume simulations for visualisation
package out

import (
	"bytes"
	goio "io"
	"os"
	"path/filepath"
	"sort"

	"github.com/m-giraud/dumux3.0-sub000/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// VtkCodes maps cell types to VTK cell types
var VtkCodes = map[string]int{
	"lin2": 3,
	"tri3": 5,
	"qua4": 9,
	"tet4": 10,
	"hex8": 12,
}

// Vtu writes the mesh and results at cells in VTK unstructured grid format
//  cdata -- maps key to values at cells; e.g. "p0" => pressures
func Vtu(w goio.Writer, msh *inp.Mesh, cdata map[string][]float64) (err error) {

	// check
	for key, vals := range cdata {
		if len(vals) != len(msh.Cells) {
			return chk.Err("number of values of %q (%d) must equal the number of cells (%d)", key, len(vals), len(msh.Cells))
		}
	}

	// buffers
	var hdr, geo, dat, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(msh.Verts), len(msh.Cells))
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	err = topology(&geo, msh)
	if err != nil {
		return
	}
	cdataWrite(&dat, msh, cdata)

	// write
	for _, buf := range []*bytes.Buffer{&hdr, &geo, &dat, &foo} {
		_, err = w.Write(buf.Bytes())
		if err != nil {
			return
		}
	}
	return
}

// SaveVtu saves a .vtu file in dirout
func SaveVtu(dirout, fnkey string, msh *inp.Mesh, cdata map[string][]float64, verbose bool) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".vtu")
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	err = Vtu(fil, msh, cdata)
	if err == nil && verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func topology(buf *bytes.Buffer, msh *inp.Mesh) (err error) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		var x [3]float64
		copy(x[:], v.C)
		io.Ff(buf, "%23.15e %23.15e %23.15e ", x[0], x[1], x[2])
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		for _, v := range c.Verts {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range msh.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		code, ok := VtkCodes[c.Type]
		if !ok {
			return chk.Err("cannot handle cell type %q", c.Type)
		}
		io.Ff(buf, "%d ", code)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
	return
}

// cells data //////////////////////////////////////////////////////////////////////////////////////

func cdataWrite(buf *bytes.Buffer, msh *inp.Mesh, cdata map[string][]float64) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids, positive tags and levels
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"level\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", c.Level)
	}
	io.Ff(buf, "\n</DataArray>\n")

	// results; sorted for reproducible files
	keys := make([]string, 0, len(cdata))
	for key := range cdata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", key)
		for _, v := range cdata[key] {
			io.Ff(buf, "%23.15e ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")
	}

	// close
	io.Ff(buf, "</CellData>\n")
}

func iabs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
