// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records the outcome of a solution
type Summary struct {
	Iterations int       // number of Picard iterations
	Converged  bool      // iterations converged
	Resids     []float64 // max pressure increment of each iteration
	IvSolves   int       // number of interaction volumes solved
	Writes     int       // number of cache entries written
	Pressures  []float64 // [ncells] final pressures (set by Save)
	Fluxes     []float64 // [nscvfs] final fluxes (set by Save)
}

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// SaveSummary saves the summary of the last solution, including pressures and fluxes of the first phase
func (o *Domain) SaveSummary(dirout, enctype string) (err error) {
	if o.Sum == nil {
		return chk.Err("there is no solution to be saved")
	}
	o.Sum.Pressures = o.Pressures(0)
	o.Sum.Fluxes, err = o.FaceFluxes(0)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	err = GetEncoder(&buf, enctype).Encode(o.Sum)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	return saveFile(sumPath(dirout, o.Sim.Key, enctype), &buf, o.Verbose)
}

// ReadSummary reads a summary back
func ReadSummary(dirout, fnkey, enctype string) (o *Summary, err error) {
	fn := sumPath(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file %q:\n%v", fn, err)
	}
	defer fil.Close()
	o = new(Summary)
	err = GetDecoder(fil, enctype).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary file %q:\n%v", fn, err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func sumPath(dir, fnkey, enctype string) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}

func saveFile(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
