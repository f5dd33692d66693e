// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records the output times and the deviation history of a simulation
type Summary struct {
	Dirout   string    // directory where results are stored
	Fnkey    string    // filename key of simulation
	OutTimes []float64 // [noutput] times corresponding to saved states
	ErrTimes []float64 // [nsteps] times corresponding to Errors
	Errors   []float64 // [nsteps] maximum nodal deviation from the reference solution, per step; empty if the simulation has no reference solution
}

// Save saves summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {
	o.Dirout = dirout
	o.Fnkey = fnkey
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return save_file(out_sum_path(dirout, fnkey, enctype), &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dirout, fnkey, enctype string) (o *Summary, err error) {
	fn := out_sum_path(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file:\n%v", err)
	}
	defer fil.Close()
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dirout, fnkey, enctype string) string {
	return path.Join(dirout, io.Sf("%s_sum.%s", fnkey, enctype))
}
