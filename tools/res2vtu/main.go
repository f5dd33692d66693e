// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Res2vtu converts the results saved by a flow simulation into ParaView
// (vtu) files, one for each output time
package main

import (
	"github.com/cpmech/goflow/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input arguments
	simfnpath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename path", "simfnpath", simfnpath,
	))

	// load results
	err := out.Start(simfnpath, 0, 0)
	if err != nil {
		chk.Panic("cannot start post-processing:\n%v", err)
	}
	err = out.LoadResults(nil)
	if err != nil {
		chk.Panic("cannot load results:\n%v", err)
	}

	// write one file per output time
	dirout := out.Analysis.Sim.DirOut
	for i, tidx := range out.TimeInds {
		err = out.WriteVtu(dirout, fnkey, tidx, out.States[i])
		if err != nil {
			chk.Panic("cannot write vtu file:\n%v", err)
		}
		io.Pf("t = %10g => vtu file # %d written\n", out.Times[i], tidx)
	}
	io.Pfblue2("%d vtu files written to %s\n", len(out.TimeInds), dirout)
}
