// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_fluid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluid01. init, defaults and validation")

	var mdl Model
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "nu", V: 0.5},
		&dbf.P{N: "rho", V: 2.0},
	})
	if err != nil {
		tst.Errorf("cannot initialise model:\n%v", err)
		return
	}
	io.Pforan("mdl = %+v\n", mdl)
	chk.Float64(tst, "nu", 1e-17, mdl.Nu, 0.5)
	chk.Float64(tst, "rho", 1e-17, mdl.Rho, 2.0)
	chk.Float64(tst, "mu", 1e-17, mdl.Mu(), 1.0)

	// density defaults to 1
	var mdl2 Model
	err = mdl2.Init(dbf.Params{&dbf.P{N: "nu", V: 1e-6}})
	if err != nil {
		tst.Errorf("cannot initialise model:\n%v", err)
		return
	}
	chk.Float64(tst, "rho (default)", 1e-17, mdl2.Rho, 1.0)

	// example parameters
	prms := mdl.GetPrms(true)
	chk.IntAssert(len(prms), 2)
	var mdl3 Model
	err = mdl3.Init(prms)
	if err != nil {
		tst.Errorf("cannot initialise model with example parameters:\n%v", err)
		return
	}
	chk.Float64(tst, "rho (water)", 1e-17, mdl3.Rho, 998.0)
}

func Test_fluid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluid02. error cases")

	var mdl Model
	if err := mdl.Init(dbf.Params{&dbf.P{N: "mu", V: 1}}); err == nil {
		tst.Errorf("error due to wrong parameter name was not raised")
	}
	if err := mdl.Init(dbf.Params{&dbf.P{N: "nu", V: -1}}); err == nil {
		tst.Errorf("error due to negative viscosity was not raised")
	}
	if err := mdl.Init(dbf.Params{&dbf.P{N: "nu", V: 1}, &dbf.P{N: "rho", V: -1}}); err == nil {
		tst.Errorf("error due to negative density was not raised")
	}
}
