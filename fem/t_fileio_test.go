// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_fio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fio01. state files")

	dirout := "/tmp/goflow/tests"
	err := os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create directory:\n%v", err)
		return
	}

	sta := &State{
		T: 0.5,
		U: la.Vector{0, 0.25, -1.5, 3e-8, 123.456, 0.1},
		P: la.Vector{1, 0.75, 0.5},
	}
	for _, enctype := range []string{"gob", "json"} {
		err = SaveState(sta, dirout, "fio01", enctype, 3, chk.Verbose)
		if err != nil {
			tst.Errorf("SaveState failed:\n%v", err)
			return
		}
		res, err := ReadState(dirout, "fio01", enctype, 3)
		if err != nil {
			tst.Errorf("ReadState failed:\n%v", err)
			return
		}
		chk.Float64(tst, "t   ("+enctype+")", 1e-17, res.T, sta.T)
		chk.Array(tst, "u   ("+enctype+")", 1e-17, res.U, sta.U)
		chk.Array(tst, "p   ("+enctype+")", 1e-17, res.P, sta.P)
	}

	// missing file
	_, err = ReadState(dirout, "fio01", "gob", 4)
	if err == nil {
		tst.Errorf("ReadState must fail with inexistent time index")
	}
}

func Test_fio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fio02. summary files")

	dirout := "/tmp/goflow/tests"
	err := os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Errorf("cannot create directory:\n%v", err)
		return
	}

	sum := &Summary{
		Dirout:   dirout,
		Fnkey:    "fio02",
		OutTimes: []float64{0, 0.5, 1},
		ErrTimes: []float64{0.25, 0.5, 0.75, 1},
		Errors:   []float64{0.2, 0.1, 0.05, 0.025},
	}
	for _, enctype := range []string{"gob", "json"} {
		err = sum.Save(dirout, "fio02", enctype, chk.Verbose)
		if err != nil {
			tst.Errorf("Save failed:\n%v", err)
			return
		}
		res, err := ReadSum(dirout, "fio02", enctype)
		if err != nil {
			tst.Errorf("ReadSum failed:\n%v", err)
			return
		}
		chk.String(tst, res.Fnkey, sum.Fnkey)
		chk.Array(tst, "output times ("+enctype+")", 1e-17, res.OutTimes, sum.OutTimes)
		chk.Array(tst, "error times  ("+enctype+")", 1e-17, res.ErrTimes, sum.ErrTimes)
		chk.Array(tst, "errors       ("+enctype+")", 1e-17, res.Errors, sum.Errors)
	}
}
