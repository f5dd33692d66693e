// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_poise01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poise01. coarse run with output every step")

	// run simulation
	analysis, err := NewMain("data/flow4.sim", true, chk.Verbose, 0)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// summary: dtout=0 means output after every step
	sum := analysis.Summary
	chk.IntAssert(len(sum.OutTimes), 4)
	chk.Array(tst, "output times", 1e-15, sum.OutTimes, []float64{0, 0.02, 0.04, 0.06})
	chk.IntAssert(len(sum.Errors), 3)
	io.Pforan("deviations = %v\n", sum.Errors)
	if !(sum.Errors[2] < sum.Errors[0]) {
		tst.Errorf("deviation must decrease during start-up: %v", sum.Errors)
		return
	}

	// summary file
	res, err := ReadSum(analysis.Sim.DirOut, analysis.Sim.Key, analysis.Sim.EncType)
	if err != nil {
		tst.Errorf("ReadSum failed:\n%v", err)
		return
	}
	chk.Array(tst, "output times from file", 1e-17, res.OutTimes, sum.OutTimes)
	chk.Array(tst, "deviations from file", 1e-17, res.Errors, sum.Errors)

	// last state file matches the final state in memory
	sta, err := ReadState(analysis.Sim.DirOut, analysis.Sim.Key, analysis.Sim.EncType, 3)
	if err != nil {
		tst.Errorf("ReadState failed:\n%v", err)
		return
	}
	chk.Float64(tst, "t from file", 1e-17, sta.T, analysis.States[0].T)
	chk.Array(tst, "u from file", 1e-17, sta.U, analysis.States[0].U)
	chk.Array(tst, "p from file", 1e-17, sta.P, analysis.States[0].P)
}

func Test_poise02(tst *testing.T) {

	/* plane Poiseuille flow in a unit-square channel, 16x16 mesh
	 *
	 *             ux = uy = 0  (-21)
	 *        +----------------------+
	 *        |                      |
	 *  p = 1 |      --> ux(y)       | p = 0
	 *  (-10) |                      | (-11)
	 *        |                      |
	 *        +----------------------+
	 *             ux = uy = 0  (-20)
	 *
	 * starting from rest, the flow approaches the parabolic profile
	 * ux(y) = G·y·(H-y)/(2ν) with centreline velocity 0.25
	 */

	//verbose()
	chk.PrintTitle("poise02. plane Poiseuille flow")

	// run simulation
	analysis, err := NewMain("data/poiseuille16.sim", true, chk.Verbose, 0)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// summary sizes: 500 steps, output every second plus the initial state
	sum := analysis.Summary
	chk.IntAssert(len(sum.OutTimes), 11)
	chk.IntAssert(len(sum.ErrTimes), 500)
	chk.IntAssert(len(sum.Errors), 500)
	chk.Float64(tst, "final time", 1e-11, analysis.States[0].T, 10.0)

	// the flow starts from rest, thus the first deviation is close to the
	// steady centreline velocity G·H²/(8ν) = 0.25; at the end of the run
	// the start-up transient has decayed below the output resolution
	first, last := sum.Errors[0], sum.Errors[len(sum.Errors)-1]
	io.Pforan("deviation: first=%v t=1:%v last=%v\n", first, sum.Errors[49], last)
	if first < 0.2 || first > 0.26 {
		tst.Errorf("first deviation %g is out of range", first)
		return
	}
	if last > 1e-3 {
		tst.Errorf("final deviation %g is too large", last)
		return
	}
	if first < 10*last {
		tst.Errorf("deviation must decay: first=%g last=%g", first, last)
		return
	}
	if !(last < sum.Errors[49] && sum.Errors[49] < first) {
		tst.Errorf("deviation must decrease: first=%g t=1:%g last=%g", first, sum.Errors[49], last)
		return
	}

	// centre vertex (0.5,0.5): vid = 8·17+8 = 144
	ux := analysis.States[0].U[2*144]
	uy := analysis.States[0].U[2*144+1]
	p := analysis.States[0].P[144]
	io.Pforan("centre: ux=%v uy=%v p=%v\n", ux, uy, p)
	chk.Float64(tst, "centreline ux", 1e-3, ux, 0.25)
	chk.Float64(tst, "centreline uy", 1e-3, uy, 0)
	chk.Float64(tst, "centre p", 1e-3, p, 0.5)
}
