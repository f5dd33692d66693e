// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem solves the incompressible Navier-Stokes equations with the
// finite element method, marching in time with a three-stage
// pressure-correction (projection) scheme
package fem

import (
	"path/filepath"
	"time"

	"github.com/cpmech/goflow/ana"
	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation
type Main struct {

	// essential
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // record of output times and deviations
	Domains []*Domain       // all domains

	// stage dependent
	Steppers []*Stepper // one time stepper per domain
	States   []*State   // current state of each domain

	// control
	Verbose bool // show messages
	outidx  int  // index of next results file
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
//   goroutineId -- id of goroutine to avoid race problems
func NewMain(simfilepath string, erasePrev, verbose bool, goroutineId int) (o *Main, err error) {
	o = new(Main)
	o.Sim, err = inp.ReadSim(filepath.Dir(simfilepath), filepath.Base(simfilepath), erasePrev, goroutineId)
	if err != nil {
		return nil, err
	}
	o.Summary = new(Summary)
	o.Summary.Dirout = o.Sim.DirOut
	o.Summary.Fnkey = o.Sim.Key
	o.Domains = NewDomains(o.Sim)
	o.Verbose = verbose
	return
}

// Run solves all stages and saves the summary
func (o *Main) Run() (err error) {

	// loop over stages
	cputime := time.Now()
	for stgidx := range o.Sim.Stages {
		err = o.RunStage(stgidx)
		if err != nil {
			return chk.Err("simulation stage %d failed:\n%v", stgidx, err)
		}
	}

	// message
	if o.Verbose {
		io.Pf("\n")
		if len(o.States) > 0 {
			io.Pf("final time = %v\n", o.States[0].T)
		}
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}

	// save summary
	return o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Verbose)
}

// RunStage sets one stage up and runs its time loop, from rest at t=0 to
// t=Tf, saving results at every DtOut interval. Results files and deviation
// diagnostics refer to the first domain.
//  Input:
//   stgidx -- stage index (in o.Sim.Stages)
func (o *Main) RunStage(stgidx int) (err error) {

	// set stage in all domains
	stg := o.Sim.Stages[stgidx]
	if o.Verbose {
		io.Pf("\n")
		io.PfYel("solving stage # %d: %s\n", stgidx, stg.Desc)
	}
	for _, d := range o.Domains {
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
	}

	// allocate steppers and initial states
	o.Steppers = make([]*Stepper, len(o.Domains))
	o.States = make([]*State, len(o.Domains))
	defer func() {
		for _, stp := range o.Steppers {
			if stp != nil {
				stp.Free()
			}
		}
	}()
	dt := stg.Control.Dt
	for i, d := range o.Domains {
		o.Steppers[i], err = NewStepper(d, dt)
		if err != nil {
			return
		}
		o.States[i] = d.NewState()
	}

	// reference solution for deviation reporting
	var ref *ana.Poiseuille
	if o.Sim.Data.RefSol == "poiseuille" {
		prms := o.Sim.Fluid.GetPrms()
		if fbc := stg.GetFaceBc(-10); fbc != nil {
			for j, key := range fbc.Keys {
				if key == "p" {
					prms = append(prms, &dbf.P{N: "pin", V: fbc.Values[j]})
				}
			}
		}
		if fbc := stg.GetFaceBc(-11); fbc != nil {
			for j, key := range fbc.Keys {
				if key == "p" {
					prms = append(prms, &dbf.P{N: "pout", V: fbc.Values[j]})
				}
			}
		}
		msh := o.Domains[0].Msh
		prms = append(prms, &dbf.P{N: "L", V: msh.Xmax - msh.Xmin})
		prms = append(prms, &dbf.P{N: "H", V: msh.Ymax - msh.Ymin})
		ref = new(ana.Poiseuille)
		ref.Init(prms)
	}

	// function to save results of first domain
	output := func() (e error) {
		e = SaveState(o.States[0], o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.outidx, o.Verbose)
		if e != nil {
			return
		}
		o.Summary.OutTimes = append(o.Summary.OutTimes, o.States[0].T)
		o.outidx++
		return
	}

	// save initial state
	err = output()
	if err != nil {
		return
	}

	// time loop
	nout := int(stg.Control.DtOut/dt + 0.5)
	for n := 0; n < stg.Control.NSteps; n++ {

		// advance all domains by one time step
		for i, stp := range o.Steppers {
			o.States[i], err = stp.Step(o.States[i])
			if err != nil {
				return chk.Err("time step %d failed:\n%v", n+1, err)
			}
		}
		t := o.States[0].T

		// deviation with respect to reference solution
		if ref != nil {
			dev := ref.MaxNodalDiff(o.Domains[0].Msh, o.States[0].U)
			o.Summary.ErrTimes = append(o.Summary.ErrTimes, t)
			o.Summary.Errors = append(o.Summary.Errors, dev)
			if o.Verbose && o.Sim.Data.ShowT {
				io.Pf("t=%13.7f  max|ux-ana|=%13.8e\n", t, dev)
			}
		} else if o.Verbose && o.Sim.Data.ShowT {
			io.PfWhite("%30.15f\r", t)
		}

		// output
		if (n+1)%nout == 0 || n == stg.Control.NSteps-1 {
			err = output()
			if err != nil {
				return
			}
		}
	}
	return
}
