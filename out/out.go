// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the loading and post-processing of results saved by
// flow simulations: profiles along lines, time series, plots and ParaView files
package out

import (
	"math"

	"github.com/cpmech/goflow/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/utl"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y coordinates
	TolT = 1e-3 // tolerance to compare times
	Ndiv = 20   // bins n-division
)

// Global variables
var (

	// data set by Start
	Analysis *fem.Main    // the simulation structure
	Sum      *fem.Summary // summary with output times and deviations
	Dom      *fem.Domain  // domain of selected region
	NodBins  gm.Bins      // bins for locating vertices

	// results loaded by LoadResults
	TimeInds []int        // selected output indices
	Times    []float64    // selected output times
	States   []*fem.State // loaded states, one per selected output time
)

// Start starts the handling of results given a simulation input file. The
// results must have been saved by a previous run with the same input file
func Start(simfnpath string, stageIdx, regionIdx int) (err error) {

	// input data and domain
	Analysis, err = fem.NewMain(simfnpath, false, false, 0)
	if err != nil {
		return chk.Err("cannot allocate analysis structure:\n%v", err)
	}
	Dom = Analysis.Domains[regionIdx]
	err = Dom.SetStage(stageIdx)
	if err != nil {
		return chk.Err("cannot set stage:\n%v", err)
	}

	// summary of previous simulation
	Sum, err = fem.ReadSum(Analysis.Sim.DirOut, Analysis.Sim.Key, Analysis.Sim.EncType)
	if err != nil {
		return chk.Err("cannot read summary:\n%v", err)
	}
	Analysis.Summary = Sum

	// clear previous data
	TimeInds = nil
	Times = nil
	States = nil

	// bins
	m := Dom.Msh
	δ := TolC * 2
	xi := []float64{m.Xmin - δ, m.Ymin - δ}
	xf := []float64{m.Xmax + δ, m.Ymax + δ}
	NodBins.Init(xi, xf, []int{Ndiv, Ndiv})
	for _, nod := range Dom.Nodes {
		NodBins.Append(nod.Vert.C, nod.Vert.Id, nil)
	}
	return
}

// LoadResults loads the saved states corresponding to the selected times
//  times -- selected output times; nil means all available times
func LoadResults(times []float64) (err error) {

	// selected output times and indices
	TimeInds, Times = nil, nil
	if times == nil {
		TimeInds = utl.IntRange(len(Sum.OutTimes))
		Times = Sum.OutTimes
	} else {
		for _, t := range times {
			found := false
			for i, tout := range Sum.OutTimes {
				if math.Abs(t-tout) < TolT {
					TimeInds = append(TimeInds, i)
					Times = append(Times, tout)
					found = true
					break
				}
			}
			if !found {
				return chk.Err("cannot find output time corresponding to t=%g", t)
			}
		}
	}

	// read states
	States = make([]*fem.State, len(TimeInds))
	for i, tidx := range TimeInds {
		States[i], err = fem.ReadState(Analysis.Sim.DirOut, Analysis.Sim.Key, Analysis.Sim.EncType, tidx)
		if err != nil {
			return chk.Err("cannot read state # %d:\n%v", tidx, err)
		}
		if len(States[i].U) != Dom.Nu || len(States[i].P) != Dom.Np {
			return chk.Err("inconsistency detected: results and simulation file do not match")
		}
	}
	return
}

// GetRes returns the time series of one dof key at one vertex, over all
// loaded output times
//  key -- "ux", "uy" or "p"
func GetRes(key string, vid int) (vals []float64, err error) {
	if vid < 0 || vid >= len(Dom.Msh.Verts) {
		return nil, chk.Err("vertex id %d is out of range", vid)
	}
	vals = make([]float64, len(States))
	for i, sta := range States {
		switch key {
		case "ux":
			vals[i] = sta.U[2*vid]
		case "uy":
			vals[i] = sta.U[2*vid+1]
		case "p":
			vals[i] = sta.P[vid]
		default:
			return nil, chk.Err("key %q is invalid", key)
		}
	}
	return
}

// ErrorHistory returns the per-step deviation from the reference solution,
// as recorded in the summary. Empty if the simulation had no reference
func ErrorHistory() (times, devs []float64) {
	return Sum.ErrTimes, Sum.Errors
}

// Profile extracts the distance-value pairs of one dof key along a line, at
// one loaded output time. Distances are measured from the first vertex found
//  idx -- index in Times; use -1 for the last loaded time
func Profile(key string, loc Locator, idx int) (dist, vals []float64, err error) {
	if len(States) < 1 {
		return nil, nil, chk.Err("results must be loaded first")
	}
	if idx < 0 {
		idx = len(States) - 1
	}
	vids := loc.Locate()
	if len(vids) < 1 {
		return nil, nil, chk.Err("cannot find vertices with locator %v", loc)
	}
	sta := States[idx]
	x0 := Dom.Msh.Verts[vids[0]].C
	for _, vid := range vids {
		c := Dom.Msh.Verts[vid].C
		dist = append(dist, math.Sqrt((c[0]-x0[0])*(c[0]-x0[0])+(c[1]-x0[1])*(c[1]-x0[1])))
		switch key {
		case "ux":
			vals = append(vals, sta.U[2*vid])
		case "uy":
			vals = append(vals, sta.U[2*vid+1])
		case "p":
			vals = append(vals, sta.P[vid])
		default:
			return nil, nil, chk.Err("key %q is invalid", key)
		}
	}
	return
}
