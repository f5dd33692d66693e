// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// StepVars holds the variables of the current time step shared by the three
// solution stages. U0 and P0 alias the vectors of the committed state and
// must not be modified; Ut and Pnew are filled by the stepper as the stages
// are completed
type StepVars struct {
	Dt   float64   // time step size
	U0   la.Vector // [nu] velocity at the beginning of the step
	P0   la.Vector // [np] pressure at the beginning of the step
	Ut   la.Vector // [nu] tentative velocity, after the first stage
	Pnew la.Vector // [np] updated pressure, after the second stage
}

// Elem defines what elements must compute for the three stages of the
// pressure-correction scheme. The stage matrices A1, A2 and A3 do not change
// during a stage and are assembled only once; the right-hand side vectors are
// rebuilt at every time step
type Elem interface {

	// information and initialisation
	Id() int                                 // returns the cell Id
	SetEqs(eqs [][]int) (err error)          // set equation numbers of each vertex
	SetBcs(ubcs, pbcs *EssentialBcs)         // set prescribed-equation structures
	SetEleConds(key string, v float64) (err error) // set element conditions; e.g. body forces

	// matrices (assembled and factorised once)
	AddToA1(tr *la.Triplet, dt float64) (err error) // adds element matrix to tentative-velocity system
	AddToA2(tr *la.Triplet) (err error)             // adds element matrix to pressure-correction system
	AddToA3(tr *la.Triplet) (err error)             // adds element mass matrix to velocity-update system

	// right-hand sides (rebuilt at every time step)
	AddToB1(b la.Vector, sv *StepVars) (err error) // adds element vector to tentative-velocity system
	AddToB2(b la.Vector, sv *StepVars) (err error) // adds element vector to pressure-correction system
	AddToB3(b la.Vector, sv *StepVars) (err error) // adds element vector to velocity-update system
}

// Info holds all information required to set a simulation stage
type Info struct {

	// essential
	Dofs [][]string // solution variables PER NODE. ex for 3 nodes: [["ux", "uy", "p"], ["ux", "uy", "p"], ["ux", "uy", "p"]]

	// u and p variables (the two equation systems)
	Uvars []string // dof keys numbered in the velocity system; e.g. "ux", "uy"
	Pvars []string // dof keys numbered in the pressure system; e.g. "p"
}

// GetElemInfo returns information about elements/formulations
func GetElemInfo(cell *inp.Cell, reg *inp.Region, sim *inp.Simulation) (info *Info, err error) {
	edat := reg.Etag2data(cell.Tag)
	if edat == nil {
		err = chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
		return
	}
	infogetter, ok := infogetters[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
		return
	}
	info = infogetter(sim, cell, edat)
	if info == nil {
		err = chk.Err("info for element {type=%q, tag=%d, id=%d} is not available", edat.Type, cell.Tag, cell.Id)
	}
	return
}

// NewElem returns a new element from its type; e.g. "flow"
func NewElem(cell *inp.Cell, reg *inp.Region, sim *inp.Simulation) (ele Elem, err error) {
	edat := reg.Etag2data(cell.Tag)
	if edat == nil {
		err = chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
		return
	}
	allocator, ok := eallocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
		return
	}
	x := reg.Msh.ExtractCoords(cell.Id)
	ele = allocator(sim, cell, edat, x)
	if ele == nil {
		err = chk.Err("element {type=%q, tag=%d, id=%d} is not available", edat.Type, cell.Tag, cell.Id)
	}
	return
}

// infogetters holds all available formulations/info; elemType => infogetter
var infogetters = make(map[string]func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info)

// eallocators holds all available elements; elemType => eallocator
var eallocators = make(map[string]func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) Elem)
