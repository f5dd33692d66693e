// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// State holds the committed solution at one time level. The stepper does not
// modify a given State; every step returns a new one owning fresh vectors
type State struct {
	T float64   // current time
	U la.Vector // [nu] velocity dofs; ux and uy interleaved per vertex
	P la.Vector // [np] pressure dofs
}

// NewState returns a new State with zeroed vectors
func NewState(nu, np int) *State {
	return &State{0, la.NewVector(nu), la.NewVector(np)}
}

// GetCopy returns a deep copy of this State
func (o *State) GetCopy() *State {
	s := NewState(len(o.U), len(o.P))
	s.T = o.T
	copy(s.U, o.U)
	copy(s.P, o.P)
	return s
}

// Stepper advances the solution in time with the three-stage incremental
// pressure-correction scheme. The three stage matrices are assembled and
// factorised once, at allocation; every call to Step rebuilds the right-hand
// sides only and reuses the factorisations
type Stepper struct {

	// domain and control
	Dom *Domain // domain with elements and boundary conditions
	Dt  float64 // time step size

	// stage matrices and solvers (factorised once)
	a1, a2, a3    la.Triplet
	ls1, ls2, ls3 *LinSolver

	// right-hand sides and step variables
	b1, b2, b3 la.Vector
	sv         StepVars
}

// NewStepper assembles and factorises the three stage matrices of the given
// domain. SetStage must have been called
func NewStepper(dom *Domain, dt float64) (o *Stepper, err error) {

	// check
	if dt <= 0 {
		return nil, chk.Err("time step size must be positive. %g is invalid", dt)
	}
	o = &Stepper{Dom: dom, Dt: dt}
	kind := dom.Sim.LinSol.Name

	// tentative-velocity system
	o.a1.Init(dom.Nu, dom.Nu, dom.NnzA1)
	for _, ele := range dom.Elems {
		if err = ele.AddToA1(&o.a1, dt); err != nil {
			return nil, chk.Err("assembly of tentative-velocity matrix failed:\n%v", err)
		}
	}
	dom.UBcs.AddUnitDiag(&o.a1)
	if o.ls1, err = NewLinSolver("tentative velocity", kind, dom.Nu); err != nil {
		return nil, err
	}
	if err = o.ls1.Init(&o.a1); err != nil {
		return nil, err
	}

	// pressure-correction system
	o.a2.Init(dom.Np, dom.Np, dom.NnzA2)
	for _, ele := range dom.Elems {
		if err = ele.AddToA2(&o.a2); err != nil {
			return nil, chk.Err("assembly of pressure-correction matrix failed:\n%v", err)
		}
	}
	dom.PBcs.AddUnitDiag(&o.a2)
	if o.ls2, err = NewLinSolver("pressure correction", kind, dom.Np); err != nil {
		return nil, err
	}
	if err = o.ls2.Init(&o.a2); err != nil {
		return nil, err
	}

	// velocity-update system
	o.a3.Init(dom.Nu, dom.Nu, dom.NnzA3)
	for _, ele := range dom.Elems {
		if err = ele.AddToA3(&o.a3); err != nil {
			return nil, chk.Err("assembly of velocity-update matrix failed:\n%v", err)
		}
	}
	if o.ls3, err = NewLinSolver("velocity update", kind, dom.Nu); err != nil {
		return nil, err
	}
	if err = o.ls3.Init(&o.a3); err != nil {
		return nil, err
	}

	// right-hand sides and step variables
	o.b1 = la.NewVector(dom.Nu)
	o.b2 = la.NewVector(dom.Np)
	o.b3 = la.NewVector(dom.Nu)
	o.sv.Dt = dt
	o.sv.Ut = la.NewVector(dom.Nu)
	return
}

// Step advances the solution from sta.T to sta.T + Dt by performing the three
// stages in order. The input state is left untouched
func (o *Stepper) Step(sta *State) (snew *State, err error) {

	// new state and step variables
	snew = NewState(o.Dom.Nu, o.Dom.Np)
	snew.T = sta.T + o.Dt
	o.sv.U0 = sta.U
	o.sv.P0 = sta.P

	// first stage: tentative velocity:  A1 u★ = b1(u0, p0)
	for i := range o.b1 {
		o.b1[i] = 0
	}
	for _, ele := range o.Dom.Elems {
		if err = ele.AddToB1(o.b1, &o.sv); err != nil {
			return nil, chk.Err("first stage: assembly failed at t=%g:\n%v", snew.T, err)
		}
	}
	o.Dom.UBcs.ApplyToRhs(o.b1)
	if err = o.ls1.Solve(o.sv.Ut, o.b1); err != nil {
		return nil, chk.Err("first stage failed at t=%g:\n%v", snew.T, err)
	}

	// second stage: pressure correction:  A2 p1 = b2(p0, u★)
	for i := range o.b2 {
		o.b2[i] = 0
	}
	for _, ele := range o.Dom.Elems {
		if err = ele.AddToB2(o.b2, &o.sv); err != nil {
			return nil, chk.Err("second stage: assembly failed at t=%g:\n%v", snew.T, err)
		}
	}
	o.Dom.PBcs.ApplyToRhs(o.b2)
	if err = o.ls2.Solve(snew.P, o.b2); err != nil {
		return nil, chk.Err("second stage failed at t=%g:\n%v", snew.T, err)
	}
	o.sv.Pnew = snew.P

	// third stage: velocity update:  A3 u1 = b3(u★, p1 − p0)
	for i := range o.b3 {
		o.b3[i] = 0
	}
	for _, ele := range o.Dom.Elems {
		if err = ele.AddToB3(o.b3, &o.sv); err != nil {
			return nil, chk.Err("third stage: assembly failed at t=%g:\n%v", snew.T, err)
		}
	}
	if err = o.ls3.Solve(snew.U, o.b3); err != nil {
		return nil, chk.Err("third stage failed at t=%g:\n%v", snew.T, err)
	}
	return
}

// Free releases the memory allocated by the linear solvers
func (o *Stepper) Free() {
	if o.ls1 != nil {
		o.ls1.Free()
	}
	if o.ls2 != nil {
		o.ls2.Free()
	}
	if o.ls3 != nil {
		o.ls3.Free()
	}
}
