// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/goflow/inp"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Poiseuille implements the plane Poiseuille flow solution: laminar flow
// between two parallel no-slip walls, driven by a constant pressure drop
//
//      y=H ┌──────────────────────────┐
//          |      :                   |
//          |        :                 |
//   p=pin  |         :  ux(y)         |  p=pout
//          |        :                 |
//          |      :                   |
//      y=0 └──────────────────────────┘
//          x=0                      x=L
//
//   steady state:   ux(y) = G·y·(H−y)/(2ν)   uy = 0   p(x) = pin − G·x
//
// with G = (pin−pout)/L the pressure gradient. The start-up transient from
// rest decays with the Fourier series
//
//   ux(y,t) = ux(y) − Σ [4GH²/(νπ³n³)]·sin(nπy/H)·exp(−νn²π²t/H²),  n odd
type Poiseuille struct {

	// input
	ν    float64 // kinematic viscosity
	pin  float64 // pressure at inlet (x=0)
	pout float64 // pressure at outlet (x=L)
	L    float64 // channel length
	H    float64 // distance between walls

	// derived
	G float64 // pressure gradient == (pin-pout)/L
}

// Init initialises this structure
func (o *Poiseuille) Init(prms dbf.Params) {

	// default values: unit square channel
	o.ν = 0.5
	o.pin = 1.0
	o.pout = 0.0
	o.L = 1.0
	o.H = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "nu":
			o.ν = p.V
		case "pin":
			o.pin = p.V
		case "pout":
			o.pout = p.V
		case "L":
			o.L = p.V
		case "H":
			o.H = p.V
		}
	}

	// derived
	o.G = (o.pin - o.pout) / o.L
}

// Ux computes the steady velocity profile
func (o Poiseuille) Ux(y float64) float64 {
	return o.G * y * (o.H - y) / (2.0 * o.ν)
}

// P computes the steady pressure distribution
func (o Poiseuille) P(x float64) float64 {
	return o.pin - o.G*x
}

// UxTransient computes the start-up velocity profile at time t, for flow
// initially at rest. The series is summed until terms become negligible
func (o Poiseuille) UxTransient(y, t float64) float64 {
	if t <= 0 {
		return 0
	}
	π := math.Pi
	ux := o.Ux(y)
	for n := 1; n < 1000; n += 2 {
		nn := float64(n)
		coef := 4.0 * o.G * o.H * o.H / (o.ν * π * π * π * nn * nn * nn)
		decay := math.Exp(-o.ν * nn * nn * π * π * t / (o.H * o.H))
		if coef*decay < 1e-16 {
			break
		}
		ux -= coef * math.Sin(nn*π*y/o.H) * decay
	}
	return ux
}

// InterpNodal returns the steady solution interpolated at the nodes of a
// mesh. The vector uses the velocity-space ordering: ux=2·vid, uy=2·vid+1
func (o Poiseuille) InterpNodal(msh *inp.Mesh) (U la.Vector) {
	U = la.NewVector(2 * len(msh.Verts))
	for _, v := range msh.Verts {
		U[2*v.Id] = o.Ux(v.C[1])
	}
	return
}

// MaxNodalDiff returns the maximum pointwise deviation between the steady
// profile at the mesh nodes and the discrete velocities U (both components)
func (o Poiseuille) MaxNodalDiff(msh *inp.Mesh, U la.Vector) (maxdiff float64) {
	for _, v := range msh.Verts {
		maxdiff = utl.Max(maxdiff, math.Abs(U[2*v.Id]-o.Ux(v.C[1])))
		maxdiff = utl.Max(maxdiff, math.Abs(U[2*v.Id+1]))
	}
	return
}

// plot //////////////////////////////////////////////////////////////////////////

// Profile returns the steady velocity profile for plotting
func (o Poiseuille) Profile(np int) (Y, Ux []float64) {
	Y = utl.LinSpace(0, o.H, np)
	Ux = make([]float64, np)
	for i, y := range Y {
		Ux[i] = o.Ux(y)
	}
	return
}
