// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/goflow/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_poiseuille01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poiseuille01. steady profile and pressure")

	var sol Poiseuille
	sol.Init(dbf.Params{
		&dbf.P{N: "nu", V: 0.5},
		&dbf.P{N: "pin", V: 1.0},
		&dbf.P{N: "pout", V: 0.0},
	})

	// no-slip walls and parabolic profile: ux = y(1-y)
	chk.Float64(tst, "ux(0)", 1e-17, sol.Ux(0), 0)
	chk.Float64(tst, "ux(H)", 1e-17, sol.Ux(1), 0)
	chk.Float64(tst, "ux(H/2)", 1e-17, sol.Ux(0.5), 0.25)
	chk.Float64(tst, "ux(H/4)", 1e-17, sol.Ux(0.25), 0.1875)

	// pressure drops linearly
	chk.Float64(tst, "p(0)", 1e-17, sol.P(0), 1)
	chk.Float64(tst, "p(L/2)", 1e-17, sol.P(0.5), 0.5)
	chk.Float64(tst, "p(L)", 1e-17, sol.P(1), 0)
}

func Test_poiseuille02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poiseuille02. start-up transient")

	var sol Poiseuille
	sol.Init(nil)

	// starts from rest
	chk.Float64(tst, "ux(H/2,0)", 1e-17, sol.UxTransient(0.5, 0), 0)

	// monotonic approach to the steady maximum
	u1 := sol.UxTransient(0.5, 0.02)
	u2 := sol.UxTransient(0.5, 0.2)
	u3 := sol.UxTransient(0.5, 2.0)
	io.Pforan("u(0.02)=%g  u(0.2)=%g  u(2)=%g\n", u1, u2, u3)
	if !(u1 > 0 && u1 < u2 && u2 < u3 && u3 < sol.Ux(0.5)) {
		tst.Errorf("transient profile is not increasing towards the steady value")
	}

	// converged after many viscous time scales
	chk.Float64(tst, "ux(H/2,10)", 1e-10, sol.UxTransient(0.5, 10), sol.Ux(0.5))

	// walls stay at zero
	chk.Float64(tst, "ux(0,t)", 1e-14, sol.UxTransient(0, 0.5), 0)
	chk.Float64(tst, "ux(H,t)", 1e-14, sol.UxTransient(1, 0.5), 0)
}

func Test_poiseuille03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poiseuille03. nodal interpolation")

	msh, err := inp.GenUnitSquare(4, "tri3")
	if err != nil {
		tst.Errorf("cannot generate mesh:\n%v", err)
		return
	}

	var sol Poiseuille
	sol.Init(nil)
	U := sol.InterpNodal(msh)
	chk.IntAssert(len(U), 50)

	// nodes at y=0.25 have ux = 0.1875 regardless of x
	for _, v := range msh.Verts {
		if math.Abs(v.C[1]-0.25) < 1e-14 {
			chk.Float64(tst, io.Sf("ux @ vert %d", v.Id), 1e-17, U[2*v.Id], 0.1875)
			chk.Float64(tst, io.Sf("uy @ vert %d", v.Id), 1e-17, U[2*v.Id+1], 0)
		}
	}

	// the interpolated field itself has zero deviation
	chk.Float64(tst, "maxdiff @ exact", 1e-17, sol.MaxNodalDiff(msh, U), 0)

	// a perturbed dof is detected
	U[2*7+1] += 1e-3
	chk.Float64(tst, "maxdiff @ perturbed", 1e-17, sol.MaxNodalDiff(msh, U), 1e-3)

	// curve data for plotting
	Y, Ux := sol.Profile(11)
	chk.IntAssert(len(Y), 11)
	chk.Float64(tst, "profile peak", 1e-15, Ux[5], 0.25)
}
