// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/goflow/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotProfile plots the horizontal velocity profile ux(y) along the vertical
// line at x=xcte, at all loaded output times. If ref is non-nil, the
// analytical steady-state profile is drawn on top with a dashed line
func PlotProfile(dirout, fnkey string, xcte float64, ref *ana.Poiseuille) (err error) {

	// vertices along vertical line
	vids := AlongY{xcte}.Locate()
	if len(vids) < 2 {
		return chk.Err("cannot find vertices along line x=%g", xcte)
	}

	// numerical profiles, one curve per loaded time
	plt.Reset(false, nil)
	for i, sta := range States {
		y := make([]float64, len(vids))
		ux := make([]float64, len(vids))
		for k, vid := range vids {
			y[k] = Dom.Msh.Verts[vid].C[1]
			ux[k] = sta.U[2*vid]
		}
		plt.Plot(ux, y, &plt.A{M: ".", L: io.Sf("t=%g", Times[i])})
	}

	// analytical solution
	if ref != nil {
		Y, Ux := ref.Profile(101)
		plt.Plot(Ux, Y, &plt.A{C: "k", Ls: "--", L: "analytical"})
	}

	plt.Gll("$u_x$", "$y$", nil)
	return plt.Save(dirout, fnkey)
}

// PlotErrorHistory plots the deviation of the numerical solution from the
// analytical steady state versus time, as recorded in the summary
func PlotErrorHistory(dirout, fnkey string) (err error) {
	times, devs := ErrorHistory()
	if len(devs) < 1 {
		return chk.Err("summary has no deviation records; run with RefSol set")
	}
	plt.Reset(false, nil)
	plt.Plot(times, devs, &plt.A{C: "b", L: "deviation"})
	plt.Gll("$t$", "$max|u_x - u_x^{ana}|$", nil)
	return plt.Save(dirout, fnkey)
}
