// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// CheckShape checks that shape functions result in 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pforan("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
	}
}

// CheckShapeFace checks that face shape functions result in 1.0 @ face nodes
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip 1D shapes
	if shape.Gndim == 1 {
		return
	}

	// face shape structure holds the face natural coordinates
	fshape := Get(shape.FaceType, 0)
	if fshape == nil {
		tst.Errorf("cannot get %q shape for face of %q\n", shape.FaceType, shape.Type)
		return
	}

	// loop over faces
	errS := 0.0
	rf := []float64{0, 0, 0}
	for idxface := range shape.FaceLocalVerts {
		nv := len(shape.FaceLocalVerts[idxface])
		for k := 0; k < nv; k++ {

			// face natural coordinates @ vertex
			for i := 0; i < fshape.Gndim; i++ {
				rf[i] = fshape.NatCoords[i][k]
			}

			// compute function
			shape.FaceFunc(shape.Sf, shape.DSfdRf, rf, false)

			// check
			if verbose {
				io.Pforan("Sf = %v\n", shape.Sf)
			}
			for m := 0; m < nv; m++ {
				if k == m {
					errS += math.Abs(shape.Sf[m] - 1.0)
				} else {
					errS += math.Abs(shape.Sf[m])
				}
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s faces failed with err = %g\n", shape.Type, errS)
	}
}

// CheckDSdR compares analytical dSdR with numerical results obtained by finite differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	rTmp := make([]float64, len(r))
	STmp := make([]float64, shape.Nverts)
	dSdRTmp := utl.Alloc(shape.Nverts, shape.Gndim)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi := num.DerivCen5(r[i], 1e-3, func(t float64) float64 {
				copy(rTmp, r)
				rTmp[i] = t
				shape.Func(STmp, dSdRTmp, rTmp, false)
				return STmp[n]
			})
			if verbose {
				io.Pfgrey2("  dS%ddR%d @ %v = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("dS%ddR%d failed with err = %g\n", n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
			}
		}
	}
}

// CheckDSdx compares analytical G=dSdx with numerical results obtained by finite differences
//  Input:
//   xmat -- coordinates matrix of cell
//   x    -- real coordinates of point inside cell
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {

	// analytical
	r := make([]float64, 3)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	err = shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	G := cloneMat(shape.G)

	// numerical
	rTmp := make([]float64, 3)
	xTmp := make([]float64, len(x))
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSnDxi := num.DerivCen5(x[i], 1e-3, func(t float64) float64 {
				copy(xTmp, x)
				xTmp[i] = t
				e := shape.InvMap(rTmp, xTmp, xmat)
				if e != nil {
					tst.Errorf("InvMap failed:\n%v", e)
					return 0
				}
				shape.Func(shape.S, shape.DSdR, rTmp, false)
				return shape.S[n]
			})
			if verbose {
				io.Pfgrey2("  dS%ddx%d @ %v = %v (num: %v)\n", n, i, x, G[n][i], dSnDxi)
			}
			if math.Abs(G[n][i]-dSnDxi) > tol {
				tst.Errorf("dS%ddx%d failed with err = %g\n", n, i, math.Abs(G[n][i]-dSnDxi))
			}
		}
	}
}
