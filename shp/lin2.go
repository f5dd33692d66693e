// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {

	// geometry
	var lin2 Shape
	lin2.Type = "lin2"
	lin2.Func = Lin2
	lin2.Gndim = 1
	lin2.Nverts = 2
	lin2.VtkCode = VTK_LINE

	// natural coordinates
	//    -1     0    +1
	//     0-----------1-->r
	lin2.NatCoords = [][]float64{
		{-1, 1},
	}

	// scratchpad and factory
	lin2.init_scratchpad()
	factory["lin2"] = &lin2
}

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true
func Lin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])

	if !derivs {
		return
	}

	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}
