// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {

	// geometry
	var tri3 Shape
	tri3.Type = "tri3"
	tri3.Func = Tri3
	tri3.FaceFunc = Lin2
	tri3.FaceType = "lin2"
	tri3.Gndim = 2
	tri3.Nverts = 3
	tri3.VtkCode = VTK_TRIANGLE
	tri3.FaceNvertsMax = 2
	tri3.FaceLocalVerts = [][]int{{0, 1}, {1, 2}, {2, 0}}

	// natural coordinates
	//    s
	//    |
	//    2, (0,1)
	//    | ',
	//    |   ',
	//    |     ',
	//    |       ',
	//    |         ',
	//    |           ',
	//    |_____________', _ r
	//    0, (0,0)      1, (1,0)
	tri3.NatCoords = [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}

	// scratchpad and factory
	tri3.init_scratchpad()
	factory["tri3"] = &tri3
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true
func Tri3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]

	if !derivs {
		return
	}

	dSdR[0][0] = -1.0
	dSdR[1][0] = 1.0
	dSdR[2][0] = 0.0

	dSdR[0][1] = -1.0
	dSdR[1][1] = 0.0
	dSdR[2][1] = 1.0
}
