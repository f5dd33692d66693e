// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {

	// geometry
	var qua4 Shape
	qua4.Type = "qua4"
	qua4.Func = Qua4
	qua4.FaceFunc = Lin2
	qua4.FaceType = "lin2"
	qua4.Gndim = 2
	qua4.Nverts = 4
	qua4.VtkCode = VTK_QUAD
	qua4.FaceNvertsMax = 2
	qua4.FaceLocalVerts = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

	// natural coordinates
	//    3, (-1,1)            2, (1,1)
	//     ,-----------------,
	//     |        s        |
	//     |        |        |
	//     |        +-- r    |
	//     |                 |
	//     |                 |
	//     '-----------------'
	//    0, (-1,-1)           1, (1,-1)
	qua4.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}

	// scratchpad and factory
	qua4.init_scratchpad()
	factory["qua4"] = &qua4
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = (1.0 - r[0]) * (1.0 - r[1]) / 4.0
	S[1] = (1.0 + r[0]) * (1.0 - r[1]) / 4.0
	S[2] = (1.0 + r[0]) * (1.0 + r[1]) / 4.0
	S[3] = (1.0 - r[0]) * (1.0 + r[1]) / 4.0

	if !derivs {
		return
	}

	dSdR[0][0] = -(1.0 - r[1]) / 4.0
	dSdR[1][0] = (1.0 - r[1]) / 4.0
	dSdR[2][0] = (1.0 + r[1]) / 4.0
	dSdR[3][0] = -(1.0 + r[1]) / 4.0

	dSdR[0][1] = -(1.0 - r[0]) / 4.0
	dSdR[1][1] = -(1.0 + r[0]) / 4.0
	dSdR[2][1] = (1.0 + r[0]) / 4.0
	dSdR[3][1] = (1.0 - r[0]) / 4.0
}
