// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for 2D cells
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// VTK cell codes [VTK-file-formats]
const (
	VTK_LINE     = 3
	VTK_TRIANGLE = 5
	VTK_QUAD     = 9
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	Func           ShpFunc     // shape/derivs function callback function
	FaceFunc       ShpFunc     // face shape/derivs function callback function
	FaceType       string      // geometry of face; e.g. "tri3" => "lin2"
	Gndim          int         // geometry dimension; e.g. "lin2" => gnd == 1 (even in 2D simulations)
	Nverts         int         // number of vertices in cell; e.g. "qua4" => 4
	VtkCode        int         // VTK code
	FaceNvertsMax  int         // max number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: line
	Jvec3d []float64 // Jacobian: dxdR for line elements (size==3)
	Gvec   []float64 // [nverts] G == dSdx. derivative of shape function

	// scratchpad: face
	Sf     []float64   // [FaceNvertsMax] shape functions values
	Fnvec  []float64   // [gndim] face normal vector multiplied by Jf
	DSfdRf [][]float64 // [FaceNvertsMax][gndim-1] derivatives of Sf w.r.t natural coordinates
	DxfdRf [][]float64 // [gndim][gndim-1] derivatives of real coordinates w.r.t natural coordinates
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {

	// new structure
	var p Shape

	// geometry
	p.Type = o.Type
	p.Func = o.Func
	p.FaceFunc = o.FaceFunc
	p.FaceType = o.FaceType
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.FaceNvertsMax = o.FaceNvertsMax
	p.FaceLocalVerts = make([][]int, len(o.FaceLocalVerts))
	for i, fverts := range o.FaceLocalVerts {
		p.FaceLocalVerts[i] = make([]int, len(fverts))
		copy(p.FaceLocalVerts[i], fverts)
	}
	p.NatCoords = cloneMat(o.NatCoords)

	// scratchpad: volume
	p.S = cloneVec(o.S)
	p.G = cloneMat(o.G)
	p.J = o.J
	p.DSdR = cloneMat(o.DSdR)
	p.DxdR = cloneMat(o.DxdR)
	p.DRdx = cloneMat(o.DRdx)

	// scratchpad: line
	p.Jvec3d = cloneVec(o.Jvec3d)
	p.Gvec = cloneVec(o.Gvec)

	// scratchpad: face
	p.Sf = cloneVec(o.Sf)
	p.Fnvec = cloneVec(o.Fnvec)
	p.DSfdRf = cloneMat(o.DSfdRf)
	p.DxfdRf = cloneMat(o.DxfdRf)
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// FaceIpRealCoords returns the real coordinates (y) of an integration point @ face
func (o *Shape) FaceIpRealCoords(x [][]float64, ipf Ipoint, idxface int) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, false)
	for i := 0; i < ndim; i++ {
		for k, n := range o.FaceLocalVerts[idxface] {
			y[i] += o.Sf[k] * x[i][n]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	if o.Gndim == 1 {
		// calculate Jvec3d == dxdR
		for i := 0; i < len(x); i++ {
			o.Jvec3d[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}

		// calculate J = norm of Jvec3d
		o.J = math.Sqrt(o.Jvec3d[0]*o.Jvec3d[0] + o.Jvec3d[1]*o.Jvec3d[1] + o.Jvec3d[2]*o.Jvec3d[2])

		// calculate G
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}

		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
	if math.Abs(o.J) < MINDET {
		return chk.Err("cannot invert dxdR matrix of %q shape. det=%g", o.Type, o.J)
	}
	o.DRdx[0][0] = o.DxdR[1][1] / o.J
	o.DRdx[0][1] = -o.DxdR[0][1] / o.J
	o.DRdx[1][0] = -o.DxdR[1][0] / o.J
	o.DRdx[1][1] = o.DxdR[0][0] / o.J

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   ipf             -- local/natural coordinates of face
//   idxface         -- local index of face
//  Output:
//   Sf, DxfdRf and Fnvec
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip 1D elements
	if o.Gndim == 1 {
		return
	}

	// Sf and dSfdRf
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true)

	// dxfdRf := sum_n x * dSfdRf   =>  dxf_i/dRf_j := sum_n xf^n_i * dSf^n/dRf_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0.0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector; points outward when the face local vertices
	// run counter-clockwise around the cell
	o.Fnvec[0] = o.DxfdRf[1][0]
	o.Fnvec[1] = -o.DxfdRf[0][0]
	return
}

// CalcFaceIpCellR computes the cell natural coordinates R corresponding to a face
// integration point, by interpolating the natural coordinates of the face vertices.
// Use R with CalcAtR to evaluate cell gradients G at points on a face
func (o *Shape) CalcFaceIpCellR(R []float64, ipf Ipoint, idxface int) {
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, false)
	for i := 0; i < o.Gndim; i++ {
		R[i] = 0
		for k, n := range o.FaceLocalVerts[idxface] {
			R[i] += o.Sf[k] * o.NatCoords[i][n]
		}
	}
}

// InvMap computes the natural coordinates r corresponding to real coordinates x,
// by means of Newton iterations
func (o *Shape) InvMap(r, x []float64, xmat [][]float64) (err error) {
	var δx [2]float64
	for i := 0; i < o.Gndim; i++ {
		r[i] = 0
	}
	for it := 0; it < 25; it++ {

		// y(r) - x and dxdR
		err = o.CalcAtR(xmat, r, true)
		if err != nil {
			return
		}
		for i := 0; i < o.Gndim; i++ {
			δx[i] = -x[i]
			for m := 0; m < o.Nverts; m++ {
				δx[i] += o.S[m] * xmat[i][m]
			}
		}

		// converged?
		if math.Abs(δx[0])+math.Abs(δx[1]) < 1e-14 {
			return
		}

		// update: r -= dRdx * δx
		r[0] -= o.DRdx[0][0]*δx[0] + o.DRdx[0][1]*δx[1]
		r[1] -= o.DRdx[1][0]*δx[0] + o.DRdx[1][1]*δx[1]
	}
	return chk.Err("InvMap did not converge for %q shape with x=%v", o.Type, x)
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)

	// face data
	if o.Gndim > 1 {
		o.Sf = make([]float64, o.FaceNvertsMax)
		o.DSfdRf = utl.Alloc(o.FaceNvertsMax, o.Gndim-1)
		o.DxfdRf = utl.Alloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}

	// lin data
	if o.Gndim == 1 {
		o.Jvec3d = make([]float64, 3)
		o.Gvec = make([]float64, o.Nverts)
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func cloneVec(a []float64) (b []float64) {
	b = make([]float64, len(a))
	copy(b, a)
	return
}

func cloneMat(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}
