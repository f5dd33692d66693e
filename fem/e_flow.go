// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/goflow/mfluid"
	"github.com/cpmech/goflow/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// FlowElem implements an element for incompressible flow analyses based on the
// three-stage incremental pressure-correction scheme (IPCS) [1,2]:
//
//   first stage (tentative velocity):  [ (1/Δt)·M + ν·E − (ν/2)·B ] u★ = b1(u0, p0)
//   second stage (pressure update):    L p1 = b2(p0, u★)
//   third stage (velocity update):     M u1 = b3(u★, p1 − p0)
//
//   M -- mass matrix in the velocity space
//   E -- viscous matrix  ⟨ε(u), ε(v)⟩  with  ε(u) = (∇u + ∇uᵀ)/2
//   B -- boundary matrix  ∮ v·(∇u)·n̂ ds  over tagged faces
//   L -- Laplacian matrix  ⟨∇p, ∇q⟩  in the pressure space
//
//  The convective term (u0·∇)u0 is fully explicit and appears in b1 only; thus
//  the three matrices are constant in time and are factorised once.
//  References:
//   [1] Goda K (1979) A multistep technique with implicit difference schemes for
//       calculating two- or three-dimensional cavity flows. Journal of
//       Computational Physics 30(1):76-95
//   [2] Guermond JL, Minev P, Shen J (2006) An overview of projection methods
//       for incompressible flows. Computer Methods in Applied Mechanics and
//       Engineering 195(44):6011-6045
type FlowElem struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nverts] matrix of nodal coordinates
	Shp  *shp.Shape  // shape structure
	Nu   int         // number of velocity unknowns == 2 * nverts
	Np   int         // number of pressure unknowns == nverts

	// integration points
	IpsElem []shp.Ipoint // integration points of element
	IpsFace []shp.Ipoint // integration points on face

	// fluid model
	Mdl *mfluid.Model // fluid properties

	// problem variables
	Umap []int // [nu] assembly map of velocity equations (ux and uy interleaved)
	Pmap []int // [np] assembly map of pressure equations

	// essential boundary conditions (row exclusion during assembly)
	Ubcs *EssentialBcs // prescribed equations of the velocity system
	Pbcs *EssentialBcs // prescribed equations of the pressure system

	// tagged faces, where the ds boundary integrals are computed
	Bfaces []int // local indices of faces with negative tags

	// body force
	bf []float64 // [2] constant body force components

	// scratchpad: variables @ ip
	p0   float64     // pressure @ ip
	u0   []float64   // [2] velocity @ ip
	w    []float64   // [2] convective term (u0·∇)u0 @ ip
	gu0  [][]float64 // [2][2] velocity gradient @ ip: gu0[i][j] = ∂u0i/∂xj
	rfip []float64   // [2] cell natural coordinates of face integration point
}

// initialisation //////////////////////////////////////////////////////////////////////////////////

func init() {

	// information allocator
	infogetters["flow"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info {
		var info Info
		ykeys := []string{"ux", "uy", "p"}
		info.Dofs = make([][]string, len(cell.Verts))
		for m := 0; m < len(cell.Verts); m++ {
			info.Dofs[m] = ykeys
		}
		info.Uvars = []string{"ux", "uy"}
		info.Pvars = []string{"p"}
		return &info
	}

	// element allocator
	eallocators["flow"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) Elem {

		// basic data
		var o FlowElem
		o.Cell = cell
		o.X = x
		o.Shp = shp.Get(cell.Type, sim.GoroutineId)
		if o.Shp == nil {
			chk.Panic("cannot allocate shape structure for cell type = %q", cell.Type)
		}
		o.Nu = 2 * o.Shp.Nverts
		o.Np = o.Shp.Nverts

		// integration points
		var err error
		o.IpsElem, o.IpsFace, err = o.Shp.GetIps(edat.Nip, edat.Nipf)
		if err != nil {
			chk.Panic("cannot allocate integration points of flow element with nip=%d and nipf=%d:\n%v", edat.Nip, edat.Nipf, err)
		}

		// fluid model
		o.Mdl = new(mfluid.Model)
		err = o.Mdl.Init(sim.Fluid.GetPrms())
		if err != nil {
			chk.Panic("fluid model initialisation failed:\n%v", err)
		}

		// tagged faces
		for f, ftag := range cell.FTags {
			if ftag < 0 {
				o.Bfaces = append(o.Bfaces, f)
			}
		}

		// scratchpad
		o.bf = make([]float64, 2)
		o.u0 = make([]float64, 2)
		o.w = make([]float64, 2)
		o.gu0 = utl.Alloc(2, 2)
		o.rfip = make([]float64, 2)
		return &o
	}
}

// implementation //////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *FlowElem) Id() int { return o.Cell.Id }

// SetEqs sets equations. The dof keys of each vertex are ordered as "ux", "uy", "p"
func (o *FlowElem) SetEqs(eqs [][]int) (err error) {
	chk.IntAssert(len(eqs), o.Np)
	o.Umap = make([]int, o.Nu)
	o.Pmap = make([]int, o.Np)
	for m := 0; m < o.Np; m++ {
		chk.IntAssert(len(eqs[m]), 3)
		o.Umap[2*m] = eqs[m][0]
		o.Umap[2*m+1] = eqs[m][1]
		o.Pmap[m] = eqs[m][2]
	}
	return
}

// SetBcs sets the prescribed-equation structures used for row exclusion
func (o *FlowElem) SetBcs(ubcs, pbcs *EssentialBcs) {
	o.Ubcs, o.Pbcs = ubcs, pbcs
}

// SetEleConds sets element conditions; i.e. constant body force components
func (o *FlowElem) SetEleConds(key string, v float64) (err error) {
	switch key {
	case "fx":
		o.bf[0] = v
	case "fy":
		o.bf[1] = v
	default:
		return chk.Err("element condition key %q is invalid. \"fx\" and \"fy\" are available", key)
	}
	return
}

// AddToA1 adds the element contribution to the tentative-velocity matrix:
//   A1 = (1/Δt)·M + ν·E − (ν/2)·B
// Rows of prescribed velocity equations are excluded
func (o *FlowElem) AddToA1(tr *la.Triplet, dt float64) (err error) {

	// local matrix
	ν := o.Mdl.Nu
	K := utl.Alloc(o.Nu, o.Nu)

	// mass and viscous terms
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		S, G := o.Shp.S, o.Shp.G
		for m := 0; m < o.Np; m++ {
			for n := 0; n < o.Np; n++ {
				gg := G[m][0]*G[n][0] + G[m][1]*G[n][1]
				for i := 0; i < 2; i++ {
					for j := 0; j < 2; j++ {
						v := 0.5 * ν * coef * G[n][i] * G[m][j]
						if i == j {
							v += coef*S[m]*S[n]/dt + 0.5*ν*coef*gg
						}
						K[2*m+i][2*n+j] += v
					}
				}
			}
		}
	}

	// boundary term
	for _, f := range o.Bfaces {
		for _, ipf := range o.IpsFace {
			o.Shp.CalcFaceIpCellR(o.rfip, ipf, f)
			err = o.Shp.CalcAtFaceIp(o.X, ipf, f)
			if err != nil {
				return
			}
			err = o.Shp.CalcAtR(o.X, o.rfip, true)
			if err != nil {
				return
			}
			G := o.Shp.G
			for k, mloc := range o.Shp.FaceLocalVerts[f] {
				sm := ipf[3] * o.Shp.Sf[k]
				for n := 0; n < o.Np; n++ {
					for i := 0; i < 2; i++ {
						for j := 0; j < 2; j++ {
							K[2*mloc+i][2*n+j] -= 0.5 * ν * sm * o.Shp.Fnvec[j] * G[n][i]
						}
					}
				}
			}
		}
	}

	// add to triplet, skipping prescribed rows
	for mi := 0; mi < o.Nu; mi++ {
		I := o.Umap[mi]
		if o.Ubcs.Prescribed[I] {
			continue
		}
		for nj := 0; nj < o.Nu; nj++ {
			tr.Put(I, o.Umap[nj], K[mi][nj])
		}
	}
	return
}

// AddToA2 adds the element contribution to the pressure-correction matrix:
//   A2 = L  (Laplacian in the pressure space)
// Rows of prescribed pressure equations are excluded
func (o *FlowElem) AddToA2(tr *la.Triplet) (err error) {

	// local matrix
	K := utl.Alloc(o.Np, o.Np)
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		G := o.Shp.G
		for m := 0; m < o.Np; m++ {
			for n := 0; n < o.Np; n++ {
				K[m][n] += coef * (G[m][0]*G[n][0] + G[m][1]*G[n][1])
			}
		}
	}

	// add to triplet, skipping prescribed rows
	for m := 0; m < o.Np; m++ {
		I := o.Pmap[m]
		if o.Pbcs.Prescribed[I] {
			continue
		}
		for n := 0; n < o.Np; n++ {
			tr.Put(I, o.Pmap[n], K[m][n])
		}
	}
	return
}

// AddToA3 adds the element mass matrix to the velocity-update system:
//   A3 = M
// No boundary conditions apply to the third stage
func (o *FlowElem) AddToA3(tr *la.Triplet) (err error) {

	// local matrix, one component only since there is no coupling
	K := utl.Alloc(o.Np, o.Np)
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		S := o.Shp.S
		for m := 0; m < o.Np; m++ {
			for n := 0; n < o.Np; n++ {
				K[m][n] += coef * S[m] * S[n]
			}
		}
	}

	// add to triplet
	for m := 0; m < o.Np; m++ {
		for n := 0; n < o.Np; n++ {
			tr.Put(o.Umap[2*m], o.Umap[2*n], K[m][n])
			tr.Put(o.Umap[2*m+1], o.Umap[2*n+1], K[m][n])
		}
	}
	return
}

// AddToB1 adds the element contribution to the tentative-velocity right-hand side:
//   b1 = (1/Δt)⟨u0, v⟩ − ⟨(u0·∇)u0, v⟩ − ν⟨ε(u0), ε(v)⟩ + ⟨p0, div v⟩ + ⟨f, v⟩
//        − ∮ p0 v·n̂ ds + (ν/2) ∮ v·(∇u0)·n̂ ds
func (o *FlowElem) AddToB1(b la.Vector, sv *StepVars) (err error) {

	// volume integrals
	ν := o.Mdl.Nu
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		S, G := o.Shp.S, o.Shp.G

		// interpolate variables and compute the convective term @ ip
		o.ipvars(sv)
		for i := 0; i < 2; i++ {
			o.w[i] = o.u0[0]*o.gu0[i][0] + o.u0[1]*o.gu0[i][1]
		}

		for m := 0; m < o.Np; m++ {
			for i := 0; i < 2; i++ {
				r := o.Umap[2*m+i]
				b[r] += coef * (S[m]*(o.u0[i]/sv.Dt-o.w[i]+o.bf[i]) + o.p0*G[m][i])
				for j := 0; j < 2; j++ {
					b[r] -= coef * 0.5 * ν * (o.gu0[i][j] + o.gu0[j][i]) * G[m][j]
				}
			}
		}
	}

	// boundary integrals
	for _, f := range o.Bfaces {
		for _, ipf := range o.IpsFace {
			o.Shp.CalcFaceIpCellR(o.rfip, ipf, f)
			err = o.Shp.CalcAtFaceIp(o.X, ipf, f)
			if err != nil {
				return
			}
			err = o.Shp.CalcAtR(o.X, o.rfip, true)
			if err != nil {
				return
			}
			o.ipvars(sv)
			for k, mloc := range o.Shp.FaceLocalVerts[f] {
				sm := ipf[3] * o.Shp.Sf[k]
				for i := 0; i < 2; i++ {
					r := o.Umap[2*mloc+i]
					b[r] -= sm * o.p0 * o.Shp.Fnvec[i]
					b[r] += 0.5 * ν * sm * (o.Shp.Fnvec[0]*o.gu0[0][i] + o.Shp.Fnvec[1]*o.gu0[1][i])
				}
			}
		}
	}
	return
}

// AddToB2 adds the element contribution to the pressure-correction right-hand side:
//   b2 = ⟨∇p0, ∇q⟩ − (1/Δt)⟨div u★, q⟩
func (o *FlowElem) AddToB2(b la.Vector, sv *StepVars) (err error) {
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		S, G := o.Shp.S, o.Shp.G

		// ∇p0 and div(u★) @ ip
		var gpx, gpy, divut float64
		for n := 0; n < o.Np; n++ {
			p0n := sv.P0[o.Pmap[n]]
			gpx += G[n][0] * p0n
			gpy += G[n][1] * p0n
			divut += G[n][0]*sv.Ut[o.Umap[2*n]] + G[n][1]*sv.Ut[o.Umap[2*n+1]]
		}

		for m := 0; m < o.Np; m++ {
			b[o.Pmap[m]] += coef * (G[m][0]*gpx + G[m][1]*gpy - S[m]*divut/sv.Dt)
		}
	}
	return
}

// AddToB3 adds the element contribution to the velocity-update right-hand side:
//   b3 = ⟨u★, v⟩ − Δt⟨∇(p1 − p0), v⟩
func (o *FlowElem) AddToB3(b la.Vector, sv *StepVars) (err error) {
	for _, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		coef := o.Shp.J * ip[3]
		S, G := o.Shp.S, o.Shp.G

		// u★ and ∇(p1−p0) @ ip
		var utx, uty, gdx, gdy float64
		for n := 0; n < o.Np; n++ {
			dp := sv.Pnew[o.Pmap[n]] - sv.P0[o.Pmap[n]]
			gdx += G[n][0] * dp
			gdy += G[n][1] * dp
			utx += S[n] * sv.Ut[o.Umap[2*n]]
			uty += S[n] * sv.Ut[o.Umap[2*n+1]]
		}

		for m := 0; m < o.Np; m++ {
			b[o.Umap[2*m]] += coef * S[m] * (utx - sv.Dt*gdx)
			b[o.Umap[2*m+1]] += coef * S[m] * (uty - sv.Dt*gdy)
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// ipvars interpolates u0, ∇u0 and p0 using the shape values computed at the
// current point; i.e. CalcAtIp or CalcAtR must be called first
func (o *FlowElem) ipvars(sv *StepVars) {
	S, G := o.Shp.S, o.Shp.G
	o.p0 = 0
	for i := 0; i < 2; i++ {
		o.u0[i] = 0
		o.gu0[i][0], o.gu0[i][1] = 0, 0
	}
	for n := 0; n < o.Np; n++ {
		o.p0 += S[n] * sv.P0[o.Pmap[n]]
		for i := 0; i < 2; i++ {
			un := sv.U0[o.Umap[2*n+i]]
			o.u0[i] += S[n] * un
			o.gu0[i][0] += G[n][0] * un
			o.gu0[i][1] += G[n][1] * un
		}
	}
}
