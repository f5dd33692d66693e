// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/gosl/chk"
)

// Domain holds all Nodes and Elems active during a stage, together with the
// dimensions and boundary conditions of the two equation systems:
//  velocity system -- one equation per velocity dof: ux => 2·vid, uy => 2·vid+1
//  pressure system -- one equation per pressure dof: p => vid
// The equation numbers follow the order of vertices in the mesh; thus results
// can be mapped back to vertices without auxiliary tables
type Domain struct {

	// init: auxiliary variables
	Sim *inp.Simulation // [from Main] input data
	Reg *inp.Region     // region data
	Msh *inp.Mesh       // mesh data

	// stage: nodes (active) and elements
	Nodes []*Node // active nodes (for each stage)
	Elems []Elem  // active elements (for each stage)

	// stage: auxiliary maps for dofs and equation systems
	DofSys map[string]int // dof key => equation system; 1:velocity, 2:pressure

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem []Elem  // [ncells] CellId => index in Elems. Inactive cells are 'nil'

	// stage: essential boundary conditions
	UBcs EssentialBcs // prescribed equations of the velocity system
	PBcs EssentialBcs // prescribed equations of the pressure system

	// stage: dimensions
	Nu    int // total number of velocity equations
	Np    int // total number of pressure equations
	NnzA1 int // number of non-zeros (upper bound) in the tentative-velocity matrix
	NnzA2 int // number of non-zeros (upper bound) in the pressure-correction matrix
	NnzA3 int // number of non-zeros (upper bound) in the velocity-update matrix
}

// NewDomains returns one domain per region defined in the simulation
func NewDomains(sim *inp.Simulation) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = new(Domain)
		doms[i].Sim = sim
		doms[i].Reg = reg
		doms[i].Msh = reg.Msh
	}
	return
}

// NewState returns a zeroed State dimensioned for this domain.
// SetStage must be called first
func (o *Domain) NewState() *State {
	return NewState(o.Nu, o.Np)
}

// SetStage sets nodes, equation numbers and boundary conditions for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// nodes and elements
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]Elem, 0)

	// auxiliary maps
	o.DofSys = make(map[string]int)
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]Elem, len(o.Msh.Cells))

	// allocate nodes and elements ------------------------------------------------------------------

	// for each cell
	o.NnzA1, o.NnzA2, o.NnzA3 = 0, 0, 0
	for _, cell := range o.Msh.Cells {

		// get element info
		info, err := GetElemInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}
		chk.IntAssert(len(info.Dofs), len(cell.Verts))

		// equation systems of dof keys
		for _, ykey := range info.Uvars {
			o.DofSys[ykey] = 1
		}
		for _, ykey := range info.Pvars {
			o.DofSys[ykey] = 2
		}

		// loop over nodes of this element
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs; equation numbers are assigned later, in the order of vertices
			for _, ukey := range info.Dofs[j] {
				nod.AddDof(ukey)
			}
		}

		// number of non-zeros
		nv := len(cell.Verts)
		o.NnzA1 += 4 * nv * nv
		o.NnzA2 += nv * nv
		o.NnzA3 += 2 * nv * nv

		// new element
		ele, err := NewElem(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = ele
		o.Elems = append(o.Elems, ele)
	}

	// assign equation numbers, following the order of vertices
	var equ, eqp int
	for _, v := range o.Msh.Verts {
		nod := o.Vid2node[v.Id]
		if nod == nil {
			continue
		}
		for _, dof := range nod.Dofs {
			switch o.DofSys[dof.Key] {
			case 1:
				dof.Eq = equ
				equ++
			case 2:
				dof.Eq = eqp
				eqp++
			default:
				chk.Panic("dof key %q is not attached to an equation system", dof.Key)
			}
		}
	}
	o.Nu = equ
	o.Np = eqp

	// give equation numbers to elements
	for _, ele := range o.Elems {
		cell := o.Msh.Cells[ele.Id()]
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, dof := range o.Vid2node[v].Dofs {
				eqs[j] = append(eqs[j], dof.Eq)
			}
		}
		err = ele.SetEqs(eqs)
		if err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}
	}

	// element conditions and boundary conditions ---------------------------------------------------

	// element conditions
	for _, ec := range stg.EleConds {
		cells, ok := o.Msh.CellTag2cells[ec.Tag]
		if !ok {
			return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e != nil {
				for j, key := range ec.Keys {
					err = e.SetEleConds(key, ec.Values[j])
					if err != nil {
						return chk.Err("cannot set element conditions:\n%v", err)
					}
				}
			}
		}
	}

	// face essential boundary conditions
	o.UBcs.Init("velocity")
	o.PBcs.Init("pressure")
	for _, fbc := range stg.FaceBcs {
		verts, ok := o.Msh.FaceTag2verts[fbc.Tag]
		if !ok {
			return chk.Err("cannot find faces with tag = %d to assign boundary conditions", fbc.Tag)
		}
		var nodes []*Node
		for _, vid := range verts {
			if o.Vid2node[vid] != nil {
				nodes = append(nodes, o.Vid2node[vid])
			}
		}
		for j, key := range fbc.Keys {
			if o.DofSys[key] == 2 {
				err = o.PBcs.Set(key, nodes, fbc.Values[j])
			} else {
				err = o.UBcs.Set(key, nodes, fbc.Values[j])
			}
			if err != nil {
				return chk.Err("setting of essential boundary conditions failed:\n%v", err)
			}
		}
	}

	// build prescribed-equation arrays; the unit diagonal entries add to the non-zeros
	o.NnzA1 += o.UBcs.Build(o.Nu)
	npres := o.PBcs.Build(o.Np)
	if npres == 0 {
		return chk.Err("pressure is not prescribed on any face; the pressure-correction system would be singular")
	}
	o.NnzA2 += npres

	// give boundary conditions to elements
	for _, ele := range o.Elems {
		ele.SetBcs(&o.UBcs, &o.PBcs)
	}
	return
}
