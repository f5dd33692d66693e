// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/goflow/inp"

// Dof holds information about one degree-of-freedom == solution variable
type Dof struct {
	Key string // name of this dof; e.g. "ux", "uy" or "p"
	Eq  int    // equation number within the system that owns this dof
}

// Node holds the degrees-of-freedom attached to one vertex of the mesh.
// Velocity dofs ("ux", "uy") and pressure dofs ("p") belong to two
// independent equation systems; the domain assigns the equation numbers
type Node struct {
	Dofs []*Dof    // degrees-of-freedom
	Vert *inp.Vert // pointer to vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{[]*Dof{}, v}
}

// AddDof adds a new dof to this node; it does nothing if the dof exists
// already. The equation number is assigned later by the domain
func (o *Node) AddDof(key string) {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, -1})
}

// GetDof returns the dof with given key; returns nil if not found
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the dof with given key;
// returns -1 if not found
func (o *Node) GetEq(key string) int {
	if dof := o.GetDof(key); dof != nil {
		return dof.Eq
	}
	return -1
}
