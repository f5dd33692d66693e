// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EssentialBc holds information about one prescribed degree-of-freedom
type EssentialBc struct {
	Key string  // dof key; e.g. "ux" or "p"
	Eq  int     // equation number within the owning system
	Val float64 // prescribed value
}

// EbcArray defines a sortable array of EssentialBc
type EbcArray []*EssentialBc

// Len returns the length of the array
func (o EbcArray) Len() int { return len(o) }

// Swap swaps two items
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less compares two items
func (o EbcArray) Less(i, j int) bool { return o[i].Eq < o[j].Eq }

// EssentialBcs holds the prescribed dofs of one equation system. Prescribed
// equations are enforced by row replacement: the elements skip those rows
// during matrix assembly, a unit diagonal entry is added instead, and the
// corresponding right-hand side entries are overwritten with the prescribed
// values. Columns are left untouched, thus free equations still see the
// prescribed values through the matrix
type EssentialBcs struct {
	Name string   // name of the system; e.g. "velocity" or "pressure"
	Bcs  EbcArray // prescribed dofs

	// built
	Prescribed []bool    // [n] flags of prescribed equations
	Vals       la.Vector // [n] prescribed values (zero at free equations)
}

// Init initialises this structure
func (o *EssentialBcs) Init(name string) {
	o.Name = name
	o.Bcs = make([]*EssentialBc, 0)
	o.Prescribed = nil
	o.Vals = nil
}

// Set prescribes the value of one dof key at all given nodes. A prescription
// at an equation that was set before is replaced; therefore, with overlapping
// faces (e.g. at corners), the last Set wins. Nodes lacking the key are skipped
func (o *EssentialBcs) Set(key string, nodes []*Node, val float64) (err error) {
	chk.IntAssertLessThan(0, len(nodes)) // 0 < len(nodes)
	for _, nod := range nodes {
		d := nod.GetDof(key)
		if d == nil {
			continue
		}
		if d.Eq < 0 {
			return chk.Err("%s system: dof %q of node %d has no equation number yet", o.Name, key, nod.Vert.Id)
		}
		o.set_eq(key, d.Eq, val)
	}
	return
}

// set_eq adds or replaces one prescribed equation
func (o *EssentialBcs) set_eq(key string, eq int, val float64) {
	for _, bc := range o.Bcs {
		if bc.Eq == eq {
			bc.Key, bc.Val = key, val
			return
		}
	}
	o.Bcs = append(o.Bcs, &EssentialBc{key, eq, val})
}

// Build computes the Prescribed flags and Vals arrays for a system with n
// equations; returns the number of prescribed equations
func (o *EssentialBcs) Build(n int) (npres int) {
	o.Prescribed = make([]bool, n)
	o.Vals = la.NewVector(n)
	for _, bc := range o.Bcs {
		if bc.Eq >= n {
			chk.Panic("%s system: equation number %d of prescribed dof %q is out of range. n=%d", o.Name, bc.Eq, bc.Key, n)
		}
		o.Prescribed[bc.Eq] = true
		o.Vals[bc.Eq] = bc.Val
	}
	return len(o.Bcs)
}

// AddUnitDiag puts unit diagonal entries at all prescribed equations of the
// triplet holding the assembled matrix
func (o *EssentialBcs) AddUnitDiag(tr *la.Triplet) {
	for eq, prescribed := range o.Prescribed {
		if prescribed {
			tr.Put(eq, eq, 1)
		}
	}
}

// ApplyToRhs overwrites the prescribed entries of the right-hand side vector
// with the prescribed values
func (o *EssentialBcs) ApplyToRhs(b la.Vector) {
	for _, bc := range o.Bcs {
		b[bc.Eq] = bc.Val
	}
}

// List returns a table listing the prescribed equations, sorted by equation number
func (o *EssentialBcs) List() (l string) {
	sort.Sort(o.Bcs)
	l = io.Sf("\n  %s system: essential boundary conditions:\n", o.Name)
	l += io.Sf("  %8s%8s%23s\n", "eq", "key", "value")
	for _, bc := range o.Bcs {
		l += io.Sf("  %8d%8s%23.15e\n", bc.Eq, bc.Key, bc.Val)
	}
	return
}
