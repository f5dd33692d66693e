// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dom01(tst *testing.T) {

	/* unit square with 2x2 divisions; the equations of the velocity system
	 * are ux => 2·vid, uy => 2·vid+1; pressure equations equal vids
	 *
	 *   -10: p=1   -11: p=0   -20,-21: ux=uy=0
	 *
	 *    6---------7---------8
	 *    | [5]   ' | [7]   ' |
	 *    |     '   |     '   |
	 *    |   '     |   '     |
	 *    | ' [4]   | ' [6]   |
	 *    3---------4---------5
	 *    | [1]   ' | [3]   ' |
	 *    |     '   |     '   |
	 *    |   '     |   '     |
	 *    | ' [0]   | ' [2]   |
	 *    0---------1---------2
	 */

	//verbose()
	chk.PrintTitle("dom01. domain, equations and constraints")

	// start simulation
	analysis, err := NewMain("data/dom2.sim", true, chk.Verbose, 0)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}

	// set stage
	dom := analysis.Domains[0]
	err = dom.SetStage(0)
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	// nodes and elements
	chk.IntAssert(len(dom.Nodes), 9)
	chk.IntAssert(len(dom.Elems), 8)

	// check dofs
	for _, nod := range dom.Nodes {
		chk.IntAssert(len(nod.Dofs), 3)
		chk.String(tst, nod.Dofs[0].Key, "ux")
		chk.String(tst, nod.Dofs[1].Key, "uy")
		chk.String(tst, nod.Dofs[2].Key, "p")
	}

	// check equations
	nids, eqs := get_nids_eqs(dom)
	chk.Ints(tst, "nids", nids, []int{0, 1, 4, 3, 2, 5, 7, 6, 8})
	chk.Ints(tst, "eqs", eqs, []int{
		0, 1, 0,
		2, 3, 1,
		8, 9, 4,
		6, 7, 3,
		4, 5, 2,
		10, 11, 5,
		14, 15, 7,
		12, 13, 6,
		16, 17, 8,
	})

	// check dimensions
	chk.IntAssert(dom.Nu, 18)
	chk.IntAssert(dom.Np, 9)
	chk.IntAssert(dom.NnzA1, 8*36+12)
	chk.IntAssert(dom.NnzA2, 8*9+6)
	chk.IntAssert(dom.NnzA3, 8*18)

	// check umap and pmap of first element
	ele := dom.Elems[0].(*FlowElem)
	io.Pforan("e0.Umap = %v\n", ele.Umap)
	io.Pforan("e0.Pmap = %v\n", ele.Pmap)
	chk.Ints(tst, "umap", ele.Umap, []int{0, 1, 2, 3, 8, 9})
	chk.Ints(tst, "pmap", ele.Pmap, []int{0, 1, 4})

	// check velocity constraints: walls at bottom (0,1,2) and top (6,7,8)
	chk.IntAssert(len(dom.UBcs.Bcs), 12)
	var ueqs []int
	for _, c := range dom.UBcs.Bcs {
		if c.Key != "ux" && c.Key != "uy" {
			tst.Errorf("key %s is incorrect", c.Key)
			return
		}
		if c.Val != 0 {
			tst.Errorf("prescribed velocity must be zero")
			return
		}
		ueqs = append(ueqs, c.Eq)
	}
	sort.Ints(ueqs)
	chk.Ints(tst, "equations with u prescribed", ueqs, []int{0, 1, 2, 3, 4, 5, 12, 13, 14, 15, 16, 17})

	// check pressure constraints: inlet (0,3,6) and outlet (2,5,8)
	chk.IntAssert(len(dom.PBcs.Bcs), 6)
	var peqs []int
	for _, c := range dom.PBcs.Bcs {
		chk.String(tst, c.Key, "p")
		peqs = append(peqs, c.Eq)
	}
	sort.Ints(peqs)
	chk.Ints(tst, "equations with p prescribed", peqs, []int{0, 2, 3, 5, 6, 8})

	// check built arrays
	chk.IntAssert(len(dom.PBcs.Prescribed), 9)
	for _, eq := range []int{0, 3, 6} {
		if !dom.PBcs.Prescribed[eq] {
			tst.Errorf("inlet pressure equation %d must be flagged", eq)
			return
		}
		chk.Float64(tst, io.Sf("pin @ eq %d", eq), 1e-17, dom.PBcs.Vals[eq], 1.0)
	}
	for _, eq := range []int{2, 5, 8} {
		if !dom.PBcs.Prescribed[eq] {
			tst.Errorf("outlet pressure equation %d must be flagged", eq)
			return
		}
		chk.Float64(tst, io.Sf("pout @ eq %d", eq), 1e-17, dom.PBcs.Vals[eq], 0.0)
	}
	for _, eq := range []int{1, 4, 7} {
		if dom.PBcs.Prescribed[eq] {
			tst.Errorf("pressure equation %d must be free", eq)
			return
		}
	}

	// print constraints
	io.Pf("%v\n", dom.UBcs.List())
	io.Pf("%v\n", dom.PBcs.List())
	if len(dom.UBcs.List()) == 0 {
		tst.Errorf("constraints list must not be empty")
	}
}

func Test_dom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom02. invalid boundary conditions")

	// no pressure prescribed anywhere => singular pressure correction
	analysis, err := NewMain("data/nopin.sim", true, chk.Verbose, 0)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = analysis.Domains[0].SetStage(0)
	if err == nil {
		tst.Errorf("SetStage must fail when pressure is not prescribed on any face")
		return
	}
	io.Pf("OK. error = %v\n", err)

	// boundary condition on inexistent face tag
	analysis, err = NewMain("data/badtag.sim", true, chk.Verbose, 0)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	err = analysis.Domains[0].SetStage(0)
	if err == nil {
		tst.Errorf("SetStage must fail with an inexistent face tag")
		return
	}
	io.Pf("OK. error = %v\n", err)
}
