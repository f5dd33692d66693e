// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// GenUnitSquare generates a structured mesh over the unit square. With ctype=="tri3", each
// grid square is cut by the diagonal running from its lower-left to its upper-right corner.
//
//   ndiv=2, ctype="tri3":         face tags:            vertex tags (corners):
//
//    6---------7---------8          -21 (top)             -4          -3
//    | [5]   ' | [7]   ' |        ,-----------,            ,----------,
//    |     '   |     '   |        |           |            |          |
//    |   '     |   '     |    -10 |           | -11        |          |
//    | ' [4]   | ' [6]   |        |           |            |          |
//    3---------4---------5        '-----------'            '----------'
//    | [1]   ' | [3]   ' |          -20 (bottom)          -1          -2
//    |     '   |     '   |
//    |   '     |   '     |
//    | ' [0]   | ' [2]   |
//    0---------1---------2
//
func GenUnitSquare(ndiv int, ctype string) (*Mesh, error) {

	// check
	if ndiv < 1 {
		return nil, chk.Err("number of divisions must be at least 1. %d is invalid", ndiv)
	}
	if ctype != "tri3" && ctype != "qua4" {
		return nil, chk.Err("cell type must be \"tri3\" or \"qua4\". %q is invalid", ctype)
	}

	// vertices
	var o Mesh
	npts := ndiv + 1
	o.Verts = make([]*Vert, npts*npts)
	for j := 0; j < npts; j++ {
		for i := 0; i < npts; i++ {
			tag := 0
			switch {
			case i == 0 && j == 0:
				tag = -1
			case i == ndiv && j == 0:
				tag = -2
			case i == ndiv && j == ndiv:
				tag = -3
			case i == 0 && j == ndiv:
				tag = -4
			}
			id := j*npts + i
			c := []float64{float64(i) / float64(ndiv), float64(j) / float64(ndiv)}
			o.Verts[id] = &Vert{Id: id, Tag: tag, C: c}
		}
	}

	// cells
	ncells := ndiv * ndiv
	if ctype == "tri3" {
		ncells *= 2
	}
	o.Cells = make([]*Cell, 0, ncells)
	for j := 0; j < ndiv; j++ {
		for i := 0; i < ndiv; i++ {

			// vertices of grid square and boundary tags
			ll := j*npts + i
			lr := ll + 1
			ul := ll + npts
			ur := ul + 1
			btm, rgt, top, lft := 0, 0, 0, 0
			if j == 0 {
				btm = -20
			}
			if i == ndiv-1 {
				rgt = -11
			}
			if j == ndiv-1 {
				top = -21
			}
			if i == 0 {
				lft = -10
			}

			// counter-clockwise vertices; thus face normals point outward
			switch ctype {
			case "tri3":
				id := len(o.Cells)
				o.Cells = append(o.Cells, &Cell{
					Id: id, Tag: -1, Type: "tri3",
					Verts: []int{ll, lr, ur},
					FTags: []int{btm, rgt, 0},
				})
				o.Cells = append(o.Cells, &Cell{
					Id: id + 1, Tag: -1, Type: "tri3",
					Verts: []int{ll, ur, ul},
					FTags: []int{0, top, lft},
				})
			case "qua4":
				o.Cells = append(o.Cells, &Cell{
					Id: len(o.Cells), Tag: -1, Type: "qua4",
					Verts: []int{ll, lr, ur, ul},
					FTags: []int{btm, rgt, top, lft},
				})
			}
		}
	}

	// derived data
	err := o.CalcDerived(0)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
