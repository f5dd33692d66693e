// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "sort"

// Locator defines the interface for locating mesh vertices
type Locator interface {
	Locate() (vids []int)
}

// At implements a locator of the single vertex at one point
//  Example: At{0.5, 0.5}
type At []float64

// Along implements a locator of vertices along the segment from point A to
// point B. Vertices are returned sorted by the distance from A
//  Example: Along{{0.5, 0}, {0.5, 1}}
type Along [][]float64

// AlongX implements a locator of vertices along a horizontal line
//  Example: AlongX{0.5} // y_cte = 0.5
type AlongX []float64

// AlongY implements a locator of vertices along a vertical line
//  Example: AlongY{0.5} // x_cte = 0.5
type AlongY []float64

// Locate finds the vertex at the point, returning at most one id
func (o At) Locate() (vids []int) {
	vid, sq := NodBins.FindClosest(o)
	if vid >= 0 && sq <= TolC*TolC {
		return []int{vid}
	}
	return
}

// Locate finds the vertices on the segment A-B
func (o Along) Locate() (vids []int) {

	// segment
	A := o[0]
	B := o[1]
	dx := B[0] - A[0]
	dy := B[1] - A[1]
	l2 := dx*dx + dy*dy
	if l2 < TolC {
		return
	}

	// vertices near the segment, sorted by the distance from A
	vids = NodBins.FindAlongSegment(A, B, TolC)
	sort.Slice(vids, func(i, j int) bool {
		ci := Dom.Msh.Verts[vids[i]].C
		cj := Dom.Msh.Verts[vids[j]].C
		return (ci[0]-A[0])*dx+(ci[1]-A[1])*dy < (cj[0]-A[0])*dx+(cj[1]-A[1])*dy
	})
	return
}

// Locate finds the vertices on the horizontal line y = y_cte
func (o AlongX) Locate() (vids []int) {
	y := o[0]
	return Along{{Dom.Msh.Xmin, y}, {Dom.Msh.Xmax, y}}.Locate()
}

// Locate finds the vertices on the vertical line x = x_cte
func (o AlongY) Locate() (vids []int) {
	x := o[0]
	return Along{{x, Dom.Msh.Ymin}, {x, Dom.Msh.Ymax}}.Locate()
}
