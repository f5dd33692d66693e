// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/cpmech/goflow/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Ztol is the tolerance to detect vertices on boundaries
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type; e.g. "tri3", "qua4"
	Part  int    // partition id
	Verts []int  // vertices
	FTags []int  // edge (face) tags; negative values mark boundary edges

	// derived
	Shp *shp.Shape // shape structure
}

// CellFaceId holds a cell and one of its face ids
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells with tagged faces
	FaceTag2verts map[int][]int        // face tag => vertices on tagged faces
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
}

// ReadMsh reads a mesh from a (.msh) JSON file
func ReadMsh(dir, fn string, goroutineId int) (*Mesh, error) {

	// new mesh
	var o Mesh

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file:\n%v", err)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.CalcDerived(goroutineId)
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", o.FnamePath, err)
	}
	return &o, nil
}

// CalcDerived computes derived data such as the bounding box and tag maps
func (o *Mesh) CalcDerived(goroutineId int) error {

	// check
	if len(o.Verts) < 3 {
		return chk.Err("at least 3 vertices are required. %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required. %d is invalid", len(o.Cells))
	}

	// vertex related data
	o.Ndim = 2
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id and dimension
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in list. %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return chk.Err("all vertices must have 2 coordinates. %d is invalid (vertex %d)", len(v.C), v.Id)
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return chk.Err("cells ids must coincide with order in list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("cells tags must be negative. %d is invalid (cell %d)", c.Tag, c.Id)
		}

		// get shape structure
		c.Shp = shp.Get(c.Type, goroutineId)
		if c.Shp == nil {
			return chk.Err("cannot find shape structure for cell type %q", c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d (%s) must have %d vertices. %d is invalid", c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		if len(c.FTags) != len(c.Shp.FaceLocalVerts) {
			return chk.Err("cell %d (%s) must have %d face tags. %d is invalid", c.Id, c.Type, len(c.Shp.FaceLocalVerts), len(c.FTags))
		}

		// cell tag => cells
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)

		// face tags
		for f, ftag := range c.FTags {
			if ftag < 0 {
				pairs := o.FaceTag2cells[ftag]
				o.FaceTag2cells[ftag] = append(pairs, CellFaceId{c, f})
				for _, l := range c.Shp.FaceLocalVerts[f] {
					vid := c.Verts[l]
					if utl.IntIndexSmall(o.FaceTag2verts[ftag], vid) < 0 {
						o.FaceTag2verts[ftag] = append(o.FaceTag2verts[ftag], vid)
					}
				}
			}
		}

		// cell type => cells
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)
	}

	// sort vertices on tagged faces
	for ftag := range o.FaceTag2verts {
		sort.Ints(o.FaceTag2verts[ftag])
	}
	return nil
}

// ExtractCoords returns the coordinates matrix of a cell [ndim][nverts]
func (o *Mesh) ExtractCoords(cid int) (x [][]float64) {
	c := o.Cells[cid]
	x = utl.Alloc(o.Ndim, len(c.Verts))
	for m, vid := range c.Verts {
		for i := 0; i < o.Ndim; i++ {
			x[i][m] = o.Verts[vid].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%3d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"part\":%d, \"verts\":[", o.Id, o.Tag, o.Type, o.Part)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
