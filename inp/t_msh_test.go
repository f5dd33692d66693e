// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. read 2x2 mesh")

	msh, err := ReadMsh("data", "sq2x2.msh", 0)
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return
	}
	io.Pforan("%v\n", msh)

	// sizes and bounding box
	chk.IntAssert(len(msh.Verts), 9)
	chk.IntAssert(len(msh.Cells), 8)
	chk.Float64(tst, "Xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "Xmax", 1e-17, msh.Xmax, 1)
	chk.Float64(tst, "Ymin", 1e-17, msh.Ymin, 0)
	chk.Float64(tst, "Ymax", 1e-17, msh.Ymax, 1)

	// maps
	chk.Ints(tst, "verts @ -10 (left)", msh.FaceTag2verts[-10], []int{0, 3, 6})
	chk.Ints(tst, "verts @ -11 (right)", msh.FaceTag2verts[-11], []int{2, 5, 8})
	chk.Ints(tst, "verts @ -20 (bottom)", msh.FaceTag2verts[-20], []int{0, 1, 2})
	chk.Ints(tst, "verts @ -21 (top)", msh.FaceTag2verts[-21], []int{6, 7, 8})
	chk.IntAssert(len(msh.CellTag2cells[-1]), 8)
	chk.IntAssert(len(msh.Ctype2cells["tri3"]), 8)
	chk.IntAssert(len(msh.FaceTag2cells[-20]), 2)
	chk.IntAssert(len(msh.VertTag2verts[-1]), 1)

	// shapes and coordinates
	c := msh.Cells[0]
	if c.Shp == nil {
		tst.Errorf("shape structure of cell 0 was not set")
		return
	}
	chk.String(tst, c.Shp.Type, "tri3")
	x := msh.ExtractCoords(0)
	chk.Deep2(tst, "x @ cell 0", 1e-17, x, [][]float64{
		{0, 0.5, 0.5},
		{0, 0, 0.5},
	})
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. generated 2x2 mesh matches the handmade one")

	gen, err := GenUnitSquare(2, "tri3")
	if err != nil {
		tst.Errorf("cannot generate mesh:\n%v", err)
		return
	}
	msh, err := ReadMsh("data", "sq2x2.msh", 0)
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return
	}

	chk.IntAssert(len(gen.Verts), len(msh.Verts))
	chk.IntAssert(len(gen.Cells), len(msh.Cells))
	for i, v := range gen.Verts {
		chk.Array(tst, io.Sf("vert %d", i), 1e-17, v.C, msh.Verts[i].C)
		chk.IntAssert(v.Tag, msh.Verts[i].Tag)
	}
	for i, c := range gen.Cells {
		chk.Ints(tst, io.Sf("cell %d verts", i), c.Verts, msh.Cells[i].Verts)
		chk.Ints(tst, io.Sf("cell %d ftags", i), c.FTags, msh.Cells[i].FTags)
	}
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. qua4 generation, Jacobians and JSON output")

	msh, err := GenUnitSquare(3, "qua4")
	if err != nil {
		tst.Errorf("cannot generate mesh:\n%v", err)
		return
	}
	chk.IntAssert(len(msh.Verts), 16)
	chk.IntAssert(len(msh.Cells), 9)

	// all Jacobians must be positive
	for _, c := range msh.Cells {
		x := msh.ExtractCoords(c.Id)
		err = c.Shp.CalcAtIp(x, []float64{0, 0, 0, 0}, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		if c.Shp.J <= 0 {
			tst.Errorf("Jacobian of cell %d is not positive. J=%g", c.Id, c.Shp.J)
			return
		}
		chk.Float64(tst, io.Sf("J of cell %d", c.Id), 1e-15, c.Shp.J, 1.0/36.0)
	}

	// JSON output can be read back
	var clone Mesh
	err = json.Unmarshal([]byte(msh.String()), &clone)
	if err != nil {
		tst.Errorf("cannot unmarshal String() output:\n%v", err)
		return
	}
	err = clone.CalcDerived(0)
	if err != nil {
		tst.Errorf("CalcDerived failed on clone:\n%v", err)
		return
	}
	chk.IntAssert(len(clone.Verts), 16)
	chk.Ints(tst, "cell 0 after roundtrip", clone.Cells[0].Verts, msh.Cells[0].Verts)

	// error cases
	if _, err = GenUnitSquare(0, "tri3"); err == nil {
		tst.Errorf("error due to ndiv=0 was not raised")
	}
	if _, err = GenUnitSquare(2, "tri6"); err == nil {
		tst.Errorf("error due to wrong cell type was not raised")
	}
	if _, err = ReadMsh("data", "nonexistent.msh", 0); err == nil {
		tst.Errorf("error due to missing mesh file was not raised")
	}
}
