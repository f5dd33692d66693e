// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/goflow/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteVtu writes a ParaView (XML .vtu) file with the mesh and the nodal
// velocity and pressure fields of one state. The file is named
// fnkey_tidx.vtu and saved in dirout
func WriteVtu(dirout, fnkey string, tidx int, sta *fem.State) (err error) {

	// mesh
	m := Dom.Msh
	nv := len(m.Verts)
	nc := len(m.Cells)
	if len(sta.U) != 2*nv || len(sta.P) != nv {
		return chk.Err("state does not correspond to mesh: %d vertices, nu=%d, np=%d", nv, len(sta.U), len(sta.P))
	}

	// header
	buf := new(bytes.Buffer)
	io.Ff(buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	io.Ff(buf, "<UnstructuredGrid>\n<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range m.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e\n", v.C[0], v.C[1], 0.0)
	}
	io.Ff(buf, "</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		for _, vid := range c.Verts {
			io.Ff(buf, "%d ", vid)
		}
		io.Ff(buf, "\n")
	}
	io.Ff(buf, "</DataArray>\n")

	// offsets of cells
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for _, c := range m.Cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}
	io.Ff(buf, "\n</DataArray>\n")

	// types of cells
	io.Ff(buf, "<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		if c.Shp.VtkCode < 1 {
			return chk.Err("cell type %q has no VTK counterpart", c.Type)
		}
		io.Ff(buf, "%d ", c.Shp.VtkCode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")

	// nodal fields
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")
	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"u\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range m.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", sta.U[2*v.Id], sta.U[2*v.Id+1], 0.0)
	}
	io.Ff(buf, "\n</DataArray>\n")
	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"p\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range m.Verts {
		io.Ff(buf, "%23.15e ", sta.P[v.Id])
	}
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")

	// footer
	io.Ff(buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	// save file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fnpath := filepath.Join(dirout, io.Sf("%s_%06d.vtu", fnkey, tidx))
	fil, err := os.Create(fnpath)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fnpath, err)
	}
	defer fil.Close()
	_, err = fil.Write(buf.Bytes())
	return
}
