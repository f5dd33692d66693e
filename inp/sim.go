// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.msh) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goflow
	Encoder string `json:"encoder"` // encoder name; "gob" or "json"
	RefSol  string `json:"refsol"`  // reference solution for deviation reporting; e.g. "poiseuille"
	ShowT   bool   `json:"showt"`   // show time and deviation during time stepping
}

// Fluid holds fluid properties
type Fluid struct {
	Name string  `json:"name"` // fluid name; e.g. "water"
	Nu   float64 `json:"nu"`   // kinematic viscosity ν
	Rho  float64 `json:"rho"`  // intrinsic density ρ
}

// GetPrms returns a parameters set for initialising fluid models
func (o *Fluid) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "rho", V: o.Rho},
	}
}

// LinSolData holds data for the sparse linear solver
type LinSolData struct {
	Name      string `json:"name"`      // "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Ordering  string `json:"ordering"`  // ordering scheme
	Scaling   string `json:"scaling"`   // scaling scheme
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
	o.Ordering = "amf"
	o.Scaling = "rcit"
}

// ElemData holds element data
type ElemData struct {
	Tag  int    `json:"tag"`  // tag of element
	Mat  string `json:"mat"`  // material (fluid) name
	Type string `json:"type"` // type of element; e.g. "flow"
	Nip  int    `json:"nip"`  // number of integration points; 0 => use default
	Nipf int    `json:"nipf"` // number of integration points on face; 0 => use default
}

// GenData holds data for generating a structured unit-square mesh
type GenData struct {
	Ndiv  int    `json:"ndiv"`  // number of divisions along each side
	Ctype string `json:"ctype"` // cell type: "tri3" or "qua4"
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	Gen       *GenData    `json:"gen"`       // generate unit-square mesh instead of reading a file
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh      *Mesh       // the mesh
	etag2idx map[int]int // maps element tag to element index in ElemsData slice
}

// FaceBc holds a face boundary condition with values constant in time
type FaceBc struct {
	Tag    int       `json:"tag"`    // tag of face
	Keys   []string  `json:"keys"`   // "ux", "uy" or "p"
	Values []float64 `json:"values"` // prescribed values
}

// EleCond holds an element condition with values constant in time
type EleCond struct {
	Tag    int       `json:"tag"`    // tag of cell
	Keys   []string  `json:"keys"`   // "fx" or "fy" (body force components)
	Values []float64 `json:"values"` // values
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf     float64 `json:"tf"`     // final time
	NSteps int     `json:"nsteps"` // number of time steps
	DtOut  float64 `json:"dtout"`  // time interval for output, rounded to a multiple of Dt; 0 => Dt

	// derived
	Dt float64 // time step size == Tf / NSteps
}

// Stage holds stage data
type Stage struct {
	Desc     string      `json:"desc"`     // description of stage
	EleConds []*EleCond  `json:"eleconds"` // element conditions; e.g. body forces
	FaceBcs  []*FaceBc   `json:"facebcs"`  // face boundary conditions
	Control  TimeControl `json:"control"`  // time control
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data       `json:"data"`    // global simulation data
	Fluid   Fluid      `json:"fluid"`   // fluid properties
	Regions []*Region  `json:"regions"` // regions
	LinSol  LinSolData `json:"linsol"`  // linear solver data
	Stages  []*Stage   `json:"stages"`  // stages

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	DirOut      string // directory to save results
	Key         string // simulation key; e.g. mysim01.sim => mysim01
	EncType     string // encoder type
	Ndim        int    // space dimension
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file, applying default
// values and reading (or generating) the meshes of all regions
func ReadSim(dir, fn string, erasePrev bool, goroutineId int) (*Simulation, error) {

	// new sim
	var o Simulation
	o.GoroutineId = goroutineId

	// read file
	simfilepath := filepath.Join(os.ExpandEnv(dir), fn)
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file:\n%v", err)
	}

	// set default values
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(fn)
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/goflow/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasePrev {
		os.RemoveAll(o.DirOut)
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		return nil, chk.Err("cannot create directory for output results (%s):\n%v", o.DirOut, err)
	}

	// fluid properties
	if o.Fluid.Name == "" {
		o.Fluid.Name = "fluid"
	}
	if o.Fluid.Rho == 0 {
		o.Fluid.Rho = 1.0
	}
	if o.Fluid.Nu <= 0 {
		return nil, chk.Err("kinematic viscosity must be positive. %g is invalid", o.Fluid.Nu)
	}

	// for all regions
	if len(o.Regions) < 1 {
		return nil, chk.Err("at least one region must be defined")
	}
	for i, reg := range o.Regions {

		// read or generate mesh
		if reg.Gen != nil {
			reg.Msh, err = GenUnitSquare(reg.Gen.Ndiv, reg.Gen.Ctype)
		} else {
			mdir := os.ExpandEnv(dir)
			if reg.AbsPath {
				mdir = ""
			}
			reg.Msh, err = ReadMsh(mdir, reg.Mshfile, goroutineId)
		}
		if err != nil {
			return nil, chk.Err("cannot get mesh of region %d:\n%v", i, err)
		}

		// dependent variables
		reg.etag2idx = make(map[int]int)
		for j, ed := range reg.ElemsData {
			if ed.Mat != o.Fluid.Name {
				return nil, chk.Err("material %q is not available for element tag %d", ed.Mat, ed.Tag)
			}
			reg.etag2idx[ed.Tag] = j
		}

		// space dimension
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			return nil, chk.Err("Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
		}
	}

	// for all stages
	if len(o.Stages) < 1 {
		return nil, chk.Err("at least one stage must be defined")
	}
	for i, stg := range o.Stages {

		// check time control
		if stg.Control.Tf <= 0 {
			return nil, chk.Err("stage %d: final time must be positive. %g is invalid", i, stg.Control.Tf)
		}
		if stg.Control.NSteps < 1 {
			return nil, chk.Err("stage %d: number of time steps must be at least 1. %d is invalid", i, stg.Control.NSteps)
		}
		stg.Control.Dt = stg.Control.Tf / float64(stg.Control.NSteps)
		nout := int(stg.Control.DtOut/stg.Control.Dt + 0.5)
		if nout < 1 {
			nout = 1
		}
		stg.Control.DtOut = float64(nout) * stg.Control.Dt

		// check conditions
		for _, fbc := range stg.FaceBcs {
			if len(fbc.Keys) != len(fbc.Values) {
				return nil, chk.Err("stage %d: face tag %d: number of keys and values must be equal. %d != %d", i, fbc.Tag, len(fbc.Keys), len(fbc.Values))
			}
			for _, key := range fbc.Keys {
				if key != "ux" && key != "uy" && key != "p" {
					return nil, chk.Err("stage %d: face tag %d: key %q is invalid", i, fbc.Tag, key)
				}
			}
		}
		for _, ec := range stg.EleConds {
			if len(ec.Keys) != len(ec.Values) {
				return nil, chk.Err("stage %d: cell tag %d: number of keys and values must be equal. %d != %d", i, ec.Tag, len(ec.Keys), len(ec.Values))
			}
			for _, key := range ec.Keys {
				if key != "fx" && key != "fy" {
					return nil, chk.Err("stage %d: cell tag %d: key %q is invalid", i, ec.Tag, key)
				}
			}
		}
	}

	// results
	return &o, nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	idx, ok := o.etag2idx[etag]
	if !ok {
		return nil
	}
	return o.ElemsData[idx]
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// GetEleCond returns element condition structure by giving an elem tag
//  Note: returns nil if not found
func (o Stage) GetEleCond(elemtag int) *EleCond {
	for _, ec := range o.EleConds {
		if elemtag == ec.Tag {
			return ec
		}
	}
	return nil
}

// GetFaceBc returns face boundary condition structure by giving a face tag
//  Note: returns nil if not found
func (o Stage) GetFaceBc(facetag int) *FaceBc {
	for _, fbc := range o.FaceBcs {
		if facetag == fbc.Tag {
			return fbc
		}
	}
	return nil
}
