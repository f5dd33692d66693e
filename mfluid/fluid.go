// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mfluid implements models for Newtonian fluids
package mfluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements an incompressible Newtonian fluid with constant properties
type Model struct {
	Nu  float64 // kinematic viscosity ν
	Rho float64 // intrinsic density ρ
}

// Init initialises this model from a set of parameters
func (o *Model) Init(prms dbf.Params) error {
	o.Rho = 1.0 // default
	for _, p := range prms {
		switch p.N {
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("parameter named %q is incorrect", p.N)
		}
	}
	return o.Validate()
}

// Validate checks whether the parameters are valid
func (o *Model) Validate() error {
	if o.Nu <= 0 {
		return chk.Err("kinematic viscosity must be positive. nu=%g is invalid", o.Nu)
	}
	if o.Rho <= 0 {
		return chk.Err("density must be positive. rho=%g is invalid", o.Rho)
	}
	return nil
}

// Mu returns the dynamic viscosity μ = ρ·ν
func (o Model) Mu() float64 {
	return o.Rho * o.Nu
}

// GetPrms returns the model parameters. With example==true, returns
// parameters for water at 20°C in SI units
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nu", V: 1.0e-6},
			&dbf.P{N: "rho", V: 998.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "rho", V: o.Rho},
	}
}
