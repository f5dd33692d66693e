// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSolver wraps a sparse direct solver holding the factorisation of one
// stage matrix. Init factorises the matrix once; Solve is then called once
// per time step, reusing the factorisation. Failures reported by the solver
// are converted into errors carrying the name of the system
type LinSolver struct {
	Name string // name of the system; e.g. "tentative velocity"
	n    int    // number of equations
	sol  la.SparseSolver
}

// NewLinSolver returns a new LinSolver
//  name -- label used in error messages; e.g. "pressure correction"
//  kind -- kind of solver; e.g. "umfpack"
//  n    -- number of equations
func NewLinSolver(name, kind string, n int) (o *LinSolver, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%s system: cannot allocate %q solver: %v", name, kind, r)
		}
	}()
	o = &LinSolver{Name: name, n: n}
	o.sol = la.NewSparseSolver(kind)
	return
}

// Init initialises the solver with the assembled triplet and performs the
// symbolic and numerical factorisations
func (o *LinSolver) Init(tr *la.Triplet) (err error) {
	if tr.Len() < 1 {
		return chk.Err("%s system: matrix triplet is empty", o.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%s system: factorisation failed: %v", o.Name, r)
		}
	}()
	o.sol.Init(tr, nil)
	o.sol.Fact()
	return
}

// Solve solves the linear system for the given right-hand side, reusing the
// factorisation. The solution vector is checked for non-finite components
func (o *LinSolver) Solve(x, b la.Vector) (err error) {
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("%s system: vector sizes are inconsistent. %d, %d != %d", o.Name, len(x), len(b), o.n)
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%s system: solve failed: %v", o.Name, r)
		}
	}()
	o.sol.Solve(x, b, false)
	for i := 0; i < o.n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return chk.Err("%s system: solution has a non-finite component at equation %d", o.Name, i)
		}
	}
	return
}

// Free releases the memory allocated by the solver
func (o *LinSolver) Free() {
	if o.sol != nil {
		o.sol.Free()
	}
}
