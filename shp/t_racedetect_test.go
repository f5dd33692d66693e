// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_race01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("race01. concurrent CalcAtR on copies")

	xmat := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}

	// goroutineId > 0 returns copies; thus no data races on the scratchpads
	nchan := 4
	done := make(chan int, nchan)
	shapes := make([]*Shape, nchan)
	for i := 0; i < nchan; i++ {
		shapes[i] = Get("tri3", i)
	}

	for i := 0; i < nchan; i++ {
		go func(shape *Shape) {
			for j := 0; j < 100; j++ {
				shape.CalcAtR(xmat, []float64{0.25, 0.25, 0}, true)
			}
			done <- 1
		}(shapes[i])
	}
	for i := 0; i < nchan; i++ {
		<-done
	}

	// all copies computed the same Jacobian
	for i := 0; i < nchan; i++ {
		chk.Float64(tst, "J", 1e-17, shapes[i].J, 1.0)
	}
}
