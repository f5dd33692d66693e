// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data: natural coordinates and weight: {r, s, t, w}
type Ipoint []float64

// integration point rules
var (
	ips_tri_1 = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}

	// exact for polynomials up to second degree
	ips_tri_3 = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}

	ips_qua_4 = []Ipoint{
		{-sq13, -sq13, 0, 1},
		{sq13, -sq13, 0, 1},
		{sq13, sq13, 0, 1},
		{-sq13, sq13, 0, 1},
	}

	ips_qua_9 = []Ipoint{
		{-sq35, -sq35, 0, 25.0 / 81.0}, {0, -sq35, 0, 40.0 / 81.0}, {sq35, -sq35, 0, 25.0 / 81.0},
		{-sq35, 0, 0, 40.0 / 81.0}, {0, 0, 0, 64.0 / 81.0}, {sq35, 0, 0, 40.0 / 81.0},
		{-sq35, sq35, 0, 25.0 / 81.0}, {0, sq35, 0, 40.0 / 81.0}, {sq35, sq35, 0, 25.0 / 81.0},
	}

	ips_lin_1 = []Ipoint{
		{0, 0, 0, 2},
	}

	ips_lin_2 = []Ipoint{
		{-sq13, 0, 0, 1},
		{sq13, 0, 0, 1},
	}

	ips_lin_3 = []Ipoint{
		{-sq35, 0, 0, 5.0 / 9.0},
		{0, 0, 0, 8.0 / 9.0},
		{sq35, 0, 0, 5.0 / 9.0},
	}
)

var (
	sq13 = math.Sqrt(1.0 / 3.0)
	sq35 = math.Sqrt(3.0 / 5.0)
)

// GetIps returns the integration points of the cell and of its faces
//  Input:
//   nip  -- number of integration points of cell; 0 means default
//   nipf -- number of integration points of face; 0 means default
func (o *Shape) GetIps(nip, nipf int) (ipsElem, ipsFace []Ipoint, err error) {
	ipsElem, err = get_ips(o.Type, nip)
	if err != nil {
		return
	}
	if o.FaceType != "" {
		ipsFace, err = get_ips(o.FaceType, nipf)
	}
	return
}

// get_ips selects an integration rule for a geometry type
func get_ips(geoType string, nip int) (ips []Ipoint, err error) {
	switch geoType {
	case "tri3":
		switch nip {
		case 0, 3:
			return ips_tri_3, nil
		case 1:
			return ips_tri_1, nil
		}
	case "qua4":
		switch nip {
		case 0, 4:
			return ips_qua_4, nil
		case 9:
			return ips_qua_9, nil
		}
	case "lin2":
		switch nip {
		case 0, 2:
			return ips_lin_2, nil
		case 1:
			return ips_lin_1, nil
		case 3:
			return ips_lin_3, nil
		}
	default:
		return nil, chk.Err("cannot find integration points for geometry type %q", geoType)
	}
	return nil, chk.Err("geometry type %q has no rule with nip=%d", geoType, nip)
}
