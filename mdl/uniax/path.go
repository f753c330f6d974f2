// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Path holds a strain history
type Path struct {

	// input
	Eps    []float64 `json:"eps"`    // strains; if given, Levels is ignored
	Levels []float64 `json:"levels"` // target strains of a cyclic protocol
	Npts   int       `json:"n"`      // number of points per segment of the cyclic protocol
	Sf     float64   `json:"sf"`     // scale factor applied to the levels; 0 means 1
}

// Size returns the number of points
func (o Path) Size() int { return len(o.Eps) }

// SetCyclic builds a piecewise-linear protocol through levels
//  n points are generated per segment, starting at its first level; the last level is appended
func (o *Path) SetCyclic(levels []float64, n int, sf float64) (err error) {
	if len(levels) < 2 {
		return chk.Err("path: at least two levels are required. %d is invalid", len(levels))
	}
	if n < 1 {
		return chk.Err("path: number of points per segment must be at least 1. n=%d is invalid", n)
	}
	if sf == 0 {
		sf = 1
	}
	o.Levels, o.Npts, o.Sf = levels, n, sf
	o.Eps = make([]float64, 0, (len(levels)-1)*n+1)
	for i := 1; i < len(levels); i++ {
		seg := utl.LinSpace(sf*levels[i-1], sf*levels[i], n+1)
		o.Eps = append(o.Eps, seg[:n]...)
	}
	o.Eps = append(o.Eps, sf*levels[len(levels)-1])
	return
}

// ReadJson reads path from a JSON file
//  {"eps": [0, 0.1, ...]}  or  {"levels": [0, 1, -1, 0], "n": 100, "sf": 1}
func (o *Path) ReadJson(fn string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("path: cannot read %q:\n%v", fn, r)
		}
	}()
	return o.SetJson(io.ReadFile(fn))
}

// SetJson sets path from JSON data
func (o *Path) SetJson(b []byte) (err error) {
	*o = Path{}
	err = json.Unmarshal(b, o)
	if err != nil {
		return chk.Err("path: cannot unmarshal data:\n%v", err)
	}
	if len(o.Eps) > 0 {
		return
	}
	if o.Npts == 0 {
		o.Npts = 200
	}
	return o.SetCyclic(o.Levels, o.Npts, o.Sf)
}
