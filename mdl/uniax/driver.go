// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import "github.com/cpmech/gosl/chk"

// Record holds the converged response at one point of a path
type Record struct {
	Eps float64 // strain
	Sig float64 // stress
	D   float64 // tangent
}

// Driver runs strain paths through uniaxial models
//  each point is set as trial strain and committed
type Driver struct {

	// input
	Mdl Model // uniaxial model

	// settings
	Reset bool // revert model to start before running

	// results
	Res []*Record // results
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	if mdl == nil {
		return chk.Err("driver: model must not be nil")
	}
	o.Mdl = mdl
	o.Reset = true
	return
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {
	if o.Mdl == nil {
		return chk.Err("driver: Init must be called before Run")
	}
	if o.Reset {
		err = o.Mdl.RevertToStart()
		if err != nil {
			return
		}
	}
	o.Res = make([]*Record, pth.Size())
	for i, ε := range pth.Eps {
		err = o.Mdl.SetTrialStrain(ε, 0)
		if err != nil {
			return chk.Err("driver: SetTrialStrain failed at point %d (ε=%g):\n%v", i, ε, err)
		}
		err = o.Mdl.CommitState()
		if err != nil {
			return chk.Err("driver: CommitState failed at point %d (ε=%g):\n%v", i, ε, err)
		}
		o.Res[i] = &Record{Eps: o.Mdl.GetStrain(), Sig: o.Mdl.GetStress(), D: o.Mdl.GetTangent()}
	}
	return
}

// Eps returns the recorded strains
func (o Driver) Eps() (v []float64) {
	v = make([]float64, len(o.Res))
	for i, r := range o.Res {
		v[i] = r.Eps
	}
	return
}

// Sig returns the recorded stresses
func (o Driver) Sig() (v []float64) {
	v = make([]float64, len(o.Res))
	for i, r := range o.Res {
		v[i] = r.Sig
	}
	return
}
