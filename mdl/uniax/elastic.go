// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Elastic implements a linear elastic model
type Elastic struct {
	E      float64 // stiffness
	trial  float64 // trial strain
	commit float64 // committed strain
}

// add model to factory
func init() {
	allocators["elastic"] = func() Model { return new(Elastic) }
}

// Init initialises model
func (o *Elastic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		default:
			return chk.Err("elastic: parameter named %q is incorrect", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("elastic: E=%g must be > 0", o.E)
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
	}
}

// CurPrms gets the parameters in use
func (o Elastic) CurPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: o.E},
	}
}

// Name returns the model name
func (o Elastic) Name() string { return "Elastic" }

// GetInitialTangent returns E
func (o Elastic) GetInitialTangent() float64 { return o.E }

// SetTrialStrain sets trial strain
func (o *Elastic) SetTrialStrain(ε, dεdt float64) error {
	o.trial = ε
	return nil
}

// GetStrain returns trial strain
func (o *Elastic) GetStrain() float64 { return o.trial }

// GetStress returns trial stress
func (o *Elastic) GetStress() float64 { return o.E * o.trial }

// GetTangent returns E
func (o *Elastic) GetTangent() float64 { return o.E }

// CommitState accepts trial state
func (o *Elastic) CommitState() error {
	o.commit = o.trial
	return nil
}

// RevertToLastCommit discards trial state
func (o *Elastic) RevertToLastCommit() error {
	o.trial = o.commit
	return nil
}

// RevertToStart resets to pristine state
func (o *Elastic) RevertToStart() error {
	o.trial, o.commit = 0, 0
	return nil
}

// GetCopy returns a deep copy
func (o *Elastic) GetCopy() Model {
	other := *o
	return &other
}

// SendSelf is not available
func (o *Elastic) SendSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "SendSelf")
}

// RecvSelf is not available
func (o *Elastic) RecvSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "RecvSelf")
}
