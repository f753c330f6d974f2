// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Steel01 implements a bilinear model with kinematic hardening
//  the stress is bounded by the lines  σ = b k (ε ∓ uy) ± Fy  with uy = Fy/k
type Steel01 struct {
	Fy float64 // yield force
	K  float64 // elastic stiffness
	B  float64 // post-yield stiffness ratio

	// state
	trial  steelState
	commit steelState
}

// steelState holds the state of Steel01
type steelState struct {
	ε float64 // strain
	σ float64 // stress
	D float64 // tangent
}

// add model to factory
func init() {
	allocators["steel01"] = func() Model { return new(Steel01) }
}

// NewSteel01 returns a new Steel01 model
func NewSteel01(Fy, k, b float64) (o *Steel01, err error) {
	o = &Steel01{Fy: Fy, K: k, B: b}
	err = o.check()
	if err != nil {
		return nil, err
	}
	o.RevertToStart()
	return
}

// Init initialises model
func (o *Steel01) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Fy":
			o.Fy = p.V
		case "k":
			o.K = p.V
		case "b":
			o.B = p.V
		default:
			return chk.Err("steel01: parameter named %q is incorrect", p.N)
		}
	}
	err = o.check()
	if err != nil {
		return
	}
	o.RevertToStart()
	return
}

// check validates parameters
func (o *Steel01) check() error {
	if o.Fy <= 0 || o.K <= 0 || o.B < 0 {
		return chk.Err("steel01: invalid parameters: {Fy=%g, k=%g} must be all > 0 and b=%g must not be negative", o.Fy, o.K, o.B)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Steel01) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "k", V: 10},
		&dbf.P{N: "b", V: 0.02},
	}
}

// CurPrms gets the parameters in use
func (o Steel01) CurPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: o.Fy},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "b", V: o.B},
	}
}

// Name returns the model name
func (o Steel01) Name() string { return "Steel01" }

// GetInitialTangent returns k
func (o Steel01) GetInitialTangent() float64 { return o.K }

// SetTrialStrain computes the trial state for strain ε
func (o *Steel01) SetTrialStrain(ε, dεdt float64) error {
	o.trial = o.commit
	Δε := ε - o.commit.ε
	if math.Abs(Δε) <= MACHEPS {
		return nil
	}
	uy := o.Fy / o.K
	σ := o.commit.σ + Δε*o.K
	if σup := o.B*o.K*(ε-uy) + o.Fy; σ > σup {
		σ = σup
	} else if σlo := o.B*o.K*(ε+uy) - o.Fy; σ < σlo {
		σ = σlo
	}
	o.trial = steelState{ε: ε, σ: σ, D: (σ - o.commit.σ) / Δε}
	return nil
}

// GetStrain returns trial strain
func (o *Steel01) GetStrain() float64 { return o.trial.ε }

// GetStress returns trial stress
func (o *Steel01) GetStress() float64 { return o.trial.σ }

// GetTangent returns trial (secant) tangent
func (o *Steel01) GetTangent() float64 { return o.trial.D }

// CommitState accepts trial state
func (o *Steel01) CommitState() error {
	o.commit = o.trial
	return nil
}

// RevertToLastCommit discards trial state
func (o *Steel01) RevertToLastCommit() error {
	o.trial = o.commit
	return nil
}

// RevertToStart resets to pristine state
func (o *Steel01) RevertToStart() error {
	o.commit = steelState{D: o.K}
	o.trial = o.commit
	return nil
}

// GetCopy returns a deep copy
func (o *Steel01) GetCopy() Model {
	other := *o
	return &other
}

// SendSelf is not available
func (o *Steel01) SendSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "SendSelf")
}

// RecvSelf is not available
func (o *Steel01) RecvSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "RecvSelf")
}
