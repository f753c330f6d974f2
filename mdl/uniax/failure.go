// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// FailurePrms holds the failure criteria of the Failure wrapper
type FailurePrms struct {
	MinStrain float64 // failure when ε ≤ MinStrain
	MaxStrain float64 // failure when ε ≥ MaxStrain
	MinStress float64 // failure when σ ≤ MinStress
	MaxStress float64 // failure when σ ≥ MaxStress
	Uy        float64 // yield span of the plastic travel tracker
	MaxCPD    float64 // failure when wp/uy ≥ MaxCPD
}

// DefaultFailurePrms returns unbounded criteria
func DefaultFailurePrms() FailurePrms {
	return FailurePrms{MinStrain: -BIG, MaxStrain: BIG, MinStress: -BIG, MaxStress: BIG, Uy: BIG, MaxCPD: BIG}
}

// Failure wraps an inner model and removes it once a failure criterion is met
//  Once failed, the stress is zero and the tangent is 1e-8 of the inner initial tangent until
//  RevertToStart. The inner model is frozen at the state it had when failure happened.
type Failure struct {
	FailurePrms
	inner  Model // owned copy
	trial  failState
	commit failState
}

// failState holds the state of Failure
type failState struct {
	ε      float64 // strain
	face   float64 // yield face (positive side)
	wp     float64 // cumulative plastic displacement
	σin    float64 // committed stress of the inner model
	failed bool    // failure flag
}

// add model to factory
func init() {
	allocators["failure"] = func() Model { return new(Failure) }
	banners["failure"] = "failure wrapper uniaxial model"
}

// NewFailure returns a new Failure wrapping a copy of inner
func NewFailure(inner Model, prms FailurePrms) (o *Failure, err error) {
	if inner == nil {
		return nil, chk.Err("failure: inner model must not be nil")
	}
	o = new(Failure)
	o.FailurePrms = prms
	o.SetInner(inner)
	err = o.setup()
	if err != nil {
		return nil, err
	}
	return
}

// SetInner sets a copy of the inner model
func (o *Failure) SetInner(inner Model) {
	if inner == nil {
		o.inner = nil
		return
	}
	o.inner = inner.GetCopy()
}

// Inner returns the inner model
func (o *Failure) Inner() Model { return o.inner }

// Init initialises model; SetInner must be called first
func (o *Failure) Init(prms dbf.Params) (err error) {
	o.FailurePrms = DefaultFailurePrms()
	var uyGiven, cpdGiven bool
	for _, p := range prms {
		switch p.N {
		case "minStrain":
			o.MinStrain = p.V
		case "maxStrain":
			o.MaxStrain = p.V
		case "minStress":
			o.MinStress = p.V
		case "maxStress":
			o.MaxStress = p.V
		case "uy":
			o.Uy, uyGiven = p.V, true
		case "maxCPD":
			o.MaxCPD, cpdGiven = p.V, true
		default:
			return chk.Err("failure: parameter named %q is incorrect", p.N)
		}
	}
	if uyGiven != cpdGiven {
		return chk.Err("failure: uy and maxCPD must be given together")
	}
	return o.setup()
}

// setup checks parameters and resets the state
func (o *Failure) setup() error {
	if o.inner == nil {
		return chk.Err("failure: inner model must be set before initialisation")
	}
	if o.MinStrain >= o.MaxStrain {
		return chk.Err("failure: minStrain=%g must be smaller than maxStrain=%g", o.MinStrain, o.MaxStrain)
	}
	if o.MinStress >= o.MaxStress {
		return chk.Err("failure: minStress=%g must be smaller than maxStress=%g", o.MinStress, o.MaxStress)
	}
	if o.Uy <= 0 || o.MaxCPD <= 0 {
		return chk.Err("failure: uy=%g and maxCPD=%g must be > 0", o.Uy, o.MaxCPD)
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o Failure) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "minStrain", V: -0.05},
		&dbf.P{N: "maxStrain", V: 0.05},
		&dbf.P{N: "uy", V: 0.002},
		&dbf.P{N: "maxCPD", V: 100},
	}
}

// CurPrms gets the parameters in use
func (o Failure) CurPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "minStrain", V: o.MinStrain},
		&dbf.P{N: "maxStrain", V: o.MaxStrain},
		&dbf.P{N: "minStress", V: o.MinStress},
		&dbf.P{N: "maxStress", V: o.MaxStress},
		&dbf.P{N: "uy", V: o.Uy},
		&dbf.P{N: "maxCPD", V: o.MaxCPD},
	}
}

// Name returns the model name
func (o Failure) Name() string { return "Failure" }

// GetInitialTangent returns the initial tangent of the inner model
func (o Failure) GetInitialTangent() float64 { return o.inner.GetInitialTangent() }

// SetTrialStrain checks the failure criteria and forwards ε to the inner model
func (o *Failure) SetTrialStrain(ε, dεdt float64) error {
	o.trial = o.commit
	if o.commit.failed {
		return nil
	}
	T := &o.trial
	T.ε = ε

	// plastic travel
	if ε > T.face {
		T.wp += ε - T.face
		T.face = ε
	} else if ε < T.face-2*o.Uy {
		T.wp += T.face - 2*o.Uy - ε
		T.face = ε + 2*o.Uy
	}

	// criteria
	σ := o.commit.σin
	if ε >= o.MaxStrain || ε <= o.MinStrain || σ >= o.MaxStress || σ <= o.MinStress || T.wp/o.Uy >= o.MaxCPD {
		T.failed = true
		return nil
	}
	return o.inner.SetTrialStrain(ε, dεdt)
}

// GetStrain returns trial strain
func (o *Failure) GetStrain() float64 { return o.trial.ε }

// GetStress returns trial stress; zero if failed
func (o *Failure) GetStress() float64 {
	if o.trial.failed {
		return 0
	}
	return o.inner.GetStress()
}

// GetTangent returns trial tangent; negligible if failed
func (o *Failure) GetTangent() float64 {
	if o.trial.failed {
		return 1e-8 * o.inner.GetInitialTangent()
	}
	return o.inner.GetTangent()
}

// Face returns the trial yield face (positive side)
func (o *Failure) Face() float64 { return o.trial.face }

// Wp returns the trial cumulative plastic displacement
func (o *Failure) Wp() float64 { return o.trial.wp }

// HasFailed returns whether the committed state has failed
func (o *Failure) HasFailed() bool { return o.commit.failed }

// CommitState accepts trial state; the inner model is only committed while not failed
func (o *Failure) CommitState() (err error) {
	o.commit = o.trial
	if o.trial.failed {
		return
	}
	err = o.inner.CommitState()
	o.commit.σin = o.inner.GetStress()
	o.trial.σin = o.commit.σin
	return
}

// RevertToLastCommit discards trial state
func (o *Failure) RevertToLastCommit() error {
	o.trial = o.commit
	if o.commit.failed {
		return nil
	}
	return o.inner.RevertToLastCommit()
}

// RevertToStart resets wrapper and inner model to pristine state
func (o *Failure) RevertToStart() error {
	o.commit = failState{face: o.Uy}
	o.trial = o.commit
	return o.inner.RevertToStart()
}

// GetCopy returns a deep copy, including the inner model and the failure state
func (o *Failure) GetCopy() Model {
	other := *o
	other.inner = o.inner.GetCopy()
	return &other
}

// SendSelf is not available
func (o *Failure) SendSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "SendSelf")
}

// RecvSelf is not available
func (o *Failure) RecvSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "RecvSelf")
}
