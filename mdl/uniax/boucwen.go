// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// BoucWenDefaultIter is the number of Runge-Kutta substeps used when "iter" is not given
const BoucWenDefaultIter = 10

// BoucWenPrms holds the parameters of the modified Bouc-Wen model
type BoucWenPrms struct {
	Fy    float64 // yield force
	Uy    float64 // yield deformation
	Alpha float64 // post-yield stiffness ratio
	N     float64 // shape exponent
	Q     float64 // pinching amplitude
	B     float64 // pinching rate base
	A     float64 // shape parameter
	Beta  float64 // shape parameter
	Gamma float64 // shape parameter
	Iter  int     // number of RK4 substeps

	FailureCPD float64 // failure when wp/uy >= FailureCPD; 0 means no CPD criterion
	MinMax     float64 // failure when |ε| >= MinMax; 0 means no deformation criterion
}

// BoucWen implements the Bouc-Wen hysteresis with pinching driven by cumulative plastic displacement
//  dz/dε = (1/uy) [A - (β sgn(dε z) + γ) |z/m|ⁿ]
//  m     = 1 + Q (1 - b^(-wp/uy))
//  σ     = α Fy/uy ε + (1-α) Fy z
type BoucWen struct {
	BoucWenPrms
	trial  bwState
	commit bwState
	failed bool // latched by any trial that fails; cleared by RevertToStart only
}

// bwState holds the state of BoucWen
type bwState struct {
	ε      float64 // strain
	σ      float64 // stress
	D      float64 // tangent
	z      float64 // hysteretic variable
	wp     float64 // cumulative plastic displacement
	face   float64 // yield face (positive side)
	failed bool    // failure flag
}

// add model to factory
func init() {
	allocators["modboucwen"] = func() Model { return new(BoucWen) }
	banners["modboucwen"] = "modified Bouc-Wen uniaxial model"
}

// NewBoucWen returns a new BoucWen model
func NewBoucWen(prms BoucWenPrms) (o *BoucWen, err error) {
	o = new(BoucWen)
	o.BoucWenPrms = prms
	err = o.check()
	if err != nil {
		return nil, err
	}
	o.RevertToStart()
	return
}

// Init initialises model
func (o *BoucWen) Init(prms dbf.Params) (err error) {
	o.Iter = BoucWenDefaultIter
	for _, p := range prms {
		switch p.N {
		case "Fy":
			o.Fy = p.V
		case "uy":
			o.Uy = p.V
		case "alpha":
			o.Alpha = p.V
		case "n":
			o.N = p.V
		case "Q":
			o.Q = p.V
		case "b":
			o.B = p.V
		case "A":
			o.A = p.V
		case "beta":
			o.Beta = p.V
		case "gamma":
			o.Gamma = p.V
		case "iter":
			o.Iter = int(p.V)
			if float64(o.Iter) != p.V {
				return chk.Err("modboucwen: iter must be an integer. %g is invalid", p.V)
			}
		case "failureCPD":
			o.FailureCPD = p.V
		case "minmax":
			o.MinMax = p.V
		default:
			return chk.Err("modboucwen: parameter named %q is incorrect", p.N)
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
func (o *BoucWen) check() error {
	if o.Fy <= 0 || o.Uy <= 0 || o.N <= 0 {
		return chk.Err("modboucwen: invalid parameters: {Fy=%g, uy=%g, n=%g} must be all > 0", o.Fy, o.Uy, o.N)
	}
	if o.Q != 0 && o.B <= 0 {
		return chk.Err("modboucwen: b=%g must be > 0 when Q=%g is not zero", o.B, o.Q)
	}
	if o.Alpha < 0 {
		return chk.Err("modboucwen: alpha=%g must not be negative", o.Alpha)
	}
	if o.Iter < 1 {
		return chk.Err("modboucwen: iter=%d must be at least 1", o.Iter)
	}
	if o.FailureCPD < 0 || o.MinMax < 0 {
		return chk.Err("modboucwen: failure thresholds {failureCPD=%g, minmax=%g} must not be negative", o.FailureCPD, o.MinMax)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o BoucWen) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: 100},
		&dbf.P{N: "uy", V: 1},
		&dbf.P{N: "alpha", V: 0.1},
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "Q", V: 0},
		&dbf.P{N: "b", V: 1},
		&dbf.P{N: "A", V: 1},
		&dbf.P{N: "beta", V: 0.5},
		&dbf.P{N: "gamma", V: 0.5},
		&dbf.P{N: "iter", V: 10},
	}
}

// CurPrms gets the parameters in use
func (o BoucWen) CurPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fy", V: o.Fy},
		&dbf.P{N: "uy", V: o.Uy},
		&dbf.P{N: "alpha", V: o.Alpha},
		&dbf.P{N: "n", V: o.N},
		&dbf.P{N: "Q", V: o.Q},
		&dbf.P{N: "b", V: o.B},
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "beta", V: o.Beta},
		&dbf.P{N: "gamma", V: o.Gamma},
		&dbf.P{N: "iter", V: float64(o.Iter)},
		&dbf.P{N: "failureCPD", V: o.FailureCPD},
		&dbf.P{N: "minmax", V: o.MinMax},
	}
}

// Name returns the model name
func (o BoucWen) Name() string { return "ModBoucWen" }

// GetInitialTangent returns Fy/uy
func (o BoucWen) GetInitialTangent() float64 { return o.Fy / o.Uy }

// SetTrialStrain computes the trial state for strain ε
func (o *BoucWen) SetTrialStrain(ε, dεdt float64) error {
	o.trial = o.commit
	if o.failed {
		o.trial.ε = ε
		o.zero(&o.trial)
		return nil
	}
	Δε := ε - o.commit.ε
	if math.Abs(Δε) <= MACHEPS {
		return nil
	}
	o.trial.ε = ε

	// substeps
	s := &o.trial
	h := Δε / float64(o.Iter)
	for i := 1; i <= o.Iter; i++ {
		εi := o.commit.ε + h*float64(i)
		o.updateFace(s, εi)
		if o.failing(s, εi) {
			s.failed = true
			break
		}
		s.z = o.rk4(s.z, s.wp, h)
	}

	// failed
	if s.failed {
		o.failed = true
		o.zero(s)
		return nil
	}

	// stress and secant tangent
	s.σ = o.Alpha*o.Fy/o.Uy*ε + (1-o.Alpha)*o.Fy*s.z
	s.D = (s.σ - o.commit.σ) / Δε
	return nil
}

// zero sets the failed state: no stress and a negligible tangent
func (o *BoucWen) zero(s *bwState) {
	s.failed = true
	s.σ = 0
	s.D = 1e-8 * o.GetInitialTangent()
}

// updateFace moves the yield face and accumulates plastic displacement
func (o *BoucWen) updateFace(s *bwState, ε float64) {
	if ε > s.face {
		s.wp += ε - s.face
		s.face = ε
	} else if ε < s.face-2*o.Uy {
		s.wp += s.face - 2*o.Uy - ε
		s.face = ε + 2*o.Uy
	}
}

// failing checks the failure criteria
func (o *BoucWen) failing(s *bwState, ε float64) bool {
	if s.failed {
		return true
	}
	if o.FailureCPD > 0 && s.wp/o.Uy >= o.FailureCPD {
		return true
	}
	if o.MinMax > 0 && math.Abs(ε) >= o.MinMax {
		return true
	}
	return false
}

// rk4 integrates z over one substep h with the classical 4-stage Runge-Kutta method
func (o *BoucWen) rk4(z, wp, h float64) float64 {
	m := 1 + o.Q*(1-math.Pow(o.B, -wp/o.Uy))
	c := o.Beta*fun.Sign(h*z) + o.Gamma
	f := func(z float64) float64 {
		return (o.A - c*math.Pow(math.Abs(z/m), o.N)) / o.Uy
	}
	k1 := f(z)
	k2 := f(z + 0.5*h*k1)
	k3 := f(z + 0.5*h*k2)
	k4 := f(z + h*k3)
	return z + h*(k1+2*k2+2*k3+k4)/6
}

// GetStrain returns trial strain
func (o *BoucWen) GetStrain() float64 { return o.trial.ε }

// GetStress returns trial stress
func (o *BoucWen) GetStress() float64 { return o.trial.σ }

// GetTangent returns trial tangent
func (o *BoucWen) GetTangent() float64 { return o.trial.D }

// Z returns the trial hysteretic variable
func (o *BoucWen) Z() float64 { return o.trial.z }

// Wp returns the trial cumulative plastic displacement
func (o *BoucWen) Wp() float64 { return o.trial.wp }

// Face returns the trial yield face (positive side)
func (o *BoucWen) Face() float64 { return o.trial.face }

// HasFailed returns whether any trial state has failed since RevertToStart
func (o *BoucWen) HasFailed() bool { return o.failed }

// CommitState accepts trial state
func (o *BoucWen) CommitState() error {
	o.commit = o.trial
	return nil
}

// RevertToLastCommit discards trial state; failure is kept
func (o *BoucWen) RevertToLastCommit() error {
	o.trial = o.commit
	if o.failed {
		o.zero(&o.trial)
	}
	return nil
}

// RevertToStart resets to pristine state
func (o *BoucWen) RevertToStart() error {
	o.commit = bwState{D: o.GetInitialTangent(), face: o.Uy}
	o.trial = o.commit
	o.failed = false
	return nil
}

// GetCopy returns a deep copy
func (o *BoucWen) GetCopy() Model {
	other := *o
	return &other
}

// SendSelf is not available
func (o *BoucWen) SendSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "SendSelf")
}

// RecvSelf is not available
func (o *BoucWen) RecvSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "RecvSelf")
}
