// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// TSBMaxSprings is the maximum number of self-centering springs in a TSB device
const TSBMaxSprings = 10

// TSBSpring holds the parameters of one self-centering spring of a TSB device
type TSBSpring struct {
	Fy    float64 // activation force
	K1    float64 // initial stiffness
	K2    float64 // post-activation stiffness
	Beta  float64 // energy dissipation ratio
	Ubear float64 // bearing displacement
	Kbear float64 // bearing stiffness
}

// TSBPrms holds the parameters of the TSB device
type TSBPrms struct {
	Fslip   float64     // friction slip force
	K       float64     // friction (sticking) stiffness
	Ugap    float64     // gap length
	Springs []TSBSpring // parallel self-centering springs [1..10]
}

// TSB implements a two-stage friction/self-centering bearing
//  stage 1: |ε| ≤ ugap  Coulomb friction
//  stage 2: |ε| > ugap  N parallel flag-shaped springs
type TSB struct {
	TSBPrms

	// derived
	springs []flagSpring // spring laws; bearing displacement relative to ua
	ktot    float64      // sum of initial spring stiffnesses
	ua      float64      // spring displacement offset at gap closure

	// state
	trial  tsbState
	commit tsbState
}

// tsbState holds the state of TSB
type tsbState struct {
	ε     float64                // strain
	σ     float64                // stress
	D     float64                // tangent
	stage int                    // 1 or 2
	Fsc   [TSBMaxSprings]float64 // spring forces
}

// add model to factory
func init() {
	allocators["tsb"] = func() Model { return new(TSB) }
	banners["tsb"] = "two-stage friction/self-centering uniaxial model"
}

// NewTSB returns a new TSB model
func NewTSB(prms TSBPrms) (o *TSB, err error) {
	o = new(TSB)
	o.TSBPrms = prms
	o.Springs = append([]TSBSpring{}, prms.Springs...)
	err = o.setup()
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises model
//  springs are given with 1-based suffixes: Fy_1, k1_1, k2_1, beta_1, ubear_1, kbear_1, Fy_2, ...
func (o *TSB) Init(prms dbf.Params) (err error) {
	nsp := -1
	vals := make(map[string]float64)
	for _, p := range prms {
		switch p.N {
		case "Fslip":
			o.Fslip = p.V
		case "k":
			o.K = p.V
		case "ugap":
			o.Ugap = p.V
		case "N":
			nsp = int(p.V)
		default:
			vals[p.N] = p.V
		}
	}
	if nsp < 1 || nsp > TSBMaxSprings {
		return chk.Err("tsb: N must be within 1-%d. N=%d is invalid", TSBMaxSprings, nsp)
	}
	o.Springs = make([]TSBSpring, nsp)
	for i := range o.Springs {
		s := &o.Springs[i]
		for _, c := range []struct {
			key string
			ptr *float64
		}{{"Fy", &s.Fy}, {"k1", &s.K1}, {"k2", &s.K2}, {"beta", &s.Beta}, {"ubear", &s.Ubear}, {"kbear", &s.Kbear}} {
			key := io.Sf("%s_%d", c.key, i+1)
			v, ok := vals[key]
			if !ok {
				return chk.Err("tsb: parameter %q of spring %d is missing", key, i+1)
			}
			*c.ptr = v
			delete(vals, key)
		}
	}
	if len(vals) > 0 {
		var keys []string
		for key := range vals {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return chk.Err("tsb: parameters named %v are incorrect", keys)
	}
	return o.setup()
}

// setup checks parameters and computes derived values
func (o *TSB) setup() error {
	if o.Fslip < 0 || o.K <= 0 || o.Ugap < 0 {
		return chk.Err("tsb: invalid parameters: Fslip=%g and ugap=%g must be ≥ 0; k=%g must be > 0", o.Fslip, o.Ugap, o.K)
	}
	if len(o.Springs) < 1 || len(o.Springs) > TSBMaxSprings {
		return chk.Err("tsb: number of springs must be within 1-%d. N=%d is invalid", TSBMaxSprings, len(o.Springs))
	}
	o.ktot = 0
	for i, s := range o.Springs {
		if s.Fy <= 0 || s.K1 <= 0 || s.K2 < 0 || s.Ubear <= 0 || s.Kbear < 0 {
			return chk.Err("tsb: invalid parameters of spring %d: %+v", i+1, s)
		}
		if s.Beta < 0 || s.Beta > 0.5 {
			return chk.Err("tsb: beta of spring %d must be within [0, 0.5]. beta=%g is invalid", i+1, s.Beta)
		}
		o.ktot += s.K1
	}
	o.ua = math.Max(o.Ugap-o.Fslip/o.ktot, 0)
	o.springs = make([]flagSpring, len(o.Springs))
	for i, s := range o.Springs {
		o.springs[i] = flagSpring{Fy: s.Fy, K1: s.K1, K2: s.K2, C: 1 - 2*s.Beta, Ubear: s.Ubear - o.ua, Kbear: s.Kbear}
	}
	return o.RevertToStart()
}

// GetPrms gets (an example) of parameters
func (o TSB) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Fslip", V: 10},
		&dbf.P{N: "k", V: 100},
		&dbf.P{N: "ugap", V: 0.05},
		&dbf.P{N: "N", V: 1},
		&dbf.P{N: "Fy_1", V: 20},
		&dbf.P{N: "k1_1", V: 200},
		&dbf.P{N: "k2_1", V: 20},
		&dbf.P{N: "beta_1", V: 0.1},
		&dbf.P{N: "ubear_1", V: 0.2},
		&dbf.P{N: "kbear_1", V: 1000},
	}
}

// CurPrms gets the parameters in use
func (o TSB) CurPrms() (prms dbf.Params) {
	prms = []*dbf.P{
		&dbf.P{N: "Fslip", V: o.Fslip},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "ugap", V: o.Ugap},
		&dbf.P{N: "N", V: float64(len(o.Springs))},
	}
	for i, s := range o.Springs {
		prms = append(prms,
			&dbf.P{N: io.Sf("Fy_%d", i+1), V: s.Fy},
			&dbf.P{N: io.Sf("k1_%d", i+1), V: s.K1},
			&dbf.P{N: io.Sf("k2_%d", i+1), V: s.K2},
			&dbf.P{N: io.Sf("beta_%d", i+1), V: s.Beta},
			&dbf.P{N: io.Sf("ubear_%d", i+1), V: s.Ubear},
			&dbf.P{N: io.Sf("kbear_%d", i+1), V: s.Kbear},
		)
	}
	return
}

// Name returns the model name
func (o TSB) Name() string { return "TSB" }

// GetInitialTangent returns the friction stiffness
func (o TSB) GetInitialTangent() float64 { return o.K }

// SetTrialStrain computes the trial state for strain ε
func (o *TSB) SetTrialStrain(ε, dεdt float64) error {
	o.trial = o.commit
	Δε := ε - o.commit.ε
	if math.Abs(Δε) <= MACHEPS {
		return nil
	}
	C, T := &o.commit, &o.trial
	T.ε = ε
	wasGap := math.Abs(C.ε) <= o.Ugap
	isGap := math.Abs(ε) <= o.Ugap
	switch {

	// stage 1 -> stage 1
	case wasGap && isGap:
		T.σ = friction(C.σ, Δε, o.K, o.Fslip)
		T.stage = 1
		T.Fsc = [TSBMaxSprings]float64{}

	// stage 1 -> stage 2: friction up to the gap, then springs
	case wasGap && !isGap:
		var Δεf, Δεsc, usc0 float64
		if Δε > 0 {
			Δεf, Δεsc, usc0 = o.Ugap-C.ε, ε-o.Ugap, o.Ugap-o.ua
		} else {
			Δεf, Δεsc, usc0 = -o.Ugap-C.ε, ε+o.Ugap, o.ua-o.Ugap
		}
		Fgap := friction(C.σ, Δεf, o.K, o.Fslip)
		T.σ = 0
		for i, s := range o.springs {
			T.Fsc[i] = s.force(usc0, Fgap*s.K1/o.ktot, Δεsc)
			T.σ += T.Fsc[i]
		}
		T.stage = 2

	// stage 2 -> stage 2
	case !wasGap && !isGap:
		usc0 := C.ε + o.ua
		if C.ε >= 0 {
			usc0 = C.ε - o.ua
		}
		T.σ = 0
		for i, s := range o.springs {
			T.Fsc[i] = s.force(usc0, C.Fsc[i], Δε)
			T.σ += T.Fsc[i]
		}
		T.stage = 2

	// stage 2 -> stage 1: springs unload to the gap, then friction
	default:
		var Δεsc, Δεf, usc0 float64
		if Δε < 0 {
			Δεsc, Δεf, usc0 = o.Ugap-C.ε, ε-o.Ugap, C.ε-o.ua
		} else {
			Δεsc, Δεf, usc0 = -o.Ugap-C.ε, ε+o.Ugap, C.ε+o.ua
		}
		Fgap := 0.0
		for i, s := range o.springs {
			Fgap += s.force(usc0, C.Fsc[i], Δεsc)
		}
		T.σ = friction(Fgap, Δεf, o.K, o.Fslip)
		T.stage = 1
		T.Fsc = [TSBMaxSprings]float64{}
	}
	T.D = (T.σ - C.σ) / Δε
	return nil
}

// GetStrain returns trial strain
func (o *TSB) GetStrain() float64 { return o.trial.ε }

// GetStress returns trial stress
func (o *TSB) GetStress() float64 { return o.trial.σ }

// GetTangent returns trial (secant) tangent
func (o *TSB) GetTangent() float64 { return o.trial.D }

// Stage returns the trial working stage
func (o *TSB) Stage() int { return o.trial.stage }

// SpringForces returns the trial forces of all springs
func (o *TSB) SpringForces() []float64 {
	return append([]float64{}, o.trial.Fsc[:len(o.springs)]...)
}

// CommitState accepts trial state
func (o *TSB) CommitState() error {
	o.commit = o.trial
	return nil
}

// RevertToLastCommit discards trial state
func (o *TSB) RevertToLastCommit() error {
	o.trial = o.commit
	return nil
}

// RevertToStart resets to pristine state
func (o *TSB) RevertToStart() error {
	o.commit = tsbState{D: o.K, stage: 1}
	o.trial = o.commit
	return nil
}

// GetCopy returns a deep copy
func (o *TSB) GetCopy() Model {
	other := *o
	other.Springs = append([]TSBSpring{}, o.Springs...)
	other.springs = append([]flagSpring{}, o.springs...)
	return &other
}

// SendSelf is not available
func (o *TSB) SendSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "SendSelf")
}

// RecvSelf is not available
func (o *TSB) RecvSelf(ctag int, ch Channel) error {
	return unsupported(o.Name(), "RecvSelf")
}
