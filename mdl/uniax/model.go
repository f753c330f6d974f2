// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uniax implements uniaxial hysteretic models (scalar force-deformation laws)
/*
 *   host loop                          model
 *  ============================================
 *   SetTrialStrain(ε)      ->  trial = f(commit, ε)
 *   GetStress/GetTangent   ->  read trial
 *   CommitState            ->  commit = trial
 *   RevertToLastCommit     ->  trial  = commit
 *   RevertToStart          ->  trial  = commit = pristine
 */
package uniax

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for uniaxial models
type Model interface {
	Init(prms dbf.Params) error  // initialises model
	GetPrms() dbf.Params         // gets (an example) of parameters
	CurPrms() dbf.Params         // gets the parameters in use
	GetInitialTangent() float64  // returns the initial (elastic) stiffness
	GetCopy() Model              // returns a deep copy with the same parameters and state
	Name() string                // returns the model name
	SendSelf(ctag int, ch Channel) error
	RecvSelf(ctag int, ch Channel) error

	SetTrialStrain(ε, dεdt float64) error // computes trial state for a new strain
	GetStrain() float64                   // returns trial strain
	GetStress() float64                   // returns trial stress
	GetTangent() float64                  // returns trial tangent
	CommitState() error                   // accepts trial state
	RevertToLastCommit() error            // discards trial state
	RevertToStart() error                 // resets to pristine state
}

// Wrapper defines models that hold one inner model
type Wrapper interface {
	Model
	SetInner(inner Model) // sets (a copy of) the inner model; call before Init
}

// SetTrial sets trial strain and returns the trial stress and tangent
func SetTrial(m Model, ε, dεdt float64) (σ, D float64, err error) {
	err = m.SetTrialStrain(ε, dεdt)
	if err != nil {
		return
	}
	return m.GetStress(), m.GetTangent(), nil
}

// New returns new uniaxial model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'uniax' database", name)
	}
	announce(name)
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available uniaxial models; modelname => allocator
var allocators = map[string]func() Model{}

// banners holds messages logged once, the first time a model is allocated
var banners = map[string]string{}

var (
	announceMu   sync.Mutex
	announceOnce = map[string]*sync.Once{}
)

func announce(name string) {
	msg, ok := banners[name]
	if !ok {
		return
	}
	announceMu.Lock()
	once, ok := announceOnce[name]
	if !ok {
		once = new(sync.Once)
		announceOnce[name] = once
	}
	announceMu.Unlock()
	once.Do(func() {
		logger.Log("model", name, "msg", msg)
	})
}
