// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// runPath sets and commits all strains, returning the stresses
func runPath(tst *testing.T, mdl Model, eps []float64) (sig []float64) {
	sig = make([]float64, len(eps))
	for i, ε := range eps {
		err := mdl.SetTrialStrain(ε, 0)
		if err != nil {
			tst.Errorf("SetTrialStrain failed: %v\n", err)
			return
		}
		err = mdl.CommitState()
		if err != nil {
			tst.Errorf("CommitState failed: %v\n", err)
			return
		}
		sig[i] = mdl.GetStress()
		io.Pf("%12.6f %14.6f %14.6f\n", ε, sig[i], mdl.GetTangent())
	}
	return
}

// checkRevert checks that trial strains followed by RevertToLastCommit leave the state unchanged
func checkRevert(tst *testing.T, mdl Model, trials ...float64) {
	ε, σ, D := mdl.GetStrain(), mdl.GetStress(), mdl.GetTangent()
	for _, εtr := range trials {
		err := mdl.SetTrialStrain(εtr, 0)
		if err != nil {
			tst.Errorf("SetTrialStrain failed: %v\n", err)
			return
		}
	}
	err := mdl.RevertToLastCommit()
	if err != nil {
		tst.Errorf("RevertToLastCommit failed: %v\n", err)
		return
	}
	chk.Float64(tst, "reverted ε", 1e-15, mdl.GetStrain(), ε)
	chk.Float64(tst, "reverted σ", 1e-15, mdl.GetStress(), σ)
	chk.Float64(tst, "reverted D", 1e-15, mdl.GetTangent(), D)

	// unchanged strain
	err = mdl.SetTrialStrain(ε, 0)
	if err != nil {
		tst.Errorf("SetTrialStrain failed: %v\n", err)
		return
	}
	chk.Float64(tst, "unchanged σ", 1e-15, mdl.GetStress(), σ)
}

// cyclic returns a cyclic strain path
func cyclic(tst *testing.T, levels []float64, n int) []float64 {
	var pth Path
	err := pth.SetCyclic(levels, n, 1)
	if err != nil {
		tst.Errorf("SetCyclic failed: %v\n", err)
		return nil
	}
	return pth.Eps
}
