// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func elastic(tst *testing.T, E float64) Model {
	mdl := new(Elastic)
	err := mdl.Init([]*dbf.P{&dbf.P{N: "E", V: E}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
	}
	return mdl
}

func Test_failure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure01. strain bound")

	prms := DefaultFailurePrms()
	prms.MaxStrain = 0.05
	mdl, err := NewFailure(elastic(tst, 100), prms)
	if err != nil {
		tst.Errorf("NewFailure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "D0", 1e-15, mdl.GetInitialTangent(), 100)

	sig := runPath(tst, mdl, cyclic(tst, []float64{0, 0.04, -0.04, 0.04}, 8))
	chk.Float64(tst, "σ @ 0.04", 1e-12, sig[len(sig)-1], 4)
	checkRevert(tst, mdl, 0.045, 0.06)
	if mdl.HasFailed() {
		tst.Errorf("reverted trial must not fail the wrapper\n")
		return
	}

	// trial failure
	σ, D, _ := SetTrial(mdl, 0.05, 0)
	chk.Float64(tst, "σ (failed)", 1e-15, σ, 0)
	chk.Float64(tst, "D (failed)", 1e-15, D, 1e-6)
	mdl.CommitState()
	if !mdl.HasFailed() {
		tst.Errorf("wrapper must have failed\n")
		return
	}

	// sticky; inner model frozen at 0.04
	sig = runPath(tst, mdl, cyclic(tst, []float64{0.05, -0.02, 0.01}, 5))
	for i, σ := range sig {
		if σ != 0 {
			tst.Errorf("stress must be zero after failure. σ[%d]=%g\n", i, σ)
			return
		}
	}
	chk.Float64(tst, "inner σ", 1e-12, mdl.Inner().GetStress(), 4)

	// reset
	mdl.RevertToStart()
	if mdl.HasFailed() {
		tst.Errorf("RevertToStart must clear failure\n")
		return
	}
	chk.Float64(tst, "inner σ (reset)", 1e-15, mdl.Inner().GetStress(), 0)
	σ, _, _ = SetTrial(mdl, 0.01, 0)
	chk.Float64(tst, "σ (reset)", 1e-12, σ, 1)
}

func Test_failure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure02. stress bound uses committed inner stress")

	prms := DefaultFailurePrms()
	prms.MaxStress = 3
	mdl, err := NewFailure(elastic(tst, 100), prms)
	if err != nil {
		tst.Errorf("NewFailure failed: %v\n", err)
		return
	}

	// 4 > 3 but the committed stress was 2
	sig := runPath(tst, mdl, []float64{0.02, 0.04})
	chk.Float64(tst, "σ @ 0.04", 1e-12, sig[1], 4)
	if mdl.HasFailed() {
		tst.Errorf("wrapper must not have failed yet\n")
		return
	}
	sig = runPath(tst, mdl, []float64{0.041})
	chk.Float64(tst, "σ @ 0.041", 1e-15, sig[0], 0)
	if !mdl.HasFailed() {
		tst.Errorf("wrapper must have failed\n")
	}
}

func Test_failure03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure03. cumulative plastic displacement")

	inner, err := NewSteel01(1, 100, 0.01)
	if err != nil {
		tst.Errorf("NewSteel01 failed: %v\n", err)
		return
	}
	mdl := new(Failure)
	mdl.SetInner(inner)
	err = mdl.Init([]*dbf.P{&dbf.P{N: "uy", V: 0.01}, &dbf.P{N: "maxCPD", V: 3}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "face0", 1e-15, mdl.Face(), 0.01)

	// wp/uy = 2 at 0.03; the face tracks independently of the inner model
	runPath(tst, mdl, cyclic(tst, []float64{0, 0.03, 0.015}, 6))
	chk.Float64(tst, "face", 1e-15, mdl.Face(), 0.03)
	chk.Float64(tst, "wp", 1e-12, mdl.Wp(), 0.02)
	if mdl.HasFailed() {
		tst.Errorf("wrapper must not have failed yet\n")
		return
	}

	// wp/uy ≥ 3 after travelling another 0.01 below face-2uy = 0.01
	runPath(tst, mdl, cyclic(tst, []float64{0.015, -0.005}, 4))
	io.Pforan("wp = %v\n", mdl.Wp())
	if !mdl.HasFailed() {
		tst.Errorf("wrapper must have failed\n")
		return
	}
	chk.Float64(tst, "σ", 1e-15, mdl.GetStress(), 0)
	chk.Float64(tst, "D", 1e-15, mdl.GetTangent(), 1e-8*100)

	// copies carry the failure state and an independent inner model
	cpy := mdl.GetCopy().(*Failure)
	if !cpy.HasFailed() {
		tst.Errorf("copy must carry the failure state\n")
		return
	}
	cpy.RevertToStart()
	if !mdl.HasFailed() {
		tst.Errorf("resetting the copy must not change the original\n")
		return
	}
	if cpy.Inner() == mdl.Inner() {
		tst.Errorf("copy must own its inner model\n")
	}
}

func Test_failure04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("failure04. construction errors")

	_, err := NewFailure(nil, DefaultFailurePrms())
	if err == nil {
		tst.Errorf("nil inner model must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)

	mdl, err := New("failure")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err == nil {
		tst.Errorf("Init without inner model must fail\n")
		return
	}
	w, ok := mdl.(Wrapper)
	if !ok {
		tst.Errorf("failure must be a Wrapper\n")
		return
	}
	w.SetInner(elastic(tst, 1))
	err = w.Init([]*dbf.P{&dbf.P{N: "uy", V: 0.01}})
	if err == nil {
		tst.Errorf("uy without maxCPD must fail\n")
		return
	}
	err = w.Init([]*dbf.P{&dbf.P{N: "minStrain", V: 1}, &dbf.P{N: "maxStrain", V: -1}})
	if err == nil {
		tst.Errorf("minStrain > maxStrain must fail\n")
		return
	}
	err = w.Init(w.GetPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
	}
}
