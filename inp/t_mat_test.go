// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
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

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "hyst.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdb.Materials)
	chk.Int(tst, "number of materials", len(mdb.Materials), 5)

	for _, c := range []struct{ name, model string }{
		{"brace", "Failure"},
		{"damper", "ModBoucWen"},
		{"bearing", "TSB"},
		{"tsscb", "TSSCB"},
		{"steel", "Steel01"},
	} {
		m := mdb.Get(c.name)
		if m == nil {
			tst.Errorf("cannot find material %q\n", c.name)
			return
		}
		if m.Mdl.Name() != c.model {
			tst.Errorf("material %q has model %q; %q was expected\n", c.name, m.Mdl.Name(), c.model)
		}
	}
	if mdb.Get("none") != nil {
		tst.Errorf("Get must return nil for unknown materials\n")
	}

	// wrapper defined before its inner material
	brace := mdb.Get("brace").Mdl.(*uniax.Failure)
	chk.Float64(tst, "brace: D0", 1e-15, brace.GetInitialTangent(), 100)
	chk.Float64(tst, "brace: maxStrain", 1e-15, brace.MaxStrain, 60)
	if brace.Inner() == mdb.Get("tsscb").Mdl {
		tst.Errorf("wrapper must own a copy of its inner material\n")
	}

	// independent copies
	m1 := mdb.Get("steel").NewModel()
	m2 := mdb.Get("steel").NewModel()
	m1.SetTrialStrain(20, 0)
	m1.CommitState()
	chk.Float64(tst, "m1: σ", 1e-12, m1.GetStress(), 102)
	chk.Float64(tst, "m2: σ", 1e-15, m2.GetStress(), 0)
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. errors")

	for _, dat := range []string{
		`{"materials": [{"name": "a", "model": "failure", "inner": "b"}, {"name": "b", "model": "failure", "inner": "a"}]}`,
		`{"materials": [{"name": "a", "model": "failure", "inner": "a"}]}`,
		`{"materials": [{"name": "a", "model": "failure"}]}`,
		`{"materials": [{"name": "a", "model": "failure", "inner": "c"}]}`,
		`{"materials": [{"name": "a", "model": "elastic", "inner": "b", "prms": [{"n": "E", "v": 1}]}, {"name": "b", "model": "elastic", "prms": [{"n": "E", "v": 1}]}]}`,
		`{"materials": [{"name": "a", "model": "unknown"}]}`,
		`{"materials": [{"name": "a", "model": "elastic", "prms": [{"n": "E", "v": -1}]}]}`,
		`{"materials": [{"name": "a", "model": "elastic", "prms": [{"n": "E", "v": 1}]}, {"name": "a", "model": "elastic", "prms": [{"n": "E", "v": 1}]}]}`,
		`{"materials": [{"model": "elastic"}]}`,
		`{"materials": {}}`,
	} {
		_, err := ParseMat([]byte(dat))
		if err == nil {
			tst.Errorf("ParseMat must fail with:\n%s\n", dat)
			return
		}
		io.Pforan("err = %v\n", err)
	}

	_, err := ReadMat("data", "nonexistent.mat")
	if err == nil {
		tst.Errorf("ReadMat must fail with missing file\n")
	}
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. nested wrappers")

	mdb, err := ParseMat([]byte(`{"materials": [
		{"name": "outer", "model": "failure", "inner": "mid", "prms": [{"n": "maxStrain", "v": 0.2}]},
		{"name": "mid", "model": "failure", "inner": "el", "prms": [{"n": "maxStrain", "v": 0.1}]},
		{"name": "el", "model": "elastic", "prms": [{"n": "E", "v": 10}]}
	]}`))
	if err != nil {
		tst.Errorf("ParseMat failed:\n%v", err)
		return
	}
	mdl := mdb.Get("outer").NewModel()
	mdl.SetTrialStrain(0.05, 0)
	chk.Float64(tst, "σ @ 0.05", 1e-15, mdl.GetStress(), 0.5)
	mdl.CommitState()
	mdl.SetTrialStrain(0.15, 0)
	chk.Float64(tst, "σ @ 0.15 (inner failed)", 1e-15, mdl.GetStress(), 0)
}
