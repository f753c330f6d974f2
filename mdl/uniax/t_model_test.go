// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	kitlog "github.com/go-kit/kit/log"
)

// allocate allocates and initialises model with its example parameters
func allocate(tst *testing.T, name string) Model {
	mdl, err := New(name)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	if w, ok := mdl.(Wrapper); ok {
		w.SetInner(elastic(tst, 100))
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init of %q failed: %v\n", name, err)
		return nil
	}
	return mdl
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. factory")

	names := Names()
	io.Pforan("names = %v\n", names)
	chk.Int(tst, "number of models", len(names), 6)
	for _, name := range []string{"elastic", "failure", "modboucwen", "steel01", "tsb", "tsscb"} {
		found := false
		for _, n := range names {
			if n == name {
				found = true
			}
		}
		if !found {
			tst.Errorf("model %q must be available\n", name)
		}
	}

	_, err := New("bouc-wen")
	if err == nil {
		tst.Errorf("unknown model must fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. copies, reset and parameters")

	eps := cyclic(tst, []float64{0, 0.03, -0.02}, 6)
	for _, name := range Names() {
		mdl := allocate(tst, name)
		if mdl == nil {
			return
		}
		io.Pforan("%-10s D0 = %v\n", name, mdl.GetInitialTangent())

		// current parameters reproduce the model
		other := allocate(tst, name)
		err := other.Init(mdl.CurPrms())
		if err != nil {
			tst.Errorf("%s: Init with CurPrms failed: %v\n", name, err)
			return
		}

		// copy follows the same history independently
		runPath(tst, mdl, eps)
		cpy := mdl.GetCopy()
		chk.Float64(tst, name+": copy σ", 1e-15, cpy.GetStress(), mdl.GetStress())
		σa, _, _ := SetTrial(mdl, 0.05, 0)
		σb, _, _ := SetTrial(cpy, 0.05, 0)
		chk.Float64(tst, name+": copy trial σ", 1e-15, σb, σa)
		cpy.RevertToStart()
		chk.Float64(tst, name+": original σ", 1e-15, mdl.GetStress(), σa)

		// reset reproduces the history
		mdl.RevertToStart()
		sig := runPath(tst, mdl, eps)
		sigOther := runPath(tst, other, eps)
		for i := range eps {
			chk.Float64(tst, io.Sf("%s: σ @ %g", name, eps[i]), 1e-15, sig[i], sigOther[i])
		}
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. serialization is unavailable and logged")

	var buf bytes.Buffer
	SetLogger(kitlog.NewLogfmtLogger(&buf))
	defer SetLogger(nil)

	for _, name := range Names() {
		mdl := allocate(tst, name)
		if mdl == nil {
			return
		}
		if mdl.SendSelf(1, nil) == nil {
			tst.Errorf("%s: SendSelf must fail\n", name)
		}
		if mdl.RecvSelf(1, nil) == nil {
			tst.Errorf("%s: RecvSelf must fail\n", name)
		}
		if !strings.Contains(buf.String(), "model="+mdl.Name()+" op=SendSelf") {
			tst.Errorf("%s: diagnostic must be logged. log:\n%s\n", name, buf.String())
		}
	}
	io.Pf("%s", buf.String())
}

func Test_model04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model04. print")

	tsb := allocate(tst, "tsb")
	wrp := allocate(tst, "failure")
	if tsb == nil || wrp == nil {
		return
	}

	var buf bytes.Buffer
	Print(&buf, "7", tsb, PrintModel)
	io.Pf("%s", buf.String())
	for _, key := range []string{"TSB tag: 7", "Fslip:", "kbear_1:"} {
		if !strings.Contains(buf.String(), key) {
			tst.Errorf("key/value print must contain %q\n", key)
		}
	}

	buf.Reset()
	Print(&buf, "8", wrp, PrintJSON)
	io.Pf("%s\n", buf.String())
	var dat map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &dat)
	if err != nil {
		tst.Errorf("Unmarshal failed: %v\n", err)
		return
	}
	if dat["tag"] != "8" || dat["type"] != "Failure" || dat["material"] != "Elastic" {
		tst.Errorf("wrong json print: %v\n", dat)
		return
	}
	chk.Float64(tst, "maxCPD", 1e-15, dat["maxCPD"].(float64), 100)
}
