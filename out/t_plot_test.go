// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
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

// steelLoop runs a perfectly plastic Steel01 (Fy=100, k=10) through 0 → 20 → -20 → 20
func steelLoop(tst *testing.T) []*uniax.Record {
	mdl, err := uniax.NewSteel01(100, 10, 0)
	if err != nil {
		tst.Errorf("NewSteel01 failed: %v\n", err)
		return nil
	}
	var pth uniax.Path
	pth.SetCyclic([]float64{0, 20, -20, 20}, 20, 1)
	var drv uniax.Driver
	drv.Init(mdl)
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return nil
	}
	return drv.Res
}

func Test_results01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results01")

	res := steelLoop(tst)
	if res == nil {
		return
	}
	s, err := Stats(res)
	if err != nil {
		tst.Errorf("Stats failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", s)
	chk.Int(tst, "npts", s.Npts, 61)
	chk.Float64(tst, "εmin", 1e-15, s.EpsMin, -20)
	chk.Float64(tst, "εmax", 1e-15, s.EpsMax, 20)
	chk.Float64(tst, "σmin", 1e-12, s.SigMin, -100)
	chk.Float64(tst, "σmax", 1e-12, s.SigMax, 100)

	// first loading: 500 elastic + 1000 plastic; closed loop: 2 Fy × 20
	chk.Float64(tst, "energy", 1e-9, s.Energy, 1500+4000)
	chk.Float64(tst, "loop energy", 1e-9, Energy(res[20:]), 4000)
	chk.Float64(tst, "energy of one point", 1e-15, Energy(res[:1]), 0)

	_, err = Stats(nil)
	if err == nil {
		tst.Errorf("Stats of empty history must fail\n")
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	res := steelLoop(tst)
	if res == nil {
		return
	}

	fn := filepath.Join(tst.TempDir(), "figs", "steel01.png")
	err := PlotLoop(res, "Steel01", fn)
	if err != nil {
		tst.Errorf("PlotLoop failed: %v\n", err)
		return
	}
	info, err := os.Stat(fn)
	if err != nil {
		tst.Errorf("figure was not saved: %v\n", err)
		return
	}
	if info.Size() == 0 {
		tst.Errorf("figure is empty\n")
	}

	_, err = LoopPlot("two", []string{"a", "b"}, res, res[:10])
	if err != nil {
		tst.Errorf("LoopPlot failed: %v\n", err)
		return
	}
	_, err = LoopPlot("empty", nil, res, nil)
	if err == nil {
		tst.Errorf("LoopPlot with empty history must fail\n")
	}

	txt := AsciiLoop(res, 10, "stress")
	io.Pf("%s\n", txt)
	if !strings.Contains(txt, "stress") {
		tst.Errorf("diagram must contain the caption\n")
	}
	if AsciiLoop(nil, 10, "") != "" {
		tst.Errorf("diagram of empty history must be empty\n")
	}
	if Label("eps", "mm") != "strain ε [mm]" {
		tst.Errorf("wrong label: %q\n", Label("eps", "mm"))
	}
}
