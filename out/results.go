// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of strain-stress histories
package out

import (
	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Summary holds the extreme values of a history
type Summary struct {
	Npts   int     // number of points
	EpsMin float64 // minimum strain
	EpsMax float64 // maximum strain
	SigMin float64 // minimum stress
	SigMax float64 // maximum stress
	Energy float64 // dissipated energy
}

// String returns a table with the summary
func (o Summary) String() string {
	return io.ArgsTable("SUMMARY",
		"number of points", "npts", o.Npts,
		"minimum strain", "epsMin", o.EpsMin,
		"maximum strain", "epsMax", o.EpsMax,
		"minimum stress", "sigMin", o.SigMin,
		"maximum stress", "sigMax", o.SigMax,
		"dissipated energy", "energy", o.Energy,
	)
}

// Series splits records into strain and stress slices
func Series(res []*uniax.Record) (eps, sig []float64) {
	eps = make([]float64, len(res))
	sig = make([]float64, len(res))
	for i, r := range res {
		eps[i], sig[i] = r.Eps, r.Sig
	}
	return
}

// Stats computes the summary of a history
func Stats(res []*uniax.Record) (s Summary, err error) {
	if len(res) == 0 {
		return s, chk.Err("out: history is empty")
	}
	eps, sig := Series(res)
	s.Npts = len(res)
	s.EpsMin, s.EpsMax = floats.Min(eps), floats.Max(eps)
	s.SigMin, s.SigMax = floats.Min(sig), floats.Max(sig)
	s.Energy = Energy(res)
	return
}

// Energy computes the work done along the history with the trapezoidal rule
//  W = Σ ½ (σᵢ + σᵢ₋₁) (εᵢ - εᵢ₋₁)
//  Note: for closed loops this is the dissipated (hysteretic) energy
func Energy(res []*uniax.Record) float64 {
	n := len(res)
	if n < 2 {
		return 0
	}
	eps, sig := Series(res)
	Δε := make([]float64, n-1)
	σm := make([]float64, n-1)
	floats.SubTo(Δε, eps[1:], eps[:n-1])
	floats.AddTo(σm, sig[1:], sig[:n-1])
	floats.Scale(0.5, σm)
	return floats.Dot(σm, Δε)
}
