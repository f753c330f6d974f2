// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import "math"

// MACHEPS is the machine epsilon; smaller strain increments are ignored
const MACHEPS = 2.220446049250313e-16

// BIG is the default for unbounded limits
const BIG = 1e16

// friction computes the Coulomb slip force after an increment Δu
//  k     -- elastic (sticking) stiffness
//  Fslip -- slip force
func friction(F0, Δu, k, Fslip float64) float64 {
	if math.Abs(Δu) <= MACHEPS {
		return F0
	}
	F := F0 + Δu*k
	if F > Fslip {
		return Fslip
	}
	if F < -Fslip {
		return -Fslip
	}
	return F
}

// flagSpring implements a flag-shaped (bilinear with slip) self-centering spring
type flagSpring struct {
	Fy    float64 // yield (activation) force
	K1    float64 // initial stiffness
	K2    float64 // post-yield stiffness
	C     float64 // reverse-yield ratio; unloading yields at C*Fy
	Ubear float64 // displacement at bearing contact; +Inf means no bearing
	Kbear float64 // bearing stiffness
}

// force computes the spring force after an increment Δu from (u0, F0)
func (o flagSpring) force(u0, F0, Δu float64) float64 {
	if Δu == 0 {
		return F0
	}
	u := u0 + Δu
	uy := o.Fy / o.K1
	Ftr := F0 + Δu*o.K1

	// bearing contact
	if u >= o.Ubear {
		return o.Kbear*(u-o.Ubear) + o.Fy + (o.Ubear-uy)*o.K2
	}
	if u <= -o.Ubear {
		return o.Kbear*(u+o.Ubear) - o.Fy - (o.Ubear-uy)*o.K2
	}

	// branches
	ur := o.Fy * o.C / o.K1            // reverse-yield displacement
	Fr := o.Fy * o.C * (1 - o.K2/o.K1) // offset of reverse-yield branches
	if Δu > 0 {
		switch {
		case u < -ur && Ftr > o.K2*u-Fr:
			return o.K2*u - Fr
		case -ur <= u && u <= uy && Ftr > o.K1*u:
			return o.K1 * u
		case u > ur && Ftr > o.K2*u+o.Fy-o.K2*uy:
			return o.K2*u + o.Fy - o.K2*uy
		}
		return Ftr
	}
	switch {
	case u > ur && Ftr < o.K2*u+Fr:
		return o.K2*u + Fr
	case -uy <= u && u <= ur && Ftr < o.K1*u:
		return o.K1 * u
	case u < -ur && Ftr < o.K2*u-(o.Fy-o.K2*uy):
		return o.K2*u - (o.Fy - o.K2*uy)
	}
	return Ftr
}
