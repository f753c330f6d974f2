// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// Label returns the axis label of key, followed by unit if given
func Label(key, unit string) string {
	var l string
	switch key {
	case "eps":
		l = "strain ε"
	case "sig":
		l = "stress σ"
	case "D":
		l = "tangent D"
	case "step":
		l = "step"
	case "u":
		l = "deformation u"
	case "F":
		l = "force F"
	default:
		l = key
	}
	if unit != "" {
		l += " [" + unit + "]"
	}
	return l
}
