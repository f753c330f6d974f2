// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniax

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	kitlog "github.com/go-kit/kit/log"
)

// logger receives diagnostics; nothing is logged unless SetLogger is called
var logger kitlog.Logger = kitlog.NewNopLogger()

// SetLogger sets the logger used for diagnostics
func SetLogger(l kitlog.Logger) {
	if l == nil {
		l = kitlog.NewNopLogger()
	}
	logger = kitlog.With(l, "pkg", "uniax")
}

// Channel is the communication channel used by parallel hosts to exchange model data
type Channel interface {
	SendVector(tag int, v []float64) error
	RecvVector(tag int, v []float64) error
}

// unsupported logs and returns the error for operations models do not implement
func unsupported(model, op string) error {
	logger.Log("model", model, "op", op, "msg", "not available")
	return chk.Err("%s: %s is not available", model, op)
}

// print flags
const (
	PrintModel = 0 // human-readable key/value form
	PrintJSON  = 1 // tag/type/parameters map
)

// Print writes a description of model m to buf
func Print(buf *bytes.Buffer, tag string, m Model, flag int) {
	prms := m.CurPrms()
	switch flag {
	case PrintJSON:
		dat := map[string]interface{}{"tag": tag, "type": m.Name()}
		for _, p := range prms {
			dat[p.N] = p.V
		}
		if w, ok := m.(*Failure); ok && w.inner != nil {
			dat["material"] = w.inner.Name()
		}
		b, err := json.Marshal(dat)
		if err != nil {
			io.Ff(buf, "{\"tag\": %q, \"error\": %q}", tag, err.Error())
			return
		}
		buf.Write(b)
	default:
		io.Ff(buf, "%s tag: %s\n", m.Name(), tag)
		for _, p := range prms {
			io.Ff(buf, "  %-10s %g\n", p.N+":", p.V)
		}
		if w, ok := m.(*Failure); ok && w.inner != nil {
			io.Ff(buf, "  %-10s %s\n", "material:", w.inner.Name())
		}
	}
}
