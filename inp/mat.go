// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "modboucwen", "tsb", "failure", etc.
	Inner string     `json:"inner"` // name of inner material of wrapper models; e.g. "failure"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl uniax.Model // pointer to actual model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	defer func() {
		if r := recover(); r != nil {
			mdb, err = nil, chk.Err("cannot read materials file %q:\n%v", fn, r)
		}
	}()
	b := io.ReadFile(filepath.Join(dir, fn))
	mdb, err = ParseMat(b)
	if err != nil {
		return nil, chk.Err("cannot read materials from %q:\n%v", fn, err)
	}
	return
}

// ParseMat decodes materials data and allocates all models
//  wrappers name their inner material with "inner"; it may appear anywhere in the file
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// index
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material with model %q has no name", m.Model)
		}
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		mdb.byName[m.Name] = m
	}

	// alloc/init
	visiting := make(map[string]bool)
	for _, m := range mdb.Materials {
		err = mdb.alloc(m, visiting)
		if err != nil {
			return nil, err
		}
	}
	return
}

// alloc allocates and initialises the model of m after its inner material
func (o *MatDb) alloc(m *Material, visiting map[string]bool) (err error) {
	if m.Mdl != nil {
		return
	}
	if visiting[m.Name] {
		return chk.Err("material %q depends on itself", m.Name)
	}
	visiting[m.Name] = true
	defer delete(visiting, m.Name)

	mdl, err := uniax.New(m.Model)
	if err != nil {
		return chk.Err("material %q: %v", m.Name, err)
	}
	w, isWrapper := mdl.(uniax.Wrapper)
	switch {
	case isWrapper && m.Inner == "":
		return chk.Err("material %q: model %q requires an inner material", m.Name, m.Model)
	case !isWrapper && m.Inner != "":
		return chk.Err("material %q: model %q does not take an inner material", m.Name, m.Model)
	case isWrapper:
		inner, ok := o.byName[m.Inner]
		if !ok {
			return chk.Err("material %q: cannot find inner material %q", m.Name, m.Inner)
		}
		err = o.alloc(inner, visiting)
		if err != nil {
			return
		}
		w.SetInner(inner.Mdl)
	}
	err = mdl.Init(m.Prms)
	if err != nil {
		return chk.Err("material %q: %v", m.Name, err)
	}
	m.Mdl = mdl
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	if o.byName != nil {
		return o.byName[name]
	}
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// NewModel returns an independent copy of the model of material
func (o *Material) NewModel() uniax.Model {
	return o.Mdl.GetCopy()
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n", o.Name, o.Model)
	if o.Inner != "" {
		l += io.Sf("      \"inner\" : %q,\n", o.Inner)
	}
	l += "      \"prms\"  : ["
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\": %q, \"v\": %g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}
