// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/WenchenLie/MyOpenSees/inp"
	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/WenchenLie/MyOpenSees/out"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a material through a strain path",
	Long: `Drive a material through a strain path and report the response.

The path is read from a JSON file (--path) with either explicit strains
  {"eps": [0, 0.1, 0.2, ...]}
or a cyclic protocol
  {"levels": [0, 10, -10, 20, -20, 0], "n": 200, "sf": 1}
or given by --levels, --npts and --sf.

Examples:
  hystdrv run --mat inp/data/hyst.mat --name damper --levels 0,5,-5,10,-10,0
  hystdrv run --mat inp/data/hyst.mat --name brace --path inp/data/cyclic.json -o brace.png
  hystdrv run --mat inp/data/hyst.mat --name bearing --levels 0,0.25,-0.25,0 --diagram --db runs.db`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("mat", "", "material file (.mat)")
	f.String("name", "", "name of material in the material file")
	f.String("path", "", "strain path file (.json)")
	f.Float64Slice("levels", nil, "comma separated target strains of a cyclic path")
	f.Int("npts", 200, "number of points per segment of the cyclic path")
	f.Float64("sf", 1, "scale factor of the target strains")
	f.Bool("diagram", false, "print a terminal diagram of the stress history")
	f.StringP("output", "o", "", "save the stress-strain loop to a figure; e.g. loop.png")
	f.String("db", "", "record the history in a SQLite database")
	f.String("run-name", "", "name of the recorded run; default is material name and time")
	viper.BindPFlags(f)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) (err error) {

	// material
	matfn := viper.GetString("mat")
	name := viper.GetString("name")
	if matfn == "" || name == "" {
		return fmt.Errorf("--mat and --name are required")
	}
	mdb, err := inp.ReadMat(filepath.Dir(matfn), filepath.Base(matfn))
	if err != nil {
		return err
	}
	mat := mdb.Get(name)
	if mat == nil {
		return fmt.Errorf("cannot find material %q in %q", name, matfn)
	}
	mdl := mat.NewModel()

	// path
	levels, err := cmd.Flags().GetFloat64Slice("levels")
	if err != nil {
		return
	}
	var pth uniax.Path
	switch {
	case viper.GetString("path") != "":
		err = pth.ReadJson(viper.GetString("path"))
	case len(levels) > 0:
		err = pth.SetCyclic(levels, viper.GetInt("npts"), viper.GetFloat64("sf"))
	default:
		return fmt.Errorf("either --path or --levels must be given")
	}
	if err != nil {
		return fmt.Errorf("cannot set path: %w", err)
	}

	// run
	logger.Log("msg", "running", "material", name, "model", mdl.Name(), "npts", pth.Size())
	t0 := time.Now()
	var drv uniax.Driver
	err = drv.Init(mdl)
	if err != nil {
		return
	}
	err = drv.Run(&pth)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	logger.Log("msg", "done", "material", name, "elapsed", time.Since(t0))

	// report
	w := cmd.OutOrStdout()
	s, err := out.Stats(drv.Res)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "material %q (%s)\n%v\n", name, mdl.Name(), s)
	if f, ok := mdl.(interface{ HasFailed() bool }); ok && f.HasFailed() {
		fmt.Fprintf(w, "material %q has failed\n", name)
	}
	if viper.GetBool("diagram") {
		fmt.Fprintf(w, "%s\n", out.AsciiLoop(drv.Res, 15, fmt.Sprintf("stress history of %s", name)))
	}
	if fn := viper.GetString("output"); fn != "" {
		err = out.PlotLoop(drv.Res, fmt.Sprintf("%s (%s)", name, mdl.Name()), fn)
		if err != nil {
			return fmt.Errorf("cannot save figure: %w", err)
		}
		logger.Log("msg", "figure saved", "file", fn)
	}

	// record
	if dbfn := viper.GetString("db"); dbfn != "" {
		var db *out.Store
		db, err = out.OpenStore(dbfn)
		if err != nil {
			return
		}
		defer db.Close()
		run := &out.Run{Name: viper.GetString("run-name"), Material: name, Model: mdl.Name(), Created: time.Now()}
		if run.Name == "" {
			run.Name = fmt.Sprintf("%s-%s", name, run.Created.Format("20060102T150405.000"))
		}
		err = db.SaveRun(cmd.Context(), run, drv.Res)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "run %q recorded in %s\n", run.Name, db.Path())
	}
	return
}
