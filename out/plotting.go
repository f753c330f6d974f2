// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/WenchenLie/MyOpenSees/mdl/uniax"
	"github.com/cpmech/gosl/chk"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure size
var (
	FigWidth  = 8 * vg.Inch
	FigHeight = 6 * vg.Inch
)

// LoopPlot returns the stress-strain plot of one or more histories
//  labels -- legend entries; may be nil
func LoopPlot(title string, labels []string, histories ...[]*uniax.Record) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = Label("eps", "")
	p.Y.Label.Text = Label("sig", "")
	p.Add(plotter.NewGrid())
	for i, res := range histories {
		if len(res) == 0 {
			return nil, chk.Err("out: history %d is empty", i)
		}
		pts := make(plotter.XYs, len(res))
		for j, r := range res {
			pts[j].X, pts[j].Y = r.Eps, r.Sig
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = Color(i)
		p.Add(line)
		if i < len(labels) {
			p.Legend.Add(labels[i], line)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return
}

// PlotLoop saves the stress-strain plot of a history to fn
//  the format is given by the extension of fn; e.g. ".png", ".svg", ".pdf"
func PlotLoop(res []*uniax.Record, title, fn string) (err error) {
	p, err := LoopPlot(title, nil, res)
	if err != nil {
		return
	}
	if dir := filepath.Dir(fn); dir != "" {
		err = os.MkdirAll(dir, 0o755)
		if err != nil {
			return chk.Err("out: cannot create directory %q:\n%v", dir, err)
		}
	}
	return p.Save(FigWidth, FigHeight, fn)
}

// AsciiLoop returns a terminal diagram of the stress history
//  height -- number of rows; use 0 for default
func AsciiLoop(res []*uniax.Record, height int, caption string) string {
	if len(res) == 0 {
		return ""
	}
	_, sig := Series(res)
	if height < 1 {
		height = 15
	}
	return asciigraph.Plot(sig, asciigraph.Height(height), asciigraph.Width(72), asciigraph.Caption(caption))
}

// palette holds the line colours
var palette = []color.RGBA{
	{R: 0, G: 0, B: 139, A: 255},
	{R: 220, G: 20, B: 60, A: 255},
	{R: 34, G: 139, B: 34, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 128, G: 0, B: 128, A: 255},
}

// Color returns the i-th line colour
func Color(i int) color.Color {
	return palette[i%len(palette)]
}
