/*
 * gistplot/gistplot.go, part of gogist.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package gistplot draws histograms and axial profiles of the columns of a GIST table.
package gistplot

import (
	"fmt"
	"image/color"

	gist "github.com/rmera/gogist"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved figures.
var (
	Width  = 4 * vg.Inch
	Height = 4 * vg.Inch
)

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func checkField(field int) error {
	if field < 0 || field >= gist.NumFields {
		return fmt.Errorf("gistplot: field %d out of range", field)
	}
	return nil
}

//occupied returns the values of field for the voxels with at least one molecule.
func occupied(g *gist.Grid, field int) ([]float64, error) {
	col, err := g.Column(field)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, 0, len(col))
	for i, v := range col {
		if g.Voxels[i].Count > 0 {
			ret = append(ret, v)
		}
	}
	return ret, nil
}

//Histogram saves to filename a histogram of the given values with the given number of bins.
//The format is taken from the file extension (png, svg, pdf...).
func Histogram(values []float64, bins int, title, xlabel, filename string) error {
	if len(values) == 0 {
		return fmt.Errorf("gistplot: no values to plot")
	}
	p := newPlot(title, xlabel, "Voxels")
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 90, G: 120, B: 200, A: 255}
	p.Add(h)
	return p.Save(Width, Height, filename)
}

//ColumnHistogram saves a histogram of the field of the GIST table of g over the
//occupied voxels.
func ColumnHistogram(g *gist.Grid, field, bins int, filename string) error {
	if err := checkField(field); err != nil {
		return err
	}
	vals, err := occupied(g, field)
	if err != nil {
		return err
	}
	return Histogram(vals, bins, gist.Titles[field], gist.Titles[field], filename)
}

//ProfileData returns, for each slice of voxels perpendicular to axis (0, 1 or 2 for x, y or z),
//the position of the slice centers and the average of the field over the slice.
func ProfileData(g *gist.Grid, field, axis int) (plotter.XYs, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("gistplot: axis %d, must be 0, 1 or 2", axis)
	}
	col, err := g.Column(field)
	if err != nil {
		return nil, err
	}
	slices := make([][]float64, g.Dims[axis])
	for i, v := range col {
		var c [3]int
		c[0], c[1], c[2] = g.Coords(i)
		slices[c[axis]] = append(slices[c[axis]], v)
	}
	ret := make(plotter.XYs, len(slices))
	for i, s := range slices {
		ret[i].X = g.Origin[axis] + (float64(i)+0.5)*g.Spacing
		ret[i].Y = stat.Mean(s, nil)
	}
	return ret, nil
}

//Profile saves to filename a line plot of the average of field over the slices of voxels
//perpendicular to axis.
func Profile(g *gist.Grid, field, axis int, filename string) error {
	xys, err := ProfileData(g, field, axis)
	if err != nil {
		return err
	}
	p := newPlot(gist.Titles[field]+" profile", []string{"x", "y", "z"}[axis]+" (A)", gist.Titles[field])
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 200, A: 255}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	p.Add(l, s)
	if err := p.Save(Width, Height, filename); err != nil {
		return err
	}
	gist.Log.WithFields(logrus.Fields{"file": filename, "field": gist.Titles[field]}).Debug("Saved profile")
	return nil
}
