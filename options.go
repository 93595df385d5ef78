/*
 * options.go, part of gogist.
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

package gist

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

//Log is the logger used by the package when no other is given in the Options.
var Log logrus.FieldLogger = logrus.StandardLogger()

//Params holds the physical parameters of the entropy calculation.
type Params struct {
	Frames      int     `toml:"frames"`       //number of frames sampled
	VoxelVolume float64 `toml:"voxel_volume"` //A^3
	RefDensity  float64 `toml:"ref_density"`  //bulk number density, molecules/A^3
	Temperature float64 `toml:"temperature"`  //K
}

//DefaultParams returns parameters for TIP3P-like water at 300 K on the default grid.
//Frames is left at zero, as it has to be given by the caller.
func DefaultParams() *Params {
	return &Params{
		VoxelVolume: VoxelEdge * VoxelEdge * VoxelEdge,
		RefDensity:  0.0334,
		Temperature: 300,
	}
}

//Validate returns an error if any parameter would make the normalization meaningless.
func (p *Params) Validate() error {
	if p == nil {
		return newErr(ErrParams+": nil parameters", "Params.Validate")
	}
	switch {
	case p.Frames <= 0:
		return newErr(fmt.Sprintf("%s: frames must be positive, got %d", ErrParams, p.Frames), "Params.Validate")
	case p.VoxelVolume <= 0:
		return newErr(fmt.Sprintf("%s: voxel volume must be positive, got %g", ErrParams, p.VoxelVolume), "Params.Validate")
	case p.RefDensity <= 0:
		return newErr(fmt.Sprintf("%s: reference density must be positive, got %g", ErrParams, p.RefDensity), "Params.Validate")
	case p.Temperature <= 0:
		return newErr(fmt.Sprintf("%s: temperature must be positive, got %g", ErrParams, p.Temperature), "Params.Validate")
	}
	return nil
}

//kT returns the thermal energy in kcal/mol.
func (p *Params) kT() float64 {
	return GasKcal * p.Temperature
}

//Options for the entropy estimator. The zero value is not useful, use DefaultOptions.
type Options struct {
	fullNeighbors bool
	cutoff        float64
	log           logrus.FieldLogger
}

//Returns an Options with the default options.
func DefaultOptions() *Options {
	return &Options{
		fullNeighbors: false,
		cutoff:        TransCutoff,
		log:           Log,
	}
}

//FullNeighbors returns whether the neighbor-voxel search uses all 26 surrounding
//voxels instead of the historical 18-direction set, and sets it, if a value is given.
func (o *Options) FullNeighbors(full ...bool) bool {
	ret := o.fullNeighbors
	if len(full) > 0 {
		o.fullNeighbors = full[0]
	}
	return ret
}

//Cutoff returns the largest nearest-neighbor distance (A) that contributes to the
//translational and six-dimensional entropies, and sets it, if a valid value is given.
func (o *Options) Cutoff(cutoff ...float64) float64 {
	ret := o.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		o.cutoff = cutoff[0]
	}
	return ret
}

//Log returns the logger and sets it, if a non-nil one is given.
func (o *Options) Log(l ...logrus.FieldLogger) logrus.FieldLogger {
	ret := o.log
	if len(l) > 0 && l[0] != nil {
		o.log = l[0]
	}
	return ret
}

func getOptions(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}
