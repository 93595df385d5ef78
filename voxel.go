/*
 * voxel.go, part of gogist.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//MoleculeSample is one solvent molecule observed in a voxel in one frame: the position of its
//reference site and its orientation as a unit quaternion (w, x, y, z).
type MoleculeSample struct {
	Pos  [3]float64
	Quat [4]float64
}

//VoxelRecord accumulates the data of one voxel over a whole analysis. The float fields
//correspond to the columns 5 and 6, and 7 to 12, of the GIST table. Count is column 4.
type VoxelRecord struct {
	Count        int
	GO           float64 //occupancy relative to the bulk.
	GH           float64
	TSTransDens  float64
	TSTransNorm  float64
	TSOrientDens float64
	TSOrientNorm float64
	TSSixDens    float64
	TSSixNorm    float64
	//Samples holds the molecules observed in the voxel, for all frames.
	Samples []MoleculeSample
	//Extra holds the columns after the 12th of a loaded table, if any.
	Extra []float64
}

//AddSample records a molecule in the voxel idx, incrementing the voxel count.
func (g *Grid) AddSample(idx int, pos [3]float64, quat [4]float64) error {
	if idx < 0 || idx >= len(g.Voxels) {
		return newErr(fmt.Sprintf("%s: voxel %d, grid has %d", ErrIndex, idx, len(g.Voxels)), "AddSample")
	}
	v := &g.Voxels[idx]
	v.Samples = append(v.Samples, MoleculeSample{Pos: pos, Quat: quat})
	v.Count++
	return nil
}

//Reset zeroes every voxel record in the grid, dropping all samples.
func (g *Grid) Reset() {
	for i := range g.Voxels {
		g.Voxels[i] = VoxelRecord{}
	}
}

func (v *VoxelRecord) fields() [TableFields - FieldNWat]float64 {
	return [...]float64{float64(v.Count), v.GO, v.GH,
		v.TSTransDens, v.TSTransNorm, v.TSOrientDens, v.TSOrientNorm, v.TSSixDens, v.TSSixNorm}
}

func (v *VoxelRecord) setFields(f []float64) {
	v.Count = int(math.Round(f[0]))
	v.GO, v.GH = f[1], f[2]
	v.TSTransDens, v.TSTransNorm = f[3], f[4]
	v.TSOrientDens, v.TSOrientNorm = f[5], f[6]
	v.TSSixDens, v.TSSixNorm = f[7], f[8]
}

//Table returns the GIST table for the grid, with one row per voxel and NumFields columns:
//the voxel index, the coordinates of its center, and the voxel fields.
//Columns beyond the 12th are zero unless they were loaded with LoadTable.
func (g *Grid) Table() *mat.Dense {
	t := mat.NewDense(len(g.Voxels), NumFields, nil)
	for i := range g.Voxels {
		v := &g.Voxels[i]
		c := g.Center(i)
		t.Set(i, FieldIndex, float64(i))
		t.Set(i, FieldX, c[0])
		t.Set(i, FieldY, c[1])
		t.Set(i, FieldZ, c[2])
		for j, f := range v.fields() {
			t.Set(i, FieldNWat+j, f)
		}
		for j, f := range v.Extra {
			if TableFields+j >= NumFields {
				break
			}
			t.Set(i, TableFields+j, f)
		}
	}
	return t
}

//LoadTable sets the voxel fields from an existing table, which needs one row per
//voxel and at least TableFields columns. Samples are not modified.
func (g *Grid) LoadTable(t mat.Matrix) error {
	r, c := t.Dims()
	if r != len(g.Voxels) || c < TableFields {
		return newErr(fmt.Sprintf("%s: table is %dx%d, need %dx%d or wider", ErrShape, r, c, len(g.Voxels), TableFields), "LoadTable")
	}
	row := make([]float64, c)
	for i := range g.Voxels {
		mat.Row(row, i, t)
		v := &g.Voxels[i]
		v.setFields(row[FieldNWat:TableFields])
		v.Extra = nil
		if c > TableFields {
			v.Extra = append([]float64(nil), row[TableFields:]...)
		}
	}
	return nil
}

//Column returns a copy of the given column of the voxel table.
func (g *Grid) Column(field int) ([]float64, error) {
	if field < 0 || field >= NumFields {
		return nil, newErr(fmt.Sprintf("%s: field %d", ErrIndex, field), "Column")
	}
	return mat.Col(nil, field, g.Table()), nil
}

//Totals sums the translational, orientational and six-dimensional entropy densities
//over the grid, multiplied by the voxel volume.
func (g *Grid) Totals() (trans, orient, six float64) {
	n := len(g.Voxels)
	tr := make([]float64, 0, n)
	or := make([]float64, 0, n)
	sx := make([]float64, 0, n)
	for i := range g.Voxels {
		tr = append(tr, g.Voxels[i].TSTransDens)
		or = append(or, g.Voxels[i].TSOrientDens)
		sx = append(sx, g.Voxels[i].TSSixDens)
	}
	vol := g.VoxelVolume()
	return floats.Sum(tr) * vol, floats.Sum(or) * vol, floats.Sum(sx) * vol
}
