/*
 * grid.go, part of gogist.
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
)

//Grid is a regular grid of cubic voxels laid over the region of interest. Voxels are
//stored in a flat slice, in row-major order: the z index runs fastest.
//The Grid owns the VoxelRecords, which accumulate data for the whole analysis.
type Grid struct {
	Origin  [3]float64
	Dims    [3]int
	Spacing float64
	//Max is the extent of the grid from the origin along each axis. It is
	//Dims*Spacing unless set otherwise.
	Max    [3]float64
	Voxels []VoxelRecord
}

//NewGrid returns a grid with the given origin and number of voxels per axis. The
//voxel edge is VoxelEdge, unless another spacing is given.
func NewGrid(origin [3]float64, dims [3]int, spacing ...float64) (*Grid, error) {
	g := &Grid{Origin: origin, Dims: dims, Spacing: VoxelEdge}
	if len(spacing) > 0 && spacing[0] > 0 {
		g.Spacing = spacing[0]
	}
	for i, v := range dims {
		if v <= 0 {
			return nil, newErr(fmt.Sprintf("%s: grid dimension %d is %d", ErrShape, i, v), "NewGrid")
		}
		g.Max[i] = float64(v) * g.Spacing
	}
	g.Voxels = make([]VoxelRecord, g.Len())
	return g, nil
}

//Len returns the total number of voxels, nx*ny*nz.
func (g *Grid) Len() int {
	return g.Dims[0] * g.Dims[1] * g.Dims[2]
}

//Strides returns how much the flat index changes for a unit step along x, y and z.
func (g *Grid) Strides() (addx, addy, addz int) {
	return g.Dims[1] * g.Dims[2], g.Dims[2], 1
}

//Index returns the flat index of the voxel ix, iy, iz. It doesn't check bounds.
func (g *Grid) Index(ix, iy, iz int) int {
	return (ix*g.Dims[1]+iy)*g.Dims[2] + iz
}

//IndexCheck returns the flat index of the voxel and true if the voxel
//is in the grid, or -1 and false otherwise.
func (g *Grid) IndexCheck(ix, iy, iz int) (int, bool) {
	if ix < 0 || iy < 0 || iz < 0 || ix >= g.Dims[0] || iy >= g.Dims[1] || iz >= g.Dims[2] {
		return -1, false
	}
	return g.Index(ix, iy, iz), true
}

//Coords returns the voxel indexes along each axis from a flat index.
func (g *Grid) Coords(idx int) (ix, iy, iz int) {
	addx, addy, _ := g.Strides()
	ix = idx / addx
	iy = (idx % addx) / addy
	iz = idx % addy
	return ix, iy, iz
}

//Center returns the cartesian coordinates of the center of the voxel idx.
func (g *Grid) Center(idx int) [3]float64 {
	ix, iy, iz := g.Coords(idx)
	return [3]float64{
		g.Origin[0] + (float64(ix)+0.5)*g.Spacing,
		g.Origin[1] + (float64(iy)+0.5)*g.Spacing,
		g.Origin[2] + (float64(iz)+0.5)*g.Spacing,
	}
}

//VoxelVolume returns the volume of one voxel.
func (g *Grid) VoxelVolume() float64 {
	return g.Spacing * g.Spacing * g.Spacing
}

//Boundary returns true if the voxel lies on any face of the grid, i.e. if at
//least one of its face neighbors would be outside the grid. The neighbor
//searches are only carried out for voxels that are not in the boundary.
func (g *Grid) Boundary(idx int) bool {
	ix, iy, iz := g.Coords(idx)
	return ix == 0 || iy == 0 || iz == 0 ||
		ix == g.Dims[0]-1 || iy == g.Dims[1]-1 || iz == g.Dims[2]-1
}

//Voxel returns the index of the voxel containing the point pos, and true, or -1
//and false if the point is not in any voxel. Points further than VoxelTolerance
//below the origin, or beyond Max, are rejected, as are points with a negative
//offset from the origin that are still within the tolerance. NaN coordinates are
//never in a voxel.
func (g *Grid) Voxel(pos [3]float64) (int, bool) {
	var t [3]float64
	for i := 0; i < 3; i++ {
		t[i] = pos[i] - g.Origin[i]
		if !(t[i] <= g.Max[i] && t[i] >= VoxelTolerance) {
			return -1, false
		}
	}
	if t[0] < 0 || t[1] < 0 || t[2] < 0 {
		return -1, false
	}
	var idx [3]int
	for i := 0; i < 3; i++ {
		idx[i] = int(t[i] / g.Spacing)
		if idx[i] >= g.Dims[i] {
			return -1, false
		}
	}
	return g.Index(idx[0], idx[1], idx[2]), true
}
