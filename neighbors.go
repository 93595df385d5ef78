/*
 * neighbors.go, part of gogist.
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

//A step from a voxel to one of its neighbors, in voxel units along x, y and z.
type direction [3]int

//legacyDirections are the neighbor voxels visited by the entropy estimator, in visiting
//order: the 6 face neighbors and the 12 edge neighbors, with the +z+y and +z-y
//neighbors visited twice. The 8 corner neighbors
//are not visited. Visiting a voxel twice doesn't change a nearest-neighbor
//search, so only the set matters for the results.
var legacyDirections = []direction{
	{0, 0, 1}, {0, 1, 0}, {1, 0, 0},
	{0, 0, -1}, {0, -1, 0}, {-1, 0, 0},
	{0, 1, 1}, {0, -1, 1},
	{0, 1, 1}, {0, -1, 1},
	{0, 1, -1}, {0, -1, -1},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
}

//fullDirections are all 26 voxels surrounding a voxel.
var fullDirections = func() []direction {
	ret := make([]direction, 0, 26)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				ret = append(ret, direction{i, j, k})
			}
		}
	}
	return ret
}()

//offsets turns directions into flat-index offsets for the grid g.
func (g *Grid) offsets(dirs []direction) []int {
	addx, addy, addz := g.Strides()
	ret := make([]int, len(dirs))
	for i, d := range dirs {
		ret[i] = d[0]*addx + d[1]*addy + d[2]*addz
	}
	return ret
}

//NeighborOffsets returns the flat-index offsets of the neighbor voxels searched by the
//entropy estimator, in visiting order: face and edge neighbors, but no corners (see
//legacyDirections). If full is given and true, the offsets of all 26 neighbors
//are returned instead. The offsets are only meaningful for voxels for which
//Boundary returns false.
func (g *Grid) NeighborOffsets(full ...bool) []int {
	if len(full) > 0 && full[0] {
		return g.offsets(fullDirections)
	}
	return g.offsets(legacyDirections)
}
