/*
 * assign.go, part of gogist.
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

	v3 "github.com/rmera/gogist/v3"
)

//Assignment records that a solvent molecule was found in a voxel in a given frame.
//Site is the atom index of the molecule's reference site, as given to AssignVoxels,
//and Molecule is the position of that site in the list.
type Assignment struct {
	Frame    int
	Voxel    int
	Site     int
	Molecule int
}

//AssignVoxels finds the voxel of g that holds the reference site of each solvent molecule,
//for each frame. siteIDs are the indexes of the reference sites (say, the water oxygens)
//in each frame. Molecules outside the grid are not reported. The assignments are returned
//in frame order, and in the order of siteIDs within a frame.
func AssignVoxels(frames []*v3.Matrix, g *Grid, siteIDs []int) ([]Assignment, error) {
	ret := make([]Assignment, 0, len(siteIDs))
	if len(siteIDs) == 0 {
		return ret, nil
	}
	sites := v3.Zeros(len(siteIDs))
	for f, coords := range frames {
		if coords == nil {
			return nil, newErr(fmt.Sprintf("%s: frame %d is nil", ErrShape, f), "AssignVoxels")
		}
		if err := sites.SomeVecsSafe(coords, siteIDs); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("AssignVoxels: frame %d", f))
		}
		for m, s := range siteIDs {
			if idx, ok := g.Voxel(sites.Vec(m)); ok {
				ret = append(ret, Assignment{Frame: f, Voxel: idx, Site: s, Molecule: m})
			}
		}
	}
	return ret, nil
}
