/*
 * distance.go, part of gogist.
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

	v3 "github.com/rmera/gogist/v3"
	"gonum.org/v1/gonum/mat"
)

//PairwiseDistances adds to out the minimum-image squared distances between the solvent
//sites molOffset, molOffset+1 ... molOffset+S-1 and the atoms in targets, where S is the
//number of rows of out, and out has one column per target. coords holds the coordinates
//of one frame. out is modified: the distances are added to its previous contents,
//so it should be zeroed by the caller if that is not desired.
func PairwiseDistances(molOffset int, targets []int, coords *v3.Matrix, cell *UnitCell, out *mat.Dense) error {
	s, t := out.Dims()
	n := coords.NVecs()
	if t != len(targets) {
		return newErr(fmt.Sprintf("%s: output has %d columns for %d targets", ErrShape, t, len(targets)), "PairwiseDistances")
	}
	if molOffset < 0 || molOffset+s > n {
		return newErr(fmt.Sprintf("%s: sites %d to %d, frame has %d atoms", ErrIndex, molOffset, molOffset+s-1, n), "PairwiseDistances")
	}
	for _, j := range targets {
		if j < 0 || j >= n {
			return newErr(fmt.Sprintf("%s: target atom %d, frame has %d atoms", ErrIndex, j, n), "PairwiseDistances")
		}
	}
	if !cell.Orthorhombic() {
		//we catch singular cells before touching out.
		if _, err := cell.Inverse(); err != nil {
			return errDecorate(err, "PairwiseDistances")
		}
	}
	for i := 0; i < s; i++ {
		x := coords.Vec(molOffset + i)
		for k, j := range targets {
			d, err := cell.DistSq(x, coords.Vec(j))
			if err != nil {
				return errDecorate(err, "PairwiseDistances")
			}
			out.Set(i, k, out.At(i, k)+d)
		}
	}
	return nil
}

//DistanceMatrix fills out, an NxN matrix where N is the number of points in coords, with the
//Euclidean (non-periodic) distances between each pair of points. The diagonal of out is
//not modified.
func DistanceMatrix(coords *v3.Matrix, out *mat.Dense) error {
	n := coords.NVecs()
	r, c := out.Dims()
	if r != n || c != n {
		return newErr(fmt.Sprintf("%s: output is %dx%d for %d points", ErrShape, r, c, n), "DistanceMatrix")
	}
	for i := 0; i < n; i++ {
		for l := 0; l < n; l++ {
			if i == l {
				continue
			}
			out.Set(i, l, math.Sqrt(coords.DistSq(i, coords, l)))
		}
	}
	return nil
}
