/*
 * energy.go, part of gogist.
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

	"gonum.org/v1/gonum/mat"
)

func sameDims(a, b mat.Matrix) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	return ra == rb && ca == cb
}

//PairwiseEnergy computes the Lennard-Jones and Coulomb interaction energies between the
//solvent sites molOffset ... molOffset+S-1 and T atoms, where SxT are the dimensions of all
//the matrices. distSq holds the squared distances between each pair, chg the product
//of the charges, and ljA and ljB the Lennard-Jones A and B coefficients.
//ljA and chg are overwritten with the Lennard-Jones (A/r^12 - B/r^6) and the Coulomb
//(q/r) energies, respectively. The elements for which molOffset+i == j (a site with itself)
//are left untouched. A non-positive distance for any other pair is an error, reported
//before anything is modified.
func PairwiseEnergy(molOffset int, distSq, chg, ljA, ljB *mat.Dense) error {
	if !sameDims(distSq, chg) || !sameDims(distSq, ljA) || !sameDims(distSq, ljB) {
		return newErr(ErrShape+": distance, charge and Lennard-Jones matrices must have the same dimensions", "PairwiseEnergy")
	}
	s, t := distSq.Dims()
	for i := 0; i < s; i++ {
		for j := 0; j < t; j++ {
			if molOffset+i == j {
				continue
			}
			if d := distSq.At(i, j); d <= 0 {
				return newErr(fmt.Sprintf("%s: pair %d-%d, squared distance %g", ErrZeroDistance, molOffset+i, j, d), "PairwiseEnergy")
			}
		}
	}
	for i := 0; i < s; i++ {
		for j := 0; j < t; j++ {
			if molOffset+i == j {
				continue
			}
			d := distSq.At(i, j)
			dinv := 1 / d
			d6 := dinv * dinv * dinv
			d12 := d6 * d6
			ljA.Set(i, j, ljA.At(i, j)*d12-ljB.At(i, j)*d6)
			chg.Set(i, j, chg.At(i, j)/math.Sqrt(d))
		}
	}
	return nil
}

//InteractionEnergy sums the energies left by PairwiseEnergy in ljA and chg, skipping the
//self pairs as PairwiseEnergy does, and returns the total van der Waals and electrostatic
//energies. The electrostatic sum is multiplied by CoulombKcal, so with charges in e and
//distances in A both energies are in kcal/mol.
func InteractionEnergy(molOffset int, ljA, chg *mat.Dense) (vdw, elec float64) {
	s, t := ljA.Dims()
	for i := 0; i < s; i++ {
		for j := 0; j < t; j++ {
			if molOffset+i == j {
				continue
			}
			vdw += ljA.At(i, j)
			elec += chg.At(i, j)
		}
	}
	return vdw, elec * CoulombKcal
}
