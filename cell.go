/*
 * cell.go, part of gogist.
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

//UnitCell is a periodic simulation box. The rows of the 3x3 matrix are the lattice vectors.
type UnitCell struct {
	vecs  *mat.Dense
	a     [9]float64 //row-major copy of vecs
	ainv  [9]float64
	inv   *mat.Dense //nil until needed
	ortho bool
}

//NewUnitCell returns a unit cell from the 9 elements of the row-major matrix of lattice vectors.
func NewUnitCell(vecs []float64) (*UnitCell, error) {
	if len(vecs) != 9 {
		return nil, newErr(fmt.Sprintf("%s: a unit cell needs 9 elements, got %d", ErrShape, len(vecs)), "NewUnitCell")
	}
	U := new(UnitCell)
	copy(U.a[:], vecs)
	U.vecs = mat.NewDense(3, 3, append([]float64(nil), vecs...))
	U.ortho = true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && (U.a[3*i+j] >= OrthoTolerance || U.a[3*i+j] <= -OrthoTolerance) {
				U.ortho = false
			}
		}
	}
	return U, nil
}

//NewOrthoCell returns the orthorhombic cell with the given box lengths.
func NewOrthoCell(x, y, z float64) *UnitCell {
	U, _ := NewUnitCell([]float64{x, 0, 0, 0, y, 0, 0, 0, z}) //can't fail
	return U
}

//Orthorhombic returns true if all off-diagonal elements of the cell are within
//OrthoTolerance of zero.
func (U *UnitCell) Orthorhombic() bool {
	return U.ortho
}

//Box returns the diagonal of the cell, i.e. the box lengths of an orthorhombic cell.
func (U *UnitCell) Box() [3]float64 {
	return [3]float64{U.a[0], U.a[4], U.a[8]}
}

//Vecs returns the matrix of lattice vectors. It should not be modified.
func (U *UnitCell) Vecs() *mat.Dense {
	return U.vecs
}

//Inverse returns the inverse of the cell matrix. It is obtained only once, the
//first time it's requested. It can't be requested for orthorhombic cells,
//for which the minimum image is obtained from the box lengths only.
func (U *UnitCell) Inverse() (*mat.Dense, error) {
	if U.ortho {
		return nil, newErr(ErrOrthoInverse, "UnitCell.Inverse")
	}
	if err := U.invert(); err != nil {
		return nil, errDecorate(err, "UnitCell.Inverse")
	}
	return U.inv, nil
}

func (U *UnitCell) invert() error {
	if U.inv != nil {
		return nil
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(U.vecs); err != nil {
		return newErr(fmt.Sprintf("%s: %s", ErrSingularCell, err), "UnitCell.invert")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			U.ainv[3*i+j] = inv.At(i, j)
		}
	}
	U.inv = inv
	return nil
}

//DistSq returns the squared distance between x and y under the minimum
//image convention.
func (U *UnitCell) DistSq(x, y [3]float64) (float64, error) {
	if U.ortho {
		return OrthoDistSq(x, y, U.Box()), nil
	}
	d, err := U.TriclinicDistSq(x, y)
	return d, errDecorate(err, "UnitCell.DistSq")
}

//OrthoDistSq returns the minimum-image squared distance between x and y in an
//orthorhombic box. Each component is shifted at most once, so points are
//expected to be less than 1.5 box lengths apart.
func OrthoDistSq(x, y [3]float64, box [3]float64) float64 {
	var sq float64
	for i := 0; i < 3; i++ {
		d := x[i] - y[i]
		if d > box[i]/2 {
			d -= box[i]
		} else if d < -box[i]/2 {
			d += box[i]
		}
		sq += d * d
	}
	return sq
}

//TriclinicDistSq returns the minimum-image squared distance between x and y in
//any cell. Both points are wrapped into the reference cell in fractional
//coordinates and the 27 images of y around it are searched, since the image
//closest in fractional space needs not be the closest one in a skewed cell.
func (U *UnitCell) TriclinicDistSq(x, y [3]float64) (float64, error) {
	//a diagonal cell can also take this path, so invert() is called
	//directly instead of Inverse().
	if err := U.invert(); err != nil {
		return 0, errDecorate(err, "UnitCell.TriclinicDistSq")
	}
	xf := U.frac(x)
	yf := U.frac(y)
	for i := 0; i < 3; i++ {
		xf[i] -= math.Floor(xf[i])
		yf[i] -= math.Floor(yf[i])
	}
	xr := U.cart(xf)
	best := distSq(xr, U.cart(yf))
	var t [3]float64
	for i := -1.0; i <= 1; i++ {
		t[0] = yf[0] + i
		for j := -1.0; j <= 1; j++ {
			t[1] = yf[1] + j
			for k := -1.0; k <= 1; k++ {
				t[2] = yf[2] + k
				if d := distSq(xr, U.cart(t)); d < best {
					best = d
				}
			}
		}
	}
	return best, nil
}

//frac transforms the real-space point r (a row vector) into fractional
//coordinates, r*A^-1.
func (U *UnitCell) frac(r [3]float64) [3]float64 {
	m := &U.ainv
	return [3]float64{
		r[0]*m[0] + r[1]*m[3] + r[2]*m[6],
		r[0]*m[1] + r[1]*m[4] + r[2]*m[7],
		r[0]*m[2] + r[1]*m[5] + r[2]*m[8],
	}
}

//cart transforms fractional coordinates back into real space, f*A.
func (U *UnitCell) cart(f [3]float64) [3]float64 {
	m := &U.a
	return [3]float64{
		f[0]*m[0] + f[1]*m[3] + f[2]*m[6],
		f[0]*m[1] + f[1]*m[4] + f[2]*m[7],
		f[0]*m[2] + f[1]*m[5] + f[2]*m[8],
	}
}

//distSq is the plain squared euclidean distance.
func distSq(x, y [3]float64) float64 {
	dx := x[0] - y[0]
	dy := x[1] - y[1]
	dz := x[2] - y[2]
	return dx*dx + dy*dy + dz*dz
}
