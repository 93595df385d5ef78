/*
 * distance_test.go, part of gogist.
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
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/gogist/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPairwiseDistances(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0, //target
		1, 0, 0, //target
		9, 0, 0, //site
		0, 0, 2, //site
	})
	require.NoError(Te, err)
	cell := NewOrthoCell(10, 10, 10)
	out := mat.NewDense(2, 2, nil)
	require.NoError(Te, PairwiseDistances(2, []int{0, 1}, coords, cell, out))
	want := []float64{1, 4, 4, 5}
	assert.InDeltaSlice(Te, want, out.RawMatrix().Data, 1e-12)
	//a second call accumulates.
	require.NoError(Te, PairwiseDistances(2, []int{0, 1}, coords, cell, out))
	assert.InDeltaSlice(Te, []float64{2, 8, 8, 10}, out.RawMatrix().Data, 1e-12)

	assert.Error(Te, PairwiseDistances(3, []int{0, 1}, coords, cell, out))
	assert.Error(Te, PairwiseDistances(2, []int{0}, coords, cell, out))
	assert.Error(Te, PairwiseDistances(2, []int{0, 4}, coords, cell, out))

	sing, err := NewUnitCell([]float64{1, 1, 0, 1, 1, 0, 0, 0, 1})
	require.NoError(Te, err)
	out.Zero()
	assert.Error(Te, PairwiseDistances(2, []int{0, 1}, coords, sing, out))
	assert.Equal(Te, 0.0, mat.Sum(out))
}

func TestDistanceMatrix(Te *testing.T) {
	r := rand.New(rand.NewSource(4))
	n := 12
	data := make([]float64, 3*n)
	for i := range data {
		data[i] = r.Float64() * 20
	}
	coords, err := v3.NewMatrix(data)
	require.NoError(Te, err)
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, -1)
	}
	require.NoError(Te, DistanceMatrix(coords, out))
	for i := 0; i < n; i++ {
		assert.Equal(Te, -1.0, out.At(i, i))
		for l := 0; l < n; l++ {
			if l == i {
				continue
			}
			assert.Equal(Te, out.At(i, l), out.At(l, i))
			assert.InDelta(Te, math.Sqrt(coords.DistSq(i, coords, l)), out.At(i, l), 1e-12)
		}
	}
	assert.Error(Te, DistanceMatrix(coords, mat.NewDense(n, n-1, nil)))
}
