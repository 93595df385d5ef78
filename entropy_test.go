/*
 * entropy_test.go, part of gogist.
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
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var identity = [4]float64{1, 0, 0, 0}

//zRot is the unit quaternion for a rotation of angle a around z.
func zRot(a float64) [4]float64 {
	return [4]float64{math.Cos(a / 2), 0, 0, math.Sin(a / 2)}
}

func testParams() *Params {
	p := DefaultParams()
	p.Frames = 1
	return p
}

func quietOptions() (*Options, *test.Hook) {
	l, hook := test.NewNullLogger()
	o := DefaultOptions()
	o.Log(l)
	return o, hook
}

func TestNearest(Te *testing.T) {
	var n nearest
	_, ok := n.value()
	assert.False(Te, ok)
	n.offer(0)
	n.offer(-1)
	n.offer(nnSentinel)
	n.offer(math.NaN())
	_, ok = n.value()
	assert.False(Te, ok)
	n.offer(3)
	n.offer(5)
	n.offer(2)
	v, ok := n.value()
	assert.True(Te, ok)
	assert.Equal(Te, 2.0, v)
}

func TestOrientationalEntropy(Te *testing.T) {
	s, err := OrientationalEntropy(mat.NewDense(1, 3, []float64{0.3, 1, 2}))
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, s)

	s, err = OrientationalEntropy(mat.NewDense(2, 3, []float64{0, 0, 0, 0, 1, 0}))
	require.NoError(Te, err)
	assert.InDelta(Te, 2*math.Log(2/(6*math.Pi)), s, 1e-12)

	//azimuthal differences are wrapped.
	s, err = OrientationalEntropy(mat.NewDense(2, 3, []float64{0, 3, 0, 0, -3, 0}))
	require.NoError(Te, err)
	d := 2*math.Pi - 6
	assert.InDelta(Te, 2*math.Log(2*d*d*d/(6*math.Pi)), s, 1e-12)

	//identical molecules are not neighbors of each other.
	s, err = OrientationalEntropy(mat.NewDense(3, 3, []float64{0, 0, 0, 0, 0, 0, 0, 0, 1}))
	require.NoError(Te, err)
	assert.InDelta(Te, 3*math.Log(3/(6*math.Pi)), s, 1e-12)

	_, err = OrientationalEntropy(mat.NewDense(2, 2, nil))
	assert.Error(Te, err)
}

//twoVoxels returns a grid with one molecule in each of the voxels (1,1,a) and (1,1,a+1),
//at their centers, 0.5 A apart.
func twoVoxels(Te *testing.T, nz, a int) (*Grid, int, int) {
	g, err := NewGrid([3]float64{}, [3]int{3, 3, nz})
	require.NoError(Te, err)
	v1, v2 := g.Index(1, 1, a), g.Index(1, 1, a+1)
	require.NoError(Te, g.AddSample(v1, g.Center(v1), identity))
	require.NoError(Te, g.AddSample(v2, g.Center(v2), identity))
	return g, v1, v2
}

func TestTransEntropyInterior(Te *testing.T) {
	g, v1, v2 := twoVoxels(Te, 4, 1)
	require.False(Te, g.Boundary(v1))
	require.False(Te, g.Boundary(v2))
	p := testParams()
	o, hook := quietOptions()
	sum, err := TransOrientEntropy(g, p, o)
	require.NoError(Te, err)
	kT := GasKcal * p.Temperature
	FV := float64(p.Frames) * p.VoxelVolume
	trans := kT * (math.Log(0.125*4*math.Pi*p.RefDensity/3) + EulerMascheroni)
	six := kT * (math.Log(math.Pow(0.5, 6)*math.Pi*p.RefDensity/48) + EulerMascheroni)
	for _, v := range []int{v1, v2} {
		r := g.Voxels[v]
		assert.InDelta(Te, 1/FV/p.RefDensity, r.GO, 1e-9)
		assert.InDelta(Te, trans, r.TSTransNorm, 1e-12)
		assert.InDelta(Te, trans/FV, r.TSTransDens, 1e-12)
		assert.InDelta(Te, six, r.TSSixNorm, 1e-12)
		assert.InDelta(Te, six/FV, r.TSSixDens, 1e-12)
		//a single molecule has no orientational neighbor in its voxel.
		assert.Equal(Te, 0.0, r.TSOrientNorm)
		assert.Equal(Te, 0.0, r.TSOrientDens)
	}
	assert.InDelta(Te, 2*trans, sum.Trans, 1e-12)
	assert.Equal(Te, 0.0, sum.Orient)
	assert.Equal(Te, 2, sum.Molecules)
	assert.Equal(Te, 2, sum.TransMolecules)
	assert.InDelta(Te, trans, sum.TransOneVoxel, 1e-12)
	assert.InDelta(Te, six, sum.SixOneVoxel, 1e-12)
	assert.InDelta(Te, kT*EulerMascheroni, sum.OrientOneVoxel, 1e-12)
	assert.InDelta(Te, 2/FV/p.RefDensity/36, sum.MeanGO, 1e-9)
	tr, or, sx := g.Totals()
	assert.InDelta(Te, sum.Trans, tr, 1e-12)
	assert.Equal(Te, 0.0, or)
	assert.InDelta(Te, 2*six, sx, 1e-12)

	require.NotNil(Te, hook.LastEntry())
	assert.Equal(Te, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(Te, 2, hook.LastEntry().Data["molecules"])
}

func TestTransEntropyBoundary(Te *testing.T) {
	g, v1, v2 := twoVoxels(Te, 2, 0)
	require.True(Te, g.Boundary(v1))
	require.True(Te, g.Boundary(v2))
	o, _ := quietOptions()
	sum, err := TransOrientEntropy(g, testParams(), o)
	require.NoError(Te, err)
	for _, v := range []int{v1, v2} {
		assert.Equal(Te, 0.0, g.Voxels[v].TSTransNorm)
		assert.Equal(Te, 0.0, g.Voxels[v].TSTransDens)
		assert.Equal(Te, 0.0, g.Voxels[v].TSSixNorm)
		assert.True(Te, g.Voxels[v].GO > 0)
	}
	assert.Equal(Te, 0.0, sum.Trans)
	assert.Equal(Te, 0, sum.TransMolecules)
	assert.Equal(Te, 0.0, sum.TransOneVoxel)
}

func TestTransEntropyCutoff(Te *testing.T) {
	g, v1, _ := twoVoxels(Te, 4, 1)
	o, _ := quietOptions()
	o.Cutoff(0.4)
	_, err := TransOrientEntropy(g, testParams(), o)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, g.Voxels[v1].TSTransNorm)
}

func TestOrientEntropySameVoxel(Te *testing.T) {
	g, err := NewGrid([3]float64{}, [3]int{1, 1, 1})
	require.NoError(Te, err)
	require.NoError(Te, g.AddSample(0, [3]float64{0.1, 0.1, 0.1}, identity))
	require.NoError(Te, g.AddSample(0, [3]float64{0.3, 0.1, 0.1}, zRot(0.5)))
	p := testParams()
	o, _ := quietOptions()
	sum, err := TransOrientEntropy(g, p, o)
	require.NoError(Te, err)
	kT := GasKcal * p.Temperature
	l := math.Log(0.5 * 0.5 * 0.5 * 2 / (6 * math.Pi))
	norm := kT * (l + EulerMascheroni)
	r := g.Voxels[0]
	assert.InDelta(Te, norm, r.TSOrientNorm, 1e-9)
	assert.InDelta(Te, norm*2/p.VoxelVolume, r.TSOrientDens, 1e-9)
	assert.InDelta(Te, norm*2, sum.Orient, 1e-9)
	assert.InDelta(Te, norm, sum.OrientOneVoxel, 1e-9)
	//the only voxel is on the boundary.
	assert.Equal(Te, 0.0, r.TSTransNorm)
}

//Only the full neighbor set includes the corner voxels.
func TestFullNeighbors(Te *testing.T) {
	run := func(full bool) *Grid {
		g, err := NewGrid([3]float64{}, [3]int{3, 3, 3})
		require.NoError(Te, err)
		c, corner := g.Index(1, 1, 1), g.Index(2, 2, 2)
		require.NoError(Te, g.AddSample(c, g.Center(c), identity))
		require.NoError(Te, g.AddSample(corner, g.Center(corner), identity))
		o, _ := quietOptions()
		o.FullNeighbors(full)
		_, err = TransOrientEntropy(g, testParams(), o)
		require.NoError(Te, err)
		return g
	}
	center := 13
	assert.Equal(Te, 0.0, run(false).Voxels[center].TSTransNorm)
	assert.NotEqual(Te, 0.0, run(true).Voxels[center].TSTransNorm)
}

func TestTransOrientEntropyErrors(Te *testing.T) {
	g, v1, _ := twoVoxels(Te, 4, 1)
	g.Voxels[v1].Count = 3
	o, _ := quietOptions()
	_, err := TransOrientEntropy(g, testParams(), o)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), ErrCount)
	for _, v := range g.Voxels {
		assert.Equal(Te, 0.0, v.GO)
	}
	g.Voxels[v1].Count = 1
	_, err = TransOrientEntropy(g, DefaultParams(), o) //no frames
	assert.Error(Te, err)
}

//Two molecules in (1,1,1) and one in (1,1,2). The second molecule of (1,1,1) is closer to
//the one in (1,1,2) than to its voxel mate, so its nearest neighbor comes from the next voxel.
func TestNeighborVoxelPartner(Te *testing.T) {
	g, err := NewGrid([3]float64{}, [3]int{3, 3, 4})
	require.NoError(Te, err)
	a := [3]float64{0.75, 0.75, 0.55}
	b := [3]float64{0.75, 0.75, 0.95}
	c := [3]float64{0.75, 0.75, 1.05}
	v1, v2 := g.Index(1, 1, 1), g.Index(1, 1, 2)
	for _, pos := range [][3]float64{a, b, c} {
		idx, ok := g.Voxel(pos)
		require.True(Te, ok)
		require.NoError(Te, g.AddSample(idx, pos, identity))
	}
	require.Equal(Te, 2, g.Voxels[v1].Count)
	require.Equal(Te, 1, g.Voxels[v2].Count)
	p := testParams()
	o, _ := quietOptions()
	sum, err := TransOrientEntropy(g, p, o)
	require.NoError(Te, err)

	kT := GasKcal * p.Temperature
	F := float64(p.Frames)
	FV := F * p.VoxelVolume
	rho := p.RefDensity
	tr := func(d float64) float64 { return math.Log(d * d * d * F * 4 * math.Pi * rho / 3) }
	sx := func(d float64) float64 { return math.Log(math.Pow(d, 6) * F * math.Pi * rho / 48) }
	dAB := math.Sqrt(sqDist(a, b))
	dBC := math.Sqrt(sqDist(b, c))
	require.True(Te, dBC < dAB)

	trans1 := kT*((tr(dAB)+tr(dBC))/2) + kT*EulerMascheroni
	six1 := kT*((sx(dAB)+sx(dBC))/2) + kT*EulerMascheroni
	r1 := g.Voxels[v1]
	assert.InDelta(Te, trans1, r1.TSTransNorm, 1e-12)
	assert.InDelta(Te, six1, r1.TSSixNorm, 1e-12)
	assert.InDelta(Te, trans1*2/FV, r1.TSTransDens, 1e-10)
	assert.InDelta(Te, six1*2/FV, r1.TSSixDens, 1e-10)
	trans2 := kT * (tr(dBC) + EulerMascheroni)
	six2 := kT * (sx(dBC) + EulerMascheroni)
	r2 := g.Voxels[v2]
	assert.InDelta(Te, trans2, r2.TSTransNorm, 1e-12)
	assert.InDelta(Te, six2, r2.TSSixNorm, 1e-12)
	//identical orientations are never orientational neighbors.
	assert.Equal(Te, 0.0, r1.TSOrientNorm)

	assert.Equal(Te, 3, sum.Molecules)
	assert.Equal(Te, 3, sum.TransMolecules)
	assert.InDelta(Te, (trans1*2+trans2)/FV*p.VoxelVolume, sum.Trans, 1e-10)
	assert.InDelta(Te, kT*((sx(dAB)+2*sx(dBC))/3+EulerMascheroni), sum.SixOneVoxel, 1e-12)
	assert.InDelta(Te, kT*((tr(dAB)+2*tr(dBC))/3+EulerMascheroni), sum.TransOneVoxel, 1e-12)

	//a second pass adds to the values already in the voxels.
	gO := r1.GO
	assert.InDelta(Te, 2/FV/rho, gO, 1e-9)
	_, err = TransOrientEntropy(g, p, o)
	require.NoError(Te, err)
	r1 = g.Voxels[v1]
	assert.InDelta(Te, 2*gO, r1.GO, 1e-9)
	again := kT*((trans1+tr(dAB)+tr(dBC))/2) + kT*EulerMascheroni
	assert.InDelta(Te, again, r1.TSTransNorm, 1e-12)
	assert.InDelta(Te, again*2/FV, r1.TSTransDens, 1e-10)
}

//Values loaded from a table are accumulated into, too.
func TestEntropyOnLoadedTable(Te *testing.T) {
	g, v1, _ := twoVoxels(Te, 4, 1)
	t := g.Table()
	t.Set(v1, FieldGO, 1.5)
	t.Set(v1, FieldTSTransNorm, -0.25)
	require.NoError(Te, g.LoadTable(t))
	p := testParams()
	o, _ := quietOptions()
	_, err := TransOrientEntropy(g, p, o)
	require.NoError(Te, err)
	kT := GasKcal * p.Temperature
	FV := float64(p.Frames) * p.VoxelVolume
	l := math.Log(0.125 * 4 * math.Pi * p.RefDensity / 3)
	assert.InDelta(Te, 1.5+1/FV/p.RefDensity, g.Voxels[v1].GO, 1e-9)
	assert.InDelta(Te, kT*(-0.25+l+EulerMascheroni), g.Voxels[v1].TSTransNorm, 1e-12)
}

func TestEntropyGridChecks(Te *testing.T) {
	o, _ := quietOptions()
	_, err := TransOrientEntropy(nil, testParams(), o)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), ErrShape)

	g, _, _ := twoVoxels(Te, 4, 1)
	p := testParams()
	p.VoxelVolume = 1
	_, err = TransOrientEntropy(g, p, o)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), ErrParams)
	for _, v := range g.Voxels {
		assert.Equal(Te, 0.0, v.GO)
	}
}
