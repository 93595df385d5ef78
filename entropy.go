/*
 * entropy.go, part of gogist.
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

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//nearest tracks the result of a nearest-neighbor search. A candidate is accepted only
//if it is strictly positive and strictly smaller than the current best, which starts
//at nnSentinel.
type nearest struct {
	v     float64
	found bool
}

func (n *nearest) offer(c float64) {
	if c > 0 && c < n.best() {
		n.v = c
		n.found = true
	}
}

func (n *nearest) best() float64 {
	if !n.found {
		return nnSentinel
	}
	return n.v
}

//value returns the best candidate and true, or 0 and false if none was accepted.
func (n *nearest) value() (float64, bool) {
	return n.v, n.found
}

//wrapAngle maps an angle difference with magnitude above Pi back by a full turn.
func wrapAngle(a float64) float64 {
	if a > math.Pi {
		return 2*math.Pi - a
	} else if a < -math.Pi {
		return 2*math.Pi + a
	}
	return a
}

//OrientationalEntropy returns the sum, over the N molecules in a voxel, of ln(N*NN^3/(6Pi)),
//where NN is the orientational distance to the closest other molecule in the voxel.
//eulers is an Nx3 matrix with the Euler angles (theta, phi, psi) of each molecule.
//Molecules without a partner at a non-zero distance don't contribute. The sum is
//not normalized.
func OrientationalEntropy(eulers *mat.Dense) (float64, error) {
	if eulers == nil {
		return 0, nil
	}
	n, c := eulers.Dims()
	if c != 3 {
		return 0, newErr(fmt.Sprintf("%s: Euler angles must be a Nx3 matrix, got %dx%d", ErrShape, n, c), "OrientationalEntropy")
	}
	N := float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		var nn nearest
		for l := 0; l < n; l++ {
			if l == i {
				continue
			}
			rx := math.Cos(eulers.At(l, 0)) - math.Cos(eulers.At(i, 0))
			ry := wrapAngle(eulers.At(l, 1) - eulers.At(i, 1))
			rz := wrapAngle(eulers.At(l, 2) - eulers.At(i, 2))
			nn.offer(math.Sqrt(rx*rx + ry*ry + rz*rz))
		}
		if d, ok := nn.value(); ok {
			sum += math.Log(N * d * d * d / (3 * 2 * math.Pi))
		}
	}
	return sum, nil
}

//quatAngle returns the rotation angle between two unit quaternions, 2*acos(q1.q2).
//It is NaN if rounding puts the dot product out of [-1,1], and NaN is never accepted
//by a nearest-neighbor search.
func quatAngle(q1, q2 [4]float64) float64 {
	return 2 * math.Acos(q1[0]*q2[0]+q1[1]*q2[1]+q1[2]*q2[2]+q1[3]*q2[3])
}

func sqDist(a, b [3]float64) float64 {
	x, y, z := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return x*x + y*y + z*z
}

//Summary holds the grid-wide results of TransOrientEntropy, in kcal/mol.
type Summary struct {
	//Trans and Orient are the sums over the grid of the translational and orientational
	//entropy densities, multiplied by the voxel volume.
	Trans  float64
	Orient float64
	//The entropies the molecules would have if they all were in one voxel.
	SixOneVoxel    float64
	TransOneVoxel  float64
	OrientOneVoxel float64
	//Molecules is the number of molecules in the grid. TransMolecules is the number
	//of molecules in voxels with a translational contribution.
	Molecules      int
	TransMolecules int
	//MeanGO is the average occupancy relative to the bulk, over all voxels.
	MeanGO float64
}

//TransOrientEntropy runs the nearest-neighbor estimator for the translational, orientational
//and six-dimensional entropies over the whole grid, using the samples and counts stored in
//each voxel. The occupancy and entropy fields of every voxel are modified: the raw sums are
//added to the values already present, and then normalized.
//Neighbor voxels are searched only for voxels not on the grid boundary, and only for the
//translational and six-dimensional nearest neighbors. The orientational nearest neighbor
//is searched among the molecules of the same voxel.
//The voxel volume in p must be that of the voxels of g. The grid totals are logged and returned.
func TransOrientEntropy(g *Grid, p *Params, options ...*Options) (*Summary, error) {
	o := getOptions(options)
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "TransOrientEntropy")
	}
	if g == nil {
		return nil, newErr(ErrShape+": nil grid", "TransOrientEntropy")
	}
	if v := g.VoxelVolume(); math.Abs(p.VoxelVolume-v) > 1e-9*v {
		return nil, newErr(fmt.Sprintf("%s: voxel volume %g, but the grid voxels have %g", ErrParams, p.VoxelVolume, v), "TransOrientEntropy")
	}
	if len(g.Voxels) != g.Len() {
		return nil, newErr(fmt.Sprintf("%s: grid has %d voxel records for %d voxels", ErrShape, len(g.Voxels), g.Len()), "TransOrientEntropy")
	}
	for i := range g.Voxels {
		if v := &g.Voxels[i]; v.Count != len(v.Samples) {
			return nil, newErr(fmt.Sprintf("%s: voxel %d, count %d, %d samples", ErrCount, i, v.Count, len(v.Samples)), "TransOrientEntropy")
		}
	}
	F := float64(p.Frames)
	V := p.VoxelVolume
	rho := p.RefDensity
	kT := p.kT()
	cutoff := o.Cutoff()
	offsets := g.NeighborOffsets(o.FullNeighbors())
	var dTSt, dTSs, dTSo float64
	sum := new(Summary)
	for vi := range g.Voxels {
		vox := &g.Voxels[vi]
		N := float64(vox.Count)
		sum.Molecules += vox.Count
		vox.GO += N / (F * V) / rho
		boundary := g.Boundary(vi)
		for n0, s0 := range vox.Samples {
			var nnd, nns, nnr nearest
			for n1, s1 := range vox.Samples {
				if n1 == n0 {
					continue
				}
				dd := sqDist(s0.Pos, s1.Pos)
				nnd.offer(dd)
				rR := quatAngle(s0.Quat, s1.Quat)
				nns.offer(rR*rR + dd)
				nnr.offer(rR)
			}
			if r, ok := nnr.value(); ok && vox.Count > 1 {
				l := math.Log(r * r * r * N / (3 * 2 * math.Pi))
				vox.TSOrientNorm += l
				dTSo += l
			}
			if boundary {
				continue
			}
			for _, off := range offsets {
				for _, s1 := range g.Voxels[vi+off].Samples {
					dd := sqDist(s0.Pos, s1.Pos)
					nnd.offer(dd)
					rR := quatAngle(s0.Quat, s1.Quat)
					nns.offer(rR*rR + dd)
				}
			}
			d, dok := nnd.value()
			s, sok := nns.value()
			if !dok || !sok {
				continue
			}
			d = math.Sqrt(d)
			s = math.Sqrt(s)
			if d >= cutoff {
				continue
			}
			l := math.Log(d * d * d * F * 4 * math.Pi * rho / 3)
			vox.TSTransNorm += l
			dTSt += l
			l = math.Log(math.Pow(s, 6) * F * math.Pi * rho / 48)
			vox.TSSixNorm += l
			dTSs += l
		}
		if vox.TSOrientNorm != 0 && vox.Count > 0 {
			vox.TSOrientNorm = kT * (vox.TSOrientNorm/N + EulerMascheroni)
			vox.TSOrientDens = vox.TSOrientNorm * N / (F * V)
		}
		sum.Orient += vox.TSOrientDens
		if vox.TSTransNorm != 0 && vox.Count > 0 {
			sum.TransMolecules += vox.Count
			vox.TSTransNorm = kT * (vox.TSTransNorm/N + EulerMascheroni)
			vox.TSSixNorm = kT * (vox.TSSixNorm/N + EulerMascheroni)
		}
		vox.TSTransDens = vox.TSTransNorm * N / (F * V)
		vox.TSSixDens = vox.TSSixNorm * N / (F * V)
		sum.Trans += vox.TSTransDens
	}
	sum.Trans *= V
	sum.Orient *= V
	if sum.TransMolecules > 0 {
		nt := float64(sum.TransMolecules)
		sum.SixOneVoxel = kT * (dTSs/nt + EulerMascheroni)
		sum.TransOneVoxel = kT * (dTSt/nt + EulerMascheroni)
	}
	if sum.Molecules > 0 {
		sum.OrientOneVoxel = kT * (dTSo/float64(sum.Molecules) + EulerMascheroni)
	}
	gO := make([]float64, len(g.Voxels))
	for i := range g.Voxels {
		gO[i] = g.Voxels[i].GO
	}
	if len(gO) > 0 {
		sum.MeanGO = stat.Mean(gO, nil)
	}
	o.Log().WithFields(logrus.Fields{
		"frames":         p.Frames,
		"dTStrans":       sum.Trans,
		"dTSorient":      sum.Orient,
		"six_one_vox":    sum.SixOneVoxel,
		"trans_one_vox":  sum.TransOneVoxel,
		"orient_one_vox": sum.OrientOneVoxel,
		"molecules":      sum.Molecules,
	}).Info("Total referenced entropies of the grid (kcal/mol)")
	return sum, nil
}
