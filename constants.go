/*
 * constants.go, part of gogist.
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

const (
	//VoxelEdge is the default edge length of the (cubic) voxels, in A.
	VoxelEdge = 0.5
	//VoxelTolerance is how far (A) below the grid origin a molecule can be before it
	//is considered outside of the region. Such molecules are not assigned to any voxel.
	VoxelTolerance = -1.5
	//OrthoTolerance is the largest absolute off-diagonal element of an orthorhombic cell.
	OrthoTolerance = 1e-6
	//GasKcal is the gas constant in kcal/(mol K).
	GasKcal = 0.0019872041
	//EulerMascheroni corrects the bias of the nearest-neighbor entropy estimator.
	EulerMascheroni = 0.5772156649
	//TransCutoff is the default largest nearest-neighbor distance (A) accepted for
	//the translational and six-dimensional entropies.
	TransCutoff = 3.0
	//CoulombKcal converts e^2/A to kcal/mol.
	CoulombKcal = 332.0637
)

//nnSentinel is the starting value of every nearest-neighbor search. Candidates
//at or above it are never accepted.
const nnSentinel = 10000.0
