/*
 * doc.go, part of gogist.
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

/*
Package gist implements the numerical core of Grid Inhomogeneous Solvation Theory (GIST)
analyses: the assignment of solvent molecules to the voxels of a regular grid, minimum-image
distances for orthorhombic and triclinic unit cells, pairwise non-bonded energies and, most
importantly, the nearest-neighbor estimators of the translational, orientational and
six-dimensional solvation entropy of each voxel.

The package does not read trajectories. It works on coordinates already extracted to
v3.Matrix frames, and on a Grid that owns one VoxelRecord per voxel. A typical use is:

	g, err := gist.NewGrid(origin, dims)
	for each frame {
		assignments, err := gist.AssignVoxels(frames, g, oxygens)
		for each assignment, g.AddSample(voxel, position, quaternion)
	}
	summary, err := gist.TransOrientEntropy(g, params)

after which the records in g (or g.Table()) hold the entropy densities. Units follow
the usual MD conventions: Angstrom, kcal/mol and Kelvin.

Errors returned by this package implement the Error interface, so the caller can
decorate them with its own name before passing them up.
*/
package gist
