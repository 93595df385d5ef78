/*
 * gistio/doc.go, part of gogist.
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
Package gistio reads and writes GIST data: the per-voxel summary table, as
a whitespace-separated text file with a header line, and the positions of
the solvent molecules found in the grid, as PDB files.

Files with names ending in ".gz" are gzip-compressed, and those ending in
".zst" are compressed with z-standard. Other files are plain text.
*/
package gistio
