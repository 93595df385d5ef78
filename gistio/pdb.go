/*
 * gistio/pdb.go, part of gogist.
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

package gistio

import (
	"bufio"
	"fmt"
	"io"

	gist "github.com/rmera/gogist"
	v3 "github.com/rmera/gogist/v3"
)

const (
	pdbAtom = "%-6s%5d  %-3s%-1s%3s %-1s%4d%-1s   %8.3f%8.3f%8.3f%6.2f%6.2f%12s\n"
	pdbTer  = "%-3s   %5d      %3s %-1s%4d\n"
	maxRes  = 9999
)

//WritePDBTo writes the coordinates in coords to w as water molecules in PDB format. If fullRes
//is true, each 3 consecutive coordinates are taken as the O, H1 and H2 atoms of one
//water molecule. Otherwise each coordinate is the oxygen of a different molecule.
//Residue numbers start again from 0 after 9999, and a TER record is written each time.
//A nil coords gives a file with no atoms.
func WritePDBTo(w io.Writer, coords *v3.Matrix, fullRes bool) error {
	n := 0
	if coords != nil {
		n = coords.NVecs()
	}
	per := 1
	names := []string{"O"}
	symbols := []string{"O"}
	if fullRes {
		if n%3 != 0 {
			return newErr(fmt.Sprintf("%d coordinates can't be full water molecules", n), "", "WritePDBTo")
		}
		per = 3
		names = []string{"O", "H1", "H2"}
		symbols = []string{"O", "H", "H"}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "REMARK Water molecules: %d\n", n/per)
	at := 0
	for mol := 0; mol < n/per; mol++ {
		res := mol % (maxRes + 1)
		for k := 0; k < per; k++ {
			c := coords.Vec(mol*per + k)
			fmt.Fprintf(bw, pdbAtom, "ATOM", at+k, names[k], " ", "WAT", "A", res, " ", c[0], c[1], c[2], 0.0, 0.0, symbols[k])
		}
		at += per
		if res == maxRes {
			fmt.Fprintf(bw, pdbTer, "TER", at, "WAT", "A", res)
			at = 1
		}
	}
	if _, err := bw.WriteString("END\n"); err != nil {
		return newErr(err.Error(), "", "WritePDBTo")
	}
	if err := bw.Flush(); err != nil {
		return newErr(err.Error(), "", "WritePDBTo")
	}
	return nil
}

//WriteGridPDB writes the positions of all the molecules sampled in the given voxels of g to the
//file name, in PDB format. If no voxels are given, the molecules in all voxels are written.
//The file is compressed if its name ends in .gz or .zst.
func WriteGridPDB(name string, g *gist.Grid, voxels ...int) error {
	if len(voxels) == 0 {
		voxels = make([]int, len(g.Voxels))
		for i := range voxels {
			voxels[i] = i
		}
	}
	var pos []float64
	for _, v := range voxels {
		if v < 0 || v >= len(g.Voxels) {
			return newErr(fmt.Sprintf("voxel %d not in grid", v), name, "WriteGridPDB")
		}
		for _, s := range g.Voxels[v].Samples {
			pos = append(pos, s.Pos[:]...)
		}
	}
	var coords *v3.Matrix
	if len(pos) > 0 {
		var err error
		coords, err = v3.NewMatrix(pos)
		if err != nil {
			return errDecorate(err, "WriteGridPDB")
		}
	}
	w, err := create(name)
	if err != nil {
		return errDecorate(err, "WriteGridPDB")
	}
	if err := WritePDBTo(w, coords, false); err != nil {
		w.Close()
		return errDecorate(err, "WriteGridPDB")
	}
	if err := w.Close(); err != nil {
		return newErr(err.Error(), name, "WriteGridPDB")
	}
	return nil
}
