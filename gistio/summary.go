/*
 * gistio/summary.go, part of gogist.
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
	"strconv"
	"strings"

	gist "github.com/rmera/gogist"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

//WriteSummaryTo writes the table t to w, preceded by a line with the column titles.
//The first column is written as an integer. The other values are written with
//prec decimal places if prec is given, or with as many digits as needed to
//read them back exactly, otherwise.
func WriteSummaryTo(w io.Writer, t mat.Matrix, titles []string, prec ...int) error {
	r, c := t.Dims()
	if len(titles) != c {
		return newErr(fmt.Sprintf("%d titles for %d columns", len(titles), c), "", "WriteSummaryTo")
	}
	format := byte('g')
	p := -1
	if len(prec) > 0 && prec[0] >= 0 {
		format = 'f'
		p = prec[0]
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(titles, " ") + "\n"); err != nil {
		return newErr(err.Error(), "", "WriteSummaryTo")
	}
	line := make([]byte, 0, 32*c)
	for i := 0; i < r; i++ {
		line = line[:0]
		for j := 0; j < c; j++ {
			if j == 0 {
				line = strconv.AppendInt(line, int64(t.At(i, 0)), 10)
				continue
			}
			line = append(line, ' ')
			line = strconv.AppendFloat(line, t.At(i, j), format, p, 64)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return newErr(err.Error(), "", "WriteSummaryTo")
		}
	}
	if err := bw.Flush(); err != nil {
		return newErr(err.Error(), "", "WriteSummaryTo")
	}
	return nil
}

//WriteSummary writes the table t to the file name, compressing it if the name ends in .gz or .zst.
func WriteSummary(name string, t mat.Matrix, titles []string, prec ...int) error {
	w, err := create(name)
	if err != nil {
		return errDecorate(err, "WriteSummary")
	}
	if err := WriteSummaryTo(w, t, titles, prec...); err != nil {
		w.Close()
		return errDecorate(err, "WriteSummary")
	}
	if err := w.Close(); err != nil {
		return newErr(err.Error(), name, "WriteSummary")
	}
	gist.Log.WithFields(logrus.Fields{"file": name, "rows": rowsOf(t)}).Debug("Wrote GIST summary")
	return nil
}

func rowsOf(t mat.Matrix) int {
	r, _ := t.Dims()
	return r
}

//ReadSummaryFrom reads a table written by WriteSummaryTo from r, and returns the
//column titles and the table.
func ReadSummaryFrom(r io.Reader) ([]string, *mat.Dense, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, nil, newErr(err.Error(), "", "ReadSummaryFrom")
		}
		return nil, nil, newErr("empty summary", "", "ReadSummaryFrom")
	}
	titles := strings.Fields(s.Text())
	c := len(titles)
	if c == 0 {
		return nil, nil, newErr("no titles in the first line", "", "ReadSummaryFrom")
	}
	data := make([]float64, 0, 1024*c)
	rows := 0
	for lineno := 2; s.Scan(); lineno++ {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != c {
			return nil, nil, newErr(fmt.Sprintf("line %d has %d fields, %d expected", lineno, len(fields), c), "", "ReadSummaryFrom")
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, newErr(fmt.Sprintf("line %d: %s", lineno, err), "", "ReadSummaryFrom")
			}
			data = append(data, v)
		}
		rows++
	}
	if err := s.Err(); err != nil {
		return nil, nil, newErr(err.Error(), "", "ReadSummaryFrom")
	}
	if rows == 0 {
		return nil, nil, newErr("no data in summary", "", "ReadSummaryFrom")
	}
	return titles, mat.NewDense(rows, c, data), nil
}

//ReadSummary reads a table from the file name, which can be compressed.
func ReadSummary(name string) ([]string, *mat.Dense, error) {
	r, err := open(name)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadSummary")
	}
	defer r.Close()
	titles, t, err := ReadSummaryFrom(r)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.filename = name
		}
		return nil, nil, errDecorate(err, "ReadSummary")
	}
	return titles, t, nil
}

//WriteGrid writes the GIST table of the grid g to the file name.
func WriteGrid(name string, g *gist.Grid, prec ...int) error {
	return errDecorate(WriteSummary(name, g.Table(), gist.Titles[:], prec...), "WriteGrid")
}

//ReadGrid loads the voxel fields of g from the summary in the file name.
//The file needs one row per voxel of g.
func ReadGrid(name string, g *gist.Grid) error {
	_, t, err := ReadSummary(name)
	if err != nil {
		return errDecorate(err, "ReadGrid")
	}
	return errDecorate(g.LoadTable(t), "ReadGrid")
}
