/*
 * errors.go, part of gogist.
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

import "strings"

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of the calling function (plus, optionally, some info in the form "Function: info")
	//to the error, and returns the resulting decoration slice. An empty string only returns the current slice.
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error type of the package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return err.msg + " (" + strings.Join(err.deco, " <- ") + ")"
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error aborts the whole calculation. All the errors
//this package returns are critical, degenerate numerical cases are not errors.
func (err *CError) Critical() bool { return err.critical }

func newErr(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}, critical: true}
}

//errDecorate decorates err with the caller's name if it implements Error, and
//returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

const (
	ErrShape        = "goGIST: Dimension mismatch"
	ErrIndex        = "goGIST: Index out of range"
	ErrSingularCell = "goGIST: Unit cell matrix is singular"
	ErrOrthoInverse = "goGIST: The inverse of an orthorhombic cell is not used"
	ErrZeroDistance = "goGIST: Coincident atoms in energy calculation"
	ErrParams       = "goGIST: Invalid parameters"
	ErrCount        = "goGIST: Voxel molecule count doesn't match its samples"
)
