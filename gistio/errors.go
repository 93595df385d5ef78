/*
 * gistio/errors.go, part of gogist.
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
	"fmt"
	"strings"
)

//Error is the error type returned by this package. It implements the gist.Error interface.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	msg := err.message
	if err.filename != "" {
		msg = fmt.Sprintf("file %s: %s", err.filename, err.message)
	}
	if len(err.deco) > 0 {
		msg += " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return msg
}

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated.
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func newErr(msg, filename, caller string) *Error {
	return &Error{message: msg, filename: filename, deco: []string{caller}, critical: true}
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
