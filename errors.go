/*
 * errors.go, part of AutodockScript.
 *
 * Copyright 2026 The AutodockScript developers
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

package dock

import "fmt"

// Messages for the Error type. Tested code should compare against these
// rather than against formatted strings.
const (
	ErrEmptyInput      = "No usable coordinates in input"
	ErrResidueNotFound = "Requested residue name not present in structure"
	ErrNoAtomRecords   = "No ATOM/HETATM records found"
	ErrMissingColumn   = "Requested column not present in file"
	ErrCantOpen        = "Can't open input file"
)

// DecoratedError is the interface for errors in this library. The Decorate
// method adds information (normally, the name of a function in the calling
// stack) to the error without changing its type or wrapping it.
type DecoratedError interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the general error structure for the dock package.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.filename, err.message)
}

// Decorate adds new information to the error. If given an empty string it
// just returns the current decoration.
func (err Error) Decorate(deco string) []string {
	//The receiver is not a pointer, but err.deco is a slice, so the
	//append is still visible through the copy.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Message returns the undecorated message, so callers can distinguish, say,
// an empty input from a missing residue without parsing the error text.
func (err Error) Message() string { return err.message }

// FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err implements DecoratedError and adds the
// caller's name to it before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(DecoratedError)
	err2.Decorate(caller)
	return err2
}
