/*
 * errors.go, part of gophore.
 *
 * Copyright 2026 The gophore authors
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

package pele

//Error is the error type of this package. Besides the usual message and
//decoration trace it records which file the trouble came from.
type Error struct {
	message  string
	fileName string
	trace    []string
}

func newError(message, fileName string) *Error {
	return &Error{message: "gophore/traj/pele." + message, fileName: fileName}
}

func (err *Error) Error() string {
	return err.message
}

func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.trace = append(err.trace, dec)
	}
	return err.trace
}

//FileName returns the trajectory or report file the error refers to.
func (err *Error) FileName() string {
	return err.fileName
}

//lastFrameError signals normal trajectory exhaustion.
type lastFrameError struct {
	err Error
}

func newLastFrame(fileName string) *lastFrameError {
	return &lastFrameError{Error{message: "gophore/traj/pele: last frame read", fileName: fileName}}
}

func (err *lastFrameError) Error() string {
	return err.err.Error()
}

func (err *lastFrameError) Decorate(dec string) []string {
	return err.err.Decorate(dec)
}

//FileName returns the trajectory or report file the error refers to.
func (err *lastFrameError) FileName() string {
	return err.err.FileName()
}

func (err *lastFrameError) NormalLastFrameTermination() {}
