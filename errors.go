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

package gophore

import "fmt"

//Error is the interface all errors produced by this library implement.
//The Decorate method allows adding information to an error as it is
//passed up the call stack, without changing its type. Each call returns
//the resulting decoration slice; passing the empty string just returns
//the current value.
type Error interface {
	error
	Decorate(string) []string
}

//LastFrameError is the harmless error a FrameSource returns when it
//runs out of frames, so it can be filtered in a type switch.
type LastFrameError interface {
	Error
	NormalLastFrameTermination() //does nothing, only separates this interface from other Errors
}

//deco carries the message and decoration trace shared by all the
//concrete error types below.
type deco struct {
	message string
	trace   []string
}

func (err *deco) Error() string {
	return err.message
}

func (err *deco) Decorate(dec string) []string {
	if dec != "" {
		err.trace = append(err.trace, dec)
	}
	return err.trace
}

//InvalidGridError signals grid construction with a non-positive radius
//or a resolution below 1. It is fatal: no work starts on such a grid.
type InvalidGridError struct {
	deco
}

func newInvalidGrid(format string, a ...interface{}) *InvalidGridError {
	return &InvalidGridError{deco{message: fmt.Sprintf(format, a...)}}
}

//IncompatibleGridError signals an attempt to merge grids built from
//different (center, radius, resolution) parameters. It indicates a
//programming or configuration error upstream.
type IncompatibleGridError struct {
	deco
}

func newIncompatibleGrid(format string, a ...interface{}) *IncompatibleGridError {
	return &IncompatibleGridError{deco{message: fmt.Sprintf(format, a...)}}
}

//EmptyGridError signals voxel assignment against a grid with no voxels.
type EmptyGridError struct {
	deco
}

func newEmptyGrid(format string, a ...interface{}) *EmptyGridError {
	return &EmptyGridError{deco{message: fmt.Sprintf(format, a...)}}
}

//InvalidThresholdError signals a histogram bin index outside [0,9]. It
//is surfaced before any output file is written.
type InvalidThresholdError struct {
	deco
}

func newInvalidThreshold(format string, a ...interface{}) *InvalidThresholdError {
	return &InvalidThresholdError{deco{message: fmt.Sprintf(format, a...)}}
}

//NoDataError signals that every trajectory of a run failed to load, so
//there is nothing to merge. It keeps an all-failed run from silently
//producing an empty pharmacophore.
type NoDataError struct {
	deco
}

func newNoData(format string, a ...interface{}) *NoDataError {
	return &NoDataError{deco{message: fmt.Sprintf(format, a...)}}
}

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. Errors from outside the library
//are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
