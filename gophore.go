/*
 * gophore.go, part of gophore.
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

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

//Origin identifies the simulation frame that contributed one counted
//feature occurrence: the trajectory it belongs to plus the frame index
//within that trajectory.
type Origin struct {
	Trajectory string
	Frame      int
}

func (O Origin) String() string {
	return fmt.Sprintf("%s:%d", O.Trajectory, O.Frame)
}

//FeaturePoint is one feature-tagged coordinate taken from an accepted
//simulation frame. It is the unit the grid engine consumes: where the
//point is, which feature it carries, and where it came from.
type FeaturePoint struct {
	Coord   r3.Vec
	Feature string
	Origin  Origin
}

//FrameSource is a lazy sequence of per-frame FeaturePoint batches, one
//batch per accepted frame. Implementations return a LastFrameError from
//Next when the trajectory is exhausted; any other error aborts the
//aggregation of the trajectory being read.
type FrameSource interface {
	//Next returns the points of the next accepted frame. A frame with
	//no points is a valid, empty batch, not an error.
	Next() ([]FeaturePoint, error)
}

//TrajectorySource is one trajectory's worth of work: an identifier for
//logging and provenance, and a way to open its accepted frames. Frames
//may fail (missing file, corrupt output); such failures are confined to
//the trajectory that produced them.
type TrajectorySource interface {
	ID() string
	Frames() (FrameSource, error)
}
