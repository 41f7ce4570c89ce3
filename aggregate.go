/*
 * aggregate.go, part of gophore.
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

//Aggregate folds every accepted frame from src into a fresh snapshot of
//template. The template itself is never touched, so the same template
//can seed any number of concurrent aggregations. Frames whose points
//all fall outside the grid contribute nothing. The populated snapshot
//is returned when src signals its last frame.
func Aggregate(src FrameSource, template *Grid) (*Grid, error) {
	snap := template.EmptyCopy()
	for {
		batch, err := src.Next()
		if err != nil {
			if _, last := err.(LastFrameError); last {
				break
			}
			return nil, errDecorate(err, "Aggregate")
		}
		inside := FilterPoints(batch, snap)
		if len(inside) == 0 {
			continue
		}
		inds, err := AssignVoxels(inside, snap)
		if err != nil {
			return nil, errDecorate(err, "Aggregate")
		}
		for k, p := range inside {
			snap.voxels[inds[k]].Count(p.Feature, p.Origin)
		}
	}
	return snap, nil
}
