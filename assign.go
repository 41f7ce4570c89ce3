/*
 * assign.go, part of gophore.
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
	"gonum.org/v1/gonum/spatial/r3"
)

//AssignVoxels maps each point to the index of its nearest voxel center,
//by argmin over squared distances. Squared distance preserves the
//minimizer and saves a square root per comparison. Exact ties go to the
//lowest voxel index, so assignments are reproducible regardless of how
//the lattice was traversed. The returned slice is parallel to points.
func AssignVoxels(points []FeaturePoint, grid *Grid) ([]int, error) {
	if grid.Len() == 0 {
		return nil, newEmptyGrid("gophore.AssignVoxels: grid has no voxels")
	}
	ret := make([]int, len(points))
	for i, p := range points {
		best := 0
		bestd := r3.Norm2(r3.Sub(p.Coord, grid.voxels[0].center))
		for j := 1; j < len(grid.voxels); j++ {
			d := r3.Norm2(r3.Sub(p.Coord, grid.voxels[j].center))
			if d < bestd { //strict, so the lowest index wins ties
				best = j
				bestd = d
			}
		}
		ret[i] = best
	}
	return ret, nil
}
