/*
 * grid.go, part of gophore.
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
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

//Voxel is one cubic cell of the grid lattice. Its center is fixed at
//construction; the frequency and origin maps accumulate, per feature
//name, how many times that feature was seen in the cell and which
//frames the occurrences came from. len(Origins[f]) always equals
//Frequency[f].
type Voxel struct {
	center    r3.Vec
	Frequency map[string]int
	Origins   map[string][]Origin
}

func newVoxel(center r3.Vec) *Voxel {
	return &Voxel{
		center:    center,
		Frequency: make(map[string]int),
		Origins:   make(map[string][]Origin),
	}
}

//Center returns the fixed center of the voxel.
func (V *Voxel) Center() r3.Vec {
	return V.center
}

//Count registers one occurrence of the named feature, recording where
//it came from.
func (V *Voxel) Count(feature string, origin Origin) {
	V.Frequency[feature]++
	V.Origins[feature] = append(V.Origins[feature], origin)
}

//Empty returns true if no feature has been counted into the voxel.
func (V *Voxel) Empty() bool {
	return len(V.Frequency) == 0
}

//Copy returns a voxel with the same center and deep copies of the
//accumulated counts. The copy shares no mutable state with the original.
func (V *Voxel) Copy() *Voxel {
	n := newVoxel(V.center)
	for f, v := range V.Frequency {
		n.Frequency[f] = v
	}
	for f, origins := range V.Origins {
		o := make([]Origin, len(origins))
		copy(o, origins)
		n.Origins[f] = o
	}
	return n
}

//Grid is an axis-aligned cube of side 2*radius centered on center,
//subdivided into resolution^3 cubic voxels. Voxels are stored in a
//fixed row-major (i,j,k) order over the x, y and z axes, so that two
//grids built from the same parameters enumerate their voxels
//identically; merging relies on that.
type Grid struct {
	center     r3.Vec
	radius     float64
	resolution int
	vmin, vmax r3.Vec
	voxels     []*Voxel
}

//NewGrid builds the empty lattice for the given center, radius (half
//the cube's side) and resolution (voxels per edge). The voxel at
//lattice position (i,j,k) is centered on
//vmin + (i+0.5, j+0.5, k+0.5)*(2*radius/resolution).
func NewGrid(center r3.Vec, radius float64, resolution int) (*Grid, error) {
	if radius <= 0 {
		return nil, newInvalidGrid("gophore.NewGrid: non-positive radius %f", radius)
	}
	if resolution < 1 {
		return nil, newInvalidGrid("gophore.NewGrid: resolution %d below 1", resolution)
	}
	corner := r3.Vec{X: radius, Y: radius, Z: radius}
	g := &Grid{
		center:     center,
		radius:     radius,
		resolution: resolution,
		vmin:       r3.Sub(center, corner),
		vmax:       r3.Add(center, corner),
	}
	side := 2 * radius / float64(resolution)
	n := resolution
	g.voxels = make([]*Voxel, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				c := r3.Add(g.vmin, r3.Vec{
					X: (float64(i) + 0.5) * side,
					Y: (float64(j) + 0.5) * side,
					Z: (float64(k) + 0.5) * side,
				})
				g.voxels = append(g.voxels, newVoxel(c))
			}
		}
	}
	return g, nil
}

//Center returns the geometric center of the grid.
func (G *Grid) Center() r3.Vec { return G.center }

//Radius returns half the side length of the grid cube.
func (G *Grid) Radius() float64 { return G.radius }

//Resolution returns the number of voxels per cube edge.
func (G *Grid) Resolution() int { return G.resolution }

//VMin returns the corner of the cube with the smallest coordinates.
func (G *Grid) VMin() r3.Vec { return G.vmin }

//VMax returns the corner of the cube with the largest coordinates.
func (G *Grid) VMax() r3.Vec { return G.vmax }

//Len returns the number of voxels in the grid.
func (G *Grid) Len() int { return len(G.voxels) }

//Voxel returns the voxel at index i in the fixed enumeration order.
//Panics if i is out of range, as the index must come from AssignVoxels
//or from iteration over Len().
func (G *Grid) Voxel(i int) *Voxel {
	return G.voxels[i]
}

//Empty returns true if no voxel of the grid holds any count.
func (G *Grid) Empty() bool {
	for _, v := range G.voxels {
		if !v.Empty() {
			return false
		}
	}
	return true
}

//Compatible returns whether the two grids were built from the same
//(center, radius, resolution) and can therefore be merged index by
//index.
func (G *Grid) Compatible(other *Grid) bool {
	return G.center == other.center && G.radius == other.radius &&
		G.resolution == other.resolution
}

//Copy returns an independently owned deep copy of the grid, counts
//included.
func (G *Grid) Copy() *Grid {
	n := &Grid{
		center:     G.center,
		radius:     G.radius,
		resolution: G.resolution,
		vmin:       G.vmin,
		vmax:       G.vmax,
		voxels:     make([]*Voxel, len(G.voxels)),
	}
	for i, v := range G.voxels {
		n.voxels[i] = v.Copy()
	}
	return n
}

//EmptyCopy returns a grid over the same lattice with all voxels empty.
//It is the identity element of Merge, and the snapshot each trajectory
//aggregation starts from.
func (G *Grid) EmptyCopy() *Grid {
	n := &Grid{
		center:     G.center,
		radius:     G.radius,
		resolution: G.resolution,
		vmin:       G.vmin,
		vmax:       G.vmax,
		voxels:     make([]*Voxel, len(G.voxels)),
	}
	for i, v := range G.voxels {
		n.voxels[i] = newVoxel(v.center)
	}
	return n
}

//Features returns the sorted names of all features counted anywhere in
//the grid.
func (G *Grid) Features() []string {
	seen := make(map[string]bool)
	for _, v := range G.voxels {
		for f := range v.Frequency {
			seen[f] = true
		}
	}
	ret := make([]string, 0, len(seen))
	for f := range seen {
		ret = append(ret, f)
	}
	sort.Strings(ret)
	return ret
}

//Merge folds the counts of incoming into base, voxel by voxel, and
//returns base. Frequencies add; origin lists concatenate with base's
//entries first, so a reduction that always feeds its accumulator as
//base is bit-reproducible. The operation is commutative and associative
//in the frequencies, which makes the final result independent of worker
//completion order; only the origin ordering depends on the reduction
//shape. Fails if the grids were not built from the same parameters.
func Merge(base, incoming *Grid) (*Grid, error) {
	if !base.Compatible(incoming) {
		return nil, newIncompatibleGrid(
			"gophore.Merge: grids differ in center, radius or resolution: (%v %f %d) vs (%v %f %d)",
			base.center, base.radius, base.resolution,
			incoming.center, incoming.radius, incoming.resolution)
	}
	for i, in := range incoming.voxels {
		if in.Empty() {
			continue
		}
		v := base.voxels[i]
		for f, freq := range in.Frequency {
			v.Frequency[f] += freq
			v.Origins[f] = append(v.Origins[f], in.Origins[f]...)
		}
	}
	return base, nil
}
