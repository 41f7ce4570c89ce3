/*
 * filter.go, part of gophore.
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
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

//The broad phase of the filter prunes with the circumscribed sphere of
//the grid cube: nothing farther than sqrt(3)*radius from the center can
//be inside the cube. A kd-tree over the frame's points keeps that prune
//sub-linear for the large frames, at the price of building the tree.
//The exact component-wise box test then removes the sphere-but-not-cube
//leftovers.

//treePoint is a frame point with its index in the input slice, so the
//points surviving the tree search can be mapped back in input order.
type treePoint struct {
	c   r3.Vec
	idx int
}

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(treePoint)
	switch d {
	case 0:
		return p.c.X - q.c.X
	case 1:
		return p.c.Y - q.c.Y
	default:
		return p.c.Z - q.c.Z
	}
}

func (p treePoint) Dims() int { return 3 }

//Distance returns the squared Euclidean distance, as the kdtree package
//expects.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	return r3.Norm2(r3.Sub(p.c, q.c))
}

type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable { return p[i] }

func (p treePoints) Len() int { return len(p) }

func (p treePoints) Pivot(d kdtree.Dim) int {
	return treePlane{treePoints: p, Dim: d}.Pivot()
}

func (p treePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

//treePlane implements the sorting machinery the kd-tree needs to find
//pivots along one dimension.
type treePlane struct {
	treePoints
	kdtree.Dim
}

func (p treePlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.treePoints[i].c.X < p.treePoints[j].c.X
	case 1:
		return p.treePoints[i].c.Y < p.treePoints[j].c.Y
	default:
		return p.treePoints[i].c.Z < p.treePoints[j].c.Z
	}
}

func (p treePlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p treePlane) Slice(start, end int) kdtree.SortSlicer {
	p.treePoints = p.treePoints[start:end]
	return p
}

func (p treePlane) Swap(i, j int) {
	p.treePoints[i], p.treePoints[j] = p.treePoints[j], p.treePoints[i]
}

//FilterPoints returns the subset of points lying inside the cube of
//grid, preserving input order. An empty input yields an empty output.
//The result is deterministic: the tree search only decides which points
//get the exact test, never their order.
func FilterPoints(points []FeaturePoint, grid *Grid) []FeaturePoint {
	if len(points) == 0 {
		return nil
	}
	items := make(treePoints, len(points))
	for i, p := range points {
		items[i] = treePoint{c: p.Coord, idx: i}
	}
	t := kdtree.New(items, false)
	//squared circumscribed-sphere radius: (sqrt(3)*r)^2
	keep := kdtree.NewDistKeeper(3 * grid.radius * grid.radius)
	t.NearestSet(keep, treePoint{c: grid.center, idx: -1})
	near := make([]bool, len(points))
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		near[c.Comparable.(treePoint).idx] = true
	}
	ret := make([]FeaturePoint, 0, len(points))
	for i, p := range points {
		if !near[i] {
			continue
		}
		if inBox(p.Coord, grid.vmin, grid.vmax) {
			ret = append(ret, p)
		}
	}
	return ret
}

func inBox(p, vmin, vmax r3.Vec) bool {
	return vmin.X <= p.X && p.X <= vmax.X &&
		vmin.Y <= p.Y && p.Y <= vmax.Y &&
		vmin.Z <= p.Z && p.Z <= vmax.Z
}
