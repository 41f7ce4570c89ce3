/*
 * run_test.go, part of gophore.
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
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

type testLastFrame struct {
	deco
}

func (err *testLastFrame) NormalLastFrameTermination() {}

//sliceFrames serves pre-built frames and then signals its last frame,
//standing in for a trajectory reader.
type sliceFrames struct {
	frames [][]FeaturePoint
	i      int
}

func (s *sliceFrames) Next() ([]FeaturePoint, error) {
	if s.i >= len(s.frames) {
		return nil, &testLastFrame{deco{message: "no more frames"}}
	}
	f := s.frames[s.i]
	s.i++
	return f, nil
}

type sliceTraj struct {
	id     string
	frames [][]FeaturePoint
	broken bool
}

func (s *sliceTraj) ID() string { return s.id }

func (s *sliceTraj) Frames() (FrameSource, error) {
	if s.broken {
		return nil, fmt.Errorf("cannot open %s", s.id)
	}
	return &sliceFrames{frames: s.frames}, nil
}

func point(x, y, z float64, feature, traj string, frame int) FeaturePoint {
	return FeaturePoint{
		Coord:   r3.Vec{X: x, Y: y, Z: z},
		Feature: feature,
		Origin:  Origin{Trajectory: traj, Frame: frame},
	}
}

func TestAggregate(Te *testing.T) {
	template, err := NewGrid(r3.Vec{}, 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	src := &sliceFrames{frames: [][]FeaturePoint{
		{
			point(0.9, 0.9, 0.9, "ARO", "t1", 0),
			point(2.5, 0, 0, "HBD", "t1", 0), //outside, dropped
		},
		{}, //an empty accepted frame is fine
		{
			point(0.8, 0.8, 0.8, "ARO", "t1", 2),
			point(-0.5, -0.5, 0.5, "HBD", "t1", 2),
		},
	}}
	got, err := Aggregate(src, template)
	if err != nil {
		Te.Fatal(err)
	}
	if !template.Empty() {
		Te.Error("Aggregate mutated the template grid")
	}
	if got.Voxel(7).Frequency["ARO"] != 2 {
		Te.Errorf("expected 2 ARO hits in voxel 7, got %d", got.Voxel(7).Frequency["ARO"])
	}
	if got.Voxel(1).Frequency["HBD"] != 1 {
		Te.Errorf("expected 1 HBD hit in voxel 1, got %d", got.Voxel(1).Frequency["HBD"])
	}
	for i := 0; i < got.Len(); i++ {
		if got.Voxel(i).Frequency["HBD"]+got.Voxel(i).Frequency["ARO"] > 0 && i != 1 && i != 7 {
			Te.Errorf("unexpected counts in voxel %d", i)
		}
	}
	origins := got.Voxel(7).Origins["ARO"]
	if len(origins) != 2 || origins[0].Frame != 0 || origins[1].Frame != 2 {
		Te.Errorf("wrong ARO provenance: %v", origins)
	}
}

func TestAggregateEmptySource(Te *testing.T) {
	template, _ := NewGrid(r3.Vec{}, 2, 2)
	got, err := Aggregate(&sliceFrames{}, template)
	if err != nil {
		Te.Fatal(err)
	}
	if !got.Empty() {
		Te.Error("expected an empty grid from a source with no frames")
	}
}

func TestRun(Te *testing.T) {
	template, err := NewGrid(r3.Vec{}, 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	trajs := []TrajectorySource{
		&sliceTraj{id: "t1", frames: [][]FeaturePoint{
			{point(0.9, 0.9, 0.9, "ARO", "t1", 0)},
		}},
		&sliceTraj{id: "bad", broken: true},
		&sliceTraj{id: "t3", frames: [][]FeaturePoint{
			{point(1.1, 1.1, 1.1, "ARO", "t3", 0)},
			{point(-1, -1, -1, "HBD", "t3", 1)},
		}},
	}
	got, err := Run(trajs, template, &RunOptions{Workers: 2})
	if err != nil {
		Te.Fatal(err)
	}
	if !template.Empty() {
		Te.Error("Run mutated the template grid")
	}
	v := got.Voxel(7)
	if v.Frequency["ARO"] != 2 {
		Te.Errorf("expected 2 ARO hits in voxel 7 across trajectories, got %d", v.Frequency["ARO"])
	}
	//fold order follows input order, so t1's origins come first
	origins := v.Origins["ARO"]
	if len(origins) != 2 || origins[0].Trajectory != "t1" || origins[1].Trajectory != "t3" {
		Te.Errorf("wrong ARO provenance: %v", origins)
	}
	if got.Voxel(0).Frequency["HBD"] != 1 {
		Te.Errorf("expected 1 HBD hit in voxel 0, got %d", got.Voxel(0).Frequency["HBD"])
	}
}

//A broken trajectory is skipped; losing all of them is an error.
func TestRunAllFailed(Te *testing.T) {
	template, _ := NewGrid(r3.Vec{}, 2, 2)
	trajs := []TrajectorySource{
		&sliceTraj{id: "b1", broken: true},
		&sliceTraj{id: "b2", broken: true},
	}
	if _, err := Run(trajs, template, nil); err == nil {
		Te.Error("expected an error when every trajectory fails")
	} else if _, ok := err.(*NoDataError); !ok {
		Te.Errorf("expected NoDataError, got %T", err)
	}
}

//Same trajectories, different worker counts, same frequencies.
func TestRunWorkerInvariance(Te *testing.T) {
	template, _ := NewGrid(r3.Vec{}, 2, 2)
	var trajs []TrajectorySource
	for t := 0; t < 5; t++ {
		id := fmt.Sprintf("t%d", t)
		trajs = append(trajs, &sliceTraj{id: id, frames: [][]FeaturePoint{
			{point(0.5+float64(t)*0.1, 0.5, 0.5, "HBA", id, 0)},
		}})
	}
	one, err := Run(trajs, template, &RunOptions{Workers: 1})
	if err != nil {
		Te.Fatal(err)
	}
	four, err := Run(trajs, template, &RunOptions{Workers: 4})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < one.Len(); i++ {
		if one.Voxel(i).Frequency["HBA"] != four.Voxel(i).Frequency["HBA"] {
			Te.Fatalf("voxel %d: frequencies differ with worker count", i)
		}
		a, b := one.Voxel(i).Origins["HBA"], four.Voxel(i).Origins["HBA"]
		if len(a) != len(b) {
			Te.Fatalf("voxel %d: origin counts differ with worker count", i)
		}
		for j := range a {
			if a[j] != b[j] {
				Te.Fatalf("voxel %d: origin order differs with worker count", i)
			}
		}
	}
}
