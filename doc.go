/*
 * doc.go, part of gophore.
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

//Package gophore extracts recurring spatial hotspots of pharmacophoric
//features (hydrogen-bond donors and acceptors, aromatic and aliphatic
//contacts, and so on) from sets of molecular-simulation trajectories.
//A cubic, uniform-resolution grid is laid over a region of interest and,
//for every accepted frame of every trajectory, the feature-tagged atoms
//falling inside the grid are counted into its voxels. Trajectories are
//processed in parallel, each into its own grid snapshot; snapshots are
//then merged, per-feature frequency cutoffs are derived from the
//empirical voxel-count distributions, and the surviving voxel centers
//are written out as per-feature point clouds in PDB format, readable by
//the usual molecular-visualization programs.
//
//The package contains only the grid engine. Reading simulation output
//(structures, trajectories, acceptance reports) is the job of the
//traj/... subpackages, and the command-line driver lives in cmd/gophore.
package gophore
