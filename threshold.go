/*
 * threshold.go, part of gophore.
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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//ThresholdBins is the number of equal-width histogram bins the
//frequency cutoffs are read from.
const ThresholdBins = 10

//featureFrequencies collects, for every feature in the grid, the counts
//of all voxels that registered at least one occurrence of it.
func featureFrequencies(grid *Grid) map[string][]float64 {
	freqs := make(map[string][]float64)
	for _, v := range grid.voxels {
		for f, n := range v.Frequency {
			if n < 1 {
				continue
			}
			freqs[f] = append(freqs[f], float64(n))
		}
	}
	return freqs
}

//dividers returns the ThresholdBins+1 equal-width bin edges spanning
//the value range of list. A degenerate range (fewer than 2 distinct
//values) is widened by 0.5 on each side so the histogram stays well
//defined.
func dividers(list []float64) []float64 {
	lo := floats.Min(list)
	hi := floats.Max(list)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	return floats.Span(make([]float64, ThresholdBins+1), lo, hi)
}

//Thresholds computes, for each feature present anywhere in the grid,
//a frequency cutoff: the lower edge of bin binIndex of a 10-bin
//equal-width histogram over that feature's voxel counts. A voxel
//survives for a feature iff its count is at least the cutoff. binIndex
//must be in [0,9].
func Thresholds(grid *Grid, binIndex int) (map[string]float64, error) {
	if binIndex < 0 || binIndex >= ThresholdBins {
		return nil, newInvalidThreshold("gophore.Thresholds: bin index %d outside [0,%d]", binIndex, ThresholdBins-1)
	}
	ret := make(map[string]float64)
	for f, list := range featureFrequencies(grid) {
		ret[f] = dividers(list)[binIndex]
	}
	return ret, nil
}

//FrequencyHistogram returns the bin edges and per-bin counts of the
//10-bin histogram behind the threshold of one feature. It returns nils
//for a feature absent from the grid.
func FrequencyHistogram(grid *Grid, feature string) (edges, counts []float64) {
	list := featureFrequencies(grid)[feature]
	if list == nil {
		return nil, nil
	}
	edges = dividers(list)
	sort.Float64s(list)
	//the top bin is closed on both sides, but stat.Histogram wants all
	//values strictly below the last divider; nudge it up for the call
	div := make([]float64, len(edges))
	copy(div, edges)
	div[len(div)-1] = math.Nextafter(div[len(div)-1], math.Inf(1))
	counts = stat.Histogram(nil, div, list, nil)
	return edges, counts
}
