/*
 * freqplot.go, part of gophore.
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

//Package freqplot draws, for each feature of an aggregated grid, the
//histogram its frequency cutoff is read from. One bar per threshold
//bin; handy to eyeball where a cutoff landed within the distribution.
package freqplot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gophore/gophore"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Save writes one PNG per feature present in grid, named
//<feature>frequencies.png, under outdir (created if absent).
func Save(grid *gophore.Grid, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	for _, feature := range grid.Features() {
		if err := saveFeature(grid, feature, outdir); err != nil {
			return err
		}
	}
	return nil
}

func saveFeature(grid *gophore.Grid, feature, outdir string) error {
	edges, counts := gophore.FrequencyHistogram(grid, feature)
	if edges == nil {
		return nil
	}
	p := plot.New()
	p.Title.Text = feature + " voxel frequencies"
	p.X.Label.Text = "frequency"
	p.Y.Label.Text = "voxels"
	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(18))
	if err != nil {
		return err
	}
	p.Add(bars)
	labels := make([]string, len(counts))
	for i := range counts {
		labels[i] = fmt.Sprintf("%.1f", edges[i])
	}
	p.NominalX(labels...)
	return p.Save(5*vg.Inch, 4*vg.Inch, filepath.Join(outdir, feature+"frequencies.png"))
}
