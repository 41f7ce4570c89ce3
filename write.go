/*
 * write.go, part of gophore.
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
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

//The output uses the fixed-column PDB ATOM layout so any
//molecular-visualization program can load the pharmacophore clouds:
//coordinates in columns 31-54, the frequency in the b-factor columns
//61-66 as a per-point weight, the feature name as the atom name and its
//first character as the element. The remaining fields are placeholders.

//PharmacophoreLine formats one surviving voxel as a PDB ATOM record.
func PharmacophoreLine(center r3.Vec, feature string, freq int) string {
	return fmt.Sprintf("%-6s%5s %-4s %-3s %s%4s    %8.3f%8.3f%8.3f%6.2f%6.2f%12s\n",
		"ATOM", "1", feature, "UNK", "A", "1",
		center.X, center.Y, center.Z, 1.00, float64(freq), feature[:1])
}

//WritePharmacophores writes, for every feature with a computed cutoff,
//the file <feature>pharmacophore.pdb under outdir (created if absent),
//holding one record per voxel whose count reaches the cutoff. Files are
//created anew on every call; records are written one line at a time, so
//a failure mid-file leaves previous lines intact. The output is fully
//determined by the grid and the thresholds.
func WritePharmacophores(grid *Grid, thresholds map[string]float64, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	features := make([]string, 0, len(thresholds))
	for f := range thresholds {
		features = append(features, f)
	}
	sort.Strings(features)
	for _, feature := range features {
		if err := writeFeature(grid, feature, thresholds[feature], outdir); err != nil {
			return err
		}
	}
	return nil
}

func writeFeature(grid *Grid, feature string, cutoff float64, outdir string) error {
	path := filepath.Join(outdir, feature+"pharmacophore.pdb")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	for _, v := range grid.voxels {
		n, ok := v.Frequency[feature]
		if !ok || float64(n) < cutoff {
			continue
		}
		if _, err := fmt.Fprint(out, PharmacophoreLine(v.center, feature, n)); err != nil {
			return err
		}
	}
	return nil
}
