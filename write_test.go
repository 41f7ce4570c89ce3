/*
 * write_test.go, part of gophore.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

//The record must keep the standard PDB columns: name in 13-16,
//coordinates in 31-54, b-factor in 61-66, element in 77-78.
func TestPharmacophoreLine(Te *testing.T) {
	line := PharmacophoreLine(r3.Vec{X: 1, Y: 2, Z: 3}, "HBD", 5)
	if !strings.HasSuffix(line, "\n") {
		Te.Fatal("record does not end in a newline")
	}
	line = strings.TrimSuffix(line, "\n")
	if len(line) != 78 {
		Te.Fatalf("expected a 78-column record, got %d: %q", len(line), line)
	}
	checks := []struct {
		lo, hi int
		want   string
	}{
		{0, 6, "ATOM  "},
		{12, 16, "HBD "},
		{17, 20, "UNK"},
		{30, 38, "   1.000"},
		{38, 46, "   2.000"},
		{46, 54, "   3.000"},
		{54, 60, "  1.00"},
		{60, 66, "  5.00"},
		{77, 78, "H"},
	}
	for _, c := range checks {
		if got := line[c.lo:c.hi]; got != c.want {
			Te.Errorf("columns %d-%d: expected %q, got %q", c.lo+1, c.hi, c.want, got)
		}
	}
}

func TestWritePharmacophores(Te *testing.T) {
	g := countingGrid(Te, map[int]map[string]int{
		0: {"HBD": 5},
		3: {"HBD": 1, "ARO": 2},
		7: {"ARO": 2},
	}, "t1")
	dir := filepath.Join(Te.TempDir(), "out") //must be created by the writer
	thresholds := map[string]float64{"HBD": 2.0, "ARO": 2.0}
	if err := WritePharmacophores(g, thresholds, dir); err != nil {
		Te.Fatal(err)
	}
	hbd, err := os.ReadFile(filepath.Join(dir, "HBDpharmacophore.pdb"))
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(hbd), "\n"), "\n")
	if len(lines) != 1 {
		Te.Fatalf("expected 1 surviving HBD voxel, got %d lines", len(lines))
	}
	if got := lines[0][60:66]; got != "  5.00" {
		Te.Errorf("expected b-factor \"  5.00\", got %q", got)
	}
	//counts exactly at the cutoff survive
	aro, err := os.ReadFile(filepath.Join(dir, "AROpharmacophore.pdb"))
	if err != nil {
		Te.Fatal(err)
	}
	lines = strings.Split(strings.TrimSuffix(string(aro), "\n"), "\n")
	if len(lines) != 2 {
		Te.Fatalf("expected 2 surviving ARO voxels, got %d lines", len(lines))
	}
}

//The writer is deterministic: same grid, same thresholds, same bytes.
func TestWriteDeterministic(Te *testing.T) {
	g := countingGrid(Te, map[int]map[string]int{
		1: {"POS": 3}, 4: {"POS": 7}, 6: {"POS": 1},
	}, "t1")
	thresholds := map[string]float64{"POS": 1.0}
	read := func(dir string) string {
		if err := WritePharmacophores(g, thresholds, dir); err != nil {
			Te.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dir, "POSpharmacophore.pdb"))
		if err != nil {
			Te.Fatal(err)
		}
		return string(b)
	}
	if read(Te.TempDir()) != read(Te.TempDir()) {
		Te.Error("two runs over the same grid produced different bytes")
	}
}
