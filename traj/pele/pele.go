/*
 * pele.go, part of gophore.
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

//Package pele reads the output of PELE simulations: multi-model PDB
//trajectories, plain or gzip-compressed, together with the report files
//that record which steps were accepted. It turns both into the
//feature-tagged point batches the gophore grid engine consumes.
package pele

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gophore/gophore"
	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/spatial/r3"
)

//Ligand selects the hetero residue whose atoms carry the features, by
//chain, residue name and residue number, the way PELE output labels it.
type Ligand struct {
	Chain   string
	Name    string
	Residue int
}

//Features maps a feature name to the ligand atom names carrying it. A
//nil or empty map means "all atoms": every atom of every frame is
//tagged with its element symbol instead.
type Features map[string][]string

//Trajectory is one PELE trajectory file plus its (optional) report. It
//implements gophore.TrajectorySource. With an empty report path every
//model of the trajectory is taken as accepted.
type Trajectory struct {
	id         string
	trajPath   string
	reportPath string
	ligand     *Ligand
	features   Features
}

//NewTrajectory returns a Trajectory reading trajPath, filtered by the
//accepted steps of reportPath if non-empty. The trajectory path doubles
//as the identifier used in logs and provenance tags.
func NewTrajectory(trajPath, reportPath string, ligand *Ligand, features Features) *Trajectory {
	return &Trajectory{
		id:         trajPath,
		trajPath:   trajPath,
		reportPath: reportPath,
		ligand:     ligand,
		features:   features,
	}
}

func (T *Trajectory) ID() string {
	return T.id
}

//Frames opens the trajectory for reading. The returned source closes
//the underlying file on its own once the last frame has been delivered
//or a read fails.
func (T *Trajectory) Frames() (gophore.FrameSource, error) {
	var accepted map[int]bool
	if T.reportPath != "" {
		steps, err := AcceptedSteps(T.reportPath)
		if err != nil {
			return nil, err
		}
		accepted = make(map[int]bool, len(steps))
		for _, s := range steps {
			accepted[s] = true
		}
	}
	file, err := os.Open(T.trajPath)
	if err != nil {
		return nil, newError("Frames: "+err.Error(), T.trajPath)
	}
	var r io.Reader = file
	closers := []io.Closer{file}
	if strings.HasSuffix(T.trajPath, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, newError("Frames: "+err.Error(), T.trajPath)
		}
		r = gz
		closers = []io.Closer{gz, file}
	}
	//feature names are walked in a fixed order so an atom sitting in
	//two allowlists yields its points deterministically
	names := make([]string, 0, len(T.features))
	for f := range T.features {
		names = append(names, f)
	}
	sort.Strings(names)
	byAtom := make(map[string][]string) //atom name -> feature names
	for _, f := range names {
		for _, at := range T.features[f] {
			byAtom[at] = append(byAtom[at], f)
		}
	}
	return &frameReader{
		id:       T.id,
		in:       bufio.NewReader(r),
		closers:  closers,
		ligand:   T.ligand,
		byAtom:   byAtom,
		accepted: accepted,
	}, nil
}

//frameReader delivers one accepted model per Next call. Models are
//indexed by position in the file, starting from 0, which is how the
//report refers to them.
type frameReader struct {
	id       string
	in       *bufio.Reader
	closers  []io.Closer
	ligand   *Ligand
	byAtom   map[string][]string
	accepted map[int]bool //nil accepts every model
	model    int
	done     bool
}

func (F *frameReader) close() {
	for _, c := range F.closers {
		c.Close()
	}
	F.closers = nil
	F.done = true
}

func (F *frameReader) Next() ([]gophore.FeaturePoint, error) {
	if F.done {
		return nil, newLastFrame(F.id)
	}
	for {
		points, any, err := F.readModel()
		if err != nil {
			F.close()
			return nil, err
		}
		if !any {
			F.close()
			return nil, newLastFrame(F.id)
		}
		idx := F.model
		F.model++
		if F.accepted != nil && !F.accepted[idx] {
			continue
		}
		return points, nil
	}
}

//readModel reads up to the next ENDMDL or the end of the file. It
//returns any=false only when the file ended without a single atom
//record, i.e. there was no model left to read.
func (F *frameReader) readModel() ([]gophore.FeaturePoint, bool, error) {
	var points []gophore.FeaturePoint
	any := false
	origin := gophore.Origin{Trajectory: F.id, Frame: F.model}
	for {
		line, err := F.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, false, newError("readModel: "+err.Error(), F.id)
		}
		atEOF := err == io.EOF
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") {
			any = true
			pts, perr := F.selectAtom(line, origin)
			if perr != nil {
				return nil, false, perr
			}
			points = append(points, pts...)
		}
		if strings.HasPrefix(line, "ENDMDL") {
			return points, true, nil
		}
		if atEOF {
			return points, any, nil
		}
	}
}

//selectAtom applies the ligand and feature selection to one ATOM or
//HETATM record and returns the feature points it contributes, which can
//be none, one, or one per feature listing the atom.
func (F *frameReader) selectAtom(line string, origin gophore.Origin) ([]gophore.FeaturePoint, error) {
	name, molname, chain, molid, coord, err := parseAtomLine(line, F.id)
	if err != nil {
		return nil, err
	}
	if F.ligand != nil {
		if chain != F.ligand.Chain || molname != F.ligand.Name || molid != F.ligand.Residue {
			return nil, nil
		}
	}
	if len(F.byAtom) == 0 {
		//all-atoms mode: the element symbol is the feature
		return []gophore.FeaturePoint{{Coord: coord, Feature: symbolFromName(name), Origin: origin}}, nil
	}
	feats := F.byAtom[name]
	if len(feats) == 0 {
		return nil, nil
	}
	ret := make([]gophore.FeaturePoint, len(feats))
	for i, f := range feats {
		ret[i] = gophore.FeaturePoint{Coord: coord, Feature: f, Origin: origin}
	}
	return ret, nil
}

//parseAtomLine picks the fixed-column fields this package needs out of
//an ATOM/HETATM record: atom name, residue name, chain, residue number
//and coordinates.
func parseAtomLine(line, file string) (name, molname, chain string, molid int, coord r3.Vec, err error) {
	if len(line) < 54 {
		return "", "", "", 0, r3.Vec{}, newError("parseAtomLine: truncated record: "+strings.TrimRight(line, "\n"), file)
	}
	name = strings.TrimSpace(line[12:16])
	molname = strings.TrimSpace(line[17:20])
	chain = string(line[21])
	errs := make([]error, 4)
	molid, errs[0] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coord.X, errs[1] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coord.Y, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coord.Z, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range errs {
		if e != nil {
			return "", "", "", 0, r3.Vec{}, newError("parseAtomLine: "+e.Error(), file)
		}
	}
	return name, molname, chain, molid, coord, nil
}

//symbolFromName guesses the element behind a PDB atom name. Enough for
//tagging in all-atoms mode; four-character names are hydrogens in the
//usual force-field conventions.
func symbolFromName(name string) string {
	if name == "" {
		return "X"
	}
	if len(name) == 4 {
		return "H"
	}
	two := map[string]string{"CL": "Cl", "BR": "Br", "NA": "Na", "MG": "Mg", "ZN": "Zn", "FE": "Fe"}
	if s, ok := two[name]; ok {
		return s
	}
	return name[:1]
}
