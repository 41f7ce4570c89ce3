/*
 * report.go, part of gophore.
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

package pele

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gophore/gophore"
)

//acceptedColumn is the header PELE gives the column counting accepted
//steps, which doubles as the model index within the trajectory file.
const acceptedColumn = "numberOfAcceptedPeleSteps"

//AcceptedSteps reads a PELE report and returns the trajectory model
//indices of the accepted steps, in file order, without repeats. The
//report is tab-separated with a header line naming its columns.
func AcceptedSteps(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newError("AcceptedSteps: "+err.Error(), path)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	col := -1
	var steps []int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "#"))
		if col < 0 {
			for i, name := range fields {
				if name == acceptedColumn {
					col = i
					break
				}
			}
			if col < 0 {
				return nil, newError("AcceptedSteps: no "+acceptedColumn+" column in header", path)
			}
			continue
		}
		if col >= len(fields) {
			return nil, newError("AcceptedSteps: short row: "+line, path)
		}
		s, err := strconv.Atoi(fields[col])
		if err != nil {
			return nil, newError("AcceptedSteps: "+err.Error(), path)
		}
		if len(steps) > 0 && steps[len(steps)-1] == s {
			continue //a rejected step repeats the last accepted model
		}
		steps = append(steps, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, newError("AcceptedSteps: "+err.Error(), path)
	}
	return steps, nil
}

//Discover matches trajectory files against trajGlob and, if reportGlob
//is non-empty, pairs them positionally with the sorted report matches.
//The pairing mirrors PELE's layout, where trajectory_N.pdb sits next to
//report_N in each epoch directory.
func Discover(trajGlob, reportGlob string, ligand *Ligand, features Features) ([]gophore.TrajectorySource, error) {
	trajs, err := filepath.Glob(trajGlob)
	if err != nil {
		return nil, newError("Discover: "+err.Error(), trajGlob)
	}
	if len(trajs) == 0 {
		return nil, newError("Discover: no trajectories match "+trajGlob, trajGlob)
	}
	sort.Strings(trajs)
	var reports []string
	if reportGlob != "" {
		reports, err = filepath.Glob(reportGlob)
		if err != nil {
			return nil, newError("Discover: "+err.Error(), reportGlob)
		}
		sort.Strings(reports)
		if len(reports) != len(trajs) {
			return nil, newError("Discover: "+strconv.Itoa(len(trajs))+" trajectories but "+
				strconv.Itoa(len(reports))+" reports", reportGlob)
		}
	}
	ret := make([]gophore.TrajectorySource, len(trajs))
	for i, t := range trajs {
		report := ""
		if reports != nil {
			report = reports[i]
		}
		ret[i] = NewTrajectory(t, report, ligand, features)
	}
	return ret, nil
}
