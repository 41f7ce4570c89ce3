/*
 * run.go, part of gophore.
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
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//RunOptions configures a parallel aggregation run.
type RunOptions struct {
	//Workers is the number of trajectories processed at once. Values
	//below 1 mean one worker per CPU.
	Workers int
	//Logger receives per-trajectory failures and the run summary. Nil
	//means no logging.
	Logger *zap.SugaredLogger
}

//Run aggregates every trajectory into its own private snapshot of
//template, in parallel over a bounded pool, then folds the snapshots
//into one grid. Workers share no mutable state; the fold runs on the
//calling goroutine after all workers are done, in trajectory input
//order, so the origin lists of the result are reproducible. A
//trajectory that fails to load or read is logged and left out; only if
//every trajectory fails does Run return an error.
func Run(trajs []TrajectorySource, template *Grid, opt *RunOptions) (*Grid, error) {
	if opt == nil {
		opt = &RunOptions{}
	}
	workers := opt.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	snaps := make([]*Grid, len(trajs))
	var pool errgroup.Group
	pool.SetLimit(workers)
	for i, t := range trajs {
		i, t := i, t
		pool.Go(func() error {
			src, err := t.Frames()
			if err != nil {
				logger.Warnw("skipping trajectory: cannot open frames",
					"trajectory", t.ID(), "error", err)
				return nil
			}
			snap, err := Aggregate(src, template)
			if err != nil {
				logger.Warnw("skipping trajectory: aggregation failed",
					"trajectory", t.ID(), "error", err)
				return nil
			}
			snaps[i] = snap
			return nil
		})
	}
	//workers only report failures through the log, never through the
	//group, so Wait cannot return an error here.
	pool.Wait()
	var final *Grid
	done := 0
	for _, s := range snaps {
		if s == nil {
			continue
		}
		done++
		if final == nil {
			final = s
			continue
		}
		var err error
		final, err = Merge(final, s)
		if err != nil {
			return nil, errDecorate(err, "Run")
		}
	}
	if final == nil {
		return nil, newNoData("gophore.Run: all %d trajectories failed to load", len(trajs))
	}
	logger.Infow("aggregation complete",
		"trajectories", done, "failed", len(trajs)-done, "workers", workers)
	return final, nil
}
