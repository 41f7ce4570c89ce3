/*
 * main.go, part of gophore.
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

//Command gophore extracts pharmacophore hotspots from PELE simulation
//output. All options can come from a YAML configuration file, from
//flags, or both; flags win.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gophore/gophore"
	"github.com/gophore/gophore/freqplot"
	"github.com/gophore/gophore/traj/pele"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gophore",
		Short: "extract pharmacophore hotspots from PELE trajectories",
		Long: `gophore overlays a cubic grid on a region of interest, counts how often
each pharmacophoric feature visits each grid voxel across all accepted
frames of a set of trajectories, and writes the statistically frequent
voxels as per-feature PDB point clouds.`,
		SilenceUsage: true,
		RunE:         run,
	}
	flags := cmd.Flags()
	flags.String("config", "", "YAML configuration file")
	flags.String("center", "0,0,0", "grid center as x,y,z")
	flags.Float64("radius", 7, "half the grid cube's side, in angstroms")
	flags.Int("resolution", 10, "voxels per grid edge")
	flags.String("trajectories", "", "glob matching the trajectory PDB files")
	flags.String("reports", "", "glob matching the PELE report files, paired with the trajectories by sorted order")
	flags.Int("workers", 0, "trajectories processed in parallel, 0 for one per CPU")
	flags.Int("bin", 1, "histogram bin whose lower edge becomes the frequency cutoff, 0-9")
	flags.String("outdir", "Pharmacophores", "output directory")
	flags.Bool("plots", false, "also write per-feature frequency histograms as PNG")
	viper.BindPFlags(flags)
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	center, err := parseCenter(viper.GetString("center"))
	if err != nil {
		return err
	}
	grid, err := gophore.NewGrid(center, viper.GetFloat64("radius"), viper.GetInt("resolution"))
	if err != nil {
		return err
	}
	//reject a bad bin index before any trajectory work starts
	binIndex := viper.GetInt("bin")
	if _, err := gophore.Thresholds(grid, binIndex); err != nil {
		return err
	}

	features := pele.Features(viper.GetStringMapStringSlice("features"))
	var ligand *pele.Ligand
	if chain := viper.GetString("ligand.chain"); chain != "" {
		ligand = &pele.Ligand{
			Chain:   chain,
			Name:    viper.GetString("ligand.name"),
			Residue: viper.GetInt("ligand.residue"),
		}
	}
	trajs, err := pele.Discover(viper.GetString("trajectories"), viper.GetString("reports"), ligand, features)
	if err != nil {
		return err
	}
	sugar.Infow("starting run", "trajectories", len(trajs),
		"center", center, "radius", grid.Radius(), "resolution", grid.Resolution())

	final, err := gophore.Run(trajs, grid, &gophore.RunOptions{
		Workers: viper.GetInt("workers"),
		Logger:  sugar,
	})
	if err != nil {
		return err
	}
	thresholds, err := gophore.Thresholds(final, binIndex)
	if err != nil {
		return err
	}
	for f, t := range thresholds {
		sugar.Infow("feature cutoff", "feature", f, "cutoff", t)
	}
	outdir := viper.GetString("outdir")
	if err := gophore.WritePharmacophores(final, thresholds, outdir); err != nil {
		return err
	}
	if viper.GetBool("plots") {
		if err := freqplot.Save(final, outdir); err != nil {
			return err
		}
	}
	sugar.Infow("done", "outdir", outdir, "features", len(thresholds))
	return nil
}

//parseCenter reads "x,y,z" into a vector.
func parseCenter(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("center must be x,y,z, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		var err error
		c[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("center component %q: %v", p, err)
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
