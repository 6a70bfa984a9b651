// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(2)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the goframe command and its subcommands
func newRootCmd() *cobra.Command {
	var verbose bool
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	root := &cobra.Command{
		Use:          "goframe",
		Short:        "Static linear analysis of frames and trusses",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages of the analysis")
	root.AddCommand(newRunCmd(logger, &verbose))
	root.AddCommand(newCheckCmd(logger))
	return root
}

// newRunCmd returns the command that solves a model file and prints the results
func newRunCmd(logger *log.Logger, verbose *bool) *cobra.Command {
	var csvDir string
	var plot bool
	var nsub int
	cmd := &cobra.Command{
		Use:   "run <model>",
		Short: "Solve a model file (.yaml, .json or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			model, err := inp.ReadModel(args[0])
			if err != nil {
				logger.Error("cannot read model", "file", args[0], "err", err)
				return err
			}
			if nsub > 0 {
				model.Nsub = nsub
			}
			analysis, err := fem.NewMain(model, *verbose)
			if err != nil {
				logger.Error("cannot set analysis", "file", args[0], "err", err)
				return err
			}
			logger.Debug("structure allocated", "nodes", len(analysis.Str.Nodes), "elements", len(analysis.Str.Elems), "dofs", analysis.Str.Ndof())
			if err = analysis.Run(); err != nil {
				logger.Error("analysis failed", "state", analysis.Solver.State, "err", err)
				return err
			}
			logger.Info("solved", "model", model.Key, "free", analysis.Str.Nfree, "cond", analysis.Solver.Cond, "elapsed", time.Since(start).Round(time.Millisecond))

			res := out.FromMain(analysis)
			io.Pf("%s", res.Summary())
			if plot {
				io.Pf("%s", res.MomentDiagrams())
			}
			if csvDir != "" {
				if err = res.WriteCSV(csvDir); err != nil {
					logger.Error("cannot write results", "dir", csvDir, "err", err)
					return err
				}
				logger.Info("results written", "dir", csvDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvDir, "csv", "", "directory to write nodes.csv, elements.csv and stations.csv")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot bending moment diagrams")
	cmd.Flags().IntVar(&nsub, "nsub", 0, "number of subdivisions along elements (overrides model file)")
	return cmd
}

// newCheckCmd returns the command that only reads and validates a model file
func newCheckCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <model>",
		Short: "Read and validate a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := inp.ReadModel(args[0])
			if err != nil {
				logger.Error("invalid model", "file", args[0], "err", err)
				return err
			}
			logger.Info("model is valid", "desc", model.Desc, "nodes", len(model.Nodes), "elements", len(model.Elems),
				"materials", len(model.Materials), "sections", len(model.Sections))
			return nil
		},
	}
}
