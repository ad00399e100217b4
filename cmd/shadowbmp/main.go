// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zanicar/shadowbmp/internal/config"
	"github.com/zanicar/shadowbmp/internal/driver"
)

var (
	flagDistribute bool
	flagRecover    bool
	flagSecret     string
	flagDir        string
	flagK          int
	flagN          int
	flagWidth      int
	flagHeight     int
	flagSeed       uint16
	flagVerbose    bool
)

func usage() {
	fmt.Printf("shadowbmp: correct usage examples:\n")
	fmt.Printf("\t> shadowbmp -d --secret {secret.bmp} --dir {carriers} -k {k} -n {n}\n")
	fmt.Printf("\t> shadowbmp -r --secret {recovered.bmp} --dir {shadows} -k {k} -w {width} -h {height}\n")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shadowbmp",
		Short:        "Split or reconstruct an 8-bpp BMP secret across BMP carriers",
		SilenceUsage: true,
		RunE:         run,
	}

	root.Flags().BoolVarP(&flagDistribute, "distribute", "d", false, "distribute a secret across carriers")
	root.Flags().BoolVarP(&flagRecover, "recover", "r", false, "recover a secret from shadows")
	root.Flags().StringVar(&flagSecret, "secret", "", "secret path (distribute: source; recover: destination)")
	root.Flags().StringVar(&flagDir, "dir", "./", "carriers directory (distribute) or shadows directory (recover)")
	root.Flags().IntVarP(&flagK, "k", "k", 0, "threshold, 2 <= k <= n")
	root.Flags().IntVarP(&flagN, "n", "n", 0, "total shadows (distribute only)")
	root.Flags().IntVarP(&flagWidth, "width", "w", 0, "recovered image width (recover only)")
	root.Flags().IntVarP(&flagHeight, "height", "h", 0, "recovered image height (recover only)")
	root.Flags().Uint16VarP(&flagSeed, "seed", "s", 691, "permutation seed")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable info-level logging")

	return root
}

func run(cmd *cobra.Command, args []string) error {
	if flagDistribute == flagRecover {
		usage()
		return fmt.Errorf("exactly one of -d or -r is required")
	}

	defaults, err := config.Load(config.FileName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	overrides := config.Defaults{K: flagK, N: flagN, Seed: flagSeed, Dir: flagDir}
	// only treat a flag as an override once the user actually set it;
	// otherwise its zero/default value would always win over the
	// config file's corresponding field.
	if !cmd.Flags().Changed("dir") {
		overrides.Dir = ""
	}
	if !cmd.Flags().Changed("seed") {
		overrides.Seed = 0
	}
	merged := defaults.Merge(overrides)
	// anything set by neither the command line nor the config file falls
	// back to the flag's own default.
	if merged.Dir == "" {
		merged.Dir = flagDir
	}
	if merged.Seed == 0 && !cmd.Flags().Changed("seed") {
		merged.Seed = flagSeed
	}

	opts := driver.Options{
		Secret:  flagSecret,
		Dir:     merged.Dir,
		K:       merged.K,
		N:       merged.N,
		Width:   flagWidth,
		Height:  flagHeight,
		Seed:    merged.Seed,
		Verbose: flagVerbose,
	}

	if flagDistribute {
		return driver.Distribute(opts)
	}
	return driver.Recover(opts)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
