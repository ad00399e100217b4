// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package driver wires the cobra-parsed CLI flags to the pipeline
// package and logs progress through logrus. Everything in here is an
// external collaborator spec.md section 1 keeps out of the core:
// argument parsing, directory scanning, and logging are all assembled
// here, on top of abstract interfaces the core packages define.
package driver

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/zanicar/shadowbmp/bmp"
	"github.com/zanicar/shadowbmp/pipeline"
)

// Options mirrors the CLI surface of spec.md section 6.
type Options struct {
	Secret  string
	Dir     string
	K, N    int
	Width   int
	Height  int
	Seed    uint16
	Verbose bool
}

// Logger gates output level on Options.Verbose the way the teacher's
// cmd/stegano/stegano.go toggles log.SetOutput(ioutil.Discard) under its
// own fverbose flag, but through a real leveled logger rather than a
// discard writer.
func Logger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Distribute runs the distribute pipeline against the real OS
// filesystem and logs a summary.
func Distribute(opts Options) error {
	log := Logger(opts.Verbose)
	fs := afero.NewOsFs()
	store := bmp.NewFileStore(fs)
	source := pipeline.NewAferoSource(fs)

	log.WithFields(logrus.Fields{
		"secret": opts.Secret, "dir": opts.Dir, "k": opts.K, "n": opts.N, "seed": opts.Seed,
	}).Info("distributing secret")

	result, err := pipeline.Distribute(store, source, pipeline.DistributeOptions{
		SecretPath: opts.Secret,
		CarrierDir: opts.Dir,
		K:          opts.K,
		N:          opts.N,
		Seed:       opts.Seed,
		Permute:    true,
	})
	if err != nil {
		return fmt.Errorf("distribute: %w", err)
	}

	log.WithFields(logrus.Fields{
		"files": len(result.FilesWritten), "shadowBytes": result.ShadowBytes,
	}).Info("distribute complete")
	return nil
}

// Recover runs the recover pipeline against the real OS filesystem and
// logs a summary.
func Recover(opts Options) error {
	log := Logger(opts.Verbose)
	fs := afero.NewOsFs()
	store := bmp.NewFileStore(fs)
	source := pipeline.NewAferoSource(fs)

	log.WithFields(logrus.Fields{
		"secret": opts.Secret, "dir": opts.Dir, "k": opts.K, "w": opts.Width, "h": opts.Height,
	}).Info("recovering secret")

	result, err := pipeline.Recover(store, source, pipeline.RecoverOptions{
		ShadowDir:  opts.Dir,
		SecretPath: opts.Secret,
		K:          opts.K,
		Width:      opts.Width,
		Height:     opts.Height,
		Permute:    true,
	})
	if err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	log.WithFields(logrus.Fields{
		"secretBytes": result.SecretBytes,
	}).Info("recover complete")
	return nil
}
