// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package config loads optional defaults for the shadowbmp CLI from a
// shadowbmp.yaml file, so repeated invocations in a given working
// directory don't need to repeat every flag. Explicit CLI flags always
// take precedence over a loaded file; config is purely a convenience
// layer on top of spec.md section 6's CLI surface, never a substitute
// for it.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name looked up in the current
// directory.
const FileName = "shadowbmp.yaml"

// Defaults holds the subset of CLI flags a config file may default.
type Defaults struct {
	K    int    `yaml:"k"`
	N    int    `yaml:"n"`
	Seed uint16 `yaml:"seed"`
	Dir  string `yaml:"dir"`
}

// Load reads and parses path. A missing file is not an error: it
// returns a zero-value Defaults, since every field is optional.
func Load(path string) (Defaults, error) {
	var d Defaults
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return d, err
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, err
	}
	return d, nil
}

// Merge returns a copy of d with any field in overrides set to a
// non-zero value taking precedence, implementing "explicit flags always
// override the file".
func (d Defaults) Merge(overrides Defaults) Defaults {
	merged := d
	if overrides.K != 0 {
		merged.K = overrides.K
	}
	if overrides.N != 0 {
		merged.N = overrides.N
	}
	if overrides.Seed != 0 {
		merged.Seed = overrides.Seed
	}
	if overrides.Dir != "" {
		merged.Dir = overrides.Dir
	}
	return merged
}
