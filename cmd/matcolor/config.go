// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"

	"cogentcore.org/matcolor/base/iox/tomlx"
	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/palette"
	"cogentcore.org/matcolor/score"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// Config is the configuration of the matcolor command,
// which can be set in a TOML file and overridden with flags.
type Config struct {

	// MaxDim is the largest side of an image after downscaling it
	// for quantization. 0 means no downscaling.
	MaxDim int `toml:"max-dim"`

	// MaxColors is the number of colors the image is quantized to.
	MaxColors int `toml:"max-colors"`

	// Desired is the number of theme colors to show.
	// 0 means all of the suitable colors.
	Desired int `toml:"desired"`

	// Fallback is the hex color shown when no color of
	// the image is suitable as a theme color.
	Fallback string `toml:"fallback"`

	// Filter removes colors that are unsuitable as theme colors.
	Filter bool `toml:"filter"`

	// Tones are the tones of a tonal palette to show.
	Tones []int `toml:"tones"`
}

// DefaultConfig returns the default [Config].
func DefaultConfig() *Config {
	return &Config{
		MaxDim:    128,
		MaxColors: 128,
		Desired:   4,
		Fallback:  cie.ARGBToHex(score.GoogleBlue),
		Filter:    true,
		Tones:     slices.Clone(palette.StandardTones),
	}
}

// Validate returns an error if any of the settings are invalid.
func (c *Config) Validate() error {
	if c.MaxDim < 0 {
		return fmt.Errorf("max-dim must not be negative, not %d", c.MaxDim)
	}
	if c.MaxColors <= 0 {
		return fmt.Errorf("max-colors must be positive, not %d", c.MaxColors)
	}
	if c.Desired < 0 {
		return fmt.Errorf("desired must not be negative, not %d", c.Desired)
	}
	if _, err := cie.ARGBFromHex(c.Fallback); err != nil {
		return fmt.Errorf("fallback: %w", err)
	}
	for _, t := range c.Tones {
		if t < 0 || t > 100 {
			return fmt.Errorf("tone %d is not in [0, 100]", t)
		}
	}
	return nil
}

// ScoreOptions returns the [score.Options] for the config.
// It must be valid.
func (c *Config) ScoreOptions() score.Options {
	fb, _ := cie.ARGBFromHex(c.Fallback)
	return score.Options{Desired: c.Desired, Fallback: fb, Filter: c.Filter}
}

// OpenConfig sets the config from the given TOML file, except for
// the settings whose flags were given on the command line.
// A leading ~ in the filename is the home directory.
func OpenConfig(cmd *cobra.Command, cfg *Config, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	file := DefaultConfig()
	if err := tomlx.Open(file, filename); err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	changed := cmd.Flags().Changed
	if !changed("max-dim") {
		cfg.MaxDim = file.MaxDim
	}
	if !changed("max-colors") {
		cfg.MaxColors = file.MaxColors
	}
	if !changed("desired") {
		cfg.Desired = file.Desired
	}
	if !changed("fallback") {
		cfg.Fallback = file.Fallback
	}
	if !changed("filter") {
		cfg.Filter = file.Filter
	}
	if !changed("tones") {
		cfg.Tones = file.Tones
	}
	return nil
}
