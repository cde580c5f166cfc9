// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/hct"
	"github.com/spf13/cobra"
)

func newHCTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hct <hue> <chroma> <tone> | hct <hex>",
		Short: "Print the sRGB color closest to an HCT color, or the HCT of a hex color",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			argb, err := parseHCTArgs(args)
			if err != nil {
				return err
			}
			printColor(output(cmd), argb, "")
			return nil
		},
	}
}

// parseHCTArgs returns the color given by either a hex color
// or hue, chroma, and tone arguments.
func parseHCTArgs(args []string) (uint32, error) {
	switch len(args) {
	case 1:
		return cie.ARGBFromHex(args[0])
	case 3:
	default:
		return 0, fmt.Errorf("need a hex color or a hue, chroma, and tone, not %d arguments", len(args))
	}
	var v [3]float64
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q: %w", s, err)
		}
		v[i] = f
	}
	return hct.Solve(v[0], v[1], v[2]), nil
}
