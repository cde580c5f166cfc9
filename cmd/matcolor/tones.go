// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newTonesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tones <hex>",
		Short: "Print the tonal palette of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argb, err := cie.ARGBFromHex(args[0])
			if err != nil {
				return err
			}
			printTones(output(cmd), palette.NewTonalFromARGB(argb), a.cfg.Tones)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&a.cfg.Tones, "tones", a.cfg.Tones, "tones to print")
	return cmd
}

func printTones(out *termenv.Output, p *palette.Tonal, tones []int) {
	if len(tones) == 0 {
		tones = palette.StandardTones
	}
	fmt.Fprintf(out, "hue %.1f, chroma %.1f\n", p.Hue, p.Chroma)
	for i, c := range p.Tones(tones...) {
		printColor(out, c, fmt.Sprintf("tone %d", tones[i]))
	}
}
