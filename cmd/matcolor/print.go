// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/hct"
	"github.com/muesli/termenv"
)

// swatch returns a block of the given color, with text
// that contrasts with it.
func swatch(out *termenv.Output, argb uint32, text string) string {
	fg := hct.ContrastColor(cie.ARGBToColor(argb), 4.5)
	fgHex := cie.ARGBToHex(cie.ARGBFromColor(fg))
	return out.String(" " + text + " ").
		Background(out.Color(cie.ARGBToHex(argb))).
		Foreground(out.Color(fgHex)).
		String()
}

// formatHCT returns the HCT coordinates of the color, rounded for display.
func formatHCT(argb uint32) string {
	h := hct.FromARGB(argb)
	return fmt.Sprintf("H %5.1f  C %5.1f  T %5.1f", h.Hue, h.Chroma, h.Tone)
}

// printColor prints one line describing the color.
func printColor(out *termenv.Output, argb uint32, extra string) {
	hex := cie.ARGBToHex(argb)
	fmt.Fprintf(out, "%s  %s  %s", swatch(out, argb, hex), hex, formatHCT(argb))
	if extra != "" {
		fmt.Fprintf(out, "  %s", extra)
	}
	fmt.Fprintln(out)
}
