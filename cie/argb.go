// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// ARGB colors are 32-bit packed integers with the byte layout
// alpha, red, green, blue, from most to least significant.

// ARGBFromRGB returns the opaque ARGB color with the given channels.
func ARGBFromRGB(r, g, b uint8) uint32 {
	return ARGBFromRGBA(r, g, b, 255)
}

// ARGBFromRGBA returns the ARGB color with the given channels.
func ARGBFromRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ARGBToRGB returns the red, green, and blue channels of the given color.
func ARGBToRGB(argb uint32) (r, g, b uint8) {
	return Red(argb), Green(argb), Blue(argb)
}

// Alpha returns the alpha channel of the given ARGB color.
func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }

// Red returns the red channel of the given ARGB color.
func Red(argb uint32) uint8 { return uint8(argb >> 16) }

// Green returns the green channel of the given ARGB color.
func Green(argb uint32) uint8 { return uint8(argb >> 8) }

// Blue returns the blue channel of the given ARGB color.
func Blue(argb uint32) uint8 { return uint8(argb) }

// IsOpaque returns whether the given ARGB color has full alpha.
func IsOpaque(argb uint32) bool {
	return Alpha(argb) == 255
}

// ARGBToLinear returns the linear sRGB (0-100) components of the given color.
func ARGBToLinear(argb uint32) f64.Vec3 {
	return f64.Vec3{Linearize(Red(argb)), Linearize(Green(argb)), Linearize(Blue(argb))}
}

// ARGBFromLinear returns the opaque ARGB color for the given
// linear sRGB (0-100) components, which are clamped to the gamut.
func ARGBFromLinear(lin f64.Vec3) uint32 {
	return ARGBFromRGB(Delinearize(lin[0]), Delinearize(lin[1]), Delinearize(lin[2]))
}

// ARGBToXYZ returns the 100-based XYZ coordinates of the given color.
func ARGBToXYZ(argb uint32) f64.Vec3 {
	return SRGBLinToXYZ(ARGBToLinear(argb))
}

// ARGBFromXYZ returns the opaque ARGB color for the given 100-based
// XYZ coordinates, clamped to the sRGB gamut.
func ARGBFromXYZ(xyz f64.Vec3) uint32 {
	return ARGBFromLinear(XYZToSRGBLin(xyz))
}

// ARGBToLAB returns the L*a*b* coordinates of the given color.
func ARGBToLAB(argb uint32) (l, a, b float64) {
	return XYZToLAB(ARGBToXYZ(argb))
}

// ARGBFromLAB returns the opaque ARGB color for the given
// L*a*b* coordinates, clamped to the sRGB gamut.
func ARGBFromLAB(l, a, b float64) uint32 {
	return ARGBFromXYZ(LABToXYZ(l, a, b))
}

// LstarFromARGB returns the L* (perceptual lightness) of the given color.
func LstarFromARGB(argb uint32) float64 {
	return YToL(ARGBToXYZ(argb)[1])
}

// ARGBFromLstar returns the gray whose L* is the given value.
func ARGBFromLstar(l float64) uint32 {
	c := Delinearize(LToY(l))
	return ARGBFromRGB(c, c, c)
}

// ARGBFromColor converts the given standard color into an ARGB
// color, undoing the alpha premultiplication of [color.Color].
func ARGBFromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGBFromRGBA(n.R, n.G, n.B, n.A)
}

// ARGBToColor converts the given ARGB color into a standard
// alpha-premultiplied [color.RGBA].
func ARGBToColor(argb uint32) color.RGBA {
	n := color.NRGBA{Red(argb), Green(argb), Blue(argb), Alpha(argb)}
	return color.RGBAModel.Convert(n).(color.RGBA)
}

// ARGBToHex returns the given color as a lowercase #rrggbb hex string.
// Alpha is not included.
func ARGBToHex(argb uint32) string {
	return fmt.Sprintf("#%02x%02x%02x", Red(argb), Green(argb), Blue(argb))
}

// ARGBFromHex parses a hex color string with or without a leading #,
// in the #rgb, #rrggbb, or #aarrggbb forms. The 3 and 6 digit forms are opaque.
func ARGBFromHex(hex string) (uint32, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3:
		h = "ff" + string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
		h = "ff" + h
	case 8:
	default:
		return 0, fmt.Errorf("cie.ARGBFromHex: invalid hex color %q: must have 3, 6, or 8 digits", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("cie.ARGBFromHex: invalid hex color %q: %w", hex, err)
	}
	return uint32(v), nil
}
