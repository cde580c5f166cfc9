// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"cogentcore.org/matcolor/math64"
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors. Both are 0-1 normalized.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.040449936 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
// Used in converting from XYZ to sRGB. Both are 0-1 normalized.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// Linearize converts an 8 bit gamma-corrected channel value
// into a linear value in the 0-100 range.
func Linearize(c uint8) float64 {
	return SRGBToLinearComp(float64(c)/255) * 100
}

// Delinearize converts a linear value in the 0-100 range into an
// 8 bit gamma-corrected channel value, rounded and clamped to [0, 255].
func Delinearize(lin float64) uint8 {
	v := math.Round(SRGBFromLinearComp(lin/100) * 255)
	return uint8(math64.Clamp(v, 0, 255))
}

// TrueDelinearized converts a linear value in the 0-100 range into
// a gamma-corrected channel value in the 0-255 range, without
// rounding or clamping.
func TrueDelinearized(lin float64) float64 {
	return SRGBFromLinearComp(lin/100) * 255
}
