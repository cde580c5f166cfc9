// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hct implements the HCT (hue, chroma, tone) color space, which
// combines the hue and chroma of the CAM16 color appearance model with
// the L* tone of L*a*b*, and the solver that maps HCT values back into sRGB.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/matcolor/cam16"
	"cogentcore.org/matcolor/cie"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
// The fields must be treated as read-only: use the Set and With
// methods to change them, which re-solve the color.
type HCT struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64 `min:"0" max:"360"`

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma.  The maximum varies as a function of hue and tone, but 150 is an upper bound.
	Chroma float64 `min:"0" max:"150"`

	// tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	Tone float64 `min:"0" max:"100"`

	// argb is the solved sRGB color, with non-premultiplied alpha
	argb uint32
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// The color is solved into sRGB while keeping it within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
// The returned fields are those of the solved color, which may differ
// slightly from the requested ones.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(Solve(hue, chroma, tone))
}

// FromARGB returns the HCT representation of the given ARGB color.
// The alpha is kept but does not affect hue, chroma, or tone.
func FromARGB(argb uint32) HCT {
	cam := cam16.FromARGB(argb)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: cie.LstarFromARGB(argb), argb: argb}
}

// FromColor constructs a new HCT color from a standard [color.Color]
func FromColor(c color.Color) HCT {
	return FromARGB(cie.ARGBFromColor(c))
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// ARGB returns the color as a packed ARGB value.
func (h HCT) ARGB() uint32 {
	return h.argb
}

// Alpha returns the alpha of the color.
func (h HCT) Alpha() uint8 {
	return cie.Alpha(h.argb)
}

// WithAlpha returns the color with the given alpha.
func (h HCT) WithAlpha(a uint8) HCT {
	h.argb = h.argb&0x00ffffff | uint32(a)<<24
	return h
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return h.AsRGBA().RGBA()
}

// AsRGBA returns a standard color.RGBA type
func (h HCT) AsRGBA() color.RGBA {
	return cie.ARGBToColor(h.argb)
}

// solve returns the color with the given parameters, keeping the alpha of h.
func (h HCT) solve(hue, chroma, tone float64) HCT {
	return New(hue, chroma, tone).WithAlpha(h.Alpha())
}

// SetHue sets the hue of this color. Chroma may decrease because chroma has a
// different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float64) {
	*h = h.solve(hue, h.Chroma, h.Tone)
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float64) HCT {
	return h.solve(hue, h.Chroma, h.Tone)
}

// SetChroma sets the chroma of this color (0 to max that depends on other params),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetChroma(chroma float64) {
	*h = h.solve(h.Hue, chroma, h.Tone)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float64) HCT {
	return h.solve(h.Hue, chroma, h.Tone)
}

// SetTone sets the tone of this color (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float64) {
	*h = h.solve(h.Hue, h.Chroma, tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float64) HCT {
	return h.solve(h.Hue, h.Chroma, tone)
}

// InView translates the color into the given viewing conditions.
//
// Colors change appearance: they look different with lights on versus off,
// and the same color looks different on white than on black. The returned
// color is the one that, under standard viewing conditions, looks like this
// color does under the given conditions.
func (h HCT) InView(vw *cam16.View) HCT {
	// XYZ of the color as it appears in the given conditions
	xyz := cam16.FromARGB(h.argb).XYZView(vw)
	// recast into the standard conditions
	recast := cam16.FromXYZView(xyz, stdView)
	return h.solve(recast.Hue, recast.Chroma, cie.YToL(xyz[1]))
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
