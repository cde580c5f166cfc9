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

package hct

import (
	"image/color"
	"math"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/math64"
)

const (
	// contrastRatioEpsilon is the tolerance allowed when checking
	// that a computed contrast ratio reaches the requested one.
	contrastRatioEpsilon = 0.04

	// gamutMapTolerance is added to computed tones so that gamut
	// mapping, which requires a range on tone, keeps the ratio.
	gamutMapTolerance = 0.4
)

// ContrastRatio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21.
func ContrastRatio(a, b color.Color) float64 {
	ah := FromColor(a)
	bh := FromColor(b)
	return ToneContrastRatio(ah.Tone, bh.Tone)
}

// ToneContrastRatio returns the contrast ratio between the given two tones.
// The contrast ratio will be between 1 and 21, and the tones should be
// between 0 and 100 and will be clamped to such.
func ToneContrastRatio(a, b float64) float64 {
	a = math64.Clamp(a, 0, 100)
	b = math64.Clamp(b, 0, 100)
	return ContrastRatioOfYs(cie.LToY(a), cie.LToY(b))
}

// ContrastColor returns the color that will ensure that the given contrast ratio
// between the given color and the resulting color is met. If the given ratio can
// not be achieved with the given color, it returns the color that would result in
// the highest contrast ratio. The ratio must be between 1 and 21. If the tone of
// the given color is greater than 50, it tries darker tones first, and otherwise
// it tries lighter tones first.
func ContrastColor(c color.Color, ratio float64) color.RGBA {
	h := FromColor(c)
	return h.WithTone(ContrastTone(h.Tone, ratio)).AsRGBA()
}

// ContrastColorTry returns the color that will ensure that the given contrast ratio
// between the given color and the resulting color is met. It returns color.RGBA{}, false if
// the given ratio can not be achieved with the given color. The ratio must be between
// 1 and 21. If the tone of the given color is greater than 50, it tries darker tones first,
// and otherwise it tries lighter tones first.
func ContrastColorTry(c color.Color, ratio float64) (color.RGBA, bool) {
	h := FromColor(c)
	ct, ok := ContrastToneTry(h.Tone, ratio)
	if !ok {
		return color.RGBA{}, false
	}
	return h.WithTone(ct).AsRGBA(), true
}

// ContrastTone returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. If the given ratio can
// not be achieved with the given tone, it returns the tone that would result in
// the highest contrast ratio. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21. If the given tone is greater than 50, it tries darker tones first,
// and otherwise it tries lighter tones first.
func ContrastTone(tone, ratio float64) float64 {
	ct, ok := ContrastToneTry(tone, ratio)
	if ok {
		return ct
	}
	dcr := ToneContrastRatio(tone, 0)
	lcr := ToneContrastRatio(tone, 100)
	if dcr > lcr {
		return 0
	}
	return 100
}

// ContrastToneTry returns the tone that will ensure that the given contrast ratio
// between the given tone and the resulting tone is met. It returns -1, false if
// the given ratio can not be achieved with the given tone. The tone must be between 0
// and 100 and the ratio must be between 1 and 21. If the given tone is greater than 50,
// it tries darker tones first, and otherwise it tries lighter tones first.
func ContrastToneTry(tone, ratio float64) (float64, bool) {
	first, second := ContrastToneLighterTry, ContrastToneDarkerTry
	if tone > 50 {
		first, second = second, first
	}
	if ct, ok := first(tone, ratio); ok {
		return ct, true
	}
	if ct, ok := second(tone, ratio); ok {
		return ct, true
	}
	return -1, false
}

// ContrastToneLighter returns a tone greater than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns 100 if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneLighter(tone, ratio float64) float64 {
	if ct, ok := ContrastToneLighterTry(tone, ratio); ok {
		return ct
	}
	return 100
}

// ContrastToneLighterTry returns a tone greater than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneLighterTry(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.LToY(tone)
	lightY := ratio*(darkY+5) - 5
	return contrastToneOfY(lightY, darkY, lightY, ratio, gamutMapTolerance)
}

// ContrastToneDarker returns a tone less than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns 0 if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneDarker(tone, ratio float64) float64 {
	if ct, ok := ContrastToneDarkerTry(tone, ratio); ok {
		return ct
	}
	return 0
}

// ContrastToneDarkerTry returns a tone less than or equal to the given tone
// that ensures that given contrast ratio between the two tones is met.
// It returns -1, false if the given ratio can not be achieved with the
// given tone. The tone must be between 0 and 100 and the ratio must be
// between 1 and 21.
func ContrastToneDarkerTry(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.LToY(tone)
	darkY := (lightY+5)/ratio - 5
	return contrastToneOfY(darkY, darkY, lightY, ratio, -gamutMapTolerance)
}

// contrastToneOfY returns the tone of the target Y, offset by the given
// gamut mapping tolerance, if the dark and light Y values reach the ratio.
func contrastToneOfY(target, darkY, lightY, ratio, offset float64) (float64, bool) {
	if target < 0 || target > 100 {
		return -1, false
	}
	realContrast := ContrastRatioOfYs(lightY, darkY)
	delta := math.Abs(realContrast - ratio)
	if realContrast < ratio && delta > contrastRatioEpsilon {
		return -1, false
	}
	ret := cie.YToL(target) + offset
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ContrastRatioOfYs returns the contrast ratio of two XYZ Y values.
func ContrastRatioOfYs(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 5) / (darker + 5)
}
