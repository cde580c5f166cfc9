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
	"math"

	"cogentcore.org/matcolor/cam16"
	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/math64"
	"golang.org/x/image/math/f64"
)

// stdView is the viewing conditions that HCT is defined under.
// The solver matrices are precomputed for it.
var stdView = cam16.NewStdView()

// Solve returns the ARGB color with the given hue (degrees), chroma,
// and tone (L*). If the chroma is not achievable at that hue and tone,
// the returned color has the largest chroma that is, and lies on the
// boundary of the sRGB gamut. Hue is wrapped into [0, 360) and tone is
// clamped to [0, 100]. Solve is deterministic and always terminates.
func Solve(hue, chroma, tone float64) uint32 {
	tone = math64.Clamp(tone, 0, 100)
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return cie.ARGBFromLstar(tone)
	}
	hueRad := math64.DegToRad(math64.SanitizeDegrees(hue))
	y := cie.LToY(tone)
	if argb, ok := findResultByJ(hueRad, chroma, y); ok {
		return argb
	}
	return cie.ARGBFromLinear(bisectToLimit(y, hueRad))
}

// SolveCAM is [Solve], returning the solved color as a [cam16.CAM].
func SolveCAM(hue, chroma, tone float64) *cam16.CAM {
	return cam16.FromARGB(Solve(hue, chroma, tone))
}

// findResultByJ finds a color with the given hue (radians), chroma and Y
// by Newton's method on the CAM16 lightness J. It returns false when no
// in-gamut color was found within 5 rounds, in which case the caller
// falls back to [bisectToLimit].
func findResultByJ(hueRad, chroma, y float64) (uint32, bool) {
	vw := stdView
	// Initial estimate of j.
	j := math.Sqrt(y) * 11

	tInnerCoeff := 1 / math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)
	eHue := 0.25 * (math.Cos(hueRad+2) + 3.8)
	p1 := eHue * (50000 / 13.0) * vw.NC * vw.NCB
	hSin, hCos := math.Sincos(hueRad)
	for round := range 5 {
		jNorm := j / 100
		alpha := 0.0
		if chroma != 0 && j != 0 {
			alpha = chroma / math.Sqrt(jNorm)
		}
		t := math.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403

		scaled := f64.Vec3{
			cam16.InverseChromaticAdapt(rA),
			cam16.InverseChromaticAdapt(gA),
			cam16.InverseChromaticAdapt(bA),
		}
		linrgb := math64.MatMul(scaled, kLinrgbFromScaledDiscount)
		if linrgb[0] < 0 || linrgb[1] < 0 || linrgb[2] < 0 {
			return 0, false
		}
		fnj := kYFromLinrgb[0]*linrgb[0] + kYFromLinrgb[1]*linrgb[1] + kYFromLinrgb[2]*linrgb[2]
		if fnj <= 0 {
			return 0, false
		}
		if round == 4 || math.Abs(fnj-y) < 0.002 {
			if linrgb[0] > 100.01 || linrgb[1] > 100.01 || linrgb[2] > 100.01 {
				return 0, false
			}
			return cie.ARGBFromLinear(linrgb), true
		}
		// Iterates with Newton method,
		// using 2 * fn(j) / j as the approximation of fn'(j)
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}
