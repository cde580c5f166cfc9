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

package cam16

import (
	"math"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/math64"
	"golang.org/x/image/math/f64"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
// A View is computed once by [NewView] and must not be modified afterwards.
type View struct {

	// WhitePoint is the white point illumination, typically [cie.WhiteD65].
	WhitePoint f64.Vec3

	// AdaptingLuminance is the luminance of the adapting field in cd/m^2.
	AdaptingLuminance float64

	// BgLstar is the L* of the average luminance of 10 degrees around the color in question.
	BgLstar float64

	// Surround is the brightness of the entire environment, in the 0-2 range.
	Surround float64

	// Discounting is whether the person's eyes have adapted to the lighting.
	Discounting bool

	// N is the ratio of background relative luminance to white relative luminance.
	N float64

	// AW is the achromatic response to the white point.
	AW float64

	// NBB is the brightness luminance level induction factor.
	NBB float64

	// NCB is the chromatic luminance level induction factor.
	NCB float64

	// C is the exponential nonlinearity.
	C float64

	// NC is the chromatic induction factor.
	NC float64

	// FL is the luminance-level adaptation factor.
	FL float64

	// FLRoot is FL to the 1/4 power.
	FLRoot float64

	// Z is the base exponential nonlinearity.
	Z float64

	// RGBD are the cone responses to the white point, adjusted for discounting.
	RGBD f64.Vec3
}

// NewView returns a new view with all derived parameters
// computed from the given major parameters.
func NewView(whitePoint f64.Vec3, adaptingLuminance, bgLstar, surround float64, discounting bool) *View {
	vw := &View{
		WhitePoint:        whitePoint,
		AdaptingLuminance: adaptingLuminance,
		// A background of pure black is non-physical and leads to infinities that
		// represent the idea that any color viewed in pure black can't be seen.
		BgLstar:     max(0.1, bgLstar),
		Surround:    math64.Clamp(surround, 0, 2),
		Discounting: discounting,
	}
	vw.update()
	return vw
}

// StdAdaptingLuminance is the adapting luminance of the standard viewing
// conditions: 200 lux, with a mid-gray (L* 50) gray world assumption.
var StdAdaptingLuminance = (200 / math.Pi) * cie.LToY(50) / 100

// NewStdView returns the standard viewing conditions: D65 white,
// [StdAdaptingLuminance], a background of L* 50, an average surround,
// and no discounting of the illuminant.
func NewStdView() *View {
	return NewViewBgLstar(50)
}

// NewViewBgLstar returns standard viewing conditions with the given background L*.
func NewViewBgLstar(bgLstar float64) *View {
	return NewView(cie.WhiteD65, StdAdaptingLuminance, bgLstar, 2, false)
}

// update computes the derived values based on the main parameters.
func (vw *View) update() {
	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rgbW := XYZToLMS(vw.WhitePoint)

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = math64.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = math64.Lerp(0.525, 0.59, (f-0.8)*10)
	}
	// Calculate degree of adaptation to illuminant
	d := 1.0
	if !vw.Discounting {
		d = f * (1 - ((1 / 3.6) * math.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = math64.Clamp(d, 0, 1)

	vw.NC = f

	// Cone responses to the white point, adjusted for discounting.
	// This uses 100 rather than the white point's relative luminance,
	// since later parts of the conversion account for that scaling.
	for i := range 3 {
		vw.RGBD[i] = d*(100/rgbW[i]) + 1 - d
	}

	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math.Cbrt(5*vw.AdaptingLuminance))
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.N = cie.LToY(vw.BgLstar) / vw.WhitePoint[1]

	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(vw.N)

	vw.NBB = 0.725 / math.Pow(vw.N, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	a := vw.Adapt(rgbW)
	vw.AW = ((2*a[0] + a[1] + 0.05*a[2]) * vw.NBB)
}

// Adapt applies the discounting gains and the post-adaptation
// compression to the given cone responses.
func (vw *View) Adapt(lms f64.Vec3) f64.Vec3 {
	var a f64.Vec3
	for i := range 3 {
		a[i] = AdaptComp(lms[i]*vw.RGBD[i], vw.FL)
	}
	return a
}
