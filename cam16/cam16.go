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

// Package cam16 implements the CAM16 color appearance model, which predicts
// the perceived hue, colorfulness, and brightness of a color under given
// viewing conditions.
package cam16

import (
	"math"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/math64"
	"golang.org/x/image/math/f64"
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments.
// It also holds the CAM16-UCS coordinates, in which euclidean
// distance approximates perceived color difference.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64

	// JStar is the CAM16-UCS lightness
	JStar float64

	// AStar is the CAM16-UCS red-green coordinate
	AStar float64

	// BStar is the CAM16-UCS yellow-blue coordinate
	BStar float64
}

// newCAM returns a CAM with the given main attributes and
// the UCS coordinates derived from them.
func newCAM(hue, chroma, j, q, m, s float64) *CAM {
	cam := &CAM{Hue: hue, Chroma: chroma, Lightness: j, Brightness: q, Colorfulness: m, Saturation: s}
	cam.JStar = (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := math.Log1p(0.0228*m) / 0.0228
	hr := math64.DegToRad(hue)
	cam.AStar = mstar * math.Cos(hr)
	cam.BStar = mstar * math.Sin(hr)
	return cam
}

// FromARGB returns CAM values for the given ARGB color,
// under standard viewing conditions. Alpha is ignored.
func FromARGB(argb uint32) *CAM {
	return FromARGBView(argb, stdView)
}

// FromARGBView returns CAM values for the given ARGB color,
// under the given viewing conditions. Alpha is ignored.
func FromARGBView(argb uint32, vw *View) *CAM {
	return FromXYZView(cie.ARGBToXYZ(argb), vw)
}

// FromXYZ returns CAM values from given XYZ color coordinate,
// under standard viewing conditions
func FromXYZ(xyz f64.Vec3) *CAM {
	return FromXYZView(xyz, stdView)
}

// FromXYZView returns CAM values from given XYZ color coordinate,
// under given viewing conditions. Requires 100-base XYZ coordinates.
func FromXYZView(xyz f64.Vec3, vw *View) *CAM {
	rgbA := vw.Adapt(XYZToLMS(xyz))
	rA, gA, bA := rgbA[0], rgbA[1], rgbA[2]

	// redness-greenness
	a := (11*rA + -12*gA + bA) / 11
	// yellowness-blueness
	b := (rA + gA - 2*bA) / 9

	// auxiliary components
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := math64.SanitizeDegrees(math64.RadToDeg(math.Atan2(b, a)))

	// achromatic response to color
	ac := p2 * vw.NBB

	// CAM16 lightness and brightness
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(math64.DegToRad(huePrime)+2) + 3.8)
	p1 := 50000 / 13.0 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	// CAM16 chroma, colorfulness, saturation
	c := alpha * math.Sqrt(j/100)
	m := c * vw.FLRoot
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return newCAM(hue, c, j, q, m, s)
}

// FromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under standard viewing condition
func FromJCH(j, c, h float64) *CAM {
	return FromJCHView(j, c, h, stdView)
}

// FromJCHView returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions
func FromJCHView(j, c, h float64, vw *View) *CAM {
	q := (4 / vw.C) * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	m := c * vw.FLRoot
	alpha := c / math.Sqrt(j/100)
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return newCAM(h, c, j, q, m, s)
}

// FromUCS returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), under standard viewing conditions
func FromUCS(jstar, astar, bstar float64) *CAM {
	return FromUCSView(jstar, astar, bstar, stdView)
}

// FromUCSView returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), using the given viewing conditions
func FromUCSView(jstar, astar, bstar float64, vw *View) *CAM {
	m := math.Hypot(astar, bstar)
	M := math.Expm1(m*0.0228) / 0.0228
	c := M / vw.FLRoot
	h := math64.SanitizeDegrees(math64.RadToDeg(math.Atan2(bstar, astar)))
	j := jstar / (1 - (jstar-100)*0.007)
	return FromJCHView(j, c, h, vw)
}

// XYZ returns the CAM color as XYZ coordinates
// under standard viewing conditions.
// Returns 100-base XYZ coordinates.
func (cam *CAM) XYZ() f64.Vec3 {
	return cam.XYZView(stdView)
}

// XYZView returns the CAM color as XYZ coordinates
// under the given viewing conditions.
// Returns 100-base XYZ coordinates.
func (cam *CAM) XYZView(vw *View) f64.Vec3 {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}

	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.N), 0.73), 1/0.9)
	hRad := math64.DegToRad(cam.Hue)

	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000 / 13.0) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin, hCos := math.Sincos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	lms := f64.Vec3{
		InverseAdaptComp(rA, vw.FL) / vw.RGBD[0],
		InverseAdaptComp(gA, vw.FL) / vw.RGBD[1],
		InverseAdaptComp(bA, vw.FL) / vw.RGBD[2],
	}
	return LMSToXYZ(lms)
}

// ARGB returns the CAM color as an opaque ARGB color under
// standard viewing conditions, clamped to the sRGB gamut.
func (cam *CAM) ARGB() uint32 {
	return cam.ARGBView(stdView)
}

// ARGBView returns the CAM color as an opaque ARGB color under
// the given viewing conditions, clamped to the sRGB gamut.
func (cam *CAM) ARGBView(vw *View) uint32 {
	return cie.ARGBFromXYZ(cam.XYZView(vw))
}

// Distance returns the perceptual color difference between the two
// colors, based on euclidean distance in CAM16-UCS.
func (cam *CAM) Distance(other *CAM) float64 {
	dj := cam.JStar - other.JStar
	da := cam.AStar - other.AStar
	db := cam.BStar - other.BStar
	de := math.Sqrt(dj*dj + da*da + db*db)
	return 1.41 * math.Pow(de, 0.63)
}

// stdView is the standard viewing conditions used by the
// functions that do not take a [View].
var stdView = NewStdView()
