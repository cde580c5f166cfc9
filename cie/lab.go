// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"golang.org/x/image/math/f64"
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts a color from 100-based XYZ to L*a*b*
// coordinates, relative to the [WhiteD65] white point.
func XYZToLAB(xyz f64.Vec3) (l, a, b float64) {
	fx := LABCompress(xyz[0] / WhiteD65[0])
	fy := LABCompress(xyz[1] / WhiteD65[1])
	fz := LABCompress(xyz[2] / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to 100-based XYZ
// coordinates, relative to the [WhiteD65] white point.
func LABToXYZ(l, a, b float64) f64.Vec3 {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	return f64.Vec3{
		LABUncompress(fx) * WhiteD65[0],
		LABUncompress(fy) * WhiteD65[1],
		LABUncompress(fz) * WhiteD65[2],
	}
}

// LToY converts an L* value (0-100) to the relative luminance Y
// that it represents (0-100). L* is a perceptually uniform measure of
// lightness, while Y is linear in the amount of light.
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a relative luminance Y (0-100) to
// the L* value (0-100) that it represents.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}
