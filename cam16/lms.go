// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"

	"cogentcore.org/matcolor/math64"
	"golang.org/x/image/math/f64"
)

// XYZToLMSMatrix converts 100-based XYZ coordinates into
// CAM16 cone ('rgb') responses.
var XYZToLMSMatrix = f64.Mat3{
	0.401288, 0.650173, -0.051461,
	-0.250268, 1.204414, 0.045854,
	-0.002079, 0.048952, 0.953127,
}

// LMSToXYZMatrix is the inverse of [XYZToLMSMatrix].
var LMSToXYZMatrix = f64.Mat3{
	1.8620678, -1.0112547, 0.14918678,
	0.38752654, 0.62144744, -0.00897398,
	-0.01584150, -0.03412294, 1.0499644,
}

// XYZToLMS converts XYZ to CAM16 cone responses.
func XYZToLMS(xyz f64.Vec3) f64.Vec3 {
	return math64.MatMul(xyz, XYZToLMSMatrix)
}

// LMSToXYZ converts CAM16 cone responses to XYZ.
func LMSToXYZ(lms f64.Vec3) f64.Vec3 {
	return math64.MatMul(lms, LMSToXYZMatrix)
}

// AdaptComp applies the post-adaptation nonlinear compression
// to a single discounted cone response, with luminance-level
// adaptation factor fl.
func AdaptComp(v, fl float64) float64 {
	af := math.Pow(fl*math.Abs(v)/100, 0.42)
	return math64.Signum(v) * 400 * af / (af + 27.13)
}

// InverseAdaptComp is the inverse of [AdaptComp].
func InverseAdaptComp(adapted, fl float64) float64 {
	return (100 / fl) * InverseChromaticAdapt(adapted)
}

// InverseChromaticAdapt undoes the compression of [AdaptComp],
// leaving the result scaled by fl / 100.
func InverseChromaticAdapt(adapted float64) float64 {
	abs := math.Abs(adapted)
	base := max(0, 27.13*abs/(400-abs))
	return math64.Signum(adapted) * math.Pow(base, 1/0.42)
}
