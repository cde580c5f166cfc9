// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"golang.org/x/image/math/f64"

	"cogentcore.org/matcolor/math64"
)

// SRGBLinToXYZ converts linear sRGB (0-100) into 100-based XYZ.
func SRGBLinToXYZ(lin f64.Vec3) f64.Vec3 {
	return math64.MatMul(lin, SRGBToXYZMatrix)
}

// XYZToSRGBLin converts 100-based XYZ into linear sRGB (0-100).
func XYZToSRGBLin(xyz f64.Vec3) f64.Vec3 {
	return math64.MatMul(xyz, XYZToSRGBMatrix)
}
