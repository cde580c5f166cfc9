// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"cogentcore.org/matcolor/cie"
	"golang.org/x/image/math/f64"
)

// PointProvider converts colors to and from the points of a
// color space in which the clustering quantizers measure distance.
type PointProvider interface {

	// FromARGB returns the point for the given color.
	FromARGB(argb uint32) f64.Vec3

	// ToARGB returns the opaque color of the given point.
	ToARGB(p f64.Vec3) uint32

	// Distance returns a measure of the distance between two points.
	// It only needs to be monotonic in the true distance.
	Distance(a, b f64.Vec3) float64
}

// LabPoints is a [PointProvider] for the L*a*b* color space.
type LabPoints struct{}

func (LabPoints) FromARGB(argb uint32) f64.Vec3 {
	l, a, b := cie.ARGBToLAB(argb)
	return f64.Vec3{l, a, b}
}

func (LabPoints) ToARGB(p f64.Vec3) uint32 {
	return cie.ARGBFromLAB(p[0], p[1], p[2])
}

// Distance returns the squared euclidean distance.
func (LabPoints) Distance(a, b f64.Vec3) float64 {
	dl := a[0] - b[0]
	da := a[1] - b[1]
	db := a[2] - b[2]
	return dl*dl + da*da + db*db
}
