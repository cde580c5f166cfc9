// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 provides the float64 scalar, angle, and 3x3 matrix helpers
// shared by the color science packages. Vectors and matrices use the
// [f64.Vec3] and [f64.Mat3] types, with matrices stored in row-major order.
package math64

import (
	"cmp"
	"math"

	"golang.org/x/image/math/f64"
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// Signum returns -1 if x < 0, 0 if x == 0, and 1 otherwise.
// Unlike a plain sign function it keeps 0 as 0, which the
// inverse color appearance transforms depend on.
func Signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return 1
	}
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// SanitizeDegrees returns the given angle in degrees wrapped
// into the range [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeDegreesInt is the integer version of [SanitizeDegrees].
func SanitizeDegreesInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians returns the given angle in radians wrapped
// into the range [0, 2π).
func SanitizeRadians(rad float64) float64 {
	return math.Mod(rad+math.Pi*8, math.Pi*2)
}

// DifferenceDegrees returns the shortest distance in degrees
// between the two angles, in [0, 180].
func DifferenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// RotationDirection returns 1 if the shortest way from the from angle
// to the to angle (both in degrees) is to increase it, and -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

// InCyclicOrder returns whether b is strictly between a and c going
// counterclockwise around the circle. All angles are in radians.
func InCyclicOrder(a, b, c float64) bool {
	return SanitizeRadians(b-a) < SanitizeRadians(c-a)
}

// MatMul returns the product of the row-major matrix m and the column vector v.
func MatMul(v f64.Vec3, m f64.Mat3) f64.Vec3 {
	return f64.Vec3{
		v[0]*m[0] + v[1]*m[1] + v[2]*m[2],
		v[0]*m[3] + v[1]*m[4] + v[2]*m[5],
		v[0]*m[6] + v[1]*m[7] + v[2]*m[8],
	}
}

// LerpVec3 returns the linear interpolation between the two vectors
// in proportion to amount.
func LerpVec3(a, b f64.Vec3, amount float64) f64.Vec3 {
	return f64.Vec3{
		Lerp(a[0], b[0], amount),
		Lerp(a[1], b[1], amount),
		Lerp(a[2], b[2], amount),
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}
