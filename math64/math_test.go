// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

func TestAngles(t *testing.T) {
	tolassert.Equal(t, math.Pi, DegToRad(180))
	tolassert.Equal(t, 90, RadToDeg(math.Pi/2))

	assert.Equal(t, 30.0, SanitizeDegrees(390))
	assert.Equal(t, 350.0, SanitizeDegrees(-10))
	assert.Equal(t, 0.0, SanitizeDegrees(360))
	assert.Equal(t, 359, SanitizeDegreesInt(-1))
	assert.Equal(t, 5, SanitizeDegreesInt(725))
	tolassert.Equal(t, math.Pi, SanitizeRadians(-math.Pi))

	assert.Equal(t, 20.0, DifferenceDegrees(350, 10))
	assert.Equal(t, 180.0, DifferenceDegrees(0, 180))
	assert.Equal(t, 1.0, RotationDirection(350, 10))
	assert.Equal(t, -1.0, RotationDirection(10, 350))

	assert.True(t, InCyclicOrder(0, 1, 2))
	assert.False(t, InCyclicOrder(0, 2, 1))
	assert.True(t, InCyclicOrder(6, 0.1, 0.5))
}

func TestScalar(t *testing.T) {
	assert.Equal(t, -1.0, Signum(-3))
	assert.Equal(t, 0.0, Signum(0))
	assert.Equal(t, 1.0, Signum(0.2))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
	assert.Equal(t, 1.0, Clamp(3.0, 0, 1))
	assert.Equal(t, 0, Clamp(-3, 0, 100))
}

func TestMatMul(t *testing.T) {
	id := f64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	v := f64.Vec3{1, 2, 3}
	assert.Equal(t, v, MatMul(v, id))
	m := f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, f64.Vec3{14, 32, 50}, MatMul(v, m))
	assert.Equal(t, f64.Vec3{2, 3, 4}, Midpoint(v, f64.Vec3{3, 4, 5}))
	assert.Equal(t, f64.Vec3{1.5, 2.5, 3.5}, LerpVec3(v, f64.Vec3{2, 3, 4}, 0.5))
}
