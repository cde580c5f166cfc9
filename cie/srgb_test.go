// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.Equal(t, 0.23302202, SRGBToLinearComp(0.52))

	tolassert.Equal(t, 0.012920001, SRGBFromLinearComp(0.001))
	tolassert.Equal(t, 0.84338915, SRGBFromLinearComp(0.68))

	tolassert.Equal(t, 0, Linearize(0))
	tolassert.Equal(t, 100, Linearize(255))
	tolassert.Equal(t, 21.586050, Linearize(128))

	assert.Equal(t, uint8(0), Delinearize(-5))
	assert.Equal(t, uint8(255), Delinearize(120))
	tolassert.Equal(t, 255, TrueDelinearized(100))
	for c := 0; c < 256; c++ {
		assert.Equal(t, uint8(c), Delinearize(Linearize(uint8(c))))
	}
}

func TestXYZ(t *testing.T) {
	red := SRGBLinToXYZ(f64.Vec3{100, 0, 0})
	tolassert.Equal(t, 41.233895, red[0])
	tolassert.Equal(t, 21.26, red[1])
	tolassert.Equal(t, 1.9330819, red[2])

	white := SRGBLinToXYZ(f64.Vec3{100, 100, 100})
	for i := range 3 {
		tolassert.EqualTol(t, WhiteD65[i], white[i], 0.01)
	}

	lin := XYZToSRGBLin(f64.Vec3{20, 30, 40})
	xyz := SRGBLinToXYZ(lin)
	tolassert.Equal(t, 20, xyz[0])
	tolassert.Equal(t, 30, xyz[1])
	tolassert.Equal(t, 40, xyz[2])
}
