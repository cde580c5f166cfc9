// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"image/color"
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestARGBChannels(t *testing.T) {
	c := ARGBFromRGBA(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, uint32(0x78123456), c)
	assert.Equal(t, uint8(0x78), Alpha(c))
	r, g, b := ARGBToRGB(c)
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)
	assert.False(t, IsOpaque(c))
	assert.True(t, IsOpaque(ARGBFromRGB(1, 2, 3)))
}

func TestARGBLstar(t *testing.T) {
	tolassert.Equal(t, 100, LstarFromARGB(0xffffffff))
	tolassert.Equal(t, 0, LstarFromARGB(0xff000000))
	assert.Equal(t, uint32(0xff777777), ARGBFromLstar(50))
	assert.Equal(t, uint32(0xff000000), ARGBFromLstar(0))
	assert.Equal(t, uint32(0xffffffff), ARGBFromLstar(100))
	for _, c := range []uint32{0xff000000, 0xff404040, 0xff777777, 0xffc0c0c0, 0xffffffff} {
		assert.Equal(t, c, ARGBFromLstar(LstarFromARGB(c)))
	}
}

func TestARGBRoundTrip(t *testing.T) {
	for _, c := range []uint32{0xff4285f4, 0xffff0000, 0xff00ff00, 0xff0000ff, 0xff123456} {
		assert.Equal(t, c, ARGBFromXYZ(ARGBToXYZ(c)))
		assert.Equal(t, c, ARGBFromLAB(ARGBToLAB(c)))
		assert.Equal(t, c, ARGBFromLinear(ARGBToLinear(c)))
	}
}

func TestARGBColor(t *testing.T) {
	assert.Equal(t, uint32(0x80ff0000), ARGBFromColor(color.RGBA{128, 0, 0, 128}))
	assert.Equal(t, uint32(0xff4285f4), ARGBFromColor(color.RGBA{0x42, 0x85, 0xf4, 0xff}))
	assert.Equal(t, color.RGBA{0x42, 0x85, 0xf4, 0xff}, ARGBToColor(0xff4285f4))
	assert.Equal(t, color.RGBA{}, ARGBToColor(0x00ffffff))
}

func TestARGBHex(t *testing.T) {
	assert.Equal(t, "#4285f4", ARGBToHex(0xff4285f4))

	c, err := ARGBFromHex("#4285f4")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xff4285f4), c)

	c, err = ARGBFromHex("f0c")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xffff00cc), c)

	c, err = ARGBFromHex("#804285f4")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x804285f4), c)

	_, err = ARGBFromHex("#12345")
	assert.Error(t, err)
	_, err = ARGBFromHex("#zzzzzz")
	assert.Error(t, err)
}
