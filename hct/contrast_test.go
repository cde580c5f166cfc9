// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestContrastRatio(t *testing.T) {
	type data struct {
		a    color.Color
		b    color.Color
		want float64
	}
	tests := []data{
		{color.White, color.Black, 21},
		{color.Black, color.White, 21},
		{color.RGBA{100, 100, 100, 255}, color.RGBA{100, 100, 100, 255}, 1},
		{color.RGBA{0, 0, 255, 255}, color.RGBA{255, 255, 255, 255}, 8.59},
	}
	for i, test := range tests {
		res := ContrastRatio(test.a, test.b)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
	}
}

func TestToneContrastRatio(t *testing.T) {
	type data struct {
		a    float64
		b    float64
		want float64
	}
	tests := []data{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{100, 32.302586, 8.59},
		{-10, 120, 21},
	}
	for i, test := range tests {
		res := ToneContrastRatio(test.a, test.b)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
	}
}

func TestContrastColor(t *testing.T) {
	type data struct {
		color color.Color
		ratio float64
		want  color.RGBA
	}
	tests := []data{
		{color.RGBA{0, 0, 0, 255}, 21, color.RGBA{255, 255, 255, 255}},
		{color.RGBA{255, 255, 255, 255}, 21, color.RGBA{0, 0, 0, 255}},
		{color.RGBA{0, 0, 255, 255}, 8.59, color.RGBA{255, 255, 255, 255}},
	}
	for i, test := range tests {
		res := ContrastColor(test.color, test.ratio)
		assert.Equal(t, test.want, res, i)
	}
}

func TestContrastColorTry(t *testing.T) {
	res, ok := ContrastColorTry(color.RGBA{150, 200, 255, 255}, 21)
	assert.False(t, ok)
	assert.Equal(t, color.RGBA{}, res)

	res, ok = ContrastColorTry(color.RGBA{20, 40, 90, 255}, 4.5)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ContrastRatio(color.RGBA{20, 40, 90, 255}, res), 4.5-0.04)
}

func TestContrastTone(t *testing.T) {
	type data struct {
		tone  float64
		ratio float64
		want  float64
	}
	tests := []data{
		{0, 21, 100},
		{100, 21, 0},
		{50, 1, 50.4},
		{90, 4.5, 42.4647},
		{20, 3, 51.05},
	}
	for i, test := range tests {
		res := ContrastTone(test.tone, test.ratio)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
	}
}

func TestContrastToneTry(t *testing.T) {
	type data struct {
		tone  float64
		ratio float64
		want  float64
		ok    bool
	}
	tests := []data{
		{0, 21, -1, false},
		{60, 18, -1, false},
		{50, 1, 50.4, true},
		{90, 4.5, 42.4647, true},
	}
	for i, test := range tests {
		res, ok := ContrastToneTry(test.tone, test.ratio)
		assert.Equal(t, test.ok, ok, i)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
	}
}

func TestContrastToneLighter(t *testing.T) {
	type data struct {
		tone  float64
		ratio float64
		want  float64
		ok    bool
	}
	tests := []data{
		{0, 21, -1, false},
		{100, 21, -1, false},
		{50, 1, 50.4, true},
		{20, 3, 51.05, true},
		{-5, 3, -1, false},
	}
	for i, test := range tests {
		res, ok := ContrastToneLighterTry(test.tone, test.ratio)
		assert.Equal(t, test.ok, ok, i)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
		if !ok {
			assert.Equal(t, 100.0, ContrastToneLighter(test.tone, test.ratio), i)
		}
	}
}

func TestContrastToneDarker(t *testing.T) {
	type data struct {
		tone  float64
		ratio float64
		want  float64
		ok    bool
	}
	tests := []data{
		{100, 21, -1, false},
		{0, 21, -1, false},
		{50, 1, 49.6, true},
		{90, 4.5, 42.4647, true},
	}
	for i, test := range tests {
		res, ok := ContrastToneDarkerTry(test.tone, test.ratio)
		assert.Equal(t, test.ok, ok, i)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
		if !ok {
			assert.Equal(t, 0.0, ContrastToneDarker(test.tone, test.ratio), i)
		}
	}
}
