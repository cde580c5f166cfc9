// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides tonal palettes, which are the colors of
// one hue and chroma across the full range of tones.
package palette

import (
	"image"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/hct"
)

// Tonal contains cached color values for each tone of a key color.
// To get a tonal value, use [Tonal.Tone]. It is not safe for
// concurrent use.
type Tonal struct {

	// Hue is the hue of all of the tones.
	Hue float64

	// Chroma is the requested chroma of all of the tones.
	// Tones that can not reach it are as chromatic as possible.
	Chroma float64

	// KeyColor is the key color used to generate the tones.
	KeyColor uint32

	// the cached map of tonal color values
	tones map[int]uint32
}

// NewTonal returns a new [Tonal] palette with the given hue and chroma.
func NewTonal(hue, chroma float64) *Tonal {
	return &Tonal{
		Hue:      hue,
		Chroma:   chroma,
		KeyColor: hct.Solve(hue, chroma, 50),
		tones:    map[int]uint32{},
	}
}

// NewTonalFromARGB returns a new [Tonal] palette with the
// hue and chroma of the given color.
func NewTonalFromARGB(argb uint32) *Tonal {
	h := hct.FromARGB(argb)
	return &Tonal{
		Hue:      h.Hue,
		Chroma:   h.Chroma,
		KeyColor: argb,
		tones:    map[int]uint32{},
	}
}

// Tone returns the color at the given tone on a scale of 0 to 100.
// It uses the cached value if it exists, and caches it if not.
func (t *Tonal) Tone(tone int) uint32 {
	if c, ok := t.tones[tone]; ok {
		return c
	}
	if t.tones == nil {
		t.tones = map[int]uint32{}
	}
	c := hct.Solve(t.Hue, t.Chroma, float64(tone))
	t.tones[tone] = c
	return c
}

// ToneUniform returns [image.Uniform] of [Tonal.Tone].
func (t *Tonal) ToneUniform(tone int) *image.Uniform {
	return image.NewUniform(cie.ARGBToColor(t.Tone(tone)))
}

// StandardTones are the tones shown for a palette by default.
var StandardTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// Tones returns the colors at each of the given tones,
// or at [StandardTones] if none are given.
func (t *Tonal) Tones(tones ...int) []uint32 {
	if len(tones) == 0 {
		tones = StandardTones
	}
	res := make([]uint32, len(tones))
	for i, tone := range tones {
		res[i] = t.Tone(tone)
	}
	return res
}
