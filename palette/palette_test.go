// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"cogentcore.org/matcolor/cie"
	"cogentcore.org/matcolor/hct"
	"github.com/stretchr/testify/assert"
)

func TestTonal(t *testing.T) {
	p := NewTonalFromARGB(0xff0000ff)
	assert.Equal(t, uint32(0xff000000), p.Tone(0))
	assert.Equal(t, uint32(0xffffffff), p.Tone(100))

	for _, tone := range StandardTones[1 : len(StandardTones)-1] {
		c := p.Tone(tone)
		assert.InDelta(t, float64(tone), cie.LstarFromARGB(c), 0.5, "tone %d", tone)
		if h := hct.FromARGB(c); h.Chroma > 20 {
			assert.InDelta(t, p.Hue, h.Hue, 4, "tone %d", tone)
		}
	}
	assert.Len(t, p.Tones(), len(StandardTones))
	assert.Equal(t, []uint32{p.Tone(40), p.Tone(80)}, p.Tones(40, 80))
}

func TestTonalCache(t *testing.T) {
	p := NewTonal(270, 36)
	c := p.Tone(40)
	assert.Equal(t, c, p.tones[40])
	p.tones[40] = 0xff123456
	assert.Equal(t, uint32(0xff123456), p.Tone(40))

	var zero Tonal
	zero.Hue, zero.Chroma = 270, 36
	assert.Equal(t, c, zero.Tone(40))
}

func TestToneUniform(t *testing.T) {
	p := NewTonal(120, 40)
	r, g, b, a := p.ToneUniform(60).RGBA()
	want := cie.ARGBToColor(p.Tone(60))
	assert.Equal(t, uint32(want.R)*0x101, r)
	assert.Equal(t, uint32(want.G)*0x101, g)
	assert.Equal(t, uint32(want.B)*0x101, b)
	assert.Equal(t, uint32(0xffff), a)
}
