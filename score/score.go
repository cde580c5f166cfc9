// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package score ranks the colors of a quantized image by how suitable
// they are as the source color of a user interface theme.
package score

import (
	"cmp"
	"math"
	"slices"

	"cogentcore.org/matcolor/hct"
	"cogentcore.org/matcolor/math64"
)

const (
	// GoogleBlue is the default fallback color, returned when
	// none of the input colors are suitable.
	GoogleBlue uint32 = 0xff4285f4

	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 15.0
	cutoffTone              = 10.0
	cutoffExcitedProportion = 0.01

	// minHueDistance is the smallest hue difference in degrees
	// between two of the returned colors.
	minHueDistance = 15
)

// Options are the options for [Score].
type Options struct {

	// Desired is the maximum number of colors to return.
	// 0 means no limit.
	Desired int

	// Fallback is the color returned when no color is suitable.
	// 0 means [GoogleBlue].
	Fallback uint32

	// Filter removes colors that are too dark, too gray,
	// or too rare to be a good theme color.
	Filter bool
}

// DefaultOptions returns the default [Options]: at most 4 filtered colors,
// falling back on [GoogleBlue].
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: GoogleBlue, Filter: true}
}

// scored is a color with its HCT value and score.
type scored struct {
	argb    uint32
	hct     hct.HCT
	excited float64
	score   float64
}

// Score returns the given colors, which map to their populations,
// sorted by their suitability as a theme color, most suitable first.
// Colors with a large share of the pixels around their hue and colors
// close to or above the chroma of a typical theme color score highest.
// Colors whose hue is within 15 degrees of a better one are dropped.
// It always returns at least one color.
func Score(colors map[uint32]int, opts Options) []uint32 {
	fallback := opts.Fallback
	if fallback == 0 {
		fallback = GoogleBlue
	}
	total := 0
	for _, n := range colors {
		total += n
	}
	if total <= 0 {
		return []uint32{fallback}
	}

	cands := make([]scored, 0, len(colors))
	var huePopulations [360]int
	for c, n := range colors {
		h := hct.FromARGB(c)
		cands = append(cands, scored{argb: c, hct: h})
		huePopulations[roundHue(h.Hue)] += n
	}
	for i := range cands {
		sc := &cands[i]
		hue := roundHue(sc.hct.Hue)
		excited := 0
		for nb := hue - 15; nb < hue+15; nb++ {
			excited += huePopulations[math64.SanitizeDegreesInt(nb)]
		}
		sc.excited = float64(excited) / float64(total)
		weight := weightChromaBelow
		if sc.hct.Chroma >= targetChroma {
			weight = weightChromaAbove
		}
		sc.score = sc.excited*100*weightProportion + (sc.hct.Chroma-targetChroma)*weight
	}

	if opts.Filter {
		cands = slices.DeleteFunc(cands, func(sc scored) bool {
			return sc.hct.Chroma < cutoffChroma || sc.hct.Tone < cutoffTone || sc.excited < cutoffExcitedProportion
		})
	}
	slices.SortFunc(cands, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.argb, b.argb)
	})

	var chosen []scored
	for _, sc := range cands {
		if opts.Desired > 0 && len(chosen) >= opts.Desired {
			break
		}
		dup := slices.ContainsFunc(chosen, func(o scored) bool {
			return math64.DifferenceDegrees(sc.hct.Hue, o.hct.Hue) < minHueDistance
		})
		if !dup {
			chosen = append(chosen, sc)
		}
	}
	if len(chosen) == 0 {
		return []uint32{fallback}
	}
	res := make([]uint32, len(chosen))
	for i, sc := range chosen {
		res[i] = sc.argb
	}
	return res
}

// roundHue returns the hue rounded to a whole degree in [0, 360).
func roundHue(hue float64) int {
	return math64.SanitizeDegreesInt(int(math.Round(hue)))
}
