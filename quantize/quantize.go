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

// Package quantize reduces a list of ARGB pixels to a small number of
// representative colors with their pixel populations. [Celebi] is the
// standard quantizer, which refines the boxes found by [Wu] with the
// weighted k-means clustering of [WSMeans].
package quantize

import (
	"cmp"
	"slices"
)

// Quantizer is implemented by all of the color quantizers.
type Quantizer interface {

	// Quantize returns at most maxColors representative colors of the
	// given pixels. It returns an empty result for no pixels or a
	// non-positive maxColors.
	Quantize(pixels []uint32, maxColors int) Result
}

// Result is the result of a quantization.
type Result struct {

	// Colors maps each representative color to its pixel population.
	Colors map[uint32]int

	// Mapping maps each input pixel color to the representative color
	// that it was assigned to. It is only set by the clustering quantizers.
	Mapping map[uint32]uint32
}

// newResult returns an empty result with an allocated Colors map.
func newResult() Result {
	return Result{Colors: map[uint32]int{}}
}

// Total returns the total population of all of the colors.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Colors {
		n += c
	}
	return n
}

// ByPopulation returns the colors sorted by descending population,
// with ties in ascending ARGB order.
func (r Result) ByPopulation() []uint32 {
	colors := make([]uint32, 0, len(r.Colors))
	for c := range r.Colors {
		colors = append(colors, c)
	}
	slices.SortFunc(colors, func(a, b uint32) int {
		if c := cmp.Compare(r.Colors[b], r.Colors[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return colors
}
