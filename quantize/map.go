// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

// Map is a [Quantizer] that counts the exact colors of the pixels,
// keeping the maxColors most common ones.
type Map struct{}

// Histogram returns the number of pixels of each exact color.
func Histogram(pixels []uint32) map[uint32]int {
	counts := map[uint32]int{}
	for _, px := range pixels {
		counts[px]++
	}
	return counts
}

func (Map) Quantize(pixels []uint32, maxColors int) Result {
	res := newResult()
	if maxColors <= 0 || len(pixels) == 0 {
		return res
	}
	res.Colors = Histogram(pixels)
	if len(res.Colors) <= maxColors {
		return res
	}
	for _, c := range res.ByPopulation()[maxColors:] {
		delete(res.Colors, c)
	}
	return res
}
