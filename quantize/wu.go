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

package quantize

import (
	"math"

	"cogentcore.org/matcolor/cie"
)

// Wu is a [Quantizer] implementing Xiaolin Wu's greedy orthogonal
// bipartition of RGB space, which repeatedly cuts the box of colors
// with the largest variance at the point that best reduces it.
// The population of each color is the number of pixels in its box.
type Wu struct{}

const (
	// wuIndexBits is the number of bits kept per channel in the histogram.
	wuIndexBits = 5

	// wuIndexCount is the number of histogram cells per axis,
	// with a leading zero cell for the cumulative moments.
	wuIndexCount = (1 << wuIndexBits) + 1

	// wuTotalSize is the number of cells in the histogram cube.
	wuTotalSize = wuIndexCount * wuIndexCount * wuIndexCount
)

// direction is an axis of the RGB cube.
type direction int

const (
	red direction = iota
	green
	blue
)

// box is a box of histogram cells, exclusive of r0, g0, b0
// and inclusive of r1, g1, b1.
type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// wuCube holds the cumulative moments of one quantization.
type wuCube struct {
	weights  []int
	momentsR []int
	momentsG []int
	momentsB []int
	moments  []float64
	boxes    []box
}

func (Wu) Quantize(pixels []uint32, maxColors int) Result {
	res := newResult()
	colors, counts := Wu{}.Colors(pixels, maxColors)
	for i, c := range colors {
		res.Colors[c] += counts[i]
	}
	return res
}

// Colors returns the representative colors of the pixels and their
// populations, in the order the boxes were created.
func (Wu) Colors(pixels []uint32, maxColors int) (colors []uint32, counts []int) {
	if maxColors <= 0 || len(pixels) == 0 {
		return nil, nil
	}
	wc := &wuCube{}
	wc.histogram(Histogram(pixels))
	wc.cumulate()
	n := wc.createBoxes(maxColors)
	for _, bx := range wc.boxes[:n] {
		weight := wc.volume(&bx, wc.weights)
		if weight <= 0 {
			continue
		}
		w := float64(weight)
		r := math.Round(float64(wc.volume(&bx, wc.momentsR)) / w)
		g := math.Round(float64(wc.volume(&bx, wc.momentsG)) / w)
		b := math.Round(float64(wc.volume(&bx, wc.momentsB)) / w)
		colors = append(colors, cie.ARGBFromRGB(uint8(r), uint8(g), uint8(b)))
		counts = append(counts, weight)
	}
	return
}

// wuIndex returns the index of the given histogram cell.
func wuIndex(r, g, b int) int {
	return (r << (wuIndexBits * 2)) + (r << (wuIndexBits + 1)) + r + (g << wuIndexBits) + g + b
}

// histogram accumulates the exact color counts into the reduced cells.
func (wc *wuCube) histogram(counts map[uint32]int) {
	wc.weights = make([]int, wuTotalSize)
	wc.momentsR = make([]int, wuTotalSize)
	wc.momentsG = make([]int, wuTotalSize)
	wc.momentsB = make([]int, wuTotalSize)
	wc.moments = make([]float64, wuTotalSize)

	const shift = 8 - wuIndexBits
	for px, count := range counts {
		r, g, b := int(cie.Red(px)), int(cie.Green(px)), int(cie.Blue(px))
		idx := wuIndex((r>>shift)+1, (g>>shift)+1, (b>>shift)+1)
		wc.weights[idx] += count
		wc.momentsR[idx] += r * count
		wc.momentsG[idx] += g * count
		wc.momentsB[idx] += b * count
		wc.moments[idx] += float64(count * (r*r + g*g + b*b))
	}
}

// cumulate turns the histogram into a summed volume table,
// so that the moments of any box can be found from its 8 corners.
func (wc *wuCube) cumulate() {
	for r := 1; r < wuIndexCount; r++ {
		var area, areaR, areaG, areaB [wuIndexCount]int
		var area2 [wuIndexCount]float64
		for g := 1; g < wuIndexCount; g++ {
			line, lineR, lineG, lineB := 0, 0, 0, 0
			line2 := 0.0
			for b := 1; b < wuIndexCount; b++ {
				idx := wuIndex(r, g, b)
				line += wc.weights[idx]
				lineR += wc.momentsR[idx]
				lineG += wc.momentsG[idx]
				lineB += wc.momentsB[idx]
				line2 += wc.moments[idx]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				wc.weights[idx] = wc.weights[prev] + area[b]
				wc.momentsR[idx] = wc.momentsR[prev] + areaR[b]
				wc.momentsG[idx] = wc.momentsG[prev] + areaG[b]
				wc.momentsB[idx] = wc.momentsB[prev] + areaB[b]
				wc.moments[idx] = wc.moments[prev] + area2[b]
			}
		}
	}
}

// createBoxes cuts the cube into at most maxColors boxes,
// returning the number of boxes created.
func (wc *wuCube) createBoxes(maxColors int) int {
	wc.boxes = make([]box, maxColors)
	wc.boxes[0] = box{r1: wuIndexCount - 1, g1: wuIndexCount - 1, b1: wuIndexCount - 1}
	variances := make([]float64, maxColors)

	next := 0
	for i := 1; i < maxColors; i++ {
		if wc.cut(&wc.boxes[next], &wc.boxes[i]) {
			variances[next] = wc.boxVariance(&wc.boxes[next])
			variances[i] = wc.boxVariance(&wc.boxes[i])
		} else {
			variances[next] = 0
			i--
		}

		next = 0
		temp := variances[0]
		for j := 1; j <= i; j++ {
			if variances[j] > temp {
				temp = variances[j]
				next = j
			}
		}
		if temp <= 0 {
			return i + 1
		}
	}
	return maxColors
}

// boxVariance returns the variance of the colors in the box,
// or 0 for a box of a single cell.
func (wc *wuCube) boxVariance(bx *box) float64 {
	if bx.vol <= 1 {
		return 0
	}
	dr := float64(wc.volume(bx, wc.momentsR))
	dg := float64(wc.volume(bx, wc.momentsG))
	db := float64(wc.volume(bx, wc.momentsB))
	xx := wc.moments[wuIndex(bx.r1, bx.g1, bx.b1)] -
		wc.moments[wuIndex(bx.r1, bx.g1, bx.b0)] -
		wc.moments[wuIndex(bx.r1, bx.g0, bx.b1)] +
		wc.moments[wuIndex(bx.r1, bx.g0, bx.b0)] -
		wc.moments[wuIndex(bx.r0, bx.g1, bx.b1)] +
		wc.moments[wuIndex(bx.r0, bx.g1, bx.b0)] +
		wc.moments[wuIndex(bx.r0, bx.g0, bx.b1)] -
		wc.moments[wuIndex(bx.r0, bx.g0, bx.b0)]
	hypotenuse := dr*dr + dg*dg + db*db
	return xx - hypotenuse/float64(wc.volume(bx, wc.weights))
}

// cut splits one into two along the axis and position that maximize
// the variance reduction, returning false if one can not be cut.
func (wc *wuCube) cut(one, two *box) bool {
	wholeR := wc.volume(one, wc.momentsR)
	wholeG := wc.volume(one, wc.momentsG)
	wholeB := wc.volume(one, wc.momentsB)
	wholeW := wc.volume(one, wc.weights)

	maxR, cutR := wc.maximize(one, red, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	maxG, cutG := wc.maximize(one, green, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	maxB, cutB := wc.maximize(one, blue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir direction
	switch {
	case maxR >= maxG && maxR >= maxB:
		if cutR < 0 {
			return false
		}
		dir = red
	case maxG >= maxR && maxG >= maxB:
		dir = green
	default:
		dir = blue
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case red:
		one.r1 = cutR
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case green:
		one.g1 = cutG
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case blue:
		one.b1 = cutB
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}
	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

// maximize returns the largest sum of the between-halves variance terms
// for the cuts of the box along the given direction in [first, last),
// and the position of that cut, which is -1 if no cut is possible.
func (wc *wuCube) maximize(bx *box, dir direction, first, last, wholeR, wholeG, wholeB, wholeW int) (float64, int) {
	bottomR := wc.bottom(bx, dir, wc.momentsR)
	bottomG := wc.bottom(bx, dir, wc.momentsG)
	bottomB := wc.bottom(bx, dir, wc.momentsB)
	bottomW := wc.bottom(bx, dir, wc.weights)

	best := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + wc.top(bx, dir, i, wc.momentsR)
		halfG := bottomG + wc.top(bx, dir, i, wc.momentsG)
		halfB := bottomB + wc.top(bx, dir, i, wc.momentsB)
		halfW := bottomW + wc.top(bx, dir, i, wc.weights)
		if halfW == 0 {
			continue
		}
		temp := float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		if temp > best {
			best = temp
			cut = i
		}
	}
	return best, cut
}

// volume returns the sum of the given moment over the box.
func (wc *wuCube) volume(bx *box, moment []int) int {
	return moment[wuIndex(bx.r1, bx.g1, bx.b1)] -
		moment[wuIndex(bx.r1, bx.g1, bx.b0)] -
		moment[wuIndex(bx.r1, bx.g0, bx.b1)] +
		moment[wuIndex(bx.r1, bx.g0, bx.b0)] -
		moment[wuIndex(bx.r0, bx.g1, bx.b1)] +
		moment[wuIndex(bx.r0, bx.g1, bx.b0)] +
		moment[wuIndex(bx.r0, bx.g0, bx.b1)] -
		moment[wuIndex(bx.r0, bx.g0, bx.b0)]
}

// bottom returns the part of the box volume on the lower face
// in the given direction, which does not depend on the cut position.
func (wc *wuCube) bottom(bx *box, dir direction, moment []int) int {
	switch dir {
	case red:
		return -moment[wuIndex(bx.r0, bx.g1, bx.b1)] +
			moment[wuIndex(bx.r0, bx.g1, bx.b0)] +
			moment[wuIndex(bx.r0, bx.g0, bx.b1)] -
			moment[wuIndex(bx.r0, bx.g0, bx.b0)]
	case green:
		return -moment[wuIndex(bx.r1, bx.g0, bx.b1)] +
			moment[wuIndex(bx.r1, bx.g0, bx.b0)] +
			moment[wuIndex(bx.r0, bx.g0, bx.b1)] -
			moment[wuIndex(bx.r0, bx.g0, bx.b0)]
	default:
		return -moment[wuIndex(bx.r1, bx.g1, bx.b0)] +
			moment[wuIndex(bx.r1, bx.g0, bx.b0)] +
			moment[wuIndex(bx.r0, bx.g1, bx.b0)] -
			moment[wuIndex(bx.r0, bx.g0, bx.b0)]
	}
}

// top returns the part of the box volume at the given cut position
// in the given direction.
func (wc *wuCube) top(bx *box, dir direction, pos int, moment []int) int {
	switch dir {
	case red:
		return moment[wuIndex(pos, bx.g1, bx.b1)] -
			moment[wuIndex(pos, bx.g1, bx.b0)] -
			moment[wuIndex(pos, bx.g0, bx.b1)] +
			moment[wuIndex(pos, bx.g0, bx.b0)]
	case green:
		return moment[wuIndex(bx.r1, pos, bx.b1)] -
			moment[wuIndex(bx.r1, pos, bx.b0)] -
			moment[wuIndex(bx.r0, pos, bx.b1)] +
			moment[wuIndex(bx.r0, pos, bx.b0)]
	default:
		return moment[wuIndex(bx.r1, bx.g1, pos)] -
			moment[wuIndex(bx.r1, bx.g0, pos)] -
			moment[wuIndex(bx.r0, bx.g1, pos)] +
			moment[wuIndex(bx.r0, bx.g0, pos)]
	}
}
