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
	"cmp"
	"log/slog"
	"slices"

	"cogentcore.org/matcolor/base/randx"
	"golang.org/x/image/math/f64"
)

const (
	// DefaultMaxIterations is the default number of k-means iterations.
	DefaultMaxIterations = 5

	// DefaultSeed is the seed of the random source used when
	// [WSMeans.Rand] is nil, so that results are reproducible.
	DefaultSeed = 0x42688
)

// WSMeans is a [Quantizer] implementing weighted k-means clustering,
// in which each distinct color is a point weighted by its pixel count.
// The clusters are normally seeded with the colors of a [Wu] quantization,
// which is what [Celebi] does.
type WSMeans struct {

	// Points is the color space in which the clustering is done.
	// It defaults to [LabPoints].
	Points PointProvider

	// MaxIterations is the maximum number of iterations; the clustering
	// stops earlier when no point changes cluster. It defaults to
	// [DefaultMaxIterations].
	MaxIterations int

	// Rand is the random source for choosing extra clusters and the initial
	// assignment of points. If nil, a new source seeded with
	// [DefaultSeed] is used for each quantization.
	Rand randx.Rand
}

// NewWSMeans returns a new [WSMeans] with the default settings.
func NewWSMeans() *WSMeans {
	return &WSMeans{Points: LabPoints{}, MaxIterations: DefaultMaxIterations}
}

func (wm *WSMeans) Quantize(pixels []uint32, maxColors int) Result {
	return wm.QuantizeClusters(pixels, nil, maxColors)
}

// QuantizeClusters quantizes the pixels into at most maxColors colors,
// starting from the given cluster colors. If there are no starting
// clusters, they are chosen at random from the distinct pixel colors.
// The result includes the mapping from each pixel color to its cluster color.
func (wm *WSMeans) QuantizeClusters(pixels, startingClusters []uint32, maxColors int) Result {
	km := wm.cluster(pixels, startingClusters, maxColors)
	if km == nil {
		return newResult()
	}
	return km.result()
}

// Variance returns the total population-weighted distance of the
// distinct pixel colors from their clusters, after clustering as
// [WSMeans.QuantizeClusters] does.
func (wm *WSMeans) Variance(pixels, startingClusters []uint32, maxColors int) float64 {
	km := wm.cluster(pixels, startingClusters, maxColors)
	if km == nil {
		return 0
	}
	return km.variance()
}

// kmeans is the state of one clustering.
type kmeans struct {
	pp       PointProvider
	pixels   []uint32 // distinct, in input order
	points   []f64.Vec3
	counts   []int
	clusters []f64.Vec3
	assign   []int // cluster of each point
	sums     []int // population of each cluster
}

// neighbor is a cluster and its distance from another cluster.
type neighbor struct {
	index    int
	distance float64
}

func (wm *WSMeans) cluster(pixels, startingClusters []uint32, maxColors int) *kmeans {
	if maxColors <= 0 || len(pixels) == 0 {
		return nil
	}
	pp := wm.Points
	if pp == nil {
		pp = LabPoints{}
	}
	maxIter := wm.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	rnd := wm.Rand
	if rnd == nil {
		rnd = randx.NewSysRand(DefaultSeed)
	}

	km := &kmeans{pp: pp}
	index := map[uint32]int{}
	for _, px := range pixels {
		if i, ok := index[px]; ok {
			km.counts[i]++
			continue
		}
		index[px] = len(km.pixels)
		km.pixels = append(km.pixels, px)
		km.points = append(km.points, pp.FromARGB(px))
		km.counts = append(km.counts, 1)
	}

	n := min(maxColors, len(km.points))
	if len(startingClusters) > 0 {
		n = min(n, len(startingClusters))
	}
	for _, c := range startingClusters[:min(n, len(startingClusters))] {
		km.clusters = append(km.clusters, pp.FromARGB(c))
	}
	if extra := n - len(km.clusters); extra > 0 {
		// real colors make better seeds than random points, which
		// often end up as empty clusters
		for _, i := range randx.ChooseDistinct(len(km.points), extra, rnd) {
			km.clusters = append(km.clusters, km.points[i])
		}
	}

	km.assign = make([]int, len(km.points))
	for i := range km.assign {
		km.assign[i] = rnd.Intn(n)
	}
	km.sums = make([]int, n)

	neighbors := make([][]neighbor, n)
	for i := range neighbors {
		neighbors[i] = make([]neighbor, n)
	}
	for iter := range maxIter {
		for i := range n {
			for j := range n {
				neighbors[i][j] = neighbor{j, pp.Distance(km.clusters[i], km.clusters[j])}
			}
			slices.SortStableFunc(neighbors[i], func(a, b neighbor) int {
				return cmp.Compare(a.distance, b.distance)
			})
		}

		moved := km.reassign(neighbors)
		if moved == 0 && iter != 0 {
			slog.Debug("wsmeans converged", "iterations", iter, "clusters", n, "points", len(km.points))
			break
		}
		km.recenter()
	}
	return km
}

// reassign moves each point to its nearest cluster, returning
// the number of points moved. Clusters at least 4 times as far
// (in squared distance) from the current cluster as the point
// can not be nearer to the point, so they are skipped.
func (km *kmeans) reassign(neighbors [][]neighbor) int {
	moved := 0
	for i, p := range km.points {
		prev := km.assign[i]
		prevDist := km.pp.Distance(p, km.clusters[prev])
		minDist := prevDist
		next := -1
		for _, nb := range neighbors[prev] {
			if nb.distance >= 4*prevDist {
				break
			}
			d := km.pp.Distance(p, km.clusters[nb.index])
			if d < minDist {
				minDist = d
				next = nb.index
			}
		}
		if next >= 0 {
			km.assign[i] = next
			moved++
		}
	}
	return moved
}

// recenter moves each cluster to the weighted mean of its points.
// Empty clusters move to the origin.
func (km *kmeans) recenter() {
	sums := make([]f64.Vec3, len(km.clusters))
	km.tally()
	for i, p := range km.points {
		c := km.assign[i]
		w := float64(km.counts[i])
		sums[c][0] += p[0] * w
		sums[c][1] += p[1] * w
		sums[c][2] += p[2] * w
	}
	for c, s := range sums {
		count := float64(km.sums[c])
		if count == 0 {
			km.clusters[c] = f64.Vec3{}
			continue
		}
		km.clusters[c] = f64.Vec3{s[0] / count, s[1] / count, s[2] / count}
	}
}

// tally sets the population of each cluster.
func (km *kmeans) tally() {
	clear(km.sums)
	for i, c := range km.assign {
		km.sums[c] += km.counts[i]
	}
}

func (km *kmeans) variance() float64 {
	v := 0.0
	for i, p := range km.points {
		v += float64(km.counts[i]) * km.pp.Distance(p, km.clusters[km.assign[i]])
	}
	return v
}

// result returns the colors of the non-empty clusters. When two clusters
// have the same color, only the first one is kept.
func (km *kmeans) result() Result {
	res := newResult()
	colors := make([]uint32, len(km.clusters))
	for c, p := range km.clusters {
		colors[c] = km.pp.ToARGB(p)
		if km.sums[c] == 0 {
			continue
		}
		if _, has := res.Colors[colors[c]]; has {
			continue
		}
		res.Colors[colors[c]] = km.sums[c]
	}
	res.Mapping = make(map[uint32]uint32, len(km.pixels))
	for i, px := range km.pixels {
		res.Mapping[px] = colors[km.assign[i]]
	}
	return res
}
