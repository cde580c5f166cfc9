// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"log/slog"

	"cogentcore.org/matcolor/cie"
)

// Celebi is the standard [Quantizer], which finds initial colors with
// [Wu] and then refines them with [WSMeans]. Wu avoids the sensitivity
// of k-means to its starting clusters, and k-means turns Wu's
// axis-aligned boxes into clusters with accurate populations.
// Pixels that are not fully opaque are ignored.
type Celebi struct {

	// WSMeans is the k-means quantizer used for the refinement.
	// If nil, [NewWSMeans] is used.
	WSMeans *WSMeans
}

// NewCelebi returns a new [Celebi] quantizer with the default settings.
func NewCelebi() *Celebi {
	return &Celebi{WSMeans: NewWSMeans()}
}

func (cb *Celebi) Quantize(pixels []uint32, maxColors int) Result {
	if maxColors <= 0 {
		return newResult()
	}
	opaque := make([]uint32, 0, len(pixels))
	for _, px := range pixels {
		if cie.IsOpaque(px) {
			opaque = append(opaque, px)
		}
	}
	if len(opaque) == 0 {
		return newResult()
	}
	seeds, _ := Wu{}.Colors(opaque, maxColors)
	slog.Debug("celebi", "pixels", len(pixels), "opaque", len(opaque), "seeds", len(seeds))

	wm := cb.WSMeans
	if wm == nil {
		wm = NewWSMeans()
	}
	return wm.QuantizeClusters(opaque, seeds, maxColors)
}
