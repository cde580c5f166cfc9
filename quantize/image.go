// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quantize

import (
	"image"

	"cogentcore.org/matcolor/cie"
	"github.com/anthonynsimon/bild/transform"
)

// PixelsFromImage returns the pixels of the given image as
// non-premultiplied ARGB colors, in row-major order.
func PixelsFromImage(img image.Image) []uint32 {
	b := img.Bounds()
	pixels := make([]uint32, 0, b.Dx()*b.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := nrgba.NRGBAAt(x, y)
				pixels = append(pixels, cie.ARGBFromRGBA(c.R, c.G, c.B, c.A))
			}
		}
		return pixels
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pixels = append(pixels, cie.ARGBFromColor(img.At(x, y)))
		}
	}
	return pixels
}

// Downscale returns the image resized so that neither of its sides
// is larger than maxDim, keeping its aspect ratio. Smaller images,
// and any image when maxDim <= 0, are returned unchanged.
// Quantizing a downscaled image is much faster and gives nearly the same colors.
func Downscale(img image.Image, maxDim int) image.Image {
	sz := img.Bounds().Size()
	if maxDim <= 0 || (sz.X <= maxDim && sz.Y <= maxDim) {
		return img
	}
	w, h := maxDim, maxDim
	if sz.X > sz.Y {
		h = max(1, sz.Y*maxDim/sz.X)
	} else {
		w = max(1, sz.X*maxDim/sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}
