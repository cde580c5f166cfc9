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

// Package cie provides conversions among the standard CIE color spaces
// (XYZ and L*a*b*), gamma-corrected and linear sRGB, and packed 32-bit
// ARGB colors.
package cie

import (
	"golang.org/x/image/math/f64"
)

// WhiteD65 is the standard D65 white point (white on a sunny day),
// in 100-based XYZ coordinates.
var WhiteD65 = f64.Vec3{95.047, 100.0, 108.883}

// SRGBToXYZMatrix converts linear sRGB to XYZ (row-major).
var SRGBToXYZMatrix = f64.Mat3{
	0.41233895, 0.35762064, 0.18051042,
	0.2126, 0.7152, 0.0722,
	0.01932141, 0.11916382, 0.95034478,
}

// XYZToSRGBMatrix converts XYZ to linear sRGB (row-major).
// It is the inverse of [SRGBToXYZMatrix].
var XYZToSRGBMatrix = f64.Mat3{
	3.2413774792388685, -1.5376652402851851, -0.49885366846268053,
	-0.9691452513005321, 1.8758853451067872, 0.04156585616912061,
	0.05562093689691305, -0.20395524564742123, 1.0571799111220335,
}
