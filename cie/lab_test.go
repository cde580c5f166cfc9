// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
)

func TestLAB(t *testing.T) {
	l, a, b := XYZToLAB(WhiteD65)
	tolassert.Equal(t, 100, l)
	tolassert.Equal(t, 0, a)
	tolassert.Equal(t, 0, b)

	l, a, b = ARGBToLAB(0xffff0000)
	tolassert.EqualTol(t, 53.2329, l, 0.01)
	tolassert.EqualTol(t, 80.1, a, 0.1)
	tolassert.EqualTol(t, 67.2, b, 0.1)

	xyz := LABToXYZ(l, a, b)
	red := ARGBToXYZ(0xffff0000)
	for i := range 3 {
		tolassert.Equal(t, red[i], xyz[i])
	}

	// the linear segment below epsilon
	tolassert.Equal(t, 0.01, LABUncompress(LABCompress(0.01)))
	tolassert.Equal(t, 0.001, LABUncompress(LABCompress(0.001)))
}

func TestLstar(t *testing.T) {
	tolassert.Equal(t, 18.418652, LToY(50))
	tolassert.Equal(t, 50, YToL(18.418652))
	tolassert.Equal(t, 0, YToL(0))
	tolassert.Equal(t, 100, YToL(100))
	for l := 0.0; l <= 100; l += 12.5 {
		tolassert.Equal(t, l, YToL(LToY(l)))
	}
}
