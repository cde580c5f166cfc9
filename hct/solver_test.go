// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"cogentcore.org/matcolor/base/tolassert"
	"cogentcore.org/matcolor/cie"
	"github.com/stretchr/testify/assert"
)

func TestSolveAchromatic(t *testing.T) {
	assert.Equal(t, uint32(0xff777777), Solve(0, 0, 50))
	assert.Equal(t, uint32(0xff777777), Solve(300, 0.00001, 50))
	assert.Equal(t, uint32(0xff000000), Solve(120, 50, 0))
	assert.Equal(t, uint32(0xffffffff), Solve(120, 50, 100))
	assert.Equal(t, uint32(0xffffffff), Solve(120, 50, 150))
	assert.Equal(t, uint32(0xff000000), Solve(120, 50, -20))
}

func TestSolveSanitizes(t *testing.T) {
	assert.Equal(t, Solve(330, 40, 50), Solve(-30, 40, 50))
	assert.Equal(t, Solve(30, 40, 50), Solve(390, 40, 50))
	assert.Equal(t, Solve(30, 40, 50), Solve(30, 40, 50))
}

func TestSolveGamut(t *testing.T) {
	// far outside of the gamut, so the result is clipped to the boundary
	c := Solve(282, 500, 40)
	assert.True(t, isOnBoundary(c))
	tolassert.EqualTol(t, 40, cie.LstarFromARGB(c), 0.5)

	cam := SolveCAM(282, 500, 40)
	tolassert.EqualTol(t, 282, cam.Hue, 4)
	assert.Less(t, cam.Chroma, 500.0)
}

func TestFindResultByJ(t *testing.T) {
	y := cie.LToY(50)
	c, ok := findResultByJ(120*3.14159265/180, 30, y)
	assert.True(t, ok)
	tolassert.EqualTol(t, 50, cie.LstarFromARGB(c), 0.5)

	// beyond the gamut: Newton iteration fails and bisection takes over
	_, ok = findResultByJ(282*3.14159265/180, 500, y)
	assert.False(t, ok)
}

func TestBisect(t *testing.T) {
	y := cie.LToY(60)
	for n := range 12 {
		v := nthVertex(y, n)
		if v[0] < 0 {
			continue
		}
		tolassert.Equal(t, y, kYFromLinrgb[0]*v[0]+kYFromLinrgb[1]*v[1]+kYFromLinrgb[2]*v[2])
	}
	lin := bisectToLimit(y, 2)
	tolassert.EqualTol(t, y, kYFromLinrgb[0]*lin[0]+kYFromLinrgb[1]*lin[1]+kYFromLinrgb[2]*lin[2], 0.01)
	tolassert.EqualTol(t, 2, hueOf(lin), 0.05)

	assert.Equal(t, 127, criticalPlaneBelow(128))
	assert.Equal(t, 128, criticalPlaneAbove(128))
	assert.Equal(t, 3, abs(-3))
}

func BenchmarkSolve(b *testing.B) {
	for range b.N {
		Solve(282, 87, 32)
	}
}
