// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// DefaultTolerance is the tolerance used by [Equal].
const DefaultTolerance = 0.001

// Equal asserts that the two numbers are within [DefaultTolerance] of each other.
func Equal(t assert.TestingT, expected, actual float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, DefaultTolerance, msgAndArgs...)
}

// EqualTol asserts that the two numbers are within the given tolerance
// of each other.
func EqualTol(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
}
