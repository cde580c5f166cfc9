// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name   string
	Colors int
	Hex    []string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := settings{Name: "theme", Colors: 4, Hex: []string{"#4285f4"}}
	require.NoError(t, Save(&s, fn))

	var got settings
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, s, got)
}

func TestReadBytes(t *testing.T) {
	var s settings
	require.NoError(t, ReadBytes(&s, []byte("Name = \"a\"\nColors = 8\n")))
	assert.Equal(t, settings{Name: "a", Colors: 8}, s)

	assert.Error(t, ReadBytes(&s, []byte("Unknown = 1\n")))
	assert.Error(t, ReadBytes(&s, []byte("Colors = \"many\"\n")))
	assert.Error(t, Open(&s, filepath.Join(t.TempDir(), "missing.toml")))
}
