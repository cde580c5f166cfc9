// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := range 4 {
		for x := range 8 {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 30), 100, uint8(y * 60), 255})
		}
	}
	return img
}

func TestRead(t *testing.T) {
	img := testImage()
	encoders := map[Formats]func(*bytes.Buffer) error{
		PNG:  func(b *bytes.Buffer) error { return png.Encode(b, img) },
		JPEG: func(b *bytes.Buffer) error { return jpeg.Encode(b, img, nil) },
		GIF:  func(b *bytes.Buffer) error { return gif.Encode(b, img, nil) },
		BMP:  func(b *bytes.Buffer) error { return bmp.Encode(b, img) },
	}
	for f, enc := range encoders {
		t.Run(f.String(), func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, enc(&b))
			im, got, err := Read(&b)
			require.NoError(t, err)
			assert.Equal(t, f, got)
			assert.Equal(t, img.Bounds(), im.Bounds())
		})
	}
}

func TestReadInvalid(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("hello, world")))
	assert.Error(t, err)
	_, _, err = Read(bytes.NewReader(nil))
	assert.Error(t, err)
	_, _, err = Read(bytes.NewReader([]byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, testImage()))
	// the name does not matter
	fn := filepath.Join(t.TempDir(), "image.dat")
	require.NoError(t, os.WriteFile(fn, b.Bytes(), 0666))
	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, 8, im.Bounds().Dx())

	_, _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	fsys := fstest.MapFS{"a.png": {Data: b.Bytes()}}
	_, f, err = OpenFS(fsys, "a.png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svg")
	assert.Error(t, err)
	assert.Equal(t, "webp", WebP.String())
}
