// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex opens images of any of the supported formats,
// which are detected from the file contents rather than the name.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image decoding formats.
type Formats int32

// The supported image formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, fmt.Errorf("imagex.ExtToFormat: ext is empty")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// sniffLen is the number of leading bytes needed to detect the file type.
const sniffLen = 262

// Sniff returns the image format of the given leading bytes of a file.
func Sniff(head []byte) (Formats, error) {
	kind, err := filetype.Match(head)
	if err != nil {
		return None, fmt.Errorf("imagex.Sniff: %w", err)
	}
	if kind == filetype.Unknown {
		return None, fmt.Errorf("imagex.Sniff: unknown file type")
	}
	if !filetype.IsImage(head) {
		return None, fmt.Errorf("imagex.Sniff: %s is not an image", kind.MIME.Value)
	}
	return ExtToFormat(kind.Extension)
}

// Open opens an image from the given filename.
// The format is detected from the contents,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	im, f, err := Read(file)
	if err != nil {
		return nil, f, fmt.Errorf("%s: %w", filename, err)
	}
	return im, f, nil
}

// OpenFS opens an image from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader,
// detecting its format from the leading bytes.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, None, err
	}
	f, err := Sniff(head)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(br)
	if err != nil {
		return nil, f, fmt.Errorf("decoding %s: %w", f, err)
	}
	return im, f, nil
}
