// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/matcolor/score"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the matcolor command with the given arguments,
// returning its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// writeImage writes a png with a large blue area and a smaller red one.
func writeImage(t *testing.T, fn string, blue color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for y := range 100 {
		for x := range 200 {
			c := blue
			if x >= 150 {
				c = color.NRGBA{220, 30, 30, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(fn)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestExtract(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.png")
	writeImage(t, fn, color.NRGBA{30, 60, 220, 255})

	out, err := run(t, "extract", "--max-dim", "0", fn)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "png 200x100")
	assert.Contains(t, lines[1], "#1e3cdc")
	assert.Contains(t, lines[1], "75.0%")
	assert.Contains(t, lines[2], "#dc1e1e")

	out, err = run(t, "extract", "--desired", "1", "--max-dim", "50", fn)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, err = run(t, "extract", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	_, err = run(t, "extract", "--max-colors", "0", fn)
	assert.Error(t, err)
}

func TestExtractFallback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gray.png")
	writeImage(t, fn, color.NRGBA{128, 128, 128, 255})
	ex, err := extract(fn, &Config{MaxColors: 16, Fallback: "#123456", Filter: true})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xffdc1e1e}, ex.Ranked)

	ex, err = extract(fn, &Config{MaxColors: 16, Fallback: "#123456", Filter: true, Desired: 4, MaxDim: 10})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), ex.Size)
	assert.LessOrEqual(t, ex.Quantized.Total(), 10*5)
}

func TestHCT(t *testing.T) {
	out, err := run(t, "hct", "#4285f4")
	require.NoError(t, err)
	assert.Contains(t, out, "#4285f4")
	assert.Contains(t, out, "T  ")

	out, err = run(t, "hct", "0", "0", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "#777777")

	_, err = run(t, "hct", "1", "2")
	assert.Error(t, err)
	_, err = run(t, "hct", "red")
	assert.Error(t, err)
	_, err = run(t, "hct", "a", "b", "c")
	assert.Error(t, err)
}

func TestTones(t *testing.T) {
	out, err := run(t, "tones", "#0000ff", "--tones", "0,50,100")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "#000000")
	assert.Contains(t, lines[1], "tone 0")
	assert.Contains(t, lines[3], "#ffffff")

	out, err = run(t, "tones", "#0000ff")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 14)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "matcolor.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("tones = [10, 20]\ndesired = 1\n"), 0666))

	out, err := run(t, "--config", cfgFile, "tones", "#0000ff")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	// flags override the file
	out, err = run(t, "--config", cfgFile, "tones", "--tones", "30", "#0000ff")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	out, err = run(t, "--config", "~/matcolor.toml", "tones", "#0000ff")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("colours = 3\n"), 0666))
	_, err = run(t, "--config", bad, "tones", "#0000ff")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, score.DefaultOptions(), DefaultConfig().ScoreOptions())

	tests := []func(c *Config){
		func(c *Config) { c.MaxDim = -1 },
		func(c *Config) { c.MaxColors = 0 },
		func(c *Config) { c.Desired = -2 },
		func(c *Config) { c.Fallback = "blue" },
		func(c *Config) { c.Tones = []int{50, 101} },
	}
	for _, set := range tests {
		c := DefaultConfig()
		set(c)
		assert.Error(t, c.Validate())
	}
}

func TestWatchFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.png")
	writeImage(t, fn, color.NRGBA{30, 60, 220, 255})

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error)
	go func() {
		done <- watchFile(ctx, fn, func() error {
			calls.Add(1)
			return nil
		})
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	// give the watcher time to start
	time.Sleep(100 * time.Millisecond)
	writeImage(t, fn, color.NRGBA{30, 200, 60, 255})
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
