// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/matcolor/base/iox/imagex"
	"cogentcore.org/matcolor/quantize"
	"cogentcore.org/matcolor/score"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newExtractCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Print the best theme colors of an image",
		Long: `Extract quantizes the colors of an image and prints the colors
that are most suitable as the source color of a theme.
The image can be png, jpeg, gif, tiff, bmp, or webp.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output(cmd)
			if !watch {
				return runExtract(out, args[0], a.cfg)
			}
			return watchFile(cmd.Context(), args[0], func() error {
				return runExtract(out, args[0], a.cfg)
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.cfg.MaxDim, "max-dim", a.cfg.MaxDim, "largest side of the image when quantizing; 0 to keep the full size")
	f.IntVar(&a.cfg.MaxColors, "max-colors", a.cfg.MaxColors, "number of colors to quantize the image to")
	f.IntVar(&a.cfg.Desired, "desired", a.cfg.Desired, "number of theme colors to print; 0 for all")
	f.StringVar(&a.cfg.Fallback, "fallback", a.cfg.Fallback, "hex color printed when no color is suitable")
	f.BoolVar(&a.cfg.Filter, "filter", a.cfg.Filter, "remove colors that are unsuitable as theme colors")
	f.BoolVarP(&watch, "watch", "w", false, "extract again whenever the image changes")
	return cmd
}

// extraction is the result of extracting the theme colors of an image.
type extraction struct {

	// Format is the detected format of the image.
	Format imagex.Formats

	// Size is the size of the image.
	Size image.Point

	// FileSize is the size of the image file in bytes.
	FileSize int64

	// Quantized are the quantized colors and their populations.
	Quantized quantize.Result

	// Ranked are the theme colors, most suitable first.
	Ranked []uint32
}

// extract extracts the theme colors of the given image file.
func extract(filename string, cfg *Config) (*extraction, error) {
	st, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	img, f, err := imagex.Open(filename)
	if err != nil {
		return nil, err
	}
	ex := &extraction{Format: f, Size: img.Bounds().Size(), FileSize: st.Size()}

	start := time.Now()
	small := quantize.Downscale(img, cfg.MaxDim)
	pixels := quantize.PixelsFromImage(small)
	ex.Quantized = quantize.NewCelebi().Quantize(pixels, cfg.MaxColors)
	ex.Ranked = score.Score(ex.Quantized.Colors, cfg.ScoreOptions())
	slog.Info("extracted", "file", filename, "format", f, "pixels", len(pixels),
		"colors", len(ex.Quantized.Colors), "time", time.Since(start))
	return ex, nil
}

func runExtract(out *termenv.Output, filename string, cfg *Config) error {
	ex, err := extract(filename, cfg)
	if err != nil {
		return err
	}
	printExtraction(out, filename, ex)
	return nil
}

func printExtraction(out *termenv.Output, filename string, ex *extraction) {
	fmt.Fprintf(out, "%s: %s %dx%d, %s, %s colors\n", filename, ex.Format, ex.Size.X, ex.Size.Y,
		humanize.Bytes(uint64(ex.FileSize)), humanize.Comma(int64(len(ex.Quantized.Colors))))
	total := ex.Quantized.Total()
	for _, c := range ex.Ranked {
		pop := ex.Quantized.Colors[c]
		extra := "fallback"
		if pop > 0 {
			extra = fmt.Sprintf("%s px (%.1f%%)", humanize.Comma(int64(pop)), 100*float64(pop)/float64(total))
		}
		printColor(out, c, extra)
	}
}
