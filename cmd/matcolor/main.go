// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matcolor extracts theme colors from images
// and prints HCT colors and tonal palettes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/matcolor/base/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// app is the state shared by the commands.
type app struct {
	cfg        *Config
	configFile string
	vv, v, q   bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:           "matcolor",
		Short:         "Extract theme colors from images and explore HCT colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
			logx.SetDefaultLogger()
			if a.configFile != "" {
				if err := OpenConfig(cmd, a.cfg, a.configFile); err != nil {
					return err
				}
			}
			return a.cfg.Validate()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML config file")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")

	root.AddCommand(newExtractCmd(a), newHCTCmd(), newTonesCmd(a))
	return root
}

// output returns a terminal output for the command that
// uses the color profile of the terminal, if any.
func output(cmd *cobra.Command) *termenv.Output {
	return termenv.NewOutput(cmd.OutOrStdout())
}
