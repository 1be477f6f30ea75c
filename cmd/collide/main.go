// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collide loads a scene of shapes from a TOML or YAML file,
// reports which objects collide using bounding volumes for the broad
// phase and collision volumes for the narrow phase, and picks rays
// against the objects.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/collide/base/errors"
	"cogentcore.org/collide/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vv, v, q, points, noColor, watch bool
	cmd := &cobra.Command{
		Use:   "collide [scene-file]",
		Short: "Report collisions and ray hits in a scene of shapes",
		Long: `collide loads a scene of shapes from a .toml, .yaml or .yml file.
Each pair of objects whose bounding volumes overlap is tested with
collision volumes, and each ray is picked against the objects it may hit.
With --watch, the scene is run again each time the file changes.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.SetDefault(cmd.ErrOrStderr(), logx.LevelFromFlags(vv, v, q))
			logx.UseColor = !noColor
			if logx.UseColor {
				logx.InitColor()
			}
			run := func() error {
				sc := &Scene{}
				if err := Open(sc, args[0]); err != nil {
					return err
				}
				_, err := Run(cmd.OutOrStdout(), sc, points)
				return err
			}
			err := run()
			if !watch {
				return err
			}
			errors.Log(err)
			slog.Info("watching for changes", "file", args[0])
			return Watch(cmd.Context(), args[0], run)
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&v, "verbose", "v", false, "show info messages")
	fl.BoolVar(&vv, "vv", false, "show debug messages")
	fl.BoolVarP(&q, "quiet", "q", false, "only show errors")
	fl.BoolVar(&points, "points", false, "list every collision point")
	fl.BoolVar(&noColor, "no-color", false, "disable colored output")
	fl.BoolVarP(&watch, "watch", "w", false, "run again each time the scene file changes")
	return cmd
}
