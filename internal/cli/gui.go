// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/abacus/internal/gui"
	"github.com/mesh-intelligence/abacus/internal/session"
)

func newGUICmd(a *app) *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the calculator window",
		Long: "Gui opens a window with the display and the button grid. Buttons respond\n" +
			"to the mouse and the keyboard. Changes to grouping in config.yaml apply\n" +
			"while the window is open.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale == 0 {
				scale = a.cfg.GUI.Scale
			}

			var grouping atomic.Bool
			grouping.Store(a.cfg.Grouping)
			if a.v.ConfigFileUsed() != "" {
				a.v.OnConfigChange(reloadGrouping(a.v, &grouping, a.logger))
				a.v.WatchConfig()
			}

			sess := session.New(a.logger)
			err := gui.Run(sess, gui.Options{Title: "abacus", Scale: scale, Grouping: &grouping})
			if errors.Is(err, gui.ErrUnavailable) {
				return sysError(err)
			}
			return err
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 0, "window scale factor (default: gui.scale from config.yaml)")
	return cmd
}

// reloadGrouping returns a config change handler that copies the grouping
// setting into grouping. Invalid files leave the current value in place.
func reloadGrouping(v *viper.Viper, grouping *atomic.Bool, logger *slog.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		cfg, err := decodeConfig(v)
		if err != nil {
			logger.Warn("config reload failed", "file", e.Name, "error", err)
			return
		}
		grouping.Store(cfg.Grouping)
		logger.Info("config reloaded", "file", e.Name, "grouping", cfg.Grouping)
	}
}
