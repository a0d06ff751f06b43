// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/internal/session"
	"github.com/mesh-intelligence/abacus/internal/view"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// traceStep is one line of press --trace output.
type traceStep struct {
	Key string `json:"key"`
	types.Snapshot
}

func newPressCmd(a *app) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "press KEY...",
		Short: "Press keys on a fresh calculator and print the display",
		Long: "Press runs the keys through a new calculator, left to right, and prints\n" +
			"the final display. A word that is not Enter, Escape or Backspace is\n" +
			"split into single-character keys.",
		Example: "  abacus press 12+3=\n" +
			"  abacus press 1 2 '*' 3 Enter\n" +
			"  abacus press --trace 5/0=",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := splitKeys(args)
			for _, k := range keys {
				if _, ok := keymap.Lookup(k); !ok {
					return userError(fmt.Errorf("unknown key %q (see abacus keys)", k))
				}
			}

			sess := session.New(a.logger)
			opts := view.Options{Grouping: a.cfg.Grouping}
			out := cmd.OutOrStdout()

			var steps []traceStep
			for _, k := range keys {
				sess.Key(k)
				if trace {
					steps = append(steps, traceStep{Key: k, Snapshot: sess.Snapshot()})
				}
			}
			snap := sess.Snapshot()

			switch {
			case a.flags.jsonMode && trace:
				return writeJSON(out, steps)
			case a.flags.jsonMode:
				return writeJSON(out, snap)
			case trace:
				for _, s := range steps {
					fmt.Fprintf(out, "%-10s %-2s %s\n", s.Key, s.Pending, view.DisplayText(s.Snapshot, opts))
				}
				return nil
			default:
				fmt.Fprintln(out, view.DisplayText(snap, opts))
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	return cmd
}
