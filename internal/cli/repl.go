// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/internal/session"
	"github.com/mesh-intelligence/abacus/internal/view"
)

func newReplCmd(a *app) *cobra.Command {
	var noGrid bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive the calculator interactively from standard input",
		Long: "Each input line is split into keys: the words Enter, Escape and\n" +
			"Backspace, or single characters. After every line the display (and\n" +
			"the button grid, unless --no-grid) is printed. Type quit to leave.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &repl{
				sess:   session.New(a.logger),
				hub:    session.NewHub(),
				out:    cmd.OutOrStdout(),
				json:   a.flags.jsonMode,
				render: view.Options{Grouping: a.cfg.Grouping, NoGrid: noGrid},
			}
			return r.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "print the display only")
	return cmd
}

// repl feeds lines of keys into a session through a Hub, the same way a
// graphical host delivers keyboard events.
type repl struct {
	sess   *session.Session
	hub    *session.Hub
	out    io.Writer
	json   bool
	render view.Options
}

func (r *repl) run(in io.Reader) error {
	detach := r.sess.Attach(r.hub)
	defer detach()

	if err := r.show(nil); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		var ignored []string
		for _, k := range splitKeys(strings.Fields(line)) {
			if _, ok := keymap.Lookup(k); !ok {
				ignored = append(ignored, k)
				continue
			}
			r.hub.Emit(k)
		}
		if err := r.show(ignored); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return sysError(fmt.Errorf("read input: %w", err))
	}
	return nil
}

func (r *repl) show(ignored []string) error {
	snap := r.sess.Snapshot()
	if r.json {
		return writeJSON(r.out, struct {
			Display string   `json:"display"`
			Errored bool     `json:"errored"`
			Pending string   `json:"pending,omitempty"`
			Ignored []string `json:"ignored,omitempty"`
		}{snap.Display, snap.Errored, snap.Pending, ignored})
	}
	if len(ignored) > 0 {
		fmt.Fprintf(r.out, "ignored: %s\n", strings.Join(ignored, " "))
	}
	return view.Render(r.out, snap, r.render)
}
