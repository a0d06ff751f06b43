// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cli implements the abacus command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/abacus/internal/paths"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
}

// app carries the state shared by the subcommands of one invocation. It is
// filled in by the root command's PersistentPreRunE.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	v         *viper.Viper
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "abacus" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: types.DefaultConfig()}

	root := &cobra.Command{
		Use:   "abacus",
		Short: "A basic arithmetic calculator",
		Long: "abacus is a four-function calculator driven by key presses.\n" +
			"It evaluates strictly left to right, the way a pocket calculator does.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config.yaml)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newPressCmd(a))
	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newReplCmd(a))
	root.AddCommand(newKeysCmd(a))
	root.AddCommand(newGUICmd(a))
	root.AddCommand(newMCPCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "abacus:", err)
		os.Exit(exitCode(err))
	}
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	// init must work even when an existing config.yaml is broken.
	if cmd.Name() == "init" {
		a.logger = newLogger(cmd.ErrOrStderr(), a.flags.logLevel)
		return nil
	}

	cfg, v, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config %s: %w", paths.ConfigFile(dir), err))
	}
	a.cfg, a.v = cfg, v
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

// newLogger returns a text logger on w filtered at level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// exitCodeError attaches a process exit code to an error.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(err error) error {
	return &exitCodeError{code: exitUserError, err: err}
}

// sysError marks err as caused by the environment.
func sysError(err error) error {
	return &exitCodeError{code: exitSysError, err: err}
}

// exitCode maps an error returned from a command to a process exit code.
// Errors without a code, such as flag parse failures, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitCodeError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}
