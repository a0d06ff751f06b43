// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/internal/mcp"
	"github.com/mesh-intelligence/abacus/internal/session"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Long: "Mcp runs a Model Context Protocol server on standard input and output.\n" +
			"One calculator session lives for the whole connection. Logs go to\n" +
			"standard error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New(a.logger)
			if err := mcp.NewServer(sess, Version, a.logger).Serve(); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
