// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the abacus release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/abacus"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the abacus version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "abacus v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
