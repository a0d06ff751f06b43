// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// bindingOutput is the JSON form of one key binding.
type bindingOutput struct {
	Token types.Token `json:"token"`
	Keys  []string    `json:"keys"`
}

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keyboard bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bindings := keymap.Bindings()

			if a.flags.jsonMode {
				list := make([]bindingOutput, len(bindings))
				for i, b := range bindings {
					list[i] = bindingOutput{Token: b.Token, Keys: b.Keys}
				}
				return writeJSON(out, list)
			}

			for _, b := range bindings {
				fmt.Fprintf(out, "%-10s %s\n", b.Token, strings.Join(b.Keys, ", "))
			}
			return nil
		},
	}
}

// namedKeys are the multi-character key names accepted on the command line.
var namedKeys = map[string]bool{
	keymap.KeyEnter:     true,
	keymap.KeyEscape:    true,
	keymap.KeyBackspace: true,
}

// splitKeys turns command-line words into key names. Named keys are kept
// whole; any other word is split into one key per character, so "12+3="
// and "1 2 + 3 =" press the same keys.
func splitKeys(words []string) []string {
	var keys []string
	for _, w := range words {
		if namedKeys[w] {
			keys = append(keys, w)
			continue
		}
		for _, r := range w {
			keys = append(keys, string(r))
		}
	}
	return keys
}

// writeJSON writes v to out as indented JSON followed by a newline.
func writeJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	b = append(b, '\n')
	_, err = out.Write(b)
	return err
}
