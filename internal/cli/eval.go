// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/abacus/pkg/calc"
)

// evalOutput is the JSON form of an eval result.
type evalOutput struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an expression strictly left to right",
		Long: "Eval folds numbers and + - * / from left to right with no precedence,\n" +
			"so 2+3*4 is 20. Arguments are joined before evaluation.",
		Example: "  abacus eval 2+3*4\n  abacus eval 10 / 4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			result, err := calc.EvaluateExpression(expr)
			if err != nil {
				return userError(err)
			}
			a.logger.Debug("evaluated", "expression", expr, "result", result)

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), evalOutput{Expression: expr, Result: result})
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
