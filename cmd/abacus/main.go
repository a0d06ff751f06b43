// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command abacus is a basic arithmetic calculator.
package main

import "github.com/mesh-intelligence/abacus/internal/cli"

func main() {
	cli.Execute()
}
