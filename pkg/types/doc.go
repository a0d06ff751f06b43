// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the calculator state, input tokens, operators, the
// view-facing Snapshot, configuration, and the standard errors shared by the
// abacus packages.
package types
