// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mcp exposes a calculator session as Model Context Protocol tools,
// so an agent can press keys and read the display the way a person would.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mesh-intelligence/abacus/internal/keymap"
	"github.com/mesh-intelligence/abacus/internal/session"
	"github.com/mesh-intelligence/abacus/pkg/calc"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "abacus-mcp"

// Server holds the session the tool handlers operate on.
type Server struct {
	sess   *session.Session
	logger *slog.Logger
	mcp    *server.MCPServer
}

// PressOutput is the structured result of the press tool.
type PressOutput struct {
	types.Snapshot
	Ignored []string `json:"ignored,omitempty"`
}

// EvaluateOutput is the structured result of the evaluate tool.
type EvaluateOutput struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// NewServer builds an MCP server with every calculator tool registered.
func NewServer(sess *session.Session, version string, logger *slog.Logger) *Server {
	s := &Server{
		sess:   sess,
		logger: logger,
		mcp: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("press",
		mcp.WithDescription("Press calculator keys in order and return the resulting display. "+
			"Keys: digits, '.', '+', '-', '*', '/', '=', 'Enter', 'C', 'c', 'Escape', 'Backspace'."),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Whitespace-separated key names, e.g. \"1 2 + 3 Enter\""),
		),
	), s.handlePress)

	s.mcp.AddTool(mcp.NewTool("clear",
		mcp.WithDescription("Reset the calculator to its initial state"),
	), s.handleClear)

	s.mcp.AddTool(mcp.NewTool("display",
		mcp.WithDescription("Return the current display, error flag, and pending operator without pressing anything"),
	), s.handleDisplay)

	s.mcp.AddTool(mcp.NewTool("evaluate",
		mcp.WithDescription("Evaluate an expression of numbers and + - * / strictly left to right, without "+
			"precedence. Does not touch the calculator display."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Expression such as \"2+3*4\" (evaluates to 20)"),
		),
	), s.handleEvaluate)
}

// Serve runs the server over stdin and stdout until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("serving MCP on stdio", "session", s.sess.ID())
	if err := server.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("serve stdio: %w", err)
	}
	return nil
}

func (s *Server) handlePress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	raw, ok := args["keys"].(string)
	if !ok {
		return mcp.NewToolResultError("keys is required"), nil
	}

	var (
		toks    []types.Token
		ignored []string
	)
	for _, key := range strings.Fields(raw) {
		tok, ok := keymap.Lookup(key)
		if !ok {
			ignored = append(ignored, key)
			continue
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 && len(ignored) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no recognized keys in %q", raw)), nil
	}

	snap := s.sess.PressAll(toks)
	s.logger.Debug("press", "keys", len(toks), "ignored", len(ignored), "display", snap.Display)
	return textResult(PressOutput{Snapshot: snap, Ignored: ignored}), nil
}

func (s *Server) handleClear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(s.sess.Press(types.TokenClear)), nil
}

func (s *Server) handleDisplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textResult(s.sess.Snapshot()), nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	expr, ok := args["expression"].(string)
	if !ok {
		return mcp.NewToolResultError("expression is required"), nil
	}

	result, err := calc.EvaluateExpression(expr)
	if err != nil {
		if errors.Is(err, types.ErrDivisionByZero) {
			return mcp.NewToolResultError(types.ErrorToken + ": " + err.Error()), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(EvaluateOutput{Expression: expr, Result: result}), nil
}

// textResult marshals v to indented JSON text content.
func textResult(v any) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(b))
}
