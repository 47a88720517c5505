// Package mcp exposes a calculator engine as Model Context Protocol tools.
package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/akhildatla/rpncalc/pkg/calc"
	"github.com/akhildatla/rpncalc/pkg/repl"
)

// Server holds one engine shared by all tool handlers. The engine itself is
// single-owner, so every handler takes mu.
type Server struct {
	mu     sync.Mutex
	engine *calc.Engine
	logger *slog.Logger
	mcp    *server.MCPServer
}

// NewServer creates the MCP server and registers the calculator tools.
func NewServer(engine *calc.Engine, logger *slog.Logger, version string) *Server {
	s := &Server{
		engine: engine,
		logger: logger,
		mcp: server.NewMCPServer(
			"rpncalc",
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcpgo.NewTool("press",
		mcpgo.WithDescription("Press calculator keys, e.g. '3 4 +' or '2 sqrt sto A'. Returns the stack."),
		mcpgo.WithString("keys",
			mcpgo.Required(),
			mcpgo.Description("Whitespace-separated keys: numbers, operators (+ - * / ^ root sq sqrt log ln alog exp sin cos tan asin acos atan pi e), enter, chs, clx, drop, roll, swap, sto <A-H>, rcl <A-H>"),
		),
	), s.handlePress)

	s.mcp.AddTool(mcpgo.NewTool("stack",
		mcpgo.WithDescription("Show the registers T, Z, Y, X and the pending entry."),
	), s.handleStack)

	s.mcp.AddTool(mcpgo.NewTool("variables",
		mcpgo.WithDescription("Show variables A..H and the selected variable."),
	), s.handleVariables)

	s.mcp.AddTool(mcpgo.NewTool("save",
		mcpgo.WithDescription("Persist the registers and variables."),
	), s.handleSave)
}

func (s *Server) handlePress(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.GetArguments()
	keys, ok := args["keys"].(string)
	if !ok {
		return mcpgo.NewToolResultError("keys is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := repl.Apply(s.engine, strings.Fields(keys))
	view := s.stackView()
	if err != nil {
		s.logger.Debug("press failed", "keys", keys, "err", err)
		return mcpgo.NewToolResultError(fmt.Sprintf("Error: %v\n%s", err, view)), nil
	}
	return mcpgo.NewToolResultText(view), nil
}

func (s *Server) handleStack(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcpgo.NewToolResultText(s.stackView()), nil
}

func (s *Server) handleVariables(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	repl.PrintVars(&buf, s.engine)
	return mcpgo.NewToolResultText(buf.String()), nil
}

func (s *Server) handleSave(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Save(); err != nil {
		s.logger.Error("save failed", "err", err)
		return mcpgo.NewToolResultError(fmt.Sprintf("Error saving state: %v", err)), nil
	}
	return mcpgo.NewToolResultText("saved"), nil
}

func (s *Server) stackView() string {
	var buf bytes.Buffer
	repl.PrintStack(&buf, s.engine)
	return buf.String()
}
