package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/openvitals/vitals-mcp/internal/health"
)

// Server serves the tool catalog over MCP stdio. stdout carries the
// protocol, so all logging goes to stderr.
type Server struct {
	dispatcher *Dispatcher
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server exposing every catalog tool through the
// dispatcher.
func New(svc *health.Service, version string) *Server {
	s := &Server{
		dispatcher: NewDispatcher(svc),
		mcp: mcpserver.NewMCPServer("vitals-mcp", version,
			mcpserver.WithToolCapabilities(false),
		),
	}
	for _, tool := range Tools() {
		s.mcp.AddTool(tool, s.handler(tool.Name))
	}
	return s
}

// handler adapts one catalog operation to the MCP tool-call signature.
// Argument validation is left to the dispatcher so that missing and
// malformed dates surface through the same uniform error envelope.
func (s *Server) handler(operation string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]string{
			"start_date": req.GetString("start_date", ""),
			"end_date":   req.GetString("end_date", ""),
		}
		result := s.dispatcher.Dispatch(ctx, operation, args)
		if result.IsError {
			return mcp.NewToolResultError(result.Text), nil
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// ServeStdio blocks serving MCP over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}
