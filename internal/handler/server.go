package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the name advertised during MCP initialization.
const ServerName = "jira-mcp-server"

// Server is the MCP endpoint. It answers tools/call for unregistered names
// itself so they fail as method-not-found after a configuration load; all
// other messages go to the underlying mcp-go server.
type Server struct {
	mcp        *server.MCPServer
	dispatcher *Dispatcher
}

// NewServer registers every tool of the registry on a new MCP server backed
// by d.
func NewServer(d *Dispatcher, version string) *Server {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registry := Tools()
	tools := make([]server.ServerTool, 0, len(registry))
	for _, t := range registry {
		tools = append(tools, server.ServerTool{Tool: t.Definition, Handler: d.handle})
	}
	s.AddTools(tools...)

	return &Server{mcp: s, dispatcher: d}
}

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// HandleMessage processes one JSON-RPC message. It returns nil for
// notifications.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	if resp, ok := s.Intercept(ctx, raw); ok {
		return resp
	}
	return s.mcp.HandleMessage(ctx, raw)
}

// rpcError is a JSON-RPC error response. The id is echoed verbatim.
type rpcError struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   rpcErrorBody    `json:"error"`
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Intercept answers a tools/call request naming an unregistered tool. ok is
// false for every other message.
func (s *Server) Intercept(ctx context.Context, raw json.RawMessage) (mcp.JSONRPCMessage, bool) {
	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params struct {
			Name string `json:"name"`
		} `json:"params"`
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, false
	}
	if req.Method != string(mcp.MethodToolsCall) || len(req.ID) == 0 || s.dispatcher.Has(req.Params.Name) {
		return nil, false
	}

	_, err := s.dispatcher.Call(ctx, req.Params.Name, nil)

	code, msg := mcp.METHOD_NOT_FOUND, "Unknown tool: "+req.Params.Name
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		code, msg = toolErr.Code, toolErr.Error()
	}
	return rpcError{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      req.ID,
		Error:   rpcErrorBody{Code: code, Message: msg},
	}, true
}

// handle adapts Call to the MCP tool handler signature. Errors are returned
// as protocol errors rather than tool results.
func (d *Dispatcher) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := d.Call(ctx, req.Params.Name, req.GetArguments())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
