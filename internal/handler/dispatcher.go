// Package handler declares the tool registry and routes tool invocations to
// the Jira operations.
package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"jira-mcp/internal/client"
	"jira-mcp/internal/config"
)

// ErrUnknownTool is wrapped by the ToolError returned for unregistered names.
var ErrUnknownTool = errors.New("unknown tool")

// ToolError is the single error shape surfaced to callers. Code is
// mcp.METHOD_NOT_FOUND for unknown tools and mcp.INTERNAL_ERROR otherwise.
type ToolError struct {
	Code int
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	if e.Code == mcp.METHOD_NOT_FOUND {
		return "Unknown tool: " + e.Tool
	}
	return fmt.Sprintf("Error executing tool %s: %s", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// ClientFactory builds the requester used for one invocation.
type ClientFactory func(cfg config.Config) (client.Requester, error)

// Dispatcher routes a tool name and its arguments to the matching operation.
type Dispatcher struct {
	load      config.LoadFunc
	newClient ClientFactory
	tools     map[string]Tool
	logger    *zap.Logger
}

// NewDispatcher creates a Dispatcher. load is called on every invocation.
func NewDispatcher(load config.LoadFunc, newClient ClientFactory, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	tools := make(map[string]Tool)
	for _, t := range Tools() {
		tools[t.Definition.Name] = t
	}
	return &Dispatcher{
		load:      load,
		newClient: newClient,
		tools:     tools,
		logger:    logger,
	}
}

// Has reports whether name is a registered tool.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.tools[name]
	return ok
}

// Call runs one tool invocation to completion. Every failure is returned as
// a *ToolError naming the tool.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	start := time.Now()

	text, err := d.call(ctx, name, args)
	if err != nil {
		d.logger.Warn("tool call failed",
			zap.String("tool", name),
			zap.Bool("upstream", client.IsAPIError(err)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	d.logger.Info("tool call",
		zap.String("tool", name),
		zap.Duration("duration", time.Since(start)),
	)
	return text, nil
}

func (d *Dispatcher) call(ctx context.Context, name string, args map[string]any) (string, error) {
	cfg, err := d.load()
	if err != nil {
		return "", &ToolError{Code: mcp.INTERNAL_ERROR, Tool: name, Err: err}
	}

	tool, ok := d.tools[name]
	if !ok {
		return "", &ToolError{Code: mcp.METHOD_NOT_FOUND, Tool: name, Err: ErrUnknownTool}
	}

	api, err := d.newClient(cfg)
	if err != nil {
		return "", &ToolError{Code: mcp.INTERNAL_ERROR, Tool: name, Err: err}
	}

	text, err := tool.Run(ctx, api, args)
	if err != nil {
		return "", &ToolError{Code: mcp.INTERNAL_ERROR, Tool: name, Err: err}
	}
	return text, nil
}
