package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/riveting"
	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultSettle bounds how long send_action waits for the action's first
// emission.
const DefaultSettle = 2 * time.Second

// Feature is the part of a search feature the MCP server drives.
type Feature interface {
	ViewState() search.ViewState
	Send(action search.Action)
	Interactor() ports.Interactor[search.Action, search.Domain]
	Reducer() ports.Reducer[search.Domain, search.ViewState]
}

// ActionArgs are the arguments of the send_action tool.
type ActionArgs struct {
	Type string `json:"type" jsonschema_description:"One of load, update_search_text, toggle_alert, submit_search, clear_search"`
	Text string `json:"text,omitempty" jsonschema_description:"New search text, for update_search_text"`
	Open bool   `json:"open,omitempty" jsonschema_description:"Whether the alert opens, for toggle_alert"`
}

// Server exposes a search feature as MCP tools.
type Server struct {
	feature   Feature
	logger    *slog.Logger
	settle    time.Duration
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSettle sets how long send_action waits for an emission before
// answering with the current view state.
func WithSettle(d time.Duration) Option {
	return func(s *Server) {
		s.settle = d
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(feature Feature, opts ...Option) *Server {
	s := &Server{
		feature:   feature,
		logger:    logging.NewNop(),
		settle:    DefaultSettle,
		mcpServer: server.NewMCPServer("riveting-mcp", riveting.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	sendTool := mcp.NewTool("send_action",
		mcp.WithDescription("Send an action to the search screen and return the first view state it produces."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Action type"), mcp.Enum(search.ActionTypes...)),
		mcp.WithString("text", mcp.Description("New search text, for update_search_text")),
		mcp.WithBoolean("open", mcp.Description("Whether the alert opens, for toggle_alert")),
		mcp.WithOutputSchema[search.ViewState](),
	)
	s.mcpServer.AddTool(sendTool, mcp.NewStructuredToolHandler(s.HandleSendAction))

	stateTool := mcp.NewTool("get_view_state",
		mcp.WithDescription("Get the view state currently published by the search screen."),
		mcp.WithOutputSchema[search.ViewState](),
	)
	s.mcpServer.AddTool(stateTool, mcp.NewStructuredToolHandler(s.HandleGetViewState))
}

// HandleSendAction implements the send_action tool. An action that causes
// no emission within the settle time answers with the current view state.
func (s *Server) HandleSendAction(ctx context.Context, request mcp.CallToolRequest, args ActionArgs) (search.ViewState, error) {
	action, err := search.Envelope{Type: args.Type, Text: args.Text, Open: args.Open}.Action()
	if err != nil {
		s.logger.Warn("MCP send_action: rejected", "err", err)
		return search.ViewState{}, fmt.Errorf("action rejected: %w", err)
	}

	sub := s.feature.Interactor().Subscribe()
	defer sub.Close()
	if _, err := sub.Next(ctx); err != nil {
		return search.ViewState{}, fmt.Errorf("subscribe failed: %w", err)
	}

	s.feature.Send(action)

	waitCtx, cancel := context.WithTimeout(ctx, s.settle)
	defer cancel()
	d, err := sub.Next(waitCtx)
	switch {
	case err == nil:
		return s.feature.Reducer().Reduce(d), nil
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return s.feature.Reducer().Reduce(s.feature.Interactor().Current()), nil
	default:
		return search.ViewState{}, fmt.Errorf("waiting for view state: %w", err)
	}
}

// HandleGetViewState implements the get_view_state tool.
func (s *Server) HandleGetViewState(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (search.ViewState, error) {
	return s.feature.ViewState(), nil
}
